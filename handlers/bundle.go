package handlers

// HandlerBundle groups the handlers the route registrar wires up.
type HandlerBundle struct {
	Booking *BookingHandler
	Worker  *WorkerHandler
	Agent   *AgentHandler
	Admin   *AdminHandler
}
