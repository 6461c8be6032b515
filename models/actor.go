package models

// Actor roles recognized by the auth middleware.
const (
	RoleCustomer = "customer"
	RoleWorker   = "worker"
	RoleAgent    = "agent"
	RoleAdmin    = "admin"
)

// Actor identifies who is performing a mutating call. It is supplied by the
// auth boundary on every request.
type Actor struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}
