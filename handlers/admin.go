package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	workerRepo "fundihub/database/repository/worker"
	"fundihub/services/agent"
)

// AdminHandler exposes the read-only admin surface.
type AdminHandler struct {
	AgentService agent.AgentService
	WorkerRepo   workerRepo.WorkerRepository
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(agentSvc agent.AgentService, workers workerRepo.WorkerRepository) *AdminHandler {
	return &AdminHandler{AgentService: agentSvc, WorkerRepo: workers}
}

// GetAllAgents handles GET /api/admin/agents.
func (h *AdminHandler) GetAllAgents(c *gin.Context) {
	agents, err := h.AgentService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agents": agents})
}

// GetAllWorkers handles GET /api/admin/workers.
func (h *AdminHandler) GetAllWorkers(c *gin.Context) {
	workers, err := h.WorkerRepo.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workers": workers})
}
