package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fundihub/middleware"
	"fundihub/models"
	"fundihub/services/worker"
)

// WorkerHandler exposes worker management to agents.
type WorkerHandler struct {
	Service worker.WorkerService
}

// NewWorkerHandler constructs a WorkerHandler.
func NewWorkerHandler(svc worker.WorkerService) *WorkerHandler {
	return &WorkerHandler{Service: svc}
}

// RegisterWorker handles POST /api/workers.
func (h *WorkerHandler) RegisterWorker(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing actor"})
		return
	}

	var req worker.RegisterWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.Register(c.Request.Context(), actor.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetWorker handles GET /api/workers/:id.
func (h *WorkerHandler) GetWorker(c *gin.Context) {
	w, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// ListMyWorkers handles GET /api/workers for the authenticated agent.
func (h *WorkerHandler) ListMyWorkers(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing actor"})
		return
	}

	workers, err := h.Service.ListByAgent(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workers": workers})
}

// SetTimetable handles PUT /api/workers/:id/timetable.
func (h *WorkerHandler) SetTimetable(c *gin.Context) {
	var req worker.TimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Service.SetTimetable(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AddNonAvailability handles POST /api/workers/:id/non-availability.
func (h *WorkerHandler) AddNonAvailability(c *gin.Context) {
	var entry models.NonAvailability
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.AddNonAvailability(c.Request.Context(), c.Param("id"), entry); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "non-availability recorded"})
}

// RemoveNonAvailability handles DELETE /api/workers/:id/non-availability/:date.
func (h *WorkerHandler) RemoveNonAvailability(c *gin.Context) {
	if err := h.Service.RemoveNonAvailability(c.Request.Context(), c.Param("id"), c.Param("date")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "non-availability removed"})
}

// SuspendWorker handles PATCH /api/workers/:id/suspend.
func (h *WorkerHandler) SuspendWorker(c *gin.Context) {
	if err := h.Service.Suspend(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "worker suspended"})
}

// ReinstateWorker handles PATCH /api/workers/:id/reinstate.
func (h *WorkerHandler) ReinstateWorker(c *gin.Context) {
	if err := h.Service.Reinstate(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "worker reinstated"})
}

// UpdateServices handles PUT /api/workers/:id/services.
func (h *WorkerHandler) UpdateServices(c *gin.Context) {
	var input struct {
		Services []models.WorkerService `json:"services" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.UpdateServices(c.Request.Context(), c.Param("id"), input.Services); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "services updated"})
}
