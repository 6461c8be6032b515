package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fundihub/middleware"
	"fundihub/services/agent"
)

// AgentHandler exposes service-agent registration, login, and oversight.
type AgentHandler struct {
	Service agent.AgentService
}

// NewAgentHandler constructs an AgentHandler.
func NewAgentHandler(svc agent.AgentService) *AgentHandler {
	return &AgentHandler{Service: svc}
}

// RegisterAgent handles POST /api/agents/register.
func (h *AgentHandler) RegisterAgent(c *gin.Context) {
	var req agent.RegisterAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// AuthenticateAgent handles POST /api/agents/login.
func (h *AgentHandler) AuthenticateAgent(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	authed, err := h.Service.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, agent.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, authed)
}

// GetAgent handles GET /api/agents/:id.
func (h *AgentHandler) GetAgent(c *gin.Context) {
	a, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// AssignAreas handles PUT /api/agents/:id/areas.
func (h *AgentHandler) AssignAreas(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok || actor.ID != c.Param("id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "agents may only update their own areas"})
		return
	}

	var input struct {
		Areas []string `json:"areas" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.AssignAreas(c.Request.Context(), c.Param("id"), input.Areas); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "areas updated"})
}

// VerifyWorker handles PATCH /api/agents/workers/:workerId/verify.
func (h *AgentHandler) VerifyWorker(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing actor"})
		return
	}

	var input struct {
		Approve bool `json:"approve"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.VerifyWorker(c.Request.Context(), actor.ID, c.Param("workerId"), input.Approve); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "worker verification updated"})
}
