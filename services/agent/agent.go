package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	agentRepo "fundihub/database/repository/agent"
	workerRepo "fundihub/database/repository/worker"
	"fundihub/models"
	"fundihub/utils"
)

const tokenDuration = 24 * time.Hour

// ErrInvalidCredentials is returned on a failed login.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrWorkerNotManaged is returned when an agent acts on a worker enrolled
// under a different agent.
var ErrWorkerNotManaged = errors.New("worker is managed by another agent")

// RegisterAgentRequest enrolls a new service agent.
type RegisterAgentRequest struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Phone    string   `json:"phone"`
	Password string   `json:"password" binding:"required,min=8"`
	Areas    []string `json:"areas"`
}

// AgentService manages service agents and their oversight of workers.
type AgentService interface {
	Register(ctx context.Context, req RegisterAgentRequest) (*models.ServiceAgent, error)
	Authenticate(ctx context.Context, email, password string) (*models.ServiceAgent, error)
	Get(ctx context.Context, agentID string) (*models.ServiceAgent, error)
	ListAll(ctx context.Context) ([]models.ServiceAgent, error)
	AssignAreas(ctx context.Context, agentID string, areas []string) error
	VerifyWorker(ctx context.Context, agentID, workerID string, approve bool) error
}

// DefaultAgentService is the production implementation.
type DefaultAgentService struct {
	Repo       agentRepo.AgentRepository
	WorkerRepo workerRepo.WorkerRepository
}

func (s *DefaultAgentService) Register(ctx context.Context, req RegisterAgentRequest) (*models.ServiceAgent, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	agent := &models.ServiceAgent{
		ID:    uuid.New().String(),
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Security: models.AgentSecurity{
			PasswordHash: string(hashed),
		},
		Areas:     req.Areas,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, agent); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("agent registered", zap.String("agentID", agent.ID))
	agent.Security = models.AgentSecurity{}
	return agent, nil
}

// Authenticate verifies credentials and issues a fresh JWT. The token hash
// is stored so revocation is possible without waiting for expiry.
func (s *DefaultAgentService) Authenticate(ctx context.Context, email, password string) (*models.ServiceAgent, error) {
	agent, err := s.Repo.GetByEmail(ctx, email)
	if err == agentRepo.ErrNotFound {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(agent.Security.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(agent.ID, models.RoleAgent, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	if err := s.Repo.UpdateTokenHash(ctx, agent.ID, utils.HashToken(token)); err != nil {
		return nil, err
	}

	// The superseded token must stop working now, not when its cache entry
	// expires.
	if old := agent.Security.TokenHash; old != "" && utils.AuthCacheClient != nil {
		if err := utils.AuthCacheClient.Del(ctx, utils.AuthCachePrefix+old).Err(); err != nil {
			utils.GetLogger().Warn("failed to evict superseded token from auth cache",
				zap.String("agentID", agent.ID), zap.Error(err))
		}
	}

	agent.Security = models.AgentSecurity{Token: token}
	return agent, nil
}

func (s *DefaultAgentService) Get(ctx context.Context, agentID string) (*models.ServiceAgent, error) {
	agent, err := s.Repo.GetByID(ctx, agentID)
	if err != nil {
		return nil, err
	}
	agent.Security = models.AgentSecurity{}
	return agent, nil
}

func (s *DefaultAgentService) ListAll(ctx context.Context) ([]models.ServiceAgent, error) {
	agents, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range agents {
		agents[i].Security = models.AgentSecurity{}
	}
	return agents, nil
}

func (s *DefaultAgentService) AssignAreas(ctx context.Context, agentID string, areas []string) error {
	return s.Repo.UpdateAreas(ctx, agentID, areas)
}

// VerifyWorker records the agent's verification decision. Only the managing
// agent may verify their own workers.
func (s *DefaultAgentService) VerifyWorker(ctx context.Context, agentID, workerID string, approve bool) error {
	w, err := s.WorkerRepo.GetByID(ctx, workerID)
	if err != nil {
		return err
	}
	if w.AgentID != agentID {
		return fmt.Errorf("%w: worker %s", ErrWorkerNotManaged, workerID)
	}

	status := models.VerificationRejected
	if approve {
		status = models.VerificationVerified
	}
	if err := s.WorkerRepo.SetVerificationStatus(ctx, workerID, status); err != nil {
		return err
	}

	utils.GetLogger().Info("worker verification updated",
		zap.String("workerID", workerID),
		zap.String("agentID", agentID),
		zap.String("status", status))
	return nil
}
