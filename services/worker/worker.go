package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fundihub/config"
	"fundihub/models"
	"fundihub/utils"
)

// Register enrolls a new worker under the given agent. Workers start out
// active but unverified; they become bookable once the agent verifies them.
func (s *DefaultWorkerService) Register(ctx context.Context, agentID string, req RegisterWorkerRequest) (*models.Worker, error) {
	if req.Profile.Name == "" || req.Profile.Phone == "" {
		return nil, fmt.Errorf("%w: worker name and phone are required", ErrInvalidInput)
	}

	slotMinutes := req.SlotMinutes
	if slotMinutes <= 0 {
		slotMinutes = config.AppConfig.DefaultSlotMinutes
	}

	now := time.Now()
	w := &models.Worker{
		ID:                 uuid.New().String(),
		AgentID:            agentID,
		Profile:            req.Profile,
		Status:             models.WorkerStatusActive,
		VerificationStatus: models.VerificationPending,
		SlotMinutes:        slotMinutes,
		Services:           req.Services,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	for i := range w.Services {
		if w.Services[i].ID == "" {
			w.Services[i].ID = uuid.New().String()
		}
	}

	if err := s.Repo.Create(ctx, w); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("worker registered",
		zap.String("workerID", w.ID), zap.String("agentID", agentID))
	return w, nil
}

func (s *DefaultWorkerService) Get(ctx context.Context, workerID string) (*models.Worker, error) {
	return s.Repo.GetByID(ctx, workerID)
}

func (s *DefaultWorkerService) ListByAgent(ctx context.Context, agentID string) ([]models.Worker, error) {
	return s.Repo.ListByAgent(ctx, agentID)
}

func (s *DefaultWorkerService) AddNonAvailability(ctx context.Context, workerID string, entry models.NonAvailability) error {
	if _, err := utils.ParseDate(entry.Date); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.Repo.AddNonAvailability(ctx, workerID, entry)
}

func (s *DefaultWorkerService) RemoveNonAvailability(ctx context.Context, workerID, date string) error {
	return s.Repo.RemoveNonAvailability(ctx, workerID, date)
}

func (s *DefaultWorkerService) Suspend(ctx context.Context, workerID string) error {
	return s.Repo.SetStatus(ctx, workerID, models.WorkerStatusSuspended)
}

func (s *DefaultWorkerService) Reinstate(ctx context.Context, workerID string) error {
	return s.Repo.SetStatus(ctx, workerID, models.WorkerStatusActive)
}

func (s *DefaultWorkerService) UpdateServices(ctx context.Context, workerID string, services []models.WorkerService) error {
	for i := range services {
		if services[i].ID == "" {
			services[i].ID = uuid.New().String()
		}
		if services[i].Rate < 0 {
			return fmt.Errorf("%w: service rate cannot be negative", ErrInvalidInput)
		}
	}
	return s.Repo.UpdateServices(ctx, workerID, services)
}
