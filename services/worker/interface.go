package worker

import (
	"context"

	workerRepo "fundihub/database/repository/worker"
	"fundihub/models"
)

// RegisterWorkerRequest is the payload an agent submits to enroll a worker.
type RegisterWorkerRequest struct {
	Profile     models.WorkerProfile   `json:"profile" binding:"required"`
	Services    []models.WorkerService `json:"services"`
	SlotMinutes int                    `json:"slotMinutes"`
}

// TimetableRequest replaces a worker's weekly timetable.
type TimetableRequest struct {
	Timetable   []models.DaySchedule `json:"timetable" binding:"required" validate:"required,dive"`
	SlotMinutes int                  `json:"slotMinutes" validate:"omitempty,gt=0,lte=480"`
}

// WorkerService manages worker enrollment, timetables, and availability
// exceptions on behalf of service agents.
type WorkerService interface {
	Register(ctx context.Context, agentID string, req RegisterWorkerRequest) (*models.Worker, error)
	Get(ctx context.Context, workerID string) (*models.Worker, error)
	ListByAgent(ctx context.Context, agentID string) ([]models.Worker, error)
	SetTimetable(ctx context.Context, workerID string, req TimetableRequest) (*models.Worker, error)
	AddNonAvailability(ctx context.Context, workerID string, entry models.NonAvailability) error
	RemoveNonAvailability(ctx context.Context, workerID, date string) error
	Suspend(ctx context.Context, workerID string) error
	Reinstate(ctx context.Context, workerID string) error
	UpdateServices(ctx context.Context, workerID string, services []models.WorkerService) error
}

// DefaultWorkerService is the production implementation.
type DefaultWorkerService struct {
	Repo workerRepo.WorkerRepository
}
