// File: database/repository/worker/interface.go
package workerRepo

import (
	"context"
	"errors"

	"fundihub/database"
	"fundihub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no worker matches the given id.
var ErrNotFound = errors.New("worker not found")

type WorkerRepository interface {
	Create(ctx context.Context, worker *models.Worker) error
	GetByID(ctx context.Context, workerID string) (*models.Worker, error)
	ListByAgent(ctx context.Context, agentID string) ([]models.Worker, error)
	ListAll(ctx context.Context) ([]models.Worker, error)
	UpdateTimetable(ctx context.Context, workerID string, timetable []models.DaySchedule, slotMinutes int) error
	AddNonAvailability(ctx context.Context, workerID string, entry models.NonAvailability) error
	RemoveNonAvailability(ctx context.Context, workerID, date string) error
	SetStatus(ctx context.Context, workerID, status string) error
	SetVerificationStatus(ctx context.Context, workerID, verificationStatus string) error
	UpdateServices(ctx context.Context, workerID string, services []models.WorkerService) error
	EnsureIndexes() error
}

type mongoWorkerRepo struct {
	coll *mongo.Collection
}

// NewMongoWorkerRepo constructs a new MongoDB WorkerRepository.
func NewMongoWorkerRepo() WorkerRepository {
	return &mongoWorkerRepo{
		coll: database.DB().Collection("workers"),
	}
}
