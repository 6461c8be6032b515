// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"fundihub/database"
	"fundihub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotConflict is returned when the unique slot index rejects an insert:
// a concurrent booking already holds the (workerId, date, time) tuple.
var ErrSlotConflict = errors.New("slot already booked")

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

type BookingRepository interface {
	// Create inserts the booking. The unique partial index on
	// (workerId, date, time) over active bookings is the authoritative
	// double-booking guard; a duplicate key maps to ErrSlotConflict.
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	GetByWorkerAndDate(ctx context.Context, workerID, date string) ([]models.Booking, error)
	GetActiveByWorkerAndDate(ctx context.Context, workerID, date string) ([]models.Booking, error)
	GetByCustomer(ctx context.Context, customerID string) ([]models.Booking, error)
	FindActiveBySlot(ctx context.Context, workerID, date, timeStr string) (*models.Booking, error)
	UpdateLifecycle(ctx context.Context, booking *models.Booking) error
	UpdatePayment(ctx context.Context, bookingID string, payment models.Payment) error
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
