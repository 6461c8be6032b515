package booking

import (
	"context"

	bookingRepo "fundihub/database/repository/booking"
	workerRepo "fundihub/database/repository/worker"
	"fundihub/models"
	"fundihub/services/notification"

	"github.com/go-redis/redis/v8"
)

// CreateBookingRequest carries everything needed to reserve a slot. The
// customer id comes from the auth boundary, never the payload.
type CreateBookingRequest struct {
	CustomerID      string                 `json:"-"`
	WorkerID        string                 `json:"workerId" binding:"required"`
	WorkerServiceID string                 `json:"workerServiceId" binding:"required"`
	Date            string                 `json:"date" binding:"required"`
	Time            string                 `json:"time" binding:"required"`
	CustomerDetails models.CustomerDetails `json:"customerDetails"`
}

// ReminderScheduler schedules a reminder ahead of a booking's slot. Failures
// are logged, never surfaced: reminders are best-effort.
type ReminderScheduler interface {
	ScheduleBookingReminder(ctx context.Context, booking *models.Booking) error
}

// BookingService is the lifecycle boundary: slot listing, creation, status
// transitions, cancellation, and payment recording. All booking mutations go
// through here so the status graph stays authoritative.
type BookingService interface {
	FreeSlots(ctx context.Context, workerID, date string) (*models.FreeSlotsResponse, error)
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error)
	Transition(ctx context.Context, bookingID string, actor models.Actor, newStatus models.BookingStatus, remarks string) (*models.Booking, error)
	Cancel(ctx context.Context, bookingID string, actor models.Actor, reason string) (*models.Booking, error)
	RecordPayment(ctx context.Context, bookingID string, actor models.Actor, method models.PaymentMethod, amount float64) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	ListCustomerBookings(ctx context.Context, customerID string) ([]models.Booking, error)
	ListWorkerBookings(ctx context.Context, workerID, date string) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	WorkerRepo   workerRepo.WorkerRepository
	BookingRepo  bookingRepo.BookingRepository
	Guard        *AvailabilityGuard
	Cache        *redis.Client
	Reminders    ReminderScheduler
	Notification notification.NotificationService
}
