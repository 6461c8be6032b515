package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "fundihub/database/repository/booking"
	workerRepo "fundihub/database/repository/worker"
	"fundihub/models"
	"fundihub/services/schedule"
	"fundihub/utils"
)

const freeSlotsCacheTTL = 60 * time.Second

func freeSlotsCacheKey(workerID, date string) string {
	return utils.FreeSlotsCachePrefix + workerID + ":" + date
}

// FreeSlots returns the ordered open slots for a worker and date. Responses
// are cached briefly; every booking write against the worker/date evicts the
// entry.
func (s *DefaultBookingService) FreeSlots(ctx context.Context, workerID, date string) (*models.FreeSlotsResponse, error) {
	logger := utils.GetLogger()

	if _, err := utils.ParseDate(date); err != nil {
		return nil, validationError(err.Error())
	}

	cacheKey := freeSlotsCacheKey(workerID, date)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var resp models.FreeSlotsResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	worker, err := s.WorkerRepo.GetByID(ctx, workerID)
	if err == workerRepo.ErrNotFound {
		return nil, notFoundError("worker", workerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load worker: %w", err)
	}

	existing, err := s.BookingRepo.GetActiveByWorkerAndDate(ctx, workerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	slots, err := schedule.FreeSlots(worker.Timetable, worker.NonAvailability, existing, date, worker.SlotMinutes)
	if err != nil {
		return nil, validationError(err.Error())
	}

	resp := &models.FreeSlotsResponse{WorkerID: workerID, Date: date, Slots: slots}
	if s.Cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, freeSlotsCacheTTL).Err(); err != nil {
				logger.Warn("failed to cache free slots", zap.String("workerID", workerID), zap.Error(err))
			}
		}
	}
	return resp, nil
}

// CreateBooking reserves a slot. The availability guard gives an early,
// user-friendly rejection; the unique slot index at insert time is the
// correctness backstop, and a conflict there surfaces as the same SLOT_TAKEN
// outcome the guard would have produced.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	if _, err := utils.ParseDate(req.Date); err != nil {
		return nil, validationError(err.Error())
	}
	if _, err := utils.ClockToMinutes(req.Time); err != nil {
		return nil, validationError(err.Error())
	}
	today := time.Now().Format(utils.DateLayout)
	if req.Date < today {
		return nil, validationError(fmt.Sprintf("booking date %s is in the past", req.Date))
	}

	worker, err := s.WorkerRepo.GetByID(ctx, req.WorkerID)
	if err == workerRepo.ErrNotFound {
		return nil, notFoundError("worker", req.WorkerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load worker: %w", err)
	}

	svc := worker.ServiceByID(req.WorkerServiceID)
	if svc == nil {
		return nil, notFoundError("worker service", req.WorkerServiceID)
	}

	if err := s.Guard.CanBook(ctx, worker, req.Date, req.Time); err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &models.Booking{
		ID:              uuid.New().String(),
		CustomerID:      req.CustomerID,
		WorkerID:        worker.ID,
		WorkerServiceID: svc.ID,
		Date:            req.Date,
		Time:            req.Time,
		Status:          models.StatusPending,
		Active:          true,
		Payment: models.Payment{
			Amount: svc.Rate,
			Status: models.PaymentStatusUnpaid,
		},
		Timeline:        models.Timeline{RequestedAt: now},
		CustomerDetails: req.CustomerDetails,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.BookingRepo.Create(ctx, booking); err != nil {
		if err == bookingRepo.ErrSlotConflict {
			// A concurrent booking won the slot between the guard check and
			// the insert. Same error taxonomy as the guard.
			return nil, newError(CodeSlotTaken,
				fmt.Sprintf("slot %s on %s is already booked", req.Time, req.Date))
		}
		return nil, err
	}

	s.evictFreeSlots(ctx, booking.WorkerID, booking.Date)

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(ctx, booking); err != nil {
			logger.Warn("failed to schedule booking reminder",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}
	if s.Notification != nil {
		s.Notification.NotifyWorker(ctx, booking.WorkerID, "New booking request",
			fmt.Sprintf("You have a new booking for %s at %s", booking.Date, booking.Time))
	}

	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("workerID", booking.WorkerID),
		zap.String("date", booking.Date),
		zap.String("time", booking.Time))
	return booking, nil
}

// Transition moves a booking along the status graph, stamping the matching
// timeline field. Disallowed edges fail with ILLEGAL_TRANSITION carrying the
// current and requested status.
func (s *DefaultBookingService) Transition(ctx context.Context, bookingID string, actor models.Actor, newStatus models.BookingStatus, remarks string) (*models.Booking, error) {
	if !newStatus.IsValid() {
		return nil, validationError(fmt.Sprintf("unknown booking status %q", newStatus))
	}
	return s.applyTransition(ctx, bookingID, actor, newStatus, remarks, "")
}

// Cancel is a Transition convenience that requires a non-empty reason. It is
// only legal from PENDING or ACCEPTED, which the transition table enforces.
func (s *DefaultBookingService) Cancel(ctx context.Context, bookingID string, actor models.Actor, reason string) (*models.Booking, error) {
	if reason == "" {
		return nil, validationError("cancellation requires a reason")
	}
	return s.applyTransition(ctx, bookingID, actor, models.StatusCancelled, "", reason)
}

func (s *DefaultBookingService) applyTransition(ctx context.Context, bookingID string, actor models.Actor, newStatus models.BookingStatus, remarks, cancellationReason string) (*models.Booking, error) {
	logger := utils.GetLogger()

	booking, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err == bookingRepo.ErrNotFound {
		return nil, notFoundError("booking", bookingID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	if err := authorizeTransition(actor, booking, newStatus); err != nil {
		return nil, err
	}
	if !booking.Status.CanTransitionTo(newStatus) {
		return nil, illegalTransition(booking.Status, newStatus)
	}

	now := time.Now()
	switch newStatus {
	case models.StatusAccepted:
		booking.Timeline.AcceptedAt = &now
	case models.StatusPaymentPending:
		booking.Timeline.StartedAt = &now
	case models.StatusCompleted:
		booking.Timeline.CompletedAt = &now
	case models.StatusCancelled:
		booking.Timeline.CancelledAt = &now
		booking.CancellationReason = cancellationReason
	case models.StatusDeclined:
		booking.Timeline.DeclinedAt = &now
	}
	if remarks != "" {
		booking.Remarks = remarks
	}
	booking.Status = newStatus
	booking.Active = !newStatus.ReleasesSlot()
	booking.UpdatedAt = now

	if err := s.BookingRepo.UpdateLifecycle(ctx, booking); err != nil {
		if err == bookingRepo.ErrNotFound {
			return nil, notFoundError("booking", bookingID)
		}
		return nil, err
	}

	if newStatus.ReleasesSlot() {
		s.evictFreeSlots(ctx, booking.WorkerID, booking.Date)
	}
	s.notifyTransition(ctx, booking, newStatus)

	logger.Info("booking transitioned",
		zap.String("bookingID", booking.ID),
		zap.String("status", string(newStatus)),
		zap.String("actor", actor.ID),
		zap.String("role", actor.Role))
	return booking, nil
}

// authorizeTransition keeps the lifecycle honest about who may do what:
// customers may only cancel their own bookings; workers act on bookings
// assigned to them; agents and admins act on any.
func authorizeTransition(actor models.Actor, booking *models.Booking, newStatus models.BookingStatus) error {
	switch actor.Role {
	case models.RoleAgent, models.RoleAdmin:
		return nil
	case models.RoleWorker:
		if actor.ID != booking.WorkerID {
			return newError(CodeForbidden, "booking belongs to another worker")
		}
		return nil
	case models.RoleCustomer:
		if newStatus != models.StatusCancelled {
			return newError(CodeForbidden, "customers may only cancel bookings")
		}
		if actor.ID != booking.CustomerID {
			return newError(CodeForbidden, "booking belongs to another customer")
		}
		return nil
	}
	return newError(CodeForbidden, "unknown actor role")
}

func (s *DefaultBookingService) evictFreeSlots(ctx context.Context, workerID, date string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, freeSlotsCacheKey(workerID, date)).Err(); err != nil {
		utils.GetLogger().Warn("failed to evict free-slots cache",
			zap.String("workerID", workerID), zap.String("date", date), zap.Error(err))
	}
}

func (s *DefaultBookingService) notifyTransition(ctx context.Context, booking *models.Booking, newStatus models.BookingStatus) {
	if s.Notification == nil {
		return
	}
	switch newStatus {
	case models.StatusAccepted:
		s.Notification.NotifyCustomer(ctx, booking.CustomerID, "Booking accepted",
			fmt.Sprintf("Your booking for %s at %s was accepted", booking.Date, booking.Time))
	case models.StatusDeclined:
		s.Notification.NotifyCustomer(ctx, booking.CustomerID, "Booking declined",
			fmt.Sprintf("Your booking for %s at %s was declined", booking.Date, booking.Time))
	case models.StatusCancelled:
		s.Notification.NotifyWorker(ctx, booking.WorkerID, "Booking cancelled",
			fmt.Sprintf("The booking for %s at %s was cancelled", booking.Date, booking.Time))
	}
}
