package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	bookingRepo "fundihub/database/repository/booking"
	"fundihub/models"
	"fundihub/utils"
)

// RecordPayment records how a booking was settled. This is a record, not a
// gateway charge, so re-confirming an already-completed payment is a no-op
// success. The booking must have been accepted before a payment can be
// recorded.
func (s *DefaultBookingService) RecordPayment(ctx context.Context, bookingID string, actor models.Actor, method models.PaymentMethod, amount float64) (*models.Booking, error) {
	if !method.IsValid() {
		return nil, validationError(fmt.Sprintf("unknown payment method %q", method))
	}
	if amount <= 0 {
		return nil, validationError("payment amount must be positive")
	}

	booking, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err == bookingRepo.ErrNotFound {
		return nil, notFoundError("booking", bookingID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	if actor.Role == models.RoleWorker && actor.ID != booking.WorkerID {
		return nil, newError(CodeForbidden, "booking belongs to another worker")
	}

	if booking.Payment.Status == models.PaymentStatusCompleted {
		// Idempotent re-confirm: the stored record stays unchanged.
		return booking, nil
	}

	switch booking.Status {
	case models.StatusAccepted, models.StatusPaymentPending, models.StatusCompleted:
	default:
		return nil, newError(CodeBookingNotReady,
			fmt.Sprintf("booking in status %s is not ready for payment", booking.Status))
	}

	now := time.Now()
	booking.Payment = models.Payment{
		Amount: amount,
		Method: method,
		Status: models.PaymentStatusCompleted,
		PaidAt: &now,
	}
	if err := s.BookingRepo.UpdatePayment(ctx, bookingID, booking.Payment); err != nil {
		if err == bookingRepo.ErrNotFound {
			return nil, notFoundError("booking", bookingID)
		}
		return nil, err
	}

	utils.GetLogger().Info("payment recorded",
		zap.String("bookingID", bookingID),
		zap.String("method", string(method)),
		zap.Float64("amount", amount))
	return booking, nil
}
