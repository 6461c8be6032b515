package booking

import (
	"context"
	"fmt"

	bookingRepo "fundihub/database/repository/booking"
	"fundihub/models"
	"fundihub/services/schedule"
)

// AvailabilityGuard decides whether a worker may be booked for a requested
// date and time. It is advisory and read-only: the unique slot index at the
// storage layer is the authoritative guard, so a slot that passes here can
// still lose the race at insert time.
type AvailabilityGuard struct {
	Bookings bookingRepo.BookingRepository
}

// CanBook runs the checks in order, short-circuiting on the first failure:
// worker active and verified, slot offered by the timetable, slot not
// already taken.
func (g *AvailabilityGuard) CanBook(ctx context.Context, worker *models.Worker, date, timeStr string) error {
	if !worker.Bookable() {
		return newError(CodeWorkerUnavailable,
			fmt.Sprintf("worker %s is not accepting bookings", worker.ID))
	}

	offered, err := schedule.Offers(worker.Timetable, worker.NonAvailability, date, timeStr, worker.SlotMinutes)
	if err != nil {
		return validationError(err.Error())
	}
	if !offered {
		return newError(CodeSlotNotOffered,
			fmt.Sprintf("worker %s does not offer a %s slot on %s", worker.ID, timeStr, date))
	}

	_, err = g.Bookings.FindActiveBySlot(ctx, worker.ID, date, timeStr)
	if err == nil {
		return newError(CodeSlotTaken,
			fmt.Sprintf("slot %s on %s is already booked", timeStr, date))
	}
	if err != bookingRepo.ErrNotFound {
		return fmt.Errorf("slot lookup failed: %w", err)
	}
	return nil
}
