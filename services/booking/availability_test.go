package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"fundihub/models"
)

func TestGuardChecksWorkerFirst(t *testing.T) {
	// A suspended worker with a taken slot fails on availability, not on the
	// slot: the checks are ordered.
	w := testWorker()
	w.Status = models.WorkerStatusSuspended

	repo := newFakeBookingRepo()
	require.NoError(t, repo.Create(context.Background(), &models.Booking{
		ID: "b1", WorkerID: w.ID, Date: testMonday, Time: "09:00",
		Status: models.StatusPending, Active: true,
	}))

	guard := &AvailabilityGuard{Bookings: repo}
	err := guard.CanBook(context.Background(), w, testMonday, "09:00")
	assertCode(t, err, CodeWorkerUnavailable)
}

func TestGuardOfferedBeforeTaken(t *testing.T) {
	w := testWorker()
	repo := newFakeBookingRepo()
	guard := &AvailabilityGuard{Bookings: repo}

	// A time the timetable never offers is SLOT_NOT_OFFERED even when free.
	err := guard.CanBook(context.Background(), w, testMonday, "14:00")
	assertCode(t, err, CodeSlotNotOffered)

	// An offered but occupied slot is SLOT_TAKEN.
	require.NoError(t, repo.Create(context.Background(), &models.Booking{
		ID: "b1", WorkerID: w.ID, Date: testMonday, Time: "10:00",
		Status: models.StatusPending, Active: true,
	}))
	err = guard.CanBook(context.Background(), w, testMonday, "10:00")
	assertCode(t, err, CodeSlotTaken)
}

func TestGuardNonAvailabilityBlocksDay(t *testing.T) {
	w := testWorker()
	w.NonAvailability = []models.NonAvailability{{Date: testMonday, Reason: "sick"}}

	guard := &AvailabilityGuard{Bookings: newFakeBookingRepo()}
	err := guard.CanBook(context.Background(), w, testMonday, "09:00")
	assertCode(t, err, CodeSlotNotOffered)
}

func TestGuardAllowsFreeOfferedSlot(t *testing.T) {
	guard := &AvailabilityGuard{Bookings: newFakeBookingRepo()}
	err := guard.CanBook(context.Background(), testWorker(), testMonday, "11:00")
	require.NoError(t, err)
}
