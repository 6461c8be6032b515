package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundihub/models"
)

func TestReminderFireAtUsesLocalZone(t *testing.T) {
	fireAt, err := reminderFireAt("2030-01-07", "10:00", time.Hour)
	require.NoError(t, err)

	want := time.Date(2030, time.January, 7, 9, 0, 0, 0, time.Local)
	assert.True(t, fireAt.Equal(want), "got %s, want %s", fireAt, want)
}

func TestReminderFireAtRejectsBadInput(t *testing.T) {
	_, err := reminderFireAt("07-01-2030", "10:00", time.Hour)
	assert.Error(t, err)

	_, err = reminderFireAt("2030-01-07", "10am", time.Hour)
	assert.Error(t, err)
}

func TestScheduleSkipsSlotsWithinLead(t *testing.T) {
	// Slot already in the past: nothing gets enqueued, the nil client is
	// never touched.
	s := &AsynqReminderScheduler{}
	err := s.ScheduleBookingReminder(context.Background(), &models.Booking{
		Date: "2020-01-06",
		Time: "09:00",
	})
	assert.NoError(t, err)
}
