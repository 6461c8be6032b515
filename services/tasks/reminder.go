package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"fundihub/config"
	"fundihub/models"
	"fundihub/utils"
)

const TypeBookingReminder = "booking:reminder"

// ReminderPayload is the task body for a scheduled booking reminder.
type ReminderPayload struct {
	BookingID  string `json:"bookingId"`
	CustomerID string `json:"customerId"`
	WorkerID   string `json:"workerId"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}

// NewReminderTask builds an asynq task scheduled for fireAt.
func NewReminderTask(payload ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}
	return task, opts, nil
}

// AsynqReminderScheduler enqueues booking reminders on the Redis-backed
// asynq queue.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

// NewAsynqReminderScheduler builds a scheduler against the configured Redis
// reminder queue.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		Client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// reminderFireAt computes when the reminder for a slot should fire. The slot
// is interpreted in the server's local time zone, matching how workers and
// customers read the timetable.
func reminderFireAt(date, clock string, lead time.Duration) (time.Time, error) {
	day, err := time.ParseInLocation(utils.DateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	minutes, err := utils.ClockToMinutes(clock)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(minutes) * time.Minute).Add(-lead), nil
}

// ScheduleBookingReminder schedules a reminder ahead of the booking slot.
// Slots already closer than the lead time get no reminder.
func (s *AsynqReminderScheduler) ScheduleBookingReminder(ctx context.Context, booking *models.Booking) error {
	lead := time.Duration(config.AppConfig.ReminderLeadMins) * time.Minute
	fireAt, err := reminderFireAt(booking.Date, booking.Time, lead)
	if err != nil {
		return err
	}
	if !fireAt.After(time.Now()) {
		return nil
	}

	task, opts, err := NewReminderTask(ReminderPayload{
		BookingID:  booking.ID,
		CustomerID: booking.CustomerID,
		WorkerID:   booking.WorkerID,
		Date:       booking.Date,
		Time:       booking.Time,
	}, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue booking reminder: %w", err)
	}
	return nil
}
