package models

import "time"

// Worker statuses. Only an active worker can be booked.
const (
	WorkerStatusActive    = "active"
	WorkerStatusSuspended = "suspended"
)

// Worker verification statuses, managed by the worker's service agent.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// TimeRange is an open window within a day, in minutes from midnight
// (e.g. 540–720 for 09:00–12:00). Ranges within a day must be normalized:
// start < end and no overlaps.
type TimeRange struct {
	Start int `bson:"start" json:"start" validate:"gte=0,lt=1440"`
	End   int `bson:"end" json:"end" validate:"gt=0,lte=1440,gtfield=Start"`
}

// DaySchedule holds the open ranges for one weekday (0 = Sunday, per
// time.Weekday).
type DaySchedule struct {
	Day    time.Weekday `bson:"day" json:"day" validate:"gte=0,lte=6"`
	Ranges []TimeRange  `bson:"ranges" json:"ranges" validate:"dive"`
}

// NonAvailability is an explicit date-level exception overriding the weekly
// timetable, e.g. leave or a public holiday.
type NonAvailability struct {
	Date   string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Reason string `bson:"reason,omitempty" json:"reason,omitempty"`
}

// WorkerService is one offering in a worker's catalogue; bookings reference
// it by ID.
type WorkerService struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Rate     float64 `bson:"rate" json:"rate"`
	Currency string  `bson:"currency" json:"currency"`
}

// WorkerProfile carries the worker's public identity fields.
type WorkerProfile struct {
	Name        string `bson:"name" json:"name"`
	Phone       string `bson:"phone" json:"phone"`
	Email       string `bson:"email" json:"email,omitempty"`
	ServiceType string `bson:"serviceType" json:"serviceType"`
	Area        string `bson:"area" json:"area,omitempty"`
}

// Worker is a bookable service provider. The timetable and non-availability
// records are mutated only by the worker or their managing agent.
type Worker struct {
	ID                 string            `bson:"id" json:"id"`
	AgentID            string            `bson:"agentId" json:"agentId,omitempty"`
	Profile            WorkerProfile     `bson:"profile" json:"profile"`
	Status             string            `bson:"status" json:"status"`
	VerificationStatus string            `bson:"verificationStatus" json:"verificationStatus"`
	Timetable          []DaySchedule     `bson:"timetable" json:"timetable,omitempty"`
	NonAvailability    []NonAvailability `bson:"nonAvailability" json:"nonAvailability,omitempty"`
	SlotMinutes        int               `bson:"slotMinutes" json:"slotMinutes"` // slot granularity, default 60
	Services           []WorkerService   `bson:"services" json:"services,omitempty"`
	CreatedAt          time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// Bookable reports whether the worker may receive new bookings at all.
func (w *Worker) Bookable() bool {
	return w.Status == WorkerStatusActive && w.VerificationStatus == VerificationVerified
}

// ServiceByID looks up an offering in the worker's catalogue.
func (w *Worker) ServiceByID(id string) *WorkerService {
	for i := range w.Services {
		if w.Services[i].ID == id {
			return &w.Services[i]
		}
	}
	return nil
}
