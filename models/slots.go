package models

// TimeSlot is one bookable window computed for a concrete date.
type TimeSlot struct {
	Start string `json:"start"` // "HH:MM"
	End   string `json:"end"`   // "HH:MM"
}

// FreeSlotsResponse is the free-slot listing for a worker and date.
type FreeSlotsResponse struct {
	WorkerID string     `json:"workerId"`
	Date     string     `json:"date"`
	Slots    []TimeSlot `json:"slots"`
}
