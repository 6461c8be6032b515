package models

import "time"

// CustomerDetails is the contact snapshot captured at booking time so the
// worker can reach the customer even if the account changes later.
type CustomerDetails struct {
	Name    string `bson:"name" json:"name"`
	Phone   string `bson:"phone" json:"phone"`
	Address string `bson:"address" json:"address"`
}

// Payment is the payment sub-record on a booking. This records how a booking
// was settled; it is not a gateway integration.
type Payment struct {
	Amount float64       `bson:"amount" json:"amount"`
	Method PaymentMethod `bson:"method,omitempty" json:"method,omitempty"`
	Status PaymentStatus `bson:"status" json:"status"`
	PaidAt *time.Time    `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
}

// Timeline holds the lifecycle timestamps. A field is nil until the booking
// reaches the matching state.
type Timeline struct {
	RequestedAt time.Time  `bson:"requestedAt" json:"requestedAt"`
	AcceptedAt  *time.Time `bson:"acceptedAt,omitempty" json:"acceptedAt,omitempty"`
	StartedAt   *time.Time `bson:"startedAt,omitempty" json:"startedAt,omitempty"`
	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CancelledAt *time.Time `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	DeclinedAt  *time.Time `bson:"declinedAt,omitempty" json:"declinedAt,omitempty"`
}

// Booking represents one reservation of a worker's slot. Bookings are never
// physically deleted; cancellation and decline are statuses, which preserves
// history for disputes and analytics. Active mirrors the status: it is false
// exactly when the status releases the slot, and backs the partial unique
// index that prevents double booking.
type Booking struct {
	ID                 string          `bson:"id" json:"id"`
	CustomerID         string          `bson:"customerId" json:"customerId"`
	WorkerID           string          `bson:"workerId" json:"workerId"`
	WorkerServiceID    string          `bson:"workerServiceId" json:"workerServiceId"`
	Date               string          `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time               string          `bson:"time" json:"time"` // slot start, "HH:MM"
	Status             BookingStatus   `bson:"status" json:"status"`
	Active             bool            `bson:"active" json:"-"`
	Payment            Payment         `bson:"payment" json:"payment"`
	Timeline           Timeline        `bson:"timeline" json:"timeline"`
	CustomerDetails    CustomerDetails `bson:"customerDetails" json:"customerDetails"`
	Remarks            string          `bson:"remarks,omitempty" json:"remarks,omitempty"`
	CancellationReason string          `bson:"cancellationReason,omitempty" json:"cancellationReason,omitempty"`
	CreatedAt          time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time       `bson:"updatedAt" json:"updatedAt"`
}
