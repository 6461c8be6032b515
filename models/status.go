package models

// BookingStatus is the closed set of booking lifecycle states.
type BookingStatus string

const (
	StatusPending        BookingStatus = "PENDING"
	StatusAccepted       BookingStatus = "ACCEPTED"
	StatusPaymentPending BookingStatus = "PAYMENT_PENDING"
	StatusCompleted      BookingStatus = "COMPLETED"
	StatusCancelled      BookingStatus = "CANCELLED"
	StatusDeclined       BookingStatus = "DECLINED"
)

// legalTransitions is the authoritative transition table. Bookings are
// mutated only through BookingLifecycle.Transition, never by direct writes,
// so this table is the single place the state graph lives.
var legalTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:        {StatusAccepted, StatusDeclined, StatusCancelled},
	StatusAccepted:       {StatusPaymentPending, StatusCancelled},
	StatusPaymentPending: {StatusCompleted},
	StatusCompleted:      {},
	StatusCancelled:      {},
	StatusDeclined:       {},
}

// IsValid reports whether s is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	_, ok := legalTransitions[s]
	return ok
}

// CanTransitionTo reports whether the edge s -> target exists in the graph.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range legalTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is legal from s.
func (s BookingStatus) IsTerminal() bool {
	return len(legalTransitions[s]) == 0
}

// ReleasesSlot reports whether a booking in this status no longer occupies
// its (workerId, date, time) slot.
func (s BookingStatus) ReleasesSlot() bool {
	return s == StatusCancelled || s == StatusDeclined
}

// PaymentStatus tracks the payment sub-record on a booking.
type PaymentStatus string

const (
	PaymentStatusUnpaid    PaymentStatus = "UNPAID"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
)

// PaymentMethod is how the customer settled the booking.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "CASH"
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodMobile PaymentMethod = "MOBILE_MONEY"
)

// IsValid reports whether m is a supported payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodMobile:
		return true
	}
	return false
}
