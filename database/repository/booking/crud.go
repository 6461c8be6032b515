// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"fundihub/models"
)

// isTransient reports whether the error is a connectivity failure worth one
// transparent retry. Validation and constraint errors are never retried.
func isTransient(err error) bool {
	return mongo.IsNetworkError(err) || mongo.IsTimeout(err)
}

func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var err error
	for attempt := 0; attempt < 3; attempt++ {
		_, err = r.coll.InsertOne(ctx, booking)
		if err == nil {
			return nil
		}
		if mongo.IsDuplicateKeyError(err) {
			// Two indexes can fire here. If a retry raced our own earlier
			// write, the booking id already exists and the insert is done;
			// otherwise the slot index caught a concurrent booking.
			var existing models.Booking
			if ferr := r.coll.FindOne(ctx, bson.M{"id": booking.ID}).Decode(&existing); ferr == nil {
				return nil
			}
			return ErrSlotConflict
		}
		if !isTransient(err) {
			return fmt.Errorf("failed to insert booking: %w", err)
		}
	}
	return fmt.Errorf("failed to insert booking after retries: %w", err)
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	return &booking, nil
}

// UpdateLifecycle persists the status, active flag, timeline, and remark
// fields after a lifecycle transition. The write is keyed by booking id and
// idempotent, so transient failures are retried.
func (r *mongoBookingRepo) UpdateLifecycle(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":             booking.Status,
		"active":             booking.Active,
		"timeline":           booking.Timeline,
		"remarks":            booking.Remarks,
		"cancellationReason": booking.CancellationReason,
		"updatedAt":          booking.UpdatedAt,
	}}

	var err error
	for attempt := 0; attempt < 3; attempt++ {
		var res *mongo.UpdateResult
		res, err = r.coll.UpdateOne(ctx, bson.M{"id": booking.ID}, update)
		if err == nil {
			if res.MatchedCount == 0 {
				return ErrNotFound
			}
			return nil
		}
		if !isTransient(err) {
			return fmt.Errorf("failed to update booking %s: %w", booking.ID, err)
		}
	}
	return fmt.Errorf("failed to update booking %s after retries: %w", booking.ID, err)
}

func (r *mongoBookingRepo) UpdatePayment(ctx context.Context, bookingID string, payment models.Payment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"payment":   payment,
		"updatedAt": time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": bookingID}, update)
	if err != nil {
		return fmt.Errorf("failed to update payment for booking %s: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
