// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fundihub/models"
)

func (r *mongoBookingRepo) findMany(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("booking query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// GetByWorkerAndDate lists a worker's bookings; an empty date means all dates.
func (r *mongoBookingRepo) GetByWorkerAndDate(ctx context.Context, workerID, date string) ([]models.Booking, error) {
	filter := bson.M{"workerId": workerID}
	if date != "" {
		filter["date"] = date
	}
	return r.findMany(ctx, filter)
}

// GetActiveByWorkerAndDate returns only the bookings still occupying slots,
// i.e. excluding CANCELLED and DECLINED.
func (r *mongoBookingRepo) GetActiveByWorkerAndDate(ctx context.Context, workerID, date string) ([]models.Booking, error) {
	return r.findMany(ctx, bson.M{"workerId": workerID, "date": date, "active": true})
}

func (r *mongoBookingRepo) GetByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	return r.findMany(ctx, bson.M{"customerId": customerID})
}

func (r *mongoBookingRepo) FindActiveBySlot(ctx context.Context, workerID, date, timeStr string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"workerId": workerID, "date": date, "time": timeStr, "active": true}
	var booking models.Booking
	err := r.coll.FindOne(ctx, filter).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("slot lookup failed: %w", err)
	}
	return &booking, nil
}
