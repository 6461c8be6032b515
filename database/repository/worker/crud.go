// File: database/repository/worker/crud.go
package workerRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"fundihub/models"
)

func (r *mongoWorkerRepo) Create(ctx context.Context, worker *models.Worker) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, worker); err != nil {
		return fmt.Errorf("failed to insert worker: %w", err)
	}
	return nil
}

func (r *mongoWorkerRepo) GetByID(ctx context.Context, workerID string) (*models.Worker, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var worker models.Worker
	err := r.coll.FindOne(ctx, bson.M{"id": workerID}).Decode(&worker)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch worker %s: %w", workerID, err)
	}
	return &worker, nil
}

func (r *mongoWorkerRepo) setFields(ctx context.Context, workerID string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": workerID}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update worker %s: %w", workerID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoWorkerRepo) UpdateTimetable(ctx context.Context, workerID string, timetable []models.DaySchedule, slotMinutes int) error {
	return r.setFields(ctx, workerID, bson.M{"timetable": timetable, "slotMinutes": slotMinutes})
}

func (r *mongoWorkerRepo) AddNonAvailability(ctx context.Context, workerID string, entry models.NonAvailability) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$addToSet": bson.M{"nonAvailability": entry},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": workerID}, update)
	if err != nil {
		return fmt.Errorf("failed to add non-availability for worker %s: %w", workerID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoWorkerRepo) RemoveNonAvailability(ctx context.Context, workerID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"nonAvailability": bson.M{"date": date}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": workerID}, update)
	if err != nil {
		return fmt.Errorf("failed to remove non-availability for worker %s: %w", workerID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoWorkerRepo) SetStatus(ctx context.Context, workerID, status string) error {
	return r.setFields(ctx, workerID, bson.M{"status": status})
}

func (r *mongoWorkerRepo) SetVerificationStatus(ctx context.Context, workerID, verificationStatus string) error {
	return r.setFields(ctx, workerID, bson.M{"verificationStatus": verificationStatus})
}

func (r *mongoWorkerRepo) UpdateServices(ctx context.Context, workerID string, services []models.WorkerService) error {
	return r.setFields(ctx, workerID, bson.M{"services": services})
}
