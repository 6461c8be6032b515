// File: database/repository/worker/queries.go
package workerRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"fundihub/models"
)

func (r *mongoWorkerRepo) findMany(ctx context.Context, filter bson.M) ([]models.Worker, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("worker query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var workers []models.Worker
	if err := cursor.All(ctx, &workers); err != nil {
		return nil, fmt.Errorf("failed to decode workers: %w", err)
	}
	return workers, nil
}

func (r *mongoWorkerRepo) ListByAgent(ctx context.Context, agentID string) ([]models.Worker, error) {
	return r.findMany(ctx, bson.M{"agentId": agentID})
}

func (r *mongoWorkerRepo) ListAll(ctx context.Context) ([]models.Worker, error) {
	return r.findMany(ctx, bson.M{})
}
