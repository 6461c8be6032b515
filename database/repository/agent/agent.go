// File: database/repository/agent/agent.go
package agentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fundihub/database"
	"fundihub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no agent matches the given id or email.
var ErrNotFound = errors.New("agent not found")

type AgentRepository interface {
	Create(ctx context.Context, agent *models.ServiceAgent) error
	GetByID(ctx context.Context, agentID string) (*models.ServiceAgent, error)
	GetByEmail(ctx context.Context, email string) (*models.ServiceAgent, error)
	ListAll(ctx context.Context) ([]models.ServiceAgent, error)
	UpdateAreas(ctx context.Context, agentID string, areas []string) error
	UpdateTokenHash(ctx context.Context, agentID, tokenHash string) error
	EnsureIndexes() error
}

type mongoAgentRepo struct {
	coll *mongo.Collection
}

// NewMongoAgentRepo constructs a new MongoDB AgentRepository.
func NewMongoAgentRepo() AgentRepository {
	return &mongoAgentRepo{
		coll: database.DB().Collection("agents"),
	}
}

func (r *mongoAgentRepo) Create(ctx context.Context, agent *models.ServiceAgent) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, agent); err != nil {
		return fmt.Errorf("failed to insert agent: %w", err)
	}
	return nil
}

func (r *mongoAgentRepo) GetByID(ctx context.Context, agentID string) (*models.ServiceAgent, error) {
	return r.findOne(ctx, bson.M{"id": agentID})
}

func (r *mongoAgentRepo) GetByEmail(ctx context.Context, email string) (*models.ServiceAgent, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoAgentRepo) findOne(ctx context.Context, filter bson.M) (*models.ServiceAgent, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var agent models.ServiceAgent
	err := r.coll.FindOne(ctx, filter).Decode(&agent)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agent: %w", err)
	}
	return &agent, nil
}

func (r *mongoAgentRepo) ListAll(ctx context.Context) ([]models.ServiceAgent, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("agent query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var agents []models.ServiceAgent
	if err := cursor.All(ctx, &agents); err != nil {
		return nil, fmt.Errorf("failed to decode agents: %w", err)
	}
	return agents, nil
}

func (r *mongoAgentRepo) UpdateAreas(ctx context.Context, agentID string, areas []string) error {
	return r.setFields(ctx, agentID, bson.M{"areas": areas})
}

func (r *mongoAgentRepo) UpdateTokenHash(ctx context.Context, agentID, tokenHash string) error {
	return r.setFields(ctx, agentID, bson.M{"security.tokenHash": tokenHash})
}

func (r *mongoAgentRepo) setFields(ctx context.Context, agentID string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": agentID}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update agent %s: %w", agentID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the agents collection.
func (r *mongoAgentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_email"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create agent indexes: %w", err)
	}
	return nil
}
