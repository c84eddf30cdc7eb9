package establishmentRepo

import (
	"context"
	"fmt"
	"time"

	"barberbook/config"
	"barberbook/database"
	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoEstablishmentRepo implements EstablishmentRepository using MongoDB.
type MongoEstablishmentRepo struct {
	coll *mongo.Collection
}

// NewMongoEstablishmentRepo creates a new instance backed by MongoDB.
func NewMongoEstablishmentRepo() EstablishmentRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("establishments")
	repo := &MongoEstablishmentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoEstablishmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "ownerId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "publicLink", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new establishment document.
func (r *MongoEstablishmentRepo) Create(est *models.Establishment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	est.CreatedAt = now
	est.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, est)
	if err != nil {
		return fmt.Errorf("failed to create establishment: %w", err)
	}
	return nil
}

// Update modifies an existing establishment document.
func (r *MongoEstablishmentRepo) Update(est *models.Establishment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	est.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": est.ID}, bson.M{"$set": est})
	if err != nil {
		return fmt.Errorf("failed to update establishment with id %s: %w", est.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("establishment with id %s not found", est.ID)
	}
	return nil
}

// GetByID retrieves an establishment by its unique ID.
func (r *MongoEstablishmentRepo) GetByID(id string) (*models.Establishment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var est models.Establishment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&est); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch establishment with id %s: %w", id, err)
	}
	return &est, nil
}

// GetByOwnerID retrieves the establishment owned by the given account.
func (r *MongoEstablishmentRepo) GetByOwnerID(ownerID string) (*models.Establishment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var est models.Establishment
	if err := r.coll.FindOne(ctx, bson.M{"ownerId": ownerID}).Decode(&est); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch establishment for owner %s: %w", ownerID, err)
	}
	return &est, nil
}
