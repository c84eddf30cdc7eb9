package availabilityRepo

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

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo creates a new instance backed by MongoDB.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("availabilities")
	repo := &MongoAvailabilityRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "employeeId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Replace upserts the employee's full weekly template.
func (r *MongoAvailabilityRepo) Replace(employeeID string, days []models.AvailabilityDay) (*models.Availability, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{"employeeId": employeeID}
	update := bson.M{"$set": bson.M{
		"employeeId": employeeID,
		"days":       days,
		"updatedAt":  now,
	}}
	opts := options.Update().SetUpsert(true)

	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return nil, fmt.Errorf("failed to replace availability for employee %s: %w", employeeID, err)
	}

	return &models.Availability{EmployeeID: employeeID, Days: days, UpdatedAt: now}, nil
}

// GetByEmployee fetches an employee's template, nil when none is configured.
func (r *MongoAvailabilityRepo) GetByEmployee(employeeID string) (*models.Availability, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var avail models.Availability
	if err := r.coll.FindOne(ctx, bson.M{"employeeId": employeeID}).Decode(&avail); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch availability for employee %s: %w", employeeID, err)
	}
	return &avail, nil
}
