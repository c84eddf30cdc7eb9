package employeeRepo

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

// MongoEmployeeRepo implements EmployeeRepository using MongoDB.
type MongoEmployeeRepo struct {
	coll *mongo.Collection
}

// NewMongoEmployeeRepo creates a new instance backed by MongoDB.
func NewMongoEmployeeRepo() EmployeeRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("employees")
	repo := &MongoEmployeeRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoEmployeeRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "establishmentId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new employee document.
func (r *MongoEmployeeRepo) Create(emp *models.Employee) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, emp)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// Update modifies an existing employee document.
func (r *MongoEmployeeRepo) Update(emp *models.Employee) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	emp.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": emp.ID}, bson.M{"$set": emp})
	if err != nil {
		return fmt.Errorf("failed to update employee with id %s: %w", emp.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("employee with id %s not found", emp.ID)
	}
	return nil
}

// Delete removes an employee document by its ID.
func (r *MongoEmployeeRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete employee with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("employee with id %s not found", id)
	}
	return nil
}

// GetByID retrieves an employee by its unique ID.
func (r *MongoEmployeeRepo) GetByID(id string) (*models.Employee, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var emp models.Employee
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&emp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch employee with id %s: %w", id, err)
	}
	return &emp, nil
}

// ListByEstablishment retrieves all employees of an establishment.
func (r *MongoEmployeeRepo) ListByEstablishment(establishmentID string) ([]models.Employee, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"establishmentId": establishmentID})
	if err != nil {
		return nil, fmt.Errorf("failed to list employees for establishment %s: %w", establishmentID, err)
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", err)
	}
	return employees, nil
}
