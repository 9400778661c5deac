// internal/repository/mongo/training_day_repo.go
package mongo

import (
	"runcoach/running-app/internal/domain"
	"runcoach/running-app/internal/repository"
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const trainingDayCollectionName = "training_days"

// mongoTrainingDayRepository implements repository.TrainingDayRepository
type mongoTrainingDayRepository struct {
	collection *mongo.Collection
}

// NewMongoTrainingDayRepository creates a new TrainingDay repository.
func NewMongoTrainingDayRepository(db *mongo.Database) repository.TrainingDayRepository {
	return &mongoTrainingDayRepository{
		collection: db.Collection(trainingDayCollectionName),
	}
}

// Create inserts a new training day. The day must already be bound to a
// persisted plan; the NilObjectID placeholder from the mapping stage is
// rejected here.
func (r *mongoTrainingDayRepository) Create(ctx context.Context, day *domain.TrainingDay) (primitive.ObjectID, error) {
	if day.PlanID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("training day requires a persisted planId")
	}
	if day.DayNumber < 1 || day.Description == "" {
		return primitive.NilObjectID, errors.New("training day requires dayNumber and description")
	}
	day.ID = primitive.NewObjectID()

	result, err := r.collection.InsertOne(ctx, day)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted day ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single training day by its ID.
func (r *mongoTrainingDayRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingDay, error) {
	var day domain.TrainingDay
	filter := bson.M{"_id": id}
	err := r.collection.FindOne(ctx, filter).Decode(&day)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &day, nil
}

// GetByPlanID retrieves all days of a plan, ordered by day number.
func (r *mongoTrainingDayRepository) GetByPlanID(ctx context.Context, planID primitive.ObjectID) ([]domain.TrainingDay, error) {
	var days []domain.TrainingDay
	filter := bson.M{"planId": planID}
	findOptions := options.Find().SetSort(bson.D{{Key: "dayNumber", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &days); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	// Return empty slice if no days found
	return days, nil
}

// GetByPlanIDAndDayNumber retrieves the single day with the given number
// within a plan, used by the schedule resolver.
func (r *mongoTrainingDayRepository) GetByPlanIDAndDayNumber(ctx context.Context, planID primitive.ObjectID, dayNumber int) (*domain.TrainingDay, error) {
	var day domain.TrainingDay
	filter := bson.M{"planId": planID, "dayNumber": dayNumber}
	err := r.collection.FindOne(ctx, filter).Decode(&day)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &day, nil
}

// DeleteByPlanID removes all days belonging to a plan. Deleting zero days is
// not an error; a regenerated plan may be replacing an empty one.
func (r *mongoTrainingDayRepository) DeleteByPlanID(ctx context.Context, planID primitive.ObjectID) error {
	if planID == primitive.NilObjectID {
		return errors.New("plan ID is required for deletion")
	}
	_, err := r.collection.DeleteMany(ctx, bson.M{"planId": planID})
	return err
}

// Count returns the total number of training days.
func (r *mongoTrainingDayRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// EnsureTrainingDayIndexes creates necessary indexes. Call during startup.
func EnsureTrainingDayIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Main query pattern: resolving a specific day within a plan.
			// Unique so a plan cannot hold two days with the same number.
			Keys:    bson.D{{Key: "planId", Value: 1}, {Key: "dayNumber", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
