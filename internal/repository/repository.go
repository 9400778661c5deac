package repository

import (
	"runcoach/running-app/internal/domain" // Import our defined domain models
	"context"                              // Standard for request-scoped deadlines, cancellation signals, etc.

	"go.mongodb.org/mongo-driver/bson/primitive" // For using ObjectIDs
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateKey = RepositoryError("duplicate key")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	UpdateFitnessLevel(ctx context.Context, id primitive.ObjectID, level domain.FitnessLevel) error
	Count(ctx context.Context) (int64, error)
}

// TrainingPlanRepository defines the interface for interacting with training plan data.
type TrainingPlanRepository interface {
	Create(ctx context.Context, plan *domain.TrainingPlan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingPlan, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.TrainingPlan, error)
	Update(ctx context.Context, plan *domain.TrainingPlan) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// TrainingDayRepository defines the interface for interacting with training day data.
type TrainingDayRepository interface {
	Create(ctx context.Context, day *domain.TrainingDay) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingDay, error)
	GetByPlanID(ctx context.Context, planID primitive.ObjectID) ([]domain.TrainingDay, error)
	GetByPlanIDAndDayNumber(ctx context.Context, planID primitive.ObjectID, dayNumber int) (*domain.TrainingDay, error)
	DeleteByPlanID(ctx context.Context, planID primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}
