// internal/domain/training_plan.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrainingPlan represents a generated multi-week running plan owned by a user.
type TrainingPlan struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID           primitive.ObjectID `bson:"userId" json:"userId"`                   // Who the plan belongs to
	Name             string             `bson:"name" json:"name"`                       // e.g., "10K Base Builder"
	TargetDistance   string             `bson:"targetDistance" json:"targetDistance"`   // Free text, e.g., "10km"
	PreparationWeeks int                `bson:"preparationWeeks" json:"preparationWeeks"` // Must be >= 1
	StartDate        time.Time          `bson:"startDate" json:"startDate"`
	EndDate          time.Time          `bson:"endDate" json:"endDate"` // Always StartDate + 7*PreparationWeeks days
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SetSchedule derives StartDate and EndDate from the preparation length.
// EndDate is never set independently of this derivation, so the two fields
// cannot drift apart.
func (p *TrainingPlan) SetSchedule(start time.Time) {
	p.StartDate = start
	p.EndDate = start.AddDate(0, 0, p.PreparationWeeks*7)
}
