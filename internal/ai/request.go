// internal/ai/request.go
package ai

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"runcoach/running-app/internal/domain"
)

// FitnessAssessment carries the runner's answers to the five-question
// fitness questionnaire. It is consumed once by the prompt builder and
// never persisted.
type FitnessAssessment struct {
	WeeklyDistance   string // "How many kilometers do you run per week?"
	LongestRecentRun string // "Longest run in the past month and how it felt"
	Experience       string // "How long have you been running regularly?"
	Injuries         string // "Current injuries or recurring issues"
	Pace             string // "Average comfortable pace"
}

// PlanRequest carries the parameters for a plan-generation request.
// Like FitnessAssessment it is ephemeral input to the pipeline.
type PlanRequest struct {
	UserID              primitive.ObjectID
	TargetDistance      string
	PreparationWeeks    int
	FitnessLevel        domain.FitnessLevel
	TrainingDaysPerWeek int
}
