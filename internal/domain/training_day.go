// internal/domain/training_day.go
package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutKind enumerates the workout types the AI is allowed to schedule.
type WorkoutKind string

const (
	WorkoutEasyRun  WorkoutKind = "EASY_RUN"
	WorkoutTempoRun WorkoutKind = "TEMPO_RUN"
	WorkoutInterval WorkoutKind = "INTERVAL"
	WorkoutLongRun  WorkoutKind = "LONG_RUN"
	WorkoutRest     WorkoutKind = "REST"
)

// workoutLabels is the single source of truth for the kind <-> display label
// mapping. The prompt builder enumerates these labels to the model and the
// plan mapper parses them back, so both sides stay in sync.
var workoutLabels = map[WorkoutKind]string{
	WorkoutEasyRun:  "Easy Run",
	WorkoutTempoRun: "Tempo Run",
	WorkoutInterval: "Interval",
	WorkoutLongRun:  "Long Run",
	WorkoutRest:     "Rest",
}

// AllWorkoutKinds returns the closed set of kinds in a fixed order.
// Order matters for prompt determinism.
func AllWorkoutKinds() []WorkoutKind {
	return []WorkoutKind{WorkoutEasyRun, WorkoutTempoRun, WorkoutInterval, WorkoutLongRun, WorkoutRest}
}

// DisplayLabel returns the canonical human-readable label for the kind.
func (k WorkoutKind) DisplayLabel() string {
	return workoutLabels[k]
}

// WorkoutKindFromLabel resolves a display label back to its kind.
// The match is exact and case-sensitive; ok is false for anything outside
// the closed label set.
func WorkoutKindFromLabel(label string) (WorkoutKind, bool) {
	for _, kind := range AllWorkoutKinds() {
		if workoutLabels[kind] == label {
			return kind, true
		}
	}
	return WorkoutRest, false
}

// TrainingDay represents a single day inside a TrainingPlan.
type TrainingDay struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// PlanID stays NilObjectID while the day is only mapped from AI output.
	// It is bound to the real plan ID once the plan itself has been persisted.
	PlanID      primitive.ObjectID `bson:"planId" json:"planId"`
	DayNumber   int                `bson:"dayNumber" json:"dayNumber"` // 1-based, unique within a plan
	WorkoutKind WorkoutKind        `bson:"workoutKind" json:"workoutKind"`
	Distance    *string            `bson:"distance,omitempty" json:"distance,omitempty"` // Free text, e.g., "5km"
	Duration    *string            `bson:"duration,omitempty" json:"duration,omitempty"` // Free text, e.g., "30 minutes"
	Description string             `bson:"description" json:"description"`
}
