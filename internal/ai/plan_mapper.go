// internal/ai/plan_mapper.go
package ai

import (
	"encoding/json"
	"fmt"
	"log"

	"runcoach/running-app/internal/domain"
)

// --- Expected Output Contract ---
// Pointer fields let us tell "absent" apart from zero values when enforcing
// required keys.

type planPayload struct {
	TrainingPlan *planHeader  `json:"trainingPlan"`
	TrainingDays []dayPayload `json:"trainingDays"`
}

type planHeader struct {
	Name             *string `json:"name"`
	TargetDistance   *string `json:"targetDistance"`
	PreparationWeeks *int    `json:"preparationWeeks"`
}

type dayPayload struct {
	DayNumber   *int    `json:"dayNumber"`
	WorkoutType *string `json:"workoutType"`
	Distance    *string `json:"distance"`
	Duration    *string `json:"duration"`
	Description *string `json:"description"`
}

// MapPlanResponse parses sanitized candidate text into a TrainingPlan and
// its TrainingDays.
//
// Invalid JSON yields *MalformedOutputError and a missing required key
// yields *MissingFieldError. An unrecognized workoutType on a single day is
// recovered locally by substituting Rest; the rest of the plan is kept.
//
// The returned plan has no ID and every day carries a NilObjectID PlanID
// placeholder; both are bound at persistence time by the orchestrator.
func MapPlanResponse(candidate string, req PlanRequest) (*domain.TrainingPlan, []domain.TrainingDay, error) {
	var payload planPayload
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return nil, nil, &MalformedOutputError{Err: err}
	}

	if payload.TrainingPlan == nil {
		return nil, nil, &MissingFieldError{Field: "trainingPlan"}
	}
	header := payload.TrainingPlan
	if header.Name == nil {
		return nil, nil, &MissingFieldError{Field: "trainingPlan.name"}
	}
	if header.TargetDistance == nil {
		return nil, nil, &MissingFieldError{Field: "trainingPlan.targetDistance"}
	}
	if header.PreparationWeeks == nil {
		return nil, nil, &MissingFieldError{Field: "trainingPlan.preparationWeeks"}
	}

	plan := &domain.TrainingPlan{
		UserID:           req.UserID,
		Name:             *header.Name,
		TargetDistance:   *header.TargetDistance,
		PreparationWeeks: *header.PreparationWeeks,
	}

	if payload.TrainingDays == nil {
		return nil, nil, &MissingFieldError{Field: "trainingDays"}
	}

	days := make([]domain.TrainingDay, 0, len(payload.TrainingDays))
	for i, dp := range payload.TrainingDays {
		if dp.DayNumber == nil {
			return nil, nil, &MissingFieldError{Field: fmt.Sprintf("trainingDays[%d].dayNumber", i)}
		}
		if dp.WorkoutType == nil {
			return nil, nil, &MissingFieldError{Field: fmt.Sprintf("trainingDays[%d].workoutType", i)}
		}
		if dp.Description == nil {
			return nil, nil, &MissingFieldError{Field: fmt.Sprintf("trainingDays[%d].description", i)}
		}

		kind, ok := domain.WorkoutKindFromLabel(*dp.WorkoutType)
		if !ok {
			log.Printf("WARN: Unknown workout type %q on day %d, using Rest", *dp.WorkoutType, *dp.DayNumber)
			kind = domain.WorkoutRest
		}

		// Day numbers are not checked for contiguity or uniqueness here;
		// a gap or duplicate is not a parse failure.
		days = append(days, domain.TrainingDay{
			DayNumber:   *dp.DayNumber,
			WorkoutKind: kind,
			Distance:    dp.Distance,
			Duration:    dp.Duration,
			Description: *dp.Description,
		})
	}

	return plan, days, nil
}
