// internal/ai/prompt.go
package ai

import (
	"fmt"
	"strings"

	"runcoach/running-app/internal/domain"
)

// Prompt builders are pure string construction: identical inputs must
// produce byte-identical prompts. No timestamps, no randomness.

// AssessmentPrompt builds the classification prompt for the fitness task.
// The model is instructed to answer with exactly one of the three level
// tokens and nothing else; the five answers are embedded verbatim in a
// fixed, numbered order.
func AssessmentPrompt(a FitnessAssessment) string {
	return fmt.Sprintf(`Based on the following responses to a running fitness assessment questionnaire, determine the runner's fitness level as either BEGINNER, INTERMEDIATE, or ADVANCED. Only return one of these three fitness levels, with no additional text or explanation.

Fitness Assessment Responses:
1. Weekly running distance: %s
2. Longest recent run and how it felt: %s
3. Running experience (how long running regularly): %s
4. Current injuries or recurring issues: %s
5. Usual pace: %s

Guidelines for classification:
- BEGINNER: New to running, low weekly mileage (under 15km/10mi), no long runs over 5km, less than 6 months consistent running, may have injury concerns, basic goals like finishing a distance
- INTERMEDIATE: Regular runner for 6+ months, weekly mileage of 15-40km, can complete 10km runs comfortably, some race experience, specific time goals
- ADVANCED: Experienced runner (1+ years consistent training), 40+km, regular long runs of 15km+ with good recovery, minimal injury concerns, performance-oriented goals

Based on this information, the runner's fitness level is:`,
		a.WeeklyDistance, a.LongestRecentRun, a.Experience, a.Injuries, a.Pace)
}

// PlanPrompt builds the generation prompt for the plan task. It enumerates
// the closed set of permitted workout labels and pins the exact JSON output
// contract the plan mapper expects.
func PlanPrompt(r PlanRequest) string {
	labels := make([]string, 0, len(domain.AllWorkoutKinds()))
	for _, kind := range domain.AllWorkoutKinds() {
		labels = append(labels, kind.DisplayLabel())
	}
	availableWorkouts := strings.Join(labels, ", ")

	return fmt.Sprintf(`Create a %d-week training plan for a %s runner.

Requirements:
- Target distance: %s
- Weeks to prepare: %d
- Training days per week: %d
- Available workout types: %s

Return ONLY valid JSON in this exact format:

{
  "trainingPlan": {
    "name": "descriptive plan name",
    "targetDistance": "%s",
    "preparationWeeks": %d
  },
  "trainingDays": [
    {
      "dayNumber": 1,
      "workoutType": "Easy Run",
      "distance": "3km",
      "duration": "25 minutes",
      "description": "Comfortable pace to build base"
    }
  ]
}

Important:
- workoutType must exactly match one of: %s
- Include rest days in the schedule
- Progress difficulty appropriately for %s level
- No additional text, only JSON`,
		r.PreparationWeeks, r.FitnessLevel,
		r.TargetDistance, r.PreparationWeeks, r.TrainingDaysPerWeek, availableWorkouts,
		r.TargetDistance, r.PreparationWeeks,
		availableWorkouts, r.FitnessLevel)
}
