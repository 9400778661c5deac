package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"path"
	"time"

	"runcoach/running-app/internal/ai"
	"runcoach/running-app/internal/domain"
	"runcoach/running-app/internal/repository"
	"runcoach/running-app/internal/storage"

	"github.com/google/uuid" // For generating unique export object keys
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrPlanNotFound    = errors.New("training plan not found")
	ErrNotPlanOwner    = errors.New("training plan does not belong to this user")
	ErrUserNotAssessed = errors.New("user has not completed the fitness assessment")
	ErrInvalidRequest  = errors.New("invalid plan request parameters")
	ErrExportFailed    = errors.New("failed to export training plan")
)

// Generation settings per task. Classification needs a short, deterministic
// answer; plan drafting benefits from more variety.
var (
	assessmentOptions = ai.CompletionOptions{Temperature: 0.3, MaxOutputTokens: 10}
	planOptions       = ai.CompletionOptions{Temperature: 0.7}
)

// GenerationClient is the slice of the AI client the coach service uses.
type GenerationClient interface {
	Complete(ctx context.Context, prompt string, opts ai.CompletionOptions) (string, error)
}

// --- Service Interface ---
type CoachService interface {
	GetUser(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	AssessFitnessLevel(ctx context.Context, userID primitive.ObjectID, assessment ai.FitnessAssessment) (domain.FitnessLevel, error)
	GenerateTrainingPlan(ctx context.Context, req ai.PlanRequest) (*domain.TrainingPlan, error)
	GetUserTrainingPlan(ctx context.Context, user *domain.User) (*domain.TrainingPlan, error)
	UpdateTrainingPlan(ctx context.Context, user *domain.User, plan *domain.TrainingPlan) error
	GetTrainingDays(ctx context.Context, user *domain.User, planID primitive.ObjectID) ([]domain.TrainingDay, error)
	GetTodaysWorkout(ctx context.Context, user *domain.User, planID primitive.ObjectID) (*domain.TrainingDay, error)
	ExportTrainingPlan(ctx context.Context, user *domain.User, planID primitive.ObjectID) (string, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	CountUsers(ctx context.Context) (int64, error)
}

// --- Service Implementation ---

// coachService drives the AI-response pipeline and the stored-plan queries.
type coachService struct {
	userRepo repository.UserRepository
	planRepo repository.TrainingPlanRepository
	dayRepo  repository.TrainingDayRepository
	genAI    GenerationClient
	archive  storage.PlanArchive
}

// NewCoachService creates a new instance of coachService.
func NewCoachService(
	userRepo repository.UserRepository,
	planRepo repository.TrainingPlanRepository,
	dayRepo repository.TrainingDayRepository,
	genAI GenerationClient,
	archive storage.PlanArchive,
) CoachService {
	return &coachService{
		userRepo: userRepo,
		planRepo: planRepo,
		dayRepo:  dayRepo,
		genAI:    genAI,
		archive:  archive,
	}
}

// GetUser loads the acting user for handlers that need ownership checks.
func (s *coachService) GetUser(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// === Fitness Assessment ===

// AssessFitnessLevel runs the classification task for the questionnaire
// answers and persists the resulting level on the user.
//
// Transport and upstream failures propagate to the caller. An answer the
// classifier cannot recognize does not: it resolves to FitnessLevelNone,
// which is stored so the user can simply retake the questionnaire.
func (s *coachService) AssessFitnessLevel(ctx context.Context, userID primitive.ObjectID, assessment ai.FitnessAssessment) (domain.FitnessLevel, error) {
	prompt := ai.AssessmentPrompt(assessment)

	raw, err := s.genAI.Complete(ctx, prompt, assessmentOptions)
	if err != nil {
		return domain.FitnessLevelNone, err
	}

	level := ai.ClassifyFitnessLevel(ai.Sanitize(raw))
	if level == domain.FitnessLevelNone {
		log.Printf("WARN: Unrecognized fitness classification %q for user %s, keeping level none", raw, userID.Hex())
	}

	if err := s.userRepo.UpdateFitnessLevel(ctx, userID, level); err != nil {
		return domain.FitnessLevelNone, err
	}
	return level, nil
}

// === Plan Generation ===

// GenerateTrainingPlan drives the full plan pipeline: prompt, generation
// call, sanitization, schema mapping, then the two-phase persistence. The
// plan is created first to obtain its real identifier, and only then is each
// day bound to that identifier and saved. A day never references a plan id
// that was not committed.
//
// If a day create fails after the plan create succeeded, the plan stays in
// the store and the error is surfaced; there is no automatic rollback across
// the two entity types.
func (s *coachService) GenerateTrainingPlan(ctx context.Context, req ai.PlanRequest) (*domain.TrainingPlan, error) {
	if req.UserID == primitive.NilObjectID || req.PreparationWeeks < 1 || req.TrainingDaysPerWeek < 1 {
		return nil, ErrInvalidRequest
	}
	if req.FitnessLevel == domain.FitnessLevelNone {
		return nil, ErrUserNotAssessed
	}

	prompt := ai.PlanPrompt(req)

	raw, err := s.genAI.Complete(ctx, prompt, planOptions)
	if err != nil {
		return nil, err
	}

	plan, days, err := ai.MapPlanResponse(ai.Sanitize(raw), req)
	if err != nil {
		return nil, err
	}

	// Phase 1: persist the plan; the store assigns its identifier.
	planID, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		return nil, err
	}
	plan.ID = planID

	// Phase 2: rebind every day's placeholder to the assigned id and persist.
	for i := range days {
		days[i].PlanID = planID
		if _, err := s.dayRepo.Create(ctx, &days[i]); err != nil {
			return nil, fmt.Errorf("plan %s saved but day %d failed: %w", planID.Hex(), days[i].DayNumber, err)
		}
	}

	log.Printf("Training plan %q generated with %d days for user %s", plan.Name, len(days), req.UserID.Hex())
	return plan, nil
}

// === Stored Plan Queries ===

// GetUserTrainingPlan returns the user's current plan (first plan found for
// the user), or nil when the user is unassessed or has no plan yet.
func (s *coachService) GetUserTrainingPlan(ctx context.Context, user *domain.User) (*domain.TrainingPlan, error) {
	if !user.IsAssessed() {
		return nil, nil
	}
	plans, err := s.planRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, nil
	}
	return &plans[0], nil
}

// UpdateTrainingPlan persists changes to a plan after verifying ownership.
func (s *coachService) UpdateTrainingPlan(ctx context.Context, user *domain.User, plan *domain.TrainingPlan) error {
	if plan.UserID != user.ID {
		return ErrNotPlanOwner
	}
	return s.planRepo.Update(ctx, plan)
}

// GetTrainingDays returns all days of one of the user's plans, in day order.
func (s *coachService) GetTrainingDays(ctx context.Context, user *domain.User, planID primitive.ObjectID) ([]domain.TrainingDay, error) {
	plan, err := s.getOwnedPlan(ctx, user, planID)
	if err != nil {
		return nil, err
	}
	return s.dayRepo.GetByPlanID(ctx, plan.ID)
}

// GetTodaysWorkout resolves which training day, if any, is active today.
func (s *coachService) GetTodaysWorkout(ctx context.Context, user *domain.User, planID primitive.ObjectID) (*domain.TrainingDay, error) {
	plan, err := s.getOwnedPlan(ctx, user, planID)
	if err != nil {
		return nil, err
	}
	days, err := s.dayRepo.GetByPlanID(ctx, plan.ID)
	if err != nil {
		return nil, err
	}
	return ResolveTodaysWorkout(plan, days, time.Now().UTC()), nil
}

// ResolveTodaysWorkout computes the active training day from the plan's date
// range and the day collection. It returns nil when today falls outside
// [StartDate, EndDate] or when the computed day number has no matching day
// (a gap in the generated schedule). Pure function: callers supply the days
// and the clock.
func ResolveTodaysWorkout(plan *domain.TrainingPlan, days []domain.TrainingDay, today time.Time) *domain.TrainingDay {
	start := plan.StartDate.Truncate(24 * time.Hour)
	end := plan.EndDate.Truncate(24 * time.Hour)
	day := today.Truncate(24 * time.Hour)

	if day.Before(start) || day.After(end) {
		return nil
	}

	// 1-based offset: the plan's start date is day number 1.
	dayNumber := int(day.Sub(start).Hours()/24) + 1
	for i := range days {
		if days[i].DayNumber == dayNumber {
			return &days[i]
		}
	}
	return nil
}

// === Plan Export ===

// exportDocument is the JSON shape written to the archive.
type exportDocument struct {
	Plan *domain.TrainingPlan `json:"plan"`
	Days []domain.TrainingDay `json:"days"`
}

// ExportTrainingPlan uploads a JSON snapshot of the plan and its days to the
// archive and returns a presigned download URL.
func (s *coachService) ExportTrainingPlan(ctx context.Context, user *domain.User, planID primitive.ObjectID) (string, error) {
	plan, err := s.getOwnedPlan(ctx, user, planID)
	if err != nil {
		return "", err
	}
	days, err := s.dayRepo.GetByPlanID(ctx, plan.ID)
	if err != nil {
		return "", err
	}

	doc, err := json.MarshalIndent(exportDocument{Plan: plan, Days: days}, "", "  ")
	if err != nil {
		return "", ErrExportFailed
	}

	// e.g. plans/662.../f47ac10b-....json
	objectKey := path.Join("plans", user.ID.Hex(), uuid.NewString()+".json")
	if err := s.archive.UploadObject(ctx, objectKey, doc, "application/json"); err != nil {
		log.Printf("ERROR: Failed to upload plan export %s: %v", objectKey, err)
		return "", ErrExportFailed
	}

	url, err := s.archive.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		log.Printf("ERROR: Failed to presign plan export %s: %v", objectKey, err)
		// The snapshot is unreachable without a URL; remove it instead of
		// leaving an orphan in the bucket.
		if delErr := s.archive.DeleteObject(ctx, objectKey); delErr != nil {
			log.Printf("WARN: Failed to clean up plan export %s: %v", objectKey, delErr)
		}
		return "", ErrExportFailed
	}
	return url, nil
}

// === Admin ===

func (s *coachService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.GetAll(ctx)
}

func (s *coachService) CountUsers(ctx context.Context) (int64, error) {
	return s.userRepo.Count(ctx)
}

// --- Helpers ---

// getOwnedPlan loads a plan and verifies the acting user owns it.
func (s *coachService) getOwnedPlan(ctx context.Context, user *domain.User, planID primitive.ObjectID) (*domain.TrainingPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if plan.UserID != user.ID {
		return nil, ErrNotPlanOwner
	}
	return plan, nil
}
