package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"runcoach/running-app/internal/ai"
	"runcoach/running-app/internal/domain"
	"runcoach/running-app/internal/repository"
	"runcoach/running-app/internal/storage"
)

// --- In-Memory Fakes ---

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := primitive.NewObjectID()
	user.ID = id
	r.users[id] = user
	return id, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetAll(ctx context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateFitnessLevel(ctx context.Context, id primitive.ObjectID, level domain.FitnessLevel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.FitnessLevel = level
	return nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

type fakePlanRepo struct {
	mu    sync.Mutex
	plans map[primitive.ObjectID]*domain.TrainingPlan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[primitive.ObjectID]*domain.TrainingPlan)}
}

func (r *fakePlanRepo) Create(ctx context.Context, plan *domain.TrainingPlan) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := primitive.NewObjectID()
	if plan.StartDate.IsZero() {
		plan.SetSchedule(time.Now().UTC().Truncate(24 * time.Hour))
	}
	copied := *plan
	copied.ID = id
	r.plans[id] = &copied
	return id, nil
}

func (r *fakePlanRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakePlanRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.TrainingPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.TrainingPlan
	for _, p := range r.plans {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePlanRepo) Update(ctx context.Context, plan *domain.TrainingPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plans[plan.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *plan
	r.plans[plan.ID] = &copied
	return nil
}

func (r *fakePlanRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.plans, id)
	return nil
}

func (r *fakePlanRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.plans)), nil
}

type fakeDayRepo struct {
	mu        sync.Mutex
	days      map[primitive.ObjectID]*domain.TrainingDay
	failAfter int // fail Create once this many days are stored; 0 disables
}

func newFakeDayRepo() *fakeDayRepo {
	return &fakeDayRepo{days: make(map[primitive.ObjectID]*domain.TrainingDay)}
}

func (r *fakeDayRepo) Create(ctx context.Context, day *domain.TrainingDay) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if day.PlanID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("day has no plan id")
	}
	if r.failAfter > 0 && len(r.days) >= r.failAfter {
		return primitive.NilObjectID, errors.New("storage full")
	}
	id := primitive.NewObjectID()
	copied := *day
	copied.ID = id
	r.days[id] = &copied
	return id, nil
}

func (r *fakeDayRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingDay, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.days[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *d
	return &copied, nil
}

func (r *fakeDayRepo) GetByPlanID(ctx context.Context, planID primitive.ObjectID) ([]domain.TrainingDay, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.TrainingDay
	for _, d := range r.days {
		if d.PlanID == planID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDayRepo) GetByPlanIDAndDayNumber(ctx context.Context, planID primitive.ObjectID, dayNumber int) (*domain.TrainingDay, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.days {
		if d.PlanID == planID && d.DayNumber == dayNumber {
			copied := *d
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeDayRepo) DeleteByPlanID(ctx context.Context, planID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, d := range r.days {
		if d.PlanID == planID {
			delete(r.days, id)
		}
	}
	return nil
}

func (r *fakeDayRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.days)), nil
}

// fakeGenClient returns a canned response, or an error, and records the prompt.
type fakeGenClient struct {
	response   string
	err        error
	lastPrompt string
	lastOpts   ai.CompletionOptions
}

func (c *fakeGenClient) Complete(ctx context.Context, prompt string, opts ai.CompletionOptions) (string, error) {
	c.lastPrompt = prompt
	c.lastOpts = opts
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}

// fakeArchive records uploads and hands back deterministic URLs.
type fakeArchive struct {
	uploads    map[string][]byte
	err        error // fails uploads
	presignErr error // fails presigning only
	deleted    []string
}

func newFakeArchive() *fakeArchive {
	return &fakeArchive{uploads: make(map[string][]byte)}
}

func (a *fakeArchive) UploadObject(ctx context.Context, key string, data []byte, contentType string) error {
	if a.err != nil {
		return a.err
	}
	a.uploads[key] = data
	return nil
}

func (a *fakeArchive) GeneratePresignedDownloadURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if a.presignErr != nil {
		return "", a.presignErr
	}
	return "https://archive.example.com/" + key, nil
}

func (a *fakeArchive) DeleteObject(ctx context.Context, key string) error {
	delete(a.uploads, key)
	a.deleted = append(a.deleted, key)
	return nil
}

// --- Test Fixtures ---

const planResponse = `{
  "trainingPlan": {"name": "10K Base Builder", "targetDistance": "10km", "preparationWeeks": 4},
  "trainingDays": [
    {"dayNumber": 1, "workoutType": "Easy Run", "distance": "5km", "description": "Conversational pace"},
    {"dayNumber": 3, "workoutType": "Interval", "duration": "40 minutes", "description": "6x400m repeats"},
    {"dayNumber": 5, "workoutType": "Rest", "description": "Full rest day"}
  ]
}`

type coachFixture struct {
	svc      CoachService
	userRepo *fakeUserRepo
	planRepo *fakePlanRepo
	dayRepo  *fakeDayRepo
	gen      *fakeGenClient
	archive  *fakeArchive
	user     *domain.User
}

func newCoachFixture(t *testing.T, level domain.FitnessLevel) *coachFixture {
	t.Helper()
	userRepo := newFakeUserRepo()
	planRepo := newFakePlanRepo()
	dayRepo := newFakeDayRepo()
	gen := &fakeGenClient{}
	archive := newFakeArchive()

	user := &domain.User{
		Name:         "Test Runner",
		Username:     "runner",
		Email:        "runner@example.com",
		FitnessLevel: level,
		Role:         domain.RoleUser,
	}
	if _, err := userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("seeding user: %v", err)
	}

	return &coachFixture{
		svc:      NewCoachService(userRepo, planRepo, dayRepo, gen, archive),
		userRepo: userRepo,
		planRepo: planRepo,
		dayRepo:  dayRepo,
		gen:      gen,
		archive:  archive,
		user:     user,
	}
}

var _ storage.PlanArchive = (*fakeArchive)(nil)

// --- Assessment ---

func TestAssessFitnessLevel(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     domain.FitnessLevel
	}{
		{"clean classification", "INTERMEDIATE", domain.FitnessLevelIntermediate},
		{"fenced and padded", "```\nBEGINNER\n```", domain.FitnessLevelBeginner},
		{"unrecognized falls back to none", "BEGINNER or INTERMEDIATE", domain.FitnessLevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCoachFixture(t, domain.FitnessLevelNone)
			f.gen.response = tt.response

			got, err := f.svc.AssessFitnessLevel(context.Background(), f.user.ID, ai.FitnessAssessment{
				WeeklyDistance:   "20km",
				LongestRecentRun: "10km, felt fine",
				Experience:       "2 years",
				Injuries:         "none",
				Pace:             "5:30/km",
			})
			if err != nil {
				t.Fatalf("AssessFitnessLevel: %v", err)
			}
			if got != tt.want {
				t.Errorf("level = %s, want %s", got, tt.want)
			}

			stored, err := f.userRepo.GetByID(context.Background(), f.user.ID)
			if err != nil {
				t.Fatalf("reading user back: %v", err)
			}
			if stored.FitnessLevel != tt.want {
				t.Errorf("persisted level = %s, want %s", stored.FitnessLevel, tt.want)
			}

			if f.gen.lastOpts.Temperature != 0.3 || f.gen.lastOpts.MaxOutputTokens != 10 {
				t.Errorf("unexpected completion options: %+v", f.gen.lastOpts)
			}
		})
	}
}

func TestAssessFitnessLevelGenerationFailure(t *testing.T) {
	f := newCoachFixture(t, domain.FitnessLevelNone)
	f.gen.err = &ai.UpstreamError{Message: "quota exceeded"}

	_, err := f.svc.AssessFitnessLevel(context.Background(), f.user.ID, ai.FitnessAssessment{})
	var upstream *ai.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected *ai.UpstreamError, got %v", err)
	}

	stored, _ := f.userRepo.GetByID(context.Background(), f.user.ID)
	if stored.FitnessLevel != domain.FitnessLevelNone {
		t.Errorf("level changed on failed assessment: %s", stored.FitnessLevel)
	}
}

// --- Plan Generation ---

func TestGenerateTrainingPlan(t *testing.T) {
	f := newCoachFixture(t, domain.FitnessLevelIntermediate)
	f.gen.response = "```json\n" + planResponse + "\n```"

	plan, err := f.svc.GenerateTrainingPlan(context.Background(), ai.PlanRequest{
		UserID:              f.user.ID,
		TargetDistance:      "10km",
		PreparationWeeks:    4,
		FitnessLevel:        domain.FitnessLevelIntermediate,
		TrainingDaysPerWeek: 3,
	})
	if err != nil {
		t.Fatalf("GenerateTrainingPlan: %v", err)
	}

	if plan.ID == primitive.NilObjectID {
		t.Error("plan ID not assigned")
	}
	if plan.Name != "10K Base Builder" {
		t.Errorf("plan name = %q", plan.Name)
	}
	if plan.UserID != f.user.ID {
		t.Errorf("plan owner = %s, want %s", plan.UserID.Hex(), f.user.ID.Hex())
	}

	days, err := f.dayRepo.GetByPlanID(context.Background(), plan.ID)
	if err != nil {
		t.Fatalf("reading days back: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("stored %d days, want 3", len(days))
	}
	for _, d := range days {
		if d.PlanID != plan.ID {
			t.Errorf("day %d bound to %s, want %s", d.DayNumber, d.PlanID.Hex(), plan.ID.Hex())
		}
	}

	if f.gen.lastOpts.Temperature != 0.7 {
		t.Errorf("plan temperature = %v, want 0.7", f.gen.lastOpts.Temperature)
	}
}

func TestGenerateTrainingPlanValidation(t *testing.T) {
	f := newCoachFixture(t, domain.FitnessLevelIntermediate)

	tests := []struct {
		name    string
		req     ai.PlanRequest
		wantErr error
	}{
		{
			name:    "zero weeks",
			req:     ai.PlanRequest{UserID: f.user.ID, PreparationWeeks: 0, TrainingDaysPerWeek: 3, FitnessLevel: domain.FitnessLevelBeginner},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "missing user",
			req:     ai.PlanRequest{PreparationWeeks: 4, TrainingDaysPerWeek: 3, FitnessLevel: domain.FitnessLevelBeginner},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "unassessed",
			req:     ai.PlanRequest{UserID: f.user.ID, PreparationWeeks: 4, TrainingDaysPerWeek: 3, FitnessLevel: domain.FitnessLevelNone},
			wantErr: ErrUserNotAssessed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.GenerateTrainingPlan(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateTrainingPlanMalformedOutput(t *testing.T) {
	f := newCoachFixture(t, domain.FitnessLevelBeginner)
	f.gen.response = "Sorry, I cannot produce JSON today."

	_, err := f.svc.GenerateTrainingPlan(context.Background(), ai.PlanRequest{
		UserID:              f.user.ID,
		TargetDistance:      "5km",
		PreparationWeeks:    2,
		FitnessLevel:        domain.FitnessLevelBeginner,
		TrainingDaysPerWeek: 3,
	})
	var malformed *ai.MalformedOutputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected *ai.MalformedOutputError, got %v", err)
	}

	if n, _ := f.planRepo.Count(context.Background()); n != 0 {
		t.Errorf("plan persisted despite mapping failure")
	}
}

func TestGenerateTrainingPlanDayCreateFailure(t *testing.T) {
	f := newCoachFixture(t, domain.FitnessLevelIntermediate)
	f.gen.response = planResponse
	f.dayRepo.failAfter = 2

	_, err := f.svc.GenerateTrainingPlan(context.Background(), ai.PlanRequest{
		UserID:              f.user.ID,
		TargetDistance:      "10km",
		PreparationWeeks:    4,
		FitnessLevel:        domain.FitnessLevelIntermediate,
		TrainingDaysPerWeek: 3,
	})
	if err == nil {
		t.Fatal("expected error when a day create fails")
	}

	// The plan stays persisted: there is no rollback across entity types.
	if n, _ := f.planRepo.Count(context.Background()); n != 1 {
		t.Errorf("plan count = %d, want 1", n)
	}
}

// --- Stored Plan Queries ---

func TestGetUserTrainingPlanUnassessed(t *testing.T) {
	f := newCoachFixture(t, domain.FitnessLevelNone)
	plan, err := f.svc.GetUserTrainingPlan(context.Background(), f.user)
	if err != nil {
		t.Fatalf("GetUserTrainingPlan: %v", err)
	}
	if plan != nil {
		t.Errorf("expected nil plan for unassessed user, got %+v", plan)
	}
}

func TestGetUserTrainingPlanNoPlans(t *testing.T) {
	f := newCoachFixture(t, domain.FitnessLevelAdvanced)
	plan, err := f.svc.GetUserTrainingPlan(context.Background(), f.user)
	if err != nil {
		t.Fatalf("GetUserTrainingPlan: %v", err)
	}
	if plan != nil {
		t.Errorf("expected nil plan, got %+v", plan)
	}
}

func TestOwnershipChecks(t *testing.T) {
	f := newCoachFixture(t, domain.FitnessLevelIntermediate)

	plan := &domain.TrainingPlan{UserID: f.user.ID, Name: "Mine", PreparationWeeks: 2}
	planID, err := f.planRepo.Create(context.Background(), plan)
	if err != nil {
		t.Fatalf("seeding plan: %v", err)
	}

	stranger := &domain.User{Username: "stranger", FitnessLevel: domain.FitnessLevelAdvanced}
	if _, err := f.userRepo.Create(context.Background(), stranger); err != nil {
		t.Fatalf("seeding stranger: %v", err)
	}

	if _, err := f.svc.GetTrainingDays(context.Background(), stranger, planID); !errors.Is(err, ErrNotPlanOwner) {
		t.Errorf("GetTrainingDays err = %v, want ErrNotPlanOwner", err)
	}
	if _, err := f.svc.GetTodaysWorkout(context.Background(), stranger, planID); !errors.Is(err, ErrNotPlanOwner) {
		t.Errorf("GetTodaysWorkout err = %v, want ErrNotPlanOwner", err)
	}
	if _, err := f.svc.ExportTrainingPlan(context.Background(), stranger, planID); !errors.Is(err, ErrNotPlanOwner) {
		t.Errorf("ExportTrainingPlan err = %v, want ErrNotPlanOwner", err)
	}

	owned, _ := f.planRepo.GetByID(context.Background(), planID)
	owned.UserID = stranger.ID
	if err := f.svc.UpdateTrainingPlan(context.Background(), f.user, owned); !errors.Is(err, ErrNotPlanOwner) {
		t.Errorf("UpdateTrainingPlan err = %v, want ErrNotPlanOwner", err)
	}

	if _, err := f.svc.GetTrainingDays(context.Background(), f.user, primitive.NewObjectID()); !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("missing plan err = %v, want ErrPlanNotFound", err)
	}
}

// --- Today's Workout Resolution ---

func TestResolveTodaysWorkout(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	plan := &domain.TrainingPlan{PreparationWeeks: 4}
	plan.SetSchedule(start)

	days := []domain.TrainingDay{
		{DayNumber: 1, WorkoutKind: domain.WorkoutEasyRun},
		{DayNumber: 3, WorkoutKind: domain.WorkoutInterval},
		{DayNumber: 28, WorkoutKind: domain.WorkoutLongRun},
	}

	tests := []struct {
		name    string
		today   time.Time
		wantDay int // 0 means nil expected
	}{
		{"start date is day one", start, 1},
		{"mid-plan match", time.Date(2024, 1, 3, 14, 30, 0, 0, time.UTC), 3},
		{"gap in schedule", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), 0},
		{"last day", time.Date(2024, 1, 28, 0, 0, 0, 0, time.UTC), 28},
		{"before plan starts", time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC), 0},
		{"after plan ends", time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTodaysWorkout(plan, days, tt.today)
			if tt.wantDay == 0 {
				if got != nil {
					t.Errorf("got day %d, want nil", got.DayNumber)
				}
				return
			}
			if got == nil {
				t.Fatalf("got nil, want day %d", tt.wantDay)
			}
			if got.DayNumber != tt.wantDay {
				t.Errorf("got day %d, want %d", got.DayNumber, tt.wantDay)
			}
		})
	}
}

// --- Plan Export ---

func TestExportTrainingPlan(t *testing.T) {
	f := newCoachFixture(t, domain.FitnessLevelIntermediate)

	plan := &domain.TrainingPlan{UserID: f.user.ID, Name: "Export Me", PreparationWeeks: 2}
	planID, err := f.planRepo.Create(context.Background(), plan)
	if err != nil {
		t.Fatalf("seeding plan: %v", err)
	}
	day := &domain.TrainingDay{PlanID: planID, DayNumber: 1, WorkoutKind: domain.WorkoutEasyRun, Description: "easy"}
	if _, err := f.dayRepo.Create(context.Background(), day); err != nil {
		t.Fatalf("seeding day: %v", err)
	}

	url, err := f.svc.ExportTrainingPlan(context.Background(), f.user, planID)
	if err != nil {
		t.Fatalf("ExportTrainingPlan: %v", err)
	}
	if url == "" {
		t.Fatal("empty download URL")
	}
	if len(f.archive.uploads) != 1 {
		t.Fatalf("uploads = %d, want 1", len(f.archive.uploads))
	}
	for key, data := range f.archive.uploads {
		wantPrefix := "plans/" + f.user.ID.Hex() + "/"
		if len(key) <= len(wantPrefix) || key[:len(wantPrefix)] != wantPrefix {
			t.Errorf("object key %q missing prefix %q", key, wantPrefix)
		}
		if len(data) == 0 {
			t.Error("empty export document")
		}
	}
}

func TestExportTrainingPlanUploadFailure(t *testing.T) {
	f := newCoachFixture(t, domain.FitnessLevelIntermediate)
	f.archive.err = errors.New("bucket unavailable")

	plan := &domain.TrainingPlan{UserID: f.user.ID, Name: "Doomed", PreparationWeeks: 1}
	planID, _ := f.planRepo.Create(context.Background(), plan)

	_, err := f.svc.ExportTrainingPlan(context.Background(), f.user, planID)
	if !errors.Is(err, ErrExportFailed) {
		t.Errorf("err = %v, want ErrExportFailed", err)
	}
}

func TestExportTrainingPlanPresignFailureCleansUp(t *testing.T) {
	f := newCoachFixture(t, domain.FitnessLevelIntermediate)
	f.archive.presignErr = errors.New("presign unavailable")

	plan := &domain.TrainingPlan{UserID: f.user.ID, Name: "Unreachable", PreparationWeeks: 1}
	planID, _ := f.planRepo.Create(context.Background(), plan)

	_, err := f.svc.ExportTrainingPlan(context.Background(), f.user, planID)
	if !errors.Is(err, ErrExportFailed) {
		t.Errorf("err = %v, want ErrExportFailed", err)
	}
	if len(f.archive.deleted) != 1 {
		t.Fatalf("deleted %d objects, want 1", len(f.archive.deleted))
	}
	if len(f.archive.uploads) != 0 {
		t.Errorf("orphaned uploads left in archive: %d", len(f.archive.uploads))
	}
}
