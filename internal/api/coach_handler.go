// internal/api/coach_handler.go
package api

import (
	"runcoach/running-app/internal/ai"
	"runcoach/running-app/internal/domain"
	"runcoach/running-app/internal/service"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CoachHandler struct {
	coachService service.CoachService
}

func NewCoachHandler(coachService service.CoachService) *CoachHandler {
	return &CoachHandler{coachService: coachService}
}

// --- DTOs ---

type AssessmentRequest struct {
	WeeklyDistance   string `json:"weeklyDistance" binding:"required"`
	LongestRecentRun string `json:"longestRecentRun" binding:"required"`
	Experience       string `json:"experience" binding:"required"`
	Injuries         string `json:"injuries" binding:"required"`
	Pace             string `json:"pace" binding:"required"`
}

type AssessmentResponse struct {
	FitnessLevel domain.FitnessLevel `json:"fitnessLevel"`
}

type GeneratePlanRequest struct {
	TargetDistance      string `json:"targetDistance" binding:"required"`
	PreparationWeeks    int    `json:"preparationWeeks" binding:"required,min=1"`
	TrainingDaysPerWeek int    `json:"trainingDaysPerWeek" binding:"required,min=1,max=7"`
}

type TrainingPlanResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	Name             string    `json:"name"`
	TargetDistance   string    `json:"targetDistance"`
	PreparationWeeks int       `json:"preparationWeeks"`
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	CreatedAt        time.Time `json:"createdAt"`
}

type TrainingDayResponse struct {
	ID          string  `json:"id"`
	PlanID      string  `json:"planId"`
	DayNumber   int     `json:"dayNumber"`
	WorkoutType string  `json:"workoutType"`
	Distance    *string `json:"distance,omitempty"`
	Duration    *string `json:"duration,omitempty"`
	Description string  `json:"description"`
}

type ExportResponse struct {
	DownloadURL string `json:"downloadUrl"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
}

// --- Handler Methods ---

// SubmitAssessment godoc
// @Summary Submit the fitness questionnaire
// @Description Sends the five questionnaire answers to the AI classifier and stores the resulting fitness level on the user.
// @Tags Coach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assessment body AssessmentRequest true "Questionnaire answers"
// @Success 200 {object} AssessmentResponse "Assessed fitness level (none when the answer was unrecognizable)"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 502 {object} gin.H "Generation service failure"
// @Router /assessment [post]
func (h *CoachHandler) SubmitAssessment(c *gin.Context) {
	userID, ok := h.actingUserID(c)
	if !ok {
		return
	}

	var req AssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	assessment := ai.FitnessAssessment{
		WeeklyDistance:   req.WeeklyDistance,
		LongestRecentRun: req.LongestRecentRun,
		Experience:       req.Experience,
		Injuries:         req.Injuries,
		Pace:             req.Pace,
	}

	level, err := h.coachService.AssessFitnessLevel(c.Request.Context(), userID, assessment)
	if err != nil {
		h.abortWithPipelineError(c, err)
		return
	}
	c.JSON(http.StatusOK, AssessmentResponse{FitnessLevel: level})
}

// GeneratePlan godoc
// @Summary Generate a training plan
// @Description Asks the AI to draft a multi-week plan for the authenticated user and persists it together with its training days.
// @Tags Coach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body GeneratePlanRequest true "Plan parameters"
// @Success 201 {object} TrainingPlanResponse "Generated plan"
// @Failure 400 {object} gin.H "Invalid input or user not yet assessed"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 502 {object} gin.H "Generation service failure or unusable AI output"
// @Router /plans/generate [post]
func (h *CoachHandler) GeneratePlan(c *gin.Context) {
	user, ok := h.actingUser(c)
	if !ok {
		return
	}

	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	planReq := ai.PlanRequest{
		UserID:              user.ID,
		TargetDistance:      req.TargetDistance,
		PreparationWeeks:    req.PreparationWeeks,
		FitnessLevel:        user.FitnessLevel,
		TrainingDaysPerWeek: req.TrainingDaysPerWeek,
	}

	plan, err := h.coachService.GenerateTrainingPlan(c.Request.Context(), planReq)
	if err != nil {
		if errors.Is(err, service.ErrUserNotAssessed) || errors.Is(err, service.ErrInvalidRequest) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		h.abortWithPipelineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapTrainingPlanToResponse(plan))
}

// GetMyPlan godoc
// @Summary Get my current training plan
// @Tags Coach
// @Produce json
// @Security BearerAuth
// @Success 200 {object} TrainingPlanResponse "Current plan"
// @Failure 404 {object} gin.H "No plan yet"
// @Router /plans [get]
func (h *CoachHandler) GetMyPlan(c *gin.Context) {
	user, ok := h.actingUser(c)
	if !ok {
		return
	}

	plan, err := h.coachService.GetUserTrainingPlan(c.Request.Context(), user)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve training plan.")
		return
	}
	if plan == nil {
		abortWithError(c, http.StatusNotFound, "No training plan yet.")
		return
	}
	c.JSON(http.StatusOK, MapTrainingPlanToResponse(plan))
}

// GetPlanDays godoc
// @Summary Get all days of a training plan
// @Tags Coach
// @Produce json
// @Security BearerAuth
// @Param planId path string true "Training Plan's ObjectID Hex"
// @Success 200 {array} TrainingDayResponse "Training days in day order"
// @Failure 403 {object} gin.H "Plan owned by another user"
// @Failure 404 {object} gin.H "Plan not found"
// @Router /plans/{planId}/days [get]
func (h *CoachHandler) GetPlanDays(c *gin.Context) {
	user, ok := h.actingUser(c)
	if !ok {
		return
	}
	planID, ok := h.planIDParam(c)
	if !ok {
		return
	}

	days, err := h.coachService.GetTrainingDays(c.Request.Context(), user, planID)
	if err != nil {
		h.abortWithPlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapTrainingDaysToResponse(days))
}

// GetTodaysWorkout godoc
// @Summary Get today's workout
// @Description Resolves which training day is active today for the plan, if any.
// @Tags Coach
// @Produce json
// @Security BearerAuth
// @Param planId path string true "Training Plan's ObjectID Hex"
// @Success 200 {object} TrainingDayResponse "Today's workout"
// @Failure 403 {object} gin.H "Plan owned by another user"
// @Failure 404 {object} gin.H "Plan not found, plan inactive, or no workout scheduled today"
// @Router /plans/{planId}/today [get]
func (h *CoachHandler) GetTodaysWorkout(c *gin.Context) {
	user, ok := h.actingUser(c)
	if !ok {
		return
	}
	planID, ok := h.planIDParam(c)
	if !ok {
		return
	}

	day, err := h.coachService.GetTodaysWorkout(c.Request.Context(), user, planID)
	if err != nil {
		h.abortWithPlanError(c, err)
		return
	}
	if day == nil {
		abortWithError(c, http.StatusNotFound, "No workout scheduled for today.")
		return
	}
	c.JSON(http.StatusOK, MapTrainingDayToResponse(day))
}

// ExportPlan godoc
// @Summary Export a training plan
// @Description Uploads a JSON snapshot of the plan to the archive and returns a temporary download URL.
// @Tags Coach
// @Produce json
// @Security BearerAuth
// @Param planId path string true "Training Plan's ObjectID Hex"
// @Success 200 {object} ExportResponse "Download URL"
// @Failure 403 {object} gin.H "Plan owned by another user"
// @Failure 404 {object} gin.H "Plan not found"
// @Router /plans/{planId}/export [get]
func (h *CoachHandler) ExportPlan(c *gin.Context) {
	user, ok := h.actingUser(c)
	if !ok {
		return
	}
	planID, ok := h.planIDParam(c)
	if !ok {
		return
	}

	url, err := h.coachService.ExportTrainingPlan(c.Request.Context(), user, planID)
	if err != nil {
		if errors.Is(err, service.ErrExportFailed) {
			abortWithError(c, http.StatusInternalServerError, err.Error())
			return
		}
		h.abortWithPlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, ExportResponse{DownloadURL: url})
}

// ListUsers godoc
// @Summary List all users (admin)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserListResponse "All users with total count"
// @Failure 403 {object} gin.H "Forbidden"
// @Router /admin/users [get]
func (h *CoachHandler) ListUsers(c *gin.Context) {
	users, err := h.coachService.ListUsers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list users.")
		return
	}
	total, err := h.coachService.CountUsers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to count users.")
		return
	}

	resp := UserListResponse{Users: make([]UserResponse, 0, len(users)), Total: total}
	for i := range users {
		resp.Users = append(resp.Users, MapUserToResponse(&users[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// --- Helpers ---

// actingUserID extracts the authenticated user's ObjectID from the JWT context.
func (h *CoachHandler) actingUserID(c *gin.Context) (primitive.ObjectID, bool) {
	userIDStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format in token.")
		return primitive.NilObjectID, false
	}
	return userID, true
}

// actingUser loads the full user record for the authenticated request.
func (h *CoachHandler) actingUser(c *gin.Context) (*domain.User, bool) {
	userID, ok := h.actingUserID(c)
	if !ok {
		return nil, false
	}
	user, err := h.coachService.GetUser(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "User account not found.")
		return nil, false
	}
	return user, true
}

func (h *CoachHandler) planIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	planID, err := primitive.ObjectIDFromHex(c.Param("planId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format.")
		return primitive.NilObjectID, false
	}
	return planID, true
}

// abortWithPlanError maps stored-plan query errors to HTTP statuses.
func (h *CoachHandler) abortWithPlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPlanNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotPlanOwner):
		abortWithError(c, http.StatusForbidden, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Failed to access training plan.")
	}
}

// abortWithPipelineError maps AI pipeline errors to HTTP statuses. Anything
// the generation service or its output caused is a bad gateway from the
// client's point of view.
func (h *CoachHandler) abortWithPipelineError(c *gin.Context, err error) {
	var upstream *ai.UpstreamError
	var transport *ai.TransportError
	var malformed *ai.MalformedOutputError
	var missing *ai.MissingFieldError

	switch {
	case errors.As(err, &upstream), errors.As(err, &transport), errors.Is(err, ai.ErrEmptyResponse):
		abortWithError(c, http.StatusBadGateway, err.Error())
	case errors.As(err, &malformed), errors.As(err, &missing):
		abortWithError(c, http.StatusBadGateway, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}

// --- Mappers ---

func MapTrainingPlanToResponse(plan *domain.TrainingPlan) TrainingPlanResponse {
	return TrainingPlanResponse{
		ID:               plan.ID.Hex(),
		UserID:           plan.UserID.Hex(),
		Name:             plan.Name,
		TargetDistance:   plan.TargetDistance,
		PreparationWeeks: plan.PreparationWeeks,
		StartDate:        plan.StartDate,
		EndDate:          plan.EndDate,
		CreatedAt:        plan.CreatedAt,
	}
}

func MapTrainingDayToResponse(day *domain.TrainingDay) TrainingDayResponse {
	return TrainingDayResponse{
		ID:          day.ID.Hex(),
		PlanID:      day.PlanID.Hex(),
		DayNumber:   day.DayNumber,
		WorkoutType: day.WorkoutKind.DisplayLabel(),
		Distance:    day.Distance,
		Duration:    day.Duration,
		Description: day.Description,
	}
}

func MapTrainingDaysToResponse(days []domain.TrainingDay) []TrainingDayResponse {
	resp := make([]TrainingDayResponse, 0, len(days))
	for i := range days {
		resp = append(resp, MapTrainingDayToResponse(&days[i]))
	}
	return resp
}
