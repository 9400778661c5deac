package api

import (
	"runcoach/running-app/internal/domain" // Needed for RoleMiddleware
	"runcoach/running-app/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	coachService service.CoachService,
) {

	authHandler := NewAuthHandler(authService)
	coachHandler := NewCoachHandler(coachService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			role, _ := getUserRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr, "role": role})
		})

		// --- Fitness Assessment ---
		protected.POST("/assessment", coachHandler.SubmitAssessment)

		// --- Training Plans ---
		planGroup := protected.Group("/plans")
		{
			planGroup.POST("/generate", coachHandler.GeneratePlan)
			planGroup.GET("", coachHandler.GetMyPlan)
			planGroup.GET("/:planId/days", coachHandler.GetPlanDays)
			planGroup.GET("/:planId/today", coachHandler.GetTodaysWorkout)
			planGroup.GET("/:planId/export", coachHandler.ExportPlan)
		}

		// --- Admin ---
		adminGroup := protected.Group("/admin")
		adminGroup.Use(RoleMiddleware(domain.RoleAdmin))
		{
			adminGroup.GET("/users", coachHandler.ListUsers)
		}
	}
}
