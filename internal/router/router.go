package router

import (
	"database/sql"

	"shiftly_backend/internal/handlers"
	"shiftly_backend/internal/middleware"
	"shiftly_backend/internal/repositories"
	"shiftly_backend/internal/services"
	"shiftly_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	authRepo := repositories.NewAuthRepository(db)
	shiftRepo := repositories.NewShiftRepository(db)
	teamRepo := repositories.NewTeamRepository(db)
	activityRepo := repositories.NewActivityRepository(db)

	// Initialize Services
	mailer := newMailerFromEnv()
	authService := services.NewAuthService(authRepo, db)
	scheduleService := services.NewScheduleService(shiftRepo, teamRepo, activityRepo, mailer, db)
	teamService := services.NewTeamService(teamRepo, activityRepo, mailer, db)
	dashboardService := services.NewDashboardService(shiftRepo, teamRepo, activityRepo)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	teamHandler := handlers.NewTeamHandler(teamService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	apiV1 := engine.Group("/api/v1")

	SetupPublicAuthRoutes(apiV1.Group("/auth"), authHandler)

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupAuthenticatedAuthRoutes(authenticated.Group("/auth"), authHandler)
		SetupShiftRoutes(authenticated, scheduleHandler)
		SetupScheduleRoutes(authenticated, scheduleHandler)
		SetupTeamRoutes(authenticated, teamHandler)
		SetupInviteRoutes(authenticated, teamHandler)
		SetupDashboardRoutes(authenticated, dashboardHandler)
	}
}

// newMailerFromEnv returns an SMTP mailer when SMTP_HOST is configured and a
// logging no-op mailer otherwise, so local setups work without a mail server.
func newMailerFromEnv() services.Mailer {
	host := utils.Getenv("SMTP_HOST", "")
	if host == "" {
		return services.NewNoopMailer()
	}
	return services.NewSMTPMailer(
		host,
		utils.GetenvInt("SMTP_PORT", 587),
		utils.Getenv("SMTP_USER", ""),
		utils.Getenv("SMTP_PASSWORD", ""),
		utils.Getenv("SMTP_FROM", "no-reply@shiftly.local"),
		utils.Getenv("APP_BASE_URL", "http://localhost:8080"),
	)
}
