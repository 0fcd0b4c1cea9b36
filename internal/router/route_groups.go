package router

import (
	"shiftly_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupPublicAuthRoutes sets up the authentication routes that do not require a token.
func SetupPublicAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/register", authHandler.RegisterUser)
	group.POST("/login", authHandler.LoginUser)
}

// SetupAuthenticatedAuthRoutes sets up the authentication routes behind the auth middleware.
func SetupAuthenticatedAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.GET("/me", authHandler.GetCurrentUser)
}

// SetupShiftRoutes sets up the shift routes.
func SetupShiftRoutes(authenticatedGroup *gin.RouterGroup, scheduleHandler *handlers.ScheduleHandler) {
	shiftRoutes := authenticatedGroup.Group("/shifts")
	{
		shiftRoutes.POST("", scheduleHandler.CreateShift)
		shiftRoutes.GET("/:id", scheduleHandler.GetShiftByID)
		shiftRoutes.PUT("/:id", scheduleHandler.UpdateShift)
		shiftRoutes.PATCH("/:id/status", scheduleHandler.UpdateShiftStatus)
		shiftRoutes.POST("/:id/copy", scheduleHandler.CopyShift)
		shiftRoutes.DELETE("/:id", scheduleHandler.DeleteShift)
	}
}

// SetupScheduleRoutes sets up the week schedule routes.
func SetupScheduleRoutes(authenticatedGroup *gin.RouterGroup, scheduleHandler *handlers.ScheduleHandler) {
	scheduleRoutes := authenticatedGroup.Group("/schedule")
	{
		scheduleRoutes.GET("", scheduleHandler.GetWeekSchedule)
		scheduleRoutes.POST("/publish", scheduleHandler.PublishSchedule)
		scheduleRoutes.POST("/copy-week", scheduleHandler.CopyWeek)
	}
}

// SetupTeamRoutes sets up the team member routes.
func SetupTeamRoutes(authenticatedGroup *gin.RouterGroup, teamHandler *handlers.TeamHandler) {
	teamRoutes := authenticatedGroup.Group("/team-members")
	{
		teamRoutes.POST("", teamHandler.CreateTeamMember)
		teamRoutes.GET("", teamHandler.GetTeamMembers)
		teamRoutes.GET("/:id", teamHandler.GetTeamMemberByID)
		teamRoutes.PUT("/:id", teamHandler.UpdateTeamMember)
		teamRoutes.DELETE("/:id", teamHandler.DeleteTeamMember)
	}
}

// SetupInviteRoutes sets up the invite routes.
func SetupInviteRoutes(authenticatedGroup *gin.RouterGroup, teamHandler *handlers.TeamHandler) {
	inviteRoutes := authenticatedGroup.Group("/invites")
	{
		inviteRoutes.POST("", teamHandler.InviteTeamMember)
		inviteRoutes.GET("", teamHandler.GetInvites)
		inviteRoutes.PATCH("/:id/revoke", teamHandler.RevokeInvite)
	}
}

// SetupDashboardRoutes sets up the dashboard routes.
func SetupDashboardRoutes(authenticatedGroup *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	dashboardRoutes := authenticatedGroup.Group("/dashboard")
	{
		dashboardRoutes.GET("/stats", dashboardHandler.GetStats)
	}
	authenticatedGroup.GET("/activities", dashboardHandler.GetActivities)
}
