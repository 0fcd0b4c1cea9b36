package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"shiftly_backend/internal/schedule"
	"shiftly_backend/internal/services"
	"shiftly_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler holds the dashboard service.
type DashboardHandler struct {
	dashboardService services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(ds services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: ds}
}

// GetStats returns the weekly overview. week_start defaults to the current week.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	weekStart := c.Query("week_start")
	if weekStart == "" {
		weekStart = time.Now().Format(schedule.DayLayout)
	}

	stats, err := h.dashboardService.GetStats(weekStart)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidDay) {
			utils.RespondValidationFailed(c, "week_start must be formatted as YYYY-MM-DD.")
			return
		}
		utils.LogError(err, "GetStats")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute dashboard stats.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetActivities returns the most recent activity entries.
func (h *DashboardHandler) GetActivities(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.RespondValidationFailed(c, "limit must be a non-negative integer.")
			return
		}
		limit = parsed
	}

	activities, err := h.dashboardService.GetRecentActivities(limit)
	if err != nil {
		utils.LogError(err, "GetActivities")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch activities.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities})
}
