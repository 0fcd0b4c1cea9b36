package handlers

import (
	"errors"
	"net/http"

	"shiftly_backend/internal/models"
	"shiftly_backend/internal/services"
	"shiftly_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler holds the schedule service.
type ScheduleHandler struct {
	scheduleService services.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(ss services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: ss}
}

// respondScheduleError maps schedule service errors onto the API error envelope.
func respondScheduleError(c *gin.Context, err error, operation string) {
	utils.LogError(err, operation)
	switch {
	case errors.Is(err, services.ErrShiftNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Shift not found.", err.Error()))
	case errors.Is(err, services.ErrShiftValidation):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
	case errors.Is(err, services.ErrInvalidStatusTransition):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Status change not allowed: "+err.Error(), err.Error()))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Schedule operation failed.", "Internal error"))
	}
}

// CreateShift handles the creation of a new shift, optionally fanned out
// over additional days of the week.
func (h *ScheduleHandler) CreateShift(c *gin.Context) {
	var req services.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	created, err := h.scheduleService.CreateShift(req)
	if err != nil {
		respondScheduleError(c, err, "CreateShift")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"shifts": created})
}

// GetShiftByID handles fetching a single shift.
func (h *ScheduleHandler) GetShiftByID(c *gin.Context) {
	shift, err := h.scheduleService.GetShiftByID(c.Param("id"))
	if err != nil {
		respondScheduleError(c, err, "GetShiftByID")
		return
	}
	c.JSON(http.StatusOK, shift)
}

// UpdateShift handles editing a shift; duration is recomputed server-side.
func (h *ScheduleHandler) UpdateShift(c *gin.Context) {
	var req services.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	shift, err := h.scheduleService.UpdateShift(c.Param("id"), req)
	if err != nil {
		respondScheduleError(c, err, "UpdateShift")
		return
	}
	c.JSON(http.StatusOK, shift)
}

type updateShiftStatusRequest struct {
	Status models.ShiftStatusType `json:"status" binding:"required"`
}

// UpdateShiftStatus handles moderation transitions (deny, call off, claim).
func (h *ScheduleHandler) UpdateShiftStatus(c *gin.Context) {
	var req updateShiftStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	shift, err := h.scheduleService.UpdateShiftStatus(c.Param("id"), req.Status)
	if err != nil {
		respondScheduleError(c, err, "UpdateShiftStatus")
		return
	}
	c.JSON(http.StatusOK, shift)
}

// DeleteShift handles removing a shift.
func (h *ScheduleHandler) DeleteShift(c *gin.Context) {
	if err := h.scheduleService.DeleteShift(c.Param("id")); err != nil {
		respondScheduleError(c, err, "DeleteShift")
		return
	}
	c.Status(http.StatusNoContent)
}

// CopyShift handles duplicating a shift across days.
func (h *ScheduleHandler) CopyShift(c *gin.Context) {
	var req services.CopyShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	copies, err := h.scheduleService.CopyShift(c.Param("id"), req)
	if err != nil {
		respondScheduleError(c, err, "CopyShift")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"shifts": copies})
}

// GetWeekSchedule handles the week view used by the schedule grid.
func (h *ScheduleHandler) GetWeekSchedule(c *gin.Context) {
	weekStart := c.Query("week_start")
	if weekStart == "" {
		utils.RespondValidationFailed(c, "week_start query parameter is required (YYYY-MM-DD)")
		return
	}

	week, err := h.scheduleService.GetWeekSchedule(weekStart)
	if err != nil {
		respondScheduleError(c, err, "GetWeekSchedule")
		return
	}
	c.JSON(http.StatusOK, week)
}

type publishScheduleRequest struct {
	// WeekStart limits the publish to one week; empty publishes everything pending.
	WeekStart string `json:"week_start"`
}

// PublishSchedule transitions pending shifts to approved.
func (h *ScheduleHandler) PublishSchedule(c *gin.Context) {
	var req publishScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	count, err := h.scheduleService.PublishSchedule(req.WeekStart)
	if err != nil {
		respondScheduleError(c, err, "PublishSchedule")
		return
	}
	c.JSON(http.StatusOK, gin.H{"published": count})
}

// CopyWeek clones a whole week's schedule onto another week.
func (h *ScheduleHandler) CopyWeek(c *gin.Context) {
	var req services.CopyWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	count, err := h.scheduleService.CopyWeek(req)
	if err != nil {
		respondScheduleError(c, err, "CopyWeek")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"copied": count})
}
