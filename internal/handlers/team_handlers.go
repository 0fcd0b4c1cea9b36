package handlers

import (
	"errors"
	"net/http"

	"shiftly_backend/internal/services"
	"shiftly_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// TeamHandler holds the team service.
type TeamHandler struct {
	teamService services.TeamService
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(ts services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: ts}
}

func respondTeamError(c *gin.Context, err error, operation string) {
	utils.LogError(err, operation)
	switch {
	case errors.Is(err, services.ErrTeamMemberNotFound), errors.Is(err, services.ErrInviteNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Record not found.", err.Error()))
	case errors.Is(err, services.ErrTeamDataValidation), errors.Is(err, services.ErrInviteEmailInvalid):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
	case errors.Is(err, services.ErrInviteAlreadyExists):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, err.Error(), err.Error()))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Team operation failed.", "Internal error"))
	}
}

// CreateTeamMember handles adding a team member.
func (h *TeamHandler) CreateTeamMember(c *gin.Context) {
	var req services.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	member, err := h.teamService.CreateTeamMember(req)
	if err != nil {
		respondTeamError(c, err, "CreateTeamMember")
		return
	}
	c.JSON(http.StatusCreated, member)
}

// GetTeamMembers handles listing team members with optional search.
func (h *TeamHandler) GetTeamMembers(c *gin.Context) {
	var searchTerm *string
	if search := c.Query("search"); search != "" {
		searchTerm = &search
	}

	members, err := h.teamService.GetTeamMembers(searchTerm)
	if err != nil {
		respondTeamError(c, err, "GetTeamMembers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members})
}

// GetTeamMemberByID handles fetching a single team member.
func (h *TeamHandler) GetTeamMemberByID(c *gin.Context) {
	member, err := h.teamService.GetTeamMemberByID(c.Param("id"))
	if err != nil {
		respondTeamError(c, err, "GetTeamMemberByID")
		return
	}
	c.JSON(http.StatusOK, member)
}

// UpdateTeamMember handles editing a team member.
func (h *TeamHandler) UpdateTeamMember(c *gin.Context) {
	var req services.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	member, err := h.teamService.UpdateTeamMember(c.Param("id"), req)
	if err != nil {
		respondTeamError(c, err, "UpdateTeamMember")
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteTeamMember handles removing a team member. Their shifts survive as
// unassigned records.
func (h *TeamHandler) DeleteTeamMember(c *gin.Context) {
	if err := h.teamService.DeleteTeamMember(c.Param("id")); err != nil {
		respondTeamError(c, err, "DeleteTeamMember")
		return
	}
	c.Status(http.StatusNoContent)
}

// InviteTeamMember handles emailing an invitation.
func (h *TeamHandler) InviteTeamMember(c *gin.Context) {
	var req services.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	invite, err := h.teamService.InviteTeamMember(req)
	if err != nil {
		respondTeamError(c, err, "InviteTeamMember")
		return
	}
	c.JSON(http.StatusCreated, invite)
}

// GetInvites handles listing invitations.
func (h *TeamHandler) GetInvites(c *gin.Context) {
	invites, err := h.teamService.GetInvites()
	if err != nil {
		respondTeamError(c, err, "GetInvites")
		return
	}
	c.JSON(http.StatusOK, gin.H{"invites": invites})
}

// RevokeInvite handles withdrawing a pending invitation.
func (h *TeamHandler) RevokeInvite(c *gin.Context) {
	if err := h.teamService.RevokeInvite(c.Param("id")); err != nil {
		respondTeamError(c, err, "RevokeInvite")
		return
	}
	c.Status(http.StatusNoContent)
}
