package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"shiftly_backend/internal/models"
	"shiftly_backend/internal/repositories"
	"shiftly_backend/pkg/utils"

	"github.com/google/uuid"
)

// --- Custom Service Errors for Team ---
var (
	ErrTeamMemberNotFound  = errors.New("team member not found")
	ErrTeamDataValidation  = errors.New("team member validation error")
	ErrInviteNotFound      = errors.New("invite not found")
	ErrInviteEmailInvalid  = errors.New("invite email is not a valid address")
	ErrInviteAlreadyExists = errors.New("an invite for this email is already pending")
)

// --- Team DTOs ---

type CreateTeamMemberRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Position string  `json:"position" binding:"required"`
	Avatar   *string `json:"avatar"`
	Hours    float64 `json:"hours"`
}

type UpdateTeamMemberRequest struct {
	Name     *string                  `json:"name"`
	Email    *string                  `json:"email"`
	Phone    *string                  `json:"phone"`
	Position *string                  `json:"position"`
	Avatar   *string                  `json:"avatar"`
	Status   *models.TeamMemberStatus `json:"status"`
	Hours    *float64                 `json:"hours"`
}

type InviteRequest struct {
	Email string `json:"email" binding:"required"`
	Role  string `json:"role" binding:"required"`
}

// --- TeamService Interface ---
type TeamService interface {
	CreateTeamMember(req CreateTeamMemberRequest) (*models.TeamMember, error)
	GetTeamMemberByID(memberID string) (*models.TeamMember, error)
	GetTeamMembers(searchTerm *string) ([]models.TeamMember, error)
	UpdateTeamMember(memberID string, req UpdateTeamMemberRequest) (*models.TeamMember, error)
	DeleteTeamMember(memberID string) error

	InviteTeamMember(req InviteRequest) (*models.Invite, error)
	GetInvites() ([]models.Invite, error)
	RevokeInvite(inviteID string) error
}

// --- teamService Implementation ---
type teamService struct {
	teamRepo     repositories.TeamRepository
	activityRepo repositories.ActivityRepository
	mailer       Mailer
	db           *sql.DB
}

// NewTeamService creates a new instance of TeamService.
func NewTeamService(tr repositories.TeamRepository, ar repositories.ActivityRepository, mailer Mailer, db *sql.DB) TeamService {
	return &teamService{
		teamRepo:     tr,
		activityRepo: ar,
		mailer:       mailer,
		db:           db,
	}
}

func (s *teamService) recordActivity(activityType models.ActivityType, message string) {
	if s.activityRepo == nil {
		return
	}
	if _, err := s.activityRepo.CreateActivity(s.db, &models.Activity{Type: activityType, Message: message}); err != nil {
		utils.LogError(err, "recordActivity: failed to record "+string(activityType))
	}
}

func (s *teamService) CreateTeamMember(req CreateTeamMemberRequest) (*models.TeamMember, error) {
	if utils.IsEmpty(req.Name) || utils.IsEmpty(req.Position) {
		return nil, fmt.Errorf("%w: name and position are required", ErrTeamDataValidation)
	}
	if req.Email != nil && *req.Email != "" && !utils.IsValidEmail(*req.Email) {
		return nil, fmt.Errorf("%w: %q", ErrInviteEmailInvalid, *req.Email)
	}

	member := models.TeamMember{
		Name:     strings.TrimSpace(req.Name),
		Email:    req.Email,
		Phone:    req.Phone,
		Position: strings.TrimSpace(req.Position),
		Avatar:   req.Avatar,
		Status:   models.TeamMemberActive,
		Hours:    req.Hours,
	}
	created, err := s.teamRepo.CreateTeamMember(s.db, &member)
	if err != nil {
		return nil, err
	}

	s.recordActivity(models.ActivityMemberAdded, fmt.Sprintf("%s joined the team as %s", created.Name, created.Position))
	return created, nil
}

func (s *teamService) GetTeamMemberByID(memberID string) (*models.TeamMember, error) {
	member, err := s.teamRepo.GetTeamMemberByID(memberID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

func (s *teamService) GetTeamMembers(searchTerm *string) ([]models.TeamMember, error) {
	return s.teamRepo.GetTeamMembers(searchTerm)
}

func (s *teamService) UpdateTeamMember(memberID string, req UpdateTeamMemberRequest) (*models.TeamMember, error) {
	member, err := s.teamRepo.GetTeamMemberByID(memberID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		if utils.IsEmpty(*req.Name) {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrTeamDataValidation)
		}
		member.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		if *req.Email != "" && !utils.IsValidEmail(*req.Email) {
			return nil, fmt.Errorf("%w: %q", ErrInviteEmailInvalid, *req.Email)
		}
		member.Email = req.Email
	}
	if req.Phone != nil {
		member.Phone = req.Phone
	}
	if req.Position != nil {
		member.Position = strings.TrimSpace(*req.Position)
	}
	if req.Avatar != nil {
		member.Avatar = req.Avatar
	}
	if req.Status != nil {
		member.Status = *req.Status
	}
	if req.Hours != nil {
		member.Hours = *req.Hours
	}

	updated, err := s.teamRepo.UpdateTeamMember(s.db, member)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *teamService) DeleteTeamMember(memberID string) error {
	err := s.teamRepo.DeleteTeamMember(s.db, memberID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTeamMemberNotFound
		}
		return err
	}
	return nil
}

func (s *teamService) InviteTeamMember(req InviteRequest) (*models.Invite, error) {
	if !utils.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("%w: %q", ErrInviteEmailInvalid, req.Email)
	}

	invite := models.Invite{
		Email:  strings.ToLower(strings.TrimSpace(req.Email)),
		Role:   strings.TrimSpace(req.Role),
		Token:  uuid.NewString(),
		Status: models.InvitePending,
	}
	created, err := s.teamRepo.CreateInvite(s.db, &invite)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrInviteAlreadyExists
		}
		return nil, err
	}

	// Mail delivery is best effort: a failed send leaves the invite pending
	// and visible in the invite list for a manual resend.
	if err := s.mailer.SendInvite(created.Email, created.Role, created.Token); err != nil {
		utils.LogError(err, "InviteTeamMember: invite mail delivery failed")
	}

	s.recordActivity(models.ActivityMemberInvited, fmt.Sprintf("%s invited as %s", created.Email, created.Role))
	return created, nil
}

func (s *teamService) GetInvites() ([]models.Invite, error) {
	return s.teamRepo.GetInvites()
}

func (s *teamService) RevokeInvite(inviteID string) error {
	err := s.teamRepo.UpdateInviteStatus(s.db, inviteID, models.InviteRevoked)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrInviteNotFound
		}
		return err
	}
	return nil
}
