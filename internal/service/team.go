package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quemjoga-backend/internal/database/models"
	apperrors "quemjoga-backend/internal/errors"
	"quemjoga-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams and their rosters
type TeamService struct {
	tx             repository.TransactorInterface
	teamRepo       repository.TeamRepositoryInterface
	teamMemberRepo repository.TeamMemberRepositoryInterface
	memberRepo     repository.MemberRepositoryInterface
	groupRepo      repository.GroupRepositoryInterface
	access         AccessControlInterface
	validator      *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(
	tx repository.TransactorInterface,
	teamRepo repository.TeamRepositoryInterface,
	teamMemberRepo repository.TeamMemberRepositoryInterface,
	memberRepo repository.MemberRepositoryInterface,
	groupRepo repository.GroupRepositoryInterface,
	access AccessControlInterface,
	validator *validator.Validate,
) *TeamService {
	return &TeamService{
		tx:             tx,
		teamRepo:       teamRepo,
		teamMemberRepo: teamMemberRepo,
		memberRepo:     memberRepo,
		groupRepo:      groupRepo,
		access:         access,
		validator:      validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	GroupID uuid.UUID `json:"group_id" validate:"required"`
	Name    string    `json:"name" validate:"required,min=1,max=100"`
	Color   string    `json:"color" validate:"max=30"`
}

// UpdateTeamRequest represents the request to update a team
type UpdateTeamRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Color    *string `json:"color,omitempty" validate:"omitempty,max=30"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// AddTeamMemberRequest represents the request to put a member on a team
type AddTeamMemberRequest struct {
	MemberID       uuid.UUID `json:"member_id" validate:"required"`
	IsStarter      bool      `json:"is_starter"`
	LineupPosition string    `json:"lineup_position" validate:"max=30"`
	BenchOrder     *int      `json:"bench_order,omitempty" validate:"omitempty,min=0"`
}

// UpdateTeamMemberRequest represents a lineup change for a team member
type UpdateTeamMemberRequest struct {
	IsStarter      *bool   `json:"is_starter,omitempty"`
	LineupPosition *string `json:"lineup_position,omitempty" validate:"omitempty,max=30"`
	BenchOrder     *int    `json:"bench_order,omitempty" validate:"omitempty,min=0"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID        uuid.UUID            `json:"id"`
	GroupID   uuid.UUID            `json:"group_id"`
	Name      string               `json:"name"`
	Color     string               `json:"color"`
	IsActive  bool                 `json:"is_active"`
	Members   []TeamMemberResponse `json:"members"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// TeamMemberResponse represents a member on a team roster
type TeamMemberResponse struct {
	ID             uuid.UUID       `json:"id"`
	TeamID         uuid.UUID       `json:"team_id"`
	MemberID       uuid.UUID       `json:"member_id"`
	Name           string          `json:"name,omitempty"`
	Position       models.Position `json:"position,omitempty"`
	IsActive       bool            `json:"is_active"`
	IsStarter      bool            `json:"is_starter"`
	LineupPosition string          `json:"lineup_position"`
	BenchOrder     *int            `json:"bench_order,omitempty"`
	Since          time.Time       `json:"since"`
	Until          *time.Time      `json:"until,omitempty"`
}

// Create creates a team in a group
func (s *TeamService) Create(ctx context.Context, userID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.access.RequireAdmin(ctx, userID, req.GroupID); err != nil {
		return nil, err
	}
	if _, err := s.groupRepo.GetByID(ctx, req.GroupID); err != nil {
		return nil, translate(err, apperrors.ErrGroupNotFound, "get group")
	}

	team := &models.Team{
		GroupID:  req.GroupID,
		Name:     req.Name,
		Color:    req.Color,
		IsActive: true,
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return toTeamResponse(team), nil
}

// List lists the active teams of a group with their rosters
func (s *TeamService) List(ctx context.Context, userID, groupID uuid.UUID) ([]TeamResponse, error) {
	if err := s.access.RequireAdmin(ctx, userID, groupID); err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *toTeamResponse(&teams[i])
	}
	return responses, nil
}

// Get retrieves an active team with its roster
func (s *TeamService) Get(ctx context.Context, userID, teamID uuid.UUID) (*TeamResponse, error) {
	team, err := s.teamRepo.GetWithMembers(ctx, teamID)
	if err != nil {
		return nil, translate(err, apperrors.ErrTeamNotFound, "get team")
	}
	if !team.IsActive {
		return nil, apperrors.ErrTeamNotFound
	}
	if err := s.access.RequireAdmin(ctx, userID, team.GroupID); err != nil {
		return nil, err
	}
	return toTeamResponse(team), nil
}

// Update updates a team
func (s *TeamService) Update(ctx context.Context, userID, teamID uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, translate(err, apperrors.ErrTeamNotFound, "get team")
	}
	if err := s.access.RequireAdmin(ctx, userID, team.GroupID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Color != nil {
		team.Color = *req.Color
	}
	if req.IsActive != nil {
		team.IsActive = *req.IsActive
	}
	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return toTeamResponse(team), nil
}

// Delete soft-deletes a team
func (s *TeamService) Delete(ctx context.Context, userID, teamID uuid.UUID) error {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return translate(err, apperrors.ErrTeamNotFound, "get team")
	}
	if err := s.access.RequireAdmin(ctx, userID, team.GroupID); err != nil {
		return err
	}

	team.IsActive = false
	if err := s.teamRepo.Update(ctx, team); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// AddMember puts a member on a team, closing their active membership in any other team of the group
func (s *TeamService) AddMember(ctx context.Context, userID, teamID uuid.UUID, req *AddTeamMemberRequest) (*TeamMemberResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	team, err := s.activeTeam(ctx, userID, teamID)
	if err != nil {
		return nil, err
	}
	member, err := s.memberRepo.GetByID(ctx, req.MemberID)
	if err != nil {
		return nil, translate(err, apperrors.ErrMemberNotFound, "get member")
	}
	if member.GroupID != team.GroupID {
		return nil, apperrors.ErrMemberNotInGroup
	}

	teamMember := &models.TeamMember{
		TeamID:         team.ID,
		MemberID:       member.ID,
		IsActive:       true,
		IsStarter:      req.IsStarter,
		LineupPosition: req.LineupPosition,
		BenchOrder:     req.BenchOrder,
	}
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return assignTeam(ctx, s.teamMemberRepo, team.GroupID, teamMember)
	})
	if err != nil {
		return nil, err
	}

	teamMember.Member = member
	return toTeamMemberResponse(teamMember), nil
}

// UpdateMember changes the lineup attributes of an active team member
func (s *TeamService) UpdateMember(ctx context.Context, userID, teamID, memberID uuid.UUID, req *UpdateTeamMemberRequest) (*TeamMemberResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if _, err := s.activeTeam(ctx, userID, teamID); err != nil {
		return nil, err
	}

	teamMember, err := s.teamMemberRepo.GetActive(ctx, teamID, memberID)
	if err != nil {
		return nil, translate(err, apperrors.ErrTeamMemberNotFound, "get team member")
	}
	if req.IsStarter != nil {
		teamMember.IsStarter = *req.IsStarter
	}
	if req.LineupPosition != nil {
		teamMember.LineupPosition = *req.LineupPosition
	}
	if req.BenchOrder != nil {
		teamMember.BenchOrder = req.BenchOrder
	}
	if err := s.teamMemberRepo.Update(ctx, teamMember); err != nil {
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}
	return toTeamMemberResponse(teamMember), nil
}

// RemoveMember closes the active membership of a member in a team
func (s *TeamService) RemoveMember(ctx context.Context, userID, teamID, memberID uuid.UUID) error {
	if _, err := s.activeTeam(ctx, userID, teamID); err != nil {
		return err
	}

	teamMember, err := s.teamMemberRepo.GetActive(ctx, teamID, memberID)
	if err != nil {
		return translate(err, apperrors.ErrTeamMemberNotFound, "get team member")
	}
	teamMember.IsActive = false
	teamMember.Until = timePtr(time.Now())
	if err := s.teamMemberRepo.Update(ctx, teamMember); err != nil {
		return fmt.Errorf("failed to remove team member: %w", err)
	}
	return nil
}

func (s *TeamService) activeTeam(ctx context.Context, userID, teamID uuid.UUID) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, translate(err, apperrors.ErrTeamNotFound, "get team")
	}
	if !team.IsActive {
		return nil, apperrors.ErrTeamNotFound
	}
	if err := s.access.RequireAdmin(ctx, userID, team.GroupID); err != nil {
		return nil, err
	}
	return team, nil
}

// assignTeam opens a team membership, closing any other active one of the member in the group.
// Assigning a member to the team they already play for is rejected.
func assignTeam(ctx context.Context, repo repository.TeamMemberRepositoryInterface, groupID uuid.UUID, teamMember *models.TeamMember) error {
	_, err := repo.GetActive(ctx, teamMember.TeamID, teamMember.MemberID)
	if err == nil {
		return apperrors.ErrTeamMemberExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check team membership: %w", err)
	}

	now := time.Now()
	if err := repo.DeactivateInGroup(ctx, groupID, teamMember.MemberID, now); err != nil {
		return fmt.Errorf("failed to close previous team membership: %w", err)
	}
	teamMember.IsActive = true
	teamMember.Since = now
	if err := repo.Create(ctx, teamMember); err != nil {
		return fmt.Errorf("failed to create team member: %w", err)
	}
	return nil
}

func toTeamResponse(team *models.Team) *TeamResponse {
	members := make([]TeamMemberResponse, len(team.Members))
	for i := range team.Members {
		members[i] = *toTeamMemberResponse(&team.Members[i])
	}
	return &TeamResponse{
		ID:        team.ID,
		GroupID:   team.GroupID,
		Name:      team.Name,
		Color:     team.Color,
		IsActive:  team.IsActive,
		Members:   members,
		CreatedAt: team.CreatedAt,
		UpdatedAt: team.UpdatedAt,
	}
}

func toTeamMemberResponse(teamMember *models.TeamMember) *TeamMemberResponse {
	resp := &TeamMemberResponse{
		ID:             teamMember.ID,
		TeamID:         teamMember.TeamID,
		MemberID:       teamMember.MemberID,
		IsActive:       teamMember.IsActive,
		IsStarter:      teamMember.IsStarter,
		LineupPosition: teamMember.LineupPosition,
		BenchOrder:     teamMember.BenchOrder,
		Since:          teamMember.Since,
		Until:          teamMember.Until,
	}
	if teamMember.Member != nil {
		resp.Name = teamMember.Member.Name
		resp.Position = teamMember.Member.Position
	}
	return resp
}
