package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"quemjoga-backend/internal/database/models"
	apperrors "quemjoga-backend/internal/errors"
	"quemjoga-backend/internal/logger"
	"quemjoga-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InviteService handles invites and the onboarding they trigger
type InviteService struct {
	tx             repository.TransactorInterface
	inviteRepo     repository.InviteRepositoryInterface
	groupRepo      repository.GroupRepositoryInterface
	teamRepo       repository.TeamRepositoryInterface
	adminRepo      repository.GroupAdminRepositoryInterface
	memberRepo     repository.MemberRepositoryInterface
	teamMemberRepo repository.TeamMemberRepositoryInterface
	profileRepo    repository.AthleteProfileRepositoryInterface
	access         AccessControlInterface
	validator      *validator.Validate
	ttl            time.Duration
}

// NewInviteService creates a new invite service. A zero ttl issues invites that never expire.
func NewInviteService(
	tx repository.TransactorInterface,
	inviteRepo repository.InviteRepositoryInterface,
	groupRepo repository.GroupRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	adminRepo repository.GroupAdminRepositoryInterface,
	memberRepo repository.MemberRepositoryInterface,
	teamMemberRepo repository.TeamMemberRepositoryInterface,
	profileRepo repository.AthleteProfileRepositoryInterface,
	access AccessControlInterface,
	validator *validator.Validate,
	ttl time.Duration,
) *InviteService {
	return &InviteService{
		tx:             tx,
		inviteRepo:     inviteRepo,
		groupRepo:      groupRepo,
		teamRepo:       teamRepo,
		adminRepo:      adminRepo,
		memberRepo:     memberRepo,
		teamMemberRepo: teamMemberRepo,
		profileRepo:    profileRepo,
		access:         access,
		validator:      validator,
		ttl:            ttl,
	}
}

// CreateInviteRequest represents the request to invite someone into a group
type CreateInviteRequest struct {
	GroupID uuid.UUID         `json:"group_id" validate:"required"`
	TeamID  *uuid.UUID        `json:"team_id,omitempty"`
	Email   string            `json:"email" validate:"omitempty,email,max=255"`
	Phone   string            `json:"phone" validate:"max=30"`
	Name    string            `json:"name" validate:"max=120"`
	Role    models.InviteRole `json:"role" validate:"omitempty,oneof=admin player"`
}

// AcceptInviteRequest carries the token being accepted
type AcceptInviteRequest struct {
	Token string `json:"token" validate:"required,max=64"`
}

// InviteResponse represents the response for invite operations
type InviteResponse struct {
	ID         uuid.UUID           `json:"id"`
	Token      string              `json:"token"`
	GroupID    uuid.UUID           `json:"group_id"`
	GroupName  string              `json:"group_name,omitempty"`
	TeamID     *uuid.UUID          `json:"team_id,omitempty"`
	Email      string              `json:"email,omitempty"`
	Phone      string              `json:"phone,omitempty"`
	Name       string              `json:"name,omitempty"`
	Role       models.InviteRole   `json:"role"`
	Status     models.InviteStatus `json:"status"`
	CreatedBy  uuid.UUID           `json:"created_by"`
	AcceptedBy *uuid.UUID          `json:"accepted_by,omitempty"`
	AcceptedAt *time.Time          `json:"accepted_at,omitempty"`
	ExpiresAt  *time.Time          `json:"expires_at,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

// Create issues a single-use invite token for a group and optionally one of its teams
func (s *InviteService) Create(ctx context.Context, userID uuid.UUID, req *CreateInviteRequest) (*InviteResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.access.RequireAdmin(ctx, userID, req.GroupID); err != nil {
		return nil, err
	}

	if req.TeamID != nil {
		team, err := s.teamRepo.GetByID(ctx, *req.TeamID)
		if err != nil {
			return nil, translate(err, apperrors.ErrTeamNotFound, "get team")
		}
		if team.GroupID != req.GroupID {
			return nil, apperrors.ErrTeamNotInGroup
		}
	}

	role := req.Role
	if role == "" {
		role = models.InviteRolePlayer
	}
	invite := &models.Invite{
		Token:     newInviteToken(),
		GroupID:   req.GroupID,
		TeamID:    req.TeamID,
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Name:      strings.TrimSpace(req.Name),
		Role:      role,
		Status:    models.InviteStatusPending,
		CreatedBy: userID,
	}
	if s.ttl > 0 {
		invite.ExpiresAt = timePtr(time.Now().Add(s.ttl))
	}

	if err := s.inviteRepo.Create(ctx, invite); err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}
	return toInviteResponse(invite), nil
}

// GetByToken retrieves an invite by its token. It needs no authentication.
func (s *InviteService) GetByToken(ctx context.Context, token string) (*InviteResponse, error) {
	invite, err := s.inviteRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, translate(err, apperrors.ErrInviteNotFound, "get invite")
	}
	return toInviteResponse(invite), nil
}

// Accept consumes an invite for the authenticated user
func (s *InviteService) Accept(ctx context.Context, user *models.User, token string) (*InviteResponse, error) {
	invite, err := s.AcceptToken(ctx, user, token)
	if err != nil {
		return nil, err
	}
	return toInviteResponse(invite), nil
}

// AcceptToken consumes an invite inside one transaction. When ctx already carries a
// transaction, as during registration, the acceptance joins it.
//
// An admin invite grants a non-owner GroupAdmin record. A player invite grants a Member,
// plus a team membership when the invite names a team. Records the user already has are
// reused, so accepting never duplicates a membership.
func (s *InviteService) AcceptToken(ctx context.Context, user *models.User, token string) (*models.Invite, error) {
	var invite *models.Invite
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		invite, err = s.inviteRepo.GetByToken(ctx, token)
		if err != nil {
			return translate(err, apperrors.ErrInviteNotFound, "get invite")
		}
		if invite.Status != models.InviteStatusPending {
			return apperrors.ErrInviteNotPending
		}
		now := time.Now()
		if invite.IsExpired(now) {
			return apperrors.ErrInviteExpired
		}

		switch invite.Role {
		case models.InviteRoleAdmin:
			err = s.grantAdmin(ctx, user, invite)
		default:
			err = s.grantMembership(ctx, user, invite, now)
		}
		if err != nil {
			return err
		}

		acceptedBy := user.ID
		invite.Status = models.InviteStatusAccepted
		invite.AcceptedBy = &acceptedBy
		invite.AcceptedAt = &now
		if err := s.inviteRepo.Update(ctx, invite); err != nil {
			return fmt.Errorf("failed to mark invite accepted: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"invite_id": invite.ID,
		"group_id":  invite.GroupID,
		"role":      invite.Role,
	}).Info("Invite accepted")
	return invite, nil
}

// Cancel withdraws a pending invite
func (s *InviteService) Cancel(ctx context.Context, userID, inviteID uuid.UUID) (*InviteResponse, error) {
	invite, err := s.inviteRepo.GetByID(ctx, inviteID)
	if err != nil {
		return nil, translate(err, apperrors.ErrInviteNotFound, "get invite")
	}
	if err := s.access.RequireAdmin(ctx, userID, invite.GroupID); err != nil {
		return nil, err
	}
	if invite.Status != models.InviteStatusPending {
		return nil, apperrors.ErrInviteNotPending
	}

	invite.Status = models.InviteStatusCanceled
	if err := s.inviteRepo.Update(ctx, invite); err != nil {
		return nil, fmt.Errorf("failed to cancel invite: %w", err)
	}
	return toInviteResponse(invite), nil
}

// ListPending lists the invites of a group that can still be accepted
func (s *InviteService) ListPending(ctx context.Context, userID, groupID uuid.UUID) ([]InviteResponse, error) {
	if err := s.access.RequireAdmin(ctx, userID, groupID); err != nil {
		return nil, err
	}

	invites, err := s.inviteRepo.ListPendingByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	responses := make([]InviteResponse, len(invites))
	for i := range invites {
		responses[i] = *toInviteResponse(&invites[i])
	}
	return responses, nil
}

func (s *InviteService) grantAdmin(ctx context.Context, user *models.User, invite *models.Invite) error {
	admin, err := s.adminRepo.GetByGroupAndUser(ctx, invite.GroupID, user.ID)
	switch {
	case err == nil:
		if admin.IsActive {
			return nil
		}
		admin.IsActive = true
		if err := s.adminRepo.Update(ctx, admin); err != nil {
			return fmt.Errorf("failed to reactivate group admin: %w", err)
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		admin = &models.GroupAdmin{
			GroupID:  invite.GroupID,
			UserID:   user.ID,
			IsOwner:  false,
			IsActive: true,
		}
		if err := s.adminRepo.Create(ctx, admin); err != nil {
			return fmt.Errorf("failed to create group admin: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("failed to check group admin: %w", err)
	}
}

func (s *InviteService) grantMembership(ctx context.Context, user *models.User, invite *models.Invite, now time.Time) error {
	member, err := s.memberRepo.GetByGroupAndUser(ctx, invite.GroupID, user.ID)
	switch {
	case err == nil:
		if !member.IsActive {
			if err := s.checkCapacity(ctx, invite.GroupID); err != nil {
				return err
			}
			// An admin-flagged member coming back takes an admin slot again
			if member.IsAdmin {
				if err := ensureAdminCapacity(ctx, s.memberRepo, invite.GroupID); err != nil {
					return err
				}
			}
			member.IsActive = true
			if err := s.memberRepo.Update(ctx, member); err != nil {
				return fmt.Errorf("failed to reactivate member: %w", err)
			}
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.checkCapacity(ctx, invite.GroupID); err != nil {
			return err
		}
		member, err = s.newMember(ctx, user, invite)
		if err != nil {
			return err
		}
		if err := s.memberRepo.Create(ctx, member); err != nil {
			return fmt.Errorf("failed to create member: %w", err)
		}
	default:
		return fmt.Errorf("failed to check member: %w", err)
	}

	if invite.TeamID == nil {
		return nil
	}
	err = assignTeam(ctx, s.teamMemberRepo, invite.GroupID, &models.TeamMember{
		TeamID:   *invite.TeamID,
		MemberID: member.ID,
		Since:    now,
	})
	if errors.Is(err, apperrors.ErrTeamMemberExists) {
		return nil
	}
	return err
}

func (s *InviteService) checkCapacity(ctx context.Context, groupID uuid.UUID) error {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return translate(err, apperrors.ErrGroupNotFound, "get group")
	}
	return ensureRosterCapacity(ctx, s.memberRepo, group)
}

// newMember builds the roster entry of an invited player from the invite, then the user
func (s *InviteService) newMember(ctx context.Context, user *models.User, invite *models.Invite) (*models.Member, error) {
	userID := user.ID
	member := &models.Member{
		GroupID:  invite.GroupID,
		UserID:   &userID,
		Name:     firstNonEmpty(invite.Name, user.Name, "Atleta"),
		Phone:    firstNonEmpty(invite.Phone, user.PhoneValue()),
		Position: models.PositionMidfielder,
		IsActive: true,
	}

	profile, err := s.profileRepo.GetByUserID(ctx, user.ID)
	switch {
	case err == nil:
		member.PhotoURL = profile.PhotoURL
		member.Nickname = profile.Nickname
		if profile.Position != "" {
			member.Position = profile.Position
		}
		member.JerseyNumber = profile.JerseyNumber
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return member, nil
}

// newInviteToken returns an opaque 32 character token
func newInviteToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func toInviteResponse(invite *models.Invite) *InviteResponse {
	resp := &InviteResponse{
		ID:         invite.ID,
		Token:      invite.Token,
		GroupID:    invite.GroupID,
		TeamID:     invite.TeamID,
		Email:      invite.Email,
		Phone:      invite.Phone,
		Name:       invite.Name,
		Role:       invite.Role,
		Status:     invite.Status,
		CreatedBy:  invite.CreatedBy,
		AcceptedBy: invite.AcceptedBy,
		AcceptedAt: invite.AcceptedAt,
		ExpiresAt:  invite.ExpiresAt,
		CreatedAt:  invite.CreatedAt,
	}
	if invite.Group != nil {
		resp.GroupName = invite.Group.Name
	}
	return resp
}
