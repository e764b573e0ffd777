package service

import (
	"context"
	"fmt"
	"time"

	"quemjoga-backend/internal/database/models"
	apperrors "quemjoga-backend/internal/errors"
	"quemjoga-backend/internal/logger"
	"quemjoga-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	defaultYellowCardFine int64 = 1000
	defaultRedCardFine    int64 = 2000
)

// GroupService handles business logic for groups
type GroupService struct {
	tx          repository.TransactorInterface
	groupRepo   repository.GroupRepositoryInterface
	adminRepo   repository.GroupAdminRepositoryInterface
	memberRepo  repository.MemberRepositoryInterface
	paymentRepo repository.PaymentRepositoryInterface
	userRepo    repository.UserRepositoryInterface
	access      AccessControlInterface
	validator   *validator.Validate
}

// NewGroupService creates a new group service
func NewGroupService(
	tx repository.TransactorInterface,
	groupRepo repository.GroupRepositoryInterface,
	adminRepo repository.GroupAdminRepositoryInterface,
	memberRepo repository.MemberRepositoryInterface,
	paymentRepo repository.PaymentRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	access AccessControlInterface,
	validator *validator.Validate,
) *GroupService {
	return &GroupService{
		tx:          tx,
		groupRepo:   groupRepo,
		adminRepo:   adminRepo,
		memberRepo:  memberRepo,
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		access:      access,
		validator:   validator,
	}
}

// CreateGroupRequest represents the request to create a group
type CreateGroupRequest struct {
	Name           string           `json:"name" validate:"required,min=1,max=120"`
	Type           models.GroupType `json:"type" validate:"omitempty,oneof=field society futsal"`
	Description    string           `json:"description"`
	Rules          string           `json:"rules"`
	DuesAmount     *int64           `json:"dues_amount,omitempty" validate:"omitempty,min=0"`
	YellowCardFine *int64           `json:"yellow_card_fine,omitempty" validate:"omitempty,min=0"`
	RedCardFine    *int64           `json:"red_card_fine,omitempty" validate:"omitempty,min=0"`
}

// UpdateGroupRequest represents the request to update a group
type UpdateGroupRequest struct {
	Name           *string           `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Type           *models.GroupType `json:"type,omitempty" validate:"omitempty,oneof=field society futsal"`
	Description    *string           `json:"description,omitempty"`
	Rules          *string           `json:"rules,omitempty"`
	MaxMembers     *int              `json:"max_members,omitempty" validate:"omitempty,min=1,max=200"`
	DuesAmount     *int64            `json:"dues_amount,omitempty" validate:"omitempty,min=0"`
	YellowCardFine *int64            `json:"yellow_card_fine,omitempty" validate:"omitempty,min=0"`
	RedCardFine    *int64            `json:"red_card_fine,omitempty" validate:"omitempty,min=0"`
}

// GroupResponse represents the response for group operations
type GroupResponse struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	Type           models.GroupType `json:"type"`
	Description    string           `json:"description"`
	Rules          string           `json:"rules"`
	MaxMembers     int              `json:"max_members"`
	DuesAmount     int64            `json:"dues_amount"`
	YellowCardFine int64            `json:"yellow_card_fine"`
	RedCardFine    int64            `json:"red_card_fine"`
	IsActive       bool             `json:"is_active"`
	TotalMembers   int64            `json:"total_members"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// GroupListResponse represents a paginated list of groups
type GroupListResponse struct {
	Groups   []GroupResponse `json:"groups"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// BalanceResponse summarizes the ledger of a group
type BalanceResponse struct {
	GroupID              uuid.UUID `json:"group_id"`
	Received             int64     `json:"received"`
	Outstanding          int64     `json:"outstanding"`
	ReceivedFormatted    string    `json:"received_formatted"`
	OutstandingFormatted string    `json:"outstanding_formatted"`
}

// GroupAdminResponse represents an admin of a group
type GroupAdminResponse struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email,omitempty"`
	IsOwner  bool      `json:"is_owner"`
	IsActive bool      `json:"is_active"`
}

// Create creates a group and makes the caller its owner
func (s *GroupService) Create(ctx context.Context, userID uuid.UUID, req *CreateGroupRequest) (*GroupResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, translate(err, apperrors.ErrUserNotFound, "get user")
	}

	groupType := req.Type
	if groupType == "" {
		groupType = models.GroupTypeSociety
	}

	group := &models.Group{
		Name:           req.Name,
		Type:           groupType,
		Description:    req.Description,
		Rules:          req.Rules,
		MaxMembers:     groupType.MaxMembers(),
		YellowCardFine: defaultYellowCardFine,
		RedCardFine:    defaultRedCardFine,
		IsActive:       true,
	}
	if req.DuesAmount != nil {
		group.DuesAmount = *req.DuesAmount
	}
	if req.YellowCardFine != nil {
		group.YellowCardFine = *req.YellowCardFine
	}
	if req.RedCardFine != nil {
		group.RedCardFine = *req.RedCardFine
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.groupRepo.Create(ctx, group); err != nil {
			return fmt.Errorf("failed to create group: %w", err)
		}

		owner := &models.GroupAdmin{
			GroupID:  group.ID,
			UserID:   user.ID,
			IsOwner:  true,
			IsActive: true,
		}
		if err := s.adminRepo.Create(ctx, owner); err != nil {
			return fmt.Errorf("failed to create group owner: %w", err)
		}

		// Owners get a roster entry as well
		ownerID := user.ID
		member := &models.Member{
			GroupID:  group.ID,
			UserID:   &ownerID,
			Name:     user.Name,
			Phone:    user.PhoneValue(),
			Position: models.PositionMidfielder,
			IsActive: true,
		}
		if err := s.memberRepo.Create(ctx, member); err != nil {
			return fmt.Errorf("failed to create owner member: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("group_id", group.ID).Info("Group created")
	return toGroupResponse(group, 1), nil
}

// List returns the groups the caller plays in or administers
func (s *GroupService) List(ctx context.Context, userID uuid.UUID, activeOnly bool, page, pageSize int) (*GroupListResponse, error) {
	page, pageSize, limit, offset := pagination(page, pageSize)

	groups, total, err := s.groupRepo.ListForUser(ctx, userID, activeOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	ids := make([]uuid.UUID, len(groups))
	for i := range groups {
		ids[i] = groups[i].ID
	}
	counts, err := s.memberRepo.CountActiveByGroups(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	responses := make([]GroupResponse, len(groups))
	for i := range groups {
		responses[i] = *toGroupResponse(&groups[i], counts[groups[i].ID])
	}

	return &GroupListResponse{
		Groups:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Get retrieves a group by ID
func (s *GroupService) Get(ctx context.Context, userID, groupID uuid.UUID) (*GroupResponse, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, translate(err, apperrors.ErrGroupNotFound, "get group")
	}
	if err := s.access.RequireMembership(ctx, userID, groupID); err != nil {
		return nil, err
	}
	return s.withMemberCount(ctx, group)
}

// Update updates a group. Changing the type resets the member limit to that type's default.
func (s *GroupService) Update(ctx context.Context, userID, groupID uuid.UUID, req *UpdateGroupRequest) (*GroupResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, translate(err, apperrors.ErrGroupNotFound, "get group")
	}
	if err := s.access.RequireAdmin(ctx, userID, groupID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.Type != nil && *req.Type != group.Type {
		group.Type = *req.Type
		group.MaxMembers = group.Type.MaxMembers()
	}
	if req.Description != nil {
		group.Description = *req.Description
	}
	if req.Rules != nil {
		group.Rules = *req.Rules
	}
	if req.MaxMembers != nil {
		group.MaxMembers = *req.MaxMembers
	}
	if req.DuesAmount != nil {
		group.DuesAmount = *req.DuesAmount
	}
	if req.YellowCardFine != nil {
		group.YellowCardFine = *req.YellowCardFine
	}
	if req.RedCardFine != nil {
		group.RedCardFine = *req.RedCardFine
	}

	if err := s.groupRepo.Update(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}
	return s.withMemberCount(ctx, group)
}

// Deactivate soft-deletes a group
func (s *GroupService) Deactivate(ctx context.Context, userID, groupID uuid.UUID) error {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return translate(err, apperrors.ErrGroupNotFound, "get group")
	}
	if err := s.access.RequireAdmin(ctx, userID, groupID); err != nil {
		return err
	}

	group.IsActive = false
	if err := s.groupRepo.Update(ctx, group); err != nil {
		return fmt.Errorf("failed to deactivate group: %w", err)
	}
	return nil
}

// Balance sums approved payments against pending and awaiting ones
func (s *GroupService) Balance(ctx context.Context, userID, groupID uuid.UUID) (*BalanceResponse, error) {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return nil, translate(err, apperrors.ErrGroupNotFound, "get group")
	}
	if err := s.access.RequireMembership(ctx, userID, groupID); err != nil {
		return nil, err
	}

	received, err := s.paymentRepo.SumByGroup(ctx, groupID, []models.PaymentStatus{models.PaymentStatusApproved})
	if err != nil {
		return nil, fmt.Errorf("failed to sum approved payments: %w", err)
	}
	outstanding, err := s.paymentRepo.SumByGroup(ctx, groupID, []models.PaymentStatus{
		models.PaymentStatusPending,
		models.PaymentStatusAwaitingApproval,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sum outstanding payments: %w", err)
	}

	return &BalanceResponse{
		GroupID:              groupID,
		Received:             received,
		Outstanding:          outstanding,
		ReceivedFormatted:    FormatMoney(received),
		OutstandingFormatted: FormatMoney(outstanding),
	}, nil
}

// ListAdmins lists the active admins of a group, owner first
func (s *GroupService) ListAdmins(ctx context.Context, userID, groupID uuid.UUID) ([]GroupAdminResponse, error) {
	if err := s.access.RequireMembership(ctx, userID, groupID); err != nil {
		return nil, err
	}

	admins, err := s.adminRepo.ListActiveByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	responses := make([]GroupAdminResponse, len(admins))
	for i, admin := range admins {
		responses[i] = GroupAdminResponse{
			ID:       admin.ID,
			UserID:   admin.UserID,
			IsOwner:  admin.IsOwner,
			IsActive: admin.IsActive,
		}
		if admin.User != nil {
			responses[i].Name = admin.User.Name
			responses[i].Email = admin.User.EmailValue()
		}
	}
	return responses, nil
}

func (s *GroupService) withMemberCount(ctx context.Context, group *models.Group) (*GroupResponse, error) {
	total, err := s.memberRepo.CountActive(ctx, group.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}
	return toGroupResponse(group, total), nil
}

func toGroupResponse(group *models.Group, totalMembers int64) *GroupResponse {
	return &GroupResponse{
		ID:             group.ID,
		Name:           group.Name,
		Type:           group.Type,
		Description:    group.Description,
		Rules:          group.Rules,
		MaxMembers:     group.MaxMembers,
		DuesAmount:     group.DuesAmount,
		YellowCardFine: group.YellowCardFine,
		RedCardFine:    group.RedCardFine,
		IsActive:       group.IsActive,
		TotalMembers:   totalMembers,
		CreatedAt:      group.CreatedAt,
		UpdatedAt:      group.UpdatedAt,
	}
}
