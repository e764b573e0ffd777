package service

import (
	"context"
	"errors"
	"fmt"

	"quemjoga-backend/internal/database/models"
	apperrors "quemjoga-backend/internal/errors"
	"quemjoga-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccessService answers the membership and admin checks every group operation relies on
type AccessService struct {
	adminRepo  repository.GroupAdminRepositoryInterface
	memberRepo repository.MemberRepositoryInterface
}

// NewAccessService creates a new access service
func NewAccessService(adminRepo repository.GroupAdminRepositoryInterface, memberRepo repository.MemberRepositoryInterface) *AccessService {
	return &AccessService{
		adminRepo:  adminRepo,
		memberRepo: memberRepo,
	}
}

// RoleIn resolves the role of a user inside a group.
// An active GroupAdmin or an active admin-flagged Member is an admin; any other active Member is a member.
func (s *AccessService) RoleIn(ctx context.Context, userID, groupID uuid.UUID) (models.GroupRole, error) {
	admin, err := s.adminRepo.GetByGroupAndUser(ctx, groupID, userID)
	switch {
	case err == nil && admin.IsActive:
		return models.GroupRoleAdmin, nil
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return "", fmt.Errorf("failed to check group admin: %w", err)
	}

	member, err := s.memberRepo.GetByGroupAndUser(ctx, groupID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrNotGroupMember
		}
		return "", fmt.Errorf("failed to check group member: %w", err)
	}
	if !member.IsActive {
		return "", apperrors.ErrNotGroupMember
	}
	if member.IsAdmin {
		return models.GroupRoleAdmin, nil
	}
	return models.GroupRoleMember, nil
}

// RequireMembership fails unless the user is an active member or admin of the group
func (s *AccessService) RequireMembership(ctx context.Context, userID, groupID uuid.UUID) error {
	_, err := s.RoleIn(ctx, userID, groupID)
	return err
}

// RequireAdmin fails unless the user administers the group
func (s *AccessService) RequireAdmin(ctx context.Context, userID, groupID uuid.UUID) error {
	role, err := s.RoleIn(ctx, userID, groupID)
	if err != nil {
		if apperrors.IsAuthorization(err) {
			return apperrors.ErrNotGroupAdmin
		}
		return err
	}
	if role != models.GroupRoleAdmin {
		return apperrors.ErrNotGroupAdmin
	}
	return nil
}
