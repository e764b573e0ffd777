package repository

import (
	"context"

	"quemjoga-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InviteRepository handles database operations for invites
type InviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository creates a new invite repository
func NewInviteRepository(db *gorm.DB) *InviteRepository {
	return &InviteRepository{db: db}
}

// Create creates a new invite
func (r *InviteRepository) Create(ctx context.Context, invite *models.Invite) error {
	return conn(ctx, r.db).Create(invite).Error
}

// GetByID retrieves an invite by ID
func (r *InviteRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invite, error) {
	var invite models.Invite
	err := conn(ctx, r.db).First(&invite, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

// GetByToken retrieves an invite by its token with the group it points to
func (r *InviteRepository) GetByToken(ctx context.Context, token string) (*models.Invite, error) {
	var invite models.Invite
	err := conn(ctx, r.db).Preload("Group").First(&invite, "token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

// ListPendingByGroup retrieves the open invites of a group, newest first
func (r *InviteRepository) ListPendingByGroup(ctx context.Context, groupID uuid.UUID) ([]models.Invite, error) {
	var invites []models.Invite
	err := conn(ctx, r.db).
		Where("group_id = ? AND status = ?", groupID, models.InviteStatusPending).
		Order("created_at DESC").
		Find(&invites).Error
	return invites, err
}

// Update saves the invite's own columns
func (r *InviteRepository) Update(ctx context.Context, invite *models.Invite) error {
	return conn(ctx, r.db).Omit("Group").Save(invite).Error
}
