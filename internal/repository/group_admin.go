package repository

import (
	"context"

	"quemjoga-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupAdminRepository handles database operations for group admins
type GroupAdminRepository struct {
	db *gorm.DB
}

// NewGroupAdminRepository creates a new group admin repository
func NewGroupAdminRepository(db *gorm.DB) *GroupAdminRepository {
	return &GroupAdminRepository{db: db}
}

// Create creates a new group admin
func (r *GroupAdminRepository) Create(ctx context.Context, admin *models.GroupAdmin) error {
	return conn(ctx, r.db).Create(admin).Error
}

// GetByGroupAndUser retrieves the admin record of a user in a group, active or not
func (r *GroupAdminRepository) GetByGroupAndUser(ctx context.Context, groupID, userID uuid.UUID) (*models.GroupAdmin, error) {
	var admin models.GroupAdmin
	err := conn(ctx, r.db).First(&admin, "group_id = ? AND user_id = ?", groupID, userID).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// ListActiveByGroup retrieves the active admins of a group with their users
func (r *GroupAdminRepository) ListActiveByGroup(ctx context.Context, groupID uuid.UUID) ([]models.GroupAdmin, error) {
	var admins []models.GroupAdmin
	err := conn(ctx, r.db).
		Preload("User").
		Where("group_id = ? AND is_active = ?", groupID, true).
		Order("is_owner DESC, created_at ASC").
		Find(&admins).Error
	return admins, err
}

// Update saves all admin fields
func (r *GroupAdminRepository) Update(ctx context.Context, admin *models.GroupAdmin) error {
	return conn(ctx, r.db).Save(admin).Error
}
