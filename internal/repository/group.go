package repository

import (
	"context"

	"quemjoga-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupRepository handles database operations for groups
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// Create creates a new group
func (r *GroupRepository) Create(ctx context.Context, group *models.Group) error {
	return conn(ctx, r.db).Create(group).Error
}

// GetByID retrieves a group by ID
func (r *GroupRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Group, error) {
	var group models.Group
	err := conn(ctx, r.db).First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// ListForUser retrieves the groups where the user is an active member or admin
func (r *GroupRepository) ListForUser(ctx context.Context, userID uuid.UUID, activeOnly bool, limit, offset int) ([]models.Group, int64, error) {
	var groups []models.Group
	var total int64

	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Where(
			"id IN (?) OR id IN (?)",
			r.db.Model(&models.Member{}).Select("group_id").Where("user_id = ? AND is_active = ?", userID, true),
			r.db.Model(&models.GroupAdmin{}).Select("group_id").Where("user_id = ? AND is_active = ?", userID, true),
		)
		if activeOnly {
			db = db.Where("is_active = ?", true)
		}
		return db
	}

	// Get total count
	if err := conn(ctx, r.db).Model(&models.Group{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := conn(ctx, r.db).Scopes(scope).Order("name ASC").Limit(limit).Offset(offset).Find(&groups).Error
	if err != nil {
		return nil, 0, err
	}

	return groups, total, nil
}

// Update saves all group fields
func (r *GroupRepository) Update(ctx context.Context, group *models.Group) error {
	return conn(ctx, r.db).Save(group).Error
}
