package repository

import (
	"context"

	"quemjoga-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberFilter narrows member listings
type MemberFilter struct {
	Position   *models.Position
	ActiveOnly bool
}

// MemberRepository handles database operations for members
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create creates a new member
func (r *MemberRepository) Create(ctx context.Context, member *models.Member) error {
	return conn(ctx, r.db).Create(member).Error
}

// GetByID retrieves a member by ID
func (r *MemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	var member models.Member
	err := conn(ctx, r.db).First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByGroupAndUser retrieves the member record of a user in a group, active or not
func (r *MemberRepository) GetByGroupAndUser(ctx context.Context, groupID, userID uuid.UUID) (*models.Member, error) {
	var member models.Member
	err := conn(ctx, r.db).First(&member, "group_id = ? AND user_id = ?", groupID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListByGroup retrieves the members of a group ordered by name
func (r *MemberRepository) ListByGroup(ctx context.Context, groupID uuid.UUID, filter MemberFilter, limit, offset int) ([]models.Member, int64, error) {
	var members []models.Member
	var total int64

	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Where("group_id = ?", groupID)
		if filter.ActiveOnly {
			db = db.Where("is_active = ?", true)
		}
		if filter.Position != nil {
			db = db.Where("position = ?", *filter.Position)
		}
		return db
	}

	if err := conn(ctx, r.db).Model(&models.Member{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := conn(ctx, r.db).Scopes(scope).Order("name ASC").Limit(limit).Offset(offset).Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// ListActiveByGroup retrieves every active member of a group
func (r *MemberRepository) ListActiveByGroup(ctx context.Context, groupID uuid.UUID) ([]models.Member, error) {
	var members []models.Member
	err := conn(ctx, r.db).Where("group_id = ? AND is_active = ?", groupID, true).Order("name ASC").Find(&members).Error
	return members, err
}

// ListActiveByUser retrieves the active member records of a user across groups
func (r *MemberRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.Member, error) {
	var members []models.Member
	err := conn(ctx, r.db).Where("user_id = ? AND is_active = ?", userID, true).Find(&members).Error
	return members, err
}

// CountActive counts the active members of a group
func (r *MemberRepository) CountActive(ctx context.Context, groupID uuid.UUID) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.Member{}).
		Where("group_id = ? AND is_active = ?", groupID, true).
		Count(&count).Error
	return count, err
}

// CountActiveAdmins counts the active admin-flagged members of a group
func (r *MemberRepository) CountActiveAdmins(ctx context.Context, groupID uuid.UUID) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.Member{}).
		Where("group_id = ? AND is_active = ? AND is_admin = ?", groupID, true, true).
		Count(&count).Error
	return count, err
}

// CountActiveByGroups counts active members for each of the given groups
func (r *MemberRepository) CountActiveByGroups(ctx context.Context, groupIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(groupIDs))
	if len(groupIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		GroupID uuid.UUID
		Total   int64
	}
	err := conn(ctx, r.db).Model(&models.Member{}).
		Select("group_id, COUNT(*) AS total").
		Where("group_id IN ? AND is_active = ?", groupIDs, true).
		Group("group_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.GroupID] = row.Total
	}
	return counts, nil
}

// UpdatePhotoForUser copies a photo URL into all active members of a user
func (r *MemberRepository) UpdatePhotoForUser(ctx context.Context, userID uuid.UUID, photoURL string) error {
	return conn(ctx, r.db).Model(&models.Member{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Update("photo_url", photoURL).Error
}

// Update saves all member fields
func (r *MemberRepository) Update(ctx context.Context, member *models.Member) error {
	return conn(ctx, r.db).Save(member).Error
}
