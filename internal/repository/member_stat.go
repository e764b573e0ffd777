package repository

import (
	"context"

	"quemjoga-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MemberStatRepository handles database operations for scoring statistics
type MemberStatRepository struct {
	db *gorm.DB
}

// NewMemberStatRepository creates a new member stat repository
func NewMemberStatRepository(db *gorm.DB) *MemberStatRepository {
	return &MemberStatRepository{db: db}
}

// EnsureForMembers creates zeroed stats for members of a group that have none yet
func (r *MemberStatRepository) EnsureForMembers(ctx context.Context, groupID uuid.UUID, memberIDs []uuid.UUID) error {
	if len(memberIDs) == 0 {
		return nil
	}
	stats := make([]models.MemberStat, len(memberIDs))
	for i, memberID := range memberIDs {
		stats[i] = models.MemberStat{MemberID: memberID, GroupID: groupID}
	}
	return conn(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(&stats).Error
}

// GetOrCreate retrieves the stats of a member in a group, creating a zeroed row when missing
func (r *MemberStatRepository) GetOrCreate(ctx context.Context, groupID, memberID uuid.UUID) (*models.MemberStat, error) {
	stat := models.MemberStat{MemberID: memberID, GroupID: groupID}
	err := conn(ctx, r.db).
		Where("member_id = ? AND group_id = ?", memberID, groupID).
		FirstOrCreate(&stat).Error
	if err != nil {
		return nil, err
	}
	return &stat, nil
}

// ListByGroup retrieves the stats of a group's active members, best scorers first
func (r *MemberStatRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]models.MemberStat, error) {
	var stats []models.MemberStat
	err := conn(ctx, r.db).
		Preload("Member").
		Joins("JOIN members ON members.id = member_stats.member_id").
		Where("member_stats.group_id = ? AND members.is_active = ?", groupID, true).
		Order("member_stats.goals DESC, member_stats.assists DESC, members.name ASC").
		Find(&stats).Error
	return stats, err
}

// Update saves all stat fields
func (r *MemberStatRepository) Update(ctx context.Context, stat *models.MemberStat) error {
	return conn(ctx, r.db).Omit("Member").Save(stat).Error
}
