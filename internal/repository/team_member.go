package repository

import (
	"context"
	"time"

	"quemjoga-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMemberRepository handles database operations for team memberships
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// Create creates a new team membership
func (r *TeamMemberRepository) Create(ctx context.Context, teamMember *models.TeamMember) error {
	return conn(ctx, r.db).Create(teamMember).Error
}

// GetActive retrieves the active membership of a member in a team
func (r *TeamMemberRepository) GetActive(ctx context.Context, teamID, memberID uuid.UUID) (*models.TeamMember, error) {
	var teamMember models.TeamMember
	err := conn(ctx, r.db).
		Where("team_id = ? AND member_id = ? AND is_active = ?", teamID, memberID, true).
		First(&teamMember).Error
	if err != nil {
		return nil, err
	}
	return &teamMember, nil
}

// DeactivateInGroup closes every active team membership of a member within a group
func (r *TeamMemberRepository) DeactivateInGroup(ctx context.Context, groupID, memberID uuid.UUID, until time.Time) error {
	return conn(ctx, r.db).Model(&models.TeamMember{}).
		Where("member_id = ? AND is_active = ?", memberID, true).
		Where("team_id IN (?)", r.db.Model(&models.Team{}).Select("id").Where("group_id = ?", groupID)).
		Updates(map[string]interface{}{"is_active": false, "until": until}).Error
}

// Update saves all membership fields
func (r *TeamMemberRepository) Update(ctx context.Context, teamMember *models.TeamMember) error {
	return conn(ctx, r.db).Omit("Member").Save(teamMember).Error
}
