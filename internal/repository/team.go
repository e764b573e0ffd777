package repository

import (
	"context"

	"quemjoga-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return conn(ctx, r.db).Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := conn(ctx, r.db).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithMembers retrieves a team with its active roster
func (r *TeamRepository) GetWithMembers(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := conn(ctx, r.db).
		Preload("Members", activeRoster).
		Preload("Members.Member").
		First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// ListByGroup retrieves the active teams of a group with their active rosters
func (r *TeamRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := conn(ctx, r.db).
		Preload("Members", activeRoster).
		Preload("Members.Member").
		Where("group_id = ? AND is_active = ?", groupID, true).
		Order("name ASC").
		Find(&teams).Error
	return teams, err
}

// Update saves the team's own columns
func (r *TeamRepository) Update(ctx context.Context, team *models.Team) error {
	return conn(ctx, r.db).Omit("Members").Save(team).Error
}

func activeRoster(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true).Order("is_starter DESC, bench_order ASC NULLS LAST, since ASC")
}
