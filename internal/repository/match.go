package repository

import (
	"context"
	"time"

	"quemjoga-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchFilter narrows match listings
type MatchFilter struct {
	// From, when set, restricts results to matches scheduled at or after it
	From *time.Time
}

// MatchRepository handles database operations for matches
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// Create creates a new match
func (r *MatchRepository) Create(ctx context.Context, match *models.Match) error {
	return conn(ctx, r.db).Create(match).Error
}

// GetByID retrieves a match by ID
func (r *MatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := conn(ctx, r.db).First(&match, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// ListByGroup retrieves the non-canceled matches of a group in chronological order
func (r *MatchRepository) ListByGroup(ctx context.Context, groupID uuid.UUID, filter MatchFilter, limit, offset int) ([]models.Match, int64, error) {
	var matches []models.Match
	var total int64

	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Where("group_id = ? AND is_canceled = ?", groupID, false)
		if filter.From != nil {
			db = db.Where("scheduled_at >= ?", *filter.From)
		}
		return db
	}

	if err := conn(ctx, r.db).Model(&models.Match{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := conn(ctx, r.db).Scopes(scope).Order("scheduled_at ASC").Limit(limit).Offset(offset).Find(&matches).Error
	if err != nil {
		return nil, 0, err
	}

	return matches, total, nil
}

// GetLatestByGroup retrieves the non-canceled match of a group with the latest schedule
func (r *MatchRepository) GetLatestByGroup(ctx context.Context, groupID uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := conn(ctx, r.db).
		Where("group_id = ? AND is_canceled = ?", groupID, false).
		Order("scheduled_at DESC").
		First(&match).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// Update saves all match fields
func (r *MatchRepository) Update(ctx context.Context, match *models.Match) error {
	return conn(ctx, r.db).Save(match).Error
}
