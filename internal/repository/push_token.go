package repository

import (
	"context"

	"quemjoga-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PushTokenRepository handles database operations for device push tokens
type PushTokenRepository struct {
	db *gorm.DB
}

// NewPushTokenRepository creates a new push token repository
func NewPushTokenRepository(db *gorm.DB) *PushTokenRepository {
	return &PushTokenRepository{db: db}
}

// Upsert registers a token for a user, refreshing the platform when it already exists
func (r *PushTokenRepository) Upsert(ctx context.Context, token *models.PushToken) error {
	return conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"platform", "updated_at"}),
	}).Create(token).Error
}

// ListByUserIDs retrieves all tokens registered by the given users
func (r *PushTokenRepository) ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]models.PushToken, error) {
	var tokens []models.PushToken
	if len(userIDs) == 0 {
		return tokens, nil
	}
	err := conn(ctx, r.db).Where("user_id IN ?", userIDs).Find(&tokens).Error
	return tokens, err
}
