package repository

import (
	"context"

	"quemjoga-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AthleteProfileRepository handles database operations for athlete profiles
type AthleteProfileRepository struct {
	db *gorm.DB
}

// NewAthleteProfileRepository creates a new athlete profile repository
func NewAthleteProfileRepository(db *gorm.DB) *AthleteProfileRepository {
	return &AthleteProfileRepository{db: db}
}

// Create creates a new profile
func (r *AthleteProfileRepository) Create(ctx context.Context, profile *models.AthleteProfile) error {
	return conn(ctx, r.db).Create(profile).Error
}

// GetByUserID retrieves the profile owned by a user
func (r *AthleteProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.AthleteProfile, error) {
	var profile models.AthleteProfile
	err := conn(ctx, r.db).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update saves all profile fields
func (r *AthleteProfileRepository) Update(ctx context.Context, profile *models.AthleteProfile) error {
	return conn(ctx, r.db).Save(profile).Error
}
