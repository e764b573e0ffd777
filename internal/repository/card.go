package repository

import (
	"context"

	"quemjoga-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CardRepository handles database operations for disciplinary cards
type CardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new card repository
func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

// Create creates a new card
func (r *CardRepository) Create(ctx context.Context, card *models.Card) error {
	return conn(ctx, r.db).Create(card).Error
}

// GetLatestByType retrieves the most recently issued card of a color for a member
func (r *CardRepository) GetLatestByType(ctx context.Context, memberID uuid.UUID, cardType models.CardType) (*models.Card, error) {
	var card models.Card
	err := conn(ctx, r.db).
		Where("member_id = ? AND type = ?", memberID, cardType).
		Order("created_at DESC").
		First(&card).Error
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// ListByMember retrieves a member's cards, newest first
func (r *CardRepository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]models.Card, error) {
	var cards []models.Card
	err := conn(ctx, r.db).Where("member_id = ?", memberID).Order("created_at DESC").Find(&cards).Error
	return cards, err
}

// CountByType counts a member's cards per color
func (r *CardRepository) CountByType(ctx context.Context, memberID uuid.UUID) (map[models.CardType]int64, error) {
	var rows []struct {
		Type  models.CardType
		Total int64
	}
	err := conn(ctx, r.db).Model(&models.Card{}).
		Select("type, COUNT(*) AS total").
		Where("member_id = ?", memberID).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := map[models.CardType]int64{models.CardTypeYellow: 0, models.CardTypeRed: 0}
	for _, row := range rows {
		counts[row.Type] = row.Total
	}
	return counts, nil
}

// Delete removes a card
func (r *CardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&models.Card{}, "id = ?", id).Error
}
