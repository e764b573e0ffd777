package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quemjoga-backend/internal/database/models"
	apperrors "quemjoga-backend/internal/errors"
	"quemjoga-backend/internal/logger"
	"quemjoga-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CardService handles disciplinary cards and the fines they generate
type CardService struct {
	tx          repository.TransactorInterface
	cardRepo    repository.CardRepositoryInterface
	memberRepo  repository.MemberRepositoryInterface
	matchRepo   repository.MatchRepositoryInterface
	groupRepo   repository.GroupRepositoryInterface
	paymentRepo repository.PaymentRepositoryInterface
	access      AccessControlInterface
	validator   *validator.Validate
}

// NewCardService creates a new card service
func NewCardService(
	tx repository.TransactorInterface,
	cardRepo repository.CardRepositoryInterface,
	memberRepo repository.MemberRepositoryInterface,
	matchRepo repository.MatchRepositoryInterface,
	groupRepo repository.GroupRepositoryInterface,
	paymentRepo repository.PaymentRepositoryInterface,
	access AccessControlInterface,
	validator *validator.Validate,
) *CardService {
	return &CardService{
		tx:          tx,
		cardRepo:    cardRepo,
		memberRepo:  memberRepo,
		matchRepo:   matchRepo,
		groupRepo:   groupRepo,
		paymentRepo: paymentRepo,
		access:      access,
		validator:   validator,
	}
}

// IssueCardRequest represents the request to card a member.
// Without a match id the card goes to the latest scheduled match of the group.
type IssueCardRequest struct {
	MemberID uuid.UUID       `json:"member_id" validate:"required"`
	MatchID  *uuid.UUID      `json:"match_id,omitempty"`
	Type     models.CardType `json:"type" validate:"required,oneof=yellow red"`
	Reason   string          `json:"reason" validate:"max=500"`
}

// CardResponse represents the response for card operations
type CardResponse struct {
	ID               uuid.UUID       `json:"id"`
	MemberID         uuid.UUID       `json:"member_id"`
	MatchID          uuid.UUID       `json:"match_id"`
	Type             models.CardType `json:"type"`
	Reason           string          `json:"reason"`
	FineGenerated    bool            `json:"fine_generated"`
	FinePaymentID    *uuid.UUID      `json:"fine_payment_id,omitempty"`
	SuspensionServed bool            `json:"suspension_served"`
	SuspensionPaid   bool            `json:"suspension_paid"`
	CreatedAt        time.Time       `json:"created_at"`
}

// CardRemovalResponse reports what a card removal deleted
type CardRemovalResponse struct {
	CardID        uuid.UUID  `json:"card_id"`
	FinePaymentID *uuid.UUID `json:"fine_payment_id,omitempty"`
}

// Issue cards a member and, when the group charges for that color, opens a pending fine
func (s *CardService) Issue(ctx context.Context, userID uuid.UUID, req *IssueCardRequest) (*CardResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	member, err := s.memberRepo.GetByID(ctx, req.MemberID)
	if err != nil {
		return nil, translate(err, apperrors.ErrMemberNotFound, "get member")
	}
	if err := s.access.RequireAdmin(ctx, userID, member.GroupID); err != nil {
		return nil, err
	}

	var card *models.Card
	var fine *models.Payment
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		match, err := s.resolveMatch(ctx, member.GroupID, req.MatchID)
		if err != nil {
			return err
		}
		group, err := s.groupRepo.GetByID(ctx, member.GroupID)
		if err != nil {
			return translate(err, apperrors.ErrGroupNotFound, "get group")
		}

		amount := group.FineFor(req.Type)
		card = &models.Card{
			MemberID:      member.ID,
			MatchID:       match.ID,
			Type:          req.Type,
			Reason:        req.Reason,
			FineGenerated: amount > 0,
		}
		if err := s.cardRepo.Create(ctx, card); err != nil {
			return fmt.Errorf("failed to create card: %w", err)
		}

		if amount > 0 {
			fine = &models.Payment{
				MemberID:    member.ID,
				Type:        req.Type.FineType(),
				Amount:      amount,
				Description: fineDescription(req.Type, match.ScheduledAt),
				Status:      models.PaymentStatusPending,
			}
			if err := s.paymentRepo.Create(ctx, fine); err != nil {
				return fmt.Errorf("failed to create fine: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"card_id":   card.ID,
		"member_id": member.ID,
		"type":      card.Type,
	}).Info("Card issued")

	resp := toCardResponse(card)
	if fine != nil {
		resp.FinePaymentID = &fine.ID
	}
	return resp, nil
}

// RemoveLatest deletes the most recent card of a color and the most recent pending fine of that color.
// A fine that was already paid or submitted is left alone.
func (s *CardService) RemoveLatest(ctx context.Context, userID, memberID uuid.UUID, cardType models.CardType) (*CardRemovalResponse, error) {
	if !cardType.IsValid() {
		return nil, apperrors.NewValidationError("type", "unknown card type")
	}

	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, translate(err, apperrors.ErrMemberNotFound, "get member")
	}
	if err := s.access.RequireAdmin(ctx, userID, member.GroupID); err != nil {
		return nil, err
	}

	resp := &CardRemovalResponse{}
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		card, err := s.cardRepo.GetLatestByType(ctx, member.ID, cardType)
		if err != nil {
			return translate(err, apperrors.ErrCardNotFound, "get card")
		}
		if err := s.cardRepo.Delete(ctx, card.ID); err != nil {
			return fmt.Errorf("failed to delete card: %w", err)
		}
		resp.CardID = card.ID

		fine, err := s.paymentRepo.GetLatestPendingByType(ctx, member.ID, cardType.FineType())
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to find pending fine: %w", err)
		}
		if err := s.paymentRepo.Delete(ctx, fine.ID); err != nil {
			return fmt.Errorf("failed to delete fine: %w", err)
		}
		resp.FinePaymentID = &fine.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListByMember lists the cards of a member, newest first
func (s *CardService) ListByMember(ctx context.Context, userID, memberID uuid.UUID) ([]CardResponse, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, translate(err, apperrors.ErrMemberNotFound, "get member")
	}
	if err := s.access.RequireMembership(ctx, userID, member.GroupID); err != nil {
		return nil, err
	}

	cards, err := s.cardRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	responses := make([]CardResponse, len(cards))
	for i := range cards {
		responses[i] = *toCardResponse(&cards[i])
	}
	return responses, nil
}

func (s *CardService) resolveMatch(ctx context.Context, groupID uuid.UUID, matchID *uuid.UUID) (*models.Match, error) {
	if matchID == nil {
		match, err := s.matchRepo.GetLatestByGroup(ctx, groupID)
		if err != nil {
			return nil, translate(err, apperrors.ErrNoMatchForCard, "get latest match")
		}
		return match, nil
	}

	match, err := s.matchRepo.GetByID(ctx, *matchID)
	if err != nil {
		return nil, translate(err, apperrors.ErrMatchNotFound, "get match")
	}
	if match.GroupID != groupID {
		return nil, apperrors.ErrMatchNotInGroup
	}
	return match, nil
}

func fineDescription(cardType models.CardType, playedAt time.Time) string {
	color := "amarelo"
	if cardType == models.CardTypeRed {
		color = "vermelho"
	}
	return fmt.Sprintf("Multa cartão %s - jogo %s", color, playedAt.Format("02/01/2006"))
}

func toCardResponse(card *models.Card) *CardResponse {
	return &CardResponse{
		ID:               card.ID,
		MemberID:         card.MemberID,
		MatchID:          card.MatchID,
		Type:             card.Type,
		Reason:           card.Reason,
		FineGenerated:    card.FineGenerated,
		SuspensionServed: card.SuspensionServed,
		SuspensionPaid:   card.SuspensionPaid,
		CreatedAt:        card.CreatedAt,
	}
}
