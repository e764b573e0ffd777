package service

import (
	"context"
	"fmt"

	"quemjoga-backend/internal/database/models"
	apperrors "quemjoga-backend/internal/errors"
	"quemjoga-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// StatsService keeps per-group scoring statistics
type StatsService struct {
	statRepo   repository.MemberStatRepositoryInterface
	memberRepo repository.MemberRepositoryInterface
	access     AccessControlInterface
	validator  *validator.Validate
}

// NewStatsService creates a new stats service
func NewStatsService(
	statRepo repository.MemberStatRepositoryInterface,
	memberRepo repository.MemberRepositoryInterface,
	access AccessControlInterface,
	validator *validator.Validate,
) *StatsService {
	return &StatsService{
		statRepo:   statRepo,
		memberRepo: memberRepo,
		access:     access,
		validator:  validator,
	}
}

// UpdateStatsRequest sets the totals of a member
type UpdateStatsRequest struct {
	Goals   *int `json:"goals,omitempty" validate:"omitempty,min=0"`
	Assists *int `json:"assists,omitempty" validate:"omitempty,min=0"`
}

// ScorerResponse is one leaderboard row
type ScorerResponse struct {
	MemberID uuid.UUID `json:"member_id"`
	Name     string    `json:"name"`
	Nickname string    `json:"nickname,omitempty"`
	PhotoURL string    `json:"photo_url,omitempty"`
	Goals    int       `json:"goals"`
	Assists  int       `json:"assists"`
}

// Leaderboard lists the active members ordered by goals, then assists, then name
func (s *StatsService) Leaderboard(ctx context.Context, userID, groupID uuid.UUID) ([]ScorerResponse, error) {
	if err := s.access.RequireMembership(ctx, userID, groupID); err != nil {
		return nil, err
	}

	members, err := s.memberRepo.ListActiveByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	if len(members) > 0 {
		ids := make([]uuid.UUID, len(members))
		for i, m := range members {
			ids[i] = m.ID
		}
		if err := s.statRepo.EnsureForMembers(ctx, groupID, ids); err != nil {
			return nil, fmt.Errorf("failed to initialize stats: %w", err)
		}
	}

	stats, err := s.statRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stats: %w", err)
	}
	responses := make([]ScorerResponse, 0, len(stats))
	for i := range stats {
		responses = append(responses, toScorerResponse(&stats[i], stats[i].Member))
	}
	return responses, nil
}

// Update overwrites the goal and assist totals of a member
func (s *StatsService) Update(ctx context.Context, userID, groupID, memberID uuid.UUID, req *UpdateStatsRequest) (*ScorerResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.access.RequireAdmin(ctx, userID, groupID); err != nil {
		return nil, err
	}

	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, translate(err, apperrors.ErrMemberNotFound, "get member")
	}
	if member.GroupID != groupID {
		return nil, apperrors.ErrMemberNotInGroup
	}

	stat, err := s.statRepo.GetOrCreate(ctx, groupID, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	if req.Goals != nil {
		stat.Goals = *req.Goals
	}
	if req.Assists != nil {
		stat.Assists = *req.Assists
	}
	if err := s.statRepo.Update(ctx, stat); err != nil {
		return nil, fmt.Errorf("failed to update stats: %w", err)
	}

	resp := toScorerResponse(stat, member)
	return &resp, nil
}

func toScorerResponse(stat *models.MemberStat, member *models.Member) ScorerResponse {
	resp := ScorerResponse{
		MemberID: stat.MemberID,
		Goals:    stat.Goals,
		Assists:  stat.Assists,
	}
	if member != nil {
		resp.Name = member.Name
		resp.Nickname = member.Nickname
		resp.PhotoURL = member.PhotoURL
	}
	return resp
}
