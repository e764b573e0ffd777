package service

import (
	"context"
	"fmt"
	"time"

	"quemjoga-backend/internal/database/models"
	apperrors "quemjoga-backend/internal/errors"
	"quemjoga-backend/internal/logger"
	"quemjoga-backend/internal/notify"
	"quemjoga-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MatchService handles business logic for matches
type MatchService struct {
	tx             repository.TransactorInterface
	matchRepo      repository.MatchRepositoryInterface
	groupRepo      repository.GroupRepositoryInterface
	memberRepo     repository.MemberRepositoryInterface
	attendanceRepo repository.AttendanceRepositoryInterface
	pushTokenRepo  repository.PushTokenRepositoryInterface
	notifier       NotifierInterface
	access         AccessControlInterface
	validator      *validator.Validate
}

// NewMatchService creates a new match service
func NewMatchService(
	tx repository.TransactorInterface,
	matchRepo repository.MatchRepositoryInterface,
	groupRepo repository.GroupRepositoryInterface,
	memberRepo repository.MemberRepositoryInterface,
	attendanceRepo repository.AttendanceRepositoryInterface,
	pushTokenRepo repository.PushTokenRepositoryInterface,
	notifier NotifierInterface,
	access AccessControlInterface,
	validator *validator.Validate,
) *MatchService {
	return &MatchService{
		tx:             tx,
		matchRepo:      matchRepo,
		groupRepo:      groupRepo,
		memberRepo:     memberRepo,
		attendanceRepo: attendanceRepo,
		pushTokenRepo:  pushTokenRepo,
		notifier:       notifier,
		access:         access,
		validator:      validator,
	}
}

// CreateMatchRequest represents the request to schedule a match
type CreateMatchRequest struct {
	GroupID     uuid.UUID `json:"group_id" validate:"required"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	Venue       string    `json:"venue" validate:"max=200"`
	Address     string    `json:"address" validate:"max=300"`
	FieldCost   *int64    `json:"field_cost,omitempty" validate:"omitempty,min=0"`
	Notes       string    `json:"notes"`
}

// UpdateMatchRequest represents the request to update a match
type UpdateMatchRequest struct {
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	Venue       *string    `json:"venue,omitempty" validate:"omitempty,max=200"`
	Address     *string    `json:"address,omitempty" validate:"omitempty,max=300"`
	FieldCost   *int64     `json:"field_cost,omitempty" validate:"omitempty,min=0"`
	Notes       *string    `json:"notes,omitempty"`
	IsFinished  *bool      `json:"is_finished,omitempty"`
}

// MatchResponse represents the response for match operations
type MatchResponse struct {
	ID             uuid.UUID `json:"id"`
	GroupID        uuid.UUID `json:"group_id"`
	ScheduledAt    time.Time `json:"scheduled_at"`
	Venue          string    `json:"venue"`
	Address        string    `json:"address"`
	FieldCost      int64     `json:"field_cost"`
	Notes          string    `json:"notes"`
	IsFinished     bool      `json:"is_finished"`
	IsCanceled     bool      `json:"is_canceled"`
	TotalConfirmed int64     `json:"total_confirmed"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MatchListResponse represents a paginated list of matches
type MatchListResponse struct {
	Matches  []MatchResponse `json:"matches"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// RosterEntry is one member in a match roster bucket
type RosterEntry struct {
	MemberID uuid.UUID               `json:"member_id"`
	Name     string                  `json:"name"`
	Nickname string                  `json:"nickname"`
	Position models.Position         `json:"position"`
	Status   models.AttendanceStatus `json:"status"`
}

// MatchRosterResponse partitions the attendance of a match by status
type MatchRosterResponse struct {
	MatchID        uuid.UUID     `json:"match_id"`
	ScheduledAt    time.Time     `json:"scheduled_at"`
	Venue          string        `json:"venue"`
	Confirmed      []RosterEntry `json:"confirmed"`
	Pending        []RosterEntry `json:"pending"`
	Declined       []RosterEntry `json:"declined"`
	TotalConfirmed int           `json:"total_confirmed"`
	TotalPending   int           `json:"total_pending"`
	TotalDeclined  int           `json:"total_declined"`
}

// Create schedules a match and opens a pending attendance for every active member
func (s *MatchService) Create(ctx context.Context, userID uuid.UUID, req *CreateMatchRequest) (*MatchResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.access.RequireMembership(ctx, userID, req.GroupID); err != nil {
		return nil, err
	}

	match := &models.Match{
		GroupID:     req.GroupID,
		ScheduledAt: req.ScheduledAt,
		Venue:       req.Venue,
		Address:     req.Address,
		Notes:       req.Notes,
	}
	if req.FieldCost != nil {
		match.FieldCost = *req.FieldCost
	}

	var members []models.Member
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.groupRepo.GetByID(ctx, req.GroupID); err != nil {
			return translate(err, apperrors.ErrGroupNotFound, "get group")
		}
		if err := s.matchRepo.Create(ctx, match); err != nil {
			return fmt.Errorf("failed to create match: %w", err)
		}

		var err error
		members, err = s.memberRepo.ListActiveByGroup(ctx, req.GroupID)
		if err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}
		attendances := make([]models.Attendance, len(members))
		for i, member := range members {
			attendances[i] = models.Attendance{
				MatchID:  match.ID,
				MemberID: member.ID,
				Status:   models.AttendanceStatusPending,
			}
		}
		if err := s.attendanceRepo.CreateBatch(ctx, attendances); err != nil {
			return fmt.Errorf("failed to create attendance: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"match_id": match.ID,
		"members":  len(members),
	}).Info("Match scheduled")

	notifyUsers(ctx, s.pushTokenRepo, s.notifier, linkedUserIDs(members), notify.Notification{
		Title: "Novo jogo marcado",
		Body:  fmt.Sprintf("%s - %s", match.ScheduledAt.Format("02/01 15:04"), match.Venue),
		Data: map[string]string{
			"type":     "match_created",
			"match_id": match.ID.String(),
			"group_id": match.GroupID.String(),
		},
	})

	return toMatchResponse(match, 0), nil
}

// List lists the non-canceled matches of a group in schedule order
func (s *MatchService) List(ctx context.Context, userID, groupID uuid.UUID, upcomingOnly bool, page, pageSize int) (*MatchListResponse, error) {
	if err := s.access.RequireMembership(ctx, userID, groupID); err != nil {
		return nil, err
	}
	page, pageSize, limit, offset := pagination(page, pageSize)

	filter := repository.MatchFilter{}
	if upcomingOnly {
		filter.From = timePtr(time.Now())
	}
	matches, total, err := s.matchRepo.ListByGroup(ctx, groupID, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	ids := make([]uuid.UUID, len(matches))
	for i := range matches {
		ids[i] = matches[i].ID
	}
	confirmed, err := s.attendanceRepo.CountConfirmedByMatches(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count confirmations: %w", err)
	}

	responses := make([]MatchResponse, len(matches))
	for i := range matches {
		responses[i] = *toMatchResponse(&matches[i], confirmed[matches[i].ID])
	}
	return &MatchListResponse{
		Matches:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Get retrieves a match by ID
func (s *MatchService) Get(ctx context.Context, userID, matchID uuid.UUID) (*MatchResponse, error) {
	match, err := s.loadForMember(ctx, userID, matchID)
	if err != nil {
		return nil, err
	}
	return s.withConfirmedCount(ctx, match)
}

// Update updates the details of a match
func (s *MatchService) Update(ctx context.Context, userID, matchID uuid.UUID, req *UpdateMatchRequest) (*MatchResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	match, err := s.loadForMember(ctx, userID, matchID)
	if err != nil {
		return nil, err
	}

	if req.ScheduledAt != nil {
		match.ScheduledAt = *req.ScheduledAt
	}
	if req.Venue != nil {
		match.Venue = *req.Venue
	}
	if req.Address != nil {
		match.Address = *req.Address
	}
	if req.FieldCost != nil {
		match.FieldCost = *req.FieldCost
	}
	if req.Notes != nil {
		match.Notes = *req.Notes
	}
	if req.IsFinished != nil {
		match.IsFinished = *req.IsFinished
	}

	if err := s.matchRepo.Update(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}
	return s.withConfirmedCount(ctx, match)
}

// Cancel marks a match as canceled
func (s *MatchService) Cancel(ctx context.Context, userID, matchID uuid.UUID) error {
	match, err := s.loadForMember(ctx, userID, matchID)
	if err != nil {
		return err
	}
	match.IsCanceled = true
	if err := s.matchRepo.Update(ctx, match); err != nil {
		return fmt.Errorf("failed to cancel match: %w", err)
	}
	return nil
}

// Roster splits the attendance of a match into confirmed, pending and declined.
// A maybe answer is still pending.
func (s *MatchService) Roster(ctx context.Context, userID, matchID uuid.UUID) (*MatchRosterResponse, error) {
	match, err := s.loadForMember(ctx, userID, matchID)
	if err != nil {
		return nil, err
	}

	attendances, err := s.attendanceRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	roster := &MatchRosterResponse{
		MatchID:     match.ID,
		ScheduledAt: match.ScheduledAt,
		Venue:       match.Venue,
		Confirmed:   []RosterEntry{},
		Pending:     []RosterEntry{},
		Declined:    []RosterEntry{},
	}
	for _, attendance := range attendances {
		entry := RosterEntry{
			MemberID: attendance.MemberID,
			Status:   attendance.Status,
		}
		if attendance.Member != nil {
			entry.Name = attendance.Member.Name
			entry.Nickname = attendance.Member.Nickname
			entry.Position = attendance.Member.Position
		}

		switch attendance.Status {
		case models.AttendanceStatusConfirmed:
			roster.Confirmed = append(roster.Confirmed, entry)
		case models.AttendanceStatusDeclined:
			roster.Declined = append(roster.Declined, entry)
		default:
			roster.Pending = append(roster.Pending, entry)
		}
	}
	roster.TotalConfirmed = len(roster.Confirmed)
	roster.TotalPending = len(roster.Pending)
	roster.TotalDeclined = len(roster.Declined)

	return roster, nil
}

func (s *MatchService) loadForMember(ctx context.Context, userID, matchID uuid.UUID) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, translate(err, apperrors.ErrMatchNotFound, "get match")
	}
	if err := s.access.RequireMembership(ctx, userID, match.GroupID); err != nil {
		return nil, err
	}
	return match, nil
}

func (s *MatchService) withConfirmedCount(ctx context.Context, match *models.Match) (*MatchResponse, error) {
	counts, err := s.attendanceRepo.CountConfirmedByMatches(ctx, []uuid.UUID{match.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to count confirmations: %w", err)
	}
	return toMatchResponse(match, counts[match.ID]), nil
}

// linkedUserIDs returns the user ids of members that have an account
func linkedUserIDs(members []models.Member) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(members))
	for _, member := range members {
		if member.UserID != nil {
			ids = append(ids, *member.UserID)
		}
	}
	return ids
}

func toMatchResponse(match *models.Match, confirmed int64) *MatchResponse {
	return &MatchResponse{
		ID:             match.ID,
		GroupID:        match.GroupID,
		ScheduledAt:    match.ScheduledAt,
		Venue:          match.Venue,
		Address:        match.Address,
		FieldCost:      match.FieldCost,
		Notes:          match.Notes,
		IsFinished:     match.IsFinished,
		IsCanceled:     match.IsCanceled,
		TotalConfirmed: confirmed,
		CreatedAt:      match.CreatedAt,
		UpdatedAt:      match.UpdatedAt,
	}
}
