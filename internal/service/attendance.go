package service

import (
	"context"
	"fmt"
	"time"

	"quemjoga-backend/internal/database/models"
	apperrors "quemjoga-backend/internal/errors"
	"quemjoga-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AttendanceService handles RSVPs for matches
type AttendanceService struct {
	matchRepo      repository.MatchRepositoryInterface
	memberRepo     repository.MemberRepositoryInterface
	attendanceRepo repository.AttendanceRepositoryInterface
	access         AccessControlInterface
	validator      *validator.Validate
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(
	matchRepo repository.MatchRepositoryInterface,
	memberRepo repository.MemberRepositoryInterface,
	attendanceRepo repository.AttendanceRepositoryInterface,
	access AccessControlInterface,
	validator *validator.Validate,
) *AttendanceService {
	return &AttendanceService{
		matchRepo:      matchRepo,
		memberRepo:     memberRepo,
		attendanceRepo: attendanceRepo,
		access:         access,
		validator:      validator,
	}
}

// SubmitAttendanceRequest represents an RSVP for a (match, member) pair
type SubmitAttendanceRequest struct {
	MatchID  uuid.UUID               `json:"match_id" validate:"required"`
	MemberID uuid.UUID               `json:"member_id" validate:"required"`
	Status   models.AttendanceStatus `json:"status" validate:"required,oneof=pending confirmed declined maybe"`
}

// UpdateAttendanceRequest represents a status change of an attendance record
type UpdateAttendanceRequest struct {
	Status models.AttendanceStatus `json:"status" validate:"required,oneof=pending confirmed declined maybe"`
}

// AttendanceResponse represents the response for attendance operations
type AttendanceResponse struct {
	ID             uuid.UUID               `json:"id"`
	MatchID        uuid.UUID               `json:"match_id"`
	MemberID       uuid.UUID               `json:"member_id"`
	Status         models.AttendanceStatus `json:"status"`
	MemberName     string                  `json:"member_name"`
	MemberPosition models.Position         `json:"member_position"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

// Submit records an RSVP. Submitting again for the same pair overwrites the status.
func (s *AttendanceService) Submit(ctx context.Context, userID uuid.UUID, req *SubmitAttendanceRequest) (*AttendanceResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	match, err := s.matchRepo.GetByID(ctx, req.MatchID)
	if err != nil {
		return nil, translate(err, apperrors.ErrMatchNotFound, "get match")
	}
	member, err := s.memberRepo.GetByID(ctx, req.MemberID)
	if err != nil {
		return nil, translate(err, apperrors.ErrMemberNotFound, "get member")
	}
	if member.GroupID != match.GroupID {
		return nil, apperrors.ErrMemberNotInGroup
	}
	if err := s.access.RequireMembership(ctx, userID, match.GroupID); err != nil {
		return nil, err
	}
	if match.IsCanceled {
		return nil, apperrors.ErrMatchCanceled
	}

	attendance, err := s.attendanceRepo.Upsert(ctx, &models.Attendance{
		MatchID:  match.ID,
		MemberID: member.ID,
		Status:   req.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save attendance: %w", err)
	}
	return toAttendanceResponse(attendance, member), nil
}

// Update changes the status of an attendance record
func (s *AttendanceService) Update(ctx context.Context, userID, attendanceID uuid.UUID, req *UpdateAttendanceRequest) (*AttendanceResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	attendance, err := s.attendanceRepo.GetByID(ctx, attendanceID)
	if err != nil {
		return nil, translate(err, apperrors.ErrAttendanceNotFound, "get attendance")
	}
	return s.apply(ctx, userID, attendance, req.Status)
}

// SetStatus changes the status of the attendance of a member for a match
func (s *AttendanceService) SetStatus(ctx context.Context, userID, matchID, memberID uuid.UUID, status models.AttendanceStatus) (*AttendanceResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown attendance status")
	}

	attendance, err := s.attendanceRepo.GetByMatchAndMember(ctx, matchID, memberID)
	if err != nil {
		return nil, translate(err, apperrors.ErrAttendanceNotFound, "get attendance")
	}
	return s.apply(ctx, userID, attendance, status)
}

func (s *AttendanceService) apply(ctx context.Context, userID uuid.UUID, attendance *models.Attendance, status models.AttendanceStatus) (*AttendanceResponse, error) {
	member, err := s.memberRepo.GetByID(ctx, attendance.MemberID)
	if err != nil {
		return nil, translate(err, apperrors.ErrMemberNotFound, "get member")
	}
	if err := s.access.RequireMembership(ctx, userID, member.GroupID); err != nil {
		return nil, err
	}

	attendance.Status = status
	if err := s.attendanceRepo.Update(ctx, attendance); err != nil {
		return nil, fmt.Errorf("failed to update attendance: %w", err)
	}
	return toAttendanceResponse(attendance, member), nil
}

func toAttendanceResponse(attendance *models.Attendance, member *models.Member) *AttendanceResponse {
	resp := &AttendanceResponse{
		ID:        attendance.ID,
		MatchID:   attendance.MatchID,
		MemberID:  attendance.MemberID,
		Status:    attendance.Status,
		UpdatedAt: attendance.UpdatedAt,
	}
	if member != nil {
		resp.MemberName = member.Name
		resp.MemberPosition = member.Position
	}
	return resp
}
