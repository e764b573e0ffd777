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
	"quemjoga-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberService handles business logic for group members
type MemberService struct {
	tx             repository.TransactorInterface
	memberRepo     repository.MemberRepositoryInterface
	groupRepo      repository.GroupRepositoryInterface
	attendanceRepo repository.AttendanceRepositoryInterface
	paymentRepo    repository.PaymentRepositoryInterface
	cardRepo       repository.CardRepositoryInterface
	teamMemberRepo repository.TeamMemberRepositoryInterface
	photos         PhotoStorageInterface
	access         AccessControlInterface
	validator      *validator.Validate
}

// NewMemberService creates a new member service
func NewMemberService(
	tx repository.TransactorInterface,
	memberRepo repository.MemberRepositoryInterface,
	groupRepo repository.GroupRepositoryInterface,
	attendanceRepo repository.AttendanceRepositoryInterface,
	paymentRepo repository.PaymentRepositoryInterface,
	cardRepo repository.CardRepositoryInterface,
	teamMemberRepo repository.TeamMemberRepositoryInterface,
	photos PhotoStorageInterface,
	access AccessControlInterface,
	validator *validator.Validate,
) *MemberService {
	return &MemberService{
		tx:             tx,
		memberRepo:     memberRepo,
		groupRepo:      groupRepo,
		attendanceRepo: attendanceRepo,
		paymentRepo:    paymentRepo,
		cardRepo:       cardRepo,
		teamMemberRepo: teamMemberRepo,
		photos:         photos,
		access:         access,
		validator:      validator,
	}
}

// CreateMemberRequest represents the request to add a member to a group
type CreateMemberRequest struct {
	GroupID      uuid.UUID       `json:"group_id" validate:"required"`
	UserID       *uuid.UUID      `json:"user_id,omitempty"`
	Name         string          `json:"name" validate:"required,min=1,max=120"`
	Nickname     string          `json:"nickname" validate:"max=60"`
	Phone        string          `json:"phone" validate:"max=30"`
	Position     models.Position `json:"position" validate:"omitempty,oneof=goalkeeper defender fullback defensive_mid midfielder forward winger"`
	JerseyNumber *int            `json:"jersey_number,omitempty" validate:"omitempty,min=1,max=99"`
	IsAdmin      bool            `json:"is_admin"`
}

// UpdateMemberRequest represents the request to update a member
type UpdateMemberRequest struct {
	Name         *string          `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Nickname     *string          `json:"nickname,omitempty" validate:"omitempty,max=60"`
	Phone        *string          `json:"phone,omitempty" validate:"omitempty,max=30"`
	Position     *models.Position `json:"position,omitempty" validate:"omitempty,oneof=goalkeeper defender fullback defensive_mid midfielder forward winger"`
	JerseyNumber *int             `json:"jersey_number,omitempty" validate:"omitempty,min=1,max=99"`
	IsAdmin      *bool            `json:"is_admin,omitempty"`
	IsActive     *bool            `json:"is_active,omitempty"`
}

// MemberListFilter narrows member listings
type MemberListFilter struct {
	Position   *models.Position
	ActiveOnly bool
}

// MemberResponse represents the response for member operations
type MemberResponse struct {
	ID           uuid.UUID       `json:"id"`
	GroupID      uuid.UUID       `json:"group_id"`
	UserID       *uuid.UUID      `json:"user_id,omitempty"`
	Name         string          `json:"name"`
	Nickname     string          `json:"nickname"`
	Phone        string          `json:"phone"`
	PhotoURL     string          `json:"photo_url"`
	Position     models.Position `json:"position"`
	JerseyNumber *int            `json:"jersey_number,omitempty"`
	IsAdmin      bool            `json:"is_admin"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// MemberListResponse represents a paginated list of members
type MemberListResponse struct {
	Members  []MemberResponse `json:"members"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// MemberHistoryResponse summarizes attendance, payments and cards of a member
type MemberHistoryResponse struct {
	MemberID   uuid.UUID         `json:"member_id"`
	Attendance AttendanceSummary `json:"attendance"`
	Finance    FinanceSummary    `json:"finance"`
	Cards      CardSummary       `json:"cards"`
}

// AttendanceSummary counts the matches a member was called to and confirmed
type AttendanceSummary struct {
	TotalMatches   int64  `json:"total_matches"`
	Confirmed      int64  `json:"confirmed"`
	AttendanceRate string `json:"attendance_rate"`
}

// FinanceSummary totals the payments of a member
type FinanceSummary struct {
	Paid                 int64  `json:"paid"`
	Outstanding          int64  `json:"outstanding"`
	PaidFormatted        string `json:"paid_formatted"`
	OutstandingFormatted string `json:"outstanding_formatted"`
}

// CardSummary counts the cards of a member by color
type CardSummary struct {
	Yellow int64 `json:"yellow"`
	Red    int64 `json:"red"`
}

// Create adds a member to a group, enforcing the roster and admin limits
func (s *MemberService) Create(ctx context.Context, userID uuid.UUID, req *CreateMemberRequest) (*MemberResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.access.RequireAdmin(ctx, userID, req.GroupID); err != nil {
		return nil, err
	}

	position := req.Position
	if position == "" {
		position = models.PositionMidfielder
	}
	member := &models.Member{
		GroupID:      req.GroupID,
		UserID:       req.UserID,
		Name:         req.Name,
		Nickname:     req.Nickname,
		Phone:        req.Phone,
		Position:     position,
		JerseyNumber: req.JerseyNumber,
		IsAdmin:      req.IsAdmin,
		IsActive:     true,
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		group, err := s.groupRepo.GetByID(ctx, req.GroupID)
		if err != nil {
			return translate(err, apperrors.ErrGroupNotFound, "get group")
		}
		if err := ensureRosterCapacity(ctx, s.memberRepo, group); err != nil {
			return err
		}
		if member.IsAdmin {
			if err := ensureAdminCapacity(ctx, s.memberRepo, group.ID); err != nil {
				return err
			}
		}

		if req.UserID != nil {
			_, err := s.memberRepo.GetByGroupAndUser(ctx, req.GroupID, *req.UserID)
			if err == nil {
				return apperrors.NewAlreadyExistsError("member", "for this user in the group")
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to check existing member: %w", err)
			}
		}

		if err := s.memberRepo.Create(ctx, member); err != nil {
			return fmt.Errorf("failed to create member: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toMemberResponse(member), nil
}

// List lists the members of a group ordered by name
func (s *MemberService) List(ctx context.Context, userID, groupID uuid.UUID, filter MemberListFilter, page, pageSize int) (*MemberListResponse, error) {
	if err := s.access.RequireMembership(ctx, userID, groupID); err != nil {
		return nil, err
	}
	page, pageSize, limit, offset := pagination(page, pageSize)

	members, total, err := s.memberRepo.ListByGroup(ctx, groupID, repository.MemberFilter{
		Position:   filter.Position,
		ActiveOnly: filter.ActiveOnly,
	}, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	responses := make([]MemberResponse, len(members))
	for i := range members {
		responses[i] = *toMemberResponse(&members[i])
	}
	return &MemberListResponse{
		Members:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Get retrieves a member by ID
func (s *MemberService) Get(ctx context.Context, userID, memberID uuid.UUID) (*MemberResponse, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, translate(err, apperrors.ErrMemberNotFound, "get member")
	}
	if err := s.access.RequireMembership(ctx, userID, member.GroupID); err != nil {
		return nil, err
	}
	return toMemberResponse(member), nil
}

// Update updates a member. Promotions and reactivations count against the group limits.
func (s *MemberService) Update(ctx context.Context, userID, memberID uuid.UUID, req *UpdateMemberRequest) (*MemberResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, translate(err, apperrors.ErrMemberNotFound, "get member")
	}
	if err := s.access.RequireAdmin(ctx, userID, member.GroupID); err != nil {
		return nil, err
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		willBeAdmin := member.IsAdmin
		if req.IsAdmin != nil {
			willBeAdmin = *req.IsAdmin
		}
		willBeActive := member.IsActive
		if req.IsActive != nil {
			willBeActive = *req.IsActive
		}
		reactivating := willBeActive && !member.IsActive
		deactivating := !willBeActive && member.IsActive
		// Only active admin-flagged members hold a slot
		promoting := willBeActive && willBeAdmin && !member.IsAdmin

		if reactivating {
			group, err := s.groupRepo.GetByID(ctx, member.GroupID)
			if err != nil {
				return translate(err, apperrors.ErrGroupNotFound, "get group")
			}
			if err := ensureRosterCapacity(ctx, s.memberRepo, group); err != nil {
				return err
			}
		}
		// An inactive member is not counted, so bringing back an admin also takes a slot
		if promoting || (reactivating && willBeAdmin) {
			if err := ensureAdminCapacity(ctx, s.memberRepo, member.GroupID); err != nil {
				return err
			}
		}

		if req.Name != nil {
			member.Name = *req.Name
		}
		if req.Nickname != nil {
			member.Nickname = *req.Nickname
		}
		if req.Phone != nil {
			member.Phone = *req.Phone
		}
		if req.Position != nil {
			member.Position = *req.Position
		}
		if req.JerseyNumber != nil {
			member.JerseyNumber = req.JerseyNumber
		}
		member.IsAdmin = willBeAdmin
		member.IsActive = willBeActive

		if err := s.memberRepo.Update(ctx, member); err != nil {
			return fmt.Errorf("failed to update member: %w", err)
		}
		if deactivating {
			if err := s.teamMemberRepo.DeactivateInGroup(ctx, member.GroupID, member.ID, time.Now()); err != nil {
				return fmt.Errorf("failed to close team membership: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toMemberResponse(member), nil
}

// Deactivate soft-deletes a member and closes any active team membership
func (s *MemberService) Deactivate(ctx context.Context, userID, memberID uuid.UUID) error {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return translate(err, apperrors.ErrMemberNotFound, "get member")
	}
	if err := s.access.RequireAdmin(ctx, userID, member.GroupID); err != nil {
		return err
	}

	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		member.IsActive = false
		if err := s.memberRepo.Update(ctx, member); err != nil {
			return fmt.Errorf("failed to deactivate member: %w", err)
		}
		if err := s.teamMemberRepo.DeactivateInGroup(ctx, member.GroupID, member.ID, time.Now()); err != nil {
			return fmt.Errorf("failed to close team membership: %w", err)
		}
		return nil
	})
}

// History summarizes attendance, payments and cards of a member
func (s *MemberService) History(ctx context.Context, userID, memberID uuid.UUID) (*MemberHistoryResponse, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, translate(err, apperrors.ErrMemberNotFound, "get member")
	}
	if err := s.access.RequireMembership(ctx, userID, member.GroupID); err != nil {
		return nil, err
	}

	total, confirmed, err := s.attendanceRepo.CountByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance: %w", err)
	}
	paid, err := s.paymentRepo.SumByMember(ctx, memberID, []models.PaymentStatus{models.PaymentStatusApproved})
	if err != nil {
		return nil, fmt.Errorf("failed to sum paid amounts: %w", err)
	}
	outstanding, err := s.paymentRepo.SumByMember(ctx, memberID, []models.PaymentStatus{
		models.PaymentStatusPending,
		models.PaymentStatusAwaitingApproval,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sum outstanding amounts: %w", err)
	}
	cards, err := s.cardRepo.CountByType(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to count cards: %w", err)
	}

	return &MemberHistoryResponse{
		MemberID: memberID,
		Attendance: AttendanceSummary{
			TotalMatches:   total,
			Confirmed:      confirmed,
			AttendanceRate: attendanceRate(confirmed, total),
		},
		Finance: FinanceSummary{
			Paid:                 paid,
			Outstanding:          outstanding,
			PaidFormatted:        FormatMoney(paid),
			OutstandingFormatted: FormatMoney(outstanding),
		},
		Cards: CardSummary{
			Yellow: cards[models.CardTypeYellow],
			Red:    cards[models.CardTypeRed],
		},
	}, nil
}

// UploadPhoto replaces the photo of a member
func (s *MemberService) UploadPhoto(ctx context.Context, userID, memberID uuid.UUID, upload storage.Upload) (*MemberResponse, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, translate(err, apperrors.ErrMemberNotFound, "get member")
	}
	if err := s.access.RequireAdmin(ctx, userID, member.GroupID); err != nil {
		return nil, err
	}

	url, err := s.photos.Save(ctx, "members", upload)
	if err != nil {
		return nil, err
	}

	previous := member.PhotoURL
	member.PhotoURL = url
	if err := s.memberRepo.Update(ctx, member); err != nil {
		_ = s.photos.Delete(ctx, url)
		return nil, fmt.Errorf("failed to update member photo: %w", err)
	}

	if previous != "" {
		if err := s.photos.Delete(ctx, previous); err != nil {
			logger.WithContext(ctx).WithError(err).Warn("Failed to delete previous member photo")
		}
	}
	return toMemberResponse(member), nil
}

// ensureRosterCapacity fails when the group has no free roster slot
func ensureRosterCapacity(ctx context.Context, members repository.MemberRepositoryInterface, group *models.Group) error {
	active, err := members.CountActive(ctx, group.ID)
	if err != nil {
		return fmt.Errorf("failed to count members: %w", err)
	}
	if active >= int64(group.MaxMembers) {
		return apperrors.ErrMemberLimitReached
	}
	return nil
}

func ensureAdminCapacity(ctx context.Context, members repository.MemberRepositoryInterface, groupID uuid.UUID) error {
	admins, err := members.CountActiveAdmins(ctx, groupID)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if admins >= models.MaxAdminFlaggedMembers {
		return apperrors.ErrAdminLimitReached
	}
	return nil
}

func attendanceRate(confirmed, total int64) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(confirmed)/float64(total)*100)
}

func toMemberResponse(member *models.Member) *MemberResponse {
	return &MemberResponse{
		ID:           member.ID,
		GroupID:      member.GroupID,
		UserID:       member.UserID,
		Name:         member.Name,
		Nickname:     member.Nickname,
		Phone:        member.Phone,
		PhotoURL:     member.PhotoURL,
		Position:     member.Position,
		JerseyNumber: member.JerseyNumber,
		IsAdmin:      member.IsAdmin,
		IsActive:     member.IsActive,
		CreatedAt:    member.CreatedAt,
		UpdatedAt:    member.UpdatedAt,
	}
}
