package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quemjoga-backend/internal/database/models"
	apperrors "quemjoga-backend/internal/errors"
	"quemjoga-backend/internal/logger"
	"quemjoga-backend/internal/notify"
	"quemjoga-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentService handles the payment approval workflow and dues
type PaymentService struct {
	tx            repository.TransactorInterface
	paymentRepo   repository.PaymentRepositoryInterface
	memberRepo    repository.MemberRepositoryInterface
	groupRepo     repository.GroupRepositoryInterface
	pushTokenRepo repository.PushTokenRepositoryInterface
	notifier      NotifierInterface
	access        AccessControlInterface
	validator     *validator.Validate
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	tx repository.TransactorInterface,
	paymentRepo repository.PaymentRepositoryInterface,
	memberRepo repository.MemberRepositoryInterface,
	groupRepo repository.GroupRepositoryInterface,
	pushTokenRepo repository.PushTokenRepositoryInterface,
	notifier NotifierInterface,
	access AccessControlInterface,
	validator *validator.Validate,
) *PaymentService {
	return &PaymentService{
		tx:            tx,
		paymentRepo:   paymentRepo,
		memberRepo:    memberRepo,
		groupRepo:     groupRepo,
		pushTokenRepo: pushTokenRepo,
		notifier:      notifier,
		access:        access,
		validator:     validator,
	}
}

// CreatePaymentRequest represents the request to charge a member
type CreatePaymentRequest struct {
	MemberID    uuid.UUID          `json:"member_id" validate:"required"`
	Type        models.PaymentType `json:"type" validate:"required,oneof=dues cost_share uniform yellow_fine red_fine other"`
	Amount      int64              `json:"amount" validate:"required,gt=0"`
	Description string             `json:"description" validate:"max=300"`
	Reference   string             `json:"reference" validate:"max=20"`
}

// PaymentListFilter narrows payment listings
type PaymentListFilter struct {
	MemberID *uuid.UUID
	Status   *models.PaymentStatus
	Type     *models.PaymentType
}

// SubmitReceiptRequest carries the receipt a member uploaded for a payment
type SubmitReceiptRequest struct {
	ReceiptURL string `json:"receipt_url" validate:"required,max=500"`
}

// ReviewPaymentRequest represents an admin decision on a submitted receipt
type ReviewPaymentRequest struct {
	Approved        *bool  `json:"approved" validate:"required"`
	RejectionReason string `json:"rejection_reason" validate:"max=500"`
}

// GenerateDuesRequest represents a bulk dues generation for one reference period
type GenerateDuesRequest struct {
	Reference string `json:"reference" validate:"required,max=20"`
}

// DuesReferenceRequest identifies the dues of a member for one reference period
type DuesReferenceRequest struct {
	Reference string `json:"reference" validate:"required,max=20"`
}

// PaymentResponse represents the response for payment operations
type PaymentResponse struct {
	ID              uuid.UUID            `json:"id"`
	MemberID        uuid.UUID            `json:"member_id"`
	MemberName      string               `json:"member_name"`
	Type            models.PaymentType   `json:"type"`
	Amount          int64                `json:"amount"`
	AmountFormatted string               `json:"amount_formatted"`
	Description     string               `json:"description"`
	Reference       string               `json:"reference"`
	ReceiptURL      string               `json:"receipt_url"`
	Status          models.PaymentStatus `json:"status"`
	RejectionReason string               `json:"rejection_reason,omitempty"`
	ApprovedBy      *uuid.UUID           `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time           `json:"approved_at,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// PaymentListResponse represents a paginated list of payments
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// DuesGenerationResponse reports the outcome of a bulk dues generation
type DuesGenerationResponse struct {
	Reference    string `json:"reference"`
	TotalMembers int    `json:"total_members"`
	Created      int    `json:"created"`
	Skipped      int    `json:"skipped"`
}

// Create charges a member. Every new payment starts pending.
func (s *PaymentService) Create(ctx context.Context, userID uuid.UUID, req *CreatePaymentRequest) (*PaymentResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	member, err := s.memberRepo.GetByID(ctx, req.MemberID)
	if err != nil {
		return nil, translate(err, apperrors.ErrMemberNotFound, "get member")
	}
	if err := s.access.RequireMembership(ctx, userID, member.GroupID); err != nil {
		return nil, err
	}

	payment := &models.Payment{
		MemberID:    member.ID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Reference:   req.Reference,
		Status:      models.PaymentStatusPending,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	payment.Member = member
	return toPaymentResponse(payment), nil
}

// List lists the payments of a group newest first
func (s *PaymentService) List(ctx context.Context, userID, groupID uuid.UUID, filter PaymentListFilter, page, pageSize int) (*PaymentListResponse, error) {
	if err := s.access.RequireMembership(ctx, userID, groupID); err != nil {
		return nil, err
	}
	page, pageSize, limit, offset := pagination(page, pageSize)

	payments, total, err := s.paymentRepo.ListByGroup(ctx, groupID, repository.PaymentFilter{
		MemberID: filter.MemberID,
		Status:   filter.Status,
		Type:     filter.Type,
	}, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return &PaymentListResponse{
		Payments: toPaymentResponses(payments),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ListAwaiting lists the receipts waiting for an admin decision, oldest first
func (s *PaymentService) ListAwaiting(ctx context.Context, userID, groupID uuid.UUID) ([]PaymentResponse, error) {
	if err := s.access.RequireAdmin(ctx, userID, groupID); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListAwaitingByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list awaiting payments: %w", err)
	}
	return toPaymentResponses(payments), nil
}

// SubmitReceipt attaches a receipt and moves a pending or rejected payment to awaiting approval
func (s *PaymentService) SubmitReceipt(ctx context.Context, userID, paymentID uuid.UUID, req *SubmitReceiptRequest) (*PaymentResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, translate(err, apperrors.ErrPaymentNotFound, "get payment")
	}
	member, err := s.paymentMember(ctx, payment)
	if err != nil {
		return nil, err
	}
	if err := s.access.RequireMembership(ctx, userID, member.GroupID); err != nil {
		return nil, err
	}
	if !payment.Status.AcceptsReceipt() {
		return nil, apperrors.ErrInvalidPaymentTransition
	}

	payment.ReceiptURL = req.ReceiptURL
	payment.Status = models.PaymentStatusAwaitingApproval
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to submit receipt: %w", err)
	}
	return toPaymentResponse(payment), nil
}

// Review approves or rejects a payment awaiting approval and notifies the payer
func (s *PaymentService) Review(ctx context.Context, userID, paymentID uuid.UUID, req *ReviewPaymentRequest) (*PaymentResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, translate(err, apperrors.ErrPaymentNotFound, "get payment")
	}
	member, err := s.paymentMember(ctx, payment)
	if err != nil {
		return nil, err
	}
	if err := s.access.RequireAdmin(ctx, userID, member.GroupID); err != nil {
		return nil, err
	}
	if payment.Status != models.PaymentStatusAwaitingApproval {
		return nil, apperrors.ErrInvalidPaymentTransition
	}

	title := "Pagamento rejeitado"
	if *req.Approved {
		approver := userID
		payment.Status = models.PaymentStatusApproved
		payment.ApprovedBy = &approver
		payment.ApprovedAt = timePtr(time.Now())
		title = "Pagamento aprovado"
	} else {
		payment.Status = models.PaymentStatusRejected
		payment.RejectionReason = req.RejectionReason
	}

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to review payment: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"payment_id": payment.ID,
		"status":     payment.Status,
	}).Info("Payment reviewed")

	if member.UserID != nil {
		notifyUsers(ctx, s.pushTokenRepo, s.notifier, []uuid.UUID{*member.UserID}, notify.Notification{
			Title: title,
			Body:  fmt.Sprintf("%s - %s", payment.Description, FormatMoney(payment.Amount)),
			Data: map[string]string{
				"type":       "payment_reviewed",
				"payment_id": payment.ID.String(),
				"status":     string(payment.Status),
			},
		})
	}

	return toPaymentResponse(payment), nil
}

// GenerateDues creates one pending dues payment per active member for a reference period.
// Members already charged for that period are skipped, so running it twice is harmless.
func (s *PaymentService) GenerateDues(ctx context.Context, userID, groupID uuid.UUID, req *GenerateDuesRequest) (*DuesGenerationResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.access.RequireAdmin(ctx, userID, groupID); err != nil {
		return nil, err
	}

	resp := &DuesGenerationResponse{Reference: req.Reference}
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		group, err := s.groupRepo.GetByID(ctx, groupID)
		if err != nil {
			return translate(err, apperrors.ErrGroupNotFound, "get group")
		}
		if group.DuesAmount <= 0 {
			return apperrors.ErrDuesNotConfigured
		}

		members, err := s.memberRepo.ListActiveByGroup(ctx, groupID)
		if err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}
		charged, err := s.paymentRepo.MemberIDsWithDues(ctx, groupID, req.Reference)
		if err != nil {
			return fmt.Errorf("failed to list existing dues: %w", err)
		}
		already := make(map[uuid.UUID]bool, len(charged))
		for _, id := range charged {
			already[id] = true
		}

		resp.TotalMembers = len(members)
		for _, member := range members {
			if already[member.ID] {
				resp.Skipped++
				continue
			}
			if err := s.paymentRepo.Create(ctx, newDuesPayment(member.ID, group.DuesAmount, req.Reference)); err != nil {
				return fmt.Errorf("failed to create dues: %w", err)
			}
			resp.Created++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"group_id":  groupID,
		"reference": req.Reference,
		"created":   resp.Created,
	}).Info("Dues generated")
	return resp, nil
}

// ConfirmDues marks the dues of a member as paid without a receipt, creating them if needed
func (s *PaymentService) ConfirmDues(ctx context.Context, userID, memberID uuid.UUID, req *DuesReferenceRequest) (*PaymentResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	member, err := s.adminMember(ctx, userID, memberID)
	if err != nil {
		return nil, err
	}

	var payment *models.Payment
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.paymentRepo.FindDues(ctx, member.ID, req.Reference)
		switch {
		case err == nil:
			payment = existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			group, err := s.groupRepo.GetByID(ctx, member.GroupID)
			if err != nil {
				return translate(err, apperrors.ErrGroupNotFound, "get group")
			}
			if group.DuesAmount <= 0 {
				return apperrors.ErrDuesNotConfigured
			}
			payment = newDuesPayment(member.ID, group.DuesAmount, req.Reference)
			if err := s.paymentRepo.Create(ctx, payment); err != nil {
				return fmt.Errorf("failed to create dues: %w", err)
			}
		default:
			return fmt.Errorf("failed to find dues: %w", err)
		}

		approver := userID
		payment.Status = models.PaymentStatusApproved
		payment.ApprovedBy = &approver
		payment.ApprovedAt = timePtr(time.Now())
		if err := s.paymentRepo.Update(ctx, payment); err != nil {
			return fmt.Errorf("failed to confirm dues: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	payment.Member = member
	return toPaymentResponse(payment), nil
}

// UnconfirmDues reverts the dues of a member for a reference period to pending
func (s *PaymentService) UnconfirmDues(ctx context.Context, userID, memberID uuid.UUID, req *DuesReferenceRequest) (*PaymentResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	member, err := s.adminMember(ctx, userID, memberID)
	if err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.FindDues(ctx, member.ID, req.Reference)
	if err != nil {
		return nil, translate(err, apperrors.ErrPaymentNotFound, "find dues")
	}

	payment.Status = models.PaymentStatusPending
	payment.ApprovedBy = nil
	payment.ApprovedAt = nil
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to unconfirm dues: %w", err)
	}

	payment.Member = member
	return toPaymentResponse(payment), nil
}

func (s *PaymentService) adminMember(ctx context.Context, userID, memberID uuid.UUID) (*models.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, translate(err, apperrors.ErrMemberNotFound, "get member")
	}
	if err := s.access.RequireAdmin(ctx, userID, member.GroupID); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *PaymentService) paymentMember(ctx context.Context, payment *models.Payment) (*models.Member, error) {
	if payment.Member != nil {
		return payment.Member, nil
	}
	member, err := s.memberRepo.GetByID(ctx, payment.MemberID)
	if err != nil {
		return nil, translate(err, apperrors.ErrMemberNotFound, "get member")
	}
	payment.Member = member
	return member, nil
}

func newDuesPayment(memberID uuid.UUID, amount int64, reference string) *models.Payment {
	return &models.Payment{
		MemberID:    memberID,
		Type:        models.PaymentTypeDues,
		Amount:      amount,
		Reference:   reference,
		Description: "Mensalidade " + reference,
		Status:      models.PaymentStatusPending,
	}
}

func toPaymentResponses(payments []models.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = *toPaymentResponse(&payments[i])
	}
	return responses
}

func toPaymentResponse(payment *models.Payment) *PaymentResponse {
	resp := &PaymentResponse{
		ID:              payment.ID,
		MemberID:        payment.MemberID,
		Type:            payment.Type,
		Amount:          payment.Amount,
		AmountFormatted: FormatMoney(payment.Amount),
		Description:     payment.Description,
		Reference:       payment.Reference,
		ReceiptURL:      payment.ReceiptURL,
		Status:          payment.Status,
		RejectionReason: payment.RejectionReason,
		ApprovedBy:      payment.ApprovedBy,
		ApprovedAt:      payment.ApprovedAt,
		CreatedAt:       payment.CreatedAt,
		UpdatedAt:       payment.UpdatedAt,
	}
	if payment.Member != nil {
		resp.MemberName = payment.Member.Name
	}
	return resp
}
