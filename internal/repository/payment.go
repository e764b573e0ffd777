package repository

import (
	"context"

	"quemjoga-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentFilter narrows payment listings
type PaymentFilter struct {
	MemberID *uuid.UUID
	Status   *models.PaymentStatus
	Type     *models.PaymentType
}

// PaymentRepository handles database operations for payments
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create creates a new payment
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return conn(ctx, r.db).Create(payment).Error
}

// GetByID retrieves a payment by ID
func (r *PaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	err := conn(ctx, r.db).Preload("Member").First(&payment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func groupPayments(groupID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN members ON members.id = payments.member_id").
			Where("members.group_id = ?", groupID)
	}
}

// ListByGroup retrieves the payments of a group's members, newest first
func (r *PaymentRepository) ListByGroup(ctx context.Context, groupID uuid.UUID, filter PaymentFilter, limit, offset int) ([]models.Payment, int64, error) {
	var payments []models.Payment
	var total int64

	scope := func(db *gorm.DB) *gorm.DB {
		db = groupPayments(groupID)(db)
		if filter.MemberID != nil {
			db = db.Where("payments.member_id = ?", *filter.MemberID)
		}
		if filter.Status != nil {
			db = db.Where("payments.status = ?", *filter.Status)
		}
		if filter.Type != nil {
			db = db.Where("payments.type = ?", *filter.Type)
		}
		return db
	}

	if err := conn(ctx, r.db).Model(&models.Payment{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := conn(ctx, r.db).
		Preload("Member").
		Scopes(scope).
		Order("payments.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&payments).Error
	if err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

// ListAwaitingByGroup retrieves the payments of a group waiting for admin review
func (r *PaymentRepository) ListAwaitingByGroup(ctx context.Context, groupID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	err := conn(ctx, r.db).
		Preload("Member").
		Scopes(groupPayments(groupID)).
		Where("payments.status = ?", models.PaymentStatusAwaitingApproval).
		Order("payments.updated_at ASC").
		Find(&payments).Error
	return payments, err
}

// FindDues retrieves the dues payment of a member for a reference period
func (r *PaymentRepository) FindDues(ctx context.Context, memberID uuid.UUID, reference string) (*models.Payment, error) {
	var payment models.Payment
	err := conn(ctx, r.db).
		Where("member_id = ? AND type = ? AND reference = ?", memberID, models.PaymentTypeDues, reference).
		Order("created_at DESC").
		First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// MemberIDsWithDues lists the members of a group that already have dues for a reference period
func (r *PaymentRepository) MemberIDsWithDues(ctx context.Context, groupID uuid.UUID, reference string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := conn(ctx, r.db).Model(&models.Payment{}).
		Scopes(groupPayments(groupID)).
		Where("payments.type = ? AND payments.reference = ?", models.PaymentTypeDues, reference).
		Distinct().
		Pluck("payments.member_id", &ids).Error
	return ids, err
}

// SumByGroup totals the payments of a group in the given statuses
func (r *PaymentRepository) SumByGroup(ctx context.Context, groupID uuid.UUID, statuses []models.PaymentStatus) (int64, error) {
	var total int64
	err := conn(ctx, r.db).Model(&models.Payment{}).
		Scopes(groupPayments(groupID)).
		Where("payments.status IN ?", statuses).
		Select("COALESCE(SUM(payments.amount), 0)").
		Scan(&total).Error
	return total, err
}

// SumByMember totals the payments of a member in the given statuses
func (r *PaymentRepository) SumByMember(ctx context.Context, memberID uuid.UUID, statuses []models.PaymentStatus) (int64, error) {
	var total int64
	err := conn(ctx, r.db).Model(&models.Payment{}).
		Where("member_id = ? AND status IN ?", memberID, statuses).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// GetLatestPendingByType retrieves the most recently created pending payment of a type for a member
func (r *PaymentRepository) GetLatestPendingByType(ctx context.Context, memberID uuid.UUID, paymentType models.PaymentType) (*models.Payment, error) {
	var payment models.Payment
	err := conn(ctx, r.db).
		Where("member_id = ? AND type = ? AND status = ?", memberID, paymentType, models.PaymentStatusPending).
		Order("created_at DESC").
		First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// Update saves all payment fields
func (r *PaymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	return conn(ctx, r.db).Omit("Member").Save(payment).Error
}

// Delete removes a payment
func (r *PaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&models.Payment{}, "id = ?", id).Error
}
