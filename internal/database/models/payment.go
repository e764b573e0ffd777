package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment is a monetary charge tracked through the approval workflow.
// Amounts are integer minor currency units.
type Payment struct {
	BaseModel
	MemberID        uuid.UUID     `json:"member_id" gorm:"type:uuid;not null;index"`
	Type            PaymentType   `json:"type" gorm:"type:varchar(20);not null;index"`
	Amount          int64         `json:"amount" gorm:"not null"`
	Description     string        `json:"description" gorm:"size:300"`
	Reference       string        `json:"reference" gorm:"size:20;index"`
	ReceiptURL      string        `json:"receipt_url" gorm:"size:500"`
	Status          PaymentStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	RejectionReason string        `json:"rejection_reason" gorm:"size:500"`
	ApprovedBy      *uuid.UUID    `json:"approved_by,omitempty" gorm:"type:uuid"`
	ApprovedAt      *time.Time    `json:"approved_at,omitempty"`

	Member *Member `json:"member,omitempty" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}
