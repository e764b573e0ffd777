package models

import "github.com/google/uuid"

// Card is a disciplinary mark issued to a member at a match
type Card struct {
	BaseModel
	MemberID         uuid.UUID `json:"member_id" gorm:"type:uuid;not null;index"`
	MatchID          uuid.UUID `json:"match_id" gorm:"type:uuid;not null;index"`
	Type             CardType  `json:"type" gorm:"type:varchar(10);not null"`
	Reason           string    `json:"reason" gorm:"size:500"`
	FineGenerated    bool      `json:"fine_generated" gorm:"not null"`
	SuspensionServed bool      `json:"suspension_served" gorm:"not null"`
	SuspensionPaid   bool      `json:"suspension_paid" gorm:"not null"`

	Member *Member `json:"member,omitempty" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	Match  *Match  `json:"match,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
}
