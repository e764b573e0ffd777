package models

import (
	"time"

	"github.com/google/uuid"
)

// Invite is a single-use token granting onboarding into a group
type Invite struct {
	BaseModel
	Token      string       `json:"token" gorm:"size:64;not null;uniqueIndex"`
	GroupID    uuid.UUID    `json:"group_id" gorm:"type:uuid;not null;index"`
	TeamID     *uuid.UUID   `json:"team_id,omitempty" gorm:"type:uuid"`
	Email      string       `json:"email" gorm:"size:255"`
	Phone      string       `json:"phone" gorm:"size:30"`
	Name       string       `json:"name" gorm:"size:120"`
	Role       InviteRole   `json:"role" gorm:"type:varchar(20);not null;default:'player'"`
	Status     InviteStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedBy  uuid.UUID    `json:"created_by" gorm:"type:uuid;not null"`
	AcceptedBy *uuid.UUID   `json:"accepted_by,omitempty" gorm:"type:uuid"`
	AcceptedAt *time.Time   `json:"accepted_at,omitempty"`
	ExpiresAt  *time.Time   `json:"expires_at,omitempty"`

	Group *Group `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// IsExpired reports whether the invite is past its expiry at the given instant
func (i *Invite) IsExpired(now time.Time) bool {
	return i.ExpiresAt != nil && now.After(*i.ExpiresAt)
}
