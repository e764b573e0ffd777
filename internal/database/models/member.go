package models

import "github.com/google/uuid"

// MaxAdminFlaggedMembers caps the legacy is_admin flag per group
const MaxAdminFlaggedMembers = 5

// Member is a user's participation record within one group
type Member struct {
	BaseModel
	GroupID      uuid.UUID  `json:"group_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_members_group_user,where:user_id IS NOT NULL"`
	UserID       *uuid.UUID `json:"user_id,omitempty" gorm:"type:uuid;index;uniqueIndex:idx_members_group_user,where:user_id IS NOT NULL"`
	Name         string     `json:"name" gorm:"size:120;not null"`
	Nickname     string     `json:"nickname" gorm:"size:60"`
	Phone        string     `json:"phone" gorm:"size:30"`
	PhotoURL     string     `json:"photo_url" gorm:"size:500"`
	Position     Position   `json:"position" gorm:"type:varchar(20);not null;default:'midfielder'"`
	JerseyNumber *int       `json:"jersey_number,omitempty"`
	IsAdmin      bool       `json:"is_admin" gorm:"not null"`
	IsActive     bool       `json:"is_active" gorm:"not null;index"`

	Group *Group `json:"group,omitempty" gorm:"foreignKey:GroupID"`
}

// BelongsTo reports whether the member is linked to the given user
func (m *Member) BelongsTo(userID uuid.UUID) bool {
	return m.UserID != nil && *m.UserID == userID
}
