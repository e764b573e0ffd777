package models

import "github.com/google/uuid"

// GroupAdmin grants a user administrative rights over a group
type GroupAdmin struct {
	BaseModel
	GroupID  uuid.UUID `json:"group_id" gorm:"type:uuid;not null;uniqueIndex:idx_group_admins_group_user"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_group_admins_group_user;index"`
	IsOwner  bool      `json:"is_owner" gorm:"not null"`
	IsActive bool      `json:"is_active" gorm:"not null"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
