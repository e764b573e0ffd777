package models

import "github.com/google/uuid"

// PushToken is a device token used for notification delivery
type PushToken struct {
	BaseModel
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_push_tokens_user_token"`
	Token    string    `json:"token" gorm:"size:255;not null;uniqueIndex:idx_push_tokens_user_token"`
	Platform string    `json:"platform" gorm:"size:20"`
}
