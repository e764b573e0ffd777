package models

import "github.com/google/uuid"

// AthleteProfile is the user-level sporting profile, independent of any group
type AthleteProfile struct {
	BaseModel
	UserID        uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`
	Name          string        `json:"name" gorm:"size:120"`
	Nickname      string        `json:"nickname" gorm:"size:60"`
	Phone         string        `json:"phone" gorm:"size:30"`
	Position      Position      `json:"position" gorm:"type:varchar(20)"`
	PreferredFoot PreferredFoot `json:"preferred_foot" gorm:"type:varchar(10)"`
	JerseyNumber  *int          `json:"jersey_number,omitempty"`
	PhotoURL      string        `json:"photo_url" gorm:"size:500"`
}
