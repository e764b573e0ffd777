package models

import (
	"time"

	"github.com/google/uuid"
)

// Match is a scheduled play session of a group
type Match struct {
	BaseModel
	GroupID     uuid.UUID `json:"group_id" gorm:"type:uuid;not null;index"`
	ScheduledAt time.Time `json:"scheduled_at" gorm:"not null;index"`
	Venue       string    `json:"venue" gorm:"size:200"`
	Address     string    `json:"address" gorm:"size:300"`
	FieldCost   int64     `json:"field_cost" gorm:"not null"`
	Notes       string    `json:"notes" gorm:"type:text"`
	IsFinished  bool      `json:"is_finished" gorm:"not null"`
	IsCanceled  bool      `json:"is_canceled" gorm:"not null"`

	Attendances []Attendance `json:"attendances,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
}
