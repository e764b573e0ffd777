package models

import (
	"time"

	"github.com/google/uuid"
)

// Team is a sub-roster within a group
type Team struct {
	BaseModel
	GroupID  uuid.UUID `json:"group_id" gorm:"type:uuid;not null;index"`
	Name     string    `json:"name" gorm:"size:100;not null"`
	Color    string    `json:"color" gorm:"size:30"`
	IsActive bool      `json:"is_active" gorm:"not null"`

	Members []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TeamMember assigns a member to a team for a period of time
type TeamMember struct {
	BaseModel
	TeamID         uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index"`
	MemberID       uuid.UUID  `json:"member_id" gorm:"type:uuid;not null;index"`
	IsActive       bool       `json:"is_active" gorm:"not null"`
	Since          time.Time  `json:"since" gorm:"not null"`
	Until          *time.Time `json:"until,omitempty"`
	IsStarter      bool       `json:"is_starter" gorm:"not null"`
	LineupPosition string     `json:"lineup_position" gorm:"size:30"`
	BenchOrder     *int       `json:"bench_order,omitempty"`

	Member *Member `json:"member,omitempty" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}
