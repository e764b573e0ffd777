package models

import "github.com/google/uuid"

// MemberStat aggregates goals and assists of a member within a group
type MemberStat struct {
	BaseModel
	MemberID uuid.UUID `json:"member_id" gorm:"type:uuid;not null;uniqueIndex:idx_member_stats_member_group"`
	GroupID  uuid.UUID `json:"group_id" gorm:"type:uuid;not null;uniqueIndex:idx_member_stats_member_group;index"`
	Goals    int       `json:"goals" gorm:"not null"`
	Assists  int       `json:"assists" gorm:"not null"`

	Member *Member `json:"member,omitempty" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}
