package models

import "github.com/google/uuid"

// Attendance is a member's RSVP for one match
type Attendance struct {
	BaseModel
	MatchID  uuid.UUID        `json:"match_id" gorm:"type:uuid;not null;uniqueIndex:idx_attendances_match_member"`
	MemberID uuid.UUID        `json:"member_id" gorm:"type:uuid;not null;uniqueIndex:idx_attendances_match_member;index"`
	Status   AttendanceStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`

	Member *Member `json:"member,omitempty" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}
