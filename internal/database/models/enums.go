package models

// UserRole is the account type chosen at registration
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRolePlayer UserRole = "player"
)

// GroupType defines the kind of pitch a group plays on
type GroupType string

const (
	GroupTypeField   GroupType = "field"
	GroupTypeSociety GroupType = "society"
	GroupTypeFutsal  GroupType = "futsal"
)

// Position is a member's preferred playing position
type Position string

const (
	PositionGoalkeeper   Position = "goalkeeper"
	PositionDefender     Position = "defender"
	PositionFullback     Position = "fullback"
	PositionDefensiveMid Position = "defensive_mid"
	PositionMidfielder   Position = "midfielder"
	PositionForward      Position = "forward"
	PositionWinger       Position = "winger"
)

// PreferredFoot is the athlete's stronger foot
type PreferredFoot string

const (
	PreferredFootRight PreferredFoot = "right"
	PreferredFootLeft  PreferredFoot = "left"
	PreferredFootBoth  PreferredFoot = "both"
)

// AttendanceStatus is a member's RSVP for a match
type AttendanceStatus string

const (
	AttendanceStatusPending   AttendanceStatus = "pending"
	AttendanceStatusConfirmed AttendanceStatus = "confirmed"
	AttendanceStatusDeclined  AttendanceStatus = "declined"
	AttendanceStatusMaybe     AttendanceStatus = "maybe"
)

// PaymentType classifies a ledger entry
type PaymentType string

const (
	PaymentTypeDues       PaymentType = "dues"
	PaymentTypeCostShare  PaymentType = "cost_share"
	PaymentTypeUniform    PaymentType = "uniform"
	PaymentTypeYellowFine PaymentType = "yellow_fine"
	PaymentTypeRedFine    PaymentType = "red_fine"
	PaymentTypeOther      PaymentType = "other"
)

// PaymentStatus tracks a payment through the approval workflow
type PaymentStatus string

const (
	PaymentStatusPending          PaymentStatus = "pending"
	PaymentStatusAwaitingApproval PaymentStatus = "awaiting_approval"
	PaymentStatusApproved         PaymentStatus = "approved"
	PaymentStatusRejected         PaymentStatus = "rejected"
)

// CardType is the color of a disciplinary card
type CardType string

const (
	CardTypeYellow CardType = "yellow"
	CardTypeRed    CardType = "red"
)

// InviteRole is what an invite grants on acceptance
type InviteRole string

const (
	InviteRoleAdmin  InviteRole = "admin"
	InviteRolePlayer InviteRole = "player"
)

// InviteStatus is the lifecycle state of an invite
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusCanceled InviteStatus = "canceled"
	InviteStatusExpired  InviteStatus = "expired"
)

// GroupRole is the caller's standing inside a group
type GroupRole string

const (
	GroupRoleAdmin  GroupRole = "admin"
	GroupRoleMember GroupRole = "member"
)

// IsValid checks if the GroupType is valid
func (t GroupType) IsValid() bool {
	switch t {
	case GroupTypeField, GroupTypeSociety, GroupTypeFutsal:
		return true
	}
	return false
}

// MaxMembers returns the default roster size for the group type
func (t GroupType) MaxMembers() int {
	switch t {
	case GroupTypeField:
		return 40
	case GroupTypeFutsal:
		return 20
	default:
		return 30
	}
}

// IsValid checks if the Position is valid
func (p Position) IsValid() bool {
	switch p {
	case PositionGoalkeeper, PositionDefender, PositionFullback, PositionDefensiveMid,
		PositionMidfielder, PositionForward, PositionWinger:
		return true
	}
	return false
}

// IsValid checks if the AttendanceStatus is valid
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendanceStatusPending, AttendanceStatusConfirmed, AttendanceStatusDeclined, AttendanceStatusMaybe:
		return true
	}
	return false
}

// AcceptsReceipt reports whether a receipt may be submitted from this status
func (s PaymentStatus) AcceptsReceipt() bool {
	return s == PaymentStatusPending || s == PaymentStatusRejected
}

// IsOutstanding reports whether the payment still counts as owed
func (s PaymentStatus) IsOutstanding() bool {
	return s == PaymentStatusPending || s == PaymentStatusAwaitingApproval
}

// FineType returns the payment type generated by a card of this color
func (c CardType) FineType() PaymentType {
	if c == CardTypeRed {
		return PaymentTypeRedFine
	}
	return PaymentTypeYellowFine
}

// IsValid checks if the PaymentType is valid
func (t PaymentType) IsValid() bool {
	switch t {
	case PaymentTypeDues, PaymentTypeCostShare, PaymentTypeUniform,
		PaymentTypeYellowFine, PaymentTypeRedFine, PaymentTypeOther:
		return true
	}
	return false
}

// IsValid checks if the PaymentStatus is valid
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusAwaitingApproval, PaymentStatusApproved, PaymentStatusRejected:
		return true
	}
	return false
}

// IsValid checks if the CardType is valid
func (t CardType) IsValid() bool {
	return t == CardTypeYellow || t == CardTypeRed
}
