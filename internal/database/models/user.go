package models

// User is an account that can sign in and hold memberships in many groups
type User struct {
	BaseModel
	Name         string   `json:"name" gorm:"size:120;not null"`
	Email        *string  `json:"email,omitempty" gorm:"size:255;uniqueIndex"`
	Phone        *string  `json:"phone,omitempty" gorm:"size:30;uniqueIndex"`
	PasswordHash string   `json:"-" gorm:"size:255;not null"`
	Role         UserRole `json:"role" gorm:"type:varchar(20);not null;default:'player'"`
	IsActive     bool     `json:"is_active" gorm:"not null"`

	Profile    *AthleteProfile `json:"profile,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	PushTokens []PushToken     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// EmailValue returns the email or an empty string
func (u *User) EmailValue() string {
	if u.Email == nil {
		return ""
	}
	return *u.Email
}

// PhoneValue returns the phone or an empty string
func (u *User) PhoneValue() string {
	if u.Phone == nil {
		return ""
	}
	return *u.Phone
}
