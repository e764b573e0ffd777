package models

// Group is a recurring sports club with its own roster, matches and dues
type Group struct {
	BaseModel
	Name           string    `json:"name" gorm:"size:120;not null"`
	Type           GroupType `json:"type" gorm:"type:varchar(20);not null;default:'society'"`
	Description    string    `json:"description" gorm:"type:text"`
	Rules          string    `json:"rules" gorm:"type:text"`
	MaxMembers     int       `json:"max_members" gorm:"not null"`
	DuesAmount     int64     `json:"dues_amount" gorm:"not null"`
	YellowCardFine int64     `json:"yellow_card_fine" gorm:"not null"`
	RedCardFine    int64     `json:"red_card_fine" gorm:"not null"`
	IsActive       bool      `json:"is_active" gorm:"not null;index"`

	Members []Member     `json:"members,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Matches []Match      `json:"matches,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Teams   []Team       `json:"teams,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Admins  []GroupAdmin `json:"admins,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// FineFor returns the configured fine for a card color
func (g *Group) FineFor(card CardType) int64 {
	if card == CardTypeRed {
		return g.RedCardFine
	}
	return g.YellowCardFine
}
