package testutils

import (
	"time"

	"quemjoga-backend/internal/database/models"

	"github.com/google/uuid"
)

func newBase() models.BaseModel {
	now := time.Now()
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func strPtr(s string) *string { return &s }

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique email
func (f *UserFactory) Create() *models.User {
	base := newBase()
	return &models.User{
		BaseModel:    base,
		Name:         "João Silva",
		Email:        strPtr("joao." + base.ID.String()[:8] + "@test.com"),
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuuJ5wq8wE3pcv5QxY3Vq5xSK7lJ9fGxy2",
		Role:         models.UserRolePlayer,
		IsActive:     true,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = strPtr(email)
	return user
}

// WithPhone creates a phone-only user
func (f *UserFactory) WithPhone(phone string) *models.User {
	user := f.Create()
	user.Email = nil
	user.Phone = strPtr(phone)
	return user
}

// GroupFactory provides methods to create test Group data
type GroupFactory struct{}

// NewGroupFactory creates a new GroupFactory
func NewGroupFactory() *GroupFactory {
	return &GroupFactory{}
}

// Create creates a test Group with default values
func (f *GroupFactory) Create() *models.Group {
	return &models.Group{
		BaseModel:      newBase(),
		Name:           "Racha de Quinta",
		Type:           models.GroupTypeSociety,
		Description:    "Pelada semanal",
		MaxMembers:     30,
		DuesAmount:     5000,
		YellowCardFine: 1000,
		RedCardFine:    2000,
		IsActive:       true,
	}
}

// WithName sets a custom name for the group
func (f *GroupFactory) WithName(name string) *models.Group {
	group := f.Create()
	group.Name = name
	return group
}

// MemberFactory provides methods to create test Member data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a test Member with default values
func (f *MemberFactory) Create() *models.Member {
	return &models.Member{
		BaseModel: newBase(),
		GroupID:   uuid.New(),
		Name:      "Carlos Souza",
		Nickname:  "Carlão",
		Phone:     "+55 11 99999-0000",
		Position:  models.PositionMidfielder,
		IsActive:  true,
	}
}

// WithGroup sets the group of the member
func (f *MemberFactory) WithGroup(groupID uuid.UUID) *models.Member {
	member := f.Create()
	member.GroupID = groupID
	return member
}

// WithUser links the member to a user account
func (f *MemberFactory) WithUser(groupID, userID uuid.UUID) *models.Member {
	member := f.WithGroup(groupID)
	member.UserID = &userID
	return member
}

// MatchFactory provides methods to create test Match data
type MatchFactory struct{}

// NewMatchFactory creates a new MatchFactory
func NewMatchFactory() *MatchFactory {
	return &MatchFactory{}
}

// Create creates a test Match scheduled a week from now
func (f *MatchFactory) Create() *models.Match {
	return &models.Match{
		BaseModel:   newBase(),
		GroupID:     uuid.New(),
		ScheduledAt: time.Now().Add(7 * 24 * time.Hour).Truncate(time.Second),
		Venue:       "Arena Society",
		Address:     "Rua das Flores, 100",
		FieldCost:   30000,
	}
}

// WithGroup sets the group of the match
func (f *MatchFactory) WithGroup(groupID uuid.UUID) *models.Match {
	match := f.Create()
	match.GroupID = groupID
	return match
}

// At sets the schedule of the match
func (f *MatchFactory) At(groupID uuid.UUID, when time.Time) *models.Match {
	match := f.WithGroup(groupID)
	match.ScheduledAt = when
	return match
}

// PaymentFactory provides methods to create test Payment data
type PaymentFactory struct{}

// NewPaymentFactory creates a new PaymentFactory
func NewPaymentFactory() *PaymentFactory {
	return &PaymentFactory{}
}

// Create creates a pending dues Payment
func (f *PaymentFactory) Create() *models.Payment {
	return &models.Payment{
		BaseModel:   newBase(),
		MemberID:    uuid.New(),
		Type:        models.PaymentTypeDues,
		Amount:      5000,
		Description: "Mensalidade",
		Reference:   time.Now().Format("2006-01"),
		Status:      models.PaymentStatusPending,
	}
}

// WithMember sets the member of the payment
func (f *PaymentFactory) WithMember(memberID uuid.UUID) *models.Payment {
	payment := f.Create()
	payment.MemberID = memberID
	return payment
}

// WithStatus sets the status of the payment
func (f *PaymentFactory) WithStatus(memberID uuid.UUID, status models.PaymentStatus) *models.Payment {
	payment := f.WithMember(memberID)
	payment.Status = status
	return payment
}

// CardFactory provides methods to create test Card data
type CardFactory struct{}

// NewCardFactory creates a new CardFactory
func NewCardFactory() *CardFactory {
	return &CardFactory{}
}

// Create creates a yellow Card for the given member and match
func (f *CardFactory) Create(memberID, matchID uuid.UUID) *models.Card {
	return &models.Card{
		BaseModel:     newBase(),
		MemberID:      memberID,
		MatchID:       matchID,
		Type:          models.CardTypeYellow,
		Reason:        "Falta dura",
		FineGenerated: true,
	}
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: newBase(),
		GroupID:   uuid.New(),
		Name:      "Time Azul",
		Color:     "blue",
		IsActive:  true,
	}
}

// WithGroup sets the group of the team
func (f *TeamFactory) WithGroup(groupID uuid.UUID) *models.Team {
	team := f.Create()
	team.GroupID = groupID
	return team
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(groupID uuid.UUID, name string) *models.Team {
	team := f.WithGroup(groupID)
	team.Name = name
	return team
}

// InviteFactory provides methods to create test Invite data
type InviteFactory struct{}

// NewInviteFactory creates a new InviteFactory
func NewInviteFactory() *InviteFactory {
	return &InviteFactory{}
}

// Create creates a pending player Invite expiring in a week
func (f *InviteFactory) Create(groupID, createdBy uuid.UUID) *models.Invite {
	expires := time.Now().Add(7 * 24 * time.Hour)
	base := newBase()
	return &models.Invite{
		BaseModel: base,
		Token:     base.ID.String(),
		GroupID:   groupID,
		Email:     "convidado@test.com",
		Name:      "Convidado",
		Role:      models.InviteRolePlayer,
		Status:    models.InviteStatusPending,
		CreatedBy: createdBy,
		ExpiresAt: &expires,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User    *UserFactory
	Group   *GroupFactory
	Member  *MemberFactory
	Match   *MatchFactory
	Payment *PaymentFactory
	Card    *CardFactory
	Team    *TeamFactory
	Invite  *InviteFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:    NewUserFactory(),
		Group:   NewGroupFactory(),
		Member:  NewMemberFactory(),
		Match:   NewMatchFactory(),
		Payment: NewPaymentFactory(),
		Card:    NewCardFactory(),
		Team:    NewTeamFactory(),
		Invite:  NewInviteFactory(),
	}
}
