package repository

import (
	"context"
	"time"

	"quemjoga-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TransactorInterface defines the unit-of-work boundary used by services
type TransactorInterface interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByPhone(ctx context.Context, phone string) (*models.User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// AthleteProfileRepositoryInterface defines the interface for athlete profile repository operations
type AthleteProfileRepositoryInterface interface {
	Create(ctx context.Context, profile *models.AthleteProfile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.AthleteProfile, error)
	Update(ctx context.Context, profile *models.AthleteProfile) error
}

// PushTokenRepositoryInterface defines the interface for push token repository operations
type PushTokenRepositoryInterface interface {
	Upsert(ctx context.Context, token *models.PushToken) error
	ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]models.PushToken, error)
}

// GroupRepositoryInterface defines the interface for group repository operations
type GroupRepositoryInterface interface {
	Create(ctx context.Context, group *models.Group) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Group, error)
	ListForUser(ctx context.Context, userID uuid.UUID, activeOnly bool, limit, offset int) ([]models.Group, int64, error)
	Update(ctx context.Context, group *models.Group) error
}

// GroupAdminRepositoryInterface defines the interface for group admin repository operations
type GroupAdminRepositoryInterface interface {
	Create(ctx context.Context, admin *models.GroupAdmin) error
	GetByGroupAndUser(ctx context.Context, groupID, userID uuid.UUID) (*models.GroupAdmin, error)
	ListActiveByGroup(ctx context.Context, groupID uuid.UUID) ([]models.GroupAdmin, error)
	Update(ctx context.Context, admin *models.GroupAdmin) error
}

// MemberRepositoryInterface defines the interface for member repository operations
type MemberRepositoryInterface interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Member, error)
	GetByGroupAndUser(ctx context.Context, groupID, userID uuid.UUID) (*models.Member, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID, filter MemberFilter, limit, offset int) ([]models.Member, int64, error)
	ListActiveByGroup(ctx context.Context, groupID uuid.UUID) ([]models.Member, error)
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.Member, error)
	CountActive(ctx context.Context, groupID uuid.UUID) (int64, error)
	CountActiveAdmins(ctx context.Context, groupID uuid.UUID) (int64, error)
	CountActiveByGroups(ctx context.Context, groupIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	UpdatePhotoForUser(ctx context.Context, userID uuid.UUID, photoURL string) error
	Update(ctx context.Context, member *models.Member) error
}

// MatchRepositoryInterface defines the interface for match repository operations
type MatchRepositoryInterface interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Match, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID, filter MatchFilter, limit, offset int) ([]models.Match, int64, error)
	GetLatestByGroup(ctx context.Context, groupID uuid.UUID) (*models.Match, error)
	Update(ctx context.Context, match *models.Match) error
}

// AttendanceRepositoryInterface defines the interface for attendance repository operations
type AttendanceRepositoryInterface interface {
	CreateBatch(ctx context.Context, attendances []models.Attendance) error
	Upsert(ctx context.Context, attendance *models.Attendance) (*models.Attendance, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Attendance, error)
	GetByMatchAndMember(ctx context.Context, matchID, memberID uuid.UUID) (*models.Attendance, error)
	ListByMatch(ctx context.Context, matchID uuid.UUID) ([]models.Attendance, error)
	CountConfirmedByMatches(ctx context.Context, matchIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	CountByMember(ctx context.Context, memberID uuid.UUID) (int64, int64, error)
	Update(ctx context.Context, attendance *models.Attendance) error
}

// PaymentRepositoryInterface defines the interface for payment repository operations
type PaymentRepositoryInterface interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID, filter PaymentFilter, limit, offset int) ([]models.Payment, int64, error)
	ListAwaitingByGroup(ctx context.Context, groupID uuid.UUID) ([]models.Payment, error)
	FindDues(ctx context.Context, memberID uuid.UUID, reference string) (*models.Payment, error)
	MemberIDsWithDues(ctx context.Context, groupID uuid.UUID, reference string) ([]uuid.UUID, error)
	SumByGroup(ctx context.Context, groupID uuid.UUID, statuses []models.PaymentStatus) (int64, error)
	SumByMember(ctx context.Context, memberID uuid.UUID, statuses []models.PaymentStatus) (int64, error)
	GetLatestPendingByType(ctx context.Context, memberID uuid.UUID, paymentType models.PaymentType) (*models.Payment, error)
	Update(ctx context.Context, payment *models.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CardRepositoryInterface defines the interface for card repository operations
type CardRepositoryInterface interface {
	Create(ctx context.Context, card *models.Card) error
	GetLatestByType(ctx context.Context, memberID uuid.UUID, cardType models.CardType) (*models.Card, error)
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]models.Card, error)
	CountByType(ctx context.Context, memberID uuid.UUID) (map[models.CardType]int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetWithMembers(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]models.Team, error)
	Update(ctx context.Context, team *models.Team) error
}

// TeamMemberRepositoryInterface defines the interface for team membership repository operations
type TeamMemberRepositoryInterface interface {
	Create(ctx context.Context, teamMember *models.TeamMember) error
	GetActive(ctx context.Context, teamID, memberID uuid.UUID) (*models.TeamMember, error)
	DeactivateInGroup(ctx context.Context, groupID, memberID uuid.UUID, until time.Time) error
	Update(ctx context.Context, teamMember *models.TeamMember) error
}

// InviteRepositoryInterface defines the interface for invite repository operations
type InviteRepositoryInterface interface {
	Create(ctx context.Context, invite *models.Invite) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Invite, error)
	GetByToken(ctx context.Context, token string) (*models.Invite, error)
	ListPendingByGroup(ctx context.Context, groupID uuid.UUID) ([]models.Invite, error)
	Update(ctx context.Context, invite *models.Invite) error
}

// MemberStatRepositoryInterface defines the interface for scoring statistics repository operations
type MemberStatRepositoryInterface interface {
	EnsureForMembers(ctx context.Context, groupID uuid.UUID, memberIDs []uuid.UUID) error
	GetOrCreate(ctx context.Context, groupID, memberID uuid.UUID) (*models.MemberStat, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]models.MemberStat, error)
	Update(ctx context.Context, stat *models.MemberStat) error
}

// Compile-time checks that the gorm repositories satisfy their interfaces
var (
	_ TransactorInterface               = (*Transactor)(nil)
	_ UserRepositoryInterface           = (*UserRepository)(nil)
	_ AthleteProfileRepositoryInterface = (*AthleteProfileRepository)(nil)
	_ PushTokenRepositoryInterface      = (*PushTokenRepository)(nil)
	_ GroupRepositoryInterface          = (*GroupRepository)(nil)
	_ GroupAdminRepositoryInterface     = (*GroupAdminRepository)(nil)
	_ MemberRepositoryInterface         = (*MemberRepository)(nil)
	_ MatchRepositoryInterface          = (*MatchRepository)(nil)
	_ AttendanceRepositoryInterface     = (*AttendanceRepository)(nil)
	_ PaymentRepositoryInterface        = (*PaymentRepository)(nil)
	_ CardRepositoryInterface           = (*CardRepository)(nil)
	_ TeamRepositoryInterface           = (*TeamRepository)(nil)
	_ TeamMemberRepositoryInterface     = (*TeamMemberRepository)(nil)
	_ InviteRepositoryInterface         = (*InviteRepository)(nil)
	_ MemberStatRepositoryInterface     = (*MemberStatRepository)(nil)
)
