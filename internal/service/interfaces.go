package service

import (
	"context"
	"time"

	"quemjoga-backend/internal/auth"
	"quemjoga-backend/internal/database/models"
	"quemjoga-backend/internal/mailer"
	"quemjoga-backend/internal/notify"
	"quemjoga-backend/internal/storage"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AccessControlInterface decides what a user may do inside a group
type AccessControlInterface interface {
	RoleIn(ctx context.Context, userID, groupID uuid.UUID) (models.GroupRole, error)
	RequireMembership(ctx context.Context, userID, groupID uuid.UUID) error
	RequireAdmin(ctx context.Context, userID, groupID uuid.UUID) error
}

// InviteAcceptorInterface consumes an invite token on behalf of a user
type InviteAcceptorInterface interface {
	AcceptToken(ctx context.Context, user *models.User, token string) (*models.Invite, error)
}

// PasswordHasherInterface hashes and verifies passwords
type PasswordHasherInterface interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenIssuerInterface signs and checks access and password reset tokens
type TokenIssuerInterface interface {
	IssueAccessToken(userID uuid.UUID) (string, time.Time, error)
	IssueResetToken(userID uuid.UUID, passwordHash string) (string, error)
	ValidateResetToken(token string) (uuid.UUID, string, error)
}

// IdentityProviderInterface signs users in through an external OAuth provider
type IdentityProviderInterface interface {
	Enabled() bool
	AuthCodeURL(state, redirectURI string) string
	FetchIdentity(ctx context.Context, code, redirectURI string) (*auth.Identity, error)
}

// PhotoStorageInterface stores uploaded images
type PhotoStorageInterface interface {
	Save(ctx context.Context, subdir string, upload storage.Upload) (string, error)
	Delete(ctx context.Context, url string) error
}

// MailerInterface sends transactional email
type MailerInterface interface {
	SendPasswordReset(ctx context.Context, to, name, link string) error
}

// NotifierInterface publishes push notifications
type NotifierInterface interface {
	Notify(ctx context.Context, n notify.Notification) error
}

// AccountServiceInterface defines the interface for account service
type AccountServiceInterface interface {
	Register(ctx context.Context, req *RegisterRequest) (*TokenResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error)
	Me(ctx context.Context, userID uuid.UUID) (*UserResponse, error)
	ForgotPassword(ctx context.Context, req *ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *ResetPasswordRequest) error
	GoogleAuthURL(ctx context.Context, redirectURI string) (*GoogleAuthURLResponse, error)
	GoogleLogin(ctx context.Context, req *GoogleLoginRequest) (*TokenResponse, error)
	RegisterPushToken(ctx context.Context, userID uuid.UUID, req *PushTokenRequest) error
}

// GroupServiceInterface defines the interface for group service
type GroupServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, req *CreateGroupRequest) (*GroupResponse, error)
	List(ctx context.Context, userID uuid.UUID, activeOnly bool, page, pageSize int) (*GroupListResponse, error)
	Get(ctx context.Context, userID, groupID uuid.UUID) (*GroupResponse, error)
	Update(ctx context.Context, userID, groupID uuid.UUID, req *UpdateGroupRequest) (*GroupResponse, error)
	Deactivate(ctx context.Context, userID, groupID uuid.UUID) error
	Balance(ctx context.Context, userID, groupID uuid.UUID) (*BalanceResponse, error)
	ListAdmins(ctx context.Context, userID, groupID uuid.UUID) ([]GroupAdminResponse, error)
}

// MemberServiceInterface defines the interface for member service
type MemberServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, req *CreateMemberRequest) (*MemberResponse, error)
	List(ctx context.Context, userID, groupID uuid.UUID, filter MemberListFilter, page, pageSize int) (*MemberListResponse, error)
	Get(ctx context.Context, userID, memberID uuid.UUID) (*MemberResponse, error)
	Update(ctx context.Context, userID, memberID uuid.UUID, req *UpdateMemberRequest) (*MemberResponse, error)
	Deactivate(ctx context.Context, userID, memberID uuid.UUID) error
	History(ctx context.Context, userID, memberID uuid.UUID) (*MemberHistoryResponse, error)
	UploadPhoto(ctx context.Context, userID, memberID uuid.UUID, upload storage.Upload) (*MemberResponse, error)
}

// MatchServiceInterface defines the interface for match service
type MatchServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, req *CreateMatchRequest) (*MatchResponse, error)
	List(ctx context.Context, userID, groupID uuid.UUID, upcomingOnly bool, page, pageSize int) (*MatchListResponse, error)
	Get(ctx context.Context, userID, matchID uuid.UUID) (*MatchResponse, error)
	Update(ctx context.Context, userID, matchID uuid.UUID, req *UpdateMatchRequest) (*MatchResponse, error)
	Cancel(ctx context.Context, userID, matchID uuid.UUID) error
	Roster(ctx context.Context, userID, matchID uuid.UUID) (*MatchRosterResponse, error)
}

// AttendanceServiceInterface defines the interface for attendance service
type AttendanceServiceInterface interface {
	Submit(ctx context.Context, userID uuid.UUID, req *SubmitAttendanceRequest) (*AttendanceResponse, error)
	Update(ctx context.Context, userID, attendanceID uuid.UUID, req *UpdateAttendanceRequest) (*AttendanceResponse, error)
	SetStatus(ctx context.Context, userID, matchID, memberID uuid.UUID, status models.AttendanceStatus) (*AttendanceResponse, error)
}

// PaymentServiceInterface defines the interface for payment service
type PaymentServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, req *CreatePaymentRequest) (*PaymentResponse, error)
	List(ctx context.Context, userID, groupID uuid.UUID, filter PaymentListFilter, page, pageSize int) (*PaymentListResponse, error)
	ListAwaiting(ctx context.Context, userID, groupID uuid.UUID) ([]PaymentResponse, error)
	SubmitReceipt(ctx context.Context, userID, paymentID uuid.UUID, req *SubmitReceiptRequest) (*PaymentResponse, error)
	Review(ctx context.Context, userID, paymentID uuid.UUID, req *ReviewPaymentRequest) (*PaymentResponse, error)
	GenerateDues(ctx context.Context, userID, groupID uuid.UUID, req *GenerateDuesRequest) (*DuesGenerationResponse, error)
	ConfirmDues(ctx context.Context, userID, memberID uuid.UUID, req *DuesReferenceRequest) (*PaymentResponse, error)
	UnconfirmDues(ctx context.Context, userID, memberID uuid.UUID, req *DuesReferenceRequest) (*PaymentResponse, error)
}

// CardServiceInterface defines the interface for card service
type CardServiceInterface interface {
	Issue(ctx context.Context, userID uuid.UUID, req *IssueCardRequest) (*CardResponse, error)
	RemoveLatest(ctx context.Context, userID, memberID uuid.UUID, cardType models.CardType) (*CardRemovalResponse, error)
	ListByMember(ctx context.Context, userID, memberID uuid.UUID) ([]CardResponse, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error)
	List(ctx context.Context, userID, groupID uuid.UUID) ([]TeamResponse, error)
	Get(ctx context.Context, userID, teamID uuid.UUID) (*TeamResponse, error)
	Update(ctx context.Context, userID, teamID uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(ctx context.Context, userID, teamID uuid.UUID) error
	AddMember(ctx context.Context, userID, teamID uuid.UUID, req *AddTeamMemberRequest) (*TeamMemberResponse, error)
	UpdateMember(ctx context.Context, userID, teamID, memberID uuid.UUID, req *UpdateTeamMemberRequest) (*TeamMemberResponse, error)
	RemoveMember(ctx context.Context, userID, teamID, memberID uuid.UUID) error
}

// InviteServiceInterface defines the interface for invite service
type InviteServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, req *CreateInviteRequest) (*InviteResponse, error)
	GetByToken(ctx context.Context, token string) (*InviteResponse, error)
	Accept(ctx context.Context, user *models.User, token string) (*InviteResponse, error)
	Cancel(ctx context.Context, userID, inviteID uuid.UUID) (*InviteResponse, error)
	ListPending(ctx context.Context, userID, groupID uuid.UUID) ([]InviteResponse, error)
}

// ProfileServiceInterface defines the interface for athlete profile service
type ProfileServiceInterface interface {
	Get(ctx context.Context, user *models.User) (*ProfileResponse, error)
	Update(ctx context.Context, user *models.User, req *UpdateProfileRequest) (*ProfileResponse, error)
	UploadPhoto(ctx context.Context, user *models.User, upload storage.Upload) (*ProfileResponse, error)
	DeletePhoto(ctx context.Context, user *models.User) (*ProfileResponse, error)
}

// StatsServiceInterface defines the interface for scoring statistics service
type StatsServiceInterface interface {
	Leaderboard(ctx context.Context, userID, groupID uuid.UUID) ([]ScorerResponse, error)
	Update(ctx context.Context, userID, groupID, memberID uuid.UUID, req *UpdateStatsRequest) (*ScorerResponse, error)
}

// Compile-time checks that the services satisfy their interfaces
var (
	_ AccessControlInterface     = (*AccessService)(nil)
	_ InviteAcceptorInterface    = (*InviteService)(nil)
	_ AccountServiceInterface    = (*AccountService)(nil)
	_ GroupServiceInterface      = (*GroupService)(nil)
	_ MemberServiceInterface     = (*MemberService)(nil)
	_ MatchServiceInterface      = (*MatchService)(nil)
	_ AttendanceServiceInterface = (*AttendanceService)(nil)
	_ PaymentServiceInterface    = (*PaymentService)(nil)
	_ CardServiceInterface       = (*CardService)(nil)
	_ TeamServiceInterface       = (*TeamService)(nil)
	_ InviteServiceInterface     = (*InviteService)(nil)
	_ ProfileServiceInterface    = (*ProfileService)(nil)
	_ StatsServiceInterface      = (*StatsService)(nil)

	_ PasswordHasherInterface   = (*auth.PasswordHasher)(nil)
	_ TokenIssuerInterface      = (*auth.TokenService)(nil)
	_ IdentityProviderInterface = (*auth.GoogleClient)(nil)
	_ PhotoStorageInterface     = (*storage.PhotoStore)(nil)
	_ MailerInterface           = (*mailer.Mailer)(nil)
	_ NotifierInterface         = (*notify.NATSPublisher)(nil)
	_ NotifierInterface         = (*notify.LogPublisher)(nil)
)
