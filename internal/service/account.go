package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"quemjoga-backend/internal/auth"
	"quemjoga-backend/internal/database/models"
	apperrors "quemjoga-backend/internal/errors"
	"quemjoga-backend/internal/logger"
	"quemjoga-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountService handles registration, sign-in and password recovery
type AccountService struct {
	tx            repository.TransactorInterface
	userRepo      repository.UserRepositoryInterface
	profileRepo   repository.AthleteProfileRepositoryInterface
	pushTokenRepo repository.PushTokenRepositoryInterface
	invites       InviteAcceptorInterface
	hasher        PasswordHasherInterface
	tokens        TokenIssuerInterface
	google        IdentityProviderInterface
	mailer        MailerInterface
	validator     *validator.Validate
	frontendURL   string
}

// NewAccountService creates a new account service
func NewAccountService(
	tx repository.TransactorInterface,
	userRepo repository.UserRepositoryInterface,
	profileRepo repository.AthleteProfileRepositoryInterface,
	pushTokenRepo repository.PushTokenRepositoryInterface,
	invites InviteAcceptorInterface,
	hasher PasswordHasherInterface,
	tokens TokenIssuerInterface,
	google IdentityProviderInterface,
	mailer MailerInterface,
	validator *validator.Validate,
	frontendURL string,
) *AccountService {
	return &AccountService{
		tx:            tx,
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		pushTokenRepo: pushTokenRepo,
		invites:       invites,
		hasher:        hasher,
		tokens:        tokens,
		google:        google,
		mailer:        mailer,
		validator:     validator,
		frontendURL:   strings.TrimRight(frontendURL, "/"),
	}
}

// RegisterRequest represents the request to create an account
type RegisterRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=120"`
	Email       string          `json:"email" validate:"omitempty,email,max=255"`
	Phone       string          `json:"phone" validate:"max=30"`
	Password    string          `json:"password" validate:"required,min=6,max=128"`
	Role        models.UserRole `json:"role" validate:"omitempty,oneof=admin player"`
	InviteToken string          `json:"invite_token" validate:"max=64"`
}

// LoginRequest represents the request to sign in with an email or phone
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required,max=255"`
	Password   string `json:"password" validate:"required"`
	PushToken  string `json:"push_token" validate:"max=255"`
	Platform   string `json:"platform" validate:"max=20"`
}

// ForgotPasswordRequest represents the request for a password reset link
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest represents the request to set a new password with a reset token
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6,max=128"`
}

// GoogleLoginRequest carries the authorization code returned by Google
type GoogleLoginRequest struct {
	Code        string `json:"code" validate:"required"`
	RedirectURI string `json:"redirect_uri" validate:"required,url"`
}

// PushTokenRequest registers a device for notifications
type PushTokenRequest struct {
	Token    string `json:"token" validate:"required,max=255"`
	Platform string `json:"platform" validate:"max=20"`
}

// GoogleAuthURLResponse contains the consent screen URL and the state to verify on return
type GoogleAuthURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	Role      models.UserRole `json:"role"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
}

// TokenResponse is returned by every successful sign-in
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

// Register creates an account and, when an invite token is given, accepts it in the same transaction
func (s *AccountService) Register(ctx context.Context, req *RegisterRequest) (*TokenResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)
	if email == "" && phone == "" {
		return nil, apperrors.ErrContactRequired
	}
	if err := s.ensureUnused(ctx, email, phone); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	role := req.Role
	if role == "" {
		role = models.UserRolePlayer
	}
	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if email != "" {
		user.Email = &email
	}
	if phone != "" {
		user.Phone = &phone
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		if token := strings.TrimSpace(req.InviteToken); token != "" {
			if _, err := s.invites.AcceptToken(ctx, user, token); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("user_id", user.ID).Info("User registered")
	return s.issue(user)
}

// Login authenticates a user by email or phone
func (s *AccountService) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	identifier := strings.TrimSpace(req.Identifier)
	if strings.Contains(identifier, "@") {
		identifier = strings.ToLower(identifier)
	}
	user, err := s.userRepo.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrInactiveUser
	}

	if token := strings.TrimSpace(req.PushToken); token != "" {
		if err := s.pushTokenRepo.Upsert(ctx, &models.PushToken{UserID: user.ID, Token: token, Platform: req.Platform}); err != nil {
			logger.WithContext(ctx).WithError(err).Warn("Failed to register push token on login")
		}
	}
	return s.issue(user)
}

// Me returns the authenticated user
func (s *AccountService) Me(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, translate(err, apperrors.ErrUserNotFound, "get user")
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// ForgotPassword mails a reset link. Unknown and inactive accounts are ignored
// so the response never reveals which emails are registered.
func (s *AccountService) ForgotPassword(ctx context.Context, req *ForgotPasswordRequest) error {
	if err := validateRequest(s.validator, req); err != nil {
		return err
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get user: %w", err)
	}
	if !user.IsActive {
		return nil
	}

	token, err := s.tokens.IssueResetToken(user.ID, user.PasswordHash)
	if err != nil {
		return err
	}
	link := s.frontendURL + "/reset-password?token=" + url.QueryEscape(token)
	if err := s.mailer.SendPasswordReset(ctx, user.EmailValue(), user.Name, link); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("user_id", user.ID).Error("Failed to send password reset email")
	}
	return nil
}

// ResetPassword sets a new password. The token stops working once the password changes.
func (s *AccountService) ResetPassword(ctx context.Context, req *ResetPasswordRequest) error {
	if err := validateRequest(s.validator, req); err != nil {
		return err
	}

	userID, marker, err := s.tokens.ValidateResetToken(req.Token)
	if err != nil {
		return apperrors.ErrInvalidResetToken
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return fmt.Errorf("failed to get user: %w", err)
	}
	if marker != auth.PasswordMarker(user.PasswordHash) {
		return apperrors.ErrInvalidResetToken
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	logger.WithContext(ctx).WithField("user_id", user.ID).Info("Password reset")
	return nil
}

// GoogleAuthURL builds the Google consent screen URL
func (s *AccountService) GoogleAuthURL(ctx context.Context, redirectURI string) (*GoogleAuthURLResponse, error) {
	if !s.google.Enabled() {
		return nil, apperrors.ErrOAuthNotConfigured
	}
	state, err := auth.GenerateState()
	if err != nil {
		return nil, err
	}
	return &GoogleAuthURLResponse{URL: s.google.AuthCodeURL(state, redirectURI), State: state}, nil
}

// GoogleLogin exchanges an authorization code and signs the user in, provisioning
// an account with an unusable password on first login.
func (s *AccountService) GoogleLogin(ctx context.Context, req *GoogleLoginRequest) (*TokenResponse, error) {
	if !s.google.Enabled() {
		return nil, apperrors.ErrOAuthNotConfigured
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	identity, err := s.google.FetchIdentity(ctx, req.Code, req.RedirectURI)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Google code exchange failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrOAuthExchange, err)
	}
	email := strings.ToLower(strings.TrimSpace(identity.Email))
	if email == "" {
		return nil, apperrors.ErrOAuthExchange
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		user, err = s.provisionGoogleUser(ctx, email, identity)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.IsActive {
		return nil, apperrors.ErrInactiveUser
	}
	return s.issue(user)
}

// RegisterPushToken stores a device token for the user, ignoring duplicates
func (s *AccountService) RegisterPushToken(ctx context.Context, userID uuid.UUID, req *PushTokenRequest) error {
	if err := validateRequest(s.validator, req); err != nil {
		return err
	}
	token := &models.PushToken{UserID: userID, Token: strings.TrimSpace(req.Token), Platform: req.Platform}
	if err := s.pushTokenRepo.Upsert(ctx, token); err != nil {
		return fmt.Errorf("failed to register push token: %w", err)
	}
	return nil
}

func (s *AccountService) provisionGoogleUser(ctx context.Context, email string, identity *auth.Identity) (*models.User, error) {
	password, err := auth.RandomPassword()
	if err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	name := firstNonEmpty(identity.Name, strings.SplitN(email, "@", 2)[0])
	user := &models.User{
		Name:         name,
		Email:        &email,
		PasswordHash: hash,
		Role:         models.UserRolePlayer,
		IsActive:     true,
	}
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		profile := &models.AthleteProfile{UserID: user.ID, Name: name, PhotoURL: identity.Picture}
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("user_id", user.ID).Info("User provisioned from Google")
	return user, nil
}

func (s *AccountService) ensureUnused(ctx context.Context, email, phone string) error {
	if email != "" {
		if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
			return apperrors.ErrUserExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check email: %w", err)
		}
	}
	if phone != "" {
		if _, err := s.userRepo.GetByPhone(ctx, phone); err == nil {
			return apperrors.ErrUserExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check phone: %w", err)
		}
	}
	return nil
}

func (s *AccountService) issue(user *models.User) (*TokenResponse, error) {
	token, expiresAt, err := s.tokens.IssueAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
		User:        toUserResponse(user),
	}, nil
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.EmailValue(),
		Phone:     user.PhoneValue(),
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}
