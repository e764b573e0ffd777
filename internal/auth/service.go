package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	apperrors "quemjoga-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenTypeAccess        = "access"
	tokenTypePasswordReset = "password_reset"

	// resetMarkerLength is how many trailing characters of the password hash a reset token pins
	resetMarkerLength = 12
)

// AuthClaims represents access token claims
type AuthClaims struct {
	Type                 string `json:"type" example:"access"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// ResetClaims represents password reset token claims
type ResetClaims struct {
	Type                 string `json:"type"`
	PasswordMarker       string `json:"pwd"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// TokenService issues and verifies signed, time-limited tokens
type TokenService struct {
	config *AuthConfig
	now    func() time.Time
}

// NewTokenService creates a new token service
func NewTokenService(config *AuthConfig) (*TokenService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &TokenService{config: config, now: time.Now}, nil
}

// IssueAccessToken signs an access token for a user and returns it with its expiry
func (s *TokenService) IssueAccessToken(userID uuid.UUID) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.config.AccessTokenTTL)
	claims := &AuthClaims{
		Type: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   userID.String(),
		},
	}

	signed, err := s.sign(claims)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateAccessToken parses an access token and returns the user it was issued to.
// Every failure wraps apperrors.ErrInvalidToken.
func (s *TokenService) ValidateAccessToken(tokenString string) (uuid.UUID, error) {
	claims := &AuthClaims{}
	if err := s.parse(tokenString, claims); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}
	if claims.Type != tokenTypeAccess {
		return uuid.Nil, fmt.Errorf("%w: unexpected token type %q", apperrors.ErrInvalidToken, claims.Type)
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad subject: %v", apperrors.ErrInvalidToken, err)
	}
	return userID, nil
}

// IssueResetToken signs a password reset token bound to the current password hash
func (s *TokenService) IssueResetToken(userID uuid.UUID, passwordHash string) (string, error) {
	now := s.now()
	claims := &ResetClaims{
		Type:           tokenTypePasswordReset,
		PasswordMarker: PasswordMarker(passwordHash),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.ResetTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   userID.String(),
		},
	}
	return s.sign(claims)
}

// ValidateResetToken parses a reset token and returns its user and password marker
func (s *TokenService) ValidateResetToken(tokenString string) (uuid.UUID, string, error) {
	claims := &ResetClaims{}
	if err := s.parse(tokenString, claims); err != nil {
		return uuid.Nil, "", err
	}
	if claims.Type != tokenTypePasswordReset {
		return uuid.Nil, "", fmt.Errorf("invalid token type")
	}
	if claims.PasswordMarker == "" {
		return uuid.Nil, "", fmt.Errorf("invalid token payload")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("invalid token subject: %w", err)
	}
	return userID, claims.PasswordMarker, nil
}

// PasswordMarker returns the fragment of a password hash pinned by reset tokens
func PasswordMarker(passwordHash string) string {
	if len(passwordHash) <= resetMarkerLength {
		return passwordHash
	}
	return passwordHash[len(passwordHash)-resetMarkerLength:]
}

// GenerateState generates a random state parameter for OAuth2
func GenerateState() (string, error) {
	return generateRandomString(32)
}

func (s *TokenService) sign(claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

func (s *TokenService) parse(tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return fmt.Errorf("invalid token")
	}
	return nil
}

// generateRandomString generates a random base64 encoded string
func generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
