package auth

import (
	"fmt"
	"time"

	"quemjoga-backend/internal/config"
)

// AuthConfig holds the credential settings used by the auth services
type AuthConfig struct {
	JWTSecret      string
	Issuer         string
	AccessTokenTTL time.Duration
	ResetTokenTTL  time.Duration
	Google         GoogleConfig
}

// GoogleConfig holds the OAuth client registered with Google
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
}

// NewAuthConfig derives the auth settings from the application configuration
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret:      cfg.JWTSecret,
		Issuer:         "quemjoga-backend",
		AccessTokenTTL: cfg.AccessTokenTTL(),
		ResetTokenTTL:  cfg.ResetTokenTTL(),
		Google: GoogleConfig{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
		},
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("access token lifetime must be positive")
	}
	if c.ResetTokenTTL <= 0 {
		return fmt.Errorf("reset token lifetime must be positive")
	}
	return nil
}
