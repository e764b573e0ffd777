package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// Identity is the subset of a provider profile used to sign a user in
type Identity struct {
	Email         string `json:"email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	VerifiedEmail bool   `json:"verified_email"`
}

// GoogleClient exchanges Google authorization codes for user identities
type GoogleClient struct {
	config      GoogleConfig
	endpoint    oauth2.Endpoint
	userInfoURL string
}

// NewGoogleClient creates a new Google OAuth client
func NewGoogleClient(config GoogleConfig) *GoogleClient {
	return &GoogleClient{
		config: config,
		endpoint: oauth2.Endpoint{
			AuthURL:  googleAuthURL,
			TokenURL: googleTokenURL,
		},
		userInfoURL: googleUserInfoURL,
	}
}

// Enabled reports whether client credentials are configured
func (c *GoogleClient) Enabled() bool {
	return c.config.ClientID != "" && c.config.ClientSecret != ""
}

// AuthCodeURL builds the consent URL the frontend redirects to
func (c *GoogleClient) AuthCodeURL(state, redirectURI string) string {
	return c.oauthConfig(redirectURI).AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// FetchIdentity exchanges an authorization code and fetches the signed-in profile
func (c *GoogleClient) FetchIdentity(ctx context.Context, code, redirectURI string) (*Identity, error) {
	oauthConfig := c.oauthConfig(redirectURI)

	token, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build userinfo request: %w", err)
	}
	resp, err := oauthConfig.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}

	var identity Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, fmt.Errorf("failed to decode user profile: %w", err)
	}
	if identity.Email == "" {
		return nil, fmt.Errorf("google profile has no email")
	}
	return &identity, nil
}

func (c *GoogleClient) oauthConfig(redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.config.ClientID,
		ClientSecret: c.config.ClientSecret,
		Endpoint:     c.endpoint,
		RedirectURL:  redirectURI,
		Scopes:       []string{"openid", "email", "profile"},
	}
}
