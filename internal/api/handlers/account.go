package handlers

import (
	"net/http"

	"quemjoga-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles HTTP requests for registration, login and password recovery
type AccountHandler struct {
	accountService service.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService service.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// Register handles POST /auth/register
// @Summary Register a new account
// @Description Create a user from an email or phone and a password, optionally accepting an invite
// @Tags auth
// @Accept json
// @Produce json
// @Param account body service.RegisterRequest true "Account data"
// @Success 201 {object} service.TokenResponse "Account created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Email or phone already registered"
// @Router /auth/register [post]
func (h *AccountHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.accountService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, token)
}

// Login handles POST /auth/login
// @Summary Log in
// @Description Authenticate with an email or phone and a password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Credentials"
// @Success 200 {object} service.TokenResponse "Authenticated"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Invalid credentials or inactive user"
// @Router /auth/login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.accountService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, token)
}

// Me handles GET /auth/me
// @Summary Current user
// @Description Get the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} service.UserResponse "Authenticated user"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AccountHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.accountService.Me(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ForgotPassword handles POST /auth/forgot-password
// @Summary Request a password reset
// @Description Email a reset link. The answer is the same whether or not the email is registered.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.ForgotPasswordRequest true "Account email"
// @Success 200 {object} MessageResponse "Request accepted"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /auth/forgot-password [post]
func (h *AccountHandler) ForgotPassword(c *gin.Context) {
	var req service.ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.accountService.ForgotPassword(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "if the email is registered, a reset link was sent"})
}

// ResetPassword handles POST /auth/reset-password
// @Summary Reset the password
// @Description Set a new password with a reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} MessageResponse "Password changed"
// @Failure 400 {object} ErrorResponse "Invalid or expired token"
// @Router /auth/reset-password [post]
func (h *AccountHandler) ResetPassword(c *gin.Context) {
	var req service.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.accountService.ResetPassword(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "password updated"})
}

// GoogleAuthURL handles GET /auth/google/url
// @Summary Google sign-in URL
// @Description Build the Google consent URL for a redirect URI
// @Tags auth
// @Produce json
// @Param redirect_uri query string true "Redirect URI registered with Google"
// @Success 200 {object} service.GoogleAuthURLResponse "Consent URL and state"
// @Failure 400 {object} ErrorResponse "Missing redirect URI"
// @Failure 503 {object} ErrorResponse "Google sign-in is not configured"
// @Router /auth/google/url [get]
func (h *AccountHandler) GoogleAuthURL(c *gin.Context) {
	redirectURI := c.Query("redirect_uri")
	if redirectURI == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "redirect_uri parameter is required"})
		return
	}

	resp, err := h.accountService.GoogleAuthURL(c.Request.Context(), redirectURI)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GoogleLogin handles POST /auth/google
// @Summary Log in with Google
// @Description Exchange an authorization code for a session, creating the account on first login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.GoogleLoginRequest true "Authorization code and redirect URI"
// @Success 200 {object} service.TokenResponse "Authenticated"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Exchange failed or inactive user"
// @Failure 503 {object} ErrorResponse "Google sign-in is not configured"
// @Router /auth/google [post]
func (h *AccountHandler) GoogleLogin(c *gin.Context) {
	var req service.GoogleLoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.accountService.GoogleLogin(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, token)
}

// RegisterPushToken handles POST /auth/push-token
// @Summary Register a device push token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.PushTokenRequest true "Device token"
// @Success 204 "Token stored"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /auth/push-token [post]
func (h *AccountHandler) RegisterPushToken(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req service.PushTokenRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.accountService.RegisterPushToken(c.Request.Context(), userID, &req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
