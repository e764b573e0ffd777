package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a business rule or input violation
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
	ErrGroupNotFound      = &NotFoundError{Entity: "group"}
	ErrMemberNotFound     = &NotFoundError{Entity: "member"}
	ErrMatchNotFound      = &NotFoundError{Entity: "match"}
	ErrAttendanceNotFound = &NotFoundError{Entity: "attendance"}
	ErrPaymentNotFound    = &NotFoundError{Entity: "payment"}
	ErrCardNotFound       = &NotFoundError{Entity: "card"}
	ErrTeamNotFound       = &NotFoundError{Entity: "team"}
	ErrTeamMemberNotFound = &NotFoundError{Entity: "team member"}
	ErrInviteNotFound     = &NotFoundError{Entity: "invite"}
	ErrPhotoNotFound      = &NotFoundError{Entity: "photo"}
)

// Already Exists Errors
var (
	ErrUserExists       = &AlreadyExistsError{Entity: "user", Context: "with this email or phone"}
	ErrTeamMemberExists = &AlreadyExistsError{Entity: "team member", Context: "in this team"}
)

// Business Logic Errors
var (
	ErrMemberLimitReached       = &ValidationError{Field: "members", Message: "group reached its maximum number of members"}
	ErrAdminLimitReached        = &ValidationError{Field: "is_admin", Message: "group reached its maximum number of admins"}
	ErrMemberNotInGroup         = &ValidationError{Field: "member_id", Message: "member does not belong to this group"}
	ErrMatchNotInGroup          = &ValidationError{Field: "match_id", Message: "match does not belong to the member's group"}
	ErrTeamNotInGroup           = &ValidationError{Field: "team_id", Message: "team does not belong to this group"}
	ErrNoMatchForCard           = &ValidationError{Field: "match_id", Message: "group has no match to attach the card to"}
	ErrMatchCanceled            = &ValidationError{Field: "match_id", Message: "match is canceled"}
	ErrInvalidPaymentTransition = &ValidationError{Field: "status", Message: "payment cannot move to the requested status"}
	ErrDuesNotConfigured        = &ValidationError{Field: "dues_amount", Message: "group has no dues amount configured"}
	ErrInviteNotPending         = &ValidationError{Field: "token", Message: "invite is no longer pending"}
	ErrInviteExpired            = &ValidationError{Field: "token", Message: "invite has expired"}
	ErrContactRequired          = &ValidationError{Field: "email", Message: "email or phone is required"}
	ErrUnsupportedFileType      = &ValidationError{Field: "file", Message: "file extension is not allowed"}
	ErrFileTooLarge             = &ValidationError{Field: "file", Message: "file exceeds the maximum upload size"}
	ErrInvalidResetToken        = &ValidationError{Field: "token", Message: "invalid or expired reset token"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid credentials"}
	ErrInactiveUser       = &AuthenticationError{Message: "user is inactive"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
	ErrOAuthExchange      = &AuthenticationError{Message: "could not authenticate with the identity provider"}
)

// Authorization Errors
var (
	ErrNotGroupMember = &AuthorizationError{Message: "access to this group is not allowed"}
	ErrNotGroupAdmin  = &AuthorizationError{Message: "only group admins can perform this action"}
)

// Configuration Errors
var (
	ErrOAuthNotConfigured = &ConfigurationError{Message: "google sign-in is not configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// HTTPStatus classifies an error into the status code returned to clients
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsNotFound(err):
		return http.StatusNotFound
	case IsAlreadyExists(err):
		return http.StatusConflict
	case IsValidation(err):
		return http.StatusBadRequest
	case IsAuthentication(err):
		return http.StatusUnauthorized
	case IsAuthorization(err):
		return http.StatusForbidden
	case IsConfiguration(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
