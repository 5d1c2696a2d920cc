// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooWeak    = errors.New("password too weak")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrAlreadyVerified    = errors.New("already verified")
	ErrInvalidVerifyCode  = errors.New("invalid verification code")

	// Token-related errors
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")

	// Company/team-related errors
	ErrCompanyNotFound  = errors.New("company not found")
	ErrTeamNotFound     = errors.New("team not found")
	ErrDuplicateAlias   = errors.New("team alias already exists in company")
	ErrNoRole           = errors.New("user has no role in company")
	ErrInvalidRole      = errors.New("invalid role")
	ErrAccessDenied     = errors.New("access denied")
	ErrLimitExceeded    = errors.New("admin-configured limit exceeded")
	ErrSettingNotFound  = errors.New("admin setting not found")
	ErrDocumentNotFound = errors.New("document not found")

	// Email-related errors
	ErrTemplateNotFound = errors.New("email template not found")

	// Invitation-related errors
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrInvitationHandled  = errors.New("invitation already accepted or declined")

	// Usage-related errors
	ErrInvalidDate = errors.New("invalid day, month, or year combination")
)
