package errors

import (
	"fmt"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeAuthMissingCredentials ErrorCode = "AUTH-001"
	ErrCodeAuthLoginFailed        ErrorCode = "AUTH-002"
	ErrCodeAuthRegisterFailed     ErrorCode = "AUTH-003"
	ErrCodeAuthNotLoggedIn        ErrorCode = "AUTH-004"

	// API errors (API-001 to API-099)
	ErrCodeAPIRequest         ErrorCode = "API-001"
	ErrCodeAPIStatus          ErrorCode = "API-002"
	ErrCodeAPIDecode          ErrorCode = "API-003"
	ErrCodeAPIUnexpectedShape ErrorCode = "API-004"

	// Team errors (TEAM-001 to TEAM-099)
	ErrCodeTeamNameRequired ErrorCode = "TEAM-001"
	ErrCodeTeamNotFound     ErrorCode = "TEAM-002"

	// Session errors (SESSION-001 to SESSION-099)
	ErrCodeSessionRead  ErrorCode = "SESSION-001"
	ErrCodeSessionWrite ErrorCode = "SESSION-002"

	// Config errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigRead    ErrorCode = "CONFIG-001"
	ErrCodeConfigWrite   ErrorCode = "CONFIG-002"
	ErrCodeConfigInvalid ErrorCode = "CONFIG-003"
)

// MatchdayError represents an error with a stable code and optional cause
type MatchdayError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface
func (e *MatchdayError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *MatchdayError) Unwrap() error {
	return e.Cause
}

// New creates a new MatchdayError
func New(code ErrorCode, message string) *MatchdayError {
	return &MatchdayError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new MatchdayError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *MatchdayError {
	return &MatchdayError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// NewMissingCredentialsError reports locally-missing login/register input.
func NewMissingCredentialsError() *MatchdayError {
	return New(ErrCodeAuthMissingCredentials, "email and password are required")
}

// NewTeamNameRequiredError reports a missing team name before any request is made.
func NewTeamNameRequiredError() *MatchdayError {
	return New(ErrCodeTeamNameRequired, "team name is required")
}

// NewNotLoggedInError reports that an authenticated operation was attempted
// without a stored session token.
func NewNotLoggedInError() *MatchdayError {
	return New(ErrCodeAuthNotLoggedIn, "not logged in, run 'matchday auth login' first")
}

// NewUnexpectedShapeError reports a response payload that did not match the
// expected schema.
func NewUnexpectedShapeError(endpoint string, cause error) *MatchdayError {
	return Wrap(ErrCodeAPIUnexpectedShape, fmt.Sprintf("unexpected response format from %s", endpoint), cause)
}
