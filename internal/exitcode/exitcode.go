package exitcode

import (
	stderrors "errors"
	"net/http"
	"os"

	"github.com/matchdaycli/matchday/internal/api"
	"github.com/matchdaycli/matchday/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates an authentication failure
	AuthError = 3

	// NetworkError indicates a backend or connectivity failure
	NetworkError = 4

	// Interrupted indicates the user cancelled the operation
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	var apiErr *api.Error
	if stderrors.As(err, &apiErr) {
		if apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden {
			return AuthError
		}
		return NetworkError
	}

	var mdErr *errors.MatchdayError
	if stderrors.As(err, &mdErr) {
		switch mdErr.Code {
		case errors.ErrCodeAuthMissingCredentials,
			errors.ErrCodeAuthLoginFailed,
			errors.ErrCodeAuthRegisterFailed,
			errors.ErrCodeAuthNotLoggedIn:
			return AuthError
		case errors.ErrCodeAPIRequest, errors.ErrCodeAPIStatus,
			errors.ErrCodeAPIDecode, errors.ErrCodeAPIUnexpectedShape:
			return NetworkError
		case errors.ErrCodeConfigInvalid, errors.ErrCodeTeamNameRequired:
			return UsageError
		}
	}

	return GeneralError
}
