package cli

import (
	"errors"
	"fmt"

	"github.com/osse101/RecipeBook_Go/internal/domain"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Server or transport failure
	ExitCommandError = 2 // Bad flags or arguments, rejected input
	ExitUnauthorized = 3 // Not signed in, or the session expired
	ExitNotFound     = 4 // Missing or not visible to you
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// GetExitCode extracts the exit code from an error.
// Domain error kinds map onto their own codes; anything else is ExitFailure.
func GetExitCode(err error) int {
	var exitErr *ExitError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, domain.ErrUnauthorized):
		return ExitUnauthorized
	case errors.Is(err, domain.ErrNotFoundOrForbidden):
		return ExitNotFound
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrConflict):
		return ExitCommandError
	default:
		return ExitFailure
	}
}
