package domain

import "errors"

// User-visible error messages - single source of truth.
// Use these in assert.Equal() checks when testing gateway results.
const (
	// Authorization
	MsgUnauthorized        = "Unauthorized"
	MsgNotFoundOrForbidden = "Not found or forbidden"

	// Ingredient gateway
	MsgIngredientExists = "Ingredient already exists"
	MsgIngredientInUse  = "Ingredient is used by a recipe"
	MsgGetIngredients   = "Get ingredients error"
	MsgCreateIngredient = "Ingredient create error"
	MsgDeleteIngredient = "Delete ingredient error"

	// Recipe gateway
	MsgRecipeRequired    = "Name and at least one ingredient are required."
	MsgUnknownIngredient = "Recipe references an unknown ingredient"
	MsgGetRecipes        = "Get recipes error"
	MsgCreateRecipe      = "Create recipe error"
	MsgUpdateRecipe      = "Updating recipes error"
	MsgDeleteRecipe      = "Deleting recipes error"
	MsgRecipeNotFound    = "Recipe not found"

	// Quantity parsing
	MsgQuantityRequired = "Quantity is required"
	MsgQuantityNaN      = "Quantity must be a number"
	MsgQuantityPositive = "Quantity must be greater than 0"

	// Identity
	MsgPasswordsDontMatch   = "Passwords don't match"
	MsgUserExists           = "User with this email already exists"
	MsgSignupFailed         = "Unexpected error during sign up. Please try again later."
	MsgInvalidCredentials   = "Invalid email or password"
	MsgSignInFailed         = "Failed to sign in. Please try again."
	MsgTooManySignInAttempt = "Too many sign in attempts"
)

// Error kinds. Match with errors.Is(err, domain.ErrXxx).
var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrValidation          = errors.New("validation failed")
	ErrNotFoundOrForbidden = errors.New("not found or forbidden")
	ErrConflict            = errors.New("conflict")
	ErrInternal            = errors.New("internal error")
	ErrRateLimited         = errors.New("rate limited")
)

// Error is the discriminated failure returned by gateways.
// Error() is the message shown to the user; the kind and cause stay internal.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is the kind of this error
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Unauthorized is returned by mutating operations without a session
func Unauthorized() *Error {
	return &Error{Kind: ErrUnauthorized, Message: MsgUnauthorized}
}

// Validation wraps a joined, human-readable validation message
func Validation(message string) *Error {
	return &Error{Kind: ErrValidation, Message: message}
}

// NotFoundOrForbidden deliberately does not say which of the two it is
func NotFoundOrForbidden() *Error {
	return &Error{Kind: ErrNotFoundOrForbidden, Message: MsgNotFoundOrForbidden}
}

// Conflict reports a uniqueness violation
func Conflict(message string) *Error {
	return &Error{Kind: ErrConflict, Message: message}
}

// Internal hides cause behind a generic per-operation message
func Internal(message string, cause error) *Error {
	return &Error{Kind: ErrInternal, Message: message, Cause: cause}
}

// RateLimited reports an exhausted limiter
func RateLimited(message string) *Error {
	return &Error{Kind: ErrRateLimited, Message: message}
}

// MessageOf returns the user-visible message of err, falling back to fallback
// for errors that did not come from a gateway.
func MessageOf(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var de *Error
	if errors.As(err, &de) && de.Message != "" {
		return de.Message
	}
	return fallback
}
