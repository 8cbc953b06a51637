package handler

// Generic HTTP error messages for client responses.
// Handlers and tests reference these constants.
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgInvalidRequest     = "Invalid request body"
	ErrMsgInvalidForm        = "Invalid form data"
	ErrMsgRequestTooLarge    = "Request body too large"
	ErrMsgInvalidLimit       = "Invalid limit parameter"
	ErrMsgRecipeNotFound     = "Recipe not found"
)

// Success messages
const (
	MsgSignedOut         = "Signed out"
	MsgIngredientDeleted = "Ingredient deleted"
	MsgRecipeDeleted     = "Recipe deleted"
)

// Log messages
const (
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgRequestRejected = "Request rejected"
	LogMsgDecodeFailed    = "Failed to decode request"
	LogMsgReadyzFailed    = "Readiness check failed"
)

// Headers and query parameters
const (
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"

	ParamID      = "id"
	QueryLimit   = "limit"
	QuerySearch  = "q"
	QuerySort    = "sort"
	QueryDir     = "dir"
	QueryFilter  = "filter"
	QueryRefresh = "refresh"
)
