package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/RecipeBook_Go/internal/domain"
	"github.com/osse101/RecipeBook_Go/internal/logger"
)

// Every body carries "success"; failures add a single "error" string.

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SuccessResponse represents a successful operation without a payload
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ItemResponse wraps a single record
type ItemResponse struct {
	Success bool        `json:"success"`
	Item    interface{} `json:"item"`
}

// ListResponse wraps a list of records
type ListResponse struct {
	Success bool        `json:"success"`
	Items   interface{} `json:"items"`
}

// ViewResponse is a projection plus the store state behind it. Error does
// not hide already loaded rows.
type ViewResponse struct {
	Success   bool        `json:"success"`
	View      interface{} `json:"view"`
	IsLoading bool        `json:"isLoading"`
	Error     string      `json:"error,omitempty"`
}

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON encodes into a pooled buffer first so a failed encode never
// leaves a half-written body
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// statusFor maps a gateway error kind onto an HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotFoundOrForbidden):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError writes the user-visible message of err. Gateways
// already logged internal causes, so this only records the outcome.
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := statusFor(err)
	msg := domain.MessageOf(err, ErrMsgGenericServerError)
	logger.FromContext(r.Context()).Debug(LogMsgRequestRejected, "operation", op, "status", status, "error", msg)
	respondError(w, status, msg)
}
