package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/osse101/RecipeBook_Go/internal/logger"
)

// decodeJSON decodes the body into dst. When it returns false the response
// has already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, action string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgDecodeFailed, "action", action, "error", err)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgRequestTooLarge)
			return false
		}
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return false
	}
	return true
}

// readForm returns the url-encoded body fields
func readForm(w http.ResponseWriter, r *http.Request, action string) (url.Values, bool) {
	if err := r.ParseForm(); err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgDecodeFailed, "action", action, "error", err)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgRequestTooLarge)
			return nil, false
		}
		respondError(w, http.StatusBadRequest, ErrMsgInvalidForm)
		return nil, false
	}
	return r.PostForm, true
}

// queryInt reads an optional non-negative integer query parameter
func queryInt(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return 0, false
	}
	return n, true
}

// queryBool is true for "1" and "true"
func queryBool(r *http.Request, name string) bool {
	b, _ := strconv.ParseBool(r.URL.Query().Get(name))
	return b
}
