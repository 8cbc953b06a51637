package handler

import (
	"net/http"
	"time"

	"github.com/osse101/RecipeBook_Go/internal/auth"
	"github.com/osse101/RecipeBook_Go/internal/logger"
	"github.com/osse101/RecipeBook_Go/internal/store"
	"github.com/osse101/RecipeBook_Go/internal/validation"
)

// CookieConfig describes the session cookie set on sign-in
type CookieConfig struct {
	Name   string
	Secure bool
}

func (c CookieConfig) set(w http.ResponseWriter, value string, expires time.Time) {
	if c.Name == "" {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c CookieConfig) clear(w http.ResponseWriter) {
	if c.Name == "" {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// HandleSignUp registers an account
func HandleSignUp(svc auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form validation.SignupForm
		if !decodeJSON(w, r, &form, "Sign up") {
			return
		}

		user, err := svc.SignUp(r.Context(), form)
		if err != nil {
			respondServiceError(w, r, "signup", err)
			return
		}
		respondJSON(w, http.StatusCreated, ItemResponse{Success: true, Item: user})
	}
}

// HandleSignIn exchanges credentials for a session token. The token is
// returned in the body and, when configured, as a cookie.
func HandleSignIn(svc auth.Service, cookie CookieConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds validation.Credentials
		if !decodeJSON(w, r, &creds, "Sign in") {
			return
		}

		token, err := svc.SignIn(r.Context(), creds)
		if err != nil {
			respondServiceError(w, r, "signin", err)
			return
		}
		cookie.set(w, token.Value, token.ExpiresAt)
		respondJSON(w, http.StatusOK, ItemResponse{Success: true, Item: token})
	}
}

// HandleSignOut revokes the session and drops its cached stores
func HandleSignOut(svc auth.Service, reg *store.Registry, cookie CookieConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if identity := auth.IdentityFromContext(r.Context()); identity != nil {
			reg.Drop(identity.SessionID)
		}
		if err := svc.SignOut(r.Context(), auth.TokenFromRequest(r, cookie.Name)); err != nil {
			logger.FromContext(r.Context()).Warn("Sign out failed", "error", err)
		}
		cookie.clear(w)
		respondJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: MsgSignedOut})
	}
}

// HandleSession reports the current session. Anonymous requests get the
// unauthenticated session, never an error.
func HandleSession(svc auth.Service, cookie CookieConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := svc.Session(r.Context(), auth.TokenFromRequest(r, cookie.Name))
		respondJSON(w, http.StatusOK, ItemResponse{Success: true, Item: session})
	}
}
