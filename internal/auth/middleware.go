package auth

import (
	"net/http"
	"strings"
)

// TokenFromRequest returns the bearer token, falling back to the session cookie
func TokenFromRequest(r *http.Request, cookieName string) string {
	if h := r.Header.Get(HeaderAuth); strings.HasPrefix(h, BearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(h, BearerPrefix))
	}
	if cookieName == "" {
		return ""
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}

// Middleware resolves the session on every request. Requests without a
// live session continue anonymously; gateways decide what that allows.
func Middleware(svc Service, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r, cookieName)
			if identity, ok := svc.Resolve(r.Context(), token); ok {
				r = r.WithContext(WithIdentity(r.Context(), identity))
			}
			next.ServeHTTP(w, r)
		})
	}
}
