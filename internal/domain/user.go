package domain

import "time"

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Identity is the authenticated requester
type Identity struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	SessionID string `json:"-"`
}

// AuthStatus is the lifecycle state of a session
type AuthStatus string

const (
	AuthStatusLoading         AuthStatus = "loading"
	AuthStatusAuthenticated   AuthStatus = "authenticated"
	AuthStatusUnauthenticated AuthStatus = "unauthenticated"
)

// Session is what the identity provider reports about the current requester
type Session struct {
	UserID *string    `json:"userId"`
	Email  *string    `json:"email"`
	Status AuthStatus `json:"status"`
}

// Authenticated reports whether the session carries a user
func (s Session) Authenticated() bool {
	return s.Status == AuthStatusAuthenticated && s.UserID != nil
}

// Identity returns the requester identity, or nil for anonymous sessions
func (s Session) Identity() *Identity {
	if !s.Authenticated() {
		return nil
	}
	id := &Identity{UserID: *s.UserID}
	if s.Email != nil {
		id.Email = *s.Email
	}
	return id
}

// AnonymousSession is the unauthenticated session
func AnonymousSession() Session {
	return Session{Status: AuthStatusUnauthenticated}
}

// SessionFor builds an authenticated session for identity
func SessionFor(identity Identity) Session {
	userID, email := identity.UserID, identity.Email
	return Session{UserID: &userID, Email: &email, Status: AuthStatusAuthenticated}
}

// Owned is implemented by every record that has at most one owner.
// A nil owner is a legacy record that nobody may modify.
type Owned interface {
	OwnerID() *string
}
