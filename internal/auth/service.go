// Package auth is the identity provider: account creation, password
// sign-in, signed session tokens and their revocation.
package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/osse101/RecipeBook_Go/internal/domain"
	"github.com/osse101/RecipeBook_Go/internal/event"
	"github.com/osse101/RecipeBook_Go/internal/logger"
	"github.com/osse101/RecipeBook_Go/internal/metrics"
	"github.com/osse101/RecipeBook_Go/internal/repository"
	"github.com/osse101/RecipeBook_Go/internal/validation"
)

// Service defines the interface for identity operations
type Service interface {
	SignUp(ctx context.Context, form validation.SignupForm) (*domain.User, error)
	SignIn(ctx context.Context, creds validation.Credentials) (*Token, error)
	// SignOut revokes the session. Unknown or expired tokens are ignored.
	SignOut(ctx context.Context, token string) error
	// Session reports the session for token; invalid tokens are anonymous
	Session(ctx context.Context, token string) domain.Session
	// Resolve returns the identity carried by a live token
	Resolve(ctx context.Context, token string) (*domain.Identity, bool)
}

// Config configures the identity provider
type Config struct {
	Secret             []byte
	SessionTTL         time.Duration
	LoginRatePerMinute int
}

type service struct {
	repo     repository.User
	bus      event.Bus
	tokens   *tokenIssuer
	revoked  *expirable.LRU[string, struct{}]
	perMin   int

	limiterMu sync.Mutex
	limiters  *expirable.LRU[string, *rate.Limiter]
}

// NewService creates a new identity provider. bus may be nil.
func NewService(repo repository.User, bus event.Bus, cfg Config) Service {
	return newService(repo, bus, cfg, time.Now)
}

func newService(repo repository.User, bus event.Bus, cfg Config, now func() time.Time) *service {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSession
	}
	return &service{
		repo:     repo,
		bus:      bus,
		tokens:   &tokenIssuer{secret: cfg.Secret, ttl: ttl, now: now},
		revoked:  expirable.NewLRU[string, struct{}](DefaultRevocationCacheSize, nil, ttl),
		limiters: expirable.NewLRU[string, *rate.Limiter](DefaultLimiterCacheSize, nil, LimiterIdleTTL),
		perMin:   cfg.LoginRatePerMinute,
	}
}

func (s *service) SignUp(ctx context.Context, form validation.SignupForm) (*domain.User, error) {
	log := logger.FromContext(ctx)

	creds, err := validation.ValidateSignup(form)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), BcryptCost)
	if err != nil {
		log.Error(LogMsgHashFailed, "error", err)
		return nil, domain.Internal(domain.MsgSignupFailed, err)
	}

	// The unique email index is the only duplicate check
	user, err := s.repo.CreateUser(ctx, creds.Email, string(hash))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.Conflict(domain.MsgUserExists)
		}
		log.Error(LogMsgSignUpFailed, "error", err)
		return nil, domain.Internal(domain.MsgSignupFailed, err)
	}

	if s.bus != nil {
		event.PublishBestEffort(ctx, s.bus, event.NewSessionEvent(event.UserSignedUp, user.ID, ""))
	}
	return user, nil
}

func (s *service) SignIn(ctx context.Context, creds validation.Credentials) (*Token, error) {
	log := logger.FromContext(ctx)

	creds, err := validation.ValidateCredentials(creds)
	if err != nil {
		return nil, err
	}

	if !s.allow(creds.Email) {
		log.Warn(LogMsgSignInLimited, "email", creds.Email)
		metrics.SignInAttempts.WithLabelValues(metrics.ResultRateLimited).Inc()
		return nil, domain.RateLimited(domain.MsgTooManySignInAttempt)
	}

	user, err := s.repo.GetUserByEmail(ctx, creds.Email)
	if err != nil {
		metrics.SignInAttempts.WithLabelValues(metrics.ResultFailure).Inc()
		if errors.Is(err, repository.ErrNotFound) {
			return nil, invalidCredentials()
		}
		log.Error(LogMsgSignInFailed, "error", err)
		return nil, domain.Internal(domain.MsgSignInFailed, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		metrics.SignInAttempts.WithLabelValues(metrics.ResultFailure).Inc()
		return nil, invalidCredentials()
	}

	token, err := s.tokens.issue(user.ID, user.Email)
	if err != nil {
		log.Error(LogMsgTokenIssueFail, "error", err)
		metrics.SignInAttempts.WithLabelValues(metrics.ResultFailure).Inc()
		return nil, domain.Internal(domain.MsgSignInFailed, err)
	}

	metrics.SignInAttempts.WithLabelValues(metrics.ResultSuccess).Inc()
	return token, nil
}

func (s *service) SignOut(ctx context.Context, token string) error {
	identity, ok := s.Resolve(ctx, token)
	if !ok {
		return nil
	}
	s.revoked.Add(identity.SessionID, struct{}{})
	logger.FromContext(ctx).Info(LogMsgSignedOut, "user_id", identity.UserID)

	if s.bus != nil {
		event.PublishBestEffort(ctx, s.bus, event.NewSessionEvent(event.UserSignedOut, identity.UserID, identity.SessionID))
	}
	return nil
}

func (s *service) Session(ctx context.Context, token string) domain.Session {
	identity, ok := s.Resolve(ctx, token)
	if !ok {
		return domain.AnonymousSession()
	}
	return domain.SessionFor(*identity)
}

func (s *service) Resolve(ctx context.Context, token string) (*domain.Identity, bool) {
	if token == "" {
		return nil, false
	}
	claims, err := s.tokens.parse(token)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgTokenRejected, "error", err)
		return nil, false
	}
	if s.revoked.Contains(claims.ID) {
		return nil, false
	}
	return &domain.Identity{UserID: claims.Subject, Email: claims.Email, SessionID: claims.ID}, true
}

// allow applies the per-email sign in limiter. A non-positive rate disables it.
func (s *service) allow(email string) bool {
	if s.perMin <= 0 {
		return true
	}
	return s.limiterFor(email).Allow()
}

// limiterFor returns the limiter for email, creating it under the lock so
// concurrent first attempts share one bucket
func (s *service) limiterFor(email string) *rate.Limiter {
	s.limiterMu.Lock()
	defer s.limiterMu.Unlock()
	limiter, ok := s.limiters.Get(email)
	if !ok {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.perMin)), s.perMin)
		s.limiters.Add(email, limiter)
	}
	return limiter
}

func invalidCredentials() *domain.Error {
	return &domain.Error{Kind: domain.ErrUnauthorized, Message: domain.MsgInvalidCredentials}
}
