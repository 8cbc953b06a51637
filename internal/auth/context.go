package auth

import (
	"context"

	"github.com/osse101/RecipeBook_Go/internal/domain"
)

type contextKey struct{}

// WithIdentity attaches the authenticated requester to ctx
func WithIdentity(ctx context.Context, identity *domain.Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, identity)
}

// IdentityFromContext returns the requester, or nil for anonymous requests
func IdentityFromContext(ctx context.Context) *domain.Identity {
	identity, _ := ctx.Value(contextKey{}).(*domain.Identity)
	return identity
}
