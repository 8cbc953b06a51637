package handler

import (
	"net/http"

	"github.com/osse101/RecipeBook_Go/internal/auth"
	"github.com/osse101/RecipeBook_Go/internal/domain"
	"github.com/osse101/RecipeBook_Go/internal/store"
)

// containerFor returns the store container behind r. Signed-in requests
// share one container per session; anonymous ones get a throwaway.
func containerFor(reg *store.Registry, r *http.Request) *store.Container {
	identity := auth.IdentityFromContext(r.Context())
	if identity == nil {
		return reg.Transient()
	}
	c := reg.Get(identity.SessionID)
	c.SetSession(domain.SessionFor(*identity))
	return c
}
