package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RecipeBook_Go/internal/auth"
	"github.com/osse101/RecipeBook_Go/internal/domain"
	"github.com/osse101/RecipeBook_Go/internal/handler"
	"github.com/osse101/RecipeBook_Go/internal/recipe"
	"github.com/osse101/RecipeBook_Go/internal/store"
	"github.com/osse101/RecipeBook_Go/internal/validation"
)

const goodToken = "good-token"

// stubAuth accepts exactly one token
type stubAuth struct {
	auth.Service
}

func (stubAuth) Resolve(_ context.Context, token string) (*domain.Identity, bool) {
	if token != goodToken {
		return nil, false
	}
	return &domain.Identity{UserID: "u1", Email: "u1@example.com", SessionID: "s1"}, true
}

// stubIngredients lists one ingredient to signed-in requesters
type stubIngredients struct{}

func (stubIngredients) List(ctx context.Context) ([]domain.Ingredient, error) {
	if auth.IdentityFromContext(ctx) == nil {
		return nil, domain.Unauthorized()
	}
	return []domain.Ingredient{{ID: "i1", Name: "Tomato"}}, nil
}

func (stubIngredients) Create(context.Context, validation.IngredientForm) (*domain.Ingredient, error) {
	return nil, domain.Unauthorized()
}

func (stubIngredients) Delete(context.Context, string) error { return domain.Unauthorized() }

// stubRecipes serves an empty public catalog
type stubRecipes struct {
	recipe.Service
}

func (stubRecipes) ListPublic(context.Context, int) ([]domain.Recipe, error) {
	return []domain.Recipe{}, nil
}

type okPool struct{}

func (okPool) Ping(context.Context) error { return nil }
func (okPool) Close()                     {}

func newTestRouter(t *testing.T) (http.Handler, *store.Registry) {
	t.Helper()
	recipes := stubRecipes{}
	reg := store.NewRegistry(8, time.Minute, func() *store.Container {
		return store.NewContainer(stubIngredients{}, recipes)
	})
	router := NewRouter(Options{
		AllowedOrigins: []string{"https://recipes.example.com"},
		RateLimitRPS:   100,
		RateLimitBurst: 100,
		Cookie:         handler.CookieConfig{Name: "session"},
	}, Dependencies{
		DBPool:   okPool{},
		Auth:     stubAuth{},
		Recipes:  recipes,
		Sessions: reg,
	})
	return router, reg
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
}

func TestRouter_SessionResolution(t *testing.T) {
	router, reg := newTestRouter(t)

	t.Run("Anonymous", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ingredients", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, 0, reg.Len())
	})

	t.Run("Bearer Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ingredients", nil)
		req.Header.Set(HeaderAuthorization, auth.BearerPrefix+goodToken)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Tomato")
		assert.Equal(t, 1, reg.Len())
	})

	t.Run("Cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ingredients", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: goodToken})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouter_PublicCatalog(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"items":[]}`, rec.Body.String())
}

func TestRouter_CORS(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/recipes", nil)
	req.Header.Set("Origin", "https://recipes.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "https://recipes.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/recipes", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
