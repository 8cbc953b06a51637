package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RecipeBook_Go/internal/auth"
	"github.com/osse101/RecipeBook_Go/internal/domain"
	"github.com/osse101/RecipeBook_Go/internal/store"
	"github.com/osse101/RecipeBook_Go/internal/validation"
)

// MockAuthService mocks auth.Service
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SignUp(ctx context.Context, form validation.SignupForm) (*domain.User, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) SignIn(ctx context.Context, creds validation.Credentials) (*auth.Token, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Token), args.Error(1)
}

func (m *MockAuthService) SignOut(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockAuthService) Session(ctx context.Context, token string) domain.Session {
	return m.Called(ctx, token).Get(0).(domain.Session)
}

func (m *MockAuthService) Resolve(ctx context.Context, token string) (*domain.Identity, bool) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Identity), args.Bool(1)
}

// MockRecipeService mocks recipe.Service
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) recipeOrNil(args mock.Arguments) (*domain.Recipe, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *MockRecipeService) List(ctx context.Context) ([]domain.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *MockRecipeService) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	return m.recipeOrNil(m.Called(ctx, id))
}

func (m *MockRecipeService) Create(ctx context.Context, form url.Values) (*domain.Recipe, error) {
	return m.recipeOrNil(m.Called(ctx, form))
}

func (m *MockRecipeService) Update(ctx context.Context, id string, form url.Values) (*domain.Recipe, error) {
	return m.recipeOrNil(m.Called(ctx, id, form))
}

func (m *MockRecipeService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRecipeService) ListPublic(ctx context.Context, limit int) ([]domain.Recipe, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *MockRecipeService) GetPublicByID(ctx context.Context, id string) (*domain.Recipe, error) {
	return m.recipeOrNil(m.Called(ctx, id))
}

func (m *MockRecipeService) ListPublicIDs(ctx context.Context, limit int) ([]string, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockIngredientGateway mocks store.IngredientGateway
type MockIngredientGateway struct {
	mock.Mock
}

func (m *MockIngredientGateway) List(ctx context.Context) ([]domain.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ingredient), args.Error(1)
}

func (m *MockIngredientGateway) Create(ctx context.Context, form validation.IngredientForm) (*domain.Ingredient, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ingredient), args.Error(1)
}

func (m *MockIngredientGateway) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// newRegistry builds a registry whose containers share the given mocks.
// A nil gateway gets a fresh mock with no expectations.
func newRegistry(ing store.IngredientGateway, rec store.RecipeGateway) *store.Registry {
	if ing == nil {
		ing = &MockIngredientGateway{}
	}
	if rec == nil {
		rec = &MockRecipeService{}
	}
	return store.NewRegistry(8, time.Minute, func() *store.Container {
		return store.NewContainer(ing, rec)
	})
}

// signedIn attaches an identity, as auth.Middleware would
func signedIn(r *http.Request, userID string) *http.Request {
	identity := &domain.Identity{UserID: userID, Email: userID + "@example.com", SessionID: "sess-" + userID}
	return r.WithContext(auth.WithIdentity(r.Context(), identity))
}

// withParam sets a chi URL parameter on r
func withParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func strPtr(s string) *string { return &s }
