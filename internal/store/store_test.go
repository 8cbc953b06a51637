package store

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RecipeBook_Go/internal/domain"
	"github.com/osse101/RecipeBook_Go/internal/testing/leaktest"
	"github.com/osse101/RecipeBook_Go/internal/validation"
)

// fakeIngredients is a scripted IngredientGateway
type fakeIngredients struct {
	mu       sync.Mutex
	items    []domain.Ingredient
	listErr  error
	writeErr error
	gate     chan struct{} // when set, List blocks until it is closed
}

func (f *fakeIngredients) List(ctx context.Context) ([]domain.Ingredient, error) {
	f.mu.Lock()
	gate, items, err := f.gate, append([]domain.Ingredient(nil), f.items...), f.listErr
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return items, err
}

func (f *fakeIngredients) Create(_ context.Context, form validation.IngredientForm) (*domain.Ingredient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	it := domain.Ingredient{ID: form.Name, Name: form.Name}
	f.items = append(f.items, it)
	return &it, nil
}

func (f *fakeIngredients) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writeErr
}

// fakeRecipes is a scripted RecipeGateway
type fakeRecipes struct {
	items  []domain.Recipe
	err    error
	update func(id string) (*domain.Recipe, error)
}

func (f *fakeRecipes) List(context.Context) ([]domain.Recipe, error) { return f.items, f.err }

func (f *fakeRecipes) Create(_ context.Context, form url.Values) (*domain.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Recipe{ID: form.Get("name"), Name: form.Get("name")}, nil
}

func (f *fakeRecipes) Update(_ context.Context, id string, form url.Values) (*domain.Recipe, error) {
	if f.update != nil {
		return f.update(id)
	}
	return &domain.Recipe{ID: id, Name: form.Get("name")}, nil
}

func (f *fakeRecipes) Delete(context.Context, string) error { return f.err }

func ids[T any](items []T, idOf func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = idOf(it)
	}
	return out
}

func ingredientIDs(s *IngredientStore) []string {
	items, _ := s.Items()
	return ids(items, func(i domain.Ingredient) string { return i.ID })
}

func TestIngredientStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	gw := &fakeIngredients{items: []domain.Ingredient{{ID: "salt"}}}
	s := NewIngredientStore(gw)

	items, loaded := s.Items()
	assert.False(t, loaded, "never loaded")
	assert.Nil(t, items)

	res := s.Load(ctx)
	require.True(t, res.Success)
	assert.Equal(t, []string{"salt"}, ingredientIDs(s))
	assert.False(t, s.IsLoading())

	add := s.Add(ctx, validation.IngredientForm{Name: "pepper"})
	require.True(t, add.Success)
	assert.Equal(t, "pepper", add.Item.ID)
	assert.Equal(t, []string{"salt", "pepper"}, ingredientIDs(s))

	rm := s.Remove(ctx, "salt")
	require.True(t, rm.Success)
	assert.Equal(t, []string{"pepper"}, ingredientIDs(s))

	s.Reset()
	_, loaded = s.Items()
	assert.False(t, loaded)
	assert.Empty(t, s.Err())
}

func TestIngredientStore_AddSeedsNeverLoaded(t *testing.T) {
	s := NewIngredientStore(&fakeIngredients{})
	res := s.Add(context.Background(), validation.IngredientForm{Name: "basil"})
	require.True(t, res.Success)
	items, loaded := s.Items()
	assert.True(t, loaded)
	assert.Len(t, items, 1)
}

func TestIngredientStore_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("load failure leaves an empty loaded list", func(t *testing.T) {
		s := NewIngredientStore(&fakeIngredients{listErr: domain.Internal(domain.MsgGetIngredients, errors.New("boom"))})
		res := s.Load(ctx)
		assert.False(t, res.Success)
		assert.Equal(t, domain.MsgGetIngredients, res.Error)
		items, loaded := s.Items()
		assert.True(t, loaded)
		assert.Empty(t, items)
		assert.Equal(t, domain.MsgGetIngredients, s.Err())
	})

	t.Run("failed remove keeps items", func(t *testing.T) {
		gw := &fakeIngredients{items: []domain.Ingredient{{ID: "salt"}}}
		s := NewIngredientStore(gw)
		s.Load(ctx)
		gw.writeErr = domain.NotFoundOrForbidden()

		res := s.Remove(ctx, "salt")
		assert.False(t, res.Success)
		assert.Equal(t, domain.MsgNotFoundOrForbidden, res.Error)
		assert.Equal(t, []string{"salt"}, ingredientIDs(s))
		assert.Equal(t, domain.MsgNotFoundOrForbidden, s.Err())
	})

	t.Run("failed add is not appended", func(t *testing.T) {
		gw := &fakeIngredients{}
		s := NewIngredientStore(gw)
		s.Load(ctx)
		gw.writeErr = errors.New("plain error")

		res := s.Add(ctx, validation.IngredientForm{Name: "x"})
		assert.False(t, res.Success)
		assert.Equal(t, domain.MsgCreateIngredient, res.Error, "errors without a message fall back")
		assert.Empty(t, ingredientIDs(s))
	})

	t.Run("next action clears the error", func(t *testing.T) {
		gw := &fakeIngredients{writeErr: domain.Unauthorized()}
		s := NewIngredientStore(gw)
		s.Add(ctx, validation.IngredientForm{Name: "x"})
		require.Equal(t, domain.MsgUnauthorized, s.Err())

		gw.writeErr = nil
		s.Add(ctx, validation.IngredientForm{Name: "x"})
		assert.Empty(t, s.Err())
	})
}

func TestCollection_LoadFencing(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	ctx := context.Background()

	slow := &fakeIngredients{items: []domain.Ingredient{{ID: "stale"}}, gate: make(chan struct{})}
	fast := &fakeIngredients{items: []domain.Ingredient{{ID: "fresh"}}}
	s := NewIngredientStore(slow)

	done := make(chan Result[[]domain.Ingredient])
	go func() { done <- s.Load(ctx) }()
	require.Eventually(t, s.IsLoading, timeout, tick)

	// a newer load through another gateway wins
	s.gw = fast
	s.Load(ctx)
	close(slow.gate)
	<-done

	assert.Equal(t, []string{"fresh"}, ingredientIDs(s))
	assert.False(t, s.IsLoading())
	checker.Check(0)
}

func TestCollection_ResetFencesInFlightLoad(t *testing.T) {
	ctx := context.Background()
	gw := &fakeIngredients{items: []domain.Ingredient{{ID: "private"}}, gate: make(chan struct{})}
	s := NewIngredientStore(gw)

	done := make(chan struct{})
	go func() {
		s.Load(ctx)
		close(done)
	}()
	require.Eventually(t, s.IsLoading, timeout, tick)

	s.Reset()
	close(gw.gate)
	<-done

	_, loaded := s.Items()
	assert.False(t, loaded, "a load started before reset must not repopulate")
	assert.False(t, s.IsLoading())
}

func TestRecipeStore_Update(t *testing.T) {
	ctx := context.Background()
	gw := &fakeRecipes{items: []domain.Recipe{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}}
	s := NewRecipeStore(gw)
	s.Load(ctx)

	res := s.Update(ctx, "a", url.Values{"name": {"A2"}})
	require.True(t, res.Success)
	items, _ := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "A2", items[0].Name, "replaced in place")

	res = s.Update(ctx, "z", url.Values{"name": {"Z"}})
	require.True(t, res.Success, "result passes through even when the cache lacks the id")
	items, _ = s.Items()
	assert.Len(t, items, 3)

	gw.update = func(string) (*domain.Recipe, error) { return nil, domain.NotFoundOrForbidden() }
	res = s.Update(ctx, "b", url.Values{"name": {"B2"}})
	assert.False(t, res.Success)
	items, _ = s.Items()
	assert.Equal(t, "B", items[1].Name)
}

func TestRecipeStore_AddAndRemove(t *testing.T) {
	ctx := context.Background()
	gw := &fakeRecipes{}
	s := NewRecipeStore(gw)
	s.Load(ctx)

	require.True(t, s.Add(ctx, url.Values{"name": {"Soup"}}).Success)
	require.True(t, s.Remove(ctx, "Soup").Success)
	items, loaded := s.Items()
	assert.True(t, loaded)
	assert.Empty(t, items)

	gw.err = domain.Unauthorized()
	res := s.Add(ctx, url.Values{"name": {"Stew"}})
	assert.Equal(t, domain.MsgUnauthorized, res.Error)
}
