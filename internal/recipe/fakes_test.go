package recipe

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/RecipeBook_Go/internal/domain"
	"github.com/osse101/RecipeBook_Go/internal/repository"
)

var errConnection = errors.New("connection refused")

// fakeRepo is an in-memory repository.Recipe whose transactions work on a
// copy of the table and swap it in on commit.
type fakeRepo struct {
	mu          sync.Mutex
	recipes     map[string]domain.Recipe
	ingredients map[string]domain.Ingredient
	failAll     bool
	failCommit  bool
	reads       int
	writes      int
}

func newFakeRepo(ingredientIDs ...string) *fakeRepo {
	f := &fakeRepo{
		recipes:     make(map[string]domain.Recipe),
		ingredients: make(map[string]domain.Ingredient),
	}
	for _, id := range ingredientIDs {
		f.ingredients[id] = domain.Ingredient{ID: id, Name: id}
	}
	return f
}

func (f *fakeRepo) sorted(keep func(domain.Recipe) bool) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(f.recipes))
	for _, r := range f.recipes {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (f *fakeRepo) ListRecipesVisible(_ context.Context, viewerID *string) ([]domain.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.failAll {
		return nil, errConnection
	}
	return f.sorted(func(r domain.Recipe) bool {
		return r.IsPublic || (viewerID != nil && r.AuthorID != nil && *r.AuthorID == *viewerID)
	}), nil
}

func (f *fakeRepo) ListPublicRecipes(_ context.Context, limit int) ([]domain.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.failAll {
		return nil, errConnection
	}
	out := f.sorted(func(r domain.Recipe) bool { return r.IsPublic })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRepo) ListPublicRecipeIDs(ctx context.Context, limit int) ([]string, error) {
	recipes, err := f.ListPublicRecipes(ctx, limit)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(recipes))
	for i, r := range recipes {
		ids[i] = r.ID
	}
	return ids, nil
}

func (f *fakeRepo) GetRecipe(_ context.Context, id string) (*domain.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.failAll {
		return nil, errConnection
	}
	r, ok := f.recipes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &r, nil
}

func (f *fakeRepo) DeleteRecipeOwned(_ context.Context, id, authorID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if f.failAll {
		return 0, errConnection
	}
	r, ok := f.recipes[id]
	if !ok || r.AuthorID == nil || *r.AuthorID != authorID {
		return 0, nil
	}
	delete(f.recipes, id)
	return 1, nil
}

func (f *fakeRepo) BeginTx(context.Context) (repository.RecipeTx, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return nil, errConnection
	}
	work := make(map[string]domain.Recipe, len(f.recipes))
	for k, v := range f.recipes {
		work[k] = v
	}
	return &fakeTx{repo: f, work: work}, nil
}

type fakeTx struct {
	repo   *fakeRepo
	work   map[string]domain.Recipe
	closed bool
}

func (t *fakeTx) Commit(context.Context) error {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	if t.repo.failCommit {
		return errConnection
	}
	t.repo.recipes = t.work
	t.repo.writes++
	t.closed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	t.closed = true
	return nil
}

func (t *fakeTx) InsertRecipe(_ context.Context, authorID string, in domain.RecipeInput) (string, error) {
	author := authorID
	now := time.Now()
	r := domain.Recipe{
		ID: uuid.NewString(), Name: in.Name, Description: in.Description, Steps: in.Steps,
		ImageURL: in.ImageURL, IsPublic: in.IsPublic, AuthorID: &author, CreatedAt: now, UpdatedAt: now,
	}
	t.work[r.ID] = r
	return r.ID, nil
}

func (t *fakeTx) UpdateRecipeOwned(_ context.Context, id, authorID string, in domain.RecipeInput) (int64, error) {
	r, ok := t.work[id]
	if !ok || r.AuthorID == nil || *r.AuthorID != authorID {
		return 0, nil
	}
	r.Name, r.Description, r.Steps, r.ImageURL, r.IsPublic = in.Name, in.Description, in.Steps, in.ImageURL, in.IsPublic
	r.UpdatedAt = time.Now()
	t.work[id] = r
	return 1, nil
}

func (t *fakeTx) ReplaceIngredients(_ context.Context, recipeID string, lines []domain.IngredientLine) error {
	r := t.work[recipeID]
	r.Ingredients = make([]domain.RecipeIngredient, 0, len(lines))
	for _, l := range lines {
		ing, ok := t.repo.ingredients[l.IngredientID]
		if !ok {
			return repository.ErrUnknownIngredient
		}
		r.Ingredients = append(r.Ingredients, domain.RecipeIngredient{
			ID: uuid.NewString(), IngredientID: l.IngredientID, Quantity: l.Quantity, Ingredient: &ing,
		})
	}
	t.work[recipeID] = r
	return nil
}

func (t *fakeTx) GetRecipe(_ context.Context, id string) (*domain.Recipe, error) {
	r, ok := t.work[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &r, nil
}
