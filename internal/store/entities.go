package store

import (
	"context"
	"net/url"

	"github.com/osse101/RecipeBook_Go/internal/domain"
	"github.com/osse101/RecipeBook_Go/internal/validation"
)

// IngredientGateway is the ingredient persistence boundary the store talks to
type IngredientGateway interface {
	List(ctx context.Context) ([]domain.Ingredient, error)
	Create(ctx context.Context, form validation.IngredientForm) (*domain.Ingredient, error)
	Delete(ctx context.Context, id string) error
}

// RecipeGateway is the recipe persistence boundary the store talks to
type RecipeGateway interface {
	List(ctx context.Context) ([]domain.Recipe, error)
	Create(ctx context.Context, form url.Values) (*domain.Recipe, error)
	Update(ctx context.Context, id string, form url.Values) (*domain.Recipe, error)
	Delete(ctx context.Context, id string) error
}

// IngredientStore caches ingredients
type IngredientStore struct {
	*Collection[domain.Ingredient]
	gw IngredientGateway
}

// NewIngredientStore creates a never-loaded ingredient store
func NewIngredientStore(gw IngredientGateway) *IngredientStore {
	return &IngredientStore{
		Collection: NewCollection(func(i domain.Ingredient) string { return i.ID }),
		gw:         gw,
	}
}

func (s *IngredientStore) Load(ctx context.Context) Result[[]domain.Ingredient] {
	return s.LoadWith(ctx, domain.MsgGetIngredients, s.gw.List)
}

func (s *IngredientStore) Add(ctx context.Context, form validation.IngredientForm) Result[domain.Ingredient] {
	return s.AddWith(ctx, domain.MsgCreateIngredient, func(ctx context.Context) (*domain.Ingredient, error) {
		return s.gw.Create(ctx, form)
	})
}

func (s *IngredientStore) Remove(ctx context.Context, id string) Result[domain.Ingredient] {
	return s.RemoveWith(ctx, id, domain.MsgDeleteIngredient, func(ctx context.Context) error {
		return s.gw.Delete(ctx, id)
	})
}

// RecipeStore caches recipes
type RecipeStore struct {
	*Collection[domain.Recipe]
	gw RecipeGateway
}

// NewRecipeStore creates a never-loaded recipe store
func NewRecipeStore(gw RecipeGateway) *RecipeStore {
	return &RecipeStore{
		Collection: NewCollection(func(r domain.Recipe) string { return r.ID }),
		gw:         gw,
	}
}

func (s *RecipeStore) Load(ctx context.Context) Result[[]domain.Recipe] {
	return s.LoadWith(ctx, domain.MsgGetRecipes, s.gw.List)
}

func (s *RecipeStore) Add(ctx context.Context, form url.Values) Result[domain.Recipe] {
	return s.AddWith(ctx, domain.MsgCreateRecipe, func(ctx context.Context) (*domain.Recipe, error) {
		return s.gw.Create(ctx, form)
	})
}

func (s *RecipeStore) Update(ctx context.Context, id string, form url.Values) Result[domain.Recipe] {
	return s.UpdateWith(ctx, domain.MsgUpdateRecipe, func(ctx context.Context) (*domain.Recipe, error) {
		return s.gw.Update(ctx, id, form)
	})
}

func (s *RecipeStore) Remove(ctx context.Context, id string) Result[domain.Recipe] {
	return s.RemoveWith(ctx, id, domain.MsgDeleteRecipe, func(ctx context.Context) error {
		return s.gw.Delete(ctx, id)
	})
}
