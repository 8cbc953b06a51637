package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/osse101/RecipeBook_Go/internal/domain"
	"github.com/osse101/RecipeBook_Go/internal/validation"
)

// IngredientGateway is the remote store.IngredientGateway
type IngredientGateway struct {
	c *Client
}

// Ingredients returns the ingredient gateway bound to c
func (c *Client) Ingredients() *IngredientGateway {
	return &IngredientGateway{c: c}
}

func (g *IngredientGateway) List(ctx context.Context) ([]domain.Ingredient, error) {
	env, err := g.c.doJSON(ctx, http.MethodGet, pathIngredients, nil)
	if err != nil {
		return nil, err
	}
	return decodeInto[[]domain.Ingredient](env.Items)
}

func (g *IngredientGateway) Create(ctx context.Context, form validation.IngredientForm) (*domain.Ingredient, error) {
	env, err := g.c.doJSON(ctx, http.MethodPost, pathIngredients, form)
	if err != nil {
		return nil, err
	}
	i, err := decodeInto[domain.Ingredient](env.Item)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (g *IngredientGateway) Delete(ctx context.Context, id string) error {
	_, err := g.c.doJSON(ctx, http.MethodDelete, pathIngredients+"/"+url.PathEscape(id), nil)
	return err
}

// RecipeGateway is the remote store.RecipeGateway
type RecipeGateway struct {
	c *Client
}

// Recipes returns the recipe gateway bound to c
func (c *Client) Recipes() *RecipeGateway {
	return &RecipeGateway{c: c}
}

func (g *RecipeGateway) List(ctx context.Context) ([]domain.Recipe, error) {
	env, err := g.c.doJSON(ctx, http.MethodGet, pathRecipes, nil)
	if err != nil {
		return nil, err
	}
	return decodeInto[[]domain.Recipe](env.Items)
}

func (g *RecipeGateway) Create(ctx context.Context, form url.Values) (*domain.Recipe, error) {
	env, err := g.c.doForm(ctx, http.MethodPost, pathRecipes, form)
	if err != nil {
		return nil, err
	}
	return decodeRecipe(env)
}

func (g *RecipeGateway) Update(ctx context.Context, id string, form url.Values) (*domain.Recipe, error) {
	env, err := g.c.doForm(ctx, http.MethodPut, pathRecipes+"/"+url.PathEscape(id), form)
	if err != nil {
		return nil, err
	}
	return decodeRecipe(env)
}

func (g *RecipeGateway) Delete(ctx context.Context, id string) error {
	_, err := g.c.doJSON(ctx, http.MethodDelete, pathRecipes+"/"+url.PathEscape(id), nil)
	return err
}

func decodeRecipe(env *envelope) (*domain.Recipe, error) {
	r, err := decodeInto[domain.Recipe](env.Item)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
