package repository

import (
	"context"

	"github.com/osse101/RecipeBook_Go/internal/domain"
)

// Recipe defines the interface for recipe persistence
type Recipe interface {
	// ListRecipesVisible returns public recipes plus the viewer's own; nil viewer sees public only
	ListRecipesVisible(ctx context.Context, viewerID *string) ([]domain.Recipe, error)
	ListPublicRecipes(ctx context.Context, limit int) ([]domain.Recipe, error)
	ListPublicRecipeIDs(ctx context.Context, limit int) ([]string, error)
	// GetRecipe returns ErrNotFound for missing or malformed ids
	GetRecipe(ctx context.Context, id string) (*domain.Recipe, error)
	DeleteRecipeOwned(ctx context.Context, id, authorID string) (int64, error)

	BeginTx(ctx context.Context) (RecipeTx, error)
}

// RecipeTx groups the multi-statement recipe writes
type RecipeTx interface {
	Tx
	InsertRecipe(ctx context.Context, authorID string, in domain.RecipeInput) (string, error)
	UpdateRecipeOwned(ctx context.Context, id, authorID string, in domain.RecipeInput) (int64, error)
	// ReplaceIngredients deletes every line of the recipe and inserts lines in order.
	// ErrUnknownIngredient when a line references a missing ingredient.
	ReplaceIngredients(ctx context.Context, recipeID string, lines []domain.IngredientLine) error
	GetRecipe(ctx context.Context, id string) (*domain.Recipe, error)
}
