package repository

import (
	"context"

	"github.com/osse101/RecipeBook_Go/internal/domain"
)

// Ingredient defines the interface for ingredient persistence
type Ingredient interface {
	ListIngredients(ctx context.Context) ([]domain.Ingredient, error)
	// InsertIngredient returns ErrDuplicate when the author already has the normalized name
	InsertIngredient(ctx context.Context, authorID string, in domain.IngredientInput) (*domain.Ingredient, error)
	// DeleteIngredientOwned deletes only when authorID owns the row; ErrInUse when a recipe references it
	DeleteIngredientOwned(ctx context.Context, id, authorID string) (int64, error)
}
