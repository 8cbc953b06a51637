package domain

import (
	"strings"
	"time"
)

// RecipeIngredient is one ordered ingredient line of a recipe
type RecipeIngredient struct {
	ID           string      `json:"id"`
	IngredientID string      `json:"ingredientId"`
	Quantity     float64     `json:"quantity"`
	Ingredient   *Ingredient `json:"ingredient,omitempty"`
}

// Recipe is a user-authored recipe, public unless marked private
type Recipe struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Steps       string             `json:"steps"`
	ImageURL    *string            `json:"imageUrl"`
	IsPublic    bool               `json:"isPublic"`
	AuthorID    *string            `json:"authorId"`
	Ingredients []RecipeIngredient `json:"ingredients"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// OwnerID implements Owned
func (r Recipe) OwnerID() *string { return r.AuthorID }

// StepLines returns the non-blank, trimmed lines of Steps in order
func (r Recipe) StepLines() []string {
	if r.Steps == "" {
		return []string{}
	}
	lines := make([]string, 0)
	for _, line := range strings.Split(r.Steps, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// IngredientLine is a parsed form line: ingredient reference plus quantity
type IngredientLine struct {
	IngredientID string  `json:"ingredientId"`
	Quantity     float64 `json:"quantity"`
}

// RecipeInput is a validated recipe submission
type RecipeInput struct {
	Name        string
	Description string
	Steps       string
	ImageURL    *string
	IsPublic    bool
	Lines       []IngredientLine
}
