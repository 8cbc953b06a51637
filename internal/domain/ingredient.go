package domain

import (
	"fmt"
	"time"
)

// Ingredient is a shared-pool ingredient owned by its author
type Ingredient struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	NormalizedName string    `json:"normalizedName"`
	Category       Category  `json:"category"`
	Unit           Unit      `json:"unit"`
	PricePerUnit   *float64  `json:"pricePerUnit"`
	Description    *string   `json:"description,omitempty"`
	AuthorID       *string   `json:"authorId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// OwnerID implements Owned
func (i Ingredient) OwnerID() *string { return i.AuthorID }

// IngredientInput is a validated ingredient ready for persistence
type IngredientInput struct {
	Name           string
	NormalizedName string
	Category       Category
	Unit           Unit
	PricePerUnit   *float64
	Description    *string
}

// FormatPrice renders a price for tables: "-" when absent
func FormatPrice(price *float64) string {
	if price == nil {
		return "-"
	}
	return fmt.Sprintf("$%.2f", *price)
}
