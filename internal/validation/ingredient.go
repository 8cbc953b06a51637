package validation

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/RecipeBook_Go/internal/domain"
)

// IngredientForm is the raw ingredient editor submission
type IngredientForm struct {
	Name         string `json:"name" validate:"required,max=200"`
	Category     string `json:"category" validate:"category"`
	Unit         string `json:"unit" validate:"unit"`
	PricePerUnit string `json:"pricePerUnit" validate:"omitempty,price_number,price_nonnegative"`
	Description  string `json:"description"`
}

// NormalizeName trims and collapses inner whitespace
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// NormalizedKey is the per-author deduplication key of an ingredient name
func NormalizedKey(name string) string {
	// a Caser is stateful, so one per call
	return cases.Lower(language.Und).String(NormalizeName(name))
}

// ValidateIngredient validates the form and returns the normalized input
func ValidateIngredient(form IngredientForm) (domain.IngredientInput, error) {
	form.Name = NormalizeName(form.Name)
	form.Category = strings.TrimSpace(form.Category)
	form.Unit = strings.TrimSpace(form.Unit)
	form.PricePerUnit = strings.TrimSpace(form.PricePerUnit)

	if err := failure(check(form)); err != nil {
		return domain.IngredientInput{}, err
	}

	price, err := ParsePrice(form.PricePerUnit)
	if err != nil {
		return domain.IngredientInput{}, err
	}

	input := domain.IngredientInput{
		Name:           form.Name,
		NormalizedName: NormalizedKey(form.Name),
		Category:       domain.Category(form.Category),
		Unit:           domain.Unit(form.Unit),
		PricePerUnit:   price,
	}
	if desc := strings.TrimSpace(form.Description); desc != "" {
		input.Description = &desc
	}
	return input, nil
}
