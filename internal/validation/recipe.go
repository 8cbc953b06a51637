package validation

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/osse101/RecipeBook_Go/internal/domain"
)

// recipeSchema holds the recipe fields checked through struct tags
type recipeSchema struct {
	Name     string `validate:"max=200"`
	ImageURL string `validate:"omitempty,http_url"`
}

// IngredientField is the form key of the i-th ingredient line
func IngredientField(i int) string { return FieldIngredientPrefix + strconv.Itoa(i) }

// QuantityField is the form key of the i-th quantity
func QuantityField(i int) string { return FieldQuantityPrefix + strconv.Itoa(i) }

// EncodeRecipeForm is the inverse of ParseRecipeForm
func EncodeRecipeForm(in domain.RecipeInput) url.Values {
	v := url.Values{}
	v.Set(FieldName, in.Name)
	v.Set(FieldDescription, in.Description)
	v.Set(FieldSteps, in.Steps)
	if in.ImageURL != nil {
		v.Set(FieldImageURL, *in.ImageURL)
	}
	v.Set(FieldIsPublic, strconv.FormatBool(in.IsPublic))
	for i, line := range in.Lines {
		v.Set(IngredientField(i), line.IngredientID)
		v.Set(QuantityField(i), strconv.FormatFloat(line.Quantity, 'f', -1, 64))
	}
	return v
}

// ParseRecipeForm reads a flat key-indexed recipe submission.
// Lines come from ingredient_<i>/quantity_<i> pairs in numeric index order;
// a line with a blank ingredient is skipped. One bad quantity fails the form.
func ParseRecipeForm(values url.Values) (domain.RecipeInput, error) {
	name := strings.TrimSpace(values.Get(FieldName))

	indices := lineIndices(values)
	type rawLine struct {
		ingredientID string
		quantity     string
	}
	raw := make([]rawLine, 0, len(indices))
	for _, i := range indices {
		id := strings.TrimSpace(values.Get(IngredientField(i)))
		if id == "" {
			continue
		}
		raw = append(raw, rawLine{ingredientID: id, quantity: values.Get(QuantityField(i))})
	}

	if name == "" || len(raw) == 0 {
		return domain.RecipeInput{}, domain.Validation(domain.MsgRecipeRequired)
	}

	lines := make([]domain.IngredientLine, 0, len(raw))
	for _, l := range raw {
		qty, err := ParseValidQuantity(l.quantity)
		if err != nil {
			return domain.RecipeInput{}, err
		}
		lines = append(lines, domain.IngredientLine{IngredientID: l.ingredientID, Quantity: qty})
	}

	image := strings.TrimSpace(values.Get(FieldImageURL))
	if err := failure(check(recipeSchema{Name: name, ImageURL: image})); err != nil {
		return domain.RecipeInput{}, err
	}

	input := domain.RecipeInput{
		Name:        name,
		Description: strings.TrimSpace(values.Get(FieldDescription)),
		Steps:       strings.TrimSpace(strings.ReplaceAll(values.Get(FieldSteps), "\r\n", "\n")),
		IsPublic:    parseIsPublic(values),
		Lines:       lines,
	}
	if image != "" {
		input.ImageURL = &image
	}
	return input, nil
}

// lineIndices returns the numeric suffixes of ingredient_<i> keys, ascending.
// Only canonical suffixes count, so ingredient_01 never aliases ingredient_1.
func lineIndices(values url.Values) []int {
	var out []int
	for key := range values {
		suffix, ok := strings.CutPrefix(key, FieldIngredientPrefix)
		if !ok {
			continue
		}
		i, err := strconv.Atoi(suffix)
		if err != nil || i < 0 || strconv.Itoa(i) != suffix {
			continue
		}
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// parseIsPublic defaults to public when the field is absent
func parseIsPublic(values url.Values) bool {
	if _, ok := values[FieldIsPublic]; !ok {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(values.Get(FieldIsPublic))) {
	case "true", "on", "1", "yes":
		return true
	default:
		return false
	}
}
