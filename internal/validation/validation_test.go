package validation

import (
	"errors"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RecipeBook_Go/internal/domain"
)

func TestParseValidQuantity(t *testing.T) {
	tests := []struct {
		name    string
		raw     interface{}
		want    float64
		wantErr string
	}{
		{"integer string", "3", 3, ""},
		{"dot decimal", "2.5", 2.5, ""},
		{"comma decimal", "2,5", 2.5, ""},
		{"surrounding spaces", " 4 ", 4, ""},
		{"float", 1.25, 1.25, ""},
		{"int", 7, 7, ""},
		{"empty", "", 0, domain.MsgQuantityRequired},
		{"nil", nil, 0, domain.MsgQuantityRequired},
		{"letters", "abc", 0, domain.MsgQuantityNaN},
		{"infinity", "Inf", 0, domain.MsgQuantityNaN},
		{"unsupported type", true, 0, domain.MsgQuantityNaN},
		{"zero", 0, 0, domain.MsgQuantityPositive},
		{"negative", -1, 0, domain.MsgQuantityPositive},
		{"negative string", "-3", 0, domain.MsgQuantityPositive},
		{"blank reads as zero", "   ", 0, domain.MsgQuantityPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValidQuantity(tt.raw)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				assert.True(t, errors.Is(err, domain.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseValidQuantity_RoundTrip(t *testing.T) {
	for _, n := range []float64{0.001, 0.5, 1, 3.14159, 250, 1e6} {
		s := strconv.FormatFloat(n, 'f', -1, 64)
		got, err := ParseValidQuantity(s)
		require.NoError(t, err, s)
		assert.InDelta(t, n, got, 1e-9)
	}
}

func TestParsePrice(t *testing.T) {
	p, err := ParsePrice("")
	require.NoError(t, err)
	assert.Nil(t, p, "empty price is absent, not zero")

	p, err = ParsePrice("  ")
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = ParsePrice("0")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 0.0, *p)

	p, err = ParsePrice("1,99")
	require.NoError(t, err)
	assert.InDelta(t, 1.99, *p, 1e-9)

	_, err = ParsePrice("cheap")
	assert.EqualError(t, err, MsgPriceNotNumber)

	_, err = ParsePrice("-1")
	assert.EqualError(t, err, MsgPriceNegative)
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Tomato", NormalizeName(" Tomato "))
	assert.Equal(t, "Cherry Tomato", NormalizeName("  Cherry \t  Tomato\n"))
	assert.Equal(t, "tomato", NormalizedKey(" Tomato "))
	assert.Equal(t, NormalizedKey("TOMATO"), NormalizedKey(" tomato"))
	assert.Equal(t, "crème brûlée", NormalizedKey("CRÈME  BRÛLÉE"))
}

func TestValidateIngredient(t *testing.T) {
	t.Run("valid form is normalized", func(t *testing.T) {
		in, err := ValidateIngredient(IngredientForm{
			Name:         "  Red   Onion ",
			Category:     "VEGETABLES",
			Unit:         "GRAMS",
			PricePerUnit: "0,5",
			Description:  "  sweet ",
		})
		require.NoError(t, err)
		assert.Equal(t, "Red Onion", in.Name)
		assert.Equal(t, "red onion", in.NormalizedName)
		assert.Equal(t, domain.CategoryVegetables, in.Category)
		assert.Equal(t, domain.UnitGrams, in.Unit)
		require.NotNil(t, in.PricePerUnit)
		assert.InDelta(t, 0.5, *in.PricePerUnit, 1e-9)
		require.NotNil(t, in.Description)
		assert.Equal(t, "sweet", *in.Description)
	})

	t.Run("empty price and description are absent", func(t *testing.T) {
		in, err := ValidateIngredient(IngredientForm{Name: "Salt", Category: "SPICES", Unit: "GRAMS"})
		require.NoError(t, err)
		assert.Nil(t, in.PricePerUnit)
		assert.Nil(t, in.Description)
	})

	t.Run("all failing fields are joined", func(t *testing.T) {
		_, err := ValidateIngredient(IngredientForm{
			Name:         "   ",
			Category:     "CANDY",
			Unit:         "",
			PricePerUnit: "-2",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))
		assert.Equal(t, "Name is required, Invalid category, Invalid unit, Price must be positive", err.Error())
	})

	t.Run("non numeric price", func(t *testing.T) {
		_, err := ValidateIngredient(IngredientForm{Name: "Milk", Category: "DAIRY", Unit: "LITERS", PricePerUnit: "a lot"})
		assert.EqualError(t, err, MsgPriceNotNumber)
	})
}

func TestValidateCredentials(t *testing.T) {
	c, err := ValidateCredentials(Credentials{Email: " Cook@Example.com ", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "cook@example.com", c.Email)

	_, err = ValidateCredentials(Credentials{Email: "not-an-email", Password: "123"})
	assert.EqualError(t, err, "Email is not correct, Password must be at least 6 characters long.")

	_, err = ValidateCredentials(Credentials{})
	assert.EqualError(t, err, "Email is required, Password is required")
}

func TestValidateSignup(t *testing.T) {
	c, err := ValidateSignup(SignupForm{Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", c.Email)
	assert.Equal(t, "secret1", c.Password)

	_, err = ValidateSignup(SignupForm{Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret2"})
	assert.EqualError(t, err, domain.MsgPasswordsDontMatch)
}

func recipeForm(pairs ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		v.Set(pairs[i], pairs[i+1])
	}
	return v
}

func TestParseRecipeForm(t *testing.T) {
	t.Run("lines follow numeric index order", func(t *testing.T) {
		in, err := ParseRecipeForm(recipeForm(
			"name", " Soup ",
			"steps", "chop\r\n\r\nboil",
			"ingredient_10", "c", "quantity_10", "3",
			"ingredient_2", "b", "quantity_2", "2,5",
			"ingredient_0", "a", "quantity_0", "1",
		))
		require.NoError(t, err)
		assert.Equal(t, "Soup", in.Name)
		assert.Equal(t, "chop\n\nboil", in.Steps)
		assert.True(t, in.IsPublic, "absent isPublic defaults to public")
		assert.Nil(t, in.ImageURL)
		require.Len(t, in.Lines, 3)
		assert.Equal(t, []string{"a", "b", "c"}, []string{in.Lines[0].IngredientID, in.Lines[1].IngredientID, in.Lines[2].IngredientID})
		assert.InDelta(t, 2.5, in.Lines[1].Quantity, 1e-9)
	})

	t.Run("blank ingredient lines are skipped", func(t *testing.T) {
		in, err := ParseRecipeForm(recipeForm(
			"name", "Tea",
			"ingredient_0", "", "quantity_0", "",
			"ingredient_1", "leaves", "quantity_1", "2",
		))
		require.NoError(t, err)
		require.Len(t, in.Lines, 1)
		assert.Equal(t, "leaves", in.Lines[0].IngredientID)
	})

	t.Run("padded indices do not alias a line", func(t *testing.T) {
		in, err := ParseRecipeForm(recipeForm(
			"name", "Salad",
			"ingredient_1", "lettuce", "quantity_1", "1",
			"ingredient_01", "lettuce", "quantity_01", "1",
			"ingredient_+2", "oil", "quantity_+2", "1",
		))
		require.NoError(t, err)
		require.Len(t, in.Lines, 1)
		assert.Equal(t, "lettuce", in.Lines[0].IngredientID)
	})

	t.Run("missing name or lines", func(t *testing.T) {
		_, err := ParseRecipeForm(recipeForm("ingredient_0", "a", "quantity_0", "1"))
		assert.EqualError(t, err, domain.MsgRecipeRequired)

		_, err = ParseRecipeForm(recipeForm("name", "Empty"))
		assert.EqualError(t, err, domain.MsgRecipeRequired)
	})

	t.Run("one bad quantity fails the whole form", func(t *testing.T) {
		_, err := ParseRecipeForm(recipeForm(
			"name", "Stew",
			"ingredient_0", "a", "quantity_0", "2",
			"ingredient_1", "b", "quantity_1", "-3",
		))
		assert.EqualError(t, err, domain.MsgQuantityPositive)

		_, err = ParseRecipeForm(recipeForm("name", "Stew", "ingredient_0", "a"))
		assert.EqualError(t, err, domain.MsgQuantityRequired)
	})

	t.Run("visibility and image", func(t *testing.T) {
		in, err := ParseRecipeForm(recipeForm(
			"name", "Secret", "isPublic", "false", "imageUrl", "https://img.example.com/a.png",
			"ingredient_0", "a", "quantity_0", "1",
		))
		require.NoError(t, err)
		assert.False(t, in.IsPublic)
		require.NotNil(t, in.ImageURL)
		assert.Equal(t, "https://img.example.com/a.png", *in.ImageURL)

		in, err = ParseRecipeForm(recipeForm("name", "Box", "isPublic", "on", "ingredient_0", "a", "quantity_0", "1"))
		require.NoError(t, err)
		assert.True(t, in.IsPublic)

		_, err = ParseRecipeForm(recipeForm("name", "Bad", "imageUrl", "not a url", "ingredient_0", "a", "quantity_0", "1"))
		assert.EqualError(t, err, MsgImageURLInvalid)
	})

	t.Run("encode is the inverse of parse", func(t *testing.T) {
		img := "https://example.com/x.jpg"
		want := domain.RecipeInput{
			Name:        "Pancakes",
			Description: "Sunday",
			Steps:       "mix\nfry",
			ImageURL:    &img,
			IsPublic:    false,
			Lines: []domain.IngredientLine{
				{IngredientID: "flour", Quantity: 200},
				{IngredientID: "milk", Quantity: 0.25},
			},
		}
		got, err := ParseRecipeForm(EncodeRecipeForm(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}
