package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/RecipeBook_Go/internal/auth"
	"github.com/osse101/RecipeBook_Go/internal/domain"
	"github.com/osse101/RecipeBook_Go/internal/repository"
	"github.com/osse101/RecipeBook_Go/internal/validation"
)

// SeedFile is the YAML catalog loaded on start when SEED_FILE is set
type SeedFile struct {
	Users []SeedUser `yaml:"users"`
}

// SeedUser is an account plus everything it authored
type SeedUser struct {
	Email       string           `yaml:"email"`
	Password    string           `yaml:"password"`
	Ingredients []SeedIngredient `yaml:"ingredients"`
	Recipes     []SeedRecipe     `yaml:"recipes"`
}

// SeedIngredient mirrors the ingredient form; prices stay strings so they
// go through the same parsing as form input
type SeedIngredient struct {
	Name         string `yaml:"name"`
	Category     string `yaml:"category"`
	Unit         string `yaml:"unit"`
	PricePerUnit string `yaml:"pricePerUnit"`
	Description  string `yaml:"description"`
}

func (s SeedIngredient) form() validation.IngredientForm {
	return validation.IngredientForm{
		Name:         s.Name,
		Category:     s.Category,
		Unit:         s.Unit,
		PricePerUnit: s.PricePerUnit,
		Description:  s.Description,
	}
}

// SeedRecipe refers to ingredients by name. A missing isPublic means public,
// the same default the recipe form applies.
type SeedRecipe struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Steps       string     `yaml:"steps"`
	ImageURL    *string    `yaml:"imageUrl"`
	IsPublic    *bool      `yaml:"isPublic"`
	Ingredients []SeedLine `yaml:"ingredients"`
}

func (s SeedRecipe) public() bool {
	return s.IsPublic == nil || *s.IsPublic
}

// SeedLine is one recipe ingredient line
type SeedLine struct {
	Name     string  `yaml:"name"`
	Quantity float64 `yaml:"quantity"`
}

// LoadSeedFile reads and sanity checks a seed file
func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadSeed, err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidSeed, err)
	}
	for _, u := range seed.Users {
		if u.Email == "" || u.Password == "" {
			return nil, fmt.Errorf("%s: every user needs an email and a password", ErrMsgInvalidSeed)
		}
	}
	return &seed, nil
}

// SeedCatalog creates the seed content through the gateways so it passes
// the same validation and ownership rules as user input. Records that
// already exist are skipped, which makes reseeding harmless.
func SeedCatalog(ctx context.Context, seed *SeedFile, users repository.User, svc *Services) error {
	slog.Info(LogMsgSeeding, "users", len(seed.Users))

	for _, su := range seed.Users {
		user, err := seedUser(ctx, su, users, svc.Auth)
		if err != nil {
			return err
		}

		ctx := auth.WithIdentity(ctx, &domain.Identity{UserID: user.ID, Email: user.Email})
		for _, si := range su.Ingredients {
			if _, err := svc.Ingredients.Create(ctx, si.form()); err != nil {
				if !errors.Is(err, domain.ErrConflict) {
					return fmt.Errorf("%s %q: %w", ErrMsgFailedSeedRecord, si.Name, err)
				}
				slog.Debug(LogMsgSeedSkipped, "ingredient", si.Name)
			}
		}

		if err := seedRecipes(ctx, su, user.ID, svc); err != nil {
			return err
		}
	}

	slog.Info(LogMsgSeeded)
	return nil
}

func seedUser(ctx context.Context, su SeedUser, users repository.User, svc auth.Service) (*domain.User, error) {
	email := validation.NormalizeEmail(su.Email)
	if existing, err := users.GetUserByEmail(ctx, email); err == nil {
		slog.Debug(LogMsgSeedSkipped, "email", email)
		return existing, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%s %q: %w", ErrMsgFailedSeedUser, email, err)
	}

	u, err := svc.SignUp(ctx, validation.SignupForm{Email: email, Password: su.Password, ConfirmPassword: su.Password})
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ErrMsgFailedSeedUser, email, err)
	}
	return u, nil
}

func seedRecipes(ctx context.Context, su SeedUser, userID string, svc *Services) error {
	if len(su.Recipes) == 0 {
		return nil
	}

	ingredients, err := svc.Ingredients.List(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSeedRecord, err)
	}
	byName := make(map[string]string, len(ingredients))
	for _, i := range ingredients {
		// Names are unique per author, so prefer the seeding user's own
		if _, ok := byName[i.NormalizedName]; !ok || (i.AuthorID != nil && *i.AuthorID == userID) {
			byName[i.NormalizedName] = i.ID
		}
	}

	existing, err := svc.Recipes.List(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSeedRecord, err)
	}
	have := make(map[string]bool)
	for _, r := range existing {
		if r.AuthorID != nil && *r.AuthorID == userID {
			have[r.Name] = true
		}
	}

	for _, sr := range su.Recipes {
		if have[sr.Name] {
			slog.Debug(LogMsgSeedSkipped, "recipe", sr.Name)
			continue
		}

		in := domain.RecipeInput{
			Name:        sr.Name,
			Description: sr.Description,
			Steps:       sr.Steps,
			ImageURL:    sr.ImageURL,
			IsPublic:    sr.public(),
		}
		for _, line := range sr.Ingredients {
			id, ok := byName[validation.NormalizedKey(line.Name)]
			if !ok {
				return fmt.Errorf("%s: %q in %q", ErrMsgUnknownSeedItem, line.Name, sr.Name)
			}
			in.Lines = append(in.Lines, domain.IngredientLine{IngredientID: id, Quantity: line.Quantity})
		}

		if _, err := svc.Recipes.Create(ctx, validation.EncodeRecipeForm(in)); err != nil {
			return fmt.Errorf("%s %q: %w", ErrMsgFailedSeedRecord, sr.Name, err)
		}
	}
	return nil
}
