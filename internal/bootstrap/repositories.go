package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RecipeBook_Go/internal/database/postgres"
	"github.com/osse101/RecipeBook_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application
type Repositories struct {
	User       repository.User
	Ingredient repository.Ingredient
	Recipe     repository.Recipe
}

// InitializeRepositories creates the PostgreSQL repositories
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:       postgres.NewUserRepository(dbPool),
		Ingredient: postgres.NewIngredientRepository(dbPool),
		Recipe:     postgres.NewRecipeRepository(dbPool),
	}
}
