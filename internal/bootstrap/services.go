package bootstrap

import (
	"github.com/osse101/RecipeBook_Go/internal/auth"
	"github.com/osse101/RecipeBook_Go/internal/config"
	"github.com/osse101/RecipeBook_Go/internal/event"
	"github.com/osse101/RecipeBook_Go/internal/ingredient"
	"github.com/osse101/RecipeBook_Go/internal/recipe"
	"github.com/osse101/RecipeBook_Go/internal/store"
)

// Services holds the gateways and the per-session store registry
type Services struct {
	Auth        auth.Service
	Ingredients ingredient.Service
	Recipes     recipe.Service
	Sessions    *store.Registry
}

// InitializeServices wires the gateways onto the repositories
func InitializeServices(cfg *config.Config, repos *Repositories, bus event.Bus) *Services {
	s := &Services{
		Auth: auth.NewService(repos.User, bus, auth.Config{
			Secret:             []byte(cfg.AuthSecret),
			SessionTTL:         cfg.SessionTTL,
			LoginRatePerMinute: cfg.LoginRatePerMinute,
		}),
		Ingredients: ingredient.NewService(repos.Ingredient, bus),
		Recipes: recipe.NewService(repos.Recipe, bus, recipe.Config{
			CatalogCacheSize: cfg.CatalogCacheSize,
			CatalogCacheTTL:  cfg.CatalogCacheTTL,
		}),
	}
	s.Sessions = store.NewRegistry(cfg.ViewStateCacheSize, cfg.SessionTTL, func() *store.Container {
		return store.NewContainer(s.Ingredients, s.Recipes)
	})
	return s
}
