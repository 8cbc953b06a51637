// Package recipe is the gateway for recipes and the anonymous public catalog.
package recipe

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/osse101/RecipeBook_Go/internal/auth"
	"github.com/osse101/RecipeBook_Go/internal/domain"
	"github.com/osse101/RecipeBook_Go/internal/event"
	"github.com/osse101/RecipeBook_Go/internal/logger"
	"github.com/osse101/RecipeBook_Go/internal/metrics"
	"github.com/osse101/RecipeBook_Go/internal/policy"
	"github.com/osse101/RecipeBook_Go/internal/repository"
	"github.com/osse101/RecipeBook_Go/internal/validation"
)

// Service defines the interface for recipe operations
type Service interface {
	// List returns every recipe the requester may read
	List(ctx context.Context) ([]domain.Recipe, error)
	// GetByID returns nil without error when the recipe is missing or not visible
	GetByID(ctx context.Context, id string) (*domain.Recipe, error)
	Create(ctx context.Context, form url.Values) (*domain.Recipe, error)
	Update(ctx context.Context, id string, form url.Values) (*domain.Recipe, error)
	Delete(ctx context.Context, id string) error

	ListPublic(ctx context.Context, limit int) ([]domain.Recipe, error)
	GetPublicByID(ctx context.Context, id string) (*domain.Recipe, error)
	ListPublicIDs(ctx context.Context, limit int) ([]string, error)
}

// Config configures the public catalog cache
type Config struct {
	CatalogCacheSize int
	CatalogCacheTTL  time.Duration
}

type service struct {
	repo    repository.Recipe
	bus     event.Bus
	catalog *catalogCache
}

// NewService creates a new recipe gateway. When bus is set the catalog
// cache is purged through it; otherwise mutations purge it directly.
func NewService(repo repository.Recipe, bus event.Bus, cfg Config) Service {
	s := &service{
		repo:    repo,
		bus:     bus,
		catalog: newCatalogCache(cfg.CatalogCacheSize, cfg.CatalogCacheTTL),
	}
	if bus != nil {
		s.catalog.register(bus)
	}
	return s
}

func (s *service) List(ctx context.Context) ([]domain.Recipe, error) {
	var viewer *string
	if identity := auth.IdentityFromContext(ctx); identity != nil {
		viewer = &identity.UserID
	}

	recipes, err := s.repo.ListRecipesVisible(ctx, viewer)
	if err != nil {
		return nil, s.internal(ctx, opList, LogMsgListFailed, domain.MsgGetRecipes, err)
	}
	return recipes, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	if id == "" {
		return nil, nil
	}

	r, err := s.repo.GetRecipe(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, s.internal(ctx, opGet, LogMsgGetFailed, domain.MsgGetRecipes, err)
	}
	if !policy.CanRead(*r, auth.IdentityFromContext(ctx)) {
		return nil, nil
	}
	return r, nil
}

func (s *service) Create(ctx context.Context, form url.Values) (*domain.Recipe, error) {
	identity := auth.IdentityFromContext(ctx)
	if identity == nil {
		return nil, domain.Unauthorized()
	}

	input, err := validation.ParseRecipeForm(form)
	if err != nil {
		return nil, err
	}

	created, err := s.write(ctx, func(tx repository.RecipeTx) (string, error) {
		id, err := tx.InsertRecipe(ctx, identity.UserID, input)
		if err != nil {
			return "", err
		}
		return id, tx.ReplaceIngredients(ctx, id, input.Lines)
	})
	if err != nil {
		return nil, s.writeFailure(ctx, opCreate, LogMsgCreateFailed, domain.MsgCreateRecipe, err)
	}

	logger.FromContext(ctx).Info(LogMsgCreated, "recipe_id", created.ID, "user_id", identity.UserID)
	s.publish(ctx, event.RecipeCreated, created)
	return created, nil
}

func (s *service) Update(ctx context.Context, id string, form url.Values) (*domain.Recipe, error) {
	identity := auth.IdentityFromContext(ctx)
	if identity == nil {
		return nil, domain.Unauthorized()
	}

	input, err := validation.ParseRecipeForm(form)
	if err != nil {
		return nil, err
	}

	if err := s.checkOwner(ctx, id, identity, policy.CanUpdate, opUpdate, LogMsgUpdateFailed, domain.MsgUpdateRecipe); err != nil {
		return nil, err
	}

	updated, err := s.write(ctx, func(tx repository.RecipeTx) (string, error) {
		n, err := tx.UpdateRecipeOwned(ctx, id, identity.UserID, input)
		if err != nil {
			return "", err
		}
		if n == 0 {
			return "", repository.ErrNotFound
		}
		// whole line set is replaced, never diffed
		return id, tx.ReplaceIngredients(ctx, id, input.Lines)
	})
	if err != nil {
		return nil, s.writeFailure(ctx, opUpdate, LogMsgUpdateFailed, domain.MsgUpdateRecipe, err)
	}

	logger.FromContext(ctx).Info(LogMsgUpdated, "recipe_id", id, "user_id", identity.UserID)
	s.publish(ctx, event.RecipeUpdated, updated)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	identity := auth.IdentityFromContext(ctx)
	if identity == nil {
		return domain.Unauthorized()
	}

	if err := s.checkOwner(ctx, id, identity, policy.CanDelete, opDelete, LogMsgDeleteFailed, domain.MsgDeleteRecipe); err != nil {
		return err
	}

	n, err := s.repo.DeleteRecipeOwned(ctx, id, identity.UserID)
	if err != nil {
		return s.internal(ctx, opDelete, LogMsgDeleteFailed, domain.MsgDeleteRecipe, err)
	}
	if n == 0 {
		return domain.NotFoundOrForbidden()
	}

	logger.FromContext(ctx).Info(LogMsgDeleted, "recipe_id", id, "user_id", identity.UserID)
	s.publish(ctx, event.RecipeDeleted, &domain.Recipe{ID: id, AuthorID: &identity.UserID})
	return nil
}

func (s *service) ListPublic(ctx context.Context, limit int) ([]domain.Recipe, error) {
	limit = clampLimit(limit)
	key := limitKey(keyList, limit)
	if entry, ok := s.catalog.get(key); ok {
		return entry.recipes, nil
	}

	recipes, err := s.repo.ListPublicRecipes(ctx, limit)
	if err != nil {
		return nil, s.internal(ctx, opCatalog, LogMsgCatalogFailed, domain.MsgGetRecipes, err)
	}
	s.catalog.add(key, catalogEntry{recipes: recipes})
	return recipes, nil
}

func (s *service) GetPublicByID(ctx context.Context, id string) (*domain.Recipe, error) {
	if id == "" {
		return nil, nil
	}
	key := keyOne + id
	if entry, ok := s.catalog.get(key); ok {
		return &entry.recipes[0], nil
	}

	r, err := s.repo.GetRecipe(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, s.internal(ctx, opCatalog, LogMsgCatalogFailed, domain.MsgGetRecipes, err)
	}
	if !r.IsPublic {
		return nil, nil
	}
	s.catalog.add(key, catalogEntry{recipes: []domain.Recipe{*r}})
	return r, nil
}

func (s *service) ListPublicIDs(ctx context.Context, limit int) ([]string, error) {
	limit = clampLimit(limit)
	key := limitKey(keyIDs, limit)
	if entry, ok := s.catalog.get(key); ok {
		return entry.ids, nil
	}

	ids, err := s.repo.ListPublicRecipeIDs(ctx, limit)
	if err != nil {
		return nil, s.internal(ctx, opCatalog, LogMsgCatalogFailed, domain.MsgGetRecipes, err)
	}
	s.catalog.add(key, catalogEntry{ids: ids})
	return ids, nil
}

// write runs fn in one transaction and returns the recipe as committed
func (s *service) write(ctx context.Context, fn func(tx repository.RecipeTx) (string, error)) (*domain.Recipe, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	id, err := fn(tx)
	if err != nil {
		return nil, err
	}
	r, err := tx.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// checkOwner loads the recipe and applies allowed before any write
func (s *service) checkOwner(ctx context.Context, id string, identity *domain.Identity,
	allowed func(domain.Owned, *domain.Identity) bool, op, logMsg, userMsg string) error {
	r, err := s.repo.GetRecipe(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NotFoundOrForbidden()
		}
		return s.internal(ctx, op, logMsg, userMsg, err)
	}
	if !allowed(*r, identity) {
		return domain.NotFoundOrForbidden()
	}
	return nil
}

func (s *service) writeFailure(ctx context.Context, op, logMsg, userMsg string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return domain.NotFoundOrForbidden()
	case errors.Is(err, repository.ErrUnknownIngredient):
		return domain.Validation(domain.MsgUnknownIngredient)
	default:
		return s.internal(ctx, op, logMsg, userMsg, err)
	}
}

func (s *service) internal(ctx context.Context, op, logMsg, userMsg string, err error) error {
	logger.FromContext(ctx).Error(logMsg, "error", err)
	metrics.GatewayFailures.WithLabelValues(metrics.EntityRecipe, op).Inc()
	return domain.Internal(userMsg, err)
}

func (s *service) publish(ctx context.Context, t event.Type, r *domain.Recipe) {
	if s.bus == nil {
		s.catalog.purge()
		return
	}
	authorID := ""
	if r.AuthorID != nil {
		authorID = *r.AuthorID
	}
	event.PublishBestEffort(ctx, s.bus, event.NewRecordEvent(t, r.ID, authorID, r.IsPublic))
}
