// Package ingredient is the gateway for the shared ingredient pool.
// Every failure is a *domain.Error carrying a user-visible message.
package ingredient

import (
	"context"
	"errors"

	"github.com/osse101/RecipeBook_Go/internal/auth"
	"github.com/osse101/RecipeBook_Go/internal/domain"
	"github.com/osse101/RecipeBook_Go/internal/event"
	"github.com/osse101/RecipeBook_Go/internal/logger"
	"github.com/osse101/RecipeBook_Go/internal/metrics"
	"github.com/osse101/RecipeBook_Go/internal/policy"
	"github.com/osse101/RecipeBook_Go/internal/repository"
	"github.com/osse101/RecipeBook_Go/internal/validation"
)

// Service defines the interface for ingredient operations
type Service interface {
	List(ctx context.Context) ([]domain.Ingredient, error)
	Create(ctx context.Context, form validation.IngredientForm) (*domain.Ingredient, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo repository.Ingredient
	bus  event.Bus
}

// NewService creates a new ingredient gateway. bus may be nil.
func NewService(repo repository.Ingredient, bus event.Bus) Service {
	return &service{repo: repo, bus: bus}
}

func (s *service) List(ctx context.Context) ([]domain.Ingredient, error) {
	if !policy.IngredientReadable(auth.IdentityFromContext(ctx)) {
		return nil, domain.Unauthorized()
	}

	items, err := s.repo.ListIngredients(ctx)
	if err != nil {
		return nil, s.internal(ctx, opList, LogMsgListFailed, domain.MsgGetIngredients, err)
	}
	return items, nil
}

func (s *service) Create(ctx context.Context, form validation.IngredientForm) (*domain.Ingredient, error) {
	identity := auth.IdentityFromContext(ctx)
	if identity == nil {
		return nil, domain.Unauthorized()
	}

	input, err := validation.ValidateIngredient(form)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.InsertIngredient(ctx, identity.UserID, input)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.Conflict(domain.MsgIngredientExists)
		}
		return nil, s.internal(ctx, opCreate, LogMsgCreateFailed, domain.MsgCreateIngredient, err)
	}

	logger.FromContext(ctx).Info(LogMsgCreated, "ingredient_id", created.ID, "user_id", identity.UserID)
	s.publish(ctx, event.IngredientCreated, created.ID, identity.UserID)
	return created, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	identity := auth.IdentityFromContext(ctx)
	if identity == nil {
		return domain.Unauthorized()
	}

	// Scoped to the owner, so a foreign id and a missing id look the same
	n, err := s.repo.DeleteIngredientOwned(ctx, id, identity.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrInUse) {
			return domain.Conflict(domain.MsgIngredientInUse)
		}
		return s.internal(ctx, opDelete, LogMsgDeleteFailed, domain.MsgDeleteIngredient, err)
	}
	if n == 0 {
		return domain.NotFoundOrForbidden()
	}

	logger.FromContext(ctx).Info(LogMsgDeleted, "ingredient_id", id, "user_id", identity.UserID)
	s.publish(ctx, event.IngredientDeleted, id, identity.UserID)
	return nil
}

func (s *service) internal(ctx context.Context, op, logMsg, userMsg string, err error) error {
	logger.FromContext(ctx).Error(logMsg, "error", err)
	metrics.GatewayFailures.WithLabelValues(metrics.EntityIngredient, op).Inc()
	return domain.Internal(userMsg, err)
}

func (s *service) publish(ctx context.Context, t event.Type, id, authorID string) {
	if s.bus == nil {
		return
	}
	event.PublishBestEffort(ctx, s.bus, event.NewRecordEvent(t, id, authorID, false))
}
