package repository

import (
	"context"
	"errors"

	"github.com/osse101/RecipeBook_Go/internal/logger"
)

// Storage sentinels. Implementations wrap driver errors into these so
// gateways never depend on a driver package.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicate         = errors.New("duplicate record")
	ErrInUse             = errors.New("record is still referenced")
	ErrUnknownIngredient = errors.New("unknown ingredient")
)

// SafeRollback rolls back a transaction and logs any error.
// Implementations return nil when the transaction is already closed.
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}
