package repository

import (
	"context"

	"github.com/osse101/RecipeBook_Go/internal/domain"
)

// User defines the interface for account persistence
type User interface {
	// CreateUser returns ErrDuplicate when the email is taken
	CreateUser(ctx context.Context, email, passwordHash string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
}
