package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RecipeBook_Go/internal/domain"
	"github.com/osse101/RecipeBook_Go/internal/repository"
)

// UserRepository implements repository.User
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts an account. The unique email constraint decides duplicates.
func (r *UserRepository) CreateUser(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, createUser, email, passwordHash))
	if err != nil {
		if isPgError(err, PgErrorCodeUniqueViolation) {
			return nil, repository.ErrDuplicate
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertUser, err)
	}
	return user, nil
}

// GetUserByEmail returns repository.ErrNotFound for unknown addresses
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, getUserByEmail, email)
}

// GetUserByID returns repository.ErrNotFound for unknown or malformed ids
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	if !validUUID(id) {
		return nil, repository.ErrNotFound
	}
	return r.getUser(ctx, getUserByID, id)
}

func (r *UserRepository) getUser(ctx context.Context, sql string, arg string) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, sql, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return user, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u         domain.User
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &createdAt); err != nil {
		return nil, err
	}
	u.CreatedAt = createdAt.Time
	return &u, nil
}
