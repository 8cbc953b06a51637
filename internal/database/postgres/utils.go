package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// validUUID reports whether id can be sent as a uuid parameter.
// Malformed ids behave like missing rows instead of raising 22P02.
func validUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// isPgError reports whether err carries the given PostgreSQL error code
func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// numericToFloat64 safely converts pgtype.Numeric to float64.
// Returns (0, error) if conversion fails instead of silently ignoring errors.
func numericToFloat64(n pgtype.Numeric) (float64, error) {
	val, err := n.Float64Value()
	if err != nil {
		return 0, fmt.Errorf("failed to convert numeric to float64: %w", err)
	}
	return val.Float64, nil
}

// numericToPtr maps SQL NULL to nil
func numericToPtr(n pgtype.Numeric) (*float64, error) {
	if !n.Valid {
		return nil, nil
	}
	f, err := numericToFloat64(n)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
