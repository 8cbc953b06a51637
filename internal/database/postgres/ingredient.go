package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RecipeBook_Go/internal/domain"
	"github.com/osse101/RecipeBook_Go/internal/repository"
)

// IngredientRepository implements repository.Ingredient
type IngredientRepository struct {
	db *pgxpool.Pool
}

// NewIngredientRepository creates a new IngredientRepository
func NewIngredientRepository(db *pgxpool.Pool) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// ListIngredients returns the shared pool in creation order
func (r *IngredientRepository) ListIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	rows, err := r.db.Query(ctx, listIngredients)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListIngredients, err)
	}
	return collectIngredients(rows)
}

// InsertIngredient stores a validated ingredient owned by authorID
func (r *IngredientRepository) InsertIngredient(ctx context.Context, authorID string, in domain.IngredientInput) (*domain.Ingredient, error) {
	row := r.db.QueryRow(ctx, insertIngredient,
		in.Name,
		in.NormalizedName,
		string(in.Category),
		string(in.Unit),
		in.PricePerUnit,
		in.Description,
		authorID,
	)
	ing, err := scanIngredient(row)
	if err != nil {
		if isPgError(err, PgErrorCodeUniqueViolation) {
			return nil, repository.ErrDuplicate
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertIngredient, err)
	}
	return ing, nil
}

// DeleteIngredientOwned deletes the ingredient only when authorID owns it
func (r *IngredientRepository) DeleteIngredientOwned(ctx context.Context, id, authorID string) (int64, error) {
	if !validUUID(id) || !validUUID(authorID) {
		return 0, nil
	}
	tag, err := r.db.Exec(ctx, deleteIngredientOwned, id, authorID)
	if err != nil {
		if isPgError(err, PgErrorCodeForeignKeyViolation) {
			return 0, repository.ErrInUse
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteIngredient, err)
	}
	return tag.RowsAffected(), nil
}

// ingredientRow holds one scanned row of ingredientColumns
type ingredientRow struct {
	id, name, normalized, category, unit string
	price                                pgtype.Numeric
	description, authorID                *string
	createdAt, updatedAt                 pgtype.Timestamptz
}

func (ir *ingredientRow) dest() []any {
	return []any{
		&ir.id, &ir.name, &ir.normalized, &ir.category, &ir.unit, &ir.price,
		&ir.description, &ir.authorID, &ir.createdAt, &ir.updatedAt,
	}
}

func (ir *ingredientRow) toDomain() (domain.Ingredient, error) {
	price, err := numericToPtr(ir.price)
	if err != nil {
		return domain.Ingredient{}, err
	}
	return domain.Ingredient{
		ID:             ir.id,
		Name:           ir.name,
		NormalizedName: ir.normalized,
		Category:       domain.Category(ir.category),
		Unit:           domain.Unit(ir.unit),
		PricePerUnit:   price,
		Description:    ir.description,
		AuthorID:       ir.authorID,
		CreatedAt:      ir.createdAt.Time,
		UpdatedAt:      ir.updatedAt.Time,
	}, nil
}

func scanIngredient(row pgx.Row) (*domain.Ingredient, error) {
	var ir ingredientRow
	if err := row.Scan(ir.dest()...); err != nil {
		return nil, err
	}
	ing, err := ir.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanIngredient, err)
	}
	return &ing, nil
}

func collectIngredients(rows pgx.Rows) ([]domain.Ingredient, error) {
	defer rows.Close()

	out := make([]domain.Ingredient, 0)
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanIngredient, err)
		}
		out = append(out, *ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListIngredients, err)
	}
	return out, nil
}
