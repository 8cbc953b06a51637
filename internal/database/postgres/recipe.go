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

// RecipeRepository implements repository.Recipe
type RecipeRepository struct {
	db *pgxpool.Pool
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// ListRecipesVisible returns public recipes plus the viewer's private ones
func (r *RecipeRepository) ListRecipesVisible(ctx context.Context, viewerID *string) ([]domain.Recipe, error) {
	var viewer *string
	if viewerID != nil && validUUID(*viewerID) {
		viewer = viewerID
	}
	return listRecipes(ctx, r.db, listRecipesVisible, viewer)
}

// ListPublicRecipes returns the most recently updated public recipes
func (r *RecipeRepository) ListPublicRecipes(ctx context.Context, limit int) ([]domain.Recipe, error) {
	return listRecipes(ctx, r.db, listPublicRecipes, limit)
}

// ListPublicRecipeIDs returns the ids of the most recently updated public recipes
func (r *RecipeRepository) ListPublicRecipeIDs(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.db.Query(ctx, listPublicRecipeIDs, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPublicRecipeID, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPublicRecipeID, err)
	}
	return ids, nil
}

// GetRecipe returns the recipe with its ingredient lines
func (r *RecipeRepository) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	return getRecipeWith(ctx, r.db, id)
}

// DeleteRecipeOwned deletes the recipe only when authorID owns it; lines cascade
func (r *RecipeRepository) DeleteRecipeOwned(ctx context.Context, id, authorID string) (int64, error) {
	if !validUUID(id) || !validUUID(authorID) {
		return 0, nil
	}
	tag, err := r.db.Exec(ctx, deleteRecipeOwned, id, authorID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteRecipe, err)
	}
	return tag.RowsAffected(), nil
}

// BeginTx starts a recipe write transaction
func (r *RecipeRepository) BeginTx(ctx context.Context) (repository.RecipeTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &recipeTx{tx: tx}, nil
}

// recipeTx implements repository.RecipeTx
type recipeTx struct {
	tx pgx.Tx
}

func (t *recipeTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// Rollback is a no-op after Commit
func (t *recipeTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}

func (t *recipeTx) InsertRecipe(ctx context.Context, authorID string, in domain.RecipeInput) (string, error) {
	var id string
	err := t.tx.QueryRow(ctx, insertRecipe,
		in.Name, in.Description, in.Steps, in.ImageURL, in.IsPublic, authorID,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgFailedToInsertRecipe, err)
	}
	return id, nil
}

func (t *recipeTx) UpdateRecipeOwned(ctx context.Context, id, authorID string, in domain.RecipeInput) (int64, error) {
	if !validUUID(id) || !validUUID(authorID) {
		return 0, nil
	}
	tag, err := t.tx.Exec(ctx, updateRecipeOwned,
		id, authorID, in.Name, in.Description, in.Steps, in.ImageURL, in.IsPublic,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateRecipe, err)
	}
	return tag.RowsAffected(), nil
}

// ReplaceIngredients deletes every line of the recipe, then inserts lines in order
func (t *recipeTx) ReplaceIngredients(ctx context.Context, recipeID string, lines []domain.IngredientLine) error {
	if _, err := t.tx.Exec(ctx, deleteRecipeIngredients, recipeID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToClearRecipeLines, err)
	}

	batch := &pgx.Batch{}
	for i, line := range lines {
		if !validUUID(line.IngredientID) {
			return repository.ErrUnknownIngredient
		}
		batch.Queue(insertRecipeIngredient, recipeID, line.IngredientID, line.Quantity, i)
	}
	if batch.Len() == 0 {
		return nil
	}

	br := t.tx.SendBatch(ctx, batch)
	for range lines {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			if isPgError(err, PgErrorCodeForeignKeyViolation) {
				return repository.ErrUnknownIngredient
			}
			return fmt.Errorf("%s: %w", ErrMsgFailedToInsertRecipeLine, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertRecipeLine, err)
	}
	return nil
}

func (t *recipeTx) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	return getRecipeWith(ctx, t.tx, id)
}

// ---- shared helpers ----

func getRecipeWith(ctx context.Context, q querier, id string) (*domain.Recipe, error) {
	if !validUUID(id) {
		return nil, repository.ErrNotFound
	}
	rec, err := scanRecipe(q.QueryRow(ctx, getRecipe, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecipe, err)
	}

	recipes := []domain.Recipe{*rec}
	if err := attachIngredients(ctx, q, recipes); err != nil {
		return nil, err
	}
	return &recipes[0], nil
}

func listRecipes(ctx context.Context, q querier, sql string, args ...any) ([]domain.Recipe, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRecipes, err)
	}
	defer rows.Close()

	recipes := make([]domain.Recipe, 0)
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRecipe, err)
		}
		recipes = append(recipes, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRecipes, err)
	}
	rows.Close()

	if err := attachIngredients(ctx, q, recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func scanRecipe(row pgx.Row) (*domain.Recipe, error) {
	var (
		rec                  domain.Recipe
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&rec.ID, &rec.Name, &rec.Description, &rec.Steps, &rec.ImageURL, &rec.IsPublic,
		&rec.AuthorID, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.CreatedAt = createdAt.Time
	rec.UpdatedAt = updatedAt.Time
	rec.Ingredients = []domain.RecipeIngredient{}
	return &rec, nil
}

// attachIngredients loads the ordered lines of every recipe in one query
func attachIngredients(ctx context.Context, q querier, recipes []domain.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	index := make(map[string]int, len(recipes))
	ids := make([]string, len(recipes))
	for i, rec := range recipes {
		index[rec.ID] = i
		ids[i] = rec.ID
	}

	rows, err := q.Query(ctx, listRecipeIngredients, ids)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLoadRecipeLines, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			line     domain.RecipeIngredient
			recipeID string
			qty      pgtype.Numeric
			ir       ingredientRow
		)
		dest := append([]any{&line.ID, &recipeID, &line.IngredientID, &qty}, ir.dest()...)
		if err := rows.Scan(dest...); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToLoadRecipeLines, err)
		}
		if line.Quantity, err = numericToFloat64(qty); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToLoadRecipeLines, err)
		}
		ing, err := ir.toDomain()
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToLoadRecipeLines, err)
		}
		line.Ingredient = &ing

		if i, ok := index[recipeID]; ok {
			recipes[i].Ingredients = append(recipes[i].Ingredients, line)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLoadRecipeLines, err)
	}
	return nil
}
