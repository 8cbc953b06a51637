package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a referenced row is missing or still referenced
	PgErrorCodeForeignKeyViolation = "23503"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToInsertUser = "failed to insert user"
	ErrMsgFailedToGetUser    = "failed to get user"
)

// Error Messages - Ingredient Operations
const (
	ErrMsgFailedToListIngredients  = "failed to list ingredients"
	ErrMsgFailedToInsertIngredient = "failed to insert ingredient"
	ErrMsgFailedToDeleteIngredient = "failed to delete ingredient"
	ErrMsgFailedToScanIngredient   = "failed to scan ingredient"
)

// Error Messages - Recipe Operations
const (
	ErrMsgFailedToListRecipes        = "failed to list recipes"
	ErrMsgFailedToGetRecipe          = "failed to get recipe"
	ErrMsgFailedToInsertRecipe       = "failed to insert recipe"
	ErrMsgFailedToUpdateRecipe       = "failed to update recipe"
	ErrMsgFailedToDeleteRecipe       = "failed to delete recipe"
	ErrMsgFailedToLoadRecipeLines    = "failed to load recipe ingredients"
	ErrMsgFailedToClearRecipeLines   = "failed to clear recipe ingredients"
	ErrMsgFailedToInsertRecipeLine   = "failed to insert recipe ingredient"
	ErrMsgFailedToScanRecipe         = "failed to scan recipe"
	ErrMsgFailedToListPublicRecipeID = "failed to list public recipe ids"
)
