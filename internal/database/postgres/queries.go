package postgres

// ---- users ----

const createUser = `
INSERT INTO users (email, password_hash)
VALUES ($1, $2)
RETURNING id::text, email, password_hash, created_at`

const getUserByEmail = `
SELECT id::text, email, password_hash, created_at
FROM users
WHERE email = $1`

const getUserByID = `
SELECT id::text, email, password_hash, created_at
FROM users
WHERE id = $1`

// ---- ingredients ----

const ingredientColumns = `id::text, name, normalized_name, category, unit, price_per_unit,
       description, author_id::text, created_at, updated_at`

const listIngredients = `
SELECT ` + ingredientColumns + `
FROM ingredients
ORDER BY created_at, id`

const insertIngredient = `
INSERT INTO ingredients (name, normalized_name, category, unit, price_per_unit, description, author_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + ingredientColumns

const deleteIngredientOwned = `
DELETE FROM ingredients
WHERE id = $1 AND author_id = $2`

// ---- recipes ----

const recipeColumns = `id::text, name, description, steps, image_url, is_public,
       author_id::text, created_at, updated_at`

const listRecipesVisible = `
SELECT ` + recipeColumns + `
FROM recipes
WHERE is_public OR ($1::uuid IS NOT NULL AND author_id = $1::uuid)
ORDER BY created_at, id`

const listPublicRecipes = `
SELECT ` + recipeColumns + `
FROM recipes
WHERE is_public
ORDER BY updated_at DESC, id
LIMIT $1`

const listPublicRecipeIDs = `
SELECT id::text
FROM recipes
WHERE is_public
ORDER BY updated_at DESC, id
LIMIT $1`

const getRecipe = `
SELECT ` + recipeColumns + `
FROM recipes
WHERE id = $1`

const insertRecipe = `
INSERT INTO recipes (name, description, steps, image_url, is_public, author_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id::text`

const updateRecipeOwned = `
UPDATE recipes
SET name = $3, description = $4, steps = $5, image_url = $6, is_public = $7, updated_at = NOW()
WHERE id = $1 AND author_id = $2`

const deleteRecipeOwned = `
DELETE FROM recipes
WHERE id = $1 AND author_id = $2`

const deleteRecipeIngredients = `
DELETE FROM recipe_ingredients
WHERE recipe_id = $1`

const insertRecipeIngredient = `
INSERT INTO recipe_ingredients (recipe_id, ingredient_id, quantity, position)
VALUES ($1, $2, $3, $4)`

const listRecipeIngredients = `
SELECT ri.id::text, ri.recipe_id::text, ri.ingredient_id::text, ri.quantity,
       i.id::text, i.name, i.normalized_name, i.category, i.unit, i.price_per_unit,
       i.description, i.author_id::text, i.created_at, i.updated_at
FROM recipe_ingredients ri
JOIN ingredients i ON i.id = ri.ingredient_id
WHERE ri.recipe_id = ANY($1::text[]::uuid[])
ORDER BY ri.recipe_id, ri.position`
