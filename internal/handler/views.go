package handler

import (
	"net/http"

	"github.com/osse101/RecipeBook_Go/internal/auth"
	"github.com/osse101/RecipeBook_Go/internal/policy"
	"github.com/osse101/RecipeBook_Go/internal/store"
	"github.com/osse101/RecipeBook_Go/internal/view"
)

// HandleIngredientsView renders the searchable, sortable ingredients table
// from the session store, loading it on first use or when refresh is set.
func HandleIngredientsView(reg *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := containerFor(reg, r)
		items, loaded := c.Ingredients.Items()
		if !loaded || queryBool(r, QueryRefresh) {
			c.Ingredients.Load(r.Context())
			items, _ = c.Ingredients.Items()
		}

		q := r.URL.Query()
		sort := view.ParseSort(q.Get(QuerySort), q.Get(QueryDir))
		respondJSON(w, http.StatusOK, ViewResponse{
			Success:   true,
			View:      view.IngredientsTable(items, q.Get(QuerySearch), sort),
			IsLoading: c.Ingredients.IsLoading(),
			Error:     c.Ingredients.Err(),
		})
	}
}

// HandleRecipesView renders the filtered recipe list with its counters
func HandleRecipesView(reg *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := containerFor(reg, r)
		items, loaded := c.Recipes.Items()
		if !loaded || queryBool(r, QueryRefresh) {
			c.Recipes.Load(r.Context())
			items, _ = c.Recipes.Items()
		}

		var userID *string
		identity := auth.IdentityFromContext(r.Context())
		if identity != nil {
			userID = &identity.UserID
		}

		q := r.URL.Query()
		filter := policy.ParsePartition(q.Get(QueryFilter))
		respondJSON(w, http.StatusOK, ViewResponse{
			Success:   true,
			View:      view.RecipesList(items, identity != nil, userID, filter, q.Get(QuerySearch)),
			IsLoading: c.Recipes.IsLoading(),
			Error:     c.Recipes.Err(),
		})
	}
}
