package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/RecipeBook_Go/internal/recipe"
)

// HandleCatalog lists the newest public recipes
func HandleCatalog(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := queryInt(w, r, QueryLimit, recipe.DefaultPublicLimit)
		if !ok {
			return
		}
		items, err := svc.ListPublic(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, "catalog", err)
			return
		}
		respondJSON(w, http.StatusOK, ListResponse{Success: true, Items: items})
	}
}

// HandleCatalogRecipe returns one public recipe
func HandleCatalogRecipe(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.GetPublicByID(r.Context(), chi.URLParam(r, ParamID))
		if err != nil {
			respondServiceError(w, r, "catalog_recipe", err)
			return
		}
		if rec == nil {
			respondError(w, http.StatusNotFound, ErrMsgRecipeNotFound)
			return
		}
		respondJSON(w, http.StatusOK, ItemResponse{Success: true, Item: rec})
	}
}

// HandleCatalogIDs lists public recipe ids for static page generation
func HandleCatalogIDs(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := queryInt(w, r, QueryLimit, recipe.DefaultPublicLimit)
		if !ok {
			return
		}
		ids, err := svc.ListPublicIDs(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, "catalog_ids", err)
			return
		}
		respondJSON(w, http.StatusOK, ListResponse{Success: true, Items: ids})
	}
}
