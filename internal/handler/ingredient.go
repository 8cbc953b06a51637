package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/RecipeBook_Go/internal/store"
	"github.com/osse101/RecipeBook_Go/internal/validation"
)

// HandleListIngredients reloads the ingredient pool for the session
func HandleListIngredients(reg *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := containerFor(reg, r).Ingredients.Load(r.Context())
		if !res.Success {
			respondServiceError(w, r, "list_ingredients", res.Err)
			return
		}
		respondJSON(w, http.StatusOK, ListResponse{Success: true, Items: res.Item})
	}
}

// HandleCreateIngredient adds an ingredient owned by the requester
func HandleCreateIngredient(reg *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form validation.IngredientForm
		if !decodeJSON(w, r, &form, "Create ingredient") {
			return
		}

		res := containerFor(reg, r).Ingredients.Add(r.Context(), form)
		if !res.Success {
			respondServiceError(w, r, "create_ingredient", res.Err)
			return
		}
		respondJSON(w, http.StatusCreated, ItemResponse{Success: true, Item: res.Item})
	}
}

// HandleDeleteIngredient removes an ingredient the requester owns
func HandleDeleteIngredient(reg *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := containerFor(reg, r).Ingredients.Remove(r.Context(), chi.URLParam(r, ParamID))
		if !res.Success {
			respondServiceError(w, r, "delete_ingredient", res.Err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: MsgIngredientDeleted})
	}
}
