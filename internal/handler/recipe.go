package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/RecipeBook_Go/internal/recipe"
	"github.com/osse101/RecipeBook_Go/internal/store"
)

// HandleListRecipes reloads every recipe the requester may read
func HandleListRecipes(reg *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := containerFor(reg, r).Recipes.Load(r.Context())
		if !res.Success {
			respondServiceError(w, r, "list_recipes", res.Err)
			return
		}
		respondJSON(w, http.StatusOK, ListResponse{Success: true, Items: res.Item})
	}
}

// HandleGetRecipe returns one readable recipe. Missing and private-to-
// someone-else look the same.
func HandleGetRecipe(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.GetByID(r.Context(), chi.URLParam(r, ParamID))
		if err != nil {
			respondServiceError(w, r, "get_recipe", err)
			return
		}
		if rec == nil {
			respondError(w, http.StatusNotFound, ErrMsgRecipeNotFound)
			return
		}
		respondJSON(w, http.StatusOK, ItemResponse{Success: true, Item: rec})
	}
}

// HandleCreateRecipe accepts the url-encoded recipe form
func HandleCreateRecipe(reg *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := readForm(w, r, "Create recipe")
		if !ok {
			return
		}

		res := containerFor(reg, r).Recipes.Add(r.Context(), form)
		if !res.Success {
			respondServiceError(w, r, "create_recipe", res.Err)
			return
		}
		respondJSON(w, http.StatusCreated, ItemResponse{Success: true, Item: res.Item})
	}
}

// HandleUpdateRecipe replaces a recipe and its ingredient lines
func HandleUpdateRecipe(reg *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := readForm(w, r, "Update recipe")
		if !ok {
			return
		}

		res := containerFor(reg, r).Recipes.Update(r.Context(), chi.URLParam(r, ParamID), form)
		if !res.Success {
			respondServiceError(w, r, "update_recipe", res.Err)
			return
		}
		respondJSON(w, http.StatusOK, ItemResponse{Success: true, Item: res.Item})
	}
}

// HandleDeleteRecipe removes a recipe the requester owns
func HandleDeleteRecipe(reg *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := containerFor(reg, r).Recipes.Remove(r.Context(), chi.URLParam(r, ParamID))
		if !res.Success {
			respondServiceError(w, r, "delete_recipe", res.Err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: MsgRecipeDeleted})
	}
}
