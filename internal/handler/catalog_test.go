package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/RecipeBook_Go/internal/domain"
	"github.com/osse101/RecipeBook_Go/internal/recipe"
)

func TestHandleCatalog(t *testing.T) {
	t.Run("Default Limit", func(t *testing.T) {
		svc := &MockRecipeService{}
		svc.On("ListPublic", mock.Anything, recipe.DefaultPublicLimit).Return([]domain.Recipe{{ID: "r1", IsPublic: true}}, nil)

		w := httptest.NewRecorder()
		HandleCatalog(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"r1"`)
		svc.AssertExpectations(t)
	})

	t.Run("Explicit Limit", func(t *testing.T) {
		svc := &MockRecipeService{}
		svc.On("ListPublic", mock.Anything, 5).Return([]domain.Recipe{}, nil)

		w := httptest.NewRecorder()
		HandleCatalog(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog?limit=5", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"items":[]}`, w.Body.String())
	})

	t.Run("Bad Limit", func(t *testing.T) {
		svc := &MockRecipeService{}

		w := httptest.NewRecorder()
		HandleCatalog(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog?limit=-1", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidLimit)
		svc.AssertNotCalled(t, "ListPublic", mock.Anything, mock.Anything)
	})
}

func TestHandleCatalogRecipe(t *testing.T) {
	svc := &MockRecipeService{}
	svc.On("GetPublicByID", mock.Anything, "private").Return(nil, nil)

	req := withParam(httptest.NewRequest(http.MethodGet, "/api/catalog/private", nil), ParamID, "private")
	w := httptest.NewRecorder()
	HandleCatalogRecipe(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleCatalogIDs(t *testing.T) {
	svc := &MockRecipeService{}
	svc.On("ListPublicIDs", mock.Anything, 3).Return([]string{"a", "b"}, nil)

	w := httptest.NewRecorder()
	HandleCatalogIDs(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog/ids?limit=3", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"items":["a","b"]}`, w.Body.String())
}
