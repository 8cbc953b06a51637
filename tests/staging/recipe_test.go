//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"
)

type stagingRecipe struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsPublic bool   `json:"isPublic"`
}

func TestAnonymousWritesRejected(t *testing.T) {
	resp, env := makeRequest(t, http.MethodPost, "/api/v1/ingredients", "", map[string]string{
		"name": "Nope", "category": "OTHER", "unit": "PIECES",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d. Error: %s", resp.StatusCode, env.Error)
	}
}

func TestSession(t *testing.T) {
	token := signUpAndIn(t)

	resp, env := makeRequest(t, http.MethodGet, "/api/v1/auth/session", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	var session struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Item, &session); err != nil {
		t.Fatalf("Failed to unmarshal session: %v", err)
	}
	if session.Status != "authenticated" {
		t.Errorf("Expected authenticated session, got %q", session.Status)
	}
}

// TestRecipeLifecycle walks a private recipe through create, visibility and delete
func TestRecipeLifecycle(t *testing.T) {
	token := signUpAndIn(t)
	suffix := time.Now().UnixNano()

	resp, env := makeRequest(t, http.MethodPost, "/api/v1/ingredients", token, map[string]string{
		"name":         fmt.Sprintf("Staging Salt %d", suffix),
		"category":     "SPICES",
		"unit":         "GRAMS",
		"pricePerUnit": "0.01",
	})
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		t.Fatalf("Create ingredient failed: %d %s", resp.StatusCode, env.Error)
	}
	var ingredient struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Item, &ingredient); err != nil {
		t.Fatalf("Failed to unmarshal ingredient: %v", err)
	}

	form := url.Values{}
	form.Set("name", fmt.Sprintf("Staging Soup %d", suffix))
	form.Set("isPublic", "false")
	form.Set("ingredient_0", ingredient.ID)
	form.Set("quantity_0", "5")
	resp, env = makeRequest(t, http.MethodPost, "/api/v1/recipes", token, form)
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		t.Fatalf("Create recipe failed: %d %s", resp.StatusCode, env.Error)
	}
	var recipe stagingRecipe
	if err := json.Unmarshal(env.Item, &recipe); err != nil {
		t.Fatalf("Failed to unmarshal recipe: %v", err)
	}
	if recipe.IsPublic {
		t.Error("Expected a private recipe")
	}

	t.Run("OwnerCanRead", func(t *testing.T) {
		resp, _ := makeRequest(t, http.MethodGet, "/api/v1/recipes/"+recipe.ID, token, nil)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d", resp.StatusCode)
		}
	})

	t.Run("HiddenFromVisitors", func(t *testing.T) {
		resp, _ := makeRequest(t, http.MethodGet, "/api/v1/recipes/"+recipe.ID, "", nil)
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", resp.StatusCode)
		}
	})

	t.Run("HiddenFromOtherUsers", func(t *testing.T) {
		other := signUpAndIn(t)
		resp, _ := makeRequest(t, http.MethodDelete, "/api/v1/recipes/"+recipe.ID, other, nil)
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", resp.StatusCode)
		}
	})

	t.Run("IngredientInUse", func(t *testing.T) {
		resp, _ := makeRequest(t, http.MethodDelete, "/api/v1/ingredients/"+ingredient.ID, token, nil)
		if resp.StatusCode != http.StatusConflict {
			t.Errorf("Expected status 409, got %d", resp.StatusCode)
		}
	})

	resp, env = makeRequest(t, http.MethodDelete, "/api/v1/recipes/"+recipe.ID, token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Delete recipe failed: %d %s", resp.StatusCode, env.Error)
	}
	resp, env = makeRequest(t, http.MethodDelete, "/api/v1/ingredients/"+ingredient.ID, token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Delete ingredient failed: %d %s", resp.StatusCode, env.Error)
	}
}

func TestCatalog(t *testing.T) {
	resp, env := makeRequest(t, http.MethodGet, "/api/v1/catalog?limit=5", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var recipes []stagingRecipe
	if err := json.Unmarshal(env.Items, &recipes); err != nil {
		t.Fatalf("Failed to unmarshal catalog: %v", err)
	}
	if len(recipes) > 5 {
		t.Errorf("Expected at most 5 recipes, got %d", len(recipes))
	}
	for _, r := range recipes {
		if !r.IsPublic {
			t.Errorf("Catalog leaked private recipe %s", r.ID)
		}
	}
}
