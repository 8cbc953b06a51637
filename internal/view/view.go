// Package view derives what list screens show from cached items. Every
// function is pure and returns fresh slices.
package view

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/RecipeBook_Go/internal/domain"
	"github.com/osse101/RecipeBook_Go/internal/policy"
)

// VisibleRecipes applies the partition. Visitors only ever see public recipes.
func VisibleRecipes(recipes []domain.Recipe, authenticated bool, filter policy.Partition, viewer *domain.Identity) []domain.Recipe {
	if !authenticated {
		viewer = nil
	}
	p := policy.EffectivePartition(filter, authenticated)

	out := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if policy.InPartition(r, p, viewer) {
			out = append(out, r)
		}
	}
	return out
}

// SearchRecipes matches query against recipe names. A blank query matches everything.
func SearchRecipes(recipes []domain.Recipe, query string) []domain.Recipe {
	q, ok := foldQuery(query)
	if !ok {
		return append(make([]domain.Recipe, 0, len(recipes)), recipes...)
	}
	fold := cases.Fold()
	out := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if strings.Contains(fold.String(r.Name), q) {
			out = append(out, r)
		}
	}
	return out
}

// SearchIngredients matches query against name, description, category
// label and unit label. A blank query matches everything.
func SearchIngredients(items []domain.Ingredient, query string) []domain.Ingredient {
	q, ok := foldQuery(query)
	if !ok {
		return append(make([]domain.Ingredient, 0, len(items)), items...)
	}
	fold := cases.Fold()
	out := make([]domain.Ingredient, 0, len(items))
	for _, it := range items {
		desc := ""
		if it.Description != nil {
			desc = *it.Description
		}
		for _, field := range []string{it.Name, desc, it.Category.Label(), it.Unit.Label()} {
			if strings.Contains(fold.String(field), q) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

func foldQuery(query string) (string, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return "", false
	}
	return cases.Fold().String(q), true
}

// IngredientsTableState is what the ingredients table renders
type IngredientsTableState struct {
	Rows        []domain.Ingredient `json:"rows"`
	HasAny      bool                `json:"hasAny"`
	IsSearching bool                `json:"isSearching"`
}

// IngredientsTable searches then sorts. nil items means never loaded.
func IngredientsTable(items []domain.Ingredient, query string, sort SortDescriptor) IngredientsTableState {
	state := IngredientsTableState{
		Rows:        []domain.Ingredient{},
		HasAny:      len(items) > 0,
		IsSearching: strings.TrimSpace(query) != "",
	}
	if items == nil {
		return state
	}
	state.Rows = SortIngredients(SearchIngredients(items, query), sort)
	return state
}

// RecipesListState is what the recipes list renders
type RecipesListState struct {
	IsInitial            bool            `json:"isInitial"`
	HasRecipes           bool            `json:"hasRecipes"`
	Recipes              []domain.Recipe `json:"recipes"`
	PublicCount          int             `json:"publicCount"`
	MyPrivateCount       int             `json:"myPrivateCount"`
	TotalInCurrentFilter int             `json:"totalInCurrentFilter"`
}

// RecipesList runs visibility then search. Counts are taken over every
// cached recipe; the total is the partition size before searching.
func RecipesList(items []domain.Recipe, authenticated bool, userID *string, filter policy.Partition, query string) RecipesListState {
	state := RecipesListState{
		IsInitial:  items == nil,
		HasRecipes: len(items) > 0,
		Recipes:    []domain.Recipe{},
	}
	if items == nil {
		return state
	}

	var viewer *domain.Identity
	if userID != nil {
		viewer = &domain.Identity{UserID: *userID}
	}
	visible := VisibleRecipes(items, authenticated, filter, viewer)
	state.TotalInCurrentFilter = len(visible)
	state.Recipes = SearchRecipes(visible, query)

	for _, r := range items {
		switch {
		case r.IsPublic:
			state.PublicCount++
		case userID != nil && r.AuthorID != nil && *r.AuthorID == *userID:
			state.MyPrivateCount++
		}
	}
	return state
}
