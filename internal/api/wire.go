// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package api

import "github.com/pdiddy/forkify/pkg/types"

// Envelope is the JSON wrapper every API response arrives in. Field names
// in this file follow the API's snake_case.
type Envelope struct {
	Status  string       `json:"status"`
	Message string       `json:"message,omitempty"`
	Results int          `json:"results,omitempty"`
	Data    EnvelopeData `json:"data"`
}

type EnvelopeData struct {
	Recipe  *apiRecipe        `json:"recipe,omitempty"`
	Recipes []apiSearchResult `json:"recipes,omitempty"`
}

type apiRecipe struct {
	ID          string          `json:"id,omitempty"`
	Title       string          `json:"title"`
	Publisher   string          `json:"publisher"`
	SourceURL   string          `json:"source_url"`
	ImageURL    string          `json:"image_url"`
	Servings    int             `json:"servings"`
	CookingTime int             `json:"cooking_time"`
	Ingredients []apiIngredient `json:"ingredients"`
	Key         string          `json:"key,omitempty"`
}

type apiIngredient struct {
	Quantity    *float64 `json:"quantity"`
	Unit        string   `json:"unit"`
	Description string   `json:"description"`
}

type apiSearchResult struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	ImageURL  string `json:"image_url"`
	Key       string `json:"key,omitempty"`
}

// normalizeRecipe converts the API shape into the internal Recipe.
func normalizeRecipe(r *apiRecipe) *types.Recipe {
	out := &types.Recipe{
		ID:          r.ID,
		Title:       r.Title,
		Publisher:   r.Publisher,
		SourceURL:   r.SourceURL,
		ImageURL:    r.ImageURL,
		Servings:    r.Servings,
		CookingTime: r.CookingTime,
		Key:         r.Key,
		Ingredients: make([]types.Ingredient, len(r.Ingredients)),
	}
	for i, ing := range r.Ingredients {
		out.Ingredients[i] = types.Ingredient{
			Quantity:    ing.Quantity,
			Unit:        ing.Unit,
			Description: ing.Description,
		}
	}
	return out
}

// denormalizeRecipe converts an internal Recipe into the upload payload.
// The id and bookmark flag are never sent.
func denormalizeRecipe(r *types.Recipe) *apiRecipe {
	out := &apiRecipe{
		Title:       r.Title,
		Publisher:   r.Publisher,
		SourceURL:   r.SourceURL,
		ImageURL:    r.ImageURL,
		Servings:    r.Servings,
		CookingTime: r.CookingTime,
		Ingredients: make([]apiIngredient, len(r.Ingredients)),
	}
	for i, ing := range r.Ingredients {
		out.Ingredients[i] = apiIngredient{
			Quantity:    ing.Quantity,
			Unit:        ing.Unit,
			Description: ing.Description,
		}
	}
	return out
}

func normalizeResults(in []apiSearchResult) []types.SearchResult {
	out := make([]types.SearchResult, len(in))
	for i, r := range in {
		out[i] = types.SearchResult{
			ID:        r.ID,
			Title:     r.Title,
			Publisher: r.Publisher,
			ImageURL:  r.ImageURL,
			Key:       r.Key,
		}
	}
	return out
}
