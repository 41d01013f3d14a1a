// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the forkify recipe browser:
// recipes and their ingredients, search results, user-submitted recipe forms,
// configuration, and the error kinds surfaced by the API client.
package types

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	// Quantity is nil when the source gives no amount (e.g. "salt to taste").
	Quantity *float64 `json:"quantity" yaml:"quantity"`

	// Unit is the measurement unit ("kg", "cups"); may be empty.
	Unit string `json:"unit" yaml:"unit"`

	// Description names the ingredient.
	Description string `json:"description" yaml:"description"`
}

// Recipe is a fully loaded recipe as held in application state.
type Recipe struct {
	ID          string       `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Publisher   string       `json:"publisher" yaml:"publisher"`
	SourceURL   string       `json:"sourceUrl" yaml:"source_url"`
	ImageURL    string       `json:"image" yaml:"image_url"`
	CookingTime int          `json:"cookingTime" yaml:"cooking_time"`
	Servings    int          `json:"servings" yaml:"servings"`
	Ingredients []Ingredient `json:"ingredients" yaml:"ingredients"`

	// Bookmarked is set when the recipe id appears in the bookmark list.
	Bookmarked bool `json:"bookmarked,omitempty" yaml:"bookmarked,omitempty"`

	// Key is the API key the recipe was uploaded with. Only user-submitted
	// recipes carry one.
	Key string `json:"key,omitempty" yaml:"key,omitempty"`
}

// Clone returns a deep copy so callers can hold a recipe without sharing
// ingredient quantities with state.
func (r *Recipe) Clone() *Recipe {
	if r == nil {
		return nil
	}
	c := *r
	c.Ingredients = make([]Ingredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		c.Ingredients[i] = ing
		if ing.Quantity != nil {
			q := *ing.Quantity
			c.Ingredients[i].Quantity = &q
		}
	}
	return &c
}

// Preview returns the lightweight summary used by result and bookmark lists.
func (r *Recipe) Preview() SearchResult {
	return SearchResult{
		ID:        r.ID,
		Title:     r.Title,
		Publisher: r.Publisher,
		ImageURL:  r.ImageURL,
		Key:       r.Key,
	}
}

// SearchResult is a recipe summary returned by a search query.
type SearchResult struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Publisher string `json:"publisher" yaml:"publisher"`
	ImageURL  string `json:"image" yaml:"image_url"`
	Key       string `json:"key,omitempty" yaml:"key,omitempty"`
}

// Search holds the result set of the most recent query and the page cursor.
type Search struct {
	Query          string         `json:"query"`
	Results        []SearchResult `json:"results"`
	Page           int            `json:"page"`
	ResultsPerPage int            `json:"resultsPerPage"`
}

// NumPages returns ceil(len(Results) / ResultsPerPage).
func (s Search) NumPages() int {
	if s.ResultsPerPage <= 0 {
		return 0
	}
	return (len(s.Results) + s.ResultsPerPage - 1) / s.ResultsPerPage
}

// RecipeForm is a recipe as typed by the user before upload. Each entry of
// Ingredients is a "quantity,unit,description" line.
type RecipeForm struct {
	Title       string   `json:"title" yaml:"title"`
	SourceURL   string   `json:"sourceUrl" yaml:"source_url"`
	ImageURL    string   `json:"image" yaml:"image_url"`
	Publisher   string   `json:"publisher" yaml:"publisher"`
	CookingTime int      `json:"cookingTime" yaml:"cooking_time"`
	Servings    int      `json:"servings" yaml:"servings"`
	Ingredients []string `json:"ingredients" yaml:"ingredients"`
}
