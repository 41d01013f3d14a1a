// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package view

import (
	"fmt"

	"github.com/pdiddy/forkify/pkg/types"
)

// previewLines renders one line per result, highlighting the one whose id
// matches the current location.
func previewLines(screen *Screen, results []types.SearchResult) []string {
	st := screen.Styles
	active := screen.Location.Hash()
	lines := make([]string, 0, len(results))
	for _, r := range results {
		marker := "  "
		title := r.Title
		if r.ID == active {
			marker = "> "
			title = st.Active.Render(title)
		}
		line := fmt.Sprintf("%s%s %s %s", marker, title, st.Muted.Render("- "+r.Publisher), st.Muted.Render("#"+r.ID))
		if r.Key != "" {
			line += " " + st.Bookmark.Render("(yours)")
		}
		lines = append(lines, line)
	}
	return lines
}

func noResults(r []types.SearchResult) bool { return len(r) == 0 }

// ResultsView lists the current page of search results.
type ResultsView struct {
	*View[[]types.SearchResult]
}

// NewResultsView returns a ResultsView drawing on screen.
func NewResultsView(screen *Screen) *ResultsView {
	v := &ResultsView{}
	v.View = newView("results", screen, func(r []types.SearchResult) []string {
		return previewLines(screen, r)
	})
	v.empty = noResults
	v.defaultError = "No recipes found for your query! Please try again ;)"
	return v
}

// Select navigates to the recipe with id, as clicking a preview does.
func (v *ResultsView) Select(id string) {
	v.screen.Location.SetHash(id)
}

// BookmarksView lists bookmarked recipes.
type BookmarksView struct {
	*View[[]types.SearchResult]
}

// NewBookmarksView returns a BookmarksView drawing on screen.
func NewBookmarksView(screen *Screen) *BookmarksView {
	v := &BookmarksView{}
	v.View = newView("bookmarks", screen, func(r []types.SearchResult) []string {
		return previewLines(screen, r)
	})
	v.empty = noResults
	v.defaultError = "No bookmarks yet. Find a nice recipe and bookmark it ;)"
	return v
}

// AddHandlerRender subscribes fn to page load.
func (v *BookmarksView) AddHandlerRender(fn func()) {
	v.screen.Location.On(EventLoad, func(any) { fn() })
}

// Select navigates to the bookmarked recipe with id.
func (v *BookmarksView) Select(id string) {
	v.screen.Location.SetHash(id)
}

// Previews converts recipes into list entries.
func Previews(recipes []*types.Recipe) []types.SearchResult {
	out := make([]types.SearchResult, len(recipes))
	for i, r := range recipes {
		out[i] = r.Preview()
	}
	return out
}
