// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package model holds application state and the operations that change it:
// loading recipes and search results, paging, servings scaling, bookmarks,
// and recipe upload.
package model

import (
	"sync"

	"github.com/pdiddy/forkify/pkg/types"
)

// State is the application state aggregate. It is constructed once and
// handed to a Store, which is the only writer. Readers get copies.
//
// The mutex guards individual reads and writes; it is never held across a
// network call. Two overlapping operations therefore resolve as
// last-write-wins.
type State struct {
	mu        sync.Mutex
	recipe    *types.Recipe
	search    types.Search
	bookmarks []*types.Recipe
}

// NewState returns an empty state with the given page size.
func NewState(resultsPerPage int) *State {
	if resultsPerPage <= 0 {
		resultsPerPage = types.DefaultResultsPerPage
	}
	return &State{
		search: types.Search{Page: 1, ResultsPerPage: resultsPerPage},
	}
}

// Recipe returns a copy of the current recipe, or nil when none is loaded.
func (s *State) Recipe() *types.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recipe.Clone()
}

// Search returns a copy of the current search state.
func (s *State) Search() types.Search {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.search
	c.Results = append([]types.SearchResult(nil), s.search.Results...)
	return c
}

// Bookmarks returns copies of the bookmarked recipes in insertion order.
func (s *State) Bookmarks() []*types.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*types.Recipe, len(s.bookmarks))
	for i, b := range s.bookmarks {
		out[i] = b.Clone()
	}
	return out
}

// IsBookmarked reports whether id is in the bookmark list.
func (s *State) IsBookmarked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookmarkIndex(id) >= 0
}

// bookmarkIndex requires s.mu.
func (s *State) bookmarkIndex(id string) int {
	for i, b := range s.bookmarks {
		if b.ID == id {
			return i
		}
	}
	return -1
}
