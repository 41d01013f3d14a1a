// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package model

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/forkify/internal/storage"
	"github.com/pdiddy/forkify/pkg/types"
)

// RecipeAPI is the subset of the API client the Store needs.
type RecipeAPI interface {
	GetRecipe(ctx context.Context, id string) (*types.Recipe, error)
	SearchRecipes(ctx context.Context, query string) ([]types.SearchResult, error)
	CreateRecipe(ctx context.Context, r *types.Recipe) (*types.Recipe, error)
}

// Store performs every mutation of a State. API errors are returned
// unchanged so callers can classify them with errors.Is.
type Store struct {
	state        *State
	api          RecipeAPI
	storage      storage.Storage
	bookmarksKey string
	logger       *zap.Logger
}

// NewStore wires a Store to its state, API client and bookmark storage.
func NewStore(state *State, api RecipeAPI, st storage.Storage, bookmarksKey string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if bookmarksKey == "" {
		bookmarksKey = types.DefaultBookmarksKey
	}
	return &Store{
		state:        state,
		api:          api,
		storage:      st,
		bookmarksKey: bookmarksKey,
		logger:       logger,
	}
}

// State returns the state this store mutates.
func (s *Store) State() *State { return s.state }

// LoadRecipe fetches the recipe with the given id and makes it current,
// marking it bookmarked when the id is in the bookmark list. On failure the
// current recipe is left untouched.
func (s *Store) LoadRecipe(ctx context.Context, id string) error {
	r, err := s.api.GetRecipe(ctx, id)
	if err != nil {
		return err
	}

	st := s.state
	st.mu.Lock()
	r.Bookmarked = st.bookmarkIndex(r.ID) >= 0
	st.recipe = r
	st.mu.Unlock()

	s.logger.Debug("recipe loaded", zap.String("id", r.ID), zap.Bool("bookmarked", r.Bookmarked))
	return nil
}

// LoadSearchResults replaces the search state with the results for query
// and resets the page cursor to 1. A query with no matches leaves an empty
// result set and returns types.ErrEmptyResults.
func (s *Store) LoadSearchResults(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return fmt.Errorf("%w: search query is empty", types.ErrValidation)
	}

	results, err := s.api.SearchRecipes(ctx, query)
	if err != nil {
		return err
	}

	st := s.state
	st.mu.Lock()
	st.search = types.Search{
		Query:          query,
		Results:        results,
		Page:           1,
		ResultsPerPage: st.search.ResultsPerPage,
	}
	st.mu.Unlock()

	s.logger.Debug("search loaded", zap.String("query", query), zap.Int("results", len(results)))
	if len(results) == 0 {
		return types.ErrEmptyResults
	}
	return nil
}

// SearchResultsPage returns the results on the current page.
func (s *Store) SearchResultsPage() []types.SearchResult {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()
	return pageSlice(st.search, st.search.Page)
}

// SearchResultsPageAt returns the results on the given page and moves the
// cursor there. A page outside [1, NumPages] yields an empty slice and
// leaves the cursor where it was.
func (s *Store) SearchResultsPageAt(page int) []types.SearchResult {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()
	if page < 1 || page > st.search.NumPages() {
		return []types.SearchResult{}
	}
	st.search.Page = page
	return pageSlice(st.search, page)
}

// NumPages returns the number of result pages for the current search.
func (s *Store) NumPages() int {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.search.NumPages()
}

func pageSlice(search types.Search, page int) []types.SearchResult {
	per := search.ResultsPerPage
	start := (page - 1) * per
	if page < 1 || start >= len(search.Results) {
		return []types.SearchResult{}
	}
	end := min(start+per, len(search.Results))
	return append([]types.SearchResult(nil), search.Results[start:end]...)
}

// UpdateServings rescales every ingredient quantity of the current recipe
// by newServings/servings and records the new servings. Ingredients without
// a quantity are left alone.
func (s *Store) UpdateServings(newServings int) error {
	if newServings <= 0 {
		return fmt.Errorf("%w: servings must be positive, got %d", types.ErrValidation, newServings)
	}

	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()

	r := st.recipe
	if r == nil {
		return fmt.Errorf("%w: no recipe loaded", types.ErrValidation)
	}
	if r.Servings == newServings {
		return nil
	}
	if r.Servings <= 0 {
		return fmt.Errorf("%w: recipe %s has no servings to scale from", types.ErrValidation, r.ID)
	}

	old := float64(r.Servings)
	for i := range r.Ingredients {
		q := r.Ingredients[i].Quantity
		if q == nil {
			continue
		}
		scaled := *q * float64(newServings) / old
		r.Ingredients[i].Quantity = &scaled
	}
	r.Servings = newServings
	return nil
}

// AddBookmark appends r to the bookmark list and persists the list. When r
// is the current recipe it is marked bookmarked. Adding an id that is
// already bookmarked changes nothing.
func (s *Store) AddBookmark(ctx context.Context, r *types.Recipe) error {
	if r == nil || r.ID == "" {
		return fmt.Errorf("%w: cannot bookmark a recipe without an id", types.ErrValidation)
	}

	st := s.state
	st.mu.Lock()
	if st.bookmarkIndex(r.ID) >= 0 {
		st.mu.Unlock()
		return nil
	}
	b := r.Clone()
	b.Bookmarked = true
	st.bookmarks = append(st.bookmarks, b)
	if st.recipe != nil && st.recipe.ID == r.ID {
		st.recipe.Bookmarked = true
	}
	data, err := json.Marshal(st.bookmarks)
	st.mu.Unlock()

	if err != nil {
		return fmt.Errorf("encoding bookmarks: %w", err)
	}
	return s.persist(ctx, data)
}

// DeleteBookmark removes id from the bookmark list and persists the list.
// Unknown ids are ignored.
func (s *Store) DeleteBookmark(ctx context.Context, id string) error {
	st := s.state
	st.mu.Lock()
	idx := st.bookmarkIndex(id)
	if idx < 0 {
		st.mu.Unlock()
		return nil
	}
	st.bookmarks = append(st.bookmarks[:idx], st.bookmarks[idx+1:]...)
	if st.recipe != nil && st.recipe.ID == id {
		st.recipe.Bookmarked = false
	}
	data, err := json.Marshal(st.bookmarks)
	st.mu.Unlock()

	if err != nil {
		return fmt.Errorf("encoding bookmarks: %w", err)
	}
	return s.persist(ctx, data)
}

// ToggleBookmark bookmarks the current recipe, or removes its bookmark if it
// already has one.
func (s *Store) ToggleBookmark(ctx context.Context) error {
	r := s.state.Recipe()
	if r == nil {
		return fmt.Errorf("%w: no recipe loaded", types.ErrValidation)
	}
	if r.Bookmarked {
		return s.DeleteBookmark(ctx, r.ID)
	}
	return s.AddBookmark(ctx, r)
}

func (s *Store) persist(ctx context.Context, data []byte) error {
	if s.storage == nil {
		return nil
	}
	if err := s.storage.Set(ctx, s.bookmarksKey, string(data)); err != nil {
		return fmt.Errorf("saving bookmarks: %w", err)
	}
	return nil
}

// Restore loads the persisted bookmark list into state. A missing key
// leaves the list empty. Stored data that does not decode is logged and
// ignored so a corrupt entry never blocks startup.
func (s *Store) Restore(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}
	raw, err := s.storage.Get(ctx, s.bookmarksKey)
	if errors.Is(err, storage.ErrNoKey) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading bookmarks: %w", err)
	}

	var stored []*types.Recipe
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.logger.Warn("ignoring unreadable bookmarks", zap.String("key", s.bookmarksKey), zap.Error(err))
		return nil
	}

	seen := make(map[string]bool, len(stored))
	bookmarks := make([]*types.Recipe, 0, len(stored))
	for _, b := range stored {
		if b == nil || b.ID == "" || seen[b.ID] {
			continue
		}
		seen[b.ID] = true
		b.Bookmarked = true
		bookmarks = append(bookmarks, b)
	}

	st := s.state
	st.mu.Lock()
	st.bookmarks = bookmarks
	if st.recipe != nil {
		st.recipe.Bookmarked = seen[st.recipe.ID]
	}
	st.mu.Unlock()

	s.logger.Debug("bookmarks restored", zap.Int("count", len(bookmarks)))
	return nil
}

// ClearBookmarks drops every bookmark and removes the stored list.
func (s *Store) ClearBookmarks(ctx context.Context) error {
	st := s.state
	st.mu.Lock()
	st.bookmarks = nil
	if st.recipe != nil {
		st.recipe.Bookmarked = false
	}
	st.mu.Unlock()

	if s.storage == nil {
		return nil
	}
	if err := s.storage.Remove(ctx, s.bookmarksKey); err != nil {
		return fmt.Errorf("clearing bookmarks: %w", err)
	}
	return nil
}

// UploadRecipe validates form, uploads the recipe, makes the stored copy
// current and bookmarks it. Validation failures return before any network
// call.
func (s *Store) UploadRecipe(ctx context.Context, form types.RecipeForm) error {
	r, err := RecipeFromForm(form)
	if err != nil {
		return err
	}

	created, err := s.api.CreateRecipe(ctx, r)
	if err != nil {
		return err
	}

	bookmark := created.Clone()

	st := s.state
	st.mu.Lock()
	st.recipe = created
	st.mu.Unlock()

	s.logger.Info("recipe uploaded", zap.String("id", created.ID), zap.String("title", created.Title))
	return s.AddBookmark(ctx, bookmark)
}
