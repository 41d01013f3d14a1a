// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package controller connects views to the model. It subscribes to every
// view's events at Init and, for each user action, shows progress, calls
// the Store, and tells the affected views to render or update. It is the
// only layer that turns errors into messages for the user.
package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pdiddy/forkify/internal/model"
	"github.com/pdiddy/forkify/internal/view"
	"github.com/pdiddy/forkify/pkg/types"
)

// RecipeErrorMessage is shown whenever a recipe fails to load, whatever the
// cause.
const RecipeErrorMessage = "We could not load that recipe. Please try another one!"

// Views groups the views a Controller drives.
type Views struct {
	Recipe     *view.RecipeView
	Search     *view.SearchView
	Results    *view.ResultsView
	Pagination *view.PaginationView
	Bookmarks  *view.BookmarksView
	AddRecipe  *view.AddRecipeView
}

// NewViews builds every view on screen.
func NewViews(screen *view.Screen) Views {
	return Views{
		Recipe:     view.NewRecipeView(screen),
		Search:     view.NewSearchView(),
		Results:    view.NewResultsView(screen),
		Pagination: view.NewPaginationView(screen),
		Bookmarks:  view.NewBookmarksView(screen),
		AddRecipe:  view.NewAddRecipeView(screen),
	}
}

// Controller holds no application state of its own.
type Controller struct {
	ctx        context.Context
	store      *model.Store
	views      Views
	location   *view.Location
	logger     *zap.Logger
	modalClose time.Duration

	// AfterFunc schedules the upload form to close. Tests replace it to
	// run the callback synchronously.
	AfterFunc func(d time.Duration, fn func())

	errMu   sync.Mutex
	lastErr error
}

// New returns a Controller. ctx bounds every store operation it starts.
func New(ctx context.Context, store *model.Store, views Views, location *view.Location, modalClose time.Duration, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		ctx:        ctx,
		store:      store,
		views:      views,
		location:   location,
		logger:     logger,
		modalClose: modalClose,
		AfterFunc:  func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
	}
}

// Init subscribes the controller to every view.
func (c *Controller) Init() {
	c.views.Bookmarks.AddHandlerRender(c.controlBookmarks)
	c.views.Recipe.AddHandlerRender(c.controlRecipes)
	c.views.Recipe.AddHandlerUpdateServings(c.controlServings)
	c.views.Recipe.AddHandlerAddBookmark(c.controlAddBookmark)
	c.views.Search.AddHandlerSearch(c.controlSearchResults)
	c.views.Pagination.AddHandlerClick(c.controlPagination)
	c.views.AddRecipe.AddHandlerUpload(c.controlAddRecipe)
}

// Err returns the failure of the most recently finished action, or nil if
// it succeeded.
func (c *Controller) Err() error {
	c.errMu.Lock()
	defer c.errMu.Unlock()
	return c.lastErr
}

func (c *Controller) finish(log *zap.Logger, err error) {
	c.errMu.Lock()
	c.lastErr = err
	c.errMu.Unlock()
	if err != nil {
		log.Warn("action failed", zap.Error(err))
		return
	}
	log.Debug("action done")
}

func (c *Controller) action(name string) *zap.Logger {
	log := c.logger.With(zap.String("action", name), zap.String("action_id", uuid.NewString()))
	log.Debug("action start")
	return log
}

func (c *Controller) bookmarkPreviews() []types.SearchResult {
	return view.Previews(c.store.State().Bookmarks())
}

func (c *Controller) controlRecipes() {
	id := c.location.Hash()
	if id == "" {
		return
	}
	log := c.action("recipe").With(zap.String("id", id))
	c.views.Recipe.RenderSpinner()

	// Refresh the selection marker in both lists.
	c.views.Results.Update(c.store.SearchResultsPage())
	c.views.Bookmarks.Update(c.bookmarkPreviews())

	if err := c.store.LoadRecipe(c.ctx, id); err != nil {
		c.views.Recipe.RenderError(RecipeErrorMessage)
		c.finish(log, err)
		return
	}
	c.views.Recipe.Render(c.store.State().Recipe())
	c.finish(log, nil)
}

func (c *Controller) controlSearchResults() {
	query := c.views.Search.Query()
	if query == "" {
		return
	}
	log := c.action("search").With(zap.String("query", query))
	c.views.Results.RenderSpinner()

	err := c.store.LoadSearchResults(c.ctx, query)
	switch {
	case errors.Is(err, types.ErrEmptyResults):
		c.views.Results.Render(nil)
		c.views.Pagination.Render(c.store.State().Search())
	case err != nil:
		c.views.Results.RenderError(UserMessage(err))
	default:
		c.views.Results.Render(c.store.SearchResultsPage())
		c.views.Pagination.Render(c.store.State().Search())
	}
	c.finish(log, err)
}

func (c *Controller) controlPagination(goTo int) {
	log := c.action("paginate").With(zap.Int("page", goTo))
	page := c.store.SearchResultsPageAt(goTo)
	if len(page) == 0 {
		log.Debug("page out of range")
		c.finish(log, nil)
		return
	}
	c.views.Results.Render(page)
	c.views.Pagination.Render(c.store.State().Search())
	c.finish(log, nil)
}

func (c *Controller) controlServings(servings int) {
	log := c.action("servings").With(zap.Int("servings", servings))
	if err := c.store.UpdateServings(servings); err != nil {
		c.finish(log, err)
		return
	}
	c.views.Recipe.Update(c.store.State().Recipe())
	c.finish(log, nil)
}

func (c *Controller) controlAddBookmark() {
	log := c.action("bookmark")
	err := c.store.ToggleBookmark(c.ctx)
	if r := c.store.State().Recipe(); r != nil {
		c.views.Recipe.Update(r)
	}
	c.views.Bookmarks.Render(c.bookmarkPreviews())
	c.finish(log, err)
}

func (c *Controller) controlBookmarks() {
	c.views.Bookmarks.Render(c.bookmarkPreviews())
}

func (c *Controller) controlAddRecipe(form types.RecipeForm) {
	log := c.action("upload").With(zap.String("title", form.Title))
	c.views.AddRecipe.RenderSpinner()

	if err := c.store.UploadRecipe(c.ctx, form); err != nil {
		c.views.AddRecipe.RenderError(UserMessage(err))
		c.finish(log, err)
		return
	}

	r := c.store.State().Recipe()
	c.views.Recipe.Render(r)
	c.views.AddRecipe.RenderMessage("")
	c.views.Bookmarks.Render(c.bookmarkPreviews())
	c.location.PushHash(r.ID)

	c.AfterFunc(c.modalClose, func() {
		if c.views.AddRecipe.IsOpen() {
			c.views.AddRecipe.ToggleWindow()
		}
	})
	c.finish(log, nil)
}
