// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/forkify/internal/api"
	"github.com/pdiddy/forkify/internal/controller"
	"github.com/pdiddy/forkify/internal/model"
	"github.com/pdiddy/forkify/internal/storage"
	"github.com/pdiddy/forkify/internal/view"
	"github.com/pdiddy/forkify/pkg/types"
)

// app is one wired instance of the recipe browser.
type app struct {
	cfg      types.Config
	logger   *zap.Logger
	storage  storage.Storage
	client   *api.Client
	store    *model.Store
	location *view.Location
	views    controller.Views
	ctrl     *controller.Controller
}

// newApp opens bookmark storage, restores saved bookmarks and registers the
// controller on a fresh set of views writing to out.
func newApp(ctx context.Context, cfg types.Config, out io.Writer, logger *zap.Logger) (*app, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var st storage.Storage
	if cfg.Storage.Path == "" {
		st = storage.NewMemory()
	} else {
		db, err := storage.Open(cfg.Storage.Path)
		if err != nil {
			return nil, err
		}
		st = db
	}

	client := api.New(cfg.API, logger.Named("api"))
	state := model.NewState(cfg.UI.ResultsPerPage)
	store := model.NewStore(state, client, st, cfg.Storage.BookmarksKey, logger.Named("model"))
	if err := store.Restore(ctx); err != nil {
		st.Close()
		return nil, err
	}

	styles := view.NewStyles(out)
	if cfg.UI.NoColor {
		styles = view.PlainStyles()
	}
	loc := view.NewLocation()
	views := controller.NewViews(view.NewScreen(out, styles, loc))

	ctrl := controller.New(ctx, store, views, loc, cfg.UI.ModalClose, logger.Named("controller"))
	ctrl.Init()

	return &app{
		cfg:      cfg,
		logger:   logger,
		storage:  st,
		client:   client,
		store:    store,
		location: loc,
		views:    views,
		ctrl:     ctrl,
	}, nil
}

func (a *app) Close() error {
	return a.storage.Close()
}

// closeFormNow makes the upload form close as soon as an upload succeeds.
// One-shot commands exit before a delayed close would fire.
func (a *app) closeFormNow() {
	a.ctrl.AfterFunc = func(_ time.Duration, fn func()) { fn() }
}

// withApp builds an app for cmd, runs fn and closes the app.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := newApp(ctx, cfg, cmd.OutOrStdout(), logger)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}
