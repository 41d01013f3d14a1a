// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/forkify/internal/export"
	"github.com/pdiddy/forkify/internal/view"
	"github.com/pdiddy/forkify/pkg/types"
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "List and manage bookmarked recipes",
	Long: `Bookmarks lists the recipes you bookmarked. Subcommands add or remove
bookmarks by id, export the list to a file, or clear it.`,
	RunE: runBookmarksList,
}

var bookmarksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarked recipes",
	Args:  cobra.NoArgs,
	RunE:  runBookmarksList,
}

func runBookmarksList(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		a.location.Load()
		return nil
	})
}

var bookmarksAddCmd = &cobra.Command{
	Use:   "add <id>...",
	Short: "Bookmark recipes by id",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBookmarksAdd,
}

func runBookmarksAdd(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		for _, id := range args {
			if a.store.State().IsBookmarked(id) {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s is already bookmarked\n", id)
				continue
			}
			if err := a.store.LoadRecipe(ctx, id); err != nil {
				return fmt.Errorf("loading %s: %w", id, err)
			}
			if err := a.store.AddBookmark(ctx, a.store.State().Recipe()); err != nil {
				return err
			}
		}
		a.views.Bookmarks.Render(bookmarkPreviews(a))
		return nil
	})
}

var bookmarksRemoveCmd = &cobra.Command{
	Use:   "remove <id>...",
	Short: "Remove bookmarks by id",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBookmarksRemove,
}

func runBookmarksRemove(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		for _, id := range args {
			if err := a.store.DeleteBookmark(ctx, id); err != nil {
				return err
			}
		}
		a.views.Bookmarks.Render(bookmarkPreviews(a))
		return nil
	})
}

var bookmarksExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export bookmarks to YAML, JSON, CSV or XLSX",
	Long: `Export writes every bookmarked recipe to file. The format follows the
file extension (.yaml, .yml, .json, .csv, .xlsx) unless --format is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runBookmarksExport,
}

func runBookmarksExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	path := args[0]

	return withApp(cmd, func(ctx context.Context, a *app) error {
		bookmarks := a.store.State().Bookmarks()
		if err := exportBookmarks(path, format, bookmarks); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d bookmark(s) to %s\n", len(bookmarks), path)
		return nil
	})
}

var bookmarksClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every bookmark",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			if err := a.store.ClearBookmarks(ctx); err != nil {
				return err
			}
			a.views.Bookmarks.Render(bookmarkPreviews(a))
			return nil
		})
	},
}

func init() {
	bookmarksExportCmd.Flags().String("format", "", "export format: yaml, json, csv or xlsx (default: from file extension)")

	bookmarksCmd.AddCommand(bookmarksListCmd)
	bookmarksCmd.AddCommand(bookmarksAddCmd)
	bookmarksCmd.AddCommand(bookmarksRemoveCmd)
	bookmarksCmd.AddCommand(bookmarksExportCmd)
	bookmarksCmd.AddCommand(bookmarksClearCmd)
	rootCmd.AddCommand(bookmarksCmd)
}

func exportBookmarks(path, format string, bookmarks []*types.Recipe) error {
	if format == "" {
		return export.WriteFile(path, bookmarks)
	}
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := export.Write(out, f, bookmarks); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func bookmarkPreviews(a *app) []types.SearchResult {
	return view.Previews(a.store.State().Bookmarks())
}
