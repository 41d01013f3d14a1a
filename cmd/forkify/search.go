// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/forkify/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search recipes by name or ingredient",
	Long: `Search queries the recipe API and shows one page of matching recipes
with the pagination controls for the rest. Use --page to jump to another
page and --json for machine-readable output.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

// searchPage is the --json output of search.
type searchPage struct {
	Query    string               `json:"query"`
	Page     int                  `json:"page"`
	NumPages int                  `json:"num_pages"`
	Total    int                  `json:"total"`
	Results  []types.SearchResult `json:"results"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	page, _ := cmd.Flags().GetInt("page")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return withApp(cmd, func(ctx context.Context, a *app) error {
		if jsonOutput {
			return searchJSON(ctx, cmd, a, query, page)
		}

		a.views.Search.Submit(query)
		if err := a.ctrl.Err(); err != nil {
			return err
		}
		if page > 1 {
			if page > a.store.NumPages() {
				return fmt.Errorf("page %d out of range: %d page(s) of results", page, a.store.NumPages())
			}
			a.views.Pagination.Click(page)
		}
		return a.ctrl.Err()
	})
}

func searchJSON(ctx context.Context, cmd *cobra.Command, a *app, query string, page int) error {
	if err := a.store.LoadSearchResults(ctx, query); err != nil && !errors.Is(err, types.ErrEmptyResults) {
		return err
	}
	if page < 1 {
		page = 1
	}
	out := searchPage{
		Query:    query,
		Page:     page,
		NumPages: a.store.NumPages(),
		Total:    len(a.store.State().Search().Results),
		Results:  a.store.SearchResultsPageAt(page),
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func init() {
	searchCmd.Flags().Int("page", 1, "results page to show")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}
