// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"

	"github.com/spf13/cobra"
)

var recipeCmd = &cobra.Command{
	Use:   "recipe <id>",
	Short: "Show a recipe",
	Long: `Recipe loads one recipe by id and shows its ingredients. --servings
rescales every ingredient quantity; --bookmark toggles the recipe's
bookmark.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecipe,
}

func runRecipe(cmd *cobra.Command, args []string) error {
	servings, _ := cmd.Flags().GetInt("servings")
	bookmark, _ := cmd.Flags().GetBool("bookmark")

	return withApp(cmd, func(ctx context.Context, a *app) error {
		a.location.SetHash(args[0])
		if err := a.ctrl.Err(); err != nil {
			return err
		}
		if servings > 0 {
			a.views.Recipe.ClickServings(servings)
			if err := a.ctrl.Err(); err != nil {
				return err
			}
		}
		if bookmark {
			a.views.Recipe.ClickBookmark()
		}
		return a.ctrl.Err()
	})
}

func init() {
	recipeCmd.Flags().Int("servings", 0, "scale the recipe to this many servings")
	recipeCmd.Flags().Bool("bookmark", false, "toggle the recipe's bookmark")
	rootCmd.AddCommand(recipeCmd)
}
