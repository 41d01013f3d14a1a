// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/forkify/pkg/types"
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a recipe of your own",
	Long: `Upload sends a new recipe to the API and bookmarks it. The recipe is
read from a YAML file (--file) or given with flags; flags override fields
from the file. Each ingredient is a "quantity,unit,description" line, for
example "0.5,kg,Rice" or ",,salt".

Uploading needs an API key.

Example file:

  title: Rice Bowl
  source_url: https://example.com/rice
  image_url: https://example.com/rice.jpg
  publisher: me
  cooking_time: 20
  servings: 2
  ingredients:
    - 0.5,kg,Rice
    - ",,salt"`,
	Args: cobra.NoArgs,
	RunE: runUpload,
}

func runUpload(cmd *cobra.Command, args []string) error {
	form, err := formFromFlags(cmd)
	if err != nil {
		return err
	}

	return withApp(cmd, func(ctx context.Context, a *app) error {
		if a.cfg.API.APIKey == "" {
			return fmt.Errorf("uploading needs an API key: set --api-key or write it to .secrets/forkify-api-key")
		}
		a.closeFormNow()
		a.views.AddRecipe.ToggleWindow()
		a.views.AddRecipe.Render(form)
		a.views.AddRecipe.Submit(form)
		return a.ctrl.Err()
	})
}

// readRecipeForm parses a recipe form from a YAML file.
func readRecipeForm(path string) (types.RecipeForm, error) {
	var form types.RecipeForm
	data, err := os.ReadFile(path)
	if err != nil {
		return form, fmt.Errorf("reading recipe file: %w", err)
	}
	if err := yaml.Unmarshal(data, &form); err != nil {
		return form, fmt.Errorf("%w: parsing %s: %v", types.ErrValidation, path, err)
	}
	return form, nil
}

func formFromFlags(cmd *cobra.Command) (types.RecipeForm, error) {
	var form types.RecipeForm
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		f, err := readRecipeForm(path)
		if err != nil {
			return form, err
		}
		form = f
	}

	flags := cmd.Flags()
	if flags.Changed("title") {
		form.Title, _ = flags.GetString("title")
	}
	if flags.Changed("url") {
		form.SourceURL, _ = flags.GetString("url")
	}
	if flags.Changed("image") {
		form.ImageURL, _ = flags.GetString("image")
	}
	if flags.Changed("publisher") {
		form.Publisher, _ = flags.GetString("publisher")
	}
	if flags.Changed("cooking-time") {
		form.CookingTime, _ = flags.GetInt("cooking-time")
	}
	if flags.Changed("servings") {
		form.Servings, _ = flags.GetInt("servings")
	}
	if flags.Changed("ingredient") {
		form.Ingredients, _ = flags.GetStringArray("ingredient")
	}
	return form, nil
}

func addUploadFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "YAML file describing the recipe")
	cmd.Flags().String("title", "", "recipe title")
	cmd.Flags().String("url", "", "source URL with the cooking directions")
	cmd.Flags().String("image", "", "image URL")
	cmd.Flags().String("publisher", "", "publisher name")
	cmd.Flags().Int("cooking-time", 0, "preparation time in minutes")
	cmd.Flags().Int("servings", 0, "number of servings")
	cmd.Flags().StringArray("ingredient", nil, `ingredient as "quantity,unit,description" (repeatable)`)
}

func init() {
	addUploadFlags(uploadCmd)
	rootCmd.AddCommand(uploadCmd)
}
