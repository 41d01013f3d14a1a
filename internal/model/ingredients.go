// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pdiddy/forkify/pkg/types"
)

// ParseIngredient parses one "quantity,unit,description" line. An empty
// quantity yields a nil Quantity; unit may be empty; description may not.
func ParseIngredient(line string) (types.Ingredient, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return types.Ingredient{}, fmt.Errorf("%w: wrong ingredient format %q, use \"quantity,unit,description\"", types.ErrValidation, line)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	ing := types.Ingredient{Unit: parts[1], Description: parts[2]}
	if ing.Description == "" {
		return types.Ingredient{}, fmt.Errorf("%w: ingredient %q has no description", types.ErrValidation, line)
	}
	if parts[0] != "" {
		q, err := strconv.ParseFloat(parts[0], 64)
		if err != nil || q < 0 || math.IsNaN(q) || math.IsInf(q, 0) {
			return types.Ingredient{}, fmt.Errorf("%w: ingredient %q has invalid quantity %q", types.ErrValidation, line, parts[0])
		}
		ing.Quantity = &q
	}
	return ing, nil
}

// ParseIngredients parses every non-blank line, stopping at the first
// malformed one.
func ParseIngredients(lines []string) ([]types.Ingredient, error) {
	var out []types.Ingredient
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ing, err := ParseIngredient(line)
		if err != nil {
			return nil, err
		}
		out = append(out, ing)
	}
	return out, nil
}

// RecipeFromForm validates a user submission and converts it into a Recipe
// ready for upload. No network access happens here.
func RecipeFromForm(form types.RecipeForm) (*types.Recipe, error) {
	title := strings.TrimSpace(form.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", types.ErrValidation)
	}
	if form.Servings <= 0 {
		return nil, fmt.Errorf("%w: servings must be positive, got %d", types.ErrValidation, form.Servings)
	}
	if form.CookingTime < 0 {
		return nil, fmt.Errorf("%w: cooking time must not be negative, got %d", types.ErrValidation, form.CookingTime)
	}

	ings, err := ParseIngredients(form.Ingredients)
	if err != nil {
		return nil, err
	}
	if len(ings) == 0 {
		return nil, fmt.Errorf("%w: at least one ingredient is required", types.ErrValidation)
	}

	return &types.Recipe{
		Title:       title,
		Publisher:   strings.TrimSpace(form.Publisher),
		SourceURL:   strings.TrimSpace(form.SourceURL),
		ImageURL:    strings.TrimSpace(form.ImageURL),
		CookingTime: form.CookingTime,
		Servings:    form.Servings,
		Ingredients: ings,
	}, nil
}
