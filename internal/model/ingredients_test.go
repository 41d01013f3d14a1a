// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/forkify/pkg/types"
)

func TestParseIngredient(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    types.Ingredient
		wantErr bool
	}{
		{"full line", "0.5,kg,Rice", types.Ingredient{Quantity: qty(0.5), Unit: "kg", Description: "Rice"}, false},
		{"trims parts", " 2 , cups ,  Flour ", types.Ingredient{Quantity: qty(2), Unit: "cups", Description: "Flour"}, false},
		{"no quantity", ",,Salt", types.Ingredient{Unit: "", Description: "Salt"}, false},
		{"no unit", "3,,Eggs", types.Ingredient{Quantity: qty(3), Description: "Eggs"}, false},
		{"missing commas", "0.5 kg Rice", types.Ingredient{}, true},
		{"too many parts", "1,kg,Rice,extra", types.Ingredient{}, true},
		{"bad quantity", "lots,kg,Rice", types.Ingredient{}, true},
		{"negative quantity", "-1,kg,Rice", types.Ingredient{}, true},
		{"NaN quantity", "NaN,kg,Rice", types.Ingredient{}, true},
		{"infinite quantity", "Inf,kg,Rice", types.Ingredient{}, true},
		{"spelled out infinity", "infinity,kg,Rice", types.Ingredient{}, true},
		{"empty description", "1,kg, ", types.Ingredient{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIngredient(tt.line)
			if tt.wantErr {
				assert.ErrorIs(t, err, types.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecipeFromForm(t *testing.T) {
	valid := types.RecipeForm{Title: " Rice ", Servings: 2, CookingTime: 10, Ingredients: []string{"1,kg,Rice"}}

	r, err := RecipeFromForm(valid)
	require.NoError(t, err)
	assert.Equal(t, "Rice", r.Title)
	assert.Empty(t, r.ID)

	bad := []struct {
		name string
		edit func(f *types.RecipeForm)
	}{
		{"no title", func(f *types.RecipeForm) { f.Title = "" }},
		{"zero servings", func(f *types.RecipeForm) { f.Servings = 0 }},
		{"negative time", func(f *types.RecipeForm) { f.CookingTime = -5 }},
		{"no ingredients", func(f *types.RecipeForm) { f.Ingredients = []string{"", " "} }},
		{"bad ingredient", func(f *types.RecipeForm) { f.Ingredients = []string{"1,kg,Rice", "oops"} }},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			f.Ingredients = append([]string(nil), valid.Ingredients...)
			tt.edit(&f)
			_, err := RecipeFromForm(f)
			assert.ErrorIs(t, err, types.ErrValidation)
		})
	}
}
