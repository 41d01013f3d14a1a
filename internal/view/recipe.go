// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package view

import (
	"fmt"
	"strings"

	"github.com/pdiddy/forkify/pkg/types"
)

// RecipeView shows the current recipe.
type RecipeView struct {
	*View[*types.Recipe]
}

// NewRecipeView returns a RecipeView drawing on screen.
func NewRecipeView(screen *Screen) *RecipeView {
	v := &RecipeView{}
	v.View = newView("recipe", screen, v.markup)
	v.empty = func(r *types.Recipe) bool { return r == nil }
	v.defaultError = "We could not find that recipe. Please try another one!"
	v.defaultMessage = "Start by searching for a recipe or an ingredient. Have fun!"
	return v
}

func (v *RecipeView) markup(r *types.Recipe) []string {
	st := v.screen.Styles
	mark := "[ ] bookmark"
	if r.Bookmarked {
		mark = st.Bookmark.Render("[*] bookmarked")
	}
	lines := []string{
		st.Title.Render(strings.ToUpper(r.Title)),
		fmt.Sprintf("%d minutes | %d servings %s %s | %s",
			r.CookingTime, r.Servings,
			st.Button.Render("[-]"), st.Button.Render("[+]"), mark),
	}
	if r.Key != "" {
		lines = append(lines, st.Muted.Render("(your recipe)"))
	}

	lines = append(lines, "", st.Heading.Render("Recipe ingredients"))
	for _, ing := range r.Ingredients {
		lines = append(lines, "  - "+st.Body.Render(formatIngredient(ing)))
	}

	lines = append(lines,
		"",
		st.Heading.Render("How to cook it"),
		st.Body.Render(fmt.Sprintf("This recipe was carefully designed and tested by %s.", r.Publisher)),
		"Directions: "+st.Muted.Render(r.SourceURL),
	)
	return lines
}

func formatIngredient(ing types.Ingredient) string {
	parts := make([]string, 0, 3)
	if q := FormatQuantity(ing.Quantity); q != "" {
		parts = append(parts, q)
	}
	if ing.Unit != "" {
		parts = append(parts, ing.Unit)
	}
	parts = append(parts, ing.Description)
	return strings.Join(parts, " ")
}

// AddHandlerRender subscribes fn to navigation: a fragment change or a
// page load.
func (v *RecipeView) AddHandlerRender(fn func()) {
	handler := func(any) { fn() }
	v.screen.Location.On(EventHashChange, handler)
	v.screen.Location.On(EventLoad, handler)
}

// AddHandlerUpdateServings subscribes fn to the servings buttons. fn gets
// the requested number of servings, which is always positive.
func (v *RecipeView) AddHandlerUpdateServings(fn func(servings int)) {
	v.events.On(EventServings, func(p any) { fn(p.(int)) })
}

// AddHandlerAddBookmark subscribes fn to the bookmark button.
func (v *RecipeView) AddHandlerAddBookmark(fn func()) {
	v.events.On(EventBookmark, func(any) { fn() })
}

// ClickServings presses a servings button asking for servings. Requests for
// zero or fewer servings are ignored, as the decrease button is inert at 1.
func (v *RecipeView) ClickServings(servings int) bool {
	if servings <= 0 {
		return false
	}
	return v.events.Emit(EventServings, servings)
}

// ClickIncrease and ClickDecrease press [+] and [-] relative to the
// servings currently shown.
func (v *RecipeView) ClickIncrease() bool { return v.clickDelta(1) }

func (v *RecipeView) ClickDecrease() bool { return v.clickDelta(-1) }

func (v *RecipeView) clickDelta(d int) bool {
	r, ok := v.Data()
	if !ok || r == nil {
		return false
	}
	return v.ClickServings(r.Servings + d)
}

// ClickBookmark presses the bookmark button.
func (v *RecipeView) ClickBookmark() bool {
	return v.events.Emit(EventBookmark, nil)
}
