// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package view

import (
	"fmt"
	"sync"

	"github.com/pdiddy/forkify/pkg/types"
)

// AddRecipeView is the upload form. Render previews a filled-in form.
type AddRecipeView struct {
	*View[types.RecipeForm]

	openMu sync.Mutex
	open   bool
}

// NewAddRecipeView returns a closed upload form drawing on screen.
func NewAddRecipeView(screen *Screen) *AddRecipeView {
	v := &AddRecipeView{}
	v.View = newView("upload", screen, v.markup)
	v.defaultMessage = "Recipe was successfully uploaded :)"
	v.defaultError = "Recipe could not be uploaded. Please check the form and try again."
	return v
}

func (v *AddRecipeView) markup(f types.RecipeForm) []string {
	st := v.screen.Styles
	lines := []string{
		st.Heading.Render("Recipe data"),
		"Title:        " + f.Title,
		"URL:          " + f.SourceURL,
		"Image URL:    " + f.ImageURL,
		"Publisher:    " + f.Publisher,
		fmt.Sprintf("Prep time:    %d", f.CookingTime),
		fmt.Sprintf("Servings:     %d", f.Servings),
		st.Heading.Render("Ingredients"),
	}
	for i, ing := range f.Ingredients {
		lines = append(lines, fmt.Sprintf("Ingredient %d: %s", i+1, ing))
	}
	return lines
}

// IsOpen reports whether the form window is shown.
func (v *AddRecipeView) IsOpen() bool {
	v.openMu.Lock()
	defer v.openMu.Unlock()
	return v.open
}

// ToggleWindow opens a closed form or closes an open one.
func (v *AddRecipeView) ToggleWindow() {
	v.openMu.Lock()
	v.open = !v.open
	open := v.open
	v.openMu.Unlock()

	state := "closed"
	if open {
		state = "opened"
	}
	v.screen.write(fmt.Sprintf("== %s == %s\n", v.name, state))
}

// AddHandlerUpload subscribes fn to form submission.
func (v *AddRecipeView) AddHandlerUpload(fn func(form types.RecipeForm)) {
	v.events.On(EventUpload, func(p any) { fn(p.(types.RecipeForm)) })
}

// Submit submits form.
func (v *AddRecipeView) Submit(form types.RecipeForm) bool {
	return v.events.Emit(EventUpload, form)
}
