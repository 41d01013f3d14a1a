// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package view

import (
	"fmt"
	"strings"

	"github.com/pdiddy/forkify/pkg/types"
)

// PaginationView shows previous/next controls for the search results.
type PaginationView struct {
	*View[types.Search]
}

// NewPaginationView returns a PaginationView drawing on screen.
func NewPaginationView(screen *Screen) *PaginationView {
	v := &PaginationView{}
	v.View = newView("pagination", screen, v.markup)
	return v
}

func (v *PaginationView) markup(s types.Search) []string {
	st := v.screen.Styles
	cur, numPages := s.Page, s.NumPages()

	var controls []string
	if cur > 1 && numPages > 1 {
		controls = append(controls, st.Button.Render(fmt.Sprintf("< Page %d", cur-1)))
	}
	if cur < numPages {
		controls = append(controls, st.Button.Render(fmt.Sprintf("Page %d >", cur+1)))
	}
	if len(controls) == 0 {
		return []string{}
	}
	return []string{strings.Join(controls, "   ")}
}

// AddHandlerClick subscribes fn to the page buttons. fn gets the page to go
// to.
func (v *PaginationView) AddHandlerClick(fn func(goTo int)) {
	v.events.On(EventClick, func(p any) { fn(p.(int)) })
}

// Click presses the button leading to page goTo.
func (v *PaginationView) Click(goTo int) bool {
	return v.events.Emit(EventClick, goTo)
}

// ClickNext and ClickPrev press the buttons shown for the last rendered
// search. They do nothing when that button is not shown.
func (v *PaginationView) ClickNext() bool {
	s, ok := v.Data()
	if !ok || s.Page >= s.NumPages() {
		return false
	}
	return v.Click(s.Page + 1)
}

func (v *PaginationView) ClickPrev() bool {
	s, ok := v.Data()
	if !ok || s.Page <= 1 {
		return false
	}
	return v.Click(s.Page - 1)
}
