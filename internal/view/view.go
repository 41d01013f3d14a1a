// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package view renders application state as styled terminal text. Each view
// owns a region of output: Render replaces it, Update rewrites only the
// lines whose text changed. Views publish user interactions through
// AddHandler* registration methods; that is the only point at which they
// know about the controller.
package view

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pdiddy/forkify/pkg/types"
)

// Capability is the method set every data-driven view shares.
type Capability[T any] interface {
	Render(data T)
	Update(data T)
	RenderSpinner()
	RenderError(message string)
	RenderMessage(message string)
}

var (
	_ Capability[*types.Recipe]        = (*RecipeView)(nil)
	_ Capability[[]types.SearchResult] = (*ResultsView)(nil)
	_ Capability[[]types.SearchResult] = (*BookmarksView)(nil)
	_ Capability[types.Search]         = (*PaginationView)(nil)
	_ Capability[types.RecipeForm]     = (*AddRecipeView)(nil)
)

// Screen is the shared output every view writes to. Writes are serialized
// so concurrent handlers never interleave partial regions.
type Screen struct {
	mu       sync.Mutex
	w        io.Writer
	Styles   Styles
	Location *Location
}

// NewScreen returns a Screen writing to w.
func NewScreen(w io.Writer, styles Styles, loc *Location) *Screen {
	if loc == nil {
		loc = NewLocation()
	}
	return &Screen{w: w, Styles: styles, Location: loc}
}

func (s *Screen) write(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	io.WriteString(s.w, text)
}

// View is the rendering core embedded by every concrete view.
type View[T any] struct {
	name           string
	screen         *Screen
	events         *Emitter
	markup         func(T) []string
	empty          func(T) bool
	defaultError   string
	defaultMessage string

	mu    sync.Mutex
	lines []string
	data  T
	has   bool
}

func newView[T any](name string, screen *Screen, markup func(T) []string) *View[T] {
	return &View[T]{
		name:   name,
		screen: screen,
		events: NewEmitter(),
		markup: markup,
	}
}

// Name identifies the view in rendered headers and patches.
func (v *View[T]) Name() string { return v.name }

// Lines returns a copy of what the view currently shows.
func (v *View[T]) Lines() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]string, len(v.lines))
	copy(out, v.lines)
	return out
}

// Data returns the data of the last Render or Update.
func (v *View[T]) Data() (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.data, v.has
}

// Render replaces the view's output with the markup for data. Empty data
// renders the default error instead.
func (v *View[T]) Render(data T) {
	if v.empty != nil && v.empty(data) {
		v.RenderError("")
		return
	}
	lines := v.markup(data)

	v.mu.Lock()
	v.data, v.has = data, true
	v.lines = lines
	v.mu.Unlock()

	v.replace(lines)
}

// Update renders data off-screen, compares it line by line with what is
// shown, and writes only the lines that differ.
func (v *View[T]) Update(data T) {
	next := v.markup(data)

	v.mu.Lock()
	prev := v.lines
	v.lines = next
	v.data, v.has = data, true
	v.mu.Unlock()

	patch := diffLines(v.name, prev, next)
	if patch != "" {
		v.screen.write(patch)
	}
}

// RenderSpinner shows a loading indicator in place of the view's output.
func (v *View[T]) RenderSpinner() {
	v.setLines([]string{v.screen.Styles.Spinner.Render("... loading")})
}

// RenderError shows message, or the view's default error when empty.
func (v *View[T]) RenderError(message string) {
	if message == "" {
		message = v.defaultError
	}
	v.setLines([]string{v.screen.Styles.Error.Render("! " + message)})
}

// RenderMessage shows message, or the view's default message when empty.
func (v *View[T]) RenderMessage(message string) {
	if message == "" {
		message = v.defaultMessage
	}
	v.setLines([]string{v.screen.Styles.Message.Render("* " + message)})
}

func (v *View[T]) setLines(lines []string) {
	v.mu.Lock()
	v.lines = lines
	v.mu.Unlock()
	v.replace(lines)
}

func (v *View[T]) replace(lines []string) {
	var b strings.Builder
	fmt.Fprintf(&b, "== %s ==\n", v.name)
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	v.screen.write(b.String())
}

// diffLines returns the patch turning prev into next: one "@@ name N"
// header per changed line followed by its new text, and "@@ name N -" for
// each trailing line that disappeared.
func diffLines(name string, prev, next []string) string {
	var b strings.Builder
	for i, l := range next {
		if i < len(prev) && prev[i] == l {
			continue
		}
		fmt.Fprintf(&b, "@@ %s %d\n%s\n", name, i+1, l)
	}
	for i := len(next); i < len(prev); i++ {
		fmt.Fprintf(&b, "@@ %s %d -\n", name, i+1)
	}
	return b.String()
}
