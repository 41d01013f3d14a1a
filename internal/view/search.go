// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package view

import (
	"strings"
	"sync"
)

// SearchView is the search field. It holds the typed query until the
// controller reads it.
type SearchView struct {
	mu     sync.Mutex
	query  string
	events *Emitter
}

// NewSearchView returns an empty search field.
func NewSearchView() *SearchView {
	return &SearchView{events: NewEmitter()}
}

// Query returns the typed query and clears the field.
func (v *SearchView) Query() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	q := strings.TrimSpace(v.query)
	v.query = ""
	return q
}

// Type replaces the field's text.
func (v *SearchView) Type(query string) {
	v.mu.Lock()
	v.query = query
	v.mu.Unlock()
}

// Submit types query and submits the form.
func (v *SearchView) Submit(query string) bool {
	v.Type(query)
	return v.events.Emit(EventSubmit, nil)
}

// AddHandlerSearch subscribes fn to form submission.
func (v *SearchView) AddHandlerSearch(fn func()) {
	v.events.On(EventSubmit, func(any) { fn() })
}
