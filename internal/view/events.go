// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package view

import (
	"slices"
	"sync"
)

// Event names a user interaction a view can publish.
type Event string

const (
	EventLoad       Event = "load"
	EventHashChange Event = "hashchange"
	EventSubmit     Event = "submit"
	EventClick      Event = "click"
	EventServings   Event = "servings"
	EventBookmark   Event = "bookmark"
	EventUpload     Event = "upload"
)

// Emitter is a synchronous event source. Handlers for one event run in
// registration order and a second Emit of the same event waits until the
// first has finished every handler. Different events do not block each
// other.
type Emitter struct {
	mu       sync.Mutex
	handlers map[Event][]func(any)
	running  map[Event]*sync.Mutex
}

// NewEmitter returns an Emitter with no subscribers.
func NewEmitter() *Emitter {
	return &Emitter{
		handlers: make(map[Event][]func(any)),
		running:  make(map[Event]*sync.Mutex),
	}
}

// On subscribes fn to ev.
func (e *Emitter) On(ev Event, fn func(payload any)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers[ev] = append(e.handlers[ev], fn)
	if _, ok := e.running[ev]; !ok {
		e.running[ev] = &sync.Mutex{}
	}
}

// Emit runs every handler subscribed to ev with payload and reports
// whether any handler was subscribed.
func (e *Emitter) Emit(ev Event, payload any) bool {
	e.mu.Lock()
	hs := slices.Clone(e.handlers[ev])
	lock := e.running[ev]
	e.mu.Unlock()

	if len(hs) == 0 {
		return false
	}
	lock.Lock()
	defer lock.Unlock()
	for _, h := range hs {
		h(payload)
	}
	return true
}

// Location carries the recipe id of the current address, the way a URL
// fragment does in a browser.
type Location struct {
	mu     sync.RWMutex
	hash   string
	events *Emitter
}

// NewLocation returns a Location with an empty fragment.
func NewLocation() *Location {
	return &Location{events: NewEmitter()}
}

// Hash returns the current recipe id, without a leading '#'.
func (l *Location) Hash() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.hash
}

// SetHash navigates to id and fires EventHashChange when it differs from
// the current fragment.
func (l *Location) SetHash(id string) {
	id = trimHash(id)
	l.mu.Lock()
	changed := l.hash != id
	l.hash = id
	l.mu.Unlock()
	if changed {
		l.events.Emit(EventHashChange, id)
	}
}

// PushHash rewrites the fragment without firing any event.
func (l *Location) PushHash(id string) {
	l.mu.Lock()
	l.hash = trimHash(id)
	l.mu.Unlock()
}

// Load fires EventLoad, as a page load does.
func (l *Location) Load() {
	l.events.Emit(EventLoad, l.Hash())
}

// On subscribes fn to a navigation event.
func (l *Location) On(ev Event, fn func(payload any)) {
	l.events.On(ev, fn)
}

func trimHash(s string) string {
	if len(s) > 0 && s[0] == '#' {
		return s[1:]
	}
	return s
}
