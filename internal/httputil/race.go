// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers for the recipe API client: a
// first-settled-wins combinator and a cancellable timer that together bound
// every request by a fixed timeout.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pdiddy/forkify/pkg/types"
)

// Result is the settled outcome of a Task: exactly one of Value or Err is
// meaningful.
type Result[T any] struct {
	Value T
	Err   error
}

// Task is a unit of work raced by Race. It must return promptly once ctx is
// cancelled.
type Task[T any] func(ctx context.Context) (T, error)

// Race starts every task concurrently and returns the outcome of the first
// one to settle, whether it succeeded or failed. The remaining tasks have
// their contexts cancelled before Race returns. Losers deliver into a
// buffered channel, so a slow loser never blocks after Race has returned.
func Race[T any](ctx context.Context, tasks ...Task[T]) (T, error) {
	var zero T
	if len(tasks) == 0 {
		return zero, errors.New("race: no tasks")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan Result[T], len(tasks))
	for _, task := range tasks {
		go func(task Task[T]) {
			v, err := task(ctx)
			ch <- Result[T]{Value: v, Err: err}
		}(task)
	}

	r := <-ch
	return r.Value, r.Err
}

// After returns a Task that fails with types.ErrTimeout once d has elapsed.
// The underlying timer is stopped when the task's context is cancelled, so
// a timer that loses the race releases its resources immediately.
func After[T any](d time.Duration) Task[T] {
	return func(ctx context.Context) (T, error) {
		var zero T
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-t.C:
			return zero, fmt.Errorf("%w: request took too long, timeout after %v", types.ErrTimeout, d)
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}

// WithTimeout races task against After(d).
func WithTimeout[T any](ctx context.Context, d time.Duration, task Task[T]) (T, error) {
	return Race(ctx, task, After[T](d))
}
