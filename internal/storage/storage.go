// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package storage provides the local key/value store that keeps bookmarks
// across sessions. Values are opaque strings; callers serialize.
package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrNoKey is returned by Get when the key has never been set or was removed.
var ErrNoKey = errors.New("storage: key not found")

// Storage is a string-keyed persistent store.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Memory is a Storage that lives only as long as the process. It backs
// tests and runs with no configured database path.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return "", ErrNoKey
	}
	return v, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *Memory) Close() error { return nil }
