// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package memstore provides an in-memory storage collaborator.
package memstore

import (
	"context"
	"slices"
	"sync"
)

// Store keeps every saved value in memory, in save order.
type Store[T any] struct {
	mu     sync.Mutex
	values []T
}

// New returns an empty Store.
func New[T any]() *Store[T] {
	return &Store[T]{}
}

// Save appends v.
func (s *Store[T]) Save(ctx context.Context, v T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = append(s.values, v)
	return nil
}

// All returns a copy of every saved value.
func (s *Store[T]) All() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.values)
}
