// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package jsonstore provides a storage collaborator appending JSON lines
// to a file.
package jsonstore

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/z5labs/compose/internal/try"
)

// Store appends one JSON document per saved value to a file.
type Store[T any] struct {
	path string
	perm fs.FileMode

	mu sync.Mutex
}

// Option configures a [Store].
type Option func(*options)

type options struct {
	perm fs.FileMode
}

// FileMode sets the permissions used when creating the file.
func FileMode(perm fs.FileMode) Option {
	return func(o *options) {
		o.perm = perm
	}
}

// New returns a Store writing to path. The file and its parent
// directories are created on the first Save.
func New[T any](path string, opts ...Option) *Store[T] {
	o := &options{perm: 0o600}
	for _, opt := range opts {
		opt(o)
	}
	return &Store[T]{
		path: path,
		perm: o.perm,
	}
}

// WriteError occurs when a value cannot be persisted.
type WriteError struct {
	Path  string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e WriteError) Unwrap() error {
	return e.Cause
}

// Save appends v as a single line of JSON.
func (s *Store[T]) Save(ctx context.Context, v T) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	line, err := json.Marshal(v)
	if err != nil {
		return WriteError{Path: s.path, Cause: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = os.MkdirAll(filepath.Dir(s.path), 0o755)
	if err != nil {
		return WriteError{Path: s.path, Cause: err}
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, s.perm)
	if err != nil {
		return WriteError{Path: s.path, Cause: err}
	}
	defer try.Close(&err, f)

	_, err = f.Write(append(line, '\n'))
	if err != nil {
		return WriteError{Path: s.path, Cause: err}
	}
	return nil
}

// Load decodes every value saved so far. A missing file holds no values.
func (s *Store[T]) Load(ctx context.Context) (vs []T, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer try.Close(&err, f)

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if len(sc.Bytes()) == 0 {
			continue
		}
		var v T
		err = json.Unmarshal(sc.Bytes(), &v)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, sc.Err()
}
