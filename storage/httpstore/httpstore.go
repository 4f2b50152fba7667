// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package httpstore provides a storage collaborator which POSTs each saved
// value as JSON to a remote endpoint.
package httpstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/z5labs/compose/internal/httpclient"
	"github.com/z5labs/compose/internal/try"
	"github.com/z5labs/compose/pkg/otelslog"
)

// Store saves values by POSTing them to an endpoint.
type Store[T any] struct {
	endpoint string
	client   *http.Client
}

type options struct {
	client *http.Client
	log    *slog.Logger
}

// Option configures a [Store].
type Option func(*options)

// Client replaces the default retrying, circuit breaking client.
func Client(c *http.Client) Option {
	return func(o *options) {
		o.client = c
	}
}

// Logger sets the logger given to the default client.
func Logger(log *slog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// New returns a Store posting to endpoint.
func New[T any](endpoint string, opts ...Option) *Store[T] {
	o := &options{
		log: otelslog.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.client == nil {
		o.client = httpclient.New(
			httpclient.Name("httpstore"),
			httpclient.Logger(o.log),
			httpclient.Timeout(10*time.Second),
			httpclient.Retry(3, 100*time.Millisecond, time.Second),
			httpclient.TripAfter(5),
			httpclient.OpenStateTimeout(30*time.Second),
		)
	}
	return &Store[T]{
		endpoint: endpoint,
		client:   o.client,
	}
}

// StatusCodeError occurs when the endpoint responds with a non-2xx status.
type StatusCodeError struct {
	StatusCode int
	Body       string
}

// Error implements the [builtin.error] interface.
func (e StatusCodeError) Error() string {
	return fmt.Sprintf("unexpected response status code: %d", e.StatusCode)
}

// Save POSTs v as a JSON document.
func (s *Store[T]) Save(ctx context.Context, v T) (err error) {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer try.Close(&err, resp.Body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, err = io.Copy(io.Discard, resp.Body)
		return err
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
	return StatusCodeError{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}
}
