// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package lifecycle collects actions to perform once a command finishes.
package lifecycle

import (
	"context"
	"errors"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Hook represents functionality that needs to be performed
// once a command has finished.
type Hook interface {
	Run(context.Context) error
}

// HookFunc is a func variant of the [Hook] interface.
type HookFunc func(context.Context) error

// Run implements the [Hook] interface.
func (f HookFunc) Run(ctx context.Context) error {
	return f(ctx)
}

type multiHook []Hook

func (mh multiHook) Run(ctx context.Context) error {
	var errs []error
	for _, h := range mh {
		err := h.Run(ctx)
		if err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 1 {
		return errs[0]
	}
	return errors.Join(errs...)
}

// MultiHook returns a [Hook] that runs every given [Hook] sequentially,
// even if one fails, and joins their errors.
func MultiHook(hooks ...Hook) Hook {
	return multiHook(hooks)
}

// Context holds the shutdown hooks registered while a command runs.
type Context struct {
	shutdowns multiHook
}

// OnShutdown registers hook. Hooks run in reverse registration order so
// resources are released before the resources they depend on.
func (c *Context) OnShutdown(hook Hook) {
	c.shutdowns = append(c.shutdowns, hook)
}

// Shutdown returns the [Hook] running every registered hook, last
// registered first.
func (c *Context) Shutdown() Hook {
	hooks := slices.Clone(c.shutdowns)
	slices.Reverse(hooks)
	return hooks
}

// ManageOTel installs tp as the global tracer provider along with the
// W3C trace context propagator and registers its shutdown.
func ManageOTel(c *Context, tp *sdktrace.TracerProvider) {
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	c.OnShutdown(HookFunc(tp.Shutdown))
}

type key struct{}

var contextKey = &key{}

// NewContext returns a new [context.Context] containing the lifecycle [Context].
func NewContext(parent context.Context, c *Context) context.Context {
	return context.WithValue(parent, contextKey, c)
}

// FromContext tries to extract a lifecycle [Context] from the given [context.Context].
func FromContext(ctx context.Context) (*Context, bool) {
	lc, ok := ctx.Value(contextKey).(*Context)
	return lc, ok
}
