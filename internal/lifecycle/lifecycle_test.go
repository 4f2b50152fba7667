// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package lifecycle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestContext_Shutdown(t *testing.T) {
	t.Run("will run hooks in reverse registration order", func(t *testing.T) {
		var calls []string
		record := func(name string) Hook {
			return HookFunc(func(context.Context) error {
				calls = append(calls, name)
				return nil
			})
		}

		var lc Context
		lc.OnShutdown(record("tracer"))
		lc.OnShutdown(record("store"))

		err := lc.Shutdown().Run(context.Background())
		if !assert.Nil(t, err) {
			return
		}
		if !assert.Equal(t, []string{"store", "tracer"}, calls) {
			return
		}
	})

	t.Run("will run every hook and join their errors", func(t *testing.T) {
		oneErr := errors.New("one")
		twoErr := errors.New("two")
		calls := 0

		var lc Context
		lc.OnShutdown(HookFunc(func(context.Context) error {
			calls++
			return oneErr
		}))
		lc.OnShutdown(HookFunc(func(context.Context) error {
			calls++
			return twoErr
		}))

		err := lc.Shutdown().Run(context.Background())
		if !assert.ErrorIs(t, err, oneErr) {
			return
		}
		if !assert.ErrorIs(t, err, twoErr) {
			return
		}
		if !assert.Equal(t, 2, calls) {
			return
		}
	})

	t.Run("will return nil", func(t *testing.T) {
		t.Run("if no hooks are registered", func(t *testing.T) {
			var lc Context
			err := lc.Shutdown().Run(context.Background())
			if !assert.Nil(t, err) {
				return
			}
		})
	})
}

func TestManageOTel(t *testing.T) {
	t.Run("will register the tracer provider shutdown", func(t *testing.T) {
		prev := otel.GetTracerProvider()
		defer otel.SetTracerProvider(prev)

		tp := sdktrace.NewTracerProvider()

		var lc Context
		ManageOTel(&lc, tp)
		if !assert.Equal(t, tp, otel.GetTracerProvider()) {
			return
		}

		err := lc.Shutdown().Run(context.Background())
		if !assert.Nil(t, err) {
			return
		}
	})
}

func TestFromContext(t *testing.T) {
	t.Run("will return the stored lifecycle context", func(t *testing.T) {
		lc := &Context{}
		ctx := NewContext(context.Background(), lc)

		got, ok := FromContext(ctx)
		if !assert.True(t, ok) {
			return
		}
		if !assert.Same(t, lc, got) {
			return
		}
	})

	t.Run("will report a missing lifecycle context", func(t *testing.T) {
		_, ok := FromContext(context.Background())
		if !assert.False(t, ok) {
			return
		}
	})
}
