// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package otelslog

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type otelRecord struct {
	Message string `json:"msg"`
	OTel    struct {
		TraceID string `json:"trace_id"`
		SpanID  string `json:"span_id"`
		Sampled bool   `json:"sampled"`
	} `json:"otel"`
}

func TestHandler_Handle(t *testing.T) {
	t.Run("will not add trace id and span id", func(t *testing.T) {
		t.Run("if the span context is invalid", func(t *testing.T) {
			var buf bytes.Buffer
			log := NewJSON(&buf, slog.LevelInfo)

			log.InfoContext(context.Background(), "pipeline failed")

			var record otelRecord
			err := json.Unmarshal(buf.Bytes(), &record)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, "pipeline failed", record.Message) {
				return
			}
			if !assert.Empty(t, record.OTel.TraceID) {
				return
			}
			if !assert.Empty(t, record.OTel.SpanID) {
				return
			}
		})
	})

	t.Run("will add trace id and span id", func(t *testing.T) {
		t.Run("if the span context is valid", func(t *testing.T) {
			var buf bytes.Buffer
			log := NewJSON(&buf, slog.LevelInfo)

			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(tracetest.NewSpanRecorder()))
			defer tp.Shutdown(context.Background())

			ctx, span := tp.Tracer("otelslog").Start(context.Background(), "process")
			defer span.End()

			log.InfoContext(ctx, "pipeline failed")

			var record otelRecord
			err := json.Unmarshal(buf.Bytes(), &record)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, span.SpanContext().TraceID().String(), record.OTel.TraceID) {
				t.Log(buf.String())
				return
			}
			if !assert.Equal(t, span.SpanContext().SpanID().String(), record.OTel.SpanID) {
				t.Log(buf.String())
				return
			}
			if !assert.True(t, record.OTel.Sampled) {
				return
			}
		})
	})

	t.Run("will add a span event", func(t *testing.T) {
		t.Run("if the record level is at least the event level", func(t *testing.T) {
			var buf bytes.Buffer
			log := NewJSON(&buf, slog.LevelInfo)

			sr := tracetest.NewSpanRecorder()
			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
			defer tp.Shutdown(context.Background())

			ctx, span := tp.Tracer("otelslog").Start(context.Background(), "process")
			log.InfoContext(ctx, "saved entity")
			log.ErrorContext(ctx, "pipeline failed")
			span.End()

			spans := sr.Ended()
			if !assert.Len(t, spans, 1) {
				return
			}

			events := spans[0].Events()
			if !assert.Len(t, events, 1) {
				return
			}
			if !assert.Equal(t, "pipeline failed", events[0].Name) {
				return
			}
			if !assert.Contains(t, events[0].Attributes, attribute.String("log.severity", "ERROR")) {
				return
			}
		})
	})

	t.Run("will not add span events", func(t *testing.T) {
		t.Run("if no event level is configured", func(t *testing.T) {
			var buf bytes.Buffer
			log := New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{}))

			sr := tracetest.NewSpanRecorder()
			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
			defer tp.Shutdown(context.Background())

			ctx, span := tp.Tracer("otelslog").Start(context.Background(), "process")
			log.ErrorContext(ctx, "pipeline failed")
			span.End()

			spans := sr.Ended()
			if !assert.Len(t, spans, 1) {
				return
			}
			if !assert.Empty(t, spans[0].Events()) {
				return
			}
		})
	})
}

func TestDiscard(t *testing.T) {
	t.Run("will not be enabled for any level", func(t *testing.T) {
		log := Discard()
		if !assert.False(t, log.Enabled(context.Background(), slog.LevelError)) {
			return
		}
	})
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    slog.Level
		wantErr bool
	}{
		{name: "lower case", in: "debug", want: slog.LevelDebug},
		{name: "upper case", in: "WARN", want: slog.LevelWarn},
		{name: "offset", in: "info+2", want: slog.LevelInfo + 2},
		{name: "unknown", in: "loud", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lvl, err := ParseLevel(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, lvl)
		})
	}
}
