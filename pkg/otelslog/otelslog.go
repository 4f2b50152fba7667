// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package otelslog provides a OpenTelemetry aware slog.Handler implementation.
package otelslog

import (
	"context"
	"io"
	"log/slog"

	"github.com/z5labs/compose/pkg/slogfield"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Handler is an slog.Handler which correlates records with traces. Records
// logged under a valid span context get an "otel" group holding the trace
// id, span id and sampling decision.
type Handler struct {
	next        slog.Handler
	eventLevels slog.Leveler
}

// HandlerOption configures a [Handler].
type HandlerOption func(*Handler)

// SpanEvents mirrors records at or above lvl onto the active span as
// events named after the record message.
func SpanEvents(lvl slog.Leveler) HandlerOption {
	return func(h *Handler) {
		h.eventLevels = lvl
	}
}

// NewHandler wraps h.
func NewHandler(h slog.Handler, opts ...HandlerOption) *Handler {
	handler := &Handler{next: h}
	for _, opt := range opts {
		opt(handler)
	}
	return handler
}

// New provides a simple wrapper for slog.New(NewHandler(h, opts...)).
func New(h slog.Handler, opts ...HandlerOption) *slog.Logger {
	return slog.New(NewHandler(h, opts...))
}

// NewJSON returns a trace correlating logger writing JSON records to w.
// Warnings and errors are also added to the active span as events.
func NewJSON(w io.Writer, lvl slog.Leveler) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     lvl,
	})
	return New(h, SpanEvents(slog.LevelWarn))
}

// Discard returns a logger which drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel parses names such as "debug" or "WARN".
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(s))
	return lvl, err
}

// Enabled implements the slog.Handler interface.
func (h *Handler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.next.Enabled(ctx, lvl)
}

// Handle implements the slog.Handler interface.
func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	span := trace.SpanFromContext(ctx)
	sc := span.SpanContext()
	if !sc.IsValid() {
		return h.next.Handle(ctx, record)
	}

	if h.eventLevels != nil && record.Level >= h.eventLevels.Level() && span.IsRecording() {
		span.AddEvent(record.Message, trace.WithAttributes(
			attribute.String("log.severity", record.Level.String()),
		))
	}

	correlated := record.Clone()
	correlated.AddAttrs(slog.Group(
		"otel",
		slogfield.String("trace_id", sc.TraceID().String()),
		slogfield.String("span_id", sc.SpanID().String()),
		slogfield.Bool("sampled", sc.IsSampled()),
	))
	return h.next.Handle(ctx, correlated)
}

// WithAttrs implements the slog.Handler interface.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{
		next:        h.next.WithAttrs(attrs),
		eventLevels: h.eventLevels,
	}
}

// WithGroup implements the slog.Handler interface.
func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{
		next:        h.next.WithGroup(name),
		eventLevels: h.eventLevels,
	}
}
