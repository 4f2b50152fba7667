// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package app composes the domaina and domainb pipelines and persists
// their outcome.
//
// Every failure is reported before being returned: it is logged, recorded
// on the run span and counted by the compose.pipeline.runs counter.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/z5labs/compose"
	"github.com/z5labs/compose/async"
	"github.com/z5labs/compose/example/entities/domaina"
	"github.com/z5labs/compose/example/entities/domainb"
	"github.com/z5labs/compose/failure"
	"github.com/z5labs/compose/pkg/otelslog"
	"github.com/z5labs/compose/pkg/slogfield"
	"github.com/z5labs/compose/reader"
	"github.com/z5labs/compose/result"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/z5labs/compose/example/entities/app"

// Storage persists successfully processed entities.
type Storage interface {
	Save(context.Context, domainb.Entity) error
}

type options struct {
	log *slog.Logger
	tp  trace.TracerProvider
	mp  metric.MeterProvider
}

// Option configures an [Application].
type Option func(*options)

// Logger sets the logger failures are reported to.
func Logger(log *slog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// TracerProvider overrides the global tracer provider.
func TracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tp = tp
	}
}

// MeterProvider overrides the global meter provider.
func MeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		o.mp = mp
	}
}

// Application runs pipelines against its dependencies and saves the
// resulting entity exactly once per successful run.
type Application struct {
	deps    Dependencies
	storage Storage

	log    *slog.Logger
	tracer trace.Tracer
	runs   metric.Int64Counter
}

// New returns an Application.
func New(deps Dependencies, storage Storage, opts ...Option) (*Application, error) {
	o := &options{
		log: otelslog.Discard(),
		tp:  otel.GetTracerProvider(),
		mp:  otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(o)
	}

	runs, err := o.mp.Meter(instrumentationName).Int64Counter(
		"compose.pipeline.runs",
		metric.WithDescription("Number of pipeline runs by outcome."),
	)
	if err != nil {
		return nil, err
	}

	a := &Application{
		deps:    deps,
		storage: storage,
		log:     o.log,
		tracer:  o.tp.Tracer(instrumentationName),
		runs:    runs,
	}
	return a, nil
}

// Process runs [Pipeline] for the named constant.
func (a *Application) Process(ctx context.Context, name string) (domainb.Entity, error) {
	return a.process(ctx, "process", name, Pipeline(name))
}

// ProcessHalved runs [HalvedPipeline] for the named constant.
func (a *Application) ProcessHalved(ctx context.Context, name string) (domainb.Entity, error) {
	return a.process(ctx, "process_halved", name, HalvedPipeline(name))
}

func (a *Application) process(ctx context.Context, pipeline, name string, step compose.Step[Dependencies, failure.Error, domainb.Entity]) (domainb.Entity, error) {
	spanCtx, span := a.tracer.Start(ctx, pipeline, trace.WithAttributes(
		attribute.String("compose.constant", name),
	))
	defer span.End()

	res := compose.Run(step, a.deps)
	res = a.save(spanCtx, res)
	a.report(spanCtx, span, pipeline, res)

	return result.Fold(res, found, func(e failure.Error) domainb.Entity {
		return domainb.Entity{}
	}), failureOf(res)
}

// ProcessAsync runs [Pipeline] as a chain of tasks: each step starts only
// after the previous one succeeded and only while ctx is live. Panics in
// the dependencies or the storage become [failure.KindWrapped] failures.
//
// The returned future must be awaited to observe the outcome.
func (a *Application) ProcessAsync(ctx context.Context, name string) *async.Future[failure.Error, domainb.Entity] {
	const pipeline = "process_async"

	id := async.Guard(
		async.FromReader(reader.Narrow(domaina.Value(name), constants), a.deps),
		failure.Wrap,
	)
	entity := async.Then(id, func(id int) async.Task[failure.Error, domainb.Entity] {
		return async.Guard(
			async.FromReader(reader.Narrow(domainb.Double(id), entities), a.deps),
			failure.Wrap,
		)
	})
	saved := async.Then(entity, func(e domainb.Entity) async.Task[failure.Error, domainb.Entity] {
		return async.Guard(
			async.Of(func(ctx context.Context) result.Result[failure.Error, domainb.Entity] {
				return a.save(ctx, result.Ok[failure.Error](e))
			}),
			failure.Wrap,
		)
	})

	run := async.Task[failure.Error, domainb.Entity](func(ctx context.Context) (result.Result[failure.Error, domainb.Entity], error) {
		spanCtx, span := a.tracer.Start(ctx, pipeline, trace.WithAttributes(
			attribute.String("compose.constant", name),
		))
		defer span.End()

		res, err := saved(spanCtx)
		if err != nil {
			a.reportFailure(spanCtx, span, pipeline, err)
			return res, err
		}
		a.report(spanCtx, span, pipeline, res)
		return res, nil
	})
	return async.Go(ctx, run)
}

func (a *Application) save(ctx context.Context, res result.Result[failure.Error, domainb.Entity]) result.Result[failure.Error, domainb.Entity] {
	return result.AndThen(res, func(e domainb.Entity) result.Result[failure.Error, domainb.Entity] {
		err := a.storage.Save(ctx, e)
		if err != nil {
			return result.Err[domainb.Entity](failure.Wrap(err))
		}
		return result.Ok[failure.Error](e)
	})
}

func (a *Application) report(ctx context.Context, span trace.Span, pipeline string, res result.Result[failure.Error, domainb.Entity]) {
	err := failureOf(res)
	if err != nil {
		a.reportFailure(ctx, span, pipeline, err)
		return
	}

	e := result.Fold(res, found, func(failure.Error) domainb.Entity { return domainb.Entity{} })
	a.log.InfoContext(
		ctx,
		"saved entity",
		slogfield.String("pipeline", pipeline),
		slogfield.Int("entity_id", e.ID),
	)
	a.runs.Add(ctx, 1, metric.WithAttributes(
		attribute.String("pipeline", pipeline),
		attribute.String("outcome", "success"),
	))
}

func (a *Application) reportFailure(ctx context.Context, span trace.Span, pipeline string, err error) {
	kind := kindOf(err)

	a.log.ErrorContext(
		ctx,
		"pipeline failed",
		slogfield.String("pipeline", pipeline),
		slogfield.String("kind", kind),
		slogfield.Error(err),
	)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	a.runs.Add(ctx, 1, metric.WithAttributes(
		attribute.String("pipeline", pipeline),
		attribute.String("outcome", "failure"),
		attribute.String("kind", kind),
	))
}

func found(e domainb.Entity) domainb.Entity { return e }

func failureOf[T any](res result.Result[failure.Error, T]) error {
	return result.Fold(
		res,
		func(T) error { return nil },
		func(e failure.Error) error { return e },
	)
}

func kindOf(err error) string {
	var fe failure.Error
	if errors.As(err, &fe) {
		return string(fe.Kind)
	}
	return "execution"
}
