package instrument

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/aalemi-dev/otel-instrument/observability"
)

// Component is the observability component name reported by wrapped
// functions.
const Component = "instrument"

// Wrap returns fn wrapped in a tracing span. The returned function has the
// same signature and returns fn's result and error unchanged.
//
// Tracer lookup, span naming and resolver setup happen here, once; each
// call then:
//
//  1. resolves dynamic attributes from its arguments (resolver may be nil),
//  2. starts a span carrying the static and resolved attributes,
//  3. calls fn with a context holding the span,
//  4. records a returned error or panic on the span and ends it.
//
// When attribute resolution fails the error is returned and fn is not
// called.
//
// Example:
//
//	sig := instrument.NewSignature(instrument.Required("num"), instrument.Optional("string", "Foo"))
//	add := instrument.Wrap(addImpl,
//		instrument.NewParamResolver(sig, map[string]string{"number": "num"}),
//		instrument.WithAttributes(map[string]string{"team": "data"}),
//	)
//	n, err := add(ctx, instrument.Args(1))
func Wrap[A, R any](fn func(context.Context, A) (R, error), resolver Resolver[A], opts ...Option) func(context.Context, A) (R, error) {
	return newWrapper(fn, fn, resolver, opts).call
}

// Instrument wraps a function without arguments in a tracing span.
//
// Example:
//
//	run := instrument.Instrument(func(ctx context.Context) error {
//		return job.Run(ctx)
//	}, instrument.WithSpanName("job"))
func Instrument(fn func(context.Context) error, opts ...Option) func(context.Context) error {
	w := newWrapper(fn, func(ctx context.Context, _ struct{}) (struct{}, error) {
		return struct{}{}, fn(ctx)
	}, nil, opts)
	return func(ctx context.Context) error {
		_, err := w.call(ctx, struct{}{})
		return err
	}
}

type wrapper[A, R any] struct {
	fn         func(context.Context, A) (R, error)
	resolver   Resolver[A]
	late       bool
	settings   *settings
	spanName   string
	tracerName string
	tracer     trace.Tracer
}

// newWrapper names the span and tracer after target, which is the function
// the caller handed in rather than any adapter around it.
func newWrapper[A, R any](target any, fn func(context.Context, A) (R, error), resolver Resolver[A], opts []Option) *wrapper[A, R] {
	s := newSettings(opts)
	pkgPath, qualName := funcNames(target)

	w := &wrapper[A, R]{
		fn:         fn,
		resolver:   resolver,
		settings:   s,
		spanName:   s.spanName,
		tracerName: tracerName(pkgPath),
	}
	if w.spanName == "" {
		w.spanName = qualName
	}
	_, w.late = resolver.(afterStart)

	switch {
	case s.tracer != nil:
		w.tracer = s.tracer
	case s.provider != nil:
		w.tracer = s.provider.Tracer(w.tracerName)
	default:
		w.tracer = otel.Tracer(w.tracerName)
	}
	return w
}

func (w *wrapper[A, R]) call(ctx context.Context, args A) (result R, err error) {
	started := time.Now()
	attrs := maps.Clone(w.settings.attributes)

	if w.resolver != nil && !w.late {
		resolved, rerr := w.resolver.Resolve(args)
		if rerr != nil {
			w.logResolveFailure(ctx, rerr)
			w.observe(started, attrs, rerr)
			return result, rerr
		}
		maps.Copy(attrs, resolved)
	}

	ctx, span := w.tracer.Start(ctx, w.spanName,
		trace.WithSpanKind(w.settings.kind),
		trace.WithAttributes(keyValues(attrs)...),
	)
	defer func() {
		if p := recover(); p != nil {
			perr := fmt.Errorf("panic: %v", p)
			w.fail(span, perr, trace.WithStackTrace(true))
			span.End()
			w.observe(started, attrs, perr)
			panic(p)
		}
		span.End()
	}()

	if w.resolver != nil && w.late {
		resolved, rerr := w.resolver.Resolve(args)
		if rerr != nil {
			w.fail(span, rerr)
			w.logResolveFailure(ctx, rerr)
			w.observe(started, attrs, rerr)
			return result, rerr
		}
		span.SetAttributes(keyValues(resolved)...)
		maps.Copy(attrs, resolved)
	}

	result, err = w.fn(ctx, args)
	if err != nil {
		w.fail(span, err)
		if w.settings.logger != nil {
			w.settings.logger.DebugWithContext(ctx, "instrumented call failed", err, map[string]interface{}{
				"span": w.spanName,
			})
		}
	} else if w.settings.statusOK {
		span.SetStatus(codes.Ok, "")
	}

	w.observe(started, attrs, err)
	return result, err
}

func (w *wrapper[A, R]) fail(span trace.Span, err error, opts ...trace.EventOption) {
	if w.settings.recordError {
		span.RecordError(err, opts...)
	}
	span.SetStatus(codes.Error, err.Error())
}

func (w *wrapper[A, R]) logResolveFailure(ctx context.Context, err error) {
	if w.settings.logger == nil {
		return
	}
	w.settings.logger.WarnWithContext(ctx, "failed to resolve span attributes", err, map[string]interface{}{
		"span":   w.spanName,
		"tracer": w.tracerName,
	})
}

func (w *wrapper[A, R]) observe(started time.Time, attrs map[string]string, err error) {
	if w.settings.observer == nil {
		return
	}
	metadata := make(map[string]interface{}, len(attrs))
	for k, v := range attrs {
		metadata[k] = v
	}
	w.settings.observer.ObserveOperation(observability.OperationContext{
		Component: Component,
		Operation: w.spanName,
		Resource:  w.tracerName,
		Duration:  time.Since(started),
		Error:     err,
		Metadata:  metadata,
	})
}

func keyValues(attrs map[string]string) []attribute.KeyValue {
	kvs := make([]attribute.KeyValue, 0, len(attrs))
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		kvs = append(kvs, attribute.String(k, attrs[k]))
	}
	return kvs
}
