// Package instrument wraps functions in OpenTelemetry spans and records
// selected call arguments as span attributes.
//
// Tracing itself (export, sampling, propagation) is left to the
// OpenTelemetry SDK; see package tracer for provider setup. This package
// decides which tracer to use, names the span and maps arguments onto
// attributes.
//
// # Wrapping
//
// Wrap takes a function of the form func(context.Context, A) (R, error) and
// returns one with the same signature. The wrapped function starts a span,
// passes its context to the original function and records a returned error
// or panic on the span before ending it. Instrument does the same for
// func(context.Context) error.
//
//	build := instrument.Instrument(buildReport,
//		instrument.WithSpanName("build-report"),
//		instrument.WithAttributes(map[string]string{"team": "data"}),
//	)
//	err := build(ctx)
//
// Without WithTracer or WithTracerProvider the tracer comes from the global
// provider, named by OTEL_SERVICE_NAME or, when unset, by the import path
// of the wrapped function's package. The default span name is the
// function's name qualified by its receiver, e.g. "(*Builder).Build".
// Both are computed once, when the function is wrapped.
//
// # Attributes from arguments
//
// A Resolver maps call arguments to attributes on every call:
//
//   - ParamResolver addresses a Call by parameter name. The value comes from
//     the call's keyword arguments, else from the arguments bound against a
//     declared Signature, else from the parameter's declared default.
//   - SlotResolver addresses a Call by positional index or keyword name and
//     sets the attributes on the already started span.
//   - FuncResolver extracts values from typed arguments with closures;
//     FirstOf expresses the same lookup precedence for them.
//
// A value that cannot be found fails the call with ErrParameterNotFound
// and the original function is not called. Values are stringified with
// fmt.Sprint. Every call builds its own attribute set, so attributes never
// carry over from one call to the next.
//
//	sig := instrument.NewSignature(instrument.Required("num"), instrument.Optional("string", "Foo"))
//	f := instrument.Wrap(impl, instrument.NewParamResolver(sig, map[string]string{
//		"number": "num",
//		"text":   "string",
//	}))
//	f(ctx, instrument.Args(1))                     // number=1 text=Foo
//	f(ctx, instrument.Args(1).With("string", "x")) // number=1 text=x
//
// # Hooks
//
// WithLogger logs resolution failures and failed calls with trace
// correlation, and WithObserver reports every call to an
// observability.Observer such as metrics.CallObserver. Instrumenter and
// FXModule bundle these for applications using fx.
//
// # Thread Safety
//
// Wrapped functions are safe for concurrent use; their configuration is
// read-only after Wrap returns.
package instrument
