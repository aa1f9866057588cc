package instrument_test

import (
	"context"
	"fmt"
	"maps"
	"slices"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/aalemi-dev/otel-instrument/instrument"
)

func ExampleWrap() {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	sig := instrument.NewSignature(instrument.Required("num"), instrument.Optional("string", "Foo"))
	describe := instrument.Wrap(
		func(ctx context.Context, c instrument.Call) (string, error) {
			return fmt.Sprint(c.Args...), nil
		},
		instrument.NewParamResolver(sig, map[string]string{"number": "num", "text": "string"}),
		instrument.WithSpanName("describe"),
		instrument.WithTracerProvider(tp),
	)

	out, err := describe(context.Background(), instrument.Args(1))
	if err != nil {
		panic(err)
	}

	span := recorder.Ended()[0]
	attrs := map[string]string{}
	for _, kv := range span.Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsString()
	}
	fmt.Println(out, span.Name())
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		fmt.Printf("%s=%s\n", k, attrs[k])
	}
	// Output:
	// 1 describe
	// number=1
	// text=Foo
}

func ExampleNewSlotResolver() {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	first := instrument.Wrap(
		func(ctx context.Context, c instrument.Call) (any, error) { return c.Args[0], nil },
		instrument.NewSlotResolver(map[string]int{"number": 1}, nil),
		instrument.WithSpanName("first"),
		instrument.WithTracerProvider(tp),
	)

	_, err := first(context.Background(), instrument.Args(1))
	fmt.Println(err)
	fmt.Println(recorder.Ended()[0].Status().Code)
	// Output:
	// expected argument not found in function signature: position 1 for attribute "number" (1 positional arguments)
	// Error
}
