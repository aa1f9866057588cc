package instrument

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/aalemi-dev/otel-instrument/logger"
	"github.com/aalemi-dev/otel-instrument/observability"
	"github.com/aalemi-dev/otel-instrument/tracer"
)

func TestInstrumenter_Options(t *testing.T) {
	t.Parallel()
	tp, recorder := newTestProvider(t)
	obs := &recordingObserver{}
	inst := NewInstrumenter(tp, nil, obs)

	wrapped := Instrument(tracedNoArgs, inst.Options(WithSpanName("nightly"))...)
	require.NoError(t, wrapped(context.Background()))

	assert.Equal(t, "nightly", onlySpan(t, recorder).Name())
	require.Len(t, obs.calls, 1)
	assert.Equal(t, "nightly", obs.calls[0].Operation)
}

func TestInstrumenter_ExtraOptionsOverride(t *testing.T) {
	t.Parallel()
	tp, _ := newTestProvider(t)
	otherTP, otherRecorder := newTestProvider(t)
	inst := NewInstrumenter(tp, nil, nil)

	wrapped := Instrument(tracedNoArgs, inst.Options(WithTracerProvider(otherTP))...)
	require.NoError(t, wrapped(context.Background()))

	assert.Len(t, otherRecorder.Ended(), 1)
}

func TestInstrumenter_NoCollaborators(t *testing.T) {
	t.Parallel()
	inst := NewInstrumenter(nil, nil, nil)

	assert.Len(t, inst.Options(WithSpanName("x")), 1)
}

func TestFXModule_ProvidesInstrumenter(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	obs := &recordingObserver{}
	var inst *Instrumenter

	app := fxtest.New(t,
		tracer.FXModule,
		logger.FXModule,
		FXModule,
		fx.Provide(func() tracer.Config {
			return tracer.Config{
				ServiceName:    "fx-test",
				AppEnv:         "test",
				SpanProcessors: []sdktrace.SpanProcessor{recorder},
			}
		}),
		fx.Provide(func() logger.Config {
			return logger.Config{Level: logger.Error, ServiceName: "fx-test"}
		}),
		fx.Provide(func() observability.Observer { return obs }),
		fx.Populate(&inst),
	)

	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, inst)
	wrapped := Instrument(tracedNoArgs, inst.Options(WithSpanName("fx-call"))...)
	require.NoError(t, wrapped(context.Background()))

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "fx-call", ended[0].Name())
	assert.Len(t, obs.calls, 1)
	assert.NotNil(t, inst.logger)
}

func TestFXModule_OptionalDependencies(t *testing.T) {
	var inst *Instrumenter

	app := fxtest.New(t,
		tracer.FXModule,
		FXModule,
		fx.Provide(func() tracer.Config { return tracer.Config{ServiceName: "fx-test"} }),
		fx.Populate(&inst),
	)

	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, inst)
	assert.Nil(t, inst.logger)
	assert.Nil(t, inst.observer)
}
