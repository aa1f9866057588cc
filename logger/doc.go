// Package logger provides the zap-based structured logger used by the
// tracer, metrics and instrument packages.
//
// LoggerClient writes JSON to stderr. Its ...WithContext methods attach the
// trace_id and span_id of the active OpenTelemetry span, which correlates
// the warnings an instrumented function logs with the span it produced.
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:         logger.Info,
//		ServiceName:   "report-builder",
//		EnableTracing: true,
//	})
//	log.InfoWithContext(ctx, "report built", nil, map[string]interface{}{
//		"rows": 120,
//	})
//
// Configuration is read by ConfigFromEnv from LOGGER_LEVEL,
// LOGGER_ENABLE_TRACING, LOGGER_CALLER_SKIP and OTEL_SERVICE_NAME.
//
// All methods are safe for concurrent use.
package logger
