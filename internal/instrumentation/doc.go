// Package instrumentation provides OpenTelemetry metrics for the client engine.
//
// A Provider owns the meter provider and exporter (Prometheus by default,
// OTLP or stdout by configuration) and hands out a Metrics recorder. The
// recorder is nil-safe and no-op when instrumentation is disabled, so the
// rest of the codebase records unconditionally:
//
//	provider, err := instrumentation.NewProvider(ctx, instrumentation.ConfigFromEnv())
//	if err != nil {
//	    return err
//	}
//	defer provider.Shutdown(ctx)
//
//	metrics := provider.Metrics()
//	metrics.RecordStoreOperation(ctx, "create", instrumentation.ResultSuccess, elapsed)
//
// Recorded metrics: backend request counts and durations, event store
// operation counts and durations, derived view recomputations and watch
// mode cycles.
package instrumentation
