package instrumentation

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys - using constants for consistency and DRY
const (
	attrMethod    = "method"
	attrPath      = "path"
	attrStatus    = "status"
	attrOperation = "operation"
	attrResult    = "result"
	attrView      = "view"
)

// Result values for operation metrics.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics provides methods for recording observability metrics.
// A zero-value Metrics is a no-op recorder, so callers never need to
// guard against a disabled provider.
type Metrics struct {
	// Backend collaborator metrics
	backendRequestsTotal   metric.Int64Counter
	backendRequestDuration metric.Float64Histogram

	// Event store metrics
	storeOperationsTotal   metric.Int64Counter
	storeOperationDuration metric.Float64Histogram

	// Derived view metrics
	recomputationsTotal metric.Int64Counter

	// Watch mode metrics
	watchCyclesTotal metric.Int64Counter
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.backendRequestsTotal, err = meter.Int64Counter(
		"backend_requests_total",
		metric.WithDescription("Total number of requests to the scheduling backend"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create backend_requests_total counter: %w", err)
	}

	m.backendRequestDuration, err = meter.Float64Histogram(
		"backend_request_duration_seconds",
		metric.WithDescription("Backend request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create backend_request_duration_seconds histogram: %w", err)
	}

	m.storeOperationsTotal, err = meter.Int64Counter(
		"store_operations_total",
		metric.WithDescription("Total number of event store operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create store_operations_total counter: %w", err)
	}

	m.storeOperationDuration, err = meter.Float64Histogram(
		"store_operation_duration_seconds",
		metric.WithDescription("Event store operation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create store_operation_duration_seconds histogram: %w", err)
	}

	m.recomputationsTotal, err = meter.Int64Counter(
		"view_recomputations_total",
		metric.WithDescription("Total number of derived view recomputations"),
		metric.WithUnit("{recomputation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create view_recomputations_total counter: %w", err)
	}

	m.watchCyclesTotal, err = meter.Int64Counter(
		"watch_cycles_total",
		metric.WithDescription("Total number of watch mode refresh cycles"),
		metric.WithUnit("{cycle}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create watch_cycles_total counter: %w", err)
	}

	return m, nil
}

// RecordBackendRequest records a request to the scheduling backend.
// A status of 0 indicates the request never reached the backend.
func (m *Metrics) RecordBackendRequest(ctx context.Context, method, path string, status int, duration time.Duration) {
	if m == nil || m.backendRequestsTotal == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String(attrMethod, method),
		attribute.String(attrPath, path),
		attribute.String(attrStatus, strconv.Itoa(status)),
	)

	m.backendRequestsTotal.Add(ctx, 1, attrs)
	m.backendRequestDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordStoreOperation records an event store operation and its result.
func (m *Metrics) RecordStoreOperation(ctx context.Context, operation, result string, duration time.Duration) {
	if m == nil || m.storeOperationsTotal == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String(attrOperation, operation),
		attribute.String(attrResult, result),
	)

	m.storeOperationsTotal.Add(ctx, 1, attrs)
	m.storeOperationDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordRecomputation records a derived view recomputation.
func (m *Metrics) RecordRecomputation(ctx context.Context, view string) {
	if m == nil || m.recomputationsTotal == nil {
		return
	}

	m.recomputationsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrView, view),
	))
}

// RecordWatchCycle records one watch mode refresh cycle.
func (m *Metrics) RecordWatchCycle(ctx context.Context, result string) {
	if m == nil || m.watchCyclesTotal == nil {
		return
	}

	m.watchCyclesTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrResult, result),
	))
}
