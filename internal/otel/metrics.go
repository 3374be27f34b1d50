package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "pane-pick"

// Outcomes recorded on the selections counter.
const (
	OutcomeSelected    = "selected"
	OutcomeCancelled   = "cancelled"
	OutcomeNoCandidate = "no_candidate"
	OutcomeError       = "error"
)

// Metrics holds the OTEL metric instruments for pane-pick.
type Metrics struct {
	// Selections counts finished picks, partitioned by mode (auto,
	// interactive) and outcome.
	Selections metric.Int64Counter

	// Panes records how many panes each fetch returned.
	Panes metric.Int64Histogram
}

// NewMetrics creates all metric instruments. Returns no-op instruments
// when no MeterProvider is registered (safe to call unconditionally).
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.Selections, err = meter.Int64Counter("pick.selections",
		metric.WithDescription("Finished pane picks partitioned by mode and outcome"))
	if err != nil {
		return nil, err
	}

	m.Panes, err = meter.Int64Histogram("pick.panes",
		metric.WithDescription("Number of panes returned by one fetch"),
		metric.WithUnit("{pane}"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordSelection records the outcome of one pick.
func (m *Metrics) RecordSelection(ctx context.Context, mode, outcome string) {
	if m == nil {
		return
	}
	m.Selections.Add(ctx, 1, metric.WithAttributes(
		attribute.String("pick.mode", mode),
		attribute.String("pick.outcome", outcome),
	))
}

// RecordPanes records the size of a fetched pane list.
func (m *Metrics) RecordPanes(ctx context.Context, n int) {
	if m == nil {
		return
	}
	m.Panes.Record(ctx, int64(n))
}
