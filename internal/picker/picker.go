// Package picker wires the pane fetch, the recency heuristic, and the
// interactive selector into one pick.
package picker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/timvw/pane-pick/internal/model"
	"github.com/timvw/pane-pick/internal/mux"
	telem "github.com/timvw/pane-pick/internal/otel"
	"github.com/timvw/pane-pick/internal/output"
	"github.com/timvw/pane-pick/internal/recency"
)

var (
	// ErrNoPanes means the multiplexer reported no panes at all.
	ErrNoPanes = errors.New("no tmux panes found")
	// ErrNoCandidate means auto mode found no pane other than the caller's.
	ErrNoCandidate = errors.New("no suitable pane found for auto-selection")
	// ErrCancelled means the user left the selector without choosing.
	ErrCancelled = errors.New("selection cancelled")
)

const (
	modeAuto        = "auto"
	modeInteractive = "interactive"
)

// Selector resolves a pane interactively. ok is false on cancellation.
type Selector interface {
	Select(ctx context.Context, panes []model.Pane, initial int) (id string, ok bool, err error)
}

// Picker runs one pick and prints the result.
type Picker struct {
	Mux      mux.Multiplexer
	Selector Selector
	Out      io.Writer
	Format   output.Format
	Auto     bool

	Logger  *slog.Logger
	Tracer  trace.Tracer
	Metrics *telem.Metrics
}

// Run fetches panes, picks one (automatically or through the selector)
// and writes it to p.Out. Every failure is terminal; nothing is retried.
func (p *Picker) Run(ctx context.Context) (err error) {
	mode := modeInteractive
	if p.Auto {
		mode = modeAuto
	}

	ctx, span := p.tracer().Start(ctx, "pick", trace.WithAttributes(
		attribute.String("pick.mode", mode),
		attribute.String("mux", p.Mux.Name()),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	pane, err := p.pick(ctx, mode)
	p.Metrics.RecordSelection(ctx, mode, outcome(err))
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String("pick.pane", pane.FullID))

	p.logger().Debug("pane selected", "pane", pane.FullID, "mode", mode)
	return output.Write(p.Out, pane, p.Format)
}

func (p *Picker) pick(ctx context.Context, mode string) (model.Pane, error) {
	panes, err := p.listPanes(ctx)
	if err != nil {
		return model.Pane{}, fmt.Errorf("failed to get tmux panes: %w", err)
	}
	p.Metrics.RecordPanes(ctx, len(panes))
	p.logger().Debug("panes fetched", "count", len(panes))
	if len(panes) == 0 {
		return model.Pane{}, ErrNoPanes
	}

	current, err := p.currentPane(ctx)
	if err != nil {
		return model.Pane{}, fmt.Errorf("failed to get current pane ID: %w", err)
	}
	best, found := recency.Best(panes, current)
	p.logger().Debug("recency resolved", "current", current, "index", best, "found", found)

	var id string
	if mode == modeAuto {
		if !found {
			return model.Pane{}, ErrNoCandidate
		}
		id = panes[best].FullID
	} else {
		id, err = p.selectInteractive(ctx, panes, best)
		if err != nil {
			return model.Pane{}, err
		}
	}

	pane, ok := model.Find(panes, id)
	if !ok {
		return model.Pane{}, fmt.Errorf("selected pane %q not in pane list", id)
	}
	return pane, nil
}

func (p *Picker) listPanes(ctx context.Context) ([]model.Pane, error) {
	ctx, span := p.tracer().Start(ctx, "tmux.list-panes")
	defer span.End()

	panes, err := p.Mux.ListPanes(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("panes", len(panes)))
	return panes, nil
}

func (p *Picker) currentPane(ctx context.Context) (string, error) {
	ctx, span := p.tracer().Start(ctx, "tmux.current-pane")
	defer span.End()

	id, err := p.Mux.CurrentPane(ctx)
	if err != nil {
		span.RecordError(err)
	}
	return id, err
}

// selectInteractive runs the selector on its own copy of the list so the
// records used for output are never shared with the UI.
func (p *Picker) selectInteractive(ctx context.Context, panes []model.Pane, initial int) (string, error) {
	ctx, span := p.tracer().Start(ctx, "select")
	defer span.End()

	id, ok, err := p.Selector.Select(ctx, slices.Clone(panes), initial)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	if !ok {
		return "", ErrCancelled
	}
	return id, nil
}

func (p *Picker) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

func (p *Picker) tracer() trace.Tracer {
	if p.Tracer != nil {
		return p.Tracer
	}
	return noop.NewTracerProvider().Tracer("")
}

func outcome(err error) string {
	switch {
	case err == nil:
		return telem.OutcomeSelected
	case errors.Is(err, ErrCancelled):
		return telem.OutcomeCancelled
	case errors.Is(err, ErrNoCandidate):
		return telem.OutcomeNoCandidate
	default:
		return telem.OutcomeError
	}
}
