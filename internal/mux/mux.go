// Package mux provides an abstraction over terminal multiplexers.
//
// This package is pure transport: it asks the multiplexer for its pane
// topology and decodes the answer. Choosing a pane happens elsewhere.
package mux

import (
	"context"
	"fmt"

	"github.com/timvw/pane-pick/internal/model"
)

// Multiplexer abstracts the multiplexer queries pane-pick needs.
type Multiplexer interface {
	// Name returns the multiplexer name (e.g., "tmux").
	Name() string

	// ListPanes returns every pane across all sessions, in the order the
	// multiplexer reports them.
	ListPanes(ctx context.Context) ([]model.Pane, error)

	// CurrentPane returns the composite identifier of the caller's own pane.
	CurrentPane(ctx context.Context) (string, error)
}

// FetchError reports a failed multiplexer query: binary missing,
// non-zero exit, or output that is not valid text.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("tmux %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
