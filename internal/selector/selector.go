// Package selector runs the interactive pane list.
//
// The list is drawn on a side channel (stderr) so that the program's stdout
// only ever carries the final selection.
package selector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/timvw/pane-pick/internal/model"
)

// Selector lets the user pick one pane from a list.
type Selector struct {
	Input   io.Reader
	Output  io.Writer
	RawMode RawMode
	Theme   Theme
	Logger  *slog.Logger

	// programOptions are appended to the bubbletea options (tests only).
	programOptions []tea.ProgramOption
}

// Select shows panes with the cursor on initial and blocks until the user
// confirms or cancels. ok is false on cancellation. An empty list returns
// immediately without touching the terminal.
//
// The terminal is restored exactly once on every path out of the loop. A
// restore failure is joined onto any error already being returned.
func (s *Selector) Select(ctx context.Context, panes []model.Pane, initial int) (id string, ok bool, err error) {
	if len(panes) == 0 {
		return "", false, nil
	}

	guard, err := acquireRaw(s.RawMode)
	if err != nil {
		return "", false, fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		if rerr := guard.Release(); rerr != nil {
			rerr = fmt.Errorf("restore terminal: %w", rerr)
			if err != nil {
				err = errors.Join(err, rerr)
			} else {
				s.logger().Warn("terminal restore failed", "error", rerr)
			}
		}
		clearScreen(s.Output)
	}()

	m := newPickModel(panes, initial, newStyles(s.Theme, lipgloss.NewRenderer(s.Output)))
	m.out = termenv.NewOutput(s.Output)

	// Frames are drawn by the model itself; see pickModel.draw.
	opts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(s.Input),
		tea.WithOutput(s.Output),
		tea.WithoutRenderer(),
	}, s.programOptions...)

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("selector: %w", err)
	}

	pm, isPick := final.(*pickModel)
	if !isPick {
		return "", false, fmt.Errorf("selector: unexpected model %T", final)
	}
	id, ok = pm.selection()
	return id, ok, nil
}

func (s *Selector) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// clearScreen wipes the side channel and homes the cursor.
func clearScreen(w io.Writer) {
	termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii)).ClearScreen()
}
