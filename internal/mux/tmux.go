package mux

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/timvw/pane-pick/internal/model"
)

const (
	// fieldSep separates the fields of one list-panes line.
	fieldSep = "|"
	// minFields is the number of fields a list-panes line must carry.
	minFields = 6

	// window_activity is tracked per window, so every pane of a window
	// reports the same last-used time and ties fall back to list order.
	listFormat    = "#{session_name}|#{window_index}|#{pane_index}|#{pane_title}|#{window_activity}|#{pane_active}"
	currentFormat = "#{session_name}:#{window_index}.#{pane_index}"
)

// Runner executes a command and returns its stdout.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Tmux implements the Multiplexer interface for tmux.
type Tmux struct {
	// Pane is the caller's pane id ($TMUX_PANE). When set, the current
	// pane query targets it explicitly.
	Pane string

	// Run executes tmux. Defaults to running the real binary.
	Run Runner
}

// NewTmux creates a new tmux multiplexer for the given $TMUX_PANE value.
func NewTmux(pane string) *Tmux {
	return &Tmux{Pane: pane, Run: execRunner}
}

// Name returns "tmux".
func (t *Tmux) Name() string {
	return "tmux"
}

// ListPanes returns every pane of every session.
func (t *Tmux) ListPanes(ctx context.Context) ([]model.Pane, error) {
	out, err := t.run(ctx, "list-panes", "list-panes", "-a", "-F", listFormat)
	if err != nil {
		return nil, err
	}
	return ParsePanes(out), nil
}

// CurrentPane returns the composite identifier of the caller's pane.
func (t *Tmux) CurrentPane(ctx context.Context) (string, error) {
	args := []string{"display-message", "-p"}
	if t.Pane != "" {
		args = append(args, "-t", t.Pane)
	}
	args = append(args, currentFormat)

	out, err := t.run(ctx, "display-message", args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// run executes a tmux command and returns its stdout as text.
func (t *Tmux) run(ctx context.Context, op string, args ...string) (string, error) {
	run := t.Run
	if run == nil {
		run = execRunner
	}
	out, err := run(ctx, "tmux", args...)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			err = fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", &FetchError{Op: op, Err: err}
	}
	if !utf8.Valid(out) {
		return "", &FetchError{Op: op, Err: errors.New("output is not valid UTF-8")}
	}
	return string(out), nil
}

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// ParsePanes decodes list-panes output, one pane per line.
//
// Lines with fewer than six fields are skipped and an unparseable
// last-used value becomes 0, so one odd line never fails the whole fetch.
// The last two fields are always last-used and active; anything between
// the pane index and them is the title, which may itself contain '|'.
func ParsePanes(out string) []model.Pane {
	lines := strings.Split(strings.TrimRight(out, "\r\n"), "\n")
	panes := make([]model.Pane, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		parts := strings.Split(line, fieldSep)
		if len(parts) < minFields {
			continue
		}

		n := len(parts)
		title := strings.Join(parts[3:n-2], fieldSep)
		lastUsed, err := strconv.ParseUint(parts[n-2], 10, 64)
		if err != nil {
			lastUsed = 0
		}
		active := parts[n-1] == "1"

		panes = append(panes, model.NewPane(parts[0], parts[1], parts[2], title, lastUsed, active))
	}

	return panes
}
