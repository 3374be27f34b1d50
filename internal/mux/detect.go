package mux

import (
	"errors"
	"fmt"
)

// ErrNoMultiplexer is returned when the process is not running inside a
// supported multiplexer session.
var ErrNoMultiplexer = errors.New("not running inside tmux (TMUX is not set)")

// Detect picks the multiplexer from the session environment. Only the
// environment is consulted: pane-pick must run inside the session it
// lists, so a reachable tmux server alone is not enough.
func Detect(getenv func(string) string) (Multiplexer, error) {
	if getenv("TMUX") != "" {
		return NewTmux(getenv("TMUX_PANE")), nil
	}
	if getenv("ZELLIJ") != "" {
		return nil, fmt.Errorf("zellij support is not yet implemented")
	}
	return nil, ErrNoMultiplexer
}

// FromName creates a Multiplexer by name. The session environment is
// still required.
func FromName(name string, getenv func(string) string) (Multiplexer, error) {
	switch name {
	case "tmux":
		if getenv("TMUX") == "" {
			return nil, ErrNoMultiplexer
		}
		return NewTmux(getenv("TMUX_PANE")), nil
	case "zellij":
		return nil, fmt.Errorf("zellij support is not yet implemented")
	default:
		return nil, fmt.Errorf("unknown multiplexer: %q (supported: tmux)", name)
	}
}
