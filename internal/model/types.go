package model

import "fmt"

// Pane represents a single tmux pane as reported by one fetch.
// Panes are never mutated after parsing.
type Pane struct {
	// SessionName is the tmux session the pane belongs to.
	SessionName string `json:"session_name"`
	// WindowIndex is the window index inside the session, kept verbatim.
	WindowIndex string `json:"window_index"`
	// PaneIndex is the pane index inside the window, kept verbatim.
	PaneIndex string `json:"pane_index"`
	// PaneTitle is the pane title (often the hostname or the running program).
	PaneTitle string `json:"pane_title"`
	// LastUsed is the last activity time in Unix seconds, 0 when unknown.
	LastUsed uint64 `json:"last_used"`
	// IsActive reports whether tmux flags the pane as active in its window.
	IsActive bool `json:"is_active"`
	// FullID is the composite "session:window.pane" target. It is unique
	// within one fetched list.
	FullID string `json:"full_id"`
}

// NewPane builds a Pane and derives its composite identifier.
func NewPane(session, window, pane, title string, lastUsed uint64, active bool) Pane {
	return Pane{
		SessionName: session,
		WindowIndex: window,
		PaneIndex:   pane,
		PaneTitle:   title,
		LastUsed:    lastUsed,
		IsActive:    active,
		FullID:      FullID(session, window, pane),
	}
}

// FullID formats a tmux target string from its parts.
func FullID(session, window, pane string) string {
	return fmt.Sprintf("%s:%s.%s", session, window, pane)
}

// DisplayName is the label shown for the pane in the selector list.
func (p Pane) DisplayName() string {
	return fmt.Sprintf("%s - %s", p.FullID, p.PaneTitle)
}

// Find returns the pane with the given composite identifier.
func Find(panes []Pane, id string) (Pane, bool) {
	for _, p := range panes {
		if p.FullID == id {
			return p, true
		}
	}
	return Pane{}, false
}
