package selector

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/timvw/pane-pick/internal/model"
)

const titleText = "Select target tmux pane:"

// pickModel implements tea.Model for the pane list.
//
// The program runs without a bubbletea renderer: the model draws a complete
// frame itself after every event, so typed-ahead keys never skip a frame.
type pickModel struct {
	panes  []model.Pane
	cursor int
	styles styles
	help   help.Model

	// out receives frames; nil disables drawing.
	out *termenv.Output

	done      bool
	confirmed bool
}

func newPickModel(panes []model.Pane, initial int, st styles) *pickModel {
	if initial < 0 || initial >= len(panes) {
		initial = 0
	}
	h := help.New()
	h.Styles.ShortKey = st.hint
	h.Styles.ShortDesc = st.hint
	h.Styles.ShortSeparator = st.hint
	return &pickModel{
		panes:  panes,
		cursor: initial,
		styles: st,
		help:   h,
	}
}

func (m *pickModel) Init() tea.Cmd {
	m.draw()
	return nil
}

func (m *pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	_, cmd := m.handleKey(km)
	m.draw()
	return m, cmd
}

// handleKey classifies one key event. Keys carrying the Alt modifier are
// ignored, as are pasted runes.
func (m *pickModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Alt || msg.Paste {
		return m, nil
	}

	// The reader may coalesce several typed runes into one event.
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
		for _, r := range msg.Runes {
			_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
			if cmd != nil {
				return m, cmd
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Up):
		m.moveUp()
	case key.Matches(msg, keys.Down):
		m.moveDown()
	case key.Matches(msg, keys.Confirm):
		return m.confirm()
	case key.Matches(msg, keys.Cancel):
		return m.cancel()
	}
	return m, nil
}

func (m *pickModel) moveUp() {
	m.cursor = (m.cursor - 1 + len(m.panes)) % len(m.panes)
}

func (m *pickModel) moveDown() {
	m.cursor = (m.cursor + 1) % len(m.panes)
}

func (m *pickModel) confirm() (tea.Model, tea.Cmd) {
	m.done = true
	m.confirmed = true
	return m, tea.Quit
}

func (m *pickModel) cancel() (tea.Model, tea.Cmd) {
	m.done = true
	return m, tea.Quit
}

// selection returns the confirmed pane id, if any.
func (m *pickModel) selection() (string, bool) {
	if !m.confirmed {
		return "", false
	}
	return m.panes[m.cursor].FullID, true
}

// draw clears the side channel, homes the cursor and writes the whole frame.
// The terminal is in raw mode, so line feeds need an explicit carriage return.
func (m *pickModel) draw() {
	if m.out == nil || m.done {
		return
	}
	m.out.ClearScreen()
	_, _ = io.WriteString(m.out, strings.ReplaceAll(m.View(), "\n", "\r\n"))
}

// View renders the frame: title, key help, then one row per pane.
func (m *pickModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render(titleText))
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(keys.ShortHelp()))
	b.WriteString("\n")

	for i, p := range m.panes {
		if i == m.cursor {
			b.WriteString(m.styles.selected.Render("> " + p.DisplayName()))
		} else {
			b.WriteString(m.styles.text.Render("  " + p.DisplayName()))
		}
		b.WriteString("\n")
	}
	return b.String()
}
