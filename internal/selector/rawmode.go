package selector

import (
	"sync"

	"github.com/charmbracelet/x/term"
)

// RawMode switches a terminal between raw and cooked input.
type RawMode interface {
	Enable() error
	Restore() error
}

// TTYRawMode puts the terminal behind a file descriptor into raw mode.
type TTYRawMode struct {
	fd    uintptr
	state *term.State
}

// NewTTYRawMode returns a RawMode for the given descriptor (usually stdin).
func NewTTYRawMode(fd uintptr) *TTYRawMode {
	return &TTYRawMode{fd: fd}
}

func (t *TTYRawMode) Enable() error {
	st, err := term.MakeRaw(t.fd)
	if err != nil {
		return err
	}
	t.state = st
	return nil
}

func (t *TTYRawMode) Restore() error {
	if t.state == nil {
		return nil
	}
	return term.Restore(t.fd, t.state)
}

// rawGuard holds raw mode for the lifetime of one selection. Release
// restores the terminal at most once no matter how many exit paths call it.
type rawGuard struct {
	mode RawMode
	once sync.Once
	err  error
}

func acquireRaw(mode RawMode) (*rawGuard, error) {
	if err := mode.Enable(); err != nil {
		return nil, err
	}
	return &rawGuard{mode: mode}, nil
}

func (g *rawGuard) Release() error {
	g.once.Do(func() {
		g.err = g.mode.Restore()
	})
	return g.err
}
