package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/timvw/pane-pick/internal/model"
	"github.com/timvw/pane-pick/internal/mux"
)

// stubMultiplexer serves a fixed pane list.
type stubMultiplexer struct {
	panes   []model.Pane
	current string
}

func (s *stubMultiplexer) Name() string { return "stub" }

func (s *stubMultiplexer) ListPanes(_ context.Context) ([]model.Pane, error) {
	return s.panes, nil
}

func (s *stubMultiplexer) CurrentPane(_ context.Context) (string, error) {
	return s.current, nil
}

// execute runs the root command with args and restores the flag globals
// afterwards.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	saved := struct {
		format, mux, theme string
		auto, verbose      bool
	}{flagFormat, flagMux, flagTheme, flagAuto, flagVerbose}
	t.Cleanup(func() {
		flagFormat, flagMux, flagTheme = saved.format, saved.mux, saved.theme
		flagAuto, flagVerbose = saved.auto, saved.verbose
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func stubPanes(t *testing.T) *stubMultiplexer {
	t.Helper()
	stub := &stubMultiplexer{
		panes: []model.Pane{
			model.NewPane("main", "0", "0", "editor", 100, true),
			model.NewPane("main", "1", "0", "build", 300, false),
			model.NewPane("logs", "0", "0", "tail", 200, false),
		},
		current: "main:0.0",
	}
	orig := getMultiplexer
	getMultiplexer = func() (mux.Multiplexer, error) { return stub, nil }
	t.Cleanup(func() { getMultiplexer = orig })
	return stub
}

func TestRoot_MissingTmux(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("ZELLIJ", "")

	for _, args := range [][]string{{"--auto"}, {}, {"list"}, {"current"}} {
		stdout, stderr, err := execute(t, args...)
		if !errors.Is(err, mux.ErrNoMultiplexer) {
			t.Errorf("%v: error = %v, want ErrNoMultiplexer", args, err)
		}
		if stdout != "" {
			t.Errorf("%v: stdout = %q, want empty", args, stdout)
		}
		if !strings.Contains(stderr, "TMUX is not set") {
			t.Errorf("%v: stderr = %q, want diagnostic", args, stderr)
		}
	}
}

func TestRoot_MissingTmuxWithMuxFlag(t *testing.T) {
	t.Setenv("TMUX", "")

	_, _, err := execute(t, "--mux", "tmux", "--auto")
	if !errors.Is(err, mux.ErrNoMultiplexer) {
		t.Errorf("error = %v, want ErrNoMultiplexer", err)
	}
}

func TestRoot_AutoPlain(t *testing.T) {
	stubPanes(t)

	stdout, _, err := execute(t, "--auto")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if stdout != "main:1.0\n" {
		t.Errorf("stdout = %q, want %q", stdout, "main:1.0\n")
	}
}

func TestRoot_AutoJSON(t *testing.T) {
	stubPanes(t)

	for _, args := range [][]string{
		{"--format", "json", "--auto"},
		{"-f", "json", "-a"},
	} {
		stdout, _, err := execute(t, args...)
		if err != nil {
			t.Fatalf("%v: Execute() error: %v", args, err)
		}
		if strings.Count(stdout, "\n") != 1 {
			t.Errorf("%v: want exactly one line, got %q", args, stdout)
		}
		var got model.Pane
		if err := json.Unmarshal([]byte(stdout), &got); err != nil {
			t.Fatalf("%v: stdout is not JSON: %v (%q)", args, err, stdout)
		}
		if got.FullID != "main:1.0" || got.PaneTitle != "build" || got.LastUsed != 300 {
			t.Errorf("%v: got %+v", args, got)
		}
	}
}

func TestRoot_UnknownFormatFallsBackToPlain(t *testing.T) {
	stubPanes(t)

	stdout, _, err := execute(t, "--format", "yaml", "--auto")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if stdout != "main:1.0\n" {
		t.Errorf("stdout = %q, want plain id", stdout)
	}
}

func TestRoot_RejectsArgs(t *testing.T) {
	stubPanes(t)

	if _, _, err := execute(t, "--auto", "extra"); err == nil {
		t.Error("expected error for positional argument")
	}
}

func TestList_JSON(t *testing.T) {
	stubPanes(t)

	stdout, _, err := execute(t, "list", "--format", "json")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), stdout)
	}
	var first model.Pane
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("line 0 is not JSON: %v", err)
	}
	if first.FullID != "main:0.0" {
		t.Errorf("first pane = %q, want main:0.0", first.FullID)
	}
}

func TestCurrent(t *testing.T) {
	stubPanes(t)

	stdout, _, err := execute(t, "current")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if stdout != "main:0.0\n" {
		t.Errorf("stdout = %q, want %q", stdout, "main:0.0\n")
	}
}

func TestFlags(t *testing.T) {
	tests := []struct {
		name      string
		persist   bool
		shorthand string
		def       string
	}{
		{"format", true, "f", "plain"},
		{"verbose", true, "v", "false"},
		{"mux", true, "", ""},
		{"auto", false, "a", "false"},
		{"theme", false, "", "dark"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := rootCmd.Flags()
			if tt.persist {
				fs = rootCmd.PersistentFlags()
			}
			f := fs.Lookup(tt.name)
			if f == nil {
				t.Fatalf("flag --%s not registered", tt.name)
			}
			if f.Shorthand != tt.shorthand {
				t.Errorf("shorthand = %q, want %q", f.Shorthand, tt.shorthand)
			}
			if f.DefValue != tt.def {
				t.Errorf("default = %q, want %q", f.DefValue, tt.def)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var quiet, loud bytes.Buffer
	newLogger(&quiet, false).Debug("hidden")
	newLogger(&loud, true).Debug("shown")

	if quiet.Len() != 0 {
		t.Errorf("debug record written without verbose: %q", quiet.String())
	}
	if !strings.Contains(loud.String(), "shown") {
		t.Errorf("debug record missing with verbose: %q", loud.String())
	}
}
