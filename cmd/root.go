package cmd

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/timvw/pane-pick/internal/config"
	"github.com/timvw/pane-pick/internal/mux"
	telem "github.com/timvw/pane-pick/internal/otel"
	"github.com/timvw/pane-pick/internal/output"
	"github.com/timvw/pane-pick/internal/picker"
	"github.com/timvw/pane-pick/internal/selector"
)

var (
	// Global flags.
	flagFormat  string
	flagMux     string
	flagVerbose bool

	// Pick flags.
	flagAuto  bool
	flagTheme string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "pane-pick",
	Short: "Pick a tmux pane and print its target",
	Long: `pane-pick lists every tmux pane across all sessions and lets you pick one
with the keyboard. The chosen pane's target (session:window.pane) is printed
to stdout, so it composes with other tmux commands:

  tmux join-pane -s "$(pane-pick)"

The list is drawn on stderr. With --auto the most recently used pane other
than your own is printed without asking.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPick,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cfg = config.Load(os.Getenv)

	rootCmd.Version = Version
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", cfg.Format, "output format: plain, json")
	rootCmd.PersistentFlags().StringVar(&flagMux, "mux", cfg.Mux, "terminal multiplexer: tmux (default: auto-detect)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", cfg.Verbose, "log debug information to stderr")

	rootCmd.Flags().BoolVarP(&flagAuto, "auto", "a", false, "auto-select the most recently used pane")
	rootCmd.Flags().StringVar(&flagTheme, "theme", cfg.Theme, "color theme: dark, light")
}

// getMultiplexer is swapped out in tests.
var getMultiplexer = detectMultiplexer

// detectMultiplexer returns the configured or auto-detected multiplexer.
// Either way a multiplexer session must be present in the environment.
func detectMultiplexer() (mux.Multiplexer, error) {
	if flagMux != "" {
		return mux.FromName(flagMux, os.Getenv)
	}
	return mux.Detect(os.Getenv)
}

func runPick(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr(), flagVerbose).With("run_id", uuid.NewString())

	m, err := getMultiplexer()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	// Wire build version into OTEL service metadata
	telem.Version = Version

	// Initialize OTEL (no-op if no endpoint configured)
	tel, err := telem.Init(ctx, telem.OTELConfig{
		Endpoint: cfg.OTELEndpoint,
		Headers:  cfg.OTELHeaders,
	})
	if err != nil {
		logger.Warn("otel init failed", "error", err)
	}
	defer tel.Shutdown(context.WithoutCancel(ctx))

	p := &picker.Picker{
		Mux: m,
		Selector: &selector.Selector{
			Input:   os.Stdin,
			Output:  os.Stderr,
			RawMode: selector.NewTTYRawMode(os.Stdin.Fd()),
			Theme:   selector.ThemeByName(flagTheme),
			Logger:  logger,
		},
		Out:    cmd.OutOrStdout(),
		Format: output.ParseFormat(flagFormat),
		Auto:   flagAuto,
		Logger: logger,
	}
	if tel != nil {
		p.Tracer = tel.Tracer
		p.Metrics = tel.Metrics
	}

	return p.Run(ctx)
}
