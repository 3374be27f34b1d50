package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/timvw/pane-pick/internal/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all pane targets",
	Long: `List every tmux pane across all sessions.

With --format plain (the default) each line is a pane target that can be
passed to tmux -t. With --format json each line is one JSON record.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := getMultiplexer()
		if err != nil {
			return err
		}

		panes, err := m.ListPanes(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list panes: %w", err)
		}

		format := output.ParseFormat(flagFormat)
		for _, p := range panes {
			if err := output.Write(cmd.OutOrStdout(), p, format); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
