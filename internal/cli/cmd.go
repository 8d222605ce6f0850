package cli

import (
	"time"

	"github.com/cj3636/zprompt/internal/color"
	"github.com/cj3636/zprompt/internal/prompt"
	"github.com/cj3636/zprompt/internal/segment"
	"github.com/spf13/cobra"
)

func newCmdCmd(a *app) *cobra.Command {
	var (
		status   int
		started  float64
		colorArg string
	)

	cmd := &cobra.Command{
		Use:   "cmd",
		Short: "Print the result of the previous command",
		Long: `Print a success or failure icon for the previous command, how long it ran
when --last-command-executed is given, and its exit status when non-zero.`,
		Example: `  zprompt cmd --last-status $? --last-command-executed $EPOCHREALTIME`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var startedAt *float64
			if cmd.Flags().Changed("last-command-executed") {
				startedAt = &started
			}
			seg := prompt.ExecutionInfo(status, startedAt, time.Now(), a.cfg.Theme, color.ParseOptional(colorArg))
			return a.write(cmd, []segment.Segment{seg})
		},
	}

	cmd.Flags().IntVar(&status, "last-status", 0, "Exit status of the previous command")
	cmd.Flags().Float64Var(&started, "last-command-executed", 0, "Unix time in seconds when the previous command started")
	cmd.Flags().StringVar(&colorArg, "color", "", "Color override (name or #RGB/#RRGGBB)")
	return cmd
}
