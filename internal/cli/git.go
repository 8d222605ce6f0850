package cli

import (
	"os"

	"github.com/cj3636/zprompt/internal/config"
	"github.com/cj3636/zprompt/internal/prompt"
	"github.com/cj3636/zprompt/internal/vcs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGitCmd(a *app) *cobra.Command {
	var colors colorFlags

	cmd := &cobra.Command{
		Use:   "git",
		Short: "Print repository status segments",
		Long: `Print the remote, branch and working tree state of the git repository
containing the current directory. Outside a repository nothing is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			dir, err := os.Getwd()
			if err != nil {
				a.logger.Debug("working directory unavailable", zap.Error(err))
				dir = ""
			}

			insp := vcs.NewInspector(vcs.NewDefaultBackend(dir), a.logger.With(zap.String("backend", vcs.DefaultBackendName)))
			ov := config.MergeOverrides(a.cfg.Overrides, colors.overrides())
			return a.write(cmd, prompt.Aggregate(ctx, insp, a.cfg.Theme, ov))
		},
	}

	colors.register(cmd.Flags())
	return cmd
}
