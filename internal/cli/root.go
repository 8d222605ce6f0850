package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cj3636/zprompt/internal/config"
	"github.com/cj3636/zprompt/internal/export"
	"github.com/cj3636/zprompt/internal/logging"
	"github.com/cj3636/zprompt/internal/segment"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	configPath   string
	logLevel     string
	format       string
	preset       string
	highContrast bool
	timeout      time.Duration

	cfg    *config.Config
	out    export.Format
	logger *zap.Logger
}

// NewRootCmd builds the zprompt command tree.
func NewRootCmd(version string) *cobra.Command {
	a := &app{logger: zap.NewNop(), cfg: config.DefaultConfig(), out: export.FormatANSI}

	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Colored shell prompt segments",
		Long: `zprompt prints small colored segments for a shell prompt.

Each subcommand writes its segments to stdout, separated by single spaces and
without a trailing newline, so it can be embedded directly in PROMPT or PS1.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (default $ZPROMPT_CONFIG or <config dir>/zprompt/config.yaml)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log to stderr at this level (debug, info, warn, error)")
	flags.StringVarP(&a.format, "format", "f", "", "Output format: "+formatNames())
	flags.StringVar(&a.preset, "preset", "", "Theme preset: default, solarized or dracula")
	flags.BoolVar(&a.highContrast, "high-contrast", false, "Brighten truecolor theme colors")
	flags.DurationVar(&a.timeout, "timeout", 0, "Give up on repository queries after this long (0 waits forever)")

	cmd.AddCommand(newGitCmd(a))
	cmd.AddCommand(newCmdCmd(a))
	cmd.AddCommand(newPaletteCmd(a))
	return cmd
}

// init loads configuration and the logger. Nothing here may fail the
// command: a broken config file or unknown format falls back to defaults.
func (a *app) init(cmd *cobra.Command) {
	path := a.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, cfgErr := config.Load(path)

	level := cfg.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	a.logger = logging.New(level, cmd.ErrOrStderr())
	if cfgErr != nil {
		a.logger.Debug("config file ignored", zap.String("path", path), zap.Error(cfgErr))
	}

	if cmd.Flags().Changed("preset") {
		cfg.ThemePreset = config.ThemePreset(strings.ToLower(a.preset))
	}
	if cmd.Flags().Changed("high-contrast") {
		cfg.HighContrast = a.highContrast
	}
	cfg.Theme = config.ThemeForPreset(cfg.ThemePreset, cfg.HighContrast)
	a.cfg = cfg

	rawFormat := cfg.Format
	if a.format != "" {
		rawFormat = a.format
	}
	format, err := export.ParseFormat(rawFormat)
	if err != nil {
		a.logger.Debug("format ignored", zap.Error(err))
		format = export.FormatANSI
	}
	a.out = format
}

func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if a.timeout > 0 {
		return context.WithTimeout(ctx, a.timeout)
	}
	return context.WithCancel(ctx)
}

// write renders segs in the selected format with no trailing newline.
func (a *app) write(cmd *cobra.Command, segs []segment.Segment) error {
	rendered, err := export.Render(segs, a.out)
	if err != nil {
		a.logger.Debug("render failed, using ansi", zap.Error(err))
		rendered = segment.Join(segs)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
	return err
}

func formatNames() string {
	names := make([]string, 0, len(export.Formats()))
	for _, f := range export.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
