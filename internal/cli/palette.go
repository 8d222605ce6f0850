package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/cj3636/zprompt/internal/color"
	"github.com/cj3636/zprompt/internal/config"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type paletteEntry struct {
	slot  string
	role  config.Role
	roled bool
	def   color.Color
}

func paletteEntries(t config.Theme) []paletteEntry {
	return []paletteEntry{
		{"remote icon", config.RoleVCSIcon, true, t.RemoteIcon},
		{"git icon", config.RoleVCSIcon, true, t.VCSIcon},
		{"branch", config.RoleBranch, true, t.Branch},
		{"detached", config.RoleBranch, true, t.Detached},
		{"staged", config.RoleStaged, true, t.Staged},
		{"unstaged", config.RoleUnstaged, true, t.Unstaged},
		{"untracked", config.RoleUntracked, true, t.Untracked},
		{"conflict", config.RoleConflict, true, t.Conflict},
		{"stashed", config.RoleStashed, true, t.Stashed},
		{"clean", config.RoleClean, true, t.Clean},
		{"ahead", config.RoleAhead, true, t.Ahead},
		{"behind", config.RoleBehind, true, t.Behind},
		{"success", 0, false, t.Success},
		{"failure", 0, false, t.Failure},
	}
}

func newPaletteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "Show the effective color of every segment",
		Long: `Show each segment slot with the color it renders in after the theme preset
and config file overrides are applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if isTerminal(w) {
				return renderPalette(w, a.cfg)
			}
			return renderPalettePlain(w, a.cfg)
		},
	}
}

func effective(e paletteEntry, ov config.Overrides) color.Color {
	if !e.roled {
		return e.def
	}
	return ov.Resolve(e.role, e.def)
}

func renderPalette(w io.Writer, cfg *config.Config) error {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true)
	label := r.NewStyle().Width(14)
	faint := r.NewStyle().Faint(true)

	if _, err := fmt.Fprintln(w, title.Render(fmt.Sprintf("Preset: %s", cfg.ThemePreset))); err != nil {
		return err
	}
	for _, e := range paletteEntries(cfg.Theme) {
		c := effective(e, cfg.Overrides)
		swatch := r.NewStyle().Foreground(lipglossColor(c)).Render("████")
		key := ""
		if e.roled {
			key = faint.Render(e.role.Key())
		}
		if _, err := fmt.Fprintf(w, "%s %s %-8s %s\n", label.Render(e.slot), swatch, c, key); err != nil {
			return err
		}
	}
	return nil
}

func renderPalettePlain(w io.Writer, cfg *config.Config) error {
	for _, e := range paletteEntries(cfg.Theme) {
		key := "-"
		if e.roled {
			key = e.role.Key()
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", e.slot, effective(e, cfg.Overrides), key); err != nil {
			return err
		}
	}
	return nil
}

// lipglossColor maps named colors to their ANSI index so the terminal
// palette decides the shade, as it does for prompt segments.
func lipglossColor(c color.Color) lipgloss.Color {
	if c.IsRGB() {
		return lipgloss.Color(c.String())
	}
	return lipgloss.Color(strconv.Itoa(int(c.Name())))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
