package config

import (
	"github.com/cj3636/zprompt/internal/color"
	"github.com/lucasb-eyer/go-colorful"
)

// Config holds the application configuration
type Config struct {
	Theme        Theme
	ThemePreset  ThemePreset
	HighContrast bool
	Overrides    Overrides
	LogLevel     string
	Format       string
}

// ThemePreset describes a named theme configuration.
type ThemePreset string

const (
	PresetDefault  ThemePreset = "default"
	PresetSolarize ThemePreset = "solarized"
	PresetDracula  ThemePreset = "dracula"
)

// Presets lists the built-in theme presets.
func Presets() []ThemePreset {
	return []ThemePreset{PresetDefault, PresetSolarize, PresetDracula}
}

// Theme holds the built-in color of every segment slot. Several slots may
// share one override role: both icons answer to RoleVCSIcon, and Branch and
// Detached both answer to RoleBranch.
type Theme struct {
	RemoteIcon color.Color
	VCSIcon    color.Color
	Branch     color.Color
	Detached   color.Color
	Staged     color.Color
	Unstaged   color.Color
	Untracked  color.Color
	Conflict   color.Color
	Stashed    color.Color
	Clean      color.Color
	Ahead      color.Color
	Behind     color.Color
	Success    color.Color
	Failure    color.Color
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		ThemePreset:  PresetDefault,
		Theme:        ThemeForPreset(PresetDefault, false),
		HighContrast: false,
		Format:       "ansi",
	}
}

// DefaultTheme returns the default color theme
func DefaultTheme() Theme {
	return Theme{
		RemoteIcon: color.Named(color.Blue),
		VCSIcon:    color.Named(color.White),
		Branch:     color.Named(color.Yellow),
		Detached:   color.Named(color.Red),
		Staged:     color.Named(color.Green),
		Unstaged:   color.Named(color.Red),
		Untracked:  color.Named(color.Cyan),
		Conflict:   color.Named(color.Magenta),
		Stashed:    color.Named(color.Blue),
		Clean:      color.Named(color.Green),
		Ahead:      color.Named(color.White),
		Behind:     color.Named(color.Red),
		Success:    color.Named(color.Green),
		Failure:    color.Named(color.Red),
	}
}

// ThemeForPreset resolves a preset name to a concrete Theme, optionally
// applying a high-contrast variation. Unknown presets fall back to the default.
func ThemeForPreset(preset ThemePreset, highContrast bool) Theme {
	switch preset {
	case PresetSolarize:
		return applyContrast(Theme{
			RemoteIcon: color.RGB(0x26, 0x8b, 0xd2),
			VCSIcon:    color.RGB(0x93, 0xa1, 0xa1),
			Branch:     color.RGB(0xb5, 0x89, 0x00),
			Detached:   color.RGB(0xcb, 0x4b, 0x16),
			Staged:     color.RGB(0x85, 0x99, 0x00),
			Unstaged:   color.RGB(0xdc, 0x32, 0x2f),
			Untracked:  color.RGB(0x2a, 0xa1, 0x98),
			Conflict:   color.RGB(0xd3, 0x36, 0x82),
			Stashed:    color.RGB(0x6c, 0x71, 0xc4),
			Clean:      color.RGB(0x85, 0x99, 0x00),
			Ahead:      color.RGB(0xee, 0xe8, 0xd5),
			Behind:     color.RGB(0xdc, 0x32, 0x2f),
			Success:    color.RGB(0x85, 0x99, 0x00),
			Failure:    color.RGB(0xdc, 0x32, 0x2f),
		}, highContrast)
	case PresetDracula:
		return applyContrast(Theme{
			RemoteIcon: color.RGB(0x8b, 0xe9, 0xfd),
			VCSIcon:    color.RGB(0xf8, 0xf8, 0xf2),
			Branch:     color.RGB(0xf1, 0xfa, 0x8c),
			Detached:   color.RGB(0xff, 0xb8, 0x6c),
			Staged:     color.RGB(0x50, 0xfa, 0x7b),
			Unstaged:   color.RGB(0xff, 0x55, 0x55),
			Untracked:  color.RGB(0x8b, 0xe9, 0xfd),
			Conflict:   color.RGB(0xff, 0x79, 0xc6),
			Stashed:    color.RGB(0xbd, 0x93, 0xf9),
			Clean:      color.RGB(0x50, 0xfa, 0x7b),
			Ahead:      color.RGB(0xf8, 0xf8, 0xf2),
			Behind:     color.RGB(0xff, 0x55, 0x55),
			Success:    color.RGB(0x50, 0xfa, 0x7b),
			Failure:    color.RGB(0xff, 0x55, 0x55),
		}, highContrast)
	default:
		return applyContrast(DefaultTheme(), highContrast)
	}
}

func applyContrast(theme Theme, highContrast bool) Theme {
	if !highContrast {
		return theme
	}

	return Theme{
		RemoteIcon: adjustBrightness(theme.RemoteIcon, 0.2),
		VCSIcon:    adjustBrightness(theme.VCSIcon, 0.2),
		Branch:     adjustBrightness(theme.Branch, 0.25),
		Detached:   adjustBrightness(theme.Detached, 0.25),
		Staged:     adjustBrightness(theme.Staged, 0.25),
		Unstaged:   adjustBrightness(theme.Unstaged, 0.25),
		Untracked:  adjustBrightness(theme.Untracked, 0.25),
		Conflict:   adjustBrightness(theme.Conflict, 0.25),
		Stashed:    adjustBrightness(theme.Stashed, 0.2),
		Clean:      adjustBrightness(theme.Clean, 0.2),
		Ahead:      adjustBrightness(theme.Ahead, 0.2),
		Behind:     adjustBrightness(theme.Behind, 0.2),
		Success:    adjustBrightness(theme.Success, 0.2),
		Failure:    adjustBrightness(theme.Failure, 0.2),
	}
}

// adjustBrightness scales truecolor components by 1+factor. Named colors are
// left to the terminal palette.
func adjustBrightness(c color.Color, factor float64) color.Color {
	if !c.IsRGB() {
		return c
	}

	r, g, b := c.RGB()
	boosted := colorful.Color{
		R: float64(r) / 255 * (1 + factor),
		G: float64(g) / 255 * (1 + factor),
		B: float64(b) / 255 * (1 + factor),
	}.Clamped()
	return color.RGB(boosted.RGB255())
}
