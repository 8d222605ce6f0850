package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/cj3636/zprompt/internal/segment"
	"github.com/mattn/go-runewidth"
)

// Format represents the desired output format.
type Format string

const (
	// FormatANSI joins formatted segments with single spaces.
	FormatANSI Format = "ansi"
	// FormatZsh wraps escapes in %{ %} and escapes % for zsh prompt expansion.
	FormatZsh Format = "zsh"
	// FormatBash wraps escapes in \001 \002 for readline.
	FormatBash Format = "bash"
	// FormatPlain drops all color.
	FormatPlain Format = "plain"
	// FormatJSON emits one object per segment.
	FormatJSON Format = "json"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatANSI, FormatZsh, FormatBash, FormatPlain, FormatJSON}
}

// ParseFormat resolves a user-supplied format name.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(FormatANSI), "text":
		return FormatANSI, nil
	case string(FormatZsh):
		return FormatZsh, nil
	case string(FormatBash):
		return FormatBash, nil
	case string(FormatPlain), "none":
		return FormatPlain, nil
	case string(FormatJSON):
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", raw)
	}
}

// Render returns the segments in the requested format, without a trailing
// newline.
func Render(segs []segment.Segment, format Format) (string, error) {
	switch format {
	case FormatANSI, "":
		return segment.Join(segs), nil
	case FormatZsh:
		return renderWrapped(segs, "%{", "%}", escapeZsh), nil
	case FormatBash:
		return renderWrapped(segs, "\x01", "\x02", nil), nil
	case FormatPlain:
		return ansi.Strip(segment.Join(segs)), nil
	case FormatJSON:
		return renderJSON(segs)
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

// renderWrapped marks escape sequences as zero-width for the shell's line
// editor so the cursor lands where the prompt visually ends.
func renderWrapped(segs []segment.Segment, open, close string, escape func(string) string) string {
	var b strings.Builder
	for i, s := range segs {
		if i > 0 {
			b.WriteByte(' ')
		}
		text := s.Text()
		if escape != nil {
			text = escape(text)
		}
		if _, ok := s.Color(); !ok {
			b.WriteString(text)
			continue
		}
		b.WriteString(open + s.Open() + close)
		b.WriteString(text)
		b.WriteString(open + s.Close() + close)
	}
	return b.String()
}

// escapeZsh keeps literal % signs, e.g. in branch names, from being read as
// prompt escapes.
func escapeZsh(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}

type jsonSegment struct {
	Text  string `json:"text"`
	Color string `json:"color,omitempty"`
	Width int    `json:"width"`
}

func renderJSON(segs []segment.Segment) (string, error) {
	out := make([]jsonSegment, len(segs))
	for i, s := range segs {
		out[i] = jsonSegment{Text: s.Text(), Width: runewidth.StringWidth(s.Text())}
		if c, ok := s.Color(); ok {
			out[i].Color = c.String()
		}
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encode segments: %w", err)
	}
	return string(data), nil
}
