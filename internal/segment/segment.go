package segment

import (
	"strings"

	"github.com/cj3636/zprompt/internal/color"
	"github.com/muesli/termenv"
)

// ResetForeground restores the default foreground color only, leaving any
// background or attributes set by the surrounding prompt untouched.
const ResetForeground = termenv.CSI + "39m"

// Segment is one colorable unit of prompt output.
type Segment struct {
	text     string
	color    color.Color
	hasColor bool
}

// New returns an uncolored segment.
func New(text string) Segment {
	return Segment{text: text}
}

// Colored returns a segment drawn in c.
func Colored(text string, c color.Color) Segment {
	return Segment{text: text, color: c, hasColor: true}
}

// Text returns the literal display text.
func (s Segment) Text() string { return s.text }

// Color returns the segment color and whether one is set.
func (s Segment) Color() (color.Color, bool) { return s.color, s.hasColor }

// Open returns the escape sequence that starts the segment color, or "".
func (s Segment) Open() string {
	if !s.hasColor {
		return ""
	}
	return termenv.CSI + s.color.Sequence() + "m"
}

// Close returns the escape sequence that ends the segment color, or "".
func (s Segment) Close() string {
	if !s.hasColor {
		return ""
	}
	return ResetForeground
}

// Format renders the segment for a terminal.
func (s Segment) Format() string {
	if !s.hasColor {
		return s.text
	}
	return s.Open() + s.text + ResetForeground
}

// Join formats every segment and separates them with a single space. Empty
// segments keep their slot.
func Join(segs []Segment) string {
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.Format()
	}
	return strings.Join(parts, " ")
}
