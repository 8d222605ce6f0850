package color

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// ErrInvalidColorSpec is returned when a string is neither a known color name
// nor a #RGB / #RRGGBB hex value.
var ErrInvalidColorSpec = errors.New("invalid color spec")

// Name identifies one of the eight classic terminal colors.
type Name uint8

const (
	Black Name = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var names = [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func (n Name) String() string {
	if int(n) < len(names) {
		return names[n]
	}
	return fmt.Sprintf("Name(%d)", uint8(n))
}

// Names returns the accepted color names in terminal code order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names[:])
	return out
}

// Color is either a named terminal color or a 24-bit RGB triple.
// The zero value is Black.
type Color struct {
	rgb     bool
	name    Name
	r, g, b uint8
}

// Named returns the named color n.
func Named(n Name) Color {
	return Color{name: n}
}

// RGB returns a truecolor value.
func RGB(r, g, b uint8) Color {
	return Color{rgb: true, r: r, g: g, b: b}
}

// IsRGB reports whether c is a truecolor value.
func (c Color) IsRGB() bool { return c.rgb }

// Name returns the named color; meaningless for RGB values.
func (c Color) Name() Name { return c.name }

// RGB returns the components of a truecolor value; zero for named colors.
func (c Color) RGB() (r, g, b uint8) { return c.r, c.g, c.b }

// String returns the canonical lowercase form accepted by Parse.
func (c Color) String() string {
	if c.rgb {
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	}
	return c.name.String()
}

// Sequence returns the SGR parameters selecting c as the foreground color,
// e.g. "31" or "38;2;26;43;60".
func (c Color) Sequence() string {
	if c.rgb {
		return fmt.Sprintf("%s;2;%d;%d;%d", termenv.Foreground, c.r, c.g, c.b)
	}
	return termenv.ANSIColor(c.name).Sequence(false)
}

// Parse reads a color name or a #RGB / #RRGGBB hex value. Input is
// case-insensitive.
func Parse(s string) (Color, error) {
	spec := strings.ToLower(s)
	for i, n := range names {
		if spec == n {
			return Named(Name(i)), nil
		}
	}

	if (len(spec) != 4 && len(spec) != 7) || spec[0] != '#' {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorSpec, s)
	}
	for i := 1; i < len(spec); i++ {
		if !isHexDigit(spec[i]) {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorSpec, s)
		}
	}

	hex, err := colorful.Hex(spec)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColorSpec, s, err)
	}
	r, g, b := hex.RGB255()
	return RGB(r, g, b), nil
}

// ParseOptional parses s, treating empty or malformed input as absent.
func ParseOptional(s string) *Color {
	if s == "" {
		return nil
	}
	c, err := Parse(s)
	if err != nil {
		return nil
	}
	return &c
}

// Ptr returns a pointer to a copy of c.
func Ptr(c Color) *Color { return &c }

func isHexDigit(ch byte) bool {
	return ch >= '0' && ch <= '9' || ch >= 'a' && ch <= 'f'
}
