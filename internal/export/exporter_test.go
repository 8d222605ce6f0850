package export

import (
	"testing"

	"github.com/cj3636/zprompt/internal/color"
	"github.com/cj3636/zprompt/internal/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []segment.Segment{
	segment.Colored("main", color.Named(color.Yellow)),
	segment.New("50%"),
	segment.Colored("", color.RGB(1, 2, 3)),
}

func TestRenderANSI(t *testing.T) {
	got, err := Render(sample, FormatANSI)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[33mmain\x1b[39m 50% \x1b[38;2;1;2;3m\x1b[39m", got)
	assert.Equal(t, segment.Join(sample), got)
}

func TestRenderZsh(t *testing.T) {
	got, err := Render(sample, FormatZsh)
	require.NoError(t, err)
	assert.Equal(t, "%{\x1b[33m%}main%{\x1b[39m%} 50%% %{\x1b[38;2;1;2;3m%}%{\x1b[39m%}", got)
}

func TestRenderBash(t *testing.T) {
	got, err := Render(sample[:2], FormatBash)
	require.NoError(t, err)
	assert.Equal(t, "\x01\x1b[33m\x02main\x01\x1b[39m\x02 50%", got)
}

func TestRenderPlain(t *testing.T) {
	got, err := Render(sample, FormatPlain)
	require.NoError(t, err)
	assert.Equal(t, "main 50% ", got)
}

func TestRenderJSON(t *testing.T) {
	got, err := Render(sample[:2], FormatJSON)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"text":"main","color":"yellow","width":4},{"text":"50%","width":3}]`, got)

	got, err = Render(nil, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "[]", got)
}

func TestRenderEmpty(t *testing.T) {
	for _, f := range Formats() {
		if f == FormatJSON {
			continue
		}
		got, err := Render(nil, f)
		require.NoError(t, err)
		assert.Empty(t, got, f)
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats() {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	got, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatANSI, got)

	_, err = ParseFormat("html")
	assert.Error(t, err)
	_, err = Render(sample, Format("html"))
	assert.Error(t, err)
}
