package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestCardCompactHasNoBorder(t *testing.T) {
	c := Card{Width: 12, Height: 2, CornerRadius: 10, Header: "# general\n36 members"}
	require.False(t, c.Bordered())
	x, y := c.ContentOrigin()
	require.Equal(t, 0, x)
	require.Equal(t, 0, y)

	lines := strings.Split(ansi.Strip(c.Render()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "# general   ", lines[0])
	require.Equal(t, "36 members  ", lines[1])
}

func TestCardExpandedIsRoundedAndSized(t *testing.T) {
	c := Card{
		Width:        20,
		Height:       6,
		CornerRadius: 20,
		Opaque:       true,
		Padding:      1,
		Header:       "✕ general",
		Body:         "Content",
	}
	require.True(t, c.Bordered())
	x, y := c.ContentOrigin()
	require.Equal(t, 2, x)
	require.Equal(t, 1, y)
	w, h := c.ContentSize()
	require.Equal(t, 16, w)
	require.Equal(t, 4, h)

	lines := strings.Split(ansi.Strip(c.Render()), "\n")
	require.Len(t, lines, 6)
	for _, line := range lines {
		require.Equal(t, 20, ansi.StringWidth(line))
	}
	require.True(t, strings.HasPrefix(lines[0], "╭"))
	require.Contains(t, lines[1], "✕ general")
	require.Contains(t, lines[3], "Content")
}

func TestCardSquareCornersWhenCompactRadius(t *testing.T) {
	c := Card{Width: 10, Height: 4, CornerRadius: 10, Header: "x"}
	lines := strings.Split(ansi.Strip(c.Render()), "\n")
	require.True(t, strings.HasPrefix(lines[0], "┌"))
}

func TestCardClipsBodyToHeight(t *testing.T) {
	c := Card{Width: 10, Height: 3, CornerRadius: 20, Header: "h", Body: "1\n2\n3\n4"}
	lines := strings.Split(ansi.Strip(c.Render()), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[1], "h")
}
