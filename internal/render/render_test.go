package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/riffle/internal/card"
)

func plain(width int) (*Renderer, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Renderer{Out: &buf, Width: width, Names: defaultNames{}}, &buf
}

func TestPileSingleColumn(t *testing.T) {
	r, buf := plain(20)

	r.Pile([]card.Card{card.Major(card.Fool), card.WhiteCard})

	assert.Equal(t, "    1. The Fool\n    2. White\n", buf.String())
}

func TestPileColumns(t *testing.T) {
	r, buf := plain(80)
	cards := []card.Card{
		card.Minor(card.Ace, card.Wands),
		card.Minor(card.Two, card.Wands),
		card.Minor(card.Three, card.Wands),
		card.Minor(card.Four, card.Wands),
		card.Minor(card.Five, card.Wands),
	}

	r.Pile(cards)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	// widest entry is 19, plus 2 spacing: (80-2)/21 = 3 per row
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "1. Ace of Wands")
	assert.Contains(t, lines[0], "3. Three of Wands")
	assert.Contains(t, lines[1], "5. Five of Wands")
}

func TestPileShowIDs(t *testing.T) {
	r, buf := plain(40)
	r.ShowIDs = true

	r.Pile([]card.Card{card.Minor(card.Zero, card.Void)})

	assert.Contains(t, buf.String(), "minor_arcana.void.zero")
	assert.Contains(t, buf.String(), "Zero of the Void")
}

func TestPileColor(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{Out: &buf, Width: 80, Color: true, Names: defaultNames{}}

	r.Pile([]card.Card{card.Minor(card.Ace, card.Cups)})

	out := buf.String()
	assert.Contains(t, out, "\x1b[38;2;58;123;213m")
	assert.Equal(t, "    1. Ace of Cups\n", StripANSI(out))
}

func TestHeader(t *testing.T) {
	r, buf := plain(80)

	r.Header("Seed", "42")

	assert.Equal(t, "Seed: 42\n", buf.String())
}

func TestWrap(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		width    int
		expected []string
	}{
		{name: "empty", text: "", width: 20, expected: []string{""}},
		{name: "fits", text: "one two", width: 20, expected: []string{"one two"}},
		{
			name:     "wraps",
			text:     "cut near the middle and let chunks fall",
			width:    14,
			expected: []string{"cut near the", "middle and let", "chunks fall"},
		},
		{name: "tiny width falls back", text: "a b", width: 3, expected: []string{"a b"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Wrap(tc.text, tc.width))
		})
	}
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "Ace", StripANSI("\x1b[38;2;1;2;3mAce\x1b[0m"))
	assert.Equal(t, "plain", StripANSI("plain"))
}

func TestTrueColorBadHex(t *testing.T) {
	assert.Equal(t, "x", trueColor("x", "not-a-color"))
}
