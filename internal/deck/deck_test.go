package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/riffle/internal/card"
	"github.com/arcanaland/riffle/internal/pile"
)

func TestStandardCount(t *testing.T) {
	p, err := Build("standard")
	require.NoError(t, err)

	assert.Equal(t, 78, p.Len())
}

func TestSiliconDawnCount(t *testing.T) {
	for _, name := range []string{"silicon-dawn", "extended", "variant"} {
		p, err := Build(name)
		require.NoError(t, err, name)

		assert.Equal(t, 94, p.Len(), name)
	}
}

func TestBuildUnknownVariant(t *testing.T) {
	_, err := Build("thoth")

	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestBuildIsDeterministic(t *testing.T) {
	for _, r := range Variants() {
		assert.True(t, r.Build().Equal(r.Build()), r.Variant)
	}
}

func TestStandardComposition(t *testing.T) {
	p, err := Build("standard")
	require.NoError(t, err)

	seen := make(map[card.Card]int)
	for _, c := range p.Cards() {
		seen[c]++
	}
	assert.Len(t, seen, 78, "no duplicates")
	assert.Equal(t, 1, seen[card.Minor(card.King, card.Pentacles)])
	assert.Equal(t, 1, seen[card.Major(card.World)])
	assert.Zero(t, seen[card.WhiteCard])
	assert.Zero(t, seen[card.Major(card.Maya)])
}

func TestSiliconDawnComposition(t *testing.T) {
	p, err := Build("silicon-dawn")
	require.NoError(t, err)
	cards := p.Cards()

	seen := make(map[card.Card]int)
	for _, c := range cards {
		seen[c]++
	}
	assert.Len(t, seen, 94, "no duplicates")
	for _, s := range card.StandardSuits() {
		assert.Equal(t, 1, seen[card.Minor(card.NinetyNine, s)], "ninety-nine of %s", s)
	}
	for _, r := range card.VoidRanks() {
		assert.Equal(t, 1, seen[card.Minor(r, card.Void)], "void %s", r)
	}
	assert.Equal(t, []card.Card{card.WhiteCard, card.BlackCard}, cards[92:])
}

func TestSiliconDawnContainsStandard(t *testing.T) {
	std := pile.Standard(Tarot()).Cards()
	sd := pile.Extended(Tarot()).Cards()

	assert.Subset(t, sd, std)
}

func TestVariants(t *testing.T) {
	list := Variants()
	require.Len(t, list, 2)

	assert.Equal(t, SiliconDawn, list[0].Variant)
	assert.Equal(t, 94, list[0].Size())
	assert.Equal(t, Standard, list[1].Variant)
	assert.Equal(t, 78, list[1].Size())
}

func TestDecodeNames(t *testing.T) {
	names, err := DecodeNames(`
[major_arcana]
00 = "Le Mat"
maya = "Maya la Tisseuse"

[minor_arcana.wands]
ace = "As de Bâtons"

[special]
white = "Blanc"
`)
	require.NoError(t, err)

	assert.Equal(t, "Le Mat", names.Of(card.Major(card.Fool)))
	assert.Equal(t, "Maya la Tisseuse", names.Of(card.Major(card.Maya)))
	assert.Equal(t, "As de Bâtons", names.Of(card.Minor(card.Ace, card.Wands)))
	assert.Equal(t, "Blanc", names.Of(card.WhiteCard))
	// falls back to the default name
	assert.Equal(t, "Black", names.Of(card.BlackCard))
	assert.Equal(t, "Two of Cups", names.Of(card.Minor(card.Two, card.Cups)))
}

func TestNilNamesFallBack(t *testing.T) {
	var names Names

	assert.Equal(t, "The Fool", names.Of(card.Major(card.Fool)))
}

func TestLoadNames(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "en.toml")
	require.NoError(t, os.WriteFile(path, []byte("[special]\nblack = \"Noir\"\n"), 0644))

	names, err := LoadNames(path)
	require.NoError(t, err)
	assert.Equal(t, "Noir", names.Of(card.BlackCard))

	_, err = LoadNames(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[special\n"), 0644))
	_, err = LoadNames(bad)
	assert.Error(t, err)
}
