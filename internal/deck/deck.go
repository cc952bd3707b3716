package deck

import (
	"errors"
	"fmt"
	"sort"

	"github.com/arcanaland/riffle/internal/card"
	"github.com/arcanaland/riffle/internal/pile"
)

// ErrUnknownVariant is returned when a recipe name is not registered
var ErrUnknownVariant = errors.New("unknown deck variant")

// Variant names a deck recipe
type Variant string

const (
	Standard    Variant = "standard"
	SiliconDawn Variant = "silicon-dawn"
)

// Recipe describes a registered variant
type Recipe struct {
	Variant     Variant
	Description string
	build       func(pile.Catalog[card.Card, card.Rank, card.Suit]) *pile.Pile[card.Card]
}

var recipes = map[Variant]Recipe{
	Standard: {
		Variant:     Standard,
		Description: "22 major arcana and 56 minor arcana",
		build:       pile.Standard[card.Card, card.Rank, card.Suit],
	},
	SiliconDawn: {
		Variant:     SiliconDawn,
		Description: "standard deck plus ninety-nines, voids, extra majors, White and Black",
		build:       pile.Extended[card.Card, card.Rank, card.Suit],
	},
}

var aliases = map[string]Variant{
	"extended": SiliconDawn,
	"variant":  SiliconDawn,
}

// Tarot returns the catalog of tarot enumerations the builders draw from
func Tarot() pile.Catalog[card.Card, card.Rank, card.Suit] {
	return pile.Catalog[card.Card, card.Rank, card.Suit]{
		Ranks:         card.StandardRanks(),
		Suits:         card.StandardSuits(),
		Majors:        majors(card.StandardMajors()),
		VariantMajors: majors(card.VariantMajors()),
		VoidRanks:     card.VoidRanks(),
		NinetyNine:    card.NinetyNine,
		Void:          card.Void,
		Extras:        []card.Card{card.WhiteCard, card.BlackCard},
		Minor:         card.Minor,
	}
}

func majors(arcana []card.Arcana) []card.Card {
	cards := make([]card.Card, 0, len(arcana))
	for _, a := range arcana {
		cards = append(cards, card.Major(a))
	}
	return cards
}

// Lookup resolves a variant name or alias
func Lookup(name string) (Recipe, error) {
	if v, ok := aliases[name]; ok {
		name = string(v)
	}
	r, ok := recipes[Variant(name)]
	if !ok {
		return Recipe{}, fmt.Errorf("%w: %s", ErrUnknownVariant, name)
	}
	return r, nil
}

// Build constructs a fresh, unshuffled pile for the named variant
func Build(name string) (*pile.Pile[card.Card], error) {
	r, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return r.Build(), nil
}

// Build constructs a fresh, unshuffled pile from the recipe
func (r Recipe) Build() *pile.Pile[card.Card] {
	return r.build(Tarot())
}

// Size returns the number of cards the recipe produces
func (r Recipe) Size() int {
	return r.Build().Len()
}

// Variants returns the registered recipes sorted by name
func Variants() []Recipe {
	list := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		list = append(list, r)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Variant < list[j].Variant
	})
	return list
}
