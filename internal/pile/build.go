package pile

// Catalog supplies the enumerations the builders draw from. C is the card
// type, R the rank type and S the suit type.
type Catalog[C comparable, R, S any] struct {
	Ranks         []R // standard ranks
	Suits         []S // standard suits
	Majors        []C // standard major arcana
	VariantMajors []C
	VoidRanks     []R // ranks that get a suit-less card
	NinetyNine    R
	Void          S
	Extras        []C // singleton special cards, appended last
	Minor         func(R, S) C
}

// Standard builds the standard pile: every rank of every suit, then the
// major arcana. The order is unspecified but is *not* randomized.
func Standard[C comparable, R, S any](cat Catalog[C, R, S]) *Pile[C] {
	cards := MinorArcana(cat)
	cards = append(cards, cat.Majors...)
	return &Pile[C]{cards: cards}
}

// Extended builds the variant pile. The order is unspecified but is *not*
// randomized.
func Extended[C comparable, R, S any](cat Catalog[C, R, S]) *Pile[C] {
	var cards []C
	for _, part := range [][]C{
		MinorArcana(cat),
		NinetyNines(cat),
		Voids(cat),
		AllMajors(cat),
		cat.Extras,
	} {
		cards = append(cards, part...)
	}
	return &Pile[C]{cards: cards}
}

// MinorArcana returns the cross product of the catalog's ranks and suits,
// rank-major.
func MinorArcana[C comparable, R, S any](cat Catalog[C, R, S]) []C {
	cards := make([]C, 0, len(cat.Ranks)*len(cat.Suits))
	for _, rank := range cat.Ranks {
		for _, suit := range cat.Suits {
			cards = append(cards, cat.Minor(rank, suit))
		}
	}
	return cards
}

// NinetyNines returns one ninety-nine card per standard suit
func NinetyNines[C comparable, R, S any](cat Catalog[C, R, S]) []C {
	cards := make([]C, 0, len(cat.Suits))
	for _, suit := range cat.Suits {
		cards = append(cards, cat.Minor(cat.NinetyNine, suit))
	}
	return cards
}

// Voids returns one void-suited card per void rank
func Voids[C comparable, R, S any](cat Catalog[C, R, S]) []C {
	cards := make([]C, 0, len(cat.VoidRanks))
	for _, rank := range cat.VoidRanks {
		cards = append(cards, cat.Minor(rank, cat.Void))
	}
	return cards
}

// AllMajors returns the standard major arcana followed by the variant ones
func AllMajors[C comparable, R, S any](cat Catalog[C, R, S]) []C {
	cards := make([]C, 0, len(cat.Majors)+len(cat.VariantMajors))
	cards = append(cards, cat.Majors...)
	return append(cards, cat.VariantMajors...)
}
