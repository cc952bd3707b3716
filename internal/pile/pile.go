// Package pile implements an ordered pile of cards with deterministic
// builders and a riffle shuffle.
//
// A pile is just a slice of cards with some dressing. It is distinct from a
// deck, which has an owner, a name, and so on.
package pile

import "slices"

// Pile is an ordered sequence of cards. The zero value is an empty pile.
// Card values are opaque: the pile only copies and compares them.
type Pile[C comparable] struct {
	cards []C
}

// New returns a pile holding a copy of cards, in the same order
func New[C comparable](cards []C) *Pile[C] {
	return &Pile[C]{cards: slices.Clone(cards)}
}

// Cards returns the cards in their current order. The returned slice is a copy;
// changing it does not change the pile.
func (p *Pile[C]) Cards() []C {
	return slices.Clone(p.cards)
}

// Len returns the number of cards in the pile
func (p *Pile[C]) Len() int {
	return len(p.cards)
}

// Equal reports whether both piles hold the same cards in the same order
func (p *Pile[C]) Equal(other *Pile[C]) bool {
	return slices.Equal(p.cards, other.cards)
}
