package card

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidID is returned when a canonical card ID cannot be parsed
var ErrInvalidID = errors.New("invalid card ID")

// Kind separates the minor and major arcana from the two special cards
type Kind uint8

const (
	KindMinor Kind = iota
	KindMajor
	KindWhite
	KindBlack
)

// Card represents a tarot card. It is a plain value: comparable with == and
// copied on assignment.
type Card struct {
	Kind   Kind
	Rank   Rank   // minor arcana only
	Suit   Suit   // minor arcana only
	Arcana Arcana // major arcana only
}

var (
	WhiteCard = Card{Kind: KindWhite}
	BlackCard = Card{Kind: KindBlack}
)

// Minor returns the minor arcana card of the given rank and suit
func Minor(rank Rank, suit Suit) Card {
	return Card{Kind: KindMinor, Rank: rank, Suit: suit}
}

// Major returns the major arcana card for arcana
func Major(arcana Arcana) Card {
	return Card{Kind: KindMajor, Arcana: arcana}
}

// ID returns the canonical ID (e.g., major_arcana.00, minor_arcana.wands.ace)
func (c Card) ID() string {
	switch c.Kind {
	case KindMajor:
		return "major_arcana." + c.Arcana.key()
	case KindMinor:
		return fmt.Sprintf("minor_arcana.%s.%s", c.Suit, c.Rank)
	case KindWhite:
		return "special.white"
	case KindBlack:
		return "special.black"
	}
	return fmt.Sprintf("unknown.%d", c.Kind)
}

// Name returns the default English name of the card
func (c Card) Name() string {
	switch c.Kind {
	case KindMajor:
		return c.Arcana.Name()
	case KindMinor:
		if c.Suit == Void {
			return fmt.Sprintf("%s of the Void", c.Rank.Title())
		}
		return fmt.Sprintf("%s of %s", c.Rank.Title(), c.Suit.Title())
	case KindWhite:
		return "White"
	case KindBlack:
		return "Black"
	}
	return "Unknown"
}

func (c Card) String() string {
	return c.ID()
}

// ParseID parses a canonical card ID back into a Card
func ParseID(id string) (Card, error) {
	parts := strings.Split(id, ".")
	switch {
	case parts[0] == "major_arcana" && len(parts) == 2:
		a, ok := arcanaByKey[parts[1]]
		if !ok {
			return Card{}, fmt.Errorf("%w: unknown major arcana %q", ErrInvalidID, parts[1])
		}
		return Major(a), nil
	case parts[0] == "minor_arcana" && len(parts) == 3:
		s, ok := suitByName[parts[1]]
		if !ok {
			return Card{}, fmt.Errorf("%w: unknown suit %q", ErrInvalidID, parts[1])
		}
		r, ok := rankByName[parts[2]]
		if !ok {
			return Card{}, fmt.Errorf("%w: unknown rank %q", ErrInvalidID, parts[2])
		}
		return Minor(r, s), nil
	case id == "special.white":
		return WhiteCard, nil
	case id == "special.black":
		return BlackCard, nil
	}
	return Card{}, fmt.Errorf("%w: %s", ErrInvalidID, id)
}
