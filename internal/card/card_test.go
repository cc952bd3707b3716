package card

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type CardTestSuite struct {
	suite.Suite
}

func TestCardSuite(t *testing.T) {
	suite.Run(t, new(CardTestSuite))
}

func (s *CardTestSuite) TestID() {
	testCases := []struct {
		name     string
		card     Card
		expected string
	}{
		{name: "the fool", card: Major(Fool), expected: "major_arcana.00"},
		{name: "the world", card: Major(World), expected: "major_arcana.21"},
		{name: "variant major", card: Major(Vulture), expected: "major_arcana.vulture"},
		{name: "ace of wands", card: Minor(Ace, Wands), expected: "minor_arcana.wands.ace"},
		{name: "ninety-nine", card: Minor(NinetyNine, Cups), expected: "minor_arcana.cups.ninety_nine"},
		{name: "void zero", card: Minor(Zero, Void), expected: "minor_arcana.void.zero"},
		{name: "white", card: WhiteCard, expected: "special.white"},
		{name: "black", card: BlackCard, expected: "special.black"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.card.ID())
			s.Equal(tc.expected, tc.card.String())
		})
	}
}

func (s *CardTestSuite) TestName() {
	testCases := []struct {
		card     Card
		expected string
	}{
		{card: Major(HangedMan), expected: "The Hanged Man"},
		{card: Major(Maya), expected: "Maya"},
		{card: Minor(Knight, Pentacles), expected: "Knight of Pentacles"},
		{card: Minor(NinetyNine, Swords), expected: "Ninety-Nine of Swords"},
		{card: Minor(Queen, Void), expected: "Queen of the Void"},
		{card: WhiteCard, expected: "White"},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, tc.card.Name())
	}
}

func (s *CardTestSuite) TestParseIDRoundTrip() {
	var all []Card
	for _, r := range StandardRanks() {
		for _, su := range StandardSuits() {
			all = append(all, Minor(r, su))
		}
	}
	for _, su := range StandardSuits() {
		all = append(all, Minor(NinetyNine, su))
	}
	for _, r := range VoidRanks() {
		all = append(all, Minor(r, Void))
	}
	for _, a := range append(StandardMajors(), VariantMajors()...) {
		all = append(all, Major(a))
	}
	all = append(all, WhiteCard, BlackCard)

	for _, c := range all {
		parsed, err := ParseID(c.ID())
		s.Require().NoError(err, c.ID())
		s.Equal(c, parsed)
	}
}

func (s *CardTestSuite) TestParseIDErrors() {
	for _, id := range []string{
		"",
		"major_arcana",
		"major_arcana.22",
		"minor_arcana.wands",
		"minor_arcana.coins.ace",
		"minor_arcana.wands.jack",
		"special.grey",
		"major_arcana.00.extra",
	} {
		_, err := ParseID(id)
		s.ErrorIs(err, ErrInvalidID, "id %q", id)
	}
}

func (s *CardTestSuite) TestEnumerationSizes() {
	s.Len(StandardRanks(), 14)
	s.Len(StandardSuits(), 4)
	s.Len(StandardMajors(), 22)
	s.Len(VariantMajors(), 5)
	s.Len(VoidRanks(), 5)
}

func (s *CardTestSuite) TestEnumerationsAreFresh() {
	ranks := StandardRanks()
	ranks[0] = King

	s.Equal(Ace, StandardRanks()[0])
}
