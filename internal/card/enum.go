package card

import (
	"fmt"
	"strings"
)

// Suit of a minor arcana card
type Suit uint8

const (
	Wands Suit = iota
	Cups
	Swords
	Pentacles
	// Void is the suit-less placeholder used by the Silicon Dawn void cards
	Void
)

var suitNames = [...]string{"wands", "cups", "swords", "pentacles", "void"}

func (s Suit) String() string {
	if int(s) < len(suitNames) {
		return suitNames[s]
	}
	return fmt.Sprintf("suit(%d)", s)
}

// Title returns the capitalized suit name
func (s Suit) Title() string {
	return capitalize(s.String())
}

// Rank of a minor arcana card
type Rank uint8

const (
	Zero Rank = iota
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Page
	Knight
	Queen
	King
	NinetyNine
)

var rankNames = [...]string{
	"zero", "ace", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
	"page", "knight", "queen", "king", "ninety_nine",
}

func (r Rank) String() string {
	if int(r) < len(rankNames) {
		return rankNames[r]
	}
	return fmt.Sprintf("rank(%d)", r)
}

// Title returns the rank as it appears in a card name ("Ninety-Nine", "Page")
func (r Rank) Title() string {
	if r == NinetyNine {
		return "Ninety-Nine"
	}
	return capitalize(r.String())
}

// Arcana identifies a major arcana card
type Arcana uint8

const (
	Fool Arcana = iota
	Magician
	HighPriestess
	Empress
	Emperor
	Hierophant
	Lovers
	Chariot
	Strength
	Hermit
	WheelOfFortune
	Justice
	HangedMan
	Death
	Temperance
	Devil
	Tower
	Star
	Moon
	Sun
	Judgement
	World

	// Silicon Dawn additions
	Maya
	Vulture
	Universe
	Time
	Heaven
)

var arcanaNames = [...]string{
	"The Fool",
	"The Magician",
	"The High Priestess",
	"The Empress",
	"The Emperor",
	"The Hierophant",
	"The Lovers",
	"The Chariot",
	"Strength",
	"The Hermit",
	"Wheel of Fortune",
	"Justice",
	"The Hanged Man",
	"Death",
	"Temperance",
	"The Devil",
	"The Tower",
	"The Star",
	"The Moon",
	"The Sun",
	"Judgement",
	"The World",
	"Maya",
	"The Vulture",
	"Universe",
	"Time",
	"Heaven",
}

// Name returns the default English name
func (a Arcana) Name() string {
	if int(a) < len(arcanaNames) {
		return arcanaNames[a]
	}
	return fmt.Sprintf("Major Arcana %d", a)
}

func (a Arcana) String() string {
	return a.Name()
}

// key is the last segment of the canonical ID: the two-digit number for the
// standard arcana, a lowercase name for the variant ones.
func (a Arcana) key() string {
	if a <= World {
		return fmt.Sprintf("%02d", a)
	}
	name := strings.TrimPrefix(a.Name(), "The ")
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}

// StandardRanks returns the fourteen ranks of each standard suit
func StandardRanks() []Rank {
	return []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Page, Knight, Queen, King}
}

// StandardSuits returns the four suits of the minor arcana
func StandardSuits() []Suit {
	return []Suit{Wands, Cups, Swords, Pentacles}
}

// VoidRanks returns the ranks that have a void card in the Silicon Dawn
func VoidRanks() []Rank {
	return []Rank{Zero, Page, Knight, Queen, King}
}

// StandardMajors returns The Fool through The World
func StandardMajors() []Arcana {
	majors := make([]Arcana, 0, World+1)
	for a := Fool; a <= World; a++ {
		majors = append(majors, a)
	}
	return majors
}

// VariantMajors returns the extra major arcana of the Silicon Dawn
func VariantMajors() []Arcana {
	return []Arcana{Maya, Vulture, Universe, Time, Heaven}
}

var (
	suitByName  = map[string]Suit{}
	rankByName  = map[string]Rank{}
	arcanaByKey = map[string]Arcana{}
)

func init() {
	for i, name := range suitNames {
		suitByName[name] = Suit(i)
	}
	for i, name := range rankNames {
		rankByName[name] = Rank(i)
	}
	for a := Fool; a <= Heaven; a++ {
		arcanaByKey[a.key()] = a
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
