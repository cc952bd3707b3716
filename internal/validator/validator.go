package validator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/arcanaland/riffle/internal/card"
	"github.com/arcanaland/riffle/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator checks that a list of card IDs is a complete pile of a variant,
// in any order.
type Validator struct {
	Variant string
	Results ValidationResults
}

func NewValidator(variant string) *Validator {
	return &Validator{
		Variant: variant,
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate(ids []string) (ValidationResults, error) {
	recipe, err := deck.Lookup(v.Variant)
	if err != nil {
		return v.Results, err
	}
	expected := recipe.Build().Cards()

	parsed := v.parseIDs(ids)
	v.validateMembership(parsed, expected)
	v.validateDuplicates(parsed)
	v.validateMissing(parsed, expected)
	v.validateOrder(parsed, expected)

	return v.Results, nil
}

// parseIDs parses every ID, recording an error for each that fails
func (v *Validator) parseIDs(ids []string) []card.Card {
	cards := make([]card.Card, 0, len(ids))
	for i, id := range ids {
		c, err := card.ParseID(strings.TrimSpace(id))
		if err != nil {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("entry %d: %v", i+1, err))
			continue
		}
		cards = append(cards, c)
	}
	return cards
}

// validateMembership checks that each card belongs to the variant
func (v *Validator) validateMembership(cards, expected []card.Card) {
	for _, c := range cards {
		if !slices.Contains(expected, c) {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("card not in %s deck: %s", v.Variant, c.ID()))
		}
	}
}

// validateDuplicates checks that no card appears twice
func (v *Validator) validateDuplicates(cards []card.Card) {
	counts := make(map[card.Card]int)
	for _, c := range cards {
		counts[c]++
		if counts[c] == 2 {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("duplicate card: %s", c.ID()))
		}
	}
}

// validateMissing checks that every card of the variant is present
func (v *Validator) validateMissing(cards, expected []card.Card) {
	for _, c := range expected {
		if !slices.Contains(cards, c) {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("missing card: %s", c.ID()))
		}
	}
}

// validateOrder warns when the pile was never shuffled
func (v *Validator) validateOrder(cards, expected []card.Card) {
	if len(cards) > 1 && slices.Equal(cards, expected) {
		v.Results.Warnings = append(v.Results.Warnings,
			"pile is in build order; it has not been shuffled")
	}
}
