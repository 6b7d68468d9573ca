package catalog

import (
	"fmt"
	"strings"

	"github.com/arcanaland/arcana/internal/card"
)

// ValidationResults collects integrity problems found in a catalog.
type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// expectedSuitSizes is the fixed card count per suit in a complete catalog.
var expectedSuitSizes = map[card.Suit]int{
	card.SuitMajorArcana: 22,
	card.SuitCups:        14,
	card.SuitPentacles:   14,
	card.SuitWands:       14,
	card.SuitSwords:      14,
}

// Validate checks the assembled catalog for integrity: unique ids, recognized
// suits, expected suit sizes, and usable card text.
func (c *Catalog) Validate() ValidationResults {
	var results ValidationResults

	results.validateIDs(c)
	results.validateSuits(c)
	results.validateText(c)

	return results
}

func (r *ValidationResults) validateIDs(c *Catalog) {
	seen := make(map[string]bool)
	for _, cc := range c.cards {
		if cc.ID == "" {
			r.Errors = append(r.Errors, "card with empty id")
			continue
		}
		if seen[cc.ID] {
			r.Errors = append(r.Errors, fmt.Sprintf("duplicate card id: %s", cc.ID))
		}
		seen[cc.ID] = true

		if cc.Suit != card.SuitMajorArcana && !strings.HasPrefix(cc.ID, "minor_arcana.") {
			r.Warnings = append(r.Warnings,
				fmt.Sprintf("minor arcana card %s does not use the canonical id scheme", cc.ID))
		}
	}
}

func (r *ValidationResults) validateSuits(c *Catalog) {
	counts := make(map[card.Suit]int)
	for _, cc := range c.cards {
		if !cc.Suit.Valid() {
			r.Errors = append(r.Errors, fmt.Sprintf("card %s has unrecognized suit %q", cc.ID, cc.Suit))
			continue
		}
		counts[cc.Suit]++
	}

	for suit, want := range expectedSuitSizes {
		if got := counts[suit]; got != want {
			r.Errors = append(r.Errors,
				fmt.Sprintf("suit %s has %d cards, expected %d", suit, got, want))
		}
	}
}

func (r *ValidationResults) validateText(c *Catalog) {
	for _, cc := range c.cards {
		if cc.Name == "" {
			r.Errors = append(r.Errors, fmt.Sprintf("card %s has no name", cc.ID))
		}
		if cc.NameCzech == "" {
			r.Warnings = append(r.Warnings, fmt.Sprintf("card %s has no localized name", cc.ID))
		}
		if cc.MeaningUpright == "" {
			r.Errors = append(r.Errors, fmt.Sprintf("card %s has no upright meaning", cc.ID))
		}
		if cc.MeaningReversed == "" {
			r.Warnings = append(r.Warnings, fmt.Sprintf("card %s has no reversed meaning", cc.ID))
		}
		if len(cc.Keywords) == 0 {
			r.Warnings = append(r.Warnings, fmt.Sprintf("card %s has no keywords", cc.ID))
		}
	}
}
