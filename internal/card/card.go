package card

// Suit identifies one of the five card groupings in the catalog.
type Suit string

const (
	SuitMajorArcana Suit = "major_arcana"
	SuitCups        Suit = "cups"
	SuitPentacles   Suit = "pentacles"
	SuitWands       Suit = "wands"
	SuitSwords      Suit = "swords"
)

// Suits lists every recognized suit in catalog order.
var Suits = []Suit{SuitMajorArcana, SuitCups, SuitPentacles, SuitWands, SuitSwords}

// Valid reports whether s is one of the five recognized suits.
func (s Suit) Valid() bool {
	for _, known := range Suits {
		if s == known {
			return true
		}
	}
	return false
}

// Orientation is the upright or reversed state assigned to a drawn card.
type Orientation string

const (
	Upright  Orientation = "upright"
	Reversed Orientation = "reversed"
)

// Card represents a tarot card
type Card struct {
	ID              string   // Canonical ID (e.g., major_arcana.00, minor_arcana.wands.ace)
	Number          int      // Ordinal within the suit
	Name            string   // Canonical English name
	NameCzech       string   // Localized name
	Keywords        []string // Short keyword strings
	MeaningUpright  string
	MeaningReversed string // Optional, empty when the source has none
	Suit            Suit
	Image           string // Image reference key
}

// Drawn is a card paired with the orientation it was drawn in.
type Drawn struct {
	Card        *Card
	Orientation Orientation
}

// DisplayName prefers the localized name and falls back to the canonical one.
func (c *Card) DisplayName() string {
	if c.NameCzech != "" {
		return c.NameCzech
	}
	return c.Name
}
