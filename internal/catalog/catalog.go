// Package catalog assembles the bundled card set from the per-suit data files
// into one immutable, ordered collection.
package catalog

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/arcana/internal/card"
)

//go:embed data/*.toml
var dataFS embed.FS

// suitFiles lists the bundled suit files in catalog order.
var suitFiles = []string{
	"data/major_arcana.toml",
	"data/cups.toml",
	"data/pentacles.toml",
	"data/wands.toml",
	"data/swords.toml",
}

// Catalog is the full ordered union of all suit subsets. It is immutable
// after Load returns.
type Catalog struct {
	cards []*card.Card
	byID  map[string]*card.Card
}

// suitFile mirrors the on-disk shape of one suit data file. Cards in the
// file do not carry a suit tag; it is derived from the file header.
type suitFile struct {
	Suit  string      `toml:"suit"`
	Cards []cardEntry `toml:"cards"`
}

type cardEntry struct {
	ID       string   `toml:"id"`
	Number   int      `toml:"number"`
	Name     string   `toml:"name"`
	NameCz   string   `toml:"name_cz"`
	Keywords []string `toml:"keywords"`
	Upright  string   `toml:"upright"`
	Reversed string   `toml:"reversed"`
	Image    string   `toml:"image"`
}

// Load assembles the catalog from the bundled suit files, normalizing each
// entry into the canonical card shape and checking basic integrity.
func Load() (*Catalog, error) {
	c := &Catalog{
		byID: make(map[string]*card.Card),
	}

	for _, path := range suitFiles {
		raw, err := dataFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading suit file %s: %v", path, err)
		}

		var file suitFile
		if err := toml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("error parsing suit file %s: %v", path, err)
		}

		suit := card.Suit(file.Suit)
		if !suit.Valid() {
			return nil, fmt.Errorf("unrecognized suit %q in %s", file.Suit, path)
		}

		for _, entry := range file.Cards {
			if entry.ID == "" {
				return nil, fmt.Errorf("card with empty id in %s", path)
			}
			if _, exists := c.byID[entry.ID]; exists {
				return nil, fmt.Errorf("duplicate card id %s in %s", entry.ID, path)
			}

			cc := &card.Card{
				ID:              entry.ID,
				Number:          entry.Number,
				Name:            entry.Name,
				NameCzech:       entry.NameCz,
				Keywords:        entry.Keywords,
				MeaningUpright:  entry.Upright,
				MeaningReversed: entry.Reversed,
				Suit:            suit,
				Image:           entry.Image,
			}

			c.cards = append(c.cards, cc)
			c.byID[cc.ID] = cc
		}
	}

	if len(c.cards) == 0 {
		return nil, fmt.Errorf("catalog is empty after loading suit files")
	}

	return c, nil
}

// Cards returns the catalog in its fixed order. Callers must not modify
// the returned slice.
func (c *Catalog) Cards() []*card.Card {
	return c.cards
}

// Size returns the number of cards in the catalog.
func (c *Catalog) Size() int {
	return len(c.cards)
}

// Get looks up a card by its canonical ID.
func (c *Catalog) Get(cardID string) (*card.Card, error) {
	cc, ok := c.byID[cardID]
	if !ok {
		return nil, fmt.Errorf("card not found: %s", cardID)
	}
	return cc, nil
}

// BySuit returns the cards of one suit in catalog order.
func (c *Catalog) BySuit(suit card.Suit) []*card.Card {
	var cards []*card.Card
	for _, cc := range c.cards {
		if cc.Suit == suit {
			cards = append(cards, cc)
		}
	}
	return cards
}
