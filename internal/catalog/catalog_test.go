package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/arcana/internal/card"
)

func TestLoad(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	t.Run("full catalog size", func(t *testing.T) {
		assert.Equal(t, 78, cat.Size())
	})

	t.Run("suit sizes", func(t *testing.T) {
		assert.Len(t, cat.BySuit(card.SuitMajorArcana), 22)
		assert.Len(t, cat.BySuit(card.SuitCups), 14)
		assert.Len(t, cat.BySuit(card.SuitPentacles), 14)
		assert.Len(t, cat.BySuit(card.SuitWands), 14)
		assert.Len(t, cat.BySuit(card.SuitSwords), 14)
	})

	t.Run("every card has a recognized suit after assembly", func(t *testing.T) {
		for _, c := range cat.Cards() {
			assert.True(t, c.Suit.Valid(), "card %s has suit %q", c.ID, c.Suit)
		}
	})

	t.Run("ids unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, c := range cat.Cards() {
			assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
			seen[c.ID] = true
		}
	})

	t.Run("lookup by id", func(t *testing.T) {
		c, err := cat.Get("major_arcana.00")
		require.NoError(t, err)
		assert.Equal(t, "The Fool", c.Name)
		assert.Equal(t, "Blázen", c.NameCzech)
		assert.Equal(t, card.SuitMajorArcana, c.Suit)

		_, err = cat.Get("major_arcana.99")
		assert.Error(t, err)
	})

	t.Run("reversed meaning is optional", func(t *testing.T) {
		c, err := cat.Get("minor_arcana.pentacles.nine")
		require.NoError(t, err)
		assert.Empty(t, c.MeaningReversed)
		assert.NotEmpty(t, c.MeaningUpright)
	})
}

func TestValidate(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	results := cat.Validate()
	assert.Empty(t, results.Errors, "bundled catalog must validate cleanly")
}

func TestValidateFindsProblems(t *testing.T) {
	cat := &Catalog{
		cards: []*card.Card{
			{ID: "x", Name: "X", Suit: card.Suit("cups"), MeaningUpright: "text"},
			{ID: "x", Name: "", Suit: card.Suit("clubs")},
		},
	}

	results := cat.Validate()
	assert.Contains(t, results.Errors, "duplicate card id: x")
	assert.Contains(t, results.Errors, `card x has unrecognized suit "clubs"`)
	assert.Contains(t, results.Errors, "card x has no name")
	assert.NotEmpty(t, results.Errors)
}
