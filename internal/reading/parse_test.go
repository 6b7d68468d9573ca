package reading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lovePositions = []string{"Ty", "Partner", "Vaše pouto"}

func TestParseSegmented(t *testing.T) {
	resp := Response{
		Sections: []string{" první ", "druhý", "třetí"},
	}

	meanings := Parse(resp, lovePositions)
	assert.Equal(t, []string{"první", "druhý", "třetí"}, meanings)
}

func TestParseCombined(t *testing.T) {
	t.Run("three labeled sections map in position order", func(t *testing.T) {
		resp := Response{Text: "Tvoje karty promluvily.\n\n" +
			"**TY – Blázen (vzpřímeně)**\nStojíš na začátku a **nová cesta** tě volá.\n\n" +
			"**PARTNER – Věž (obráceně)**\nDrží se starých jistot.\n\n" +
			"**VAŠE POUTO – Hvězda**\nSpolečná naděje vás spojuje.\n\n" +
			"**ZÁVĚR**\nOpatrujte se."}

		meanings := Parse(resp, lovePositions)
		require.Len(t, meanings, 3)

		assert.Equal(t, "Stojíš na začátku a **nová cesta** tě volá.", meanings[0])
		assert.Equal(t, "Drží se starých jistot.", meanings[1])
		assert.Equal(t, "Společná naděje vás spojuje.", meanings[2])
	})

	t.Run("label variants match case-insensitively", func(t *testing.T) {
		resp := Response{Text: "**Tvoje energie**\nJsi v pohybu.\n" +
			"**Druhá strana**\nVyčkává.\n" +
			"**Mezi vámi**\nNapětí i přitažlivost."}

		meanings := Parse(resp, lovePositions)
		assert.Equal(t, "Jsi v pohybu.", meanings[0])
		assert.Equal(t, "Vyčkává.", meanings[1])
		assert.Equal(t, "Napětí i přitažlivost.", meanings[2])
	})

	t.Run("missing labels degrade to the fallback value", func(t *testing.T) {
		resp := Response{Text: "**TY – Blázen**\nTvá energie je čistá a otevřená."}

		meanings := Parse(resp, lovePositions)
		assert.Equal(t, "Tvá energie je čistá a otevřená.", meanings[0])
		assert.Equal(t, MeaningUnavailable, meanings[1])
		assert.Equal(t, MeaningUnavailable, meanings[2])
	})

	t.Run("empty span degrades to the fallback value", func(t *testing.T) {
		resp := Response{Text: "**TY –**\n**PARTNER – Věž**\nDrží se zpátky."}

		meanings := Parse(resp, lovePositions)
		assert.Equal(t, MeaningUnavailable, meanings[0])
		assert.Equal(t, "Drží se zpátky.", meanings[1])
		assert.Equal(t, MeaningUnavailable, meanings[2])
	})

	t.Run("unstructured block yields all fallbacks", func(t *testing.T) {
		resp := Response{Text: "Karty dnes mlčí a nic naznačeného v textu není."}

		meanings := Parse(resp, lovePositions)
		for _, m := range meanings {
			assert.Equal(t, MeaningUnavailable, m)
		}
	})

	t.Run("derived labels work for other spreads", func(t *testing.T) {
		resp := Response{Text: "**MINULOST:** Co bylo, tě formovalo. " +
			"**PŘÍTOMNOST:** Stojíš pevně. " +
			"**BUDOUCNOST:** Otevírá se cesta."}

		meanings := Parse(resp, []string{"Minulost", "Přítomnost", "Budoucnost"})
		assert.Equal(t, "Co bylo, tě formovalo.", meanings[0])
		assert.Equal(t, "Stojíš pevně.", meanings[1])
		assert.Equal(t, "Otevírá se cesta.", meanings[2])
	})

	t.Run("no positions yields nil", func(t *testing.T) {
		assert.Nil(t, Parse(Response{Text: "cokoli"}, nil))
	})
}
