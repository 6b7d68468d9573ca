package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/arcana/internal/progress"
)

func entries(cardIDs ...string) []progress.Entry {
	var out []progress.Entry
	for i, id := range cardIDs {
		out = append(out, progress.Entry{ID: string(rune('a' + i)), CardID: id})
	}
	return out
}

func TestDerive(t *testing.T) {
	t.Run("journal milestone alone", func(t *testing.T) {
		rec := progress.Record{JournalEntries: 5}

		insights := Derive(rec)
		require.Len(t, insights, 1)
		assert.Equal(t, TypeJournal, insights[0].Type)
		assert.Equal(t, 5, insights[0].Count)
	})

	t.Run("empty record derives nothing", func(t *testing.T) {
		assert.Empty(t, Derive(progress.Record{}))
	})

	t.Run("below thresholds derives nothing", func(t *testing.T) {
		rec := progress.Record{
			JournalEntries: 4,
			StreakDays:     2,
			JournalHistory: entries("x", "x"), // favorite needs count > 2
		}
		assert.Empty(t, Derive(rec))
	})

	t.Run("streak at threshold qualifies", func(t *testing.T) {
		insights := Derive(progress.Record{StreakDays: 3})
		require.Len(t, insights, 1)
		assert.Equal(t, TypeStreak, insights[0].Type)
		assert.Equal(t, 3, insights[0].Count)
	})

	t.Run("favorite card needs more than two draws", func(t *testing.T) {
		rec := progress.Record{JournalHistory: entries("x", "y", "x", "x")}

		insights := Derive(rec)
		require.Len(t, insights, 1)
		assert.Equal(t, TypeFavorite, insights[0].Type)
		assert.Equal(t, "x", insights[0].CardName)
		assert.Equal(t, 3, insights[0].Count)
	})

	t.Run("favorite ties break toward first encountered", func(t *testing.T) {
		rec := progress.Record{JournalHistory: entries("a", "b", "a", "b", "a", "b")}

		insights := Derive(rec)
		require.Len(t, insights, 1)
		assert.Equal(t, "a", insights[0].CardName)
	})

	t.Run("draw milestone rounds down to the step", func(t *testing.T) {
		history := make([]string, 23)
		insights := Derive(progress.Record{DrawHistory: history})

		require.Len(t, insights, 1)
		assert.Equal(t, TypeMilestone, insights[0].Type)
		assert.Equal(t, 20, insights[0].Count)
	})
}

func TestRender(t *testing.T) {
	t.Run("no insights yields the two default lines", func(t *testing.T) {
		lines := Render(nil, progress.StyleSoft)
		require.Len(t, lines, 2)
		assert.Equal(t, "Každý výklad se počítá. Pokračuj svým tempem.", lines[0])
	})

	t.Run("at most three most recent insights render", func(t *testing.T) {
		insights := []Insight{
			{Type: TypeMilestone, Count: 20},
			{Type: TypeFavorite, CardName: "Blázen", Count: 3},
			{Type: TypeJournal, Count: 7},
			{Type: TypeStreak, Count: 4},
		}

		lines := Render(insights, progress.StyleSoft)
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "Blázen")
		assert.Contains(t, lines[1], "7")
		assert.Contains(t, lines[2], "4")
	})

	t.Run("styles pick different dictionaries", func(t *testing.T) {
		insights := []Insight{{Type: TypeStreak, Count: 3}}

		soft := Render(insights, progress.StyleSoft)
		genz := Render(insights, progress.StyleGenZ)

		require.Len(t, soft, 1)
		require.Len(t, genz, 1)
		assert.NotEqual(t, soft[0], genz[0])
	})

	t.Run("unknown style falls back to soft", func(t *testing.T) {
		lines := Render(nil, "victorian")
		assert.Equal(t, Render(nil, progress.StyleSoft), lines)
	})
}
