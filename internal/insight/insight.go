// Package insight derives milestone, streak, and favorite-card observations
// from the progress record and renders them as short display lines.
package insight

import (
	"github.com/arcanaland/arcana/internal/progress"
)

// Insight types.
const (
	TypeJournal   = "journal"
	TypeStreak    = "streak"
	TypeFavorite  = "favorite"
	TypeMilestone = "milestone"
)

// Qualifying thresholds.
const (
	journalThreshold  = 5
	streakThreshold   = 3
	favoriteThreshold = 2  // favorite needs a count strictly above this
	milestoneStep     = 10 // every tenth draw is a milestone
)

// Insight is a derived, non-persisted observation.
type Insight struct {
	Type     string
	Count    int
	CardName string
}

// Derive computes qualifying insights from the record, ordered with the
// most recent kind of achievement last. It is a pure function of the record.
func Derive(rec progress.Record) []Insight {
	var insights []Insight

	if len(rec.DrawHistory) >= milestoneStep {
		insights = append(insights, Insight{
			Type:  TypeMilestone,
			Count: len(rec.DrawHistory) - len(rec.DrawHistory)%milestoneStep,
		})
	}

	if name, count := favoriteCard(rec.JournalHistory); count > favoriteThreshold {
		insights = append(insights, Insight{
			Type:     TypeFavorite,
			Count:    count,
			CardName: name,
		})
	}

	if rec.JournalEntries >= journalThreshold {
		insights = append(insights, Insight{
			Type:  TypeJournal,
			Count: rec.JournalEntries,
		})
	}

	if rec.StreakDays >= streakThreshold {
		insights = append(insights, Insight{
			Type:  TypeStreak,
			Count: rec.StreakDays,
		})
	}

	return insights
}

// favoriteCard returns the most frequently journaled card id and its count.
// Ties break toward the card encountered first in journal order.
func favoriteCard(history []progress.Entry) (string, int) {
	counts := make(map[string]int)
	var best string
	bestCount := 0

	for _, entry := range history {
		counts[entry.CardID]++
		if counts[entry.CardID] > bestCount {
			best = entry.CardID
			bestCount = counts[entry.CardID]
		}
	}

	return best, bestCount
}
