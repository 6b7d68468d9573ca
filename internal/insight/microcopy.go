package insight

import (
	"fmt"

	"github.com/arcanaland/arcana/internal/progress"
)

// maxRendered caps how many insights are surfaced at once.
const maxRendered = 3

// dictionary holds one tonal style's phrase templates.
type dictionary struct {
	journal   string
	streak    string
	favorite  string
	milestone string
	defaults  [2]string
}

var dictionaries = map[string]dictionary{
	progress.StyleSoft: {
		journal:   "Tvůj deník má už %d zápisů. Každý z nich je kousek tebe.",
		streak:    "%d dní v řadě u karet. Tohle tempo ti sluší.",
		favorite:  "Karta %s se k tobě vrací nejčastěji. Něco ti chce říct.",
		milestone: "Už %d vytažených karet. Cesta se pěkně vine.",
		defaults: [2]string{
			"Každý výklad se počítá. Pokračuj svým tempem.",
			"Karty čekají, až je zase otevřeš.",
		},
	},
	progress.StyleGenZ: {
		journal:   "%d zápisů v deníku?? Jsi doslova kronikářka.",
		streak:    "%d dní v kuse, žádný skip. Zůstaň v tom.",
		favorite:  "%s tě očividně sleduje. To není náhoda.",
		milestone: "%d karet vytaženo. Energie hlavní postavy.",
		defaults: [2]string{
			"Zatím čistý profil. Běž si táhnout kartu.",
			"Deník se sám nenapíše, bestie.",
		},
	},
}

// Render turns insights into display lines using the dictionary for the
// given style. At most the three most recent insights are rendered; with
// none qualifying the style's two default encouragements come back instead.
// An unknown style falls back to soft.
func Render(insights []Insight, style string) []string {
	dict, ok := dictionaries[style]
	if !ok {
		dict = dictionaries[progress.StyleSoft]
	}

	if len(insights) == 0 {
		return []string{dict.defaults[0], dict.defaults[1]}
	}

	if len(insights) > maxRendered {
		insights = insights[len(insights)-maxRendered:]
	}

	lines := make([]string, 0, len(insights))
	for _, ins := range insights {
		switch ins.Type {
		case TypeJournal:
			lines = append(lines, fmt.Sprintf(dict.journal, ins.Count))
		case TypeStreak:
			lines = append(lines, fmt.Sprintf(dict.streak, ins.Count))
		case TypeFavorite:
			lines = append(lines, fmt.Sprintf(dict.favorite, ins.CardName))
		case TypeMilestone:
			lines = append(lines, fmt.Sprintf(dict.milestone, ins.Count))
		}
	}

	return lines
}
