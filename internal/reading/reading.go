// Package reading implements the request/response pipeline between drawn
// cards and the reading service: prompt assembly, the HTTP client, and the
// parsing of reply text back into per-position meanings.
package reading

import (
	"github.com/arcanaland/arcana/internal/card"
)

// Prompt template modes. Single renders one card with no position label;
// Spread renders an ordered, labeled list.
const (
	ModeSingle = "single"
	ModeSpread = "spread"
)

// CardContext is one drawn card as sent to the reading service.
type CardContext struct {
	Name      string `json:"name"`
	NameCzech string `json:"nameCzech"`
	Position  string `json:"position"` // upright or reversed
	Label     string `json:"label,omitempty"`
}

// Request carries everything the reading service needs to produce a reading.
type Request struct {
	SpreadName string        `json:"spreadName"`
	Cards      []CardContext `json:"cards"`
	Question   string        `json:"question,omitempty"`
	Mode       string        `json:"mode"`
}

// Spread is a named arrangement of card positions.
type Spread struct {
	Name   string
	Mode   string
	Labels []string
}

// Bundled spreads. LoveSpread's labels double as the parser's expected
// positions for relationship readings.
var (
	DailySpread = Spread{
		Name:   "Karta dne",
		Mode:   ModeSingle,
		Labels: []string{""},
	}

	LoveSpread = Spread{
		Name:   "Vztahové rozložení",
		Mode:   ModeSpread,
		Labels: []string{"Ty", "Partner", "Vaše pouto"},
	}

	TimelineSpread = Spread{
		Name:   "Minulost, přítomnost, budoucnost",
		Mode:   ModeSpread,
		Labels: []string{"Minulost", "Přítomnost", "Budoucnost"},
	}
)

// NewRequest assembles a service request from drawn cards and the spread they
// were drawn for. Labels beyond the spread's definition get none.
func NewRequest(spread Spread, drawn []card.Drawn, question string) Request {
	req := Request{
		SpreadName: spread.Name,
		Mode:       spread.Mode,
		Question:   question,
	}

	for i, d := range drawn {
		ctx := CardContext{
			Name:      d.Card.Name,
			NameCzech: d.Card.NameCzech,
			Position:  string(d.Orientation),
		}
		if spread.Mode == ModeSpread && i < len(spread.Labels) {
			ctx.Label = spread.Labels[i]
		}
		req.Cards = append(req.Cards, ctx)
	}

	return req
}
