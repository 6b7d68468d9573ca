// Package draw selects cards from the catalog at random and assigns each an
// orientation.
package draw

import (
	"math/rand"
	"time"

	"github.com/arcanaland/arcana/internal/card"
	"github.com/arcanaland/arcana/internal/catalog"
)

// Engine draws cards from a catalog. It is not safe for concurrent use;
// each caller should own its engine.
type Engine struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
}

// NewEngine creates an engine seeded from the current time.
func NewEngine(cat *catalog.Catalog) *Engine {
	return NewEngineWithSource(cat, rand.NewSource(time.Now().UnixNano()))
}

// NewEngineWithSource creates an engine with an explicit random source,
// which makes draws reproducible in tests.
func NewEngineWithSource(cat *catalog.Catalog, src rand.Source) *Engine {
	return &Engine{
		catalog: cat,
		rng:     rand.New(src),
	}
}

// Draw picks one card uniformly at random and gives it a 50/50 orientation.
// When pool is non-empty, sampling is restricted to the catalog cards whose
// ids appear in it. A pool that filters down to nothing widens back to the
// full catalog; with exclusion-built pools this can reintroduce an already
// drawn card, which is the accepted recovery rather than an error.
func (e *Engine) Draw(pool []string) card.Drawn {
	active := e.catalog.Cards()

	if len(pool) > 0 {
		allowed := make(map[string]bool, len(pool))
		for _, id := range pool {
			allowed[id] = true
		}

		var filtered []*card.Card
		for _, c := range active {
			if allowed[c.ID] {
				filtered = append(filtered, c)
			}
		}
		if len(filtered) > 0 {
			active = filtered
		}
	}

	drawn := active[e.rng.Intn(len(active))]

	orientation := card.Upright
	if e.rng.Intn(2) == 1 {
		orientation = card.Reversed
	}

	return card.Drawn{Card: drawn, Orientation: orientation}
}

// DrawSequence draws n cards without repetition by accumulating each drawn
// card's id into an exclusion list and passing the remaining ids as the next
// draw's pool. If exclusions ever empty the pool, Draw falls back to the full
// catalog and a repeat may occur.
func (e *Engine) DrawSequence(n int) []card.Drawn {
	var drawn []card.Drawn
	excluded := make(map[string]bool)

	for i := 0; i < n; i++ {
		var pool []string
		if len(excluded) > 0 {
			for _, c := range e.catalog.Cards() {
				if !excluded[c.ID] {
					pool = append(pool, c.ID)
				}
			}
		}

		d := e.Draw(pool)
		excluded[d.Card.ID] = true
		drawn = append(drawn, d)
	}

	return drawn
}
