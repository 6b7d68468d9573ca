package reading

import (
	"strings"
)

// MeaningUnavailable is the defined per-position fallback when the reply
// cannot be segmented for that position.
const MeaningUnavailable = "Význam nedostupný"

// Response is the reading service reply. The service usually returns one
// combined block in Text; some replies arrive pre-segmented in Sections.
type Response struct {
	Sections []string
	Text     string
}

// Label variants for the three fixed relationship positions, each an ordered
// case-insensitive substring list. Variants carry their trailing punctuation
// so that a bare "TY" does not match inside unrelated words.
var (
	selfVariants    = []string{"TY –", "TY:", "TY -", "TVOJE ENERGIE", "TVÁ ENERGIE"}
	partnerVariants = []string{"PARTNER –", "PARTNER:", "PARTNER -", "PARTNER", "ON –", "ONA –", "DRUHÁ STRANA", "JEHO ENERGIE", "JEJÍ ENERGIE"}
	bondVariants    = []string{"VAŠE POUTO", "POUTO –", "POUTO:", "MEZI VÁMI", "SPOLEČNÁ ENERGIE", "VZTAH"}
)

// trailerHeadings close a reading and are cut from the final position's span.
var trailerHeadings = []string{"NA ZÁVĚR", "ZÁVĚREM", "ZÁVĚR", "SHRNUTÍ"}

// Parse maps a service reply onto the expected positions, one meaning per
// position in order. A reply pre-segmented into exactly one section per
// position maps one-to-one by index; otherwise the combined text is sliced
// by label scanning. Positions that cannot be located degrade to
// MeaningUnavailable rather than failing the reading.
func Parse(resp Response, positions []string) []string {
	if len(positions) == 0 {
		return nil
	}

	if len(resp.Sections) == len(positions) {
		meanings := make([]string, len(positions))
		for i, section := range resp.Sections {
			meanings[i] = orUnavailable(strings.TrimSpace(section))
		}
		return meanings
	}

	return parseCombined(resp.Text, positions)
}

// parseCombined splits the block on the bold delimiter and scans fragments
// for each position's label variants. A position's meaning is the span
// between its matched fragment and the next position's, rejoined so that
// inline **bold** inside a meaning survives the split.
func parseCombined(text string, positions []string) []string {
	meanings := make([]string, len(positions))
	for i := range meanings {
		meanings[i] = MeaningUnavailable
	}

	fragments := strings.Split(text, "**")

	// Locate each position's label fragment once, then slice.
	found := make([]int, len(positions))
	for i, label := range positions {
		found[i] = findLabelFragment(fragments, variantsFor(label))
	}

	for i := range positions {
		if found[i] < 0 {
			continue
		}

		end := len(fragments)
		for j := i + 1; j < len(positions); j++ {
			if found[j] >= 0 {
				end = found[j]
				break
			}
		}
		if end <= found[i] {
			// Labels out of order; degrade rather than slice backwards.
			continue
		}

		span := strings.Join(fragments[found[i]+1:end], "**")
		if end == len(fragments) {
			span = trimTrailer(span)
		}
		meanings[i] = orUnavailable(strings.TrimSpace(span))
	}

	return meanings
}

// findLabelFragment returns the index of the first fragment containing any
// of the variants, or -1.
func findLabelFragment(fragments []string, variants []string) int {
	for idx, fragment := range fragments {
		upper := strings.ToUpper(fragment)
		for _, variant := range variants {
			if strings.Contains(upper, variant) {
				return idx
			}
		}
	}
	return -1
}

// variantsFor maps a position label to its ordered variant list. The three
// relationship positions have fixed variants; any other label matches on
// itself with the usual header punctuation.
func variantsFor(label string) []string {
	switch strings.ToUpper(label) {
	case "TY":
		return selfVariants
	case "PARTNER":
		return partnerVariants
	case "VAŠE POUTO":
		return bondVariants
	}

	upper := strings.ToUpper(strings.TrimSpace(label))
	if upper == "" {
		return nil
	}
	return []string{upper + " –", upper + ":", upper + " -", upper}
}

// trimTrailer cuts a trailing closing heading and loose markers off the
// final position's span.
func trimTrailer(span string) string {
	upper := strings.ToUpper(span)
	cut := len(span)
	for _, heading := range trailerHeadings {
		if idx := strings.Index(upper, heading); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	span = span[:cut]
	return strings.TrimRight(span, "*–- \n\t")
}

func orUnavailable(meaning string) string {
	if meaning == "" {
		return MeaningUnavailable
	}
	return meaning
}
