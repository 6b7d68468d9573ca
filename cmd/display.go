package cmd

import (
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/arcanaland/arcana/internal/card"
	"github.com/arcanaland/arcana/internal/catalog"
	"github.com/arcanaland/arcana/internal/progress"

	colorize "github.com/fatih/color"
)

// termWidth returns the terminal width, clamped for readable text columns.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	if width > 100 {
		width = 100
	}
	return width
}

// wrap breaks text into lines no wider than width.
func wrap(text string, width int) string {
	var b strings.Builder
	lineLen := 0

	for _, word := range strings.Fields(text) {
		if lineLen > 0 && lineLen+1+len([]rune(word)) > width {
			b.WriteString("\n")
			lineLen = 0
		} else if lineLen > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(word)
		lineLen += len([]rune(word))
	}

	return b.String()
}

// renderBold converts markdown **emphasis** into terminal bold. An unmatched
// trailing marker is left as plain text.
func renderBold(text string) string {
	parts := strings.Split(text, "**")
	if len(parts) == 1 {
		return text
	}

	bold := colorize.New(colorize.Bold)
	var b strings.Builder
	for i, part := range parts {
		closed := i < len(parts)-1 || len(parts)%2 == 1
		if i%2 == 1 && closed {
			b.WriteString(bold.Sprint(part))
		} else {
			b.WriteString(part)
		}
	}
	return b.String()
}

// cardLine renders a one-line card summary with its orientation.
func cardLine(d card.Drawn) string {
	orientation := "vzpřímeně"
	if d.Orientation == card.Reversed {
		orientation = "obráceně"
	}
	return colorize.HiWhiteString(d.Card.DisplayName()) +
		colorize.CyanString(" (%s) · %s", d.Card.Name, orientation)
}

// orientationMeaning picks the card's own meaning text for the orientation,
// falling back to the upright text when no reversed meaning exists.
func orientationMeaning(d card.Drawn) string {
	if d.Orientation == card.Reversed && d.Card.MeaningReversed != "" {
		return d.Card.MeaningReversed
	}
	return d.Card.MeaningUpright
}

// loadCatalog loads the bundled catalog for a command.
func loadCatalog() (*catalog.Catalog, error) {
	return catalog.Load()
}

// openProgress opens the progress store at its default location.
func openProgress() (*progress.Store, error) {
	return progress.Open(progress.DefaultPath())
}
