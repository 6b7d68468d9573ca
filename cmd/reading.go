package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/arcanaland/arcana/internal/card"
	"github.com/arcanaland/arcana/internal/config"
	"github.com/arcanaland/arcana/internal/draw"
	"github.com/arcanaland/arcana/internal/progress"
	"github.com/arcanaland/arcana/internal/reading"

	colorize "github.com/fatih/color"
)

var (
	readingSpread   string
	readingQuestion string
	readingSave     bool
)

// readingCmd draws a spread, asks the reading service for an interpretation,
// and prints one meaning per position.
var readingCmd = &cobra.Command{
	Use:   "reading",
	Short: "Draw a spread and ask the reading service for an interpretation",
	Long: `Reading draws the cards of the chosen spread, sends them with your
question to the reading service, and shows the returned meaning for every
position. With --save the reading is stored in your journal.

Spreads:
  daily     one card, no position labels
  love      Ty / Partner / Vaše pouto
  timeline  Minulost / Přítomnost / Budoucnost`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		spread, err := spreadByName(readingSpread)
		if err != nil {
			return err
		}

		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		engine := draw.NewEngine(cat)
		drawn := engine.DrawSequence(len(spread.Labels))

		store, err := openProgress()
		if err != nil {
			return err
		}
		for _, d := range drawn {
			if err := store.AddDraw(d.Card.ID); err != nil {
				return err
			}
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		req := reading.NewRequest(spread, drawn, readingQuestion)
		client := reading.NewClient(cfg.ServiceURL)

		fmt.Println(colorize.CyanString("Rozložení: ") + colorize.HiWhiteString(spread.Name))
		for _, d := range drawn {
			fmt.Println("  " + cardLine(d))
		}
		fmt.Println()

		answer, err := client.Send(context.Background(), req)
		if err != nil {
			if errors.Is(err, reading.ErrServiceUnavailable) {
				if answer == "" {
					answer = "Nepodařilo se spojit s vesmírem. Zkus to prosím znovu."
				}
				fmt.Println(wrap(answer, termWidth()))
				return nil
			}
			return err
		}

		width := termWidth()
		if spread.Mode == reading.ModeSingle {
			// A single-card reading is one block; nothing to slice.
			fmt.Println(renderBold(wrap(answer, width)))
			fmt.Println()
		} else {
			meanings := reading.Parse(reading.Response{Text: answer}, spread.Labels)
			for i, meaning := range meanings {
				fmt.Println(colorize.HiMagentaString(spread.Labels[i]))
				fmt.Println(renderBold(wrap(meaning, width)))
				fmt.Println()
			}
		}

		if readingSave {
			if err := saveReading(store, drawn); err != nil {
				return err
			}
			fmt.Println(colorize.GreenString("Výklad uložen do deníku."))
		}

		return nil
	},
}

func spreadByName(name string) (reading.Spread, error) {
	switch name {
	case "daily":
		return reading.DailySpread, nil
	case "love":
		return reading.LoveSpread, nil
	case "timeline":
		return reading.TimelineSpread, nil
	}
	return reading.Spread{}, fmt.Errorf("unknown spread: %s", name)
}

// saveReading appends one journal entry per drawn card and bumps the
// journal counter for each.
func saveReading(store *progress.Store, drawn []card.Drawn) error {
	for _, d := range drawn {
		entry := progress.Entry{
			ID:       uuid.NewString(),
			CardID:   d.Card.ID,
			Position: string(d.Orientation),
			Date:     time.Now(),
		}
		if err := store.AppendJournalHistory(entry); err != nil {
			return err
		}
		if err := store.AddJournalEntry(); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	readingCmd.Flags().StringVar(&readingSpread, "spread", "daily", "spread to draw (daily, love, timeline)")
	readingCmd.Flags().StringVarP(&readingQuestion, "question", "q", "", "question the reading should focus on")
	readingCmd.Flags().BoolVar(&readingSave, "save", false, "save the reading to your journal")

	RootCmd.AddCommand(readingCmd)
}
