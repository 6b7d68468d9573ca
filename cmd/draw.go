package cmd

import (
	"fmt"
	"strings"

	"github.com/arcanaland/arcana/internal/draw"
	"github.com/spf13/cobra"

	colorize "github.com/fatih/color"
)

// drawCmd draws a single card and shows its bundled meaning. The draw is
// appended to the local draw history.
var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw a card from the catalog",
	Long: `Draw picks one card at random from the full catalog, assigns it an
upright or reversed orientation, and shows its keywords and bundled meaning.
The draw is recorded in your local history.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		engine := draw.NewEngine(cat)
		drawn := engine.Draw(nil)

		width := termWidth()
		fmt.Println(cardLine(drawn))
		fmt.Println(colorize.CyanString("Klíčová slova: ") + strings.Join(drawn.Card.Keywords, ", "))
		fmt.Println()
		fmt.Println(wrap(orientationMeaning(drawn), width))

		store, err := openProgress()
		if err != nil {
			return err
		}
		return store.AddDraw(drawn.Card.ID)
	},
}

func init() {
	RootCmd.AddCommand(drawCmd)
}
