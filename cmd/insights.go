package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/arcana/internal/insight"
)

// insightsCmd shows the derived milestone, streak and favorite-card lines.
var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show observations derived from your progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openProgress()
		if err != nil {
			return err
		}

		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		rec := store.Record()
		insights := insight.Derive(rec)

		// The deriver carries card ids; swap in display names for rendering.
		for i := range insights {
			if insights[i].CardName == "" {
				continue
			}
			if c, err := cat.Get(insights[i].CardName); err == nil {
				insights[i].CardName = c.DisplayName()
			}
		}

		width := termWidth()
		for _, line := range insight.Render(insights, rec.Style) {
			fmt.Println(wrap(line, width))
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(insightsCmd)
}
