package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	colorize "github.com/fatih/color"
)

// journalCmd groups the journal subcommands.
var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Browse and annotate saved readings",
}

var journalListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List saved readings, newest last",
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
		if len(rec.JournalHistory) == 0 {
			fmt.Println("Deník je zatím prázdný.")
			return nil
		}

		for _, entry := range rec.JournalHistory {
			name := entry.CardID
			if c, err := cat.Get(entry.CardID); err == nil {
				name = c.DisplayName()
			}

			line := colorize.CyanString(entry.Date.Format("2006-01-02")) + "  " +
				colorize.HiWhiteString(name) + "  (" + entry.Position + ")  " +
				colorize.HiBlackString(entry.ID)
			fmt.Println(line)
			if entry.Note != "" {
				fmt.Println("    " + wrap(entry.Note, termWidth()-4))
			}
		}

		return nil
	},
}

var journalNoteCmd = &cobra.Command{
	Use:   "note [entry_id] [text]",
	Short: "Set the note of a saved reading",
	Long: `Note replaces the note of the journal entry with the given id.
An id that matches no entry changes nothing.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openProgress()
		if err != nil {
			return err
		}
		return store.UpdateEntryNote(args[0], args[1])
	},
}

func init() {
	RootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalNoteCmd)
}
