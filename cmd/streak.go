package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// streakCmd groups the streak subcommands. The streak counter only moves
// through these explicit operations.
var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show or update your daily streak",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openProgress()
		if err != nil {
			return err
		}
		fmt.Printf("Aktuální série: %d dní\n", store.Record().StreakDays)
		return nil
	},
}

var streakMarkCmd = &cobra.Command{
	Use:   "mark",
	Short: "Count today toward the streak",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openProgress()
		if err != nil {
			return err
		}
		return store.IncreaseStreak()
	},
}

var streakResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the streak to zero",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openProgress()
		if err != nil {
			return err
		}
		return store.ResetStreak()
	},
}

func init() {
	RootCmd.AddCommand(streakCmd)
	streakCmd.AddCommand(streakMarkCmd)
	streakCmd.AddCommand(streakResetCmd)
}
