package cmd

import (
	"github.com/spf13/cobra"
)

// styleCmd selects the microcopy style used for insight text.
var styleCmd = &cobra.Command{
	Use:       "style [soft|genz]",
	Short:     "Select the tone of insight texts",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"soft", "genz"},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openProgress()
		if err != nil {
			return err
		}
		return store.SetStyle(args[0])
	},
}

func init() {
	RootCmd.AddCommand(styleCmd)
}
