package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "arcana",
	Short: "Tarot draws, readings and a reading journal",
	Long: `Arcana draws cards from the bundled tarot catalog, requests readings
from the reading service, and keeps your journal, streak and insights
on this device. It can also run the reading proxy itself ('arcana serve').`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
