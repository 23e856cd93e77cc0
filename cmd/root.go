package cmd

import (
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "kitchen",
	Short:         "Kitchen order fulfillment simulator",
	RunE:          runSimulation,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
	addRunFlags(rootCmd)
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }
