/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/resourcehub/hubctl/internal/version"
)

// Version is the hubctl version shown in help output.
var Version = version.Version

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the hubctl version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("hubctl v%s\n", version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
