/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/resourcehub/hubctl/internal/colors"
	"github.com/resourcehub/hubctl/internal/config"
	"github.com/resourcehub/hubctl/internal/logging"
)

var (
	flagDebug bool
	flagQuiet bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hubctl",
	Short: "Terminal client for the ResourceHub resourcing backend.",
	Long: `hubctl browses and manages the resourcing data served by a ResourceHub
backend: profiles, projects, teams, assignments, and the supporting lookup
collections. Records are fetched into a local view that filters and paginates
without further requests; every change is sent to the server and applied
locally only after confirmation.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		colors.SetDebug(flagDebug)
		colors.SetQuiet(flagQuiet)
		if err := logging.InitGlobal(); err != nil {
			colors.Warning("logging disabled: " + err.Error())
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.ShutdownGlobal()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().BoolVar(&flagQuiet, "quiet", false, "suppress non-error output")
}
