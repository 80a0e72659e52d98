/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/resourcehub/hubctl/internal/session"
)

// whoamiCmd represents the whoami command
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.Load()
		if err != nil {
			return err
		}
		if !sess.IsAuthenticated() {
			cmd.Println("Not logged in.")
			return nil
		}
		cmd.Printf("Email:  %s\n", sess.Email)
		cmd.Printf("Roles:  %s\n", strings.Join(sess.Roles, ", "))
		cmd.Printf("Server: %s\n", sess.ServerURL)
		if !sess.ExpiresAt.IsZero() {
			cmd.Printf("Expires: %s\n", sess.ExpiresAt.Format("2006-01-02 15:04:05 MST"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
