/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/resourcehub/hubctl/internal/colors"
	"github.com/resourcehub/hubctl/internal/config"
	"github.com/resourcehub/hubctl/internal/hubapi"
	"github.com/resourcehub/hubctl/internal/session"
)

var (
	loginEmail    string
	loginPassword string
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the backend",
	Long: `Exchange credentials for a bearer token and persist the session.
The token and the roles it carries are stored in the state directory and
attached to every subsequent request.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email := loginEmail
		if email == "" {
			fmt.Fprint(cmd.OutOrStdout(), "Email: ")
			reader := bufio.NewReader(cmd.InOrStdin())
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read email: %w", err)
			}
			email = strings.TrimSpace(line)
		}
		password := loginPassword
		if password == "" {
			fmt.Fprint(cmd.OutOrStdout(), "Password: ")
			reader := bufio.NewReader(cmd.InOrStdin())
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = strings.TrimSpace(line)
		}

		serverURL := config.Get("server_url", "http://localhost:8080")
		client := hubapi.NewClient(serverURL)
		resp, err := client.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		sess, err := session.FromToken(resp.Token, serverURL)
		if err != nil {
			return err
		}
		if sess.Email == "" {
			sess.Email = email
		}
		if err := session.Save(sess); err != nil {
			return err
		}

		colors.Success(fmt.Sprintf("Logged in as %s (%s)", sess.Email, strings.Join(sess.Roles, ", ")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (prompted when omitted)")
}
