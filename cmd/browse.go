/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/resourcehub/hubctl/internal/errors"
	"github.com/resourcehub/hubctl/internal/hub"
	"github.com/resourcehub/hubctl/internal/tui"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse [collection]",
	Short: "Browse a collection interactively",
	Long: `Open the interactive browser for a collection. Defaults to profiles.
Collections: profiles, projects, teams, members, assignments, locations,
clients, skills.

Keys: / filter, n/p page, j/k select, x delete, r reload, q quit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHub(func(ctx context.Context, h *hub.Hub) error {
			name := "profiles"
			if len(args) > 0 {
				name = args[0]
			}

			// Lookup collections load up front so enriched columns and
			// filters resolve names from the start. Failures degrade to
			// raw ids.
			preload := func(loads ...func(context.Context) error) {
				for _, load := range loads {
					if err := load(ctx); err != nil {
						errors.Report(cliHandler, err)
					}
				}
			}

			switch name {
			case "profiles":
				preload(h.Locations.Load, h.Skills.Load)
				return tui.Run(h.Profiles, profileColumns(), "name")
			case "projects":
				preload(h.Clients.Load)
				return tui.Run(h.Projects, projectColumns(), "name")
			case "teams":
				return tui.Run(h.Teams, teamColumns(), "name")
			case "members", "team-members":
				preload(h.Profiles.Load, h.Teams.Load)
				return tui.Run(h.TeamMembers, memberColumns(), "profile")
			case "assignments":
				preload(h.Profiles.Load, h.Projects.Load)
				return tui.Run(h.Assignments, assignmentColumns(), "profile")
			case "locations":
				return tui.Run(h.Locations, locationColumns(), "name")
			case "clients":
				return tui.Run(h.Clients, clientColumns(), "name")
			case "skills":
				return tui.Run(h.Skills, skillColumns(), "name")
			default:
				return fmt.Errorf("unknown collection %q", name)
			}
		})(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
