/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/resourcehub/hubctl/internal/access"
	"github.com/resourcehub/hubctl/internal/collection"
	"github.com/resourcehub/hubctl/internal/colors"
	"github.com/resourcehub/hubctl/internal/domain"
	"github.com/resourcehub/hubctl/internal/format"
	"github.com/resourcehub/hubctl/internal/hub"
)

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "Manage teams and their members",
}

var (
	teamListName string
	teamListPage int
)

var teamsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List teams",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHub(func(ctx context.Context, h *hub.Hub) error {
			criteria := collection.Criteria{}
			textCriterion(criteria, "name", teamListName)
			return renderList(cmd, ctx, h.Teams, teamColumns(), criteria, teamListPage)
		})(cmd, args)
	},
}

var (
	teamName        string
	teamDescription string
)

var teamsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a team",
	RunE: withHub(func(ctx context.Context, h *hub.Hub) error {
		if err := requireAction(h, access.ActionCreate); err != nil {
			return err
		}
		created, err := h.Teams.Create(ctx, domain.Team{Name: teamName, Description: teamDescription})
		if err != nil {
			return err
		}
		colors.Success("Created team " + created.ID)
		return nil
	}),
}

var teamsUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update a team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHub(func(ctx context.Context, h *hub.Hub) error {
			if err := requireAction(h, access.ActionUpdate); err != nil {
				return err
			}
			rec := domain.Team{ID: args[0], Name: teamName, Description: teamDescription}
			if _, err := h.Teams.Update(ctx, args[0], rec); err != nil {
				return err
			}
			colors.Success("Updated team " + args[0])
			return nil
		})(cmd, args)
	},
}

var teamsDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHub(func(ctx context.Context, h *hub.Hub) error {
			if err := requireAction(h, access.ActionDelete); err != nil {
				return err
			}
			if err := h.Teams.Delete(ctx, args[0]); err != nil {
				return err
			}
			colors.Success("Deleted team " + args[0])
			return nil
		})(cmd, args)
	},
}

var (
	memberListProfile string
	memberListTeam    string
	memberListPage    int
)

var teamsMembersCmd = &cobra.Command{
	Use:   "members",
	Short: "List team memberships",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHub(func(ctx context.Context, h *hub.Hub) error {
			criteria := collection.Criteria{}
			textCriterion(criteria, "profile", memberListProfile)
			textCriterion(criteria, "team", memberListTeam)
			return renderList(cmd, ctx, h.TeamMembers, memberColumns(), criteria, memberListPage,
				h.Profiles.Load, h.Teams.Load)
		})(cmd, args)
	},
}

var (
	memberProfileID string
	memberTeamID    string
	memberJoinedAt  string
)

var teamsAddMemberCmd = &cobra.Command{
	Use:   "add-member",
	Short: "Add a profile to a team",
	Long: `Link a profile to a team. A profile can belong to a team at most once;
a duplicate pair is rejected locally before any request is sent.`,
	RunE: withHub(func(ctx context.Context, h *hub.Hub) error {
		if err := requireAction(h, access.ActionCreate); err != nil {
			return err
		}
		// The duplicate-pair check needs the current memberships.
		if err := h.TeamMembers.Load(ctx); err != nil {
			return err
		}
		rec := domain.TeamMember{ProfileID: memberProfileID, TeamID: memberTeamID}
		if memberJoinedAt != "" {
			d, err := domain.ParseDate(memberJoinedAt)
			if err != nil {
				return err
			}
			rec.JoinedAt = d
		}
		created, err := h.TeamMembers.Create(ctx, rec)
		if err != nil {
			return err
		}
		colors.Success("Added membership " + created.ID)
		return nil
	}),
}

var teamsRemoveMemberCmd = &cobra.Command{
	Use:   "remove-member ID",
	Short: "Remove a team membership",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHub(func(ctx context.Context, h *hub.Hub) error {
			if err := requireAction(h, access.ActionDelete); err != nil {
				return err
			}
			if err := h.TeamMembers.Delete(ctx, args[0]); err != nil {
				return err
			}
			colors.Success("Removed membership " + args[0])
			return nil
		})(cmd, args)
	},
}

func teamColumns() []format.Column[domain.Team] {
	return []format.Column[domain.Team]{
		{Name: "ID", Width: 8, Extract: func(t domain.Team) string { return t.ID }},
		{Name: "Name", Width: 24, Extract: func(t domain.Team) string { return t.Name }},
		{Name: "Description", Width: 40, Extract: func(t domain.Team) string { return t.Description }},
	}
}

func memberColumns() []format.Column[domain.TeamMember] {
	return []format.Column[domain.TeamMember]{
		{Name: "ID", Width: 8, Extract: func(m domain.TeamMember) string { return m.ID }},
		{Name: "Profile", Width: 24, Extract: func(m domain.TeamMember) string { return m.ProfileName }},
		{Name: "Team", Width: 20, Extract: func(m domain.TeamMember) string { return m.TeamName }},
		{Name: "Joined", Width: 10, Extract: func(m domain.TeamMember) string { return m.JoinedAt.String() }},
	}
}

func init() {
	rootCmd.AddCommand(teamsCmd)
	teamsCmd.AddCommand(teamsListCmd, teamsCreateCmd, teamsUpdateCmd, teamsDeleteCmd,
		teamsMembersCmd, teamsAddMemberCmd, teamsRemoveMemberCmd)

	teamsListCmd.Flags().StringVar(&teamListName, "name", "", "filter by name")
	teamsListCmd.Flags().IntVar(&teamListPage, "page", 0, "page to show")

	for _, c := range []*cobra.Command{teamsCreateCmd, teamsUpdateCmd} {
		c.Flags().StringVar(&teamName, "name", "", "team name")
		c.Flags().StringVar(&teamDescription, "description", "", "team description")
	}

	teamsMembersCmd.Flags().StringVar(&memberListProfile, "profile", "", "filter by profile name")
	teamsMembersCmd.Flags().StringVar(&memberListTeam, "team", "", "filter by team name")
	teamsMembersCmd.Flags().IntVar(&memberListPage, "page", 0, "page to show")

	teamsAddMemberCmd.Flags().StringVar(&memberProfileID, "profile-id", "", "profile id")
	teamsAddMemberCmd.Flags().StringVar(&memberTeamID, "team-id", "", "team id")
	teamsAddMemberCmd.Flags().StringVar(&memberJoinedAt, "joined-at", "", "join date (YYYY-MM-DD)")
}
