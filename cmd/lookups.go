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

// The lookup collections share one command shape: list with a name filter,
// create with a name, delete by id.

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "Manage locations",
}

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Manage clients",
}

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Manage skills",
}

var (
	lookupListName string
	lookupListPage int

	locationName    string
	locationCountry string
	clientName      string
	skillName       string
	skillCategory   string
)

func lookupCriteria() collection.Criteria {
	criteria := collection.Criteria{}
	textCriterion(criteria, "name", lookupListName)
	return criteria
}

func locationColumns() []format.Column[domain.Location] {
	return []format.Column[domain.Location]{
		{Name: "ID", Width: 8, Extract: func(l domain.Location) string { return l.ID }},
		{Name: "Name", Width: 20, Extract: func(l domain.Location) string { return l.Name }},
		{Name: "Country", Width: 16, Extract: func(l domain.Location) string { return l.Country }},
	}
}

func clientColumns() []format.Column[domain.Client] {
	return []format.Column[domain.Client]{
		{Name: "ID", Width: 8, Extract: func(c domain.Client) string { return c.ID }},
		{Name: "Name", Width: 30, Extract: func(c domain.Client) string { return c.Name }},
	}
}

func skillColumns() []format.Column[domain.Skill] {
	return []format.Column[domain.Skill]{
		{Name: "ID", Width: 8, Extract: func(s domain.Skill) string { return s.ID }},
		{Name: "Name", Width: 20, Extract: func(s domain.Skill) string { return s.Name }},
		{Name: "Category", Width: 16, Extract: func(s domain.Skill) string { return s.Category }},
	}
}

var locationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List locations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHub(func(ctx context.Context, h *hub.Hub) error {
			return renderList(cmd, ctx, h.Locations, locationColumns(), lookupCriteria(), lookupListPage)
		})(cmd, args)
	},
}

var locationsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a location",
	RunE: withHub(func(ctx context.Context, h *hub.Hub) error {
		if err := requireAction(h, access.ActionCreate); err != nil {
			return err
		}
		created, err := h.Locations.Create(ctx, domain.Location{Name: locationName, Country: locationCountry})
		if err != nil {
			return err
		}
		colors.Success("Created location " + created.ID)
		return nil
	}),
}

var locationsDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHub(func(ctx context.Context, h *hub.Hub) error {
			if err := requireAction(h, access.ActionDelete); err != nil {
				return err
			}
			if err := h.Locations.Delete(ctx, args[0]); err != nil {
				return err
			}
			colors.Success("Deleted location " + args[0])
			return nil
		})(cmd, args)
	},
}

var clientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHub(func(ctx context.Context, h *hub.Hub) error {
			return renderList(cmd, ctx, h.Clients, clientColumns(), lookupCriteria(), lookupListPage)
		})(cmd, args)
	},
}

var clientsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a client",
	RunE: withHub(func(ctx context.Context, h *hub.Hub) error {
		if err := requireAction(h, access.ActionCreate); err != nil {
			return err
		}
		created, err := h.Clients.Create(ctx, domain.Client{Name: clientName})
		if err != nil {
			return err
		}
		colors.Success("Created client " + created.ID)
		return nil
	}),
}

var clientsDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHub(func(ctx context.Context, h *hub.Hub) error {
			if err := requireAction(h, access.ActionDelete); err != nil {
				return err
			}
			if err := h.Clients.Delete(ctx, args[0]); err != nil {
				return err
			}
			colors.Success("Deleted client " + args[0])
			return nil
		})(cmd, args)
	},
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHub(func(ctx context.Context, h *hub.Hub) error {
			return renderList(cmd, ctx, h.Skills, skillColumns(), lookupCriteria(), lookupListPage)
		})(cmd, args)
	},
}

var skillsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a skill",
	RunE: withHub(func(ctx context.Context, h *hub.Hub) error {
		if err := requireAction(h, access.ActionCreate); err != nil {
			return err
		}
		created, err := h.Skills.Create(ctx, domain.Skill{Name: skillName, Category: skillCategory})
		if err != nil {
			return err
		}
		colors.Success("Created skill " + created.ID)
		return nil
	}),
}

var skillsDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHub(func(ctx context.Context, h *hub.Hub) error {
			if err := requireAction(h, access.ActionDelete); err != nil {
				return err
			}
			if err := h.Skills.Delete(ctx, args[0]); err != nil {
				return err
			}
			colors.Success("Deleted skill " + args[0])
			return nil
		})(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(locationsCmd, clientsCmd, skillsCmd)
	locationsCmd.AddCommand(locationsListCmd, locationsCreateCmd, locationsDeleteCmd)
	clientsCmd.AddCommand(clientsListCmd, clientsCreateCmd, clientsDeleteCmd)
	skillsCmd.AddCommand(skillsListCmd, skillsCreateCmd, skillsDeleteCmd)

	for _, c := range []*cobra.Command{locationsListCmd, clientsListCmd, skillsListCmd} {
		c.Flags().StringVar(&lookupListName, "name", "", "filter by name")
		c.Flags().IntVar(&lookupListPage, "page", 0, "page to show")
	}

	locationsCreateCmd.Flags().StringVar(&locationName, "name", "", "location name")
	locationsCreateCmd.Flags().StringVar(&locationCountry, "country", "", "country")
	clientsCreateCmd.Flags().StringVar(&clientName, "name", "", "client name")
	skillsCreateCmd.Flags().StringVar(&skillName, "name", "", "skill name")
	skillsCreateCmd.Flags().StringVar(&skillCategory, "category", "", "skill category")
}
