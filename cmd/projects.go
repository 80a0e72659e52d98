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

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage projects",
}

var (
	projectListName   string
	projectListClient string
	projectListFrom   string
	projectListTo     string
	projectListPage   int
)

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHub(func(ctx context.Context, h *hub.Hub) error {
			criteria := collection.Criteria{}
			textCriterion(criteria, "name", projectListName)
			textCriterion(criteria, "client", projectListClient)
			if err := dateRangeCriterion(criteria, "start", projectListFrom, projectListTo); err != nil {
				return err
			}
			return renderList(cmd, ctx, h.Projects, projectColumns(), criteria, projectListPage,
				h.Clients.Load)
		})(cmd, args)
	},
}

var (
	projectName        string
	projectClientID    string
	projectDescription string
	projectStart       string
	projectEnd         string
)

var projectsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a project",
	RunE: withHub(func(ctx context.Context, h *hub.Hub) error {
		if err := requireAction(h, access.ActionCreate); err != nil {
			return err
		}
		rec, err := projectFromFlags()
		if err != nil {
			return err
		}
		created, err := h.Projects.Create(ctx, rec)
		if err != nil {
			return err
		}
		colors.Success("Created project " + created.ID)
		return nil
	}),
}

var projectsUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHub(func(ctx context.Context, h *hub.Hub) error {
			if err := requireAction(h, access.ActionUpdate); err != nil {
				return err
			}
			rec, err := projectFromFlags()
			if err != nil {
				return err
			}
			rec.ID = args[0]
			if _, err := h.Projects.Update(ctx, args[0], rec); err != nil {
				return err
			}
			colors.Success("Updated project " + args[0])
			return nil
		})(cmd, args)
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHub(func(ctx context.Context, h *hub.Hub) error {
			if err := requireAction(h, access.ActionDelete); err != nil {
				return err
			}
			if err := h.Projects.Delete(ctx, args[0]); err != nil {
				return err
			}
			colors.Success("Deleted project " + args[0])
			return nil
		})(cmd, args)
	},
}

func projectFromFlags() (domain.Project, error) {
	rec := domain.Project{
		Name:        projectName,
		ClientID:    projectClientID,
		Description: projectDescription,
	}
	if projectStart != "" {
		d, err := domain.ParseDate(projectStart)
		if err != nil {
			return domain.Project{}, err
		}
		rec.StartDate = d
	}
	if projectEnd != "" {
		d, err := domain.ParseDate(projectEnd)
		if err != nil {
			return domain.Project{}, err
		}
		rec.EndDate = d
	}
	return rec, nil
}

func projectColumns() []format.Column[domain.Project] {
	return []format.Column[domain.Project]{
		{Name: "ID", Width: 8, Extract: func(p domain.Project) string { return p.ID }},
		{Name: "Name", Width: 26, Extract: func(p domain.Project) string { return p.Name }},
		{Name: "Client", Width: 18, Extract: func(p domain.Project) string { return p.ClientName }},
		{Name: "Start", Width: 10, Extract: func(p domain.Project) string { return p.StartDate.String() }},
		{Name: "End", Width: 10, Extract: func(p domain.Project) string { return p.EndDate.String() }},
	}
}

func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.AddCommand(projectsListCmd, projectsCreateCmd, projectsUpdateCmd, projectsDeleteCmd)

	projectsListCmd.Flags().StringVar(&projectListName, "name", "", "filter by name")
	projectsListCmd.Flags().StringVar(&projectListClient, "client", "", "filter by client name")
	projectsListCmd.Flags().StringVar(&projectListFrom, "start-from", "", "start date lower bound (YYYY-MM-DD)")
	projectsListCmd.Flags().StringVar(&projectListTo, "start-to", "", "start date upper bound (YYYY-MM-DD)")
	projectsListCmd.Flags().IntVar(&projectListPage, "page", 0, "page to show")

	for _, c := range []*cobra.Command{projectsCreateCmd, projectsUpdateCmd} {
		c.Flags().StringVar(&projectName, "name", "", "project name")
		c.Flags().StringVar(&projectClientID, "client-id", "", "client id")
		c.Flags().StringVar(&projectDescription, "description", "", "project description")
		c.Flags().StringVar(&projectStart, "start-date", "", "start date (YYYY-MM-DD)")
		c.Flags().StringVar(&projectEnd, "end-date", "", "end date (YYYY-MM-DD)")
	}
}
