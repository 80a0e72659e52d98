/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/resourcehub/hubctl/internal/access"
	"github.com/resourcehub/hubctl/internal/collection"
	"github.com/resourcehub/hubctl/internal/colors"
	"github.com/resourcehub/hubctl/internal/domain"
	"github.com/resourcehub/hubctl/internal/format"
	"github.com/resourcehub/hubctl/internal/hub"
)

var assignmentsCmd = &cobra.Command{
	Use:   "assignments",
	Short: "Manage project assignments",
}

var (
	assignListProfile string
	assignListProject string
	assignListRole    string
	assignListFrom    string
	assignListTo      string
	assignListPage    int
)

var assignmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List assignments",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHub(func(ctx context.Context, h *hub.Hub) error {
			criteria := collection.Criteria{}
			textCriterion(criteria, "profile", assignListProfile)
			textCriterion(criteria, "project", assignListProject)
			textCriterion(criteria, "role", assignListRole)
			if err := dateRangeCriterion(criteria, "start", assignListFrom, assignListTo); err != nil {
				return err
			}
			return renderList(cmd, ctx, h.Assignments, assignmentColumns(), criteria, assignListPage,
				h.Profiles.Load, h.Projects.Load)
		})(cmd, args)
	},
}

var (
	assignProfileID  string
	assignProjectID  string
	assignRole       string
	assignAllocation int
	assignStart      string
	assignEnd        string
)

var assignmentsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Assign a profile to a project",
	RunE: withHub(func(ctx context.Context, h *hub.Hub) error {
		if err := requireAction(h, access.ActionCreate); err != nil {
			return err
		}
		rec, err := assignmentFromFlags()
		if err != nil {
			return err
		}
		created, err := h.Assignments.Create(ctx, rec)
		if err != nil {
			return err
		}
		colors.Success("Created assignment " + created.ID)
		return nil
	}),
}

var assignmentsUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update an assignment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHub(func(ctx context.Context, h *hub.Hub) error {
			if err := requireAction(h, access.ActionUpdate); err != nil {
				return err
			}
			rec, err := assignmentFromFlags()
			if err != nil {
				return err
			}
			rec.ID = args[0]
			if _, err := h.Assignments.Update(ctx, args[0], rec); err != nil {
				return err
			}
			colors.Success("Updated assignment " + args[0])
			return nil
		})(cmd, args)
	},
}

var assignmentsDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete an assignment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHub(func(ctx context.Context, h *hub.Hub) error {
			if err := requireAction(h, access.ActionDelete); err != nil {
				return err
			}
			if err := h.Assignments.Delete(ctx, args[0]); err != nil {
				return err
			}
			colors.Success("Deleted assignment " + args[0])
			return nil
		})(cmd, args)
	},
}

func assignmentFromFlags() (domain.Assignment, error) {
	rec := domain.Assignment{
		ProfileID:  assignProfileID,
		ProjectID:  assignProjectID,
		Role:       assignRole,
		Allocation: assignAllocation,
	}
	if assignStart != "" {
		d, err := domain.ParseDate(assignStart)
		if err != nil {
			return domain.Assignment{}, err
		}
		rec.StartDate = d
	}
	if assignEnd != "" {
		d, err := domain.ParseDate(assignEnd)
		if err != nil {
			return domain.Assignment{}, err
		}
		rec.EndDate = d
	}
	return rec, nil
}

func assignmentColumns() []format.Column[domain.Assignment] {
	return []format.Column[domain.Assignment]{
		{Name: "ID", Width: 8, Extract: func(a domain.Assignment) string { return a.ID }},
		{Name: "Profile", Width: 24, Extract: func(a domain.Assignment) string { return a.ProfileName }},
		{Name: "Project", Width: 24, Extract: func(a domain.Assignment) string { return a.ProjectName }},
		{Name: "Role", Width: 14, Extract: func(a domain.Assignment) string { return a.Role }},
		{Name: "Alloc", Width: 5, Alignment: "right", Extract: func(a domain.Assignment) string {
			if a.Allocation == 0 {
				return ""
			}
			return strconv.Itoa(a.Allocation) + "%"
		}},
		{Name: "Start", Width: 10, Extract: func(a domain.Assignment) string { return a.StartDate.String() }},
		{Name: "End", Width: 10, Extract: func(a domain.Assignment) string { return a.EndDate.String() }},
	}
}

func init() {
	rootCmd.AddCommand(assignmentsCmd)
	assignmentsCmd.AddCommand(assignmentsListCmd, assignmentsCreateCmd, assignmentsUpdateCmd, assignmentsDeleteCmd)

	assignmentsListCmd.Flags().StringVar(&assignListProfile, "profile", "", "filter by profile name")
	assignmentsListCmd.Flags().StringVar(&assignListProject, "project", "", "filter by project name")
	assignmentsListCmd.Flags().StringVar(&assignListRole, "role", "", "filter by role")
	assignmentsListCmd.Flags().StringVar(&assignListFrom, "start-from", "", "start date lower bound (YYYY-MM-DD)")
	assignmentsListCmd.Flags().StringVar(&assignListTo, "start-to", "", "start date upper bound (YYYY-MM-DD)")
	assignmentsListCmd.Flags().IntVar(&assignListPage, "page", 0, "page to show")

	for _, c := range []*cobra.Command{assignmentsCreateCmd, assignmentsUpdateCmd} {
		c.Flags().StringVar(&assignProfileID, "profile-id", "", "profile id")
		c.Flags().StringVar(&assignProjectID, "project-id", "", "project id")
		c.Flags().StringVar(&assignRole, "role", "", "role on the project")
		c.Flags().IntVar(&assignAllocation, "allocation", 0, "allocation percentage")
		c.Flags().StringVar(&assignStart, "start-date", "", "start date (YYYY-MM-DD)")
		c.Flags().StringVar(&assignEnd, "end-date", "", "end date (YYYY-MM-DD)")
	}
}
