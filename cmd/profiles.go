/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/resourcehub/hubctl/internal/access"
	"github.com/resourcehub/hubctl/internal/collection"
	"github.com/resourcehub/hubctl/internal/colors"
	"github.com/resourcehub/hubctl/internal/domain"
	"github.com/resourcehub/hubctl/internal/format"
	"github.com/resourcehub/hubctl/internal/hub"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage profiles",
}

var (
	profileListName     string
	profileListEmail    string
	profileListLocation string
	profileListSkill    string
	profileListLevel    string
	profileListFrom     string
	profileListTo       string
	profileListPage     int
)

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	Long: `List profiles one page at a time. Filters combine with AND semantics and
match locally against the fetched collection; text filters are
case-insensitive substring matches.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHub(func(ctx context.Context, h *hub.Hub) error {
			criteria := collection.Criteria{}
			textCriterion(criteria, "name", profileListName)
			textCriterion(criteria, "email", profileListEmail)
			textCriterion(criteria, "location", profileListLocation)
			textCriterion(criteria, "skill", profileListSkill)
			textCriterion(criteria, "level", profileListLevel)
			if err := dateRangeCriterion(criteria, "start", profileListFrom, profileListTo); err != nil {
				return err
			}
			return renderList(cmd, ctx, h.Profiles, profileColumns(), criteria, profileListPage,
				h.Locations.Load, h.Skills.Load)
		})(cmd, args)
	},
}

var (
	profileFirstName string
	profileLastName  string
	profileEmail     string
	profileLocation  string
	profileSkills    []string
	profileLevel     string
	profileStart     string
	profileNotes     string
)

var profilesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a profile",
	RunE: withHub(func(ctx context.Context, h *hub.Hub) error {
		if err := requireAction(h, access.ActionCreate); err != nil {
			return err
		}
		rec, err := profileFromFlags()
		if err != nil {
			return err
		}
		created, err := h.Profiles.Create(ctx, rec)
		if err != nil {
			return err
		}
		colors.Success("Created profile " + created.ID)
		return nil
	}),
}

var profilesUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHub(func(ctx context.Context, h *hub.Hub) error {
			if err := requireAction(h, access.ActionUpdate); err != nil {
				return err
			}
			rec, err := profileFromFlags()
			if err != nil {
				return err
			}
			rec.ID = args[0]
			if _, err := h.Profiles.Update(ctx, args[0], rec); err != nil {
				return err
			}
			colors.Success("Updated profile " + args[0])
			return nil
		})(cmd, args)
	},
}

var profilesDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHub(func(ctx context.Context, h *hub.Hub) error {
			if err := requireAction(h, access.ActionDelete); err != nil {
				return err
			}
			if err := h.Profiles.Delete(ctx, args[0]); err != nil {
				return err
			}
			colors.Success("Deleted profile " + args[0])
			return nil
		})(cmd, args)
	},
}

func profileFromFlags() (domain.Profile, error) {
	rec := domain.Profile{
		FirstName:  profileFirstName,
		LastName:   profileLastName,
		Email:      profileEmail,
		LocationID: profileLocation,
		SkillIDs:   profileSkills,
		Level:      profileLevel,
		Notes:      profileNotes,
		Available:  true,
	}
	if profileStart != "" {
		d, err := domain.ParseDate(profileStart)
		if err != nil {
			return domain.Profile{}, err
		}
		rec.StartDate = d
	}
	return rec, nil
}

func profileColumns() []format.Column[domain.Profile] {
	return []format.Column[domain.Profile]{
		{Name: "ID", Width: 8, Extract: func(p domain.Profile) string { return p.ID }},
		{Name: "Name", Width: 24, Extract: func(p domain.Profile) string { return p.FullName() }},
		{Name: "Email", Width: 28, Extract: func(p domain.Profile) string { return p.Email }},
		{Name: "Location", Width: 14, Extract: func(p domain.Profile) string { return p.LocationName }},
		{Name: "Skills", Width: 24, Extract: func(p domain.Profile) string { return strings.Join(p.SkillNames, ", ") }},
		{Name: "Start", Width: 10, Extract: func(p domain.Profile) string { return p.StartDate.String() }},
	}
}

func init() {
	rootCmd.AddCommand(profilesCmd)
	profilesCmd.AddCommand(profilesListCmd, profilesCreateCmd, profilesUpdateCmd, profilesDeleteCmd)

	profilesListCmd.Flags().StringVar(&profileListName, "name", "", "filter by name")
	profilesListCmd.Flags().StringVar(&profileListEmail, "email", "", "filter by email")
	profilesListCmd.Flags().StringVar(&profileListLocation, "location", "", "filter by location name")
	profilesListCmd.Flags().StringVar(&profileListSkill, "skill", "", "filter by skill name")
	profilesListCmd.Flags().StringVar(&profileListLevel, "level", "", "filter by experience level")
	profilesListCmd.Flags().StringVar(&profileListFrom, "start-from", "", "start date lower bound (YYYY-MM-DD)")
	profilesListCmd.Flags().StringVar(&profileListTo, "start-to", "", "start date upper bound (YYYY-MM-DD)")
	profilesListCmd.Flags().IntVar(&profileListPage, "page", 0, "page to show")

	for _, c := range []*cobra.Command{profilesCreateCmd, profilesUpdateCmd} {
		c.Flags().StringVar(&profileFirstName, "first-name", "", "first name")
		c.Flags().StringVar(&profileLastName, "last-name", "", "last name")
		c.Flags().StringVar(&profileEmail, "email", "", "email address")
		c.Flags().StringVar(&profileLocation, "location-id", "", "location id")
		c.Flags().StringSliceVar(&profileSkills, "skill-ids", nil, "skill ids")
		c.Flags().StringVar(&profileLevel, "level", "", "experience level")
		c.Flags().StringVar(&profileStart, "start-date", "", "start date (YYYY-MM-DD)")
		c.Flags().StringVar(&profileNotes, "notes", "", "free-form notes")
	}
}
