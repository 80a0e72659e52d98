/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/resourcehub/hubctl/internal/access"
	"github.com/resourcehub/hubctl/internal/collection"
	"github.com/resourcehub/hubctl/internal/colors"
	"github.com/resourcehub/hubctl/internal/domain"
	"github.com/resourcehub/hubctl/internal/errors"
	"github.com/resourcehub/hubctl/internal/format"
	"github.com/resourcehub/hubctl/internal/hub"
)

// consoleOutput adapts the colors package to the error handler surface.
type consoleOutput struct{}

func (consoleOutput) Error(msgs ...string)   { colors.Error(msgs...) }
func (consoleOutput) Warning(msgs ...string) { colors.Warning(msgs...) }
func (consoleOutput) Info(msgs ...string)    { colors.Info(msgs...) }
func (consoleOutput) Success(msgs ...string) { colors.Success(msgs...) }

var cliHandler = errors.NewCLIHandler(consoleOutput{})

// withHub builds the hub for a command run and closes it afterwards.
func withHub(run func(ctx context.Context, h *hub.Hub) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		h, err := hub.New()
		if err != nil {
			return err
		}
		defer h.Close()
		return run(cmd.Context(), h)
	}
}

// requireAction checks the session roles before a mutation is attempted. The
// server enforces authorization regardless; this only fails fast.
func requireAction(h *hub.Hub, action string) error {
	if !h.Session.IsAuthenticated() {
		return fmt.Errorf("not logged in: run \"hubctl login\" first")
	}
	if !access.CanPerform(action, h.Session.Roles) {
		return fmt.Errorf("your roles do not permit %s operations", action)
	}
	return nil
}

// textCriterion adds a text criterion when the flag was set.
func textCriterion(criteria collection.Criteria, key, value string) {
	if value != "" {
		criteria[key] = collection.Criterion{Text: value}
	}
}

// dateRangeCriterion adds a date range criterion when either bound was set.
func dateRangeCriterion(criteria collection.Criteria, key, from, to string) error {
	var crit collection.Criterion
	if from != "" {
		d, err := domain.ParseDate(from)
		if err != nil {
			return err
		}
		crit.From = d.Time
	}
	if to != "" {
		d, err := domain.ParseDate(to)
		if err != nil {
			return err
		}
		crit.To = d.Time
	}
	if !crit.IsEmpty() {
		criteria[key] = crit
	}
	return nil
}

// renderList loads the handle, applies criteria and page, and renders the
// visible slice as a table. Preload funcs fetch lookup collections the
// enrichment needs.
func renderList[T collection.Record](
	cmd *cobra.Command,
	ctx context.Context,
	handle *hub.Handle[T],
	columns []format.Column[T],
	criteria collection.Criteria,
	page int,
	preload ...func(context.Context) error,
) error {
	for _, load := range preload {
		if err := load(ctx); err != nil {
			errors.Report(cliHandler, err)
		}
	}
	if err := handle.Load(ctx); err != nil {
		return err
	}
	if handle.Offline {
		colors.Warning(fmt.Sprintf("backend unreachable, showing snapshot from %s",
			handle.FetchedAt.Format("2006-01-02 15:04")))
	}

	view := handle.View()
	for key, crit := range criteria {
		view.SetCriterion(key, crit)
	}
	if page > 0 {
		view.SetPage(page)
	}

	table := format.NewTable(columns, nil)
	return table.RenderPage(view.Page(), view.FilteredLen(), cmd.OutOrStdout())
}
