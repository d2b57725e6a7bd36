package cli

import (
	"errors"
	"fmt"
	"gobarber-dashboard/internal/app/services/core/dashboard"
	"gobarber-dashboard/internal/pkg/constvars"
	"gobarber-dashboard/internal/pkg/utils"

	"github.com/spf13/cobra"
)

func newDayCmd(deps Dependencies, opts *globalOptions) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Print the appointments of a day, split into morning and afternoon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd, opts)
			defer cancel()

			viewModel, locale, err := openDashboard(ctx, deps, opts)
			if err != nil {
				return err
			}

			fetchErrs := []error{viewModel.Mount(ctx)}
			if date != "" {
				day, err := utils.ParseDate(date, viewModel.Location)
				if err != nil {
					return clientError(err)
				}
				fetchErrs = append(fetchErrs, viewModel.ChangeMonth(ctx, day))
				selected, err := viewModel.ClickDay(ctx, day)
				fetchErrs = append(fetchErrs, err)
				if !selected {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s cannot be selected, showing %s\n", date, viewModel.Selection().SelectedDate.Format(constvars.DateLayout))
				}
			}

			view := viewModel.Derive(locale)
			if err := printView(cmd.OutOrStdout(), view, opts.JSON, renderDay); err != nil {
				return err
			}
			return fetchError(errors.Join(fetchErrs...), view)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to show (YYYY-MM-DD), defaults to today")
	return cmd
}

func newCalendarCmd(deps Dependencies, opts *globalOptions) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print the month calendar with disabled days marked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd, opts)
			defer cancel()

			viewModel, locale, err := openDashboard(ctx, deps, opts)
			if err != nil {
				return err
			}

			fetchErr := viewModel.Mount(ctx)
			if month != "" {
				value, err := utils.ParseMonth(month, viewModel.Location)
				if err != nil {
					return clientError(err)
				}
				fetchErr = errors.Join(fetchErr, viewModel.ChangeMonth(ctx, value))
			}

			view := viewModel.Derive(locale)
			if err := printView(cmd.OutOrStdout(), view, opts.JSON, renderCalendar); err != nil {
				return err
			}
			return fetchError(fetchErr, view)
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to show (YYYY-MM), defaults to the current month")
	return cmd
}

// fetchError reports a failed fetch after the view was printed, so scripts see
// a non-zero exit while people still get whatever was loaded.
func fetchError(err error, view dashboard.View) error {
	if err == nil && !view.AvailabilityFailed && !view.AppointmentsFailed {
		return nil
	}
	if err == nil {
		err = errors.New("schedule partially loaded")
	}
	return clientError(err)
}
