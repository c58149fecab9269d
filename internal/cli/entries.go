package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/dailylog/internal/logbook"
)

func newPreviousCommand(ctx context.Context, deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "previous",
		Short: "View the previous day's log entry.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date := today(deps.Now).AddDate(0, 0, -1)
			day, found, err := loadDay(ctx, deps, date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case !found:
				fmt.Fprintf(out, "No log entry found for previous day: %s\n", day.Path)
			case day.IsBlank():
				fmt.Fprintf(out, "Previous day's log is empty: %s\n", day.Path)
			default:
				newPrinter(cmd).Day(date, day.Content, "End of log entry")
			}
			return nil
		},
	}
}

func newYesterdayCommand(ctx context.Context, deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "yesterday",
		Short: "Add an entry to the previous day's log.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date := today(deps.Now).AddDate(0, 0, -1)
			day, found, err := loadDay(ctx, deps, date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if found && !day.IsBlank() {
				fmt.Fprintf(out, "Existing entry for %s:\n", date.Format("2006-01-02"))
				newPrinter(cmd).Day(date, day.Content, "End of existing entry")
				fmt.Fprintln(out, "\nAppending to yesterday's log...")
			} else {
				fmt.Fprintf(out, "Creating new entry for yesterday (%s)\n", date.Format("2006-01-02"))
			}

			return writeEntry(ctx, cmd, deps, date)
		},
	}
}

func newEditCommand(ctx context.Context, deps *Deps) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open a day's log file directly in your editor.",
		Long: "edit opens the whole file for the target date in your editor and writes it back when it changed.\n" +
			"An emptied buffer leaves the file untouched.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateFlag, deps.Now)
			if err != nil {
				return err
			}
			day, _, err := loadDay(ctx, deps, date)
			if err != nil {
				return err
			}

			content, err := deps.Editor.Edit(ctx, day.Content)
			if err != nil {
				return err
			}

			changed, err := logbook.NewWriter(deps.Store).Replace(ctx, date, day.Content, content)
			if err != nil {
				return err
			}
			if !changed {
				fmt.Fprintln(cmd.OutOrStdout(), "No changes made.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Log saved to %s\n", deps.Store.DayPath(date))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Target date in YYYY-MM-DD (default: today)")

	return cmd
}
