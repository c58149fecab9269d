package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/faizmokh/dailylog/internal/summary"
)

func newSummaryCommand(ctx context.Context, deps *Deps) *cobra.Command {
	var (
		daysFlag int
		dateFlag string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize and review logs for the past N days.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			end, err := resolveDate(dateFlag, deps.Now)
			if err != nil {
				return err
			}

			stats, err := summary.NewEngine(deps.Store).Summarize(ctx, end, daysFlag, deps.Config.SummaryDays)
			if err != nil {
				return err
			}
			deps.Logger.Debug("summary computed",
				"start", stats.Start.Format("2006-01-02"),
				"end", stats.End.Format("2006-01-02"),
				"expected_days", stats.ExpectedDays)

			newPrinter(cmd).Summary(stats, daysFlag)
			return nil
		},
	}

	cmd.Flags().IntVarP(&daysFlag, "days", "d", 7, "Number of days to include, ending on the target date")
	cmd.Flags().StringVar(&dateFlag, "date", "", "End date in YYYY-MM-DD (default: today)")

	return cmd
}
