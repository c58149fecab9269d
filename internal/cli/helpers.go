package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/dailylog/internal/git"
	"github.com/faizmokh/dailylog/internal/logbook"
	"github.com/faizmokh/dailylog/internal/render"
)

func today(now func() time.Time) time.Time {
	return startOfDay(now())
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func resolveDate(dateFlag string, now func() time.Time) (time.Time, error) {
	if dateFlag == "" {
		return today(now), nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", dateFlag, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date: %w", err)
	}
	return parsed, nil
}

// writeEntry collects an entry from the editor and appends it to the file
// for date. Empty editor output is a no-op. After a successful append the
// auto-sync policy runs; its failure is only a warning.
func writeEntry(ctx context.Context, cmd *cobra.Command, deps *Deps, date time.Time) error {
	out := cmd.OutOrStdout()

	raw, err := deps.Editor.Edit(ctx, "")
	if err != nil {
		return err
	}

	writer := logbook.NewWriter(deps.Store)
	entry, ok, err := writer.Append(ctx, date, raw, deps.Now())
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "No content written. Aborted.")
		return nil
	}

	deps.Logger.Debug("entry appended", "title", entry.Title, "date", date.Format("2006-01-02"))
	fmt.Fprintf(out, "Log saved to %s\n", deps.Store.DayPath(date))

	if attempted, err := git.AutoSync(ctx, deps.Config, deps.Syncer, deps.Logger); attempted && err == nil {
		fmt.Fprintln(out, "Synced with remote.")
	}
	return nil
}

// loadDay returns the day for date. found is false when the file is missing.
func loadDay(ctx context.Context, deps *Deps, date time.Time) (logbook.Day, bool, error) {
	day, err := logbook.NewReader(deps.Store).Day(ctx, date)
	if err != nil {
		if errors.Is(err, logbook.ErrDayNotFound) {
			return logbook.Day{Date: date, Path: deps.Store.DayPath(date)}, false, nil
		}
		return logbook.Day{}, false, err
	}
	return day, true, nil
}

func newPrinter(cmd *cobra.Command) *render.Printer {
	return render.NewPrinter(cmd.OutOrStdout())
}
