package render

import (
	"fmt"

	"github.com/faizmokh/dailylog/internal/summary"
)

// Summary prints the report for stats covering the past days days.
func (p *Printer) Summary(stats summary.Stats, days int) {
	s := p.styles
	fmt.Fprintln(p.out, s.Title.Render(fmt.Sprintf("=== Log Summary for Past %d Days ===", days)))

	active := stats.ActiveDays()
	if len(active) == 0 {
		fmt.Fprintf(p.out, "No log entries found for the past %d days.\n", days)
		return
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, s.H3.Render("Summary Statistics:"))
	fmt.Fprintf(p.out, "- Total entries: %d\n", stats.TotalEntries)
	fmt.Fprintf(p.out, "- Days with entries: %d\n", stats.DaysWithEntries)
	if pct, ok := stats.Consistency(); ok {
		fmt.Fprintf(p.out, "- Logging consistency: %.1f%% (%d/%d days)\n", pct, stats.ExpectedDaysWithEntries, stats.ExpectedDays)
	} else {
		fmt.Fprintln(p.out, "- Logging consistency: n/a (no expected logging days in range)")
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, s.Bullet.Bold(true).Render("Daily Entries:"))
	for _, day := range active {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, s.Day.Render(fmt.Sprintf("--- %s ---", day.Date.Format("2006-01-02 (Monday)"))))
		if len(day.Titles) == 0 {
			fmt.Fprintln(p.out, s.Muted.Render("  "+day.Preview))
			continue
		}
		for _, title := range day.Titles {
			fmt.Fprintln(p.out, s.Item.Render("  - "+title))
		}
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, s.Title.Render("=== End of Summary ==="))
}
