package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	dlerrors "github.com/faizmokh/dailylog/internal/errors"
	"github.com/faizmokh/dailylog/internal/logbook"
)

// DayReader is the slice of the log store the engine needs. A missing day
// reports ok=false.
type DayReader interface {
	Read(date time.Time) ([]byte, bool, error)
}

// DaySummary is the per-day breakdown of a summarized range.
type DaySummary struct {
	Date time.Time
	// Expected is true when Date falls on a configured logging weekday.
	Expected   bool
	HasContent bool
	Titles     []string
	// Preview is the first non-blank line of a day whose file has content
	// but no entry headings.
	Preview string
}

// Stats aggregates a date range. Days is ordered oldest to newest.
type Stats struct {
	Start                   time.Time
	End                     time.Time
	TotalEntries            int
	DaysWithEntries         int
	ExpectedDays            int
	ExpectedDaysWithEntries int
	Days                    []DaySummary
}

// Consistency returns the percentage of expected days that have at least one
// entry. ok is false when the range contains no expected days.
func (s Stats) Consistency() (float64, bool) {
	if s.ExpectedDays == 0 {
		return 0, false
	}
	return float64(s.ExpectedDaysWithEntries) / float64(s.ExpectedDays) * 100, true
}

// ActiveDays returns the days whose file has any content, oldest first.
func (s Stats) ActiveDays() []DaySummary {
	var active []DaySummary
	for _, day := range s.Days {
		if day.HasContent {
			active = append(active, day)
		}
	}
	return active
}

// maxPrealloc bounds the up-front Days allocation; --days is user input.
const maxPrealloc = 366

// Engine scans day files and computes summary statistics.
type Engine struct {
	store DayReader
}

// NewEngine wires an engine over the given log store.
func NewEngine(store DayReader) *Engine {
	return &Engine{store: store}
}

// Summarize scans the inclusive range [end-(days-1), end] in chronological
// order. Each day is judged against weekdays on its own; there is no notion
// of partial weeks at the range boundary.
func (e *Engine) Summarize(ctx context.Context, end time.Time, days int, weekdays WeekdaySet) (Stats, error) {
	if days < 1 {
		return Stats{}, dlerrors.Wrapf(dlerrors.ErrInvalidDayCount, "summarize %d days", days)
	}
	if e == nil || e.store == nil {
		return Stats{}, fmt.Errorf("summary engine not initialized with a log store")
	}

	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}

	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	start := end.AddDate(0, 0, -(days - 1))

	stats := Stats{
		Start: start,
		End:   end,
		Days:  make([]DaySummary, 0, min(days, maxPrealloc)),
	}

	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return Stats{}, err
		}

		day, err := e.summarizeDay(current, weekdays)
		if err != nil {
			return Stats{}, err
		}

		stats.TotalEntries += len(day.Titles)
		if len(day.Titles) > 0 {
			stats.DaysWithEntries++
		}
		if day.Expected {
			stats.ExpectedDays++
			if len(day.Titles) > 0 {
				stats.ExpectedDaysWithEntries++
			}
		}
		stats.Days = append(stats.Days, day)
	}

	return stats, nil
}

func (e *Engine) summarizeDay(date time.Time, weekdays WeekdaySet) (DaySummary, error) {
	day := DaySummary{
		Date:     date,
		Expected: weekdays.Contains(date.Weekday()),
	}

	data, ok, err := e.store.Read(date)
	if err != nil {
		return DaySummary{}, err
	}
	if !ok {
		return day, nil
	}

	content := string(data)
	day.HasContent = strings.TrimSpace(content) != ""
	day.Titles = logbook.ExtractTitles(content)
	if day.HasContent && len(day.Titles) == 0 {
		day.Preview = firstLine(content)
	}
	return day, nil
}

func firstLine(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
