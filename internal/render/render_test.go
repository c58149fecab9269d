package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/faizmokh/dailylog/internal/summary"
)

func plainStyles(buf *bytes.Buffer) Styles {
	return NewStyles(lipgloss.NewRenderer(buf))
}

func TestMarkdownPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	content := "# Day\n## 09:00 - Standup\n\n- first\n* second with **bold** text\n```\ncode\n```\nplain **a** and **b**\nunclosed **marker\n"

	got := Markdown(content, plainStyles(&buf))

	want := "# Day\n## 09:00 - Standup\n\n• first\n• second with bold text\n```\ncode\n```\nplain a and b\nunclosed **marker\n"
	assert.Equal(t, want, got)
}

func TestMarkdownEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.Empty(t, Markdown("", plainStyles(&buf)))
}

func TestPrinterDay(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Day(time.Date(2025, time.November, 6, 0, 0, 0, 0, time.Local), "## 14:30 - Fixed bug\n\nUpdated login.\n", "End of log entry")

	assert.Equal(t, "=== Log entry for 2025-11-06 ===\n## 14:30 - Fixed bug\n\nUpdated login.\n=== End of log entry ===\n", buf.String())
}

func day(d int) time.Time {
	return time.Date(2025, time.November, d, 0, 0, 0, 0, time.Local)
}

func TestSummaryReport(t *testing.T) {
	stats := summary.Stats{
		Start:                   day(3),
		End:                     day(5),
		TotalEntries:            3,
		DaysWithEntries:         2,
		ExpectedDays:            3,
		ExpectedDaysWithEntries: 2,
		Days: []summary.DaySummary{
			{Date: day(3), Expected: true, HasContent: true, Titles: []string{"Standup", "Review"}},
			{Date: day(4), Expected: true},
			{Date: day(5), Expected: true, HasContent: true, Titles: []string{"Deploy"}},
		},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).Summary(stats, 3)

	want := `=== Log Summary for Past 3 Days ===

Summary Statistics:
- Total entries: 3
- Days with entries: 2
- Logging consistency: 66.7% (2/3 days)

Daily Entries:

--- 2025-11-03 (Monday) ---
  - Standup
  - Review

--- 2025-11-05 (Wednesday) ---
  - Deploy

=== End of Summary ===
`
	assert.Equal(t, want, buf.String())
}

func TestSummaryReportPreviewAndNoExpectedDays(t *testing.T) {
	stats := summary.Stats{
		Days: []summary.DaySummary{
			{Date: day(8), HasContent: true, Preview: "free-form notes"},
		},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).Summary(stats, 1)

	out := buf.String()
	assert.Contains(t, out, "--- 2025-11-08 (Saturday) ---\n  free-form notes\n")
	assert.Contains(t, out, "- Logging consistency: n/a")
}

func TestSummaryReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).Summary(summary.Stats{Days: []summary.DaySummary{{Date: day(3), Expected: true}}}, 7)

	assert.Equal(t, "=== Log Summary for Past 7 Days ===\nNo log entries found for the past 7 days.\n", buf.String())
}
