package logbook

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Parse turns raw editor output into an Entry using git commit message
// conventions: the first non-blank line is the title and everything after
// the first blank line that follows it is the body.
//
// ok is false when the input is empty or whitespace only. That is the
// "user wrote nothing" outcome, not a failure.
func Parse(raw string) (Entry, bool) {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	trimmed := strings.TrimRightFunc(raw, unicode.IsSpace)
	if strings.TrimSpace(trimmed) == "" {
		return Entry{}, false
	}

	lines := strings.Split(trimmed, "\n")
	start := 0
	for start < len(lines) && isBlank(lines[start]) {
		start++
	}

	title := strings.TrimSpace(lines[start])
	rest := lines[start+1:]

	// Without a separating blank line the remaining lines are kept as body.
	bodyStart := 0
	for i, line := range rest {
		if isBlank(line) {
			bodyStart = i + 1
			break
		}
	}

	return Entry{
		Title: title,
		Body:  joinTrimmed(rest[bodyStart:]),
	}, true
}

// Format renders entry as the Markdown fragment stored in a day file. The
// heading carries now as a zero-padded 24-hour HH:MM timestamp.
func Format(entry Entry, now time.Time) string {
	var builder strings.Builder
	builder.Grow(16 + len(entry.Title) + len(entry.Body))

	fmt.Fprintf(&builder, "## %s - %s\n", now.Format("15:04"), entry.Title)
	if entry.Body != "" {
		builder.WriteByte('\n')
		builder.WriteString(entry.Body)
		builder.WriteByte('\n')
	}
	return builder.String()
}

var headingPattern = regexp.MustCompile(`^##\s+(\d{1,2}:\d{2})\s+-\s+(.*\S)\s*$`)

// ExtractTitles scans Markdown content for entry headings ("## HH:MM - title")
// and returns their titles in file order. Lines that do not look like an
// entry heading are skipped; hand-edited files never cause an error.
func ExtractTitles(content string) []string {
	var titles []string

	for line := range strings.Lines(content) {
		if title, ok := parseHeading(line); ok {
			titles = append(titles, title)
		}
	}
	return titles
}

func parseHeading(line string) (string, bool) {
	matches := headingPattern.FindStringSubmatch(strings.TrimSpace(line))
	if matches == nil {
		return "", false
	}
	if !validClock(matches[1]) {
		return "", false
	}
	return matches[2], true
}

func validClock(value string) bool {
	hh, mm, ok := strings.Cut(value, ":")
	if !ok {
		return false
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour > 23 {
		return false
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute > 59 {
		return false
	}
	return true
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// joinTrimmed drops leading and trailing blank lines and joins the rest,
// preserving indentation and inner blank lines.
func joinTrimmed(lines []string) string {
	for len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
