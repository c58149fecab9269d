package logbook

import (
	"strings"
	"time"
)

// Entry is a single journal record parsed from editor output.
type Entry struct {
	Title string
	Body  string
	// Time is stamped when the entry is formatted, not when it was typed.
	Time time.Time
}

// Day is the raw content of one date's log file plus the entry titles found in it.
type Day struct {
	Date    time.Time
	Path    string
	Content string
	Titles  []string
}

// IsBlank reports whether the day file holds nothing but whitespace.
func (d Day) IsBlank() bool {
	return strings.TrimSpace(d.Content) == ""
}
