package logbook

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/faizmokh/dailylog/internal/files"
)

// Writer appends parsed entries to day files and applies whole-file edits.
type Writer struct {
	manager *files.Manager
}

// NewWriter wires the dependencies required to manipulate Markdown log files.
func NewWriter(manager *files.Manager) *Writer {
	return &Writer{manager: manager}
}

// Append parses raw editor output and appends the formatted entry to the file
// for date, stamping it with now. ok is false, and nothing is written, when
// raw holds no text.
func (w *Writer) Append(ctx context.Context, date time.Time, raw string, now time.Time) (Entry, bool, error) {
	if w == nil || w.manager == nil {
		return Entry{}, false, fmt.Errorf("writer not initialized with file manager")
	}

	entry, ok := Parse(raw)
	if !ok {
		return Entry{}, false, nil
	}
	entry.Time = now

	existing, _, err := w.manager.Read(date)
	if err != nil {
		return Entry{}, false, err
	}

	fragment := separatorFor(string(existing)) + Format(entry, now) + "\n"
	if err := w.manager.Append(date, fragment); err != nil {
		return Entry{}, false, err
	}
	return entry, true, nil
}

// Replace overwrites the file for date with content. Nothing is written when
// content is unchanged or blank; day files are never removed. The returned
// flag reports whether the file was rewritten.
func (w *Writer) Replace(ctx context.Context, date time.Time, original, content string) (bool, error) {
	if w == nil || w.manager == nil {
		return false, fmt.Errorf("writer not initialized with file manager")
	}
	if content == original || strings.TrimSpace(content) == "" {
		return false, nil
	}
	if err := w.manager.WriteWhole(date, []byte(content)); err != nil {
		return false, err
	}
	return true, nil
}

// separatorFor returns what must precede a new entry so that it starts after
// exactly one blank line, even when the file was edited by hand.
func separatorFor(existing string) string {
	existing = strings.ReplaceAll(existing, "\r\n", "\n")
	if strings.TrimSpace(existing) == "" {
		return ""
	}
	switch {
	case strings.HasSuffix(existing, "\n\n"):
		return ""
	case strings.HasSuffix(existing, "\n"):
		return "\n"
	default:
		return "\n\n"
	}
}
