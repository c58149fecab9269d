package logbook

import (
	"context"
	"errors"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/faizmokh/dailylog/internal/files"
)

func newTestManager(t *testing.T) *files.Manager {
	t.Helper()
	mgr, err := files.NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return mgr
}

func TestWriterAppendCreatesFile(t *testing.T) {
	mgr := newTestManager(t)
	writer := NewWriter(mgr)

	date := time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.November, 2, 14, 30, 0, 0, time.UTC)

	entry, ok, err := writer.Append(context.Background(), date, "Fixed bug\n\nUpdated login.\n", now)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if !ok {
		t.Fatalf("Append reported no entry")
	}
	if entry.Title != "Fixed bug" || !entry.Time.Equal(now) {
		t.Fatalf("entry = %#v", entry)
	}

	got, err := os.ReadFile(mgr.DayPath(date))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "## 14:30 - Fixed bug\n\nUpdated login.\n\n"
	if string(got) != want {
		t.Fatalf("file contents = %q, want %q", got, want)
	}
}

func TestWriterAppendSeparatesEntriesWithOneBlankLine(t *testing.T) {
	mgr := newTestManager(t)
	writer := NewWriter(mgr)
	ctx := context.Background()

	date := time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC)
	if _, _, err := writer.Append(ctx, date, "Quick note", time.Date(2025, 11, 3, 9, 5, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Append first: %v", err)
	}
	if _, _, err := writer.Append(ctx, date, "Review\n\nLooked at PR 12.", time.Date(2025, 11, 3, 11, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Append second: %v", err)
	}

	got, err := os.ReadFile(mgr.DayPath(date))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "## 09:05 - Quick note\n\n## 11:00 - Review\n\nLooked at PR 12.\n\n"
	if string(got) != want {
		t.Fatalf("file contents = %q, want %q", got, want)
	}
}

func TestWriterAppendRepairsHandEditedTail(t *testing.T) {
	mgr := newTestManager(t)
	writer := NewWriter(mgr)

	date := time.Date(2025, time.November, 4, 0, 0, 0, 0, time.UTC)
	if err := os.WriteFile(mgr.DayPath(date), []byte("## 08:00 - Manual\n\nno trailing newline"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, _, err := writer.Append(context.Background(), date, "Next", time.Date(2025, 11, 4, 10, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := os.ReadFile(mgr.DayPath(date))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "## 08:00 - Manual\n\nno trailing newline\n\n## 10:00 - Next\n\n"
	if string(got) != want {
		t.Fatalf("file contents = %q, want %q", got, want)
	}
}

func TestWriterAppendBlankInputIsNoop(t *testing.T) {
	mgr := newTestManager(t)
	writer := NewWriter(mgr)

	date := time.Date(2025, time.November, 5, 0, 0, 0, 0, time.UTC)
	_, ok, err := writer.Append(context.Background(), date, "  \n\n", time.Now())
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if ok {
		t.Fatalf("Append reported an entry for blank input")
	}
	if _, err := os.Stat(mgr.DayPath(date)); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no file to be created, stat err = %v", err)
	}
}

func TestWriterReplace(t *testing.T) {
	mgr := newTestManager(t)
	writer := NewWriter(mgr)
	ctx := context.Background()

	date := time.Date(2025, time.November, 6, 0, 0, 0, 0, time.UTC)
	original := "## 09:00 - Draft\n\n"
	if err := mgr.Append(date, original); err != nil {
		t.Fatalf("Append: %v", err)
	}

	changed, err := writer.Replace(ctx, date, original, original)
	if err != nil || changed {
		t.Fatalf("Replace unchanged = (%v, %v), want (false, nil)", changed, err)
	}

	changed, err = writer.Replace(ctx, date, original, "   \n")
	if err != nil || changed {
		t.Fatalf("Replace blank = (%v, %v), want (false, nil)", changed, err)
	}

	changed, err = writer.Replace(ctx, date, original, "## 09:00 - Final\n\n")
	if err != nil || !changed {
		t.Fatalf("Replace edited = (%v, %v), want (true, nil)", changed, err)
	}

	day, err := NewReader(mgr).Day(ctx, date)
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	if !reflect.DeepEqual(day.Titles, []string{"Final"}) {
		t.Fatalf("Titles = %#v, want [Final]", day.Titles)
	}
}

func TestReaderDayMissingReturnsError(t *testing.T) {
	reader := NewReader(newTestManager(t))

	date := time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC)
	if _, err := reader.Day(context.Background(), date); !errors.Is(err, ErrDayNotFound) {
		t.Fatalf("Day error = %v, want ErrDayNotFound", err)
	}
}

func TestReaderDayReturnsTitles(t *testing.T) {
	mgr := newTestManager(t)
	writer := NewWriter(mgr)
	ctx := context.Background()

	date := time.Date(2025, time.November, 11, 0, 0, 0, 0, time.UTC)
	for i, raw := range []string{"Ship feature flag\n\nRolled out to 10%.", "Draft follow-up ticket"} {
		now := time.Date(2025, 11, 11, 9+i, 0, 0, 0, time.UTC)
		if _, _, err := writer.Append(ctx, date, raw, now); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	day, err := NewReader(mgr).Day(ctx, date)
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	if day.Path != mgr.DayPath(date) {
		t.Fatalf("Path = %q, want %q", day.Path, mgr.DayPath(date))
	}
	want := []string{"Ship feature flag", "Draft follow-up ticket"}
	if !reflect.DeepEqual(day.Titles, want) {
		t.Fatalf("Titles = %#v, want %#v", day.Titles, want)
	}
	if day.IsBlank() {
		t.Fatalf("day unexpectedly blank")
	}
}
