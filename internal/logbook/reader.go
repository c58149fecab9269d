package logbook

import (
	"context"
	"errors"
	"time"

	"github.com/faizmokh/dailylog/internal/files"
)

// Reader provides helpers to load day files from the log directory.
type Reader struct {
	manager *files.Manager
}

// NewReader wires a reader using the shared files.Manager.
func NewReader(manager *files.Manager) *Reader {
	return &Reader{manager: manager}
}

// Day returns the content and entry titles stored for date, or
// ErrDayNotFound when no file exists yet.
func (r *Reader) Day(ctx context.Context, date time.Time) (Day, error) {
	if r == nil || r.manager == nil {
		return Day{}, errors.New("reader not initialized with file manager")
	}

	data, ok, err := r.manager.Read(date)
	if err != nil {
		return Day{}, err
	}
	if !ok {
		return Day{}, ErrDayNotFound
	}

	content := string(data)
	return Day{
		Date:    startOfDay(date),
		Path:    r.manager.DayPath(date),
		Content: content,
		Titles:  ExtractTitles(content),
	}, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
