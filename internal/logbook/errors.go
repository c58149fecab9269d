package logbook

import "errors"

// ErrDayNotFound is returned when no log file exists for the requested date.
var ErrDayNotFound = errors.New("no log for date")
