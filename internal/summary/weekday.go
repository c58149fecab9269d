package summary

import (
	"fmt"
	"sort"
	"strings"
	"time"

	dlerrors "github.com/faizmokh/dailylog/internal/errors"
)

// WeekdaySet is the set of weekdays considered expected logging days.
type WeekdaySet map[time.Weekday]struct{}

// DefaultWeekdays is Monday through Friday.
func DefaultWeekdays() WeekdaySet {
	return NewWeekdaySet(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)
}

// NewWeekdaySet builds a set from the given days.
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	set := make(WeekdaySet, len(days))
	for _, day := range days {
		set[day] = struct{}{}
	}
	return set
}

// Contains reports whether day is in the set.
func (s WeekdaySet) Contains(day time.Weekday) bool {
	_, ok := s[day]
	return ok
}

// Days returns the members of the set in Sunday-first order.
func (s WeekdaySet) Days() []time.Weekday {
	days := make([]time.Weekday, 0, len(s))
	for day := range s {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

func (s WeekdaySet) String() string {
	names := make([]string, 0, len(s))
	for _, day := range s.Days() {
		names = append(names, day.String()[:3])
	}
	return strings.Join(names, ",")
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

// ParseWeekday accepts full English weekday names and their three-letter
// abbreviations, case-insensitively.
func ParseWeekday(token string) (time.Weekday, bool) {
	day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(token))]
	return day, ok
}

// ParseWeekdays converts configured tokens into a WeekdaySet. The first
// unrecognized token is reported as a configuration error rather than dropped.
func ParseWeekdays(tokens []string) (WeekdaySet, error) {
	set := make(WeekdaySet, len(tokens))
	for _, token := range tokens {
		day, ok := ParseWeekday(token)
		if !ok {
			return nil, dlerrors.NewConfigError("summary_days", token,
				fmt.Errorf("%w: unrecognized weekday", dlerrors.ErrInvalidConfiguration))
		}
		set[day] = struct{}{}
	}
	return set, nil
}
