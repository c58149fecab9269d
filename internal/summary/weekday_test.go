package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dlerrors "github.com/faizmokh/dailylog/internal/errors"
)

func TestParseWeekday(t *testing.T) {
	tests := map[string]time.Weekday{
		"monday":    time.Monday,
		"Mon":       time.Monday,
		"TUE":       time.Tuesday,
		"Wednesday": time.Wednesday,
		"thu":       time.Thursday,
		" friday ":  time.Friday,
		"sat":       time.Saturday,
		"SUNDAY":    time.Sunday,
	}
	for token, want := range tests {
		got, ok := ParseWeekday(token)
		require.True(t, ok, token)
		assert.Equal(t, want, got, token)
	}

	for _, token := range []string{"", "mo", "funday", "tues"} {
		_, ok := ParseWeekday(token)
		assert.False(t, ok, token)
	}
}

func TestParseWeekdaysRejectsUnknownToken(t *testing.T) {
	_, err := ParseWeekdays([]string{"monday", "funday"})
	require.Error(t, err)
	assert.ErrorIs(t, err, dlerrors.ErrInvalidConfiguration)

	var cfgErr *dlerrors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "summary_days", cfgErr.Parameter)
	assert.Equal(t, "funday", cfgErr.Value)
}

func TestParseWeekdaysBuildsSet(t *testing.T) {
	set, err := ParseWeekdays([]string{"sat", "Sunday", "sun"})
	require.NoError(t, err)

	assert.Equal(t, []time.Weekday{time.Sunday, time.Saturday}, set.Days())
	assert.True(t, set.Contains(time.Saturday))
	assert.False(t, set.Contains(time.Monday))
	assert.Equal(t, "Sun,Sat", set.String())
}

func TestDefaultWeekdays(t *testing.T) {
	assert.Equal(t, "Mon,Tue,Wed,Thu,Fri", DefaultWeekdays().String())
}
