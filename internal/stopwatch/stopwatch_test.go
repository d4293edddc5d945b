package stopwatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock returns the given instants in order and then repeats the last one.
func fakeClock(instants ...time.Time) Clock {
	i := 0
	return func() time.Time {
		t := instants[i]
		if i < len(instants)-1 {
			i++
		}
		return t
	}
}

func TestElapsed(t *testing.T) {
	base := time.Date(2020, 12, 1, 0, 0, 0, 0, time.UTC)
	sw := Start(fakeClock(base, base.Add(1500*time.Microsecond)))

	assert.Equal(t, 1500*time.Microsecond, sw.Elapsed())
}

func TestElapsed_NeverNegative(t *testing.T) {
	base := time.Date(2020, 12, 1, 0, 0, 0, 0, time.UTC)
	sw := Start(fakeClock(base, base.Add(-time.Second)))

	assert.Equal(t, time.Duration(0), sw.Elapsed())
}

func TestStart_DefaultsToWallClock(t *testing.T) {
	sw := Start(nil)
	assert.GreaterOrEqual(t, sw.Elapsed(), time.Duration(0))
}

func TestFormat(t *testing.T) {
	testCases := []struct {
		name     string
		in       time.Duration
		expected string
	}{
		{name: "zero", in: 0, expected: "00:00:00.000000000"},
		{name: "nanoseconds", in: 1234 * time.Nanosecond, expected: "00:00:00.000001234"},
		{name: "all fields", in: time.Hour + 2*time.Minute + 3*time.Second + 4*time.Nanosecond, expected: "01:02:03.000000004"},
		{name: "past a day", in: 25 * time.Hour, expected: "25:00:00.000000000"},
		{name: "negative clamps", in: -time.Second, expected: "00:00:00.000000000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Format(tc.in))
		})
	}
}
