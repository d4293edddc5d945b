// Package stopwatch measures how long a solver takes and renders the
// elapsed time for the report.
package stopwatch

import (
	"fmt"
	"time"
)

// Clock returns the current time. Tests substitute a fake.
type Clock func() time.Time

// Stopwatch measures the time since it was started.
type Stopwatch struct {
	now   Clock
	start time.Time
}

// Start returns a running Stopwatch. A nil clock means time.Now.
func Start(clock Clock) *Stopwatch {
	if clock == nil {
		clock = time.Now
	}
	return &Stopwatch{now: clock, start: clock()}
}

// Elapsed returns the time since Start. It never returns a negative duration.
func (s *Stopwatch) Elapsed() time.Duration {
	d := s.now().Sub(s.start)
	if d < 0 {
		return 0
	}
	return d
}

// Format renders d as HH:MM:SS.nnnnnnnnn. Hours keep counting past 24.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	d -= seconds * time.Second

	return fmt.Sprintf("%02d:%02d:%02d.%09d", int64(hours), int64(minutes), int64(seconds), d.Nanoseconds())
}
