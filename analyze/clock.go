// Wall-clock instants for log records. Timestamps are parsed at second
// resolution and the numeric UTC offset is carried as an opaque string so
// reports can re-emit exactly what the input contained.

package analyze

import (
	"fmt"
	"strings"
	"time"
)

// clfTimeLayout is the timestamp layout inside the brackets of a Common
// Log Format line, without the offset.
const clfTimeLayout = "02/Jan/2006:15:04:05"

// clfDateLayout keys the daily counters.
const clfDateLayout = "02/Jan/2006"

// LogTime is a point in time with second resolution. Ordering compares the
// wall-clock value only; the offset string rides along untouched.
type LogTime struct {
	wall time.Time
	Zone string
}

// ParseLogTime parses the bracketed timestamp field of a log line, e.g.
// "01/Jul/1995:00:00:01 -0400". The offset part is optional and kept verbatim.
func ParseLogTime(s string) (LogTime, error) {
	stamp, zone, _ := strings.Cut(s, " ")
	wall, err := time.Parse(clfTimeLayout, stamp)
	if err != nil {
		return LogTime{}, fmt.Errorf("bad timestamp %q: %w", s, err)
	}
	return LogTime{wall: wall, Zone: zone}, nil
}

// Add returns the instant shifted by d, keeping the zone string.
func (t LogTime) Add(d time.Duration) LogTime {
	return LogTime{wall: t.wall.Add(d), Zone: t.Zone}
}

// Before reports whether t is strictly earlier than u.
func (t LogTime) Before(u LogTime) bool { return t.wall.Before(u.wall) }

// After reports whether t is strictly later than u.
func (t LogTime) After(u LogTime) bool { return t.wall.After(u.wall) }

// Equal reports whether t and u are the same instant.
func (t LogTime) Equal(u LogTime) bool { return t.wall.Equal(u.wall) }

// IsZero reports whether t is the zero instant.
func (t LogTime) IsZero() bool { return t.wall.IsZero() }

// Format renders the instant in log form, re-attaching the original offset.
func (t LogTime) Format() string {
	if t.Zone == "" {
		return t.wall.Format(clfTimeLayout)
	}
	return t.wall.Format(clfTimeLayout) + " " + t.Zone
}

// Date returns the calendar-day key, e.g. "01/Jul/1995".
func (t LogTime) Date() string { return t.wall.Format(clfDateLayout) }

// Hour returns the hour of day in [0,23].
func (t LogTime) Hour() int { return t.wall.Hour() }

// SecondsBetween returns later minus earlier in whole seconds.
func SecondsBetween(earlier, later LogTime) int64 {
	return int64(later.wall.Sub(earlier.wall) / time.Second)
}
