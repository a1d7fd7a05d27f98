package pwrlib

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SecondsPerDay is the number of seconds on the 24-hour wrapping clock.
const SecondsPerDay = 24 * 60 * 60

// Clock is a wall-clock time of day with second resolution.
// It carries no date component; arithmetic wraps across midnight.
type Clock struct {
	// Hour is the hour of day in the range [0, 23].
	Hour int `json:"hour"`
	// Minute is the minute of hour in the range [0, 59].
	Minute int `json:"minute"`
	// Second is the second of minute in the range [0, 59].
	Second int `json:"second"`
}

// MakeClock returns a Clock for the given hour and minute with zero seconds.
func MakeClock(hour, minute int) Clock {
	return Clock{Hour: hour, Minute: minute}
}

// ClockOf extracts the time-of-day component of t.
func ClockOf(t time.Time) Clock {
	h, m, s := t.Clock()
	return Clock{Hour: h, Minute: m, Second: s}
}

// SecondOfDay returns the clock value as seconds elapsed since midnight.
func (c Clock) SecondOfDay() int {
	return c.Hour*3600 + c.Minute*60 + c.Second
}

// MinuteOfDay returns the clock value as whole minutes elapsed since midnight.
func (c Clock) MinuteOfDay() int {
	return c.Hour*60 + c.Minute
}

// AddSeconds returns the clock advanced by n seconds, wrapping across
// midnight in either direction. n may be negative.
func (c Clock) AddSeconds(n int) Clock {
	s := (c.SecondOfDay() + n) % SecondsPerDay
	if s < 0 {
		s += SecondsPerDay
	}
	return Clock{
		Hour:   s / 3600,
		Minute: s / 60 % 60,
		Second: s % 60,
	}
}

// String formats the clock as "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ParseClock parses a clock value in "HH:MM" or "HH:MM:SS" form.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return Clock{}, fmt.Errorf("invalid clock value %q, expected HH:MM", s)
	}
	var c Clock
	fields := []*int{&c.Hour, &c.Minute, &c.Second}
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return Clock{}, fmt.Errorf("invalid clock value %q, expected HH:MM", s)
		}
		*fields[i] = v
	}
	if c.Hour < 0 || c.Hour > 23 || c.Minute < 0 || c.Minute > 59 || c.Second < 0 || c.Second > 59 {
		return Clock{}, fmt.Errorf("clock value %q out of range", s)
	}
	return c, nil
}
