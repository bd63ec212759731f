package civil

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a wall-clock time. Second may be 60 to represent a leap
// second; for instant arithmetic a leap second shares second 59's bucket
// (see SecondsOfDay).
type TimeOfDay struct {
	Hour       int `json:"hour"`
	Minute     int `json:"minute"`
	Second     int `json:"second"`
	Nanosecond int `json:"nanosecond"`
}

// Midnight is the zero time-of-day, used to anchor date-only resolution.
var Midnight = TimeOfDay{}

// NewTimeOfDay builds a validated TimeOfDay.
func NewTimeOfDay(hour, minute, second, nanosecond int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("hour %d out of range [0, 23]", hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("minute %d out of range [0, 59]", minute)
	}
	if second < 0 || second > 60 {
		return TimeOfDay{}, fmt.Errorf("second %d out of range [0, 60]", second)
	}
	if nanosecond < 0 || nanosecond > 999_999_999 {
		return TimeOfDay{}, fmt.Errorf("nanosecond %d out of range [0, 999999999]", nanosecond)
	}
	return TimeOfDay{Hour: hour, Minute: minute, Second: second, Nanosecond: nanosecond}, nil
}

// MustTimeOfDay is NewTimeOfDay that panics on invalid input.
func MustTimeOfDay(hour, minute, second, nanosecond int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute, second, nanosecond)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay parses HH:MM or HH:MM:SS.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeOfDay{}, fmt.Errorf("invalid time %q, want HH:MM or HH:MM:SS", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	second := 0
	if len(parts) == 3 {
		second, err = strconv.Atoi(parts[2])
		if err != nil {
			return TimeOfDay{}, fmt.Errorf("invalid second in %q: %w", s, err)
		}
	}
	return NewTimeOfDay(hour, minute, second, 0)
}

// SecondsOfDay returns the offset from midnight in seconds. A leap second
// (Second == 60) maps to the same bucket as second 59 so that offset
// lookup treats it as part of the preceding second.
func (t TimeOfDay) SecondsOfDay() int64 {
	sec := t.Second
	if sec == 60 {
		sec = 59
	}
	return int64(t.Hour)*3600 + int64(t.Minute)*60 + int64(sec)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}
