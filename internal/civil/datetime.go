package civil

import (
	"fmt"
	"strings"
)

// DateTime is a naive civil timestamp: a Date plus a TimeOfDay, with no
// associated offset. Whether it reads as local wall-clock time or as UTC
// is decided by the caller handing it to the resolver.
type DateTime struct {
	Date Date      `json:"date"`
	Time TimeOfDay `json:"time"`
}

// NewDateTime builds a validated DateTime from components.
func NewDateTime(year, month, day, hour, minute, second, nanosecond int) (DateTime, error) {
	d, err := NewDate(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	t, err := NewTimeOfDay(hour, minute, second, nanosecond)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{Date: d, Time: t}, nil
}

// MustDateTime is NewDateTime that panics on invalid input.
func MustDateTime(year, month, day, hour, minute, second, nanosecond int) DateTime {
	dt, err := NewDateTime(year, month, day, hour, minute, second, nanosecond)
	if err != nil {
		panic(err)
	}
	return dt
}

// ParseDateTime parses "YYYY-MM-DDTHH:MM[:SS]" (a space is accepted in
// place of the 'T'). A bare YYYY-MM-DD parses as midnight.
func ParseDateTime(s string) (DateTime, error) {
	sep := strings.IndexAny(s, "T ")
	if sep < 0 {
		d, err := ParseDate(s)
		if err != nil {
			return DateTime{}, err
		}
		return DateTime{Date: d, Time: Midnight}, nil
	}
	d, err := ParseDate(s[:sep])
	if err != nil {
		return DateTime{}, err
	}
	t, err := ParseTimeOfDay(s[sep+1:])
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{Date: d, Time: t}, nil
}

// Unix returns the timestamp as seconds since the Unix epoch, reading the
// civil fields as if they were UTC. This is the naive instant the resolver
// does its offset arithmetic on; nanoseconds are carried separately and do
// not affect offset lookup.
func (dt DateTime) Unix() int64 {
	return dt.Date.EpochDays()*86400 + dt.Time.SecondsOfDay()
}

// FromUnix builds the DateTime whose civil fields, read as UTC, denote the
// given epoch seconds. Panics if sec falls outside the supported calendar
// range (the fatal overflow condition; there is no recoverable meaning for
// an unrepresentable calendar point).
func FromUnix(sec int64, nanosecond int) DateTime {
	days := sec / 86400
	rem := sec % 86400
	if rem < 0 {
		days--
		rem += 86400
	}
	return DateTime{
		Date: DateFromEpochDays(days),
		Time: TimeOfDay{
			Hour:       int(rem / 3600),
			Minute:     int(rem % 3600 / 60),
			Second:     int(rem % 60),
			Nanosecond: nanosecond,
		},
	}
}

// AddSeconds returns the DateTime n seconds later (earlier, if negative),
// normalizing across day boundaries. A leap-second sentinel does not
// survive arithmetic. Panics on leaving the supported range.
func (dt DateTime) AddSeconds(n int64) DateTime {
	return FromUnix(dt.Unix()+n, dt.Time.Nanosecond)
}

// Before reports whether dt is earlier than other, ignoring nanoseconds
// only when the seconds already differ.
func (dt DateTime) Before(other DateTime) bool {
	a, b := dt.Unix(), other.Unix()
	if a != b {
		return a < b
	}
	return dt.Time.Nanosecond < other.Time.Nanosecond
}

func (dt DateTime) String() string {
	return fmt.Sprintf("%sT%s", dt.Date, dt.Time)
}
