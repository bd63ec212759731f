package civil

import "fmt"

// MaxOffsetSeconds bounds a FixedOffset to strictly less than one day in
// either direction. Real zones stay well inside this; the bound exists so
// the resolver can search a finite candidate window.
const MaxOffsetSeconds = 86400

// FixedOffset is a constant signed offset from UTC in whole seconds
// (local minus UTC). The zero value is UTC itself.
type FixedOffset struct {
	seconds int
}

// NewFixedOffset builds a validated FixedOffset.
func NewFixedOffset(seconds int) (FixedOffset, error) {
	if seconds <= -MaxOffsetSeconds || seconds >= MaxOffsetSeconds {
		return FixedOffset{}, fmt.Errorf("offset %d out of range (-%d, %d)", seconds, MaxOffsetSeconds, MaxOffsetSeconds)
	}
	return FixedOffset{seconds: seconds}, nil
}

// MustFixedOffset is NewFixedOffset that panics on invalid input.
func MustFixedOffset(seconds int) FixedOffset {
	o, err := NewFixedOffset(seconds)
	if err != nil {
		panic(err)
	}
	return o
}

// UTCOffset is the zero offset.
var UTCOffset = FixedOffset{}

// Seconds returns local minus UTC in seconds. Stable for the lifetime of
// the value.
func (o FixedOffset) Seconds() int {
	return o.seconds
}

// String formats the offset as Z, ±HH:MM, or ±HH:MM:SS when the offset is
// not a whole number of minutes.
func (o FixedOffset) String() string {
	if o.seconds == 0 {
		return "Z"
	}
	sign := "+"
	s := o.seconds
	if s < 0 {
		sign = "-"
		s = -s
	}
	h, m, sec := s/3600, s%3600/60, s%60
	if sec != 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, sec)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, h, m)
}
