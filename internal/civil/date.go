// Package civil defines the naive (offset-less) calendar value types the
// resolver works over: Date, TimeOfDay, DateTime, and FixedOffset.
//
// All types are immutable values. A civil timestamp carries no time-zone
// identity; pairing one with an offset is the resolver's job, not these
// types'. Construction validates calendrical correctness (leap years,
// days-in-month, field ranges) so malformed values never reach the
// resolution logic.
package civil

import (
	"fmt"
	"strconv"
	"strings"
)

// Supported calendar range. Dates outside [MinYear, MaxYear] are
// unrepresentable; constructors reject them and arithmetic that would
// cross the boundary panics.
const (
	MinYear = 1
	MaxYear = 9999
)

// Date is a calendar date in the proleptic Gregorian calendar.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1..12
	Day   int `json:"day"`   // 1..days-in-month
}

var (
	// MinDate and MaxDate bound the representable calendar.
	MinDate = Date{Year: MinYear, Month: 1, Day: 1}
	MaxDate = Date{Year: MaxYear, Month: 12, Day: 31}
)

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of the given
// year, or 0 if month is out of range.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// NewDate builds a validated Date.
func NewDate(year, month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("year %d out of supported range [%d, %d]", year, MinYear, MaxYear)
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month %d out of range [1, 12]", month)
	}
	if dim := DaysInMonth(year, month); day < 1 || day > dim {
		return Date{}, fmt.Errorf("day %d out of range [1, %d] for %04d-%02d", day, dim, year, month)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustDate is NewDate that panics on invalid input. For literals in tests
// and initialization of known-good constants.
func MustDate(year, month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("invalid year in %q: %w", s, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("invalid month in %q: %w", s, err)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid day in %q: %w", s, err)
	}
	return NewDate(year, month, day)
}

// EpochDays returns the number of days between d and the Unix epoch
// (1970-01-01), negative for earlier dates. Uses the days-from-civil
// algorithm over 400-year eras, exact across the whole supported range.
func (d Date) EpochDays() int64 {
	y := int64(d.Year)
	m := int64(d.Month)
	if m <= 2 {
		y--
	}
	era := y / 400
	if y < 0 && y%400 != 0 {
		era--
	}
	yoe := y - era*400 // [0, 399]
	var mp int64
	if m > 2 {
		mp = m - 3
	} else {
		mp = m + 9
	}
	doy := (153*mp+2)/5 + int64(d.Day) - 1 // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*146097 + doe - 719468       // shift epoch to 1970-01-01
}

// DateFromEpochDays is the inverse of EpochDays. It panics if the result
// would fall outside the supported range; days derived from in-range
// values never do.
func DateFromEpochDays(days int64) Date {
	z := days + 719468
	era := z / 146097
	if z < 0 && z%146097 != 0 {
		era--
	}
	doe := z - era*146097                                  // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // [0, 399]
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153                  // [0, 11]
	day := int(doy - (153*mp+2)/5 + 1)
	var month int
	if mp < 10 {
		month = int(mp + 3)
	} else {
		month = int(mp - 9)
	}
	if month <= 2 {
		y++
	}
	if y < MinYear || y > MaxYear {
		panic(fmt.Sprintf("civil: epoch day %d outside supported calendar range", days))
	}
	return Date{Year: int(y), Month: month, Day: day}
}

// AddDays returns the date n days after d (before, if n is negative).
// Panics if the result leaves the supported range.
func (d Date) AddDays(n int64) Date {
	return DateFromEpochDays(d.EpochDays() + n)
}

// Weekday returns the day of week (0 = Sunday .. 6 = Saturday).
func (d Date) Weekday() int {
	// 1970-01-01 was a Thursday (4).
	wd := (d.EpochDays() + 4) % 7
	if wd < 0 {
		wd += 7
	}
	return int(wd)
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
