package civil

import "testing"

func TestNewDate_ValidatesCalendar(t *testing.T) {
	cases := []struct {
		name             string
		year, month, day int
		wantErr          bool
	}{
		{"normal day", 2023, 4, 1, false},
		{"leap day on leap year", 2024, 2, 29, false},
		{"leap day on non-leap year", 2023, 2, 29, true},
		{"century non-leap", 1900, 2, 29, true},
		{"400-year leap", 2000, 2, 29, false},
		{"day 32", 2023, 1, 32, true},
		{"day zero", 2023, 1, 0, true},
		{"month 13", 2023, 13, 1, true},
		{"month zero", 2023, 0, 1, true},
		{"30 days hath september", 2023, 9, 31, true},
		{"year below range", 0, 1, 1, true},
		{"year above range", 10000, 1, 1, true},
		{"min date", MinYear, 1, 1, false},
		{"max date", MaxYear, 12, 31, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDate(tc.year, tc.month, tc.day)
			if tc.wantErr && err == nil {
				t.Errorf("NewDate(%d, %d, %d): expected error, got nil", tc.year, tc.month, tc.day)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("NewDate(%d, %d, %d): unexpected error: %v", tc.year, tc.month, tc.day, err)
			}
		})
	}
}

func TestEpochDays_KnownValues(t *testing.T) {
	cases := []struct {
		date Date
		want int64
	}{
		{MustDate(1970, 1, 1), 0},
		{MustDate(1970, 1, 2), 1},
		{MustDate(1969, 12, 31), -1},
		{MustDate(2000, 3, 1), 11017},
		{MustDate(2023, 4, 1), 19448},
	}

	for _, tc := range cases {
		if got := tc.date.EpochDays(); got != tc.want {
			t.Errorf("%s.EpochDays() = %d, want %d", tc.date, got, tc.want)
		}
	}
}

func TestEpochDays_RoundTripAcrossRange(t *testing.T) {
	// Sweep a spread of dates, including both boundaries and leap days.
	dates := []Date{
		MinDate,
		MustDate(4, 2, 29),
		MustDate(1582, 10, 15),
		MustDate(1900, 2, 28),
		MustDate(1970, 1, 1),
		MustDate(2000, 2, 29),
		MustDate(2024, 2, 29),
		MaxDate,
	}
	for _, d := range dates {
		got := DateFromEpochDays(d.EpochDays())
		if got != d {
			t.Errorf("round trip of %s produced %s", d, got)
		}
	}
}

func TestDate_Weekday(t *testing.T) {
	// 1970-01-01 was a Thursday, 2023-04-01 a Saturday.
	if got := MustDate(1970, 1, 1).Weekday(); got != 4 {
		t.Errorf("1970-01-01 weekday = %d, want 4", got)
	}
	if got := MustDate(2023, 4, 1).Weekday(); got != 6 {
		t.Errorf("2023-04-01 weekday = %d, want 6", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2023-04-01")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d != MustDate(2023, 4, 1) {
		t.Errorf("ParseDate returned %s", d)
	}

	for _, bad := range []string{"2023-13-01", "2023-02-30", "not-a-date", "2023/04/01", "2023-04"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q): expected error", bad)
		}
	}
}

func TestNewTimeOfDay_LeapSecondSentinel(t *testing.T) {
	if _, err := NewTimeOfDay(23, 59, 60, 0); err != nil {
		t.Errorf("second 60 should be accepted as leap sentinel: %v", err)
	}
	if _, err := NewTimeOfDay(23, 59, 61, 0); err == nil {
		t.Error("second 61 should be rejected")
	}
	if _, err := NewTimeOfDay(24, 0, 0, 0); err == nil {
		t.Error("hour 24 should be rejected")
	}

	// The sentinel shares second 59's instant bucket.
	leap := MustTimeOfDay(23, 59, 60, 0)
	if leap.SecondsOfDay() != MustTimeOfDay(23, 59, 59, 0).SecondsOfDay() {
		t.Error("leap second should map to second 59's bucket")
	}
}

func TestDateTime_UnixRoundTrip(t *testing.T) {
	cases := []DateTime{
		MustDateTime(1970, 1, 1, 0, 0, 0, 0),
		MustDateTime(2023, 4, 1, 0, 0, 0, 0),
		MustDateTime(1865, 7, 2, 12, 30, 45, 0),
		MustDateTime(9999, 12, 31, 23, 59, 59, 0),
		MustDateTime(1, 1, 1, 0, 0, 0, 0),
	}
	for _, dt := range cases {
		got := FromUnix(dt.Unix(), dt.Time.Nanosecond)
		if got != dt {
			t.Errorf("FromUnix(Unix(%s)) = %s", dt, got)
		}
	}

	// Concrete anchor: 2023-04-01T00:00:00 is 19448 days after the epoch.
	if got := MustDateTime(2023, 4, 1, 0, 0, 0, 0).Unix(); got != 19448*86400 {
		t.Errorf("2023-04-01T00:00:00 Unix = %d, want %d", got, 19448*86400)
	}
}

func TestDateTime_AddSecondsNormalizes(t *testing.T) {
	dt := MustDateTime(2023, 3, 31, 23, 30, 0, 0)
	got := dt.AddSeconds(3600)
	want := MustDateTime(2023, 4, 1, 0, 30, 0, 0)
	if got != want {
		t.Errorf("AddSeconds(3600) = %s, want %s", got, want)
	}

	got = dt.AddSeconds(-86400)
	want = MustDateTime(2023, 3, 30, 23, 30, 0, 0)
	if got != want {
		t.Errorf("AddSeconds(-86400) = %s, want %s", got, want)
	}
}

func TestParseDateTime(t *testing.T) {
	cases := []struct {
		in   string
		want DateTime
	}{
		{"2023-04-01T02:30:00", MustDateTime(2023, 4, 1, 2, 30, 0, 0)},
		{"2023-04-01 02:30", MustDateTime(2023, 4, 1, 2, 30, 0, 0)},
		{"2023-04-01", MustDateTime(2023, 4, 1, 0, 0, 0, 0)},
	}
	for _, tc := range cases {
		got, err := ParseDateTime(tc.in)
		if err != nil {
			t.Errorf("ParseDateTime(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDateTime(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}

	if _, err := ParseDateTime("2023-04-01T25:00"); err == nil {
		t.Error("expected error for hour 25")
	}
}

func TestFixedOffset(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
		wantErr bool
	}{
		{0, "Z", false},
		{3600, "+01:00", false},
		{-18000, "-05:00", false},
		{19800, "+05:30", false},
		{-4 * 3600, "-04:00", false},
		{20700, "+05:45", false},
		{1, "+00:00:01", false},
		{86400, "", true},
		{-86400, "", true},
	}
	for _, tc := range cases {
		o, err := NewFixedOffset(tc.seconds)
		if tc.wantErr {
			if err == nil {
				t.Errorf("NewFixedOffset(%d): expected error", tc.seconds)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewFixedOffset(%d): %v", tc.seconds, err)
			continue
		}
		if o.String() != tc.want {
			t.Errorf("offset %d formats as %q, want %q", tc.seconds, o, tc.want)
		}
		if o.Seconds() != tc.seconds {
			t.Errorf("offset %d Seconds() = %d", tc.seconds, o.Seconds())
		}
	}
}
