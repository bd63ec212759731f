package tztable

import (
	"encoding/json"
	"math"
	"testing"
	"time"
)

// newTestTable builds a two-zone table with one spring-forward and one
// fall-back transition, shaped like a single DST year:
//
//	... STD(+1h) ... t1 ... DST(+2h) ... t2 ... STD(+1h) ...
func newTestTable(t *testing.T, t1, t2 int64) *Table {
	t.Helper()
	tab, err := New("Test/Zone",
		[]Zone{
			{Name: "STD", OffsetSeconds: 3600},
			{Name: "DST", OffsetSeconds: 7200, IsDST: true},
		},
		0,
		[]Transition{
			{When: t1, ZoneIndex: 1},
			{When: t2, ZoneIndex: 0},
		},
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tab
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name        string
		zones       []Zone
		initial     int
		transitions []Transition
		wantErr     bool
	}{
		{"no zones", nil, 0, nil, true},
		{"initial out of range", []Zone{{Name: "A"}}, 1, nil, true},
		{"offset too large", []Zone{{Name: "A", OffsetSeconds: 86400}}, 0, nil, true},
		{"transition index out of range", []Zone{{Name: "A"}}, 0, []Transition{{When: 0, ZoneIndex: 3}}, true},
		{"non-increasing transitions", []Zone{{Name: "A"}}, 0, []Transition{{When: 10, ZoneIndex: 0}, {When: 10, ZoneIndex: 0}}, true},
		{"valid fixed", []Zone{{Name: "A", OffsetSeconds: -18000}}, 0, nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New("t", tc.zones, tc.initial, tc.transitions)
			if tc.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLookup_IntervalBounds(t *testing.T) {
	tab := newTestTable(t, 1000, 2000)

	cases := []struct {
		unix               int64
		wantName           string
		wantStart, wantEnd int64
	}{
		{-50, "STD", math.MinInt64, 1000},
		{999, "STD", math.MinInt64, 1000},
		{1000, "DST", 1000, 2000},
		{1999, "DST", 1000, 2000},
		{2000, "STD", 2000, math.MaxInt64},
		{1 << 40, "STD", 2000, math.MaxInt64},
	}
	for _, tc := range cases {
		z, start, end := tab.Lookup(tc.unix)
		if z.Name != tc.wantName || start != tc.wantStart || end != tc.wantEnd {
			t.Errorf("Lookup(%d) = (%s, %d, %d), want (%s, %d, %d)",
				tc.unix, z.Name, start, end, tc.wantName, tc.wantStart, tc.wantEnd)
		}
	}
}

func TestLookup_FixedTable(t *testing.T) {
	tab, err := Fixed("UTC-5", -18000)
	if err != nil {
		t.Fatalf("Fixed failed: %v", err)
	}
	z, start, end := tab.Lookup(0)
	if z.OffsetSeconds != -18000 || start != math.MinInt64 || end != math.MaxInt64 {
		t.Errorf("fixed lookup = (%d, %d, %d)", z.OffsetSeconds, start, end)
	}
	if !tab.IsFixed() {
		t.Error("IsFixed should be true")
	}
}

func TestOffsetsInWindow(t *testing.T) {
	tab := newTestTable(t, 1000, 2000)

	cases := []struct {
		lo, hi int64
		want   []int
	}{
		{0, 500, []int{3600}},
		{500, 1500, []int{3600, 7200}},
		{1500, 1600, []int{7200}},
		{0, 5000, []int{3600, 7200}},
		{2500, 9000, []int{3600}},
	}
	for _, tc := range cases {
		got := tab.OffsetsInWindow(tc.lo, tc.hi)
		if len(got) != len(tc.want) {
			t.Errorf("OffsetsInWindow(%d, %d) = %v, want %v", tc.lo, tc.hi, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("OffsetsInWindow(%d, %d) = %v, want %v", tc.lo, tc.hi, got, tc.want)
				break
			}
		}
	}
}

func TestTable_JSONRoundTrip(t *testing.T) {
	tab := newTestTable(t, 1000, 2000)

	data, err := json.Marshal(tab)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var got Table
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if got.Name != tab.Name || len(got.Zones) != 2 || len(got.Transitions) != 2 {
		t.Errorf("round trip lost data: %+v", got)
	}
	if got.Zones[1] != tab.Zones[1] || got.Transitions[0] != tab.Transitions[0] {
		t.Errorf("round trip changed entries: %+v", got)
	}
}

func TestLoadIANA_UTCAndEmpty(t *testing.T) {
	for _, name := range []string{"", "UTC", "  utc  "} {
		tab, err := LoadIANA(name, DefaultFromYear, DefaultToYear)
		if err != nil {
			t.Fatalf("LoadIANA(%q) failed: %v", name, err)
		}
		if !tab.IsFixed() || tab.Zones[tab.InitialZone].OffsetSeconds != 0 {
			t.Errorf("LoadIANA(%q) did not return a fixed zero table", name)
		}
	}

	if _, err := LoadIANA("Not/AZone", DefaultFromYear, DefaultToYear); err == nil {
		t.Error("expected error for unknown zone name")
	}
}

func TestFromLocation_ExtractsDSTTransitions(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}

	tab, err := FromLocation("America/New_York", loc, 2023, 2023)
	if err != nil {
		t.Fatalf("FromLocation failed: %v", err)
	}

	// 2023 has exactly two transitions: spring forward in March, fall
	// back in November.
	if len(tab.Transitions) != 2 {
		t.Fatalf("expected 2 transitions for 2023, got %d", len(tab.Transitions))
	}

	spring := tab.Zones[tab.Transitions[0].ZoneIndex]
	fall := tab.Zones[tab.Transitions[1].ZoneIndex]
	if !spring.IsDST || spring.OffsetSeconds != -4*3600 {
		t.Errorf("first transition should enter EDT (-04:00), got %+v", spring)
	}
	if fall.IsDST || fall.OffsetSeconds != -5*3600 {
		t.Errorf("second transition should return to EST (-05:00), got %+v", fall)
	}

	// 2023-03-12 07:00 UTC is the documented spring-forward instant.
	want := time.Date(2023, time.March, 12, 7, 0, 0, 0, time.UTC).Unix()
	if tab.Transitions[0].When != want {
		t.Errorf("spring transition at %d, want %d", tab.Transitions[0].When, want)
	}
}
