// Package tztable models the transition rule table the resolver consumes:
// an ordered list of instants at which the UTC offset in force changes,
// plus the set of zones (offset, name, DST flag) those transitions select.
//
// Tables are immutable once built. The resolver and the TUI only read
// them, so a *Table may be shared freely across goroutines; refreshing a
// table means building a new one and swapping the pointer, never mutating
// in place.
package tztable

import (
	"fmt"
	"math"

	"github.com/julianstephens/zoneline/internal/civil"
)

// Zone is a single named offset regime (e.g. CET, CEST).
type Zone struct {
	Name          string `json:"name"`
	OffsetSeconds int    `json:"offset_seconds"` // seconds east of UTC
	IsDST         bool   `json:"is_dst"`
}

// Transition marks the instant a new zone takes effect.
type Transition struct {
	When      int64 `json:"when"` // seconds since the Unix epoch
	ZoneIndex int   `json:"zone_index"`
}

// Table is an ordered set of offset-validity intervals. Before the first
// transition InitialZone applies; at and after Transitions[i].When the
// zone at Transitions[i].ZoneIndex applies, until the next transition.
type Table struct {
	Name        string       `json:"name"`
	Zones       []Zone       `json:"zones"`
	InitialZone int          `json:"initial_zone"`
	Transitions []Transition `json:"transitions,omitempty"`
}

// New builds a validated Table. Transitions must be strictly increasing
// in time and every index (including InitialZone) must name an existing
// zone with an in-range offset.
func New(name string, zones []Zone, initialZone int, transitions []Transition) (*Table, error) {
	if len(zones) == 0 {
		return nil, fmt.Errorf("table %q has no zones", name)
	}
	for i, z := range zones {
		if z.OffsetSeconds <= -civil.MaxOffsetSeconds || z.OffsetSeconds >= civil.MaxOffsetSeconds {
			return nil, fmt.Errorf("table %q zone %d (%s): offset %d out of range", name, i, z.Name, z.OffsetSeconds)
		}
	}
	if initialZone < 0 || initialZone >= len(zones) {
		return nil, fmt.Errorf("table %q: initial zone index %d out of range", name, initialZone)
	}
	var prev int64 = math.MinInt64
	for i, tr := range transitions {
		if tr.ZoneIndex < 0 || tr.ZoneIndex >= len(zones) {
			return nil, fmt.Errorf("table %q transition %d: zone index %d out of range", name, i, tr.ZoneIndex)
		}
		if i > 0 && tr.When <= prev {
			return nil, fmt.Errorf("table %q transition %d: instant %d not after %d", name, i, tr.When, prev)
		}
		prev = tr.When
	}
	return &Table{Name: name, Zones: zones, InitialZone: initialZone, Transitions: transitions}, nil
}

// Fixed returns the degenerate single-offset table for which every
// resolution collapses to Single.
func Fixed(name string, offsetSeconds int) (*Table, error) {
	return New(name, []Zone{{Name: name, OffsetSeconds: offsetSeconds}}, 0, nil)
}

// UTC returns the zero-offset fixed table.
func UTC() *Table {
	t, err := Fixed("UTC", 0)
	if err != nil {
		panic(err) // offset 0 is always valid
	}
	return t
}

// IsFixed reports whether the table never changes offset.
func (t *Table) IsFixed() bool {
	return len(t.Transitions) == 0
}

// Lookup returns the zone in effect at the given UTC instant together
// with the instant bounds [start, end) of its validity interval. Open
// ends are reported as math.MinInt64 / math.MaxInt64.
func (t *Table) Lookup(unix int64) (Zone, int64, int64) {
	if len(t.Transitions) == 0 || unix < t.Transitions[0].When {
		end := int64(math.MaxInt64)
		if len(t.Transitions) > 0 {
			end = t.Transitions[0].When
		}
		return t.Zones[t.InitialZone], math.MinInt64, end
	}

	// Binary search for the last transition at or before unix.
	lo, hi := 0, len(t.Transitions)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if t.Transitions[mid].When <= unix {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	start := t.Transitions[lo].When
	end := int64(math.MaxInt64)
	if lo+1 < len(t.Transitions) {
		end = t.Transitions[lo+1].When
	}
	return t.Zones[t.Transitions[lo].ZoneIndex], start, end
}

// OffsetsInWindow returns the distinct offsets in effect at any point of
// the closed instant window [lo, hi], in interval order. The resolver
// uses this to gather candidate offsets for a naive local time.
func (t *Table) OffsetsInWindow(lo, hi int64) []int {
	var offsets []int
	seen := make(map[int]bool)
	cur := lo
	for {
		z, _, end := t.Lookup(cur)
		if !seen[z.OffsetSeconds] {
			seen[z.OffsetSeconds] = true
			offsets = append(offsets, z.OffsetSeconds)
		}
		if end == math.MaxInt64 || end > hi {
			return offsets
		}
		cur = end
	}
}
