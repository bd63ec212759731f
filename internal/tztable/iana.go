package tztable

import (
	"fmt"
	"strings"
	"time"
)

// Default extraction window when importing an IANA zone. Wide enough to
// cover historical transitions and the projected rules the tzdata ships.
const (
	DefaultFromYear = 1900
	DefaultToYear   = 2100
)

// FromLocation extracts a Table from a pre-parsed *time.Location by
// walking its zone intervals with ZoneBounds, covering the calendar years
// [fromYear, toYear]. The location is the opaque, already-parsed rule
// source; no tzdata files are read here.
func FromLocation(name string, loc *time.Location, fromYear, toYear int) (*Table, error) {
	if loc == nil {
		return nil, fmt.Errorf("nil location for %q", name)
	}
	if fromYear > toYear {
		return nil, fmt.Errorf("extraction window [%d, %d] is inverted", fromYear, toYear)
	}

	start := time.Date(fromYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	limit := time.Date(toYear+1, time.January, 1, 0, 0, 0, 0, time.UTC)

	var zones []Zone
	index := make(map[Zone]int)
	intern := func(z Zone) int {
		if i, ok := index[z]; ok {
			return i
		}
		zones = append(zones, z)
		index[z] = len(zones) - 1
		return len(zones) - 1
	}

	initial := intern(zoneAt(start, loc))

	var transitions []Transition
	cur := start
	for {
		_, end := cur.In(loc).ZoneBounds()
		if end.IsZero() || !end.Before(limit) {
			break
		}
		transitions = append(transitions, Transition{
			When:      end.Unix(),
			ZoneIndex: intern(zoneAt(end, loc)),
		})
		cur = end
	}

	return New(name, zones, initial, transitions)
}

func zoneAt(t time.Time, loc *time.Location) Zone {
	local := t.In(loc)
	name, offset := local.Zone()
	return Zone{Name: name, OffsetSeconds: offset, IsDST: local.IsDST()}
}

// LoadIANA resolves an IANA zone name via the process's time zone
// database and extracts its transition table. An empty name or "UTC"
// yields the fixed zero-offset table.
func LoadIANA(name string, fromYear, toYear int) (*Table, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || strings.EqualFold(trimmed, "UTC") {
		return UTC(), nil
	}
	loc, err := time.LoadLocation(trimmed)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", trimmed, err)
	}
	return FromLocation(trimmed, loc, fromYear, toYear)
}
