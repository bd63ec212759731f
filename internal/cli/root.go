package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/julianstephens/zoneline/internal/civil"
	"github.com/julianstephens/zoneline/internal/constants"
	"github.com/julianstephens/zoneline/internal/models"
	"github.com/julianstephens/zoneline/internal/resolve"
	"github.com/julianstephens/zoneline/internal/storage"
	"github.com/julianstephens/zoneline/internal/tztable"
)

type Context struct {
	Store storage.Provider
	Clock resolve.ClockSource
}

// ResolverFor builds a resolver for the named zone. An empty name falls
// back to the stored default zone; "UTC" works without any stored record.
func (c *Context) ResolverFor(name string) (*resolve.Resolver, error) {
	if name == "" {
		settings, err := c.Store.GetSettings()
		if err != nil {
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}
		name = settings.DefaultZone
	}
	if strings.EqualFold(name, "UTC") {
		return resolve.UTCResolver(), nil
	}

	record, err := c.Store.GetZone(name)
	if err != nil {
		return nil, fmt.Errorf("zone %q is not in the store, import it with 'zoneline zone import %s'", name, name)
	}
	return resolve.New(record.Table), nil
}

// NewZoneRecord wraps a table as a fresh stored record.
func NewZoneRecord(name string, source models.ZoneSource, table *tztable.Table) models.ZoneRecord {
	return models.ZoneRecord{
		ID:        uuid.NewString(),
		Name:      name,
		Source:    source,
		Table:     table,
		CreatedAt: time.Now().UTC().Format(constants.TimestampFormat),
	}
}

// ParseOffset parses a human offset spec: "+02:00", "-05:30", "Z",
// "+02:00:30", or a bare seconds count like "7200".
func ParseOffset(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty offset")
	}
	if strings.EqualFold(s, "Z") {
		return 0, nil
	}
	if !strings.Contains(s, ":") {
		seconds, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid offset %q: %w", s, err)
		}
		return seconds, nil
	}

	sign := 1
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		sign = -1
		s = s[1:]
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid offset %q, want ±HH:MM or ±HH:MM:SS", s)
	}
	total := 0
	for i, unit := range []int{3600, 60, 1} {
		if i >= len(parts) {
			break
		}
		v, err := strconv.Atoi(parts[i])
		if err != nil || v < 0 {
			return 0, fmt.Errorf("invalid offset component %q", parts[i])
		}
		total += v * unit
	}
	return sign * total, nil
}

// FormatResult renders a resolution outcome for terminal output, keeping
// all three cases visually distinct.
func FormatResult(res resolve.Result) string {
	switch res.Kind() {
	case resolve.KindSingle:
		single, _ := res.Single()
		return fmt.Sprintf("single    %s (UTC %s)", single, single.UTC())
	case resolve.KindAmbiguous:
		min, _ := res.Earliest()
		max, _ := res.Latest()
		return fmt.Sprintf("ambiguous earliest %s (UTC %s)\n          latest   %s (UTC %s)",
			min, min.UTC(), max, max.UTC())
	default:
		return "none      (this local time is skipped by a forward transition)"
	}
}

// FormatTransition renders one table transition as a line.
func FormatTransition(tab *tztable.Table, tr tztable.Transition) string {
	z := tab.Zones[tr.ZoneIndex]
	dst := ""
	if z.IsDST {
		dst = " (DST)"
	}
	when := time.Unix(tr.When, 0).UTC().Format(constants.TimestampFormat)
	off := fmt.Sprintf("%ds", z.OffsetSeconds)
	if o, err := civil.NewFixedOffset(z.OffsetSeconds); err == nil {
		off = o.String()
	}
	return fmt.Sprintf("%s  ->  %-6s %s%s", when, z.Name, off, dst)
}
