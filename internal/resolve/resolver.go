package resolve

import (
	"github.com/julianstephens/zoneline/internal/civil"
	"github.com/julianstephens/zoneline/internal/tztable"
)

// Resolver resolves naive civil timestamps against one transition rule
// table. The table is injected at construction and treated as read-only;
// the resolver itself holds no other state, so a single value is safe for
// concurrent use. Swap in a new Resolver to pick up refreshed rules.
type Resolver struct {
	table *tztable.Table
}

// New builds a Resolver over the given table.
func New(table *tztable.Table) *Resolver {
	return &Resolver{table: table}
}

// UTCResolver resolves against the fixed zero-offset table.
func UTCResolver() *Resolver {
	return New(tztable.UTC())
}

// Table returns the injected rule table.
func (r *Resolver) Table() *tztable.Table {
	return r.table
}

// ResolveLocal classifies a naive local wall-clock reading. An offset o
// is a valid candidate when subtracting it from the reading lands on a
// UTC instant at which o is actually in force. Zero candidates is a
// spring-forward gap, one is the common case, two is a fall-back repeat
// with the pair ordered by absolute instant.
func (r *Resolver) ResolveLocal(local civil.DateTime) Result {
	l := local.Unix()

	// Any valid offset lies within one MaxOffsetSeconds of the reading,
	// so only intervals overlapping that window can contribute.
	candidates := r.table.OffsetsInWindow(l-civil.MaxOffsetSeconds, l+civil.MaxOffsetSeconds)

	var hits []Resolved
	for _, off := range candidates {
		utc := l - int64(off)
		z, _, _ := r.table.Lookup(utc)
		if z.OffsetSeconds != off {
			continue
		}
		hits = append(hits, Resolved{Local: local, Offset: civil.MustFixedOffset(off)})
	}

	switch len(hits) {
	case 0:
		return None()
	case 1:
		return Single(hits[0])
	default:
		min, max := hits[0], hits[0]
		for _, h := range hits[1:] {
			if h.Instant() < min.Instant() {
				min = h
			}
			if h.Instant() > max.Instant() {
				max = h
			}
		}
		return Ambiguous(min, max)
	}
}

// ResolveUTC converts a naive timestamp known to be UTC into the local
// civil reading plus the offset in force. This direction is total: UTC is
// the canonical time line, so exactly one offset applies.
func (r *Resolver) ResolveUTC(utc civil.DateTime) (civil.DateTime, civil.FixedOffset) {
	z, _, _ := r.table.Lookup(utc.Unix())
	offset := civil.MustFixedOffset(z.OffsetSeconds)
	return utc.AddSeconds(int64(z.OffsetSeconds)), offset
}

// ResolveLocalDate resolves a date-only local value by anchoring it to
// midnight. The three-way semantics carry over unchanged: midnight itself
// can be skipped or repeated by a transition.
func (r *Resolver) ResolveLocalDate(d civil.Date) Result {
	return r.ResolveLocal(civil.DateTime{Date: d, Time: civil.Midnight})
}

// ResolveUTCDate converts a date-only UTC value anchored at midnight.
func (r *Resolver) ResolveUTCDate(d civil.Date) (civil.DateTime, civil.FixedOffset) {
	return r.ResolveUTC(civil.DateTime{Date: d, Time: civil.Midnight})
}
