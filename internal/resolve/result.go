// Package resolve maps naive civil timestamps to absolute instants and
// back against an immutable transition rule table.
//
// The mapping from local wall-clock time to UTC is not a function: around
// a backward transition one clock reading denotes two instants, and
// around a forward transition some readings denote none. Result encodes
// the three outcomes as a tagged union so every call site has to branch
// on all of them; collapsing Ambiguous to one instant (earliest or
// latest) is an explicit caller decision via the accessors, never a
// default taken here.
package resolve

import (
	"fmt"

	"github.com/julianstephens/zoneline/internal/civil"
)

// Kind tags the three resolution outcomes.
type Kind int

const (
	// KindNone: the naive time falls in a spring-forward gap and denotes
	// no instant.
	KindNone Kind = iota
	// KindSingle: exactly one offset is consistent with the rules.
	KindSingle
	// KindAmbiguous: a fall-back repeat; two offsets produce the same
	// clock reading.
	KindAmbiguous
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindSingle:
		return "single"
	case KindAmbiguous:
		return "ambiguous"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Resolved pairs a naive local time with the offset chosen for it. The
// pair pins down one absolute instant.
type Resolved struct {
	Local  civil.DateTime
	Offset civil.FixedOffset
}

// UTC returns the instant's UTC civil representation.
func (r Resolved) UTC() civil.DateTime {
	return r.Local.AddSeconds(-int64(r.Offset.Seconds()))
}

// Instant returns the absolute instant in seconds since the Unix epoch.
func (r Resolved) Instant() int64 {
	return r.Local.Unix() - int64(r.Offset.Seconds())
}

func (r Resolved) String() string {
	return fmt.Sprintf("%s%s", r.Local, r.Offset)
}

// Result is the three-way outcome of resolving a naive local time.
// The zero value is None.
type Result struct {
	kind     Kind
	earliest Resolved
	latest   Resolved
}

// None is the no-instant outcome.
func None() Result {
	return Result{kind: KindNone}
}

// Single wraps an unambiguous outcome.
func Single(r Resolved) Result {
	return Result{kind: KindSingle, earliest: r, latest: r}
}

// Ambiguous wraps a two-instant outcome. min must denote the earlier
// absolute instant; callers should go through Resolver, which orders the
// pair.
func Ambiguous(min, max Resolved) Result {
	return Result{kind: KindAmbiguous, earliest: min, latest: max}
}

// Kind returns the outcome tag.
func (r Result) Kind() Kind {
	return r.kind
}

// Single returns the resolution when it is unambiguous.
func (r Result) Single() (Resolved, bool) {
	if r.kind != KindSingle {
		return Resolved{}, false
	}
	return r.earliest, true
}

// Earliest returns the candidate with the earliest absolute instant:
// the Single value, or the min of an Ambiguous pair. This is the
// "prefer earliest" collapsing policy, chosen explicitly by the caller.
func (r Result) Earliest() (Resolved, bool) {
	if r.kind == KindNone {
		return Resolved{}, false
	}
	return r.earliest, true
}

// Latest is Earliest's counterpart for the "prefer latest" policy.
func (r Result) Latest() (Resolved, bool) {
	if r.kind == KindNone {
		return Resolved{}, false
	}
	return r.latest, true
}

func (r Result) String() string {
	switch r.kind {
	case KindSingle:
		return fmt.Sprintf("single(%s)", r.earliest)
	case KindAmbiguous:
		return fmt.Sprintf("ambiguous(%s, %s)", r.earliest, r.latest)
	default:
		return "none"
	}
}
