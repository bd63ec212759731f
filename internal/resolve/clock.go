package resolve

import (
	"time"

	"github.com/julianstephens/zoneline/internal/civil"
	"github.com/julianstephens/zoneline/internal/tztable"
)

// ClockSource is the capability boundary between the portable resolution
// logic and platform plumbing: something that knows the current UTC
// instant and the rule table in force. Tests substitute a fixed source.
type ClockSource interface {
	NowUTC() civil.DateTime
	Table() *tztable.Table
}

// SystemClock reads the wall clock from the OS and carries an injected
// table. It deliberately does not consult the process-local time zone;
// the table decides locality.
type SystemClock struct {
	table *tztable.Table
}

// NewSystemClock builds a SystemClock over the given table.
func NewSystemClock(table *tztable.Table) *SystemClock {
	return &SystemClock{table: table}
}

func (c *SystemClock) NowUTC() civil.DateTime {
	now := time.Now().UTC()
	return civil.FromUnix(now.Unix(), now.Nanosecond())
}

func (c *SystemClock) Table() *tztable.Table {
	return c.table
}

// FixedClock is a ClockSource pinned to one instant, for tests and
// reproducible output.
type FixedClock struct {
	Now civil.DateTime
	Tab *tztable.Table
}

func (c FixedClock) NowUTC() civil.DateTime { return c.Now }
func (c FixedClock) Table() *tztable.Table  { return c.Tab }
