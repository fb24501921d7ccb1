package animation

import (
	"sync/atomic"
	"time"
)

// Clock is the time source for tickers and fades.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock. It is installed by default.
var SystemClock Clock = ClockFunc(time.Now)

type clockBox struct{ c Clock }

var clock atomic.Pointer[clockBox]

func init() {
	clock.Store(&clockBox{c: SystemClock})
}

// SetClock installs c and returns the clock it replaces, so callers can
// restore it when done. Nil restores SystemClock.
func SetClock(c Clock) Clock {
	if c == nil {
		c = SystemClock
	}
	return clock.Swap(&clockBox{c: c}).c
}

// Now reads the installed clock.
func Now() time.Time { return clock.Load().c.Now() }
