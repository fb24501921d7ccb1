package testing

import (
	"sync"
	"time"
)

// FrameInterval is the time one frame advances the clock by.
const FrameInterval = 16 * time.Millisecond

// FakeClock is an animation clock that only moves when told to. It also
// counts the frames it has been ticked through. Safe for concurrent use.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	frames int
}

// NewFakeClock returns a clock at a fixed epoch with no frames elapsed.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d without counting a frame.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Tick advances the clock by one FrameInterval and counts a frame.
func (c *FakeClock) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(FrameInterval)
	c.frames++
}

// Frames returns the number of Tick calls so far.
func (c *FakeClock) Frames() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames
}
