package testing

import (
	"testing"

	"github.com/go-drift/reveal/pkg/animation"
	"github.com/go-drift/reveal/pkg/geometry"
	"github.com/go-drift/reveal/pkg/mask"
)

// MaskTester drives a mask.Engine against a FakeHost with a fake clock and
// a private frame queue.
type MaskTester struct {
	engine    *mask.Engine
	host      *FakeHost
	frames    *animation.FrameQueue
	clock     *FakeClock
	prevClock animation.Clock
}

// NewMaskTester creates a tester whose container occupies rect. Call
// Cleanup when done, or use NewMaskTesterWithT instead.
func NewMaskTester(cfg mask.Config, rect geometry.Rect) *MaskTester {
	clk := NewFakeClock()
	t := &MaskTester{
		host:   NewFakeHost(rect),
		frames: animation.NewFrameQueue(),
		clock:  clk,
	}
	t.prevClock = animation.SetClock(clk)
	t.engine = mask.New(cfg, t.host, mask.WithFrames(t.frames))
	return t
}

// NewMaskTesterWithT creates a tester that cleans up via t.Cleanup().
func NewMaskTesterWithT(t *testing.T, cfg mask.Config, rect geometry.Rect) *MaskTester {
	tester := NewMaskTester(cfg, rect)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the engine and restores the animation clock.
func (t *MaskTester) Cleanup() {
	t.engine.Unmount()
	animation.SetClock(t.prevClock)
}

// Engine returns the engine under test.
func (t *MaskTester) Engine() *mask.Engine { return t.engine }

// Host returns the fake host.
func (t *MaskTester) Host() *FakeHost { return t.host }

// Clock returns the fake clock.
func (t *MaskTester) Clock() *FakeClock { return t.clock }

// Frames returns the tester's frame queue.
func (t *MaskTester) Frames() *animation.FrameQueue { return t.frames }

// Mount mounts the engine.
func (t *MaskTester) Mount() { t.engine.Mount() }

// Unmount unmounts the engine.
func (t *MaskTester) Unmount() { t.engine.Unmount() }

// Vars returns the engine's current output.
func (t *MaskTester) Vars() mask.Vars { return t.engine.Vars() }

// Enter simulates the pointer entering the container.
func (t *MaskTester) Enter() { t.engine.PointerEnter() }

// Leave simulates the pointer leaving the container.
func (t *MaskTester) Leave() { t.engine.PointerLeave() }

// Focus simulates the container gaining focus.
func (t *MaskTester) Focus() { t.engine.Focus() }

// Blur simulates the container losing focus.
func (t *MaskTester) Blur() { t.engine.Blur() }

// MoveTo simulates a pointer move inside the container at container-local
// coordinates.
func (t *MaskTester) MoveTo(x, y float64) {
	r := t.host.Bounds()
	t.engine.PointerMove(r.Left+x, r.Top+y)
}

// MoveClient simulates a pointer move inside the container at client
// coordinates.
func (t *MaskTester) MoveClient(clientX, clientY float64) {
	t.engine.PointerMove(clientX, clientY)
}

// Pump runs n frames: each advances the clock by FrameInterval, steps the
// global tickers and flushes the tester's frame queue.
func (t *MaskTester) Pump(n int) {
	for range n {
		t.clock.Tick()
		animation.StepTickers()
		t.frames.Flush()
	}
}

// PumpUntilSettled pumps until the smoothed position is within tolerance
// of the target or maxFrames have run, and reports whether it settled.
func (t *MaskTester) PumpUntilSettled(tolerance float64, maxFrames int) bool {
	for range maxFrames {
		if settled(t.engine.Smoothed(), t.engine.Target(), tolerance) {
			return true
		}
		t.Pump(1)
	}
	return settled(t.engine.Smoothed(), t.engine.Target(), tolerance)
}

func settled(a, b geometry.Offset, tolerance float64) bool {
	d := a.Sub(b)
	return d.X*d.X+d.Y*d.Y <= tolerance*tolerance
}
