// Package animation provides the frame-driven scheduling primitives used by
// the mask engine.
//
// # Core Components
//
//   - [Ticker]: a repeating per-frame callback with an explicit Start/Stop
//     handle. The mask engine's easing loop and presence fade are Tickers.
//
//   - [FrameQueue]: one-shot callbacks requested for the next frame and
//     cancellable until they run, the equivalent of requestAnimationFrame.
//
//   - [Debouncer]: coalesces bursts of events into a single pending frame
//     callback. A new request replaces the pending one.
//
//   - [Fade]: a duration-based tween between two scalar values.
//
// Nothing in this package owns a goroutine or a timer. The host drives time
// by calling [StepTickers] once per rendered frame; tests call it directly
// to advance animations deterministically.
package animation

import (
	"slices"
	"sync"
	"time"
)

// registry holds the running tickers in start order, so every frame steps
// them in the same order.
type registry struct {
	mu      sync.Mutex
	running []*Ticker
}

var tickers registry

func (r *registry) add(t *Ticker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.running = append(r.running, t)
}

func (r *registry) remove(t *Ticker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := slices.Index(r.running, t); i >= 0 {
		r.running = slices.Delete(r.running, i, i+1)
	}
}

func (r *registry) snapshot() []*Ticker {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.running)
}

// Ticker calls a callback on each frame while running. The callback gets
// the time elapsed since Start.
type Ticker struct {
	callback func(elapsed time.Duration)
	running  bool
	started  time.Time
}

// NewTicker returns a stopped ticker for callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback}
}

// Start runs the ticker from the next frame on. Starting a running ticker
// keeps its original start time.
func (t *Ticker) Start() {
	if t.running {
		return
	}
	t.running = true
	t.started = Now()
	tickers.add(t)
}

// Stop removes the ticker from the frame loop. A stopped ticker is never
// called again until it is restarted, even if a frame is already in
// progress.
func (t *Ticker) Stop() {
	if !t.running {
		return
	}
	t.running = false
	tickers.remove(t)
}

// IsActive reports whether the ticker is running.
func (t *Ticker) IsActive() bool {
	return t.running
}

// Elapsed returns the time since Start, or 0 when stopped.
func (t *Ticker) Elapsed() time.Duration {
	if !t.running {
		return 0
	}
	return Now().Sub(t.started)
}

// StepTickers runs one frame: every running ticker in start order, then
// the callbacks queued on [DefaultFrames].
func StepTickers() {
	for _, t := range tickers.snapshot() {
		// A callback earlier in this frame may have stopped it.
		if t.running && t.callback != nil {
			t.callback(Now().Sub(t.started))
		}
	}
	DefaultFrames.Flush()
}

// RunningTickers returns the number of running tickers.
func RunningTickers() int {
	tickers.mu.Lock()
	defer tickers.mu.Unlock()
	return len(tickers.running)
}
