package animation

// Debouncer coalesces repeated Schedule calls into one callback on the next
// frame. Each Schedule cancels the callback it previously requested, so only
// the last request in a burst survives.
type Debouncer struct {
	frames  FrameScheduler
	fn      func()
	pending FrameID
}

// NewDebouncer returns a debouncer that runs fn through frames. A nil
// scheduler uses [DefaultFrames].
func NewDebouncer(frames FrameScheduler, fn func()) *Debouncer {
	if frames == nil {
		frames = DefaultFrames
	}
	return &Debouncer{frames: frames, fn: fn}
}

// Schedule replaces any pending callback with a new one.
func (d *Debouncer) Schedule() {
	d.frames.CancelFrame(d.pending)
	var id FrameID
	id = d.frames.RequestFrame(func() {
		if d.pending == id {
			d.pending = 0
		}
		if d.fn != nil {
			d.fn()
		}
	})
	d.pending = id
}

// Pending reports whether a callback is waiting to run.
func (d *Debouncer) Pending() bool {
	return d.pending != 0
}

// Cancel drops the pending callback, if any.
func (d *Debouncer) Cancel() {
	d.frames.CancelFrame(d.pending)
	d.pending = 0
}
