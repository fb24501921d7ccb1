package animation

import "sync"

// FrameID identifies a callback requested with RequestFrame. The zero value
// never identifies a pending callback.
type FrameID uint64

// FrameScheduler requests one-shot callbacks for the next frame.
type FrameScheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// DefaultFrames is the queue flushed by [StepTickers].
var DefaultFrames = NewFrameQueue()

// FrameQueue is a FrameScheduler whose callbacks run when Flush is called.
// Callbacks requested while a flush is running are deferred to the next one.
type FrameQueue struct {
	mu      sync.Mutex
	nextID  FrameID
	order   []FrameID
	pending map[FrameID]func()
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: make(map[FrameID]func())}
}

// RequestFrame schedules fn for the next flush.
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.nextID++
	id := q.nextID
	q.pending[id] = fn
	q.order = append(q.order, id)
	return id
}

// CancelFrame drops a pending callback. Unknown or already-run ids are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	if id == 0 {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.pending, id)
}

// Pending returns the number of callbacks waiting for the next flush.
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Flush runs every callback that was pending when Flush was called, in
// request order.
func (q *FrameQueue) Flush() {
	q.mu.Lock()
	order := q.order
	q.order = nil
	q.mu.Unlock()

	for _, id := range order {
		q.mu.Lock()
		fn, ok := q.pending[id]
		delete(q.pending, id)
		q.mu.Unlock()
		if ok && fn != nil {
			fn()
		}
	}
}
