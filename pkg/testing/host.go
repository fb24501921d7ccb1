package testing

import (
	"sync"

	"github.com/go-drift/reveal/pkg/geometry"
	"github.com/go-drift/reveal/pkg/mask"
)

// FakeHost is a mask.Host whose container and events are controlled by
// the test. Observers fire synchronously from the methods that simulate
// their events.
type FakeHost struct {
	mu        sync.Mutex
	rect      geometry.Rect
	nextID    int
	resize    map[int]func()
	mutations map[int]func()
	document  map[int]func(x, y float64)
	measures  int
}

// NewFakeHost returns a host whose container occupies rect.
func NewFakeHost(rect geometry.Rect) *FakeHost {
	return &FakeHost{
		rect:      rect,
		resize:    make(map[int]func()),
		mutations: make(map[int]func()),
		document:  make(map[int]func(x, y float64)),
	}
}

// Bounds implements mask.Host.
func (h *FakeHost) Bounds() geometry.Rect {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.measures++
	return h.rect
}

// Measures returns how many times Bounds has been called.
func (h *FakeHost) Measures() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.measures
}

// ObserveResize implements mask.Host.
func (h *FakeHost) ObserveResize(fn func()) mask.Subscription {
	return subscribe(h, h.resize, fn)
}

// ObserveMutations implements mask.Host.
func (h *FakeHost) ObserveMutations(fn func()) mask.Subscription {
	return subscribe(h, h.mutations, fn)
}

// ListenDocumentPointer implements mask.Host.
func (h *FakeHost) ListenDocumentPointer(fn func(x, y float64)) mask.Subscription {
	return subscribe(h, h.document, fn)
}

func subscribe[F any](h *FakeHost, set map[int]F, fn F) mask.Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	set[id] = fn
	var once sync.Once
	return mask.SubscriptionFunc(func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(set, id)
		})
	})
}

// SetRect moves or resizes the container without notifying observers.
func (h *FakeHost) SetRect(rect geometry.Rect) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rect = rect
}

// Resize changes the container size, keeping its origin, and notifies
// resize observers.
func (h *FakeHost) Resize(width, height float64) {
	h.mu.Lock()
	h.rect = geometry.RectFromLTWH(h.rect.Left, h.rect.Top, width, height)
	fns := collect(h.resize)
	h.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// MutateChildren notifies mutation observers.
func (h *FakeHost) MutateChildren() {
	h.mu.Lock()
	fns := collect(h.mutations)
	h.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// MoveDocumentPointer notifies document pointer listeners.
func (h *FakeHost) MoveDocumentPointer(clientX, clientY float64) {
	h.mu.Lock()
	fns := collect(h.document)
	h.mu.Unlock()
	for _, fn := range fns {
		fn(clientX, clientY)
	}
}

// LiveSubscriptions returns the number of observers and listeners that
// have not been cancelled.
func (h *FakeHost) LiveSubscriptions() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.resize) + len(h.mutations) + len(h.document)
}

// DocumentListeners returns the number of live document pointer listeners.
func (h *FakeHost) DocumentListeners() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.document)
}

func collect[F any](set map[int]F) []F {
	out := make([]F, 0, len(set))
	for _, fn := range set {
		out = append(out, fn)
	}
	return out
}
