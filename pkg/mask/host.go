package mask

import "github.com/go-drift/reveal/pkg/geometry"

// Subscription is an active registration with a Host. Cancel must be safe
// to call more than once.
type Subscription interface {
	Cancel()
}

// SubscriptionFunc adapts a function to Subscription.
type SubscriptionFunc func()

// Cancel calls f.
func (f SubscriptionFunc) Cancel() {
	if f != nil {
		f()
	}
}

// Host is the environment a mask lives in: it measures the container and
// delivers layout and document-level pointer events.
type Host interface {
	// Bounds returns the container rectangle in client coordinates. An
	// unmounted container reports the zero Rect.
	Bounds() geometry.Rect
	// ObserveResize calls fn whenever the container size changes.
	ObserveResize(fn func()) Subscription
	// ObserveMutations calls fn whenever the container's children change.
	ObserveMutations(fn func()) Subscription
	// ListenDocumentPointer calls fn with client coordinates for every
	// pointer move anywhere in the document.
	ListenDocumentPointer(fn func(clientX, clientY float64)) Subscription
}

// StaticHost is a Host with fixed bounds that never emits events.
type StaticHost struct {
	Rect geometry.Rect
}

// Bounds returns the fixed rectangle.
func (h StaticHost) Bounds() geometry.Rect { return h.Rect }

// ObserveResize never fires.
func (StaticHost) ObserveResize(func()) Subscription { return SubscriptionFunc(nil) }

// ObserveMutations never fires.
func (StaticHost) ObserveMutations(func()) Subscription { return SubscriptionFunc(nil) }

// ListenDocumentPointer never fires.
func (StaticHost) ListenDocumentPointer(func(float64, float64)) Subscription {
	return SubscriptionFunc(nil)
}
