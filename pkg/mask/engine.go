package mask

import (
	"log/slog"
	"time"

	"github.com/go-drift/reveal/internal/logging"
	"github.com/go-drift/reveal/pkg/animation"
	"github.com/go-drift/reveal/pkg/errors"
	"github.com/go-drift/reveal/pkg/geometry"
)

// Option configures an Engine.
type Option func(*Engine)

// WithFrames sets the scheduler used for debounced recentering. The
// default is [animation.DefaultFrames].
func WithFrames(frames animation.FrameScheduler) Option {
	return func(e *Engine) {
		if frames != nil {
			e.frames = frames
		}
	}
}

// WithLogger sets the logger. The default is the shared reveal logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// Engine holds the spatial and animation state of one mask instance.
//
// Positions are in pixels relative to the container's top-left corner.
// The target is the latest pointer (or static) position; the smoothed
// position trails it while the lerp loop runs. An Engine is owned by a
// single caller and is not safe for concurrent use.
//
// Call Mount once the container exists and Unmount when it goes away;
// Unmount releases the frame loop, pending recenters and every host
// subscription.
type Engine struct {
	cfg        Config
	host       Host
	frames     animation.FrameScheduler
	log        *slog.Logger
	activation *ActivationState

	mounted  bool
	bounds   geometry.Rect
	target   geometry.Offset
	smoothed geometry.Offset

	loop     *animation.Ticker
	recenter *animation.Debouncer

	fade        *animation.Fade
	fadeTicker  *animation.Ticker
	fadeElapsed time.Duration

	resizeSub   Subscription
	mutationSub Subscription
	documentSub Subscription

	listeners      map[int]func()
	nextListenerID int
}

// New creates an engine for cfg. A nil host behaves like a container that
// is never mounted: it measures as zero.
func New(cfg Config, host Host, opts ...Option) *Engine {
	reportInvalid(cfg)
	e := &Engine{
		cfg:       cfg.normalized(),
		host:      host,
		frames:    animation.DefaultFrames,
		log:       logging.Logger(),
		listeners: make(map[int]func()),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.activation = NewActivationState(e.cfg.Activation, e.cfg.Active, e.onActiveChange)
	e.loop = animation.NewTicker(func(time.Duration) { e.tick() })
	e.recenter = animation.NewDebouncer(e.frames, e.Recenter)
	e.fade = animation.NewFade(e.presenceTarget(), animation.EaseByName(e.cfg.FadeEase))
	e.fadeTicker = animation.NewTicker(e.fadeTick)
	return e
}

// Config returns the current configuration snapshot.
func (e *Engine) Config() Config {
	return e.cfg
}

// Mount measures the container, centers the mask and starts whatever
// observers, listeners and frame loop the configuration asks for.
func (e *Engine) Mount() {
	if e.mounted {
		return
	}
	e.mounted = true
	e.measure()
	e.resetPositions()
	e.syncSubscriptions()
	e.syncLoop()
	e.log.Debug("mask mounted",
		"width", e.bounds.Width(), "height", e.bounds.Height(),
		"variant", string(e.cfg.Variant), "activation", string(e.cfg.Activation))
	e.notifyListeners()
}

// Unmount stops the frame loop, drops any pending recenter and cancels all
// host subscriptions. It is safe to call more than once.
func (e *Engine) Unmount() {
	if !e.mounted {
		return
	}
	e.mounted = false
	e.loop.Stop()
	e.fadeTicker.Stop()
	e.recenter.Cancel()
	cancelSub(&e.resizeSub)
	cancelSub(&e.mutationSub)
	cancelSub(&e.documentSub)
	e.log.Debug("mask unmounted")
}

// Mounted reports whether the engine is between Mount and Unmount.
func (e *Engine) Mounted() bool {
	return e.mounted
}

// SetConfig replaces the configuration snapshot, as a rendering layer does
// on every render. Observers and listeners are added or removed to match
// the new flags, and switching activation mode resets the activation state.
func (e *Engine) SetConfig(cfg Config) {
	prev := e.cfg
	reportInvalid(cfg)
	e.cfg = cfg.normalized()

	e.activation.SetMode(e.cfg.Activation)
	e.activation.SetControlled(e.cfg.Active)

	if e.mounted && (prev.WithCursorMask != e.cfg.WithCursorMask ||
		(!e.cfg.WithCursorMask && (prev.X != e.cfg.X || prev.Y != e.cfg.Y))) {
		e.resetPositions()
	}
	if prev.FadeEase != e.cfg.FadeEase {
		e.fade = animation.NewFade(e.fade.Value(), animation.EaseByName(e.cfg.FadeEase))
	}
	e.syncSubscriptions()
	e.syncLoop()
	e.notifyListeners()
}

// AddListener registers fn to be called whenever the output may have
// changed. The returned function removes it.
func (e *Engine) AddListener(fn func()) func() {
	id := e.nextListenerID
	e.nextListenerID++
	e.listeners[id] = fn
	return func() {
		delete(e.listeners, id)
	}
}

func (e *Engine) notifyListeners() {
	for _, fn := range e.listeners {
		fn()
	}
}

// PointerEnter handles the pointer entering the container.
func (e *Engine) PointerEnter() {
	e.activation.PointerEnter()
}

// PointerLeave handles the pointer leaving the container.
func (e *Engine) PointerLeave() {
	e.activation.PointerLeave()
}

// Focus handles the container gaining focus.
func (e *Engine) Focus() {
	e.activation.Focus()
}

// Blur handles the container losing focus.
func (e *Engine) Blur() {
	e.activation.Blur()
}

// PointerMove handles a pointer move inside the container, in client
// coordinates. It is ignored when tracking is off, when the mask is
// inactive, and when document-level tracking supplies positions instead.
func (e *Engine) PointerMove(clientX, clientY float64) {
	if e.cfg.TrackPointerOnDocument {
		return
	}
	if !e.cfg.tracking() || !e.activation.Active() {
		return
	}
	e.updateFromClientPoint(clientX, clientY)
}

func (e *Engine) documentPointerMove(clientX, clientY float64) {
	if !e.cfg.tracking() || !e.activation.Active() {
		return
	}
	e.updateFromClientPoint(clientX, clientY)
}

// Recenter re-measures the container and moves both positions back to the
// resting point: the center when tracking, the static point otherwise.
func (e *Engine) Recenter() {
	e.measure()
	e.resetPositions()
	e.log.Debug("mask recentered", "x", e.target.X, "y", e.target.Y)
	e.notifyListeners()
}

// Remeasure refreshes the container bounds. If the container had no size
// before, the mask is centered now that its size is known.
func (e *Engine) Remeasure() {
	wasEmpty := e.bounds.IsEmpty()
	e.measure()
	if wasEmpty && !e.bounds.IsEmpty() {
		e.resetPositions()
	}
	e.notifyListeners()
}

// Active returns the effective activation state.
func (e *Engine) Active() bool {
	return e.activation.Active()
}

// Focusable reports whether the container should take focus by default,
// which is the case in focus activation mode.
func (e *Engine) Focusable() bool {
	return e.activation.Focusable()
}

// Target returns the latest raw position.
func (e *Engine) Target() geometry.Offset {
	return e.target
}

// Smoothed returns the rendered position.
func (e *Engine) Smoothed() geometry.Offset {
	return e.smoothed
}

// Bounds returns the last measured container rectangle.
func (e *Engine) Bounds() geometry.Rect {
	return e.bounds
}

// Animating reports whether the lerp loop is running.
func (e *Engine) Animating() bool {
	return e.loop.IsActive()
}

// Presence returns the eased activation value in [0, 1].
func (e *Engine) Presence() float64 {
	return e.fade.Value()
}

func (e *Engine) measure() {
	if e.host == nil {
		e.bounds = geometry.Rect{}
		return
	}
	e.bounds = e.host.Bounds()
}

// restingPoint is where both positions sit when nothing moves them.
func (e *Engine) restingPoint() geometry.Offset {
	if e.cfg.tracking() {
		return e.bounds.LocalCenter()
	}
	return e.staticPoint()
}

func (e *Engine) staticPoint() geometry.Offset {
	size := e.bounds.Size()
	return geometry.Offset{
		X: size.Width * e.cfg.X / 100,
		Y: size.Height * e.cfg.Y / 100,
	}
}

func (e *Engine) resetPositions() {
	p := e.restingPoint()
	e.target = p
	e.smoothed = p
}

func (e *Engine) updateFromClientPoint(clientX, clientY float64) {
	e.measure()
	next := geometry.Offset{
		X: clientX - e.bounds.Left + e.cfg.OffsetX,
		Y: clientY - e.bounds.Top + e.cfg.OffsetY,
	}

	if e.cfg.clampsPointer() {
		rx, ry := e.cfg.clampRadii()
		pad := e.cfg.ClampPadding
		size := e.bounds.Size()
		next.X = geometry.Clamp(next.X, rx+pad, size.Width-rx-pad)
		next.Y = geometry.Clamp(next.Y, ry+pad, size.Height-ry-pad)
	}

	e.target = next
	if e.cfg.Animation == AnimationNone {
		e.smoothed = next
	}
	e.notifyListeners()
}

// tick advances the smoothed position one frame toward the target.
func (e *Engine) tick() {
	if !e.wantsLoop() {
		e.loop.Stop()
		return
	}
	e.smoothed = animation.LerpOffset(e.smoothed, e.target, e.cfg.Easing)
	e.notifyListeners()
}

func (e *Engine) wantsLoop() bool {
	return e.mounted &&
		e.cfg.tracking() &&
		e.cfg.Animation == AnimationLerp &&
		e.activation.Active()
}

func (e *Engine) syncLoop() {
	if e.wantsLoop() {
		e.loop.Start()
	} else {
		e.loop.Stop()
	}
	e.syncFade()
}

func (e *Engine) presenceTarget() float64 {
	if e.activation.Active() {
		return 1
	}
	return 0
}

func (e *Engine) syncFade() {
	target := e.presenceTarget()
	if e.fade.Target() != target {
		e.fade.SetTarget(target, e.cfg.FadeDuration)
		e.fadeTicker.Stop()
	}
	if e.mounted && !e.fade.Settled() && !e.fadeTicker.IsActive() {
		e.fadeElapsed = 0
		e.fadeTicker.Start()
	}
}

func (e *Engine) fadeTick(elapsed time.Duration) {
	dt := elapsed - e.fadeElapsed
	e.fadeElapsed = elapsed
	if _, done := e.fade.Update(dt); done {
		e.fadeTicker.Stop()
	}
	e.notifyListeners()
}

func (e *Engine) onActiveChange(active bool) {
	e.log.Debug("mask activation changed", "active", active, "mode", string(e.cfg.Activation))
	if cb := e.cfg.OnActiveChange; cb != nil {
		func() {
			defer errors.Recover("mask.onActiveChange")
			cb(active)
		}()
	}
	e.syncLoop()
	e.notifyListeners()
}

func (e *Engine) syncSubscriptions() {
	if e.host == nil {
		return
	}

	if e.mounted && e.cfg.RecenterOnResize {
		if e.resizeSub == nil {
			e.resizeSub = orNop(e.host.ObserveResize(e.recenter.Schedule))
		}
	} else {
		cancelSub(&e.resizeSub)
	}

	if e.mounted && e.cfg.RecenterOnChildrenChange {
		if e.mutationSub == nil {
			e.mutationSub = orNop(e.host.ObserveMutations(e.recenter.Schedule))
		}
	} else {
		cancelSub(&e.mutationSub)
	}

	if e.resizeSub == nil && e.mutationSub == nil {
		e.recenter.Cancel()
	}

	if e.mounted && e.cfg.tracking() && e.cfg.TrackPointerOnDocument {
		if e.documentSub == nil {
			e.documentSub = orNop(e.host.ListenDocumentPointer(e.documentPointerMove))
		}
	} else {
		cancelSub(&e.documentSub)
	}
}

// reportInvalid sends a configuration the engine is about to normalize to
// the error handler.
func reportInvalid(cfg Config) {
	if err := cfg.Validate(); err != nil {
		if e, ok := err.(*errors.Error); ok {
			errors.Report(e)
		}
	}
}

func cancelSub(sub *Subscription) {
	if *sub != nil {
		(*sub).Cancel()
		*sub = nil
	}
}

func orNop(sub Subscription) Subscription {
	if sub == nil {
		return SubscriptionFunc(nil)
	}
	return sub
}
