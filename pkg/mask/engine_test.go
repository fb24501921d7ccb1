package mask_test

import (
	"math"
	"testing"
	"time"

	"github.com/go-drift/reveal/pkg/animation"
	"github.com/go-drift/reveal/pkg/errors"
	"github.com/go-drift/reveal/pkg/geometry"
	"github.com/go-drift/reveal/pkg/mask"
	revealtest "github.com/go-drift/reveal/pkg/testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func trackingConfig() mask.Config {
	cfg := mask.DefaultConfig()
	cfg.WithCursorMask = true
	return cfg
}

func TestStaticCoordinatesIgnoreContainerSize(t *testing.T) {
	cfg := mask.DefaultConfig()
	cfg.X, cfg.Y = 10, 25
	cfg.Radius = geometry.Px(320)

	for _, rect := range []geometry.Rect{
		geometry.RectFromLTWH(0, 0, 300, 200),
		geometry.RectFromLTWH(40, 90, 1280, 720),
		{},
	} {
		tester := revealtest.NewMaskTesterWithT(t, cfg, rect)
		tester.Mount()

		css := tester.Vars().CSS()
		if css[mask.VarX] != "10%" || css[mask.VarY] != "25%" {
			t.Errorf("rect %+v: x/y = %q/%q, want 10%%/25%%", rect, css[mask.VarX], css[mask.VarY])
		}
		if css[mask.VarRadialRadius] != "20rem" {
			t.Errorf("radial radius = %q, want 20rem", css[mask.VarRadialRadius])
		}
		if attrs := tester.Vars().Attrs(); attrs["data-with-cursor"] != "false" {
			t.Errorf("data-with-cursor = %q", attrs["data-with-cursor"])
		}
	}
}

func TestEllipticalRadii(t *testing.T) {
	cfg := mask.DefaultConfig()
	cfg.RadiusX = geometry.Px(100)
	cfg.RadiusY = geometry.Px(200)
	tester := revealtest.NewMaskTesterWithT(t, cfg, geometry.RectFromLTWH(0, 0, 400, 400))
	tester.Mount()

	css := tester.Vars().CSS()
	if css[mask.VarRadialRadiusX] != "6.25rem" || css[mask.VarRadialRadiusY] != "12.5rem" {
		t.Errorf("radii = %q/%q, want 6.25rem/12.5rem", css[mask.VarRadialRadiusX], css[mask.VarRadialRadiusY])
	}
	if css[mask.VarRadialRadius] != "15rem" {
		t.Errorf("scalar radius = %q, want default 15rem", css[mask.VarRadialRadius])
	}
}

func TestRadiusAxesFallBackToScalar(t *testing.T) {
	cfg := mask.DefaultConfig()
	cfg.Radius = geometry.CSSLength("30vmin")
	cfg.RadiusY = geometry.Px(32)
	tester := revealtest.NewMaskTesterWithT(t, cfg, geometry.RectFromLTWH(0, 0, 100, 100))

	css := tester.Vars().CSS()
	if css[mask.VarRadialRadiusX] != "30vmin" || css[mask.VarRadialRadiusY] != "2rem" {
		t.Errorf("radii = %q/%q", css[mask.VarRadialRadiusX], css[mask.VarRadialRadiusY])
	}
	if css[mask.VarLinearRadius] != "30vmin" {
		t.Errorf("linear radius = %q", css[mask.VarLinearRadius])
	}
}

func TestInvertAndVariantFlags(t *testing.T) {
	cfg := mask.DefaultConfig()
	cfg.Invert = true
	cfg.Variant = mask.VariantLinear
	tester := revealtest.NewMaskTesterWithT(t, cfg, geometry.RectFromLTWH(0, 0, 100, 100))
	tester.Mount()

	attrs := tester.Vars().Attrs()
	if attrs["data-invert"] != "true" || attrs["data-variant"] != "linear" || attrs["data-active"] != "true" {
		t.Errorf("attrs = %v", attrs)
	}
}

func TestLinearAngleAndCenter(t *testing.T) {
	cfg := mask.DefaultConfig()
	cfg.Variant = mask.VariantLinear
	cfg.X, cfg.Y = 25, 50
	cfg.Angle = 30
	tester := revealtest.NewMaskTesterWithT(t, cfg, geometry.RectFromLTWH(0, 0, 200, 100))
	tester.Mount()

	v := tester.Vars()
	if got := v.CSS()[mask.VarAngle]; got != "30deg" {
		t.Errorf("angle = %q, want 30deg", got)
	}
	want := geometry.LinearCenterPercent(50, 50, 200, 100, 30)
	if !near(v.LinearCenter, want) {
		t.Errorf("linear center = %v, want %v", v.LinearCenter, want)
	}
}

func TestLinearAngleStrings(t *testing.T) {
	tests := []struct {
		angle   any
		css     string
		degrees float64
	}{
		{"45", "45deg", 45},
		{"0.25turn", "0.25turn", 0.25},
		{"sideways", "sideways", 90},
		{nil, "90deg", 90},
	}
	for _, tt := range tests {
		cfg := mask.DefaultConfig()
		cfg.Angle = tt.angle
		v := mask.New(cfg, nil).Vars()
		if v.Angle != tt.css || v.AngleDegrees != tt.degrees {
			t.Errorf("angle %#v: got %q/%v, want %q/%v", tt.angle, v.Angle, v.AngleDegrees, tt.css, tt.degrees)
		}
	}
}

func TestFeatherOverridesStops(t *testing.T) {
	cfg := mask.DefaultConfig()
	cfg.TransparencyStart = 10
	cfg.TransparencyEnd = 60
	cfg.Feather = mask.Float(20)
	cfg.Opacity = 0.6
	css := mask.New(cfg, nil).Vars().CSS()

	if css[mask.VarOpacity] != "0.6" {
		t.Errorf("opacity = %q", css[mask.VarOpacity])
	}
	if css[mask.VarTransparencyStart] != "80%" || css[mask.VarTransparencyEnd] != "100%" {
		t.Errorf("stops = %q/%q, want 80%%/100%%", css[mask.VarTransparencyStart], css[mask.VarTransparencyEnd])
	}

	cfg.Feather = nil
	css = mask.New(cfg, nil).Vars().CSS()
	if css[mask.VarTransparencyStart] != "10%" || css[mask.VarTransparencyEnd] != "60%" {
		t.Errorf("explicit stops = %q/%q", css[mask.VarTransparencyStart], css[mask.VarTransparencyEnd])
	}
}

func TestPointerActivationNotifies(t *testing.T) {
	var calls []bool
	cfg := mask.DefaultConfig()
	cfg.Activation = mask.ActivationPointer
	cfg.OnActiveChange = func(active bool) { calls = append(calls, active) }
	tester := revealtest.NewMaskTesterWithT(t, cfg, geometry.RectFromLTWH(0, 0, 200, 200))
	tester.Mount()

	if tester.Vars().Attrs()["data-active"] != "false" {
		t.Fatal("pointer mode should start inactive")
	}
	tester.Enter()
	if !tester.Vars().Active {
		t.Error("enter should activate")
	}
	tester.Leave()
	if tester.Vars().Active {
		t.Error("leave should deactivate")
	}
	if len(calls) != 2 || calls[0] != true || calls[1] != false {
		t.Errorf("OnActiveChange calls = %v, want [true false]", calls)
	}
}

func TestHoverModeGatesPointerTracking(t *testing.T) {
	cfg := trackingConfig()
	cfg.Activation = mask.ActivationHover
	cfg.Animation = mask.AnimationNone
	tester := revealtest.NewMaskTesterWithT(t, cfg, geometry.RectFromLTWH(0, 0, 300, 200))
	tester.Mount()

	tester.MoveTo(20, 30)
	if got := tester.Engine().Target(); got != (geometry.Offset{X: 150, Y: 100}) {
		t.Errorf("inactive mask moved to %+v", got)
	}

	tester.Enter()
	tester.MoveTo(20, 30)
	if got := tester.Engine().Smoothed(); got != (geometry.Offset{X: 20, Y: 30}) {
		t.Errorf("active mask at %+v, want (20, 30)", got)
	}
}

func TestDocumentTracking(t *testing.T) {
	cfg := trackingConfig()
	cfg.TrackPointerOnDocument = true
	cfg.Animation = mask.AnimationNone
	tester := revealtest.NewMaskTesterWithT(t, cfg, geometry.RectFromLTWH(100, 200, 300, 400))
	tester.Mount()

	tester.Host().MoveDocumentPointer(150, 260)
	css := tester.Vars().CSS()
	if css[mask.VarX] != "50px" || css[mask.VarY] != "60px" {
		t.Errorf("x/y = %q/%q, want 50px/60px", css[mask.VarX], css[mask.VarY])
	}

	// Container-scoped moves are ignored while the document supplies positions.
	tester.MoveClient(390, 590)
	if got := tester.Engine().Target(); got != (geometry.Offset{X: 50, Y: 60}) {
		t.Errorf("container move changed target to %+v", got)
	}
}

func TestDocumentTrackingBypassesClamp(t *testing.T) {
	cfg := trackingConfig()
	cfg.TrackPointerOnDocument = true
	cfg.Animation = mask.AnimationNone
	cfg.ClampToBounds = true
	cfg.ClampPadding = 20
	cfg.Radius = geometry.Px(100)
	tester := revealtest.NewMaskTesterWithT(t, cfg, geometry.RectFromLTWH(0, 0, 300, 300))
	tester.Mount()

	tester.Host().MoveDocumentPointer(10, 10)
	css := tester.Vars().CSS()
	if css[mask.VarX] != "10px" || css[mask.VarY] != "10px" {
		t.Errorf("x/y = %q/%q, want 10px/10px", css[mask.VarX], css[mask.VarY])
	}
}

func TestClampToBounds(t *testing.T) {
	cfg := trackingConfig()
	cfg.Animation = mask.AnimationNone
	cfg.ClampToBounds = true
	cfg.ClampPadding = 10
	cfg.Radius = geometry.Px(50)
	tester := revealtest.NewMaskTesterWithT(t, cfg, geometry.RectFromLTWH(20, 20, 300, 200))
	tester.Mount()

	tests := []struct {
		x, y float64
		want geometry.Offset
	}{
		{5, 190, geometry.Offset{X: 60, Y: 140}},
		{299, 0, geometry.Offset{X: 240, Y: 60}},
		{120, 90, geometry.Offset{X: 120, Y: 90}},
		{60, 140, geometry.Offset{X: 60, Y: 140}},
	}
	for _, tt := range tests {
		tester.MoveTo(tt.x, tt.y)
		if got := tester.Engine().Target(); got != tt.want {
			t.Errorf("MoveTo(%v, %v) -> %+v, want %+v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestClampUsesEllipticalRadiiAndOffset(t *testing.T) {
	cfg := trackingConfig()
	cfg.Animation = mask.AnimationNone
	cfg.ClampToBounds = true
	cfg.RadiusX = geometry.Px(30)
	cfg.RadiusY = geometry.CSSLength("4em")
	cfg.Radius = geometry.Px(10)
	cfg.OffsetX = 5
	cfg.OffsetY = -5
	tester := revealtest.NewMaskTesterWithT(t, cfg, geometry.RectFromLTWH(0, 0, 200, 100))
	tester.Mount()

	tester.MoveTo(0, 0)
	// X clamps at radiusX=30; Y falls back to the numeric scalar radius.
	if got := tester.Engine().Target(); got != (geometry.Offset{X: 30, Y: 10}) {
		t.Errorf("target = %+v, want (30, 10)", got)
	}
	tester.MoveTo(100, 50)
	if got := tester.Engine().Target(); got != (geometry.Offset{X: 105, Y: 45}) {
		t.Errorf("offset target = %+v, want (105, 45)", got)
	}
}

func TestClampDegenerateBoundsUseMidpoint(t *testing.T) {
	cfg := trackingConfig()
	cfg.Animation = mask.AnimationNone
	cfg.ClampToBounds = true
	cfg.Radius = geometry.Px(200)
	tester := revealtest.NewMaskTesterWithT(t, cfg, geometry.RectFromLTWH(0, 0, 300, 200))
	tester.Mount()

	tester.MoveTo(10, 10)
	if got := tester.Engine().Target(); got != (geometry.Offset{X: 150, Y: 100}) {
		t.Errorf("target = %+v, want midpoint (150, 100)", got)
	}
}

func TestMountCentersTrackingMask(t *testing.T) {
	tester := revealtest.NewMaskTesterWithT(t, trackingConfig(), geometry.RectFromLTWH(10, 10, 300, 200))
	tester.Mount()

	want := geometry.Offset{X: 150, Y: 100}
	if tester.Engine().Target() != want || tester.Engine().Smoothed() != want {
		t.Errorf("positions after mount = %+v/%+v, want %+v", tester.Engine().Target(), tester.Engine().Smoothed(), want)
	}
	if css := tester.Vars().CSS(); css[mask.VarX] != "150px" || css[mask.VarY] != "100px" {
		t.Errorf("css x/y = %q/%q", css[mask.VarX], css[mask.VarY])
	}
}

func TestLerpEasesTowardTarget(t *testing.T) {
	tester := revealtest.NewMaskTesterWithT(t, trackingConfig(), geometry.RectFromLTWH(0, 0, 300, 200))
	tester.Mount()

	tester.MoveTo(250, 150)
	if got := tester.Engine().Smoothed(); got != (geometry.Offset{X: 150, Y: 100}) {
		t.Fatalf("smoothed moved before a frame: %+v", got)
	}

	tester.Pump(1)
	got := tester.Engine().Smoothed()
	if !near(got.X, 162) || !near(got.Y, 106) {
		t.Errorf("after one frame smoothed = %+v, want (162, 106)", got)
	}

	if !tester.PumpUntilSettled(0.5, 200) {
		t.Errorf("smoothed never settled: %+v", tester.Engine().Smoothed())
	}
}

func TestAnimationNoneMovesInstantly(t *testing.T) {
	cfg := trackingConfig()
	cfg.Animation = mask.AnimationNone
	tester := revealtest.NewMaskTesterWithT(t, cfg, geometry.RectFromLTWH(0, 0, 300, 200))
	tester.Mount()

	if tester.Engine().Animating() {
		t.Error("no frame loop should run in none mode")
	}
	tester.MoveTo(12, 34)
	if got := tester.Engine().Smoothed(); got != (geometry.Offset{X: 12, Y: 34}) {
		t.Errorf("smoothed = %+v", got)
	}
}

func TestLoopStopsWhenInactive(t *testing.T) {
	cfg := trackingConfig()
	cfg.Activation = mask.ActivationHover
	tester := revealtest.NewMaskTesterWithT(t, cfg, geometry.RectFromLTWH(0, 0, 300, 200))
	tester.Mount()

	if tester.Engine().Animating() {
		t.Fatal("loop running while inactive")
	}
	tester.Enter()
	if !tester.Engine().Animating() {
		t.Fatal("loop should start on activation")
	}
	tester.MoveTo(300, 200)
	tester.Pump(1)
	tester.Leave()
	if tester.Engine().Animating() {
		t.Fatal("loop should stop on deactivation")
	}

	frozen := tester.Engine().Smoothed()
	tester.Pump(5)
	if tester.Engine().Smoothed() != frozen {
		t.Error("smoothed position moved while inactive")
	}
}

func TestStaticMaskRunsNoLoop(t *testing.T) {
	tester := revealtest.NewMaskTesterWithT(t, mask.DefaultConfig(), geometry.RectFromLTWH(0, 0, 300, 200))
	tester.Mount()
	if tester.Engine().Animating() {
		t.Error("static mask should not animate")
	}
	tester.MoveTo(10, 10)
	if got := tester.Engine().Target(); got != (geometry.Offset{X: 150, Y: 100}) {
		t.Errorf("static target = %+v, want static point", got)
	}
}

func TestControlledActiveOverridesMode(t *testing.T) {
	cfg := trackingConfig()
	cfg.Active = mask.Bool(false)
	tester := revealtest.NewMaskTesterWithT(t, cfg, geometry.RectFromLTWH(0, 0, 300, 200))
	tester.Mount()

	if tester.Vars().Active || tester.Engine().Animating() {
		t.Error("controlled false should keep an always-mode mask inactive")
	}

	cfg.Active = mask.Bool(true)
	tester.Engine().SetConfig(cfg)
	if !tester.Vars().Active || !tester.Engine().Animating() {
		t.Error("controlled true should activate")
	}
}

func TestRecenterOnResizeIsDebounced(t *testing.T) {
	cfg := trackingConfig()
	cfg.Animation = mask.AnimationNone
	cfg.RecenterOnResize = true
	tester := revealtest.NewMaskTesterWithT(t, cfg, geometry.RectFromLTWH(0, 0, 300, 200))
	tester.Mount()

	tester.MoveTo(10, 10)
	tester.Host().Resize(500, 300)
	tester.Host().Resize(400, 300)
	if got := tester.Engine().Target(); got != (geometry.Offset{X: 10, Y: 10}) {
		t.Fatalf("recentered before the next frame: %+v", got)
	}
	if tester.Frames().Pending() != 1 {
		t.Fatalf("pending recenters = %d, want 1", tester.Frames().Pending())
	}

	tester.Pump(1)
	want := geometry.Offset{X: 200, Y: 150}
	if tester.Engine().Target() != want || tester.Engine().Smoothed() != want {
		t.Errorf("after resize positions = %+v/%+v, want %+v", tester.Engine().Target(), tester.Engine().Smoothed(), want)
	}
}

func TestRecenterOnChildrenChangeCoalesces(t *testing.T) {
	cfg := trackingConfig()
	cfg.Animation = mask.AnimationNone
	cfg.RecenterOnChildrenChange = true
	recenters := 0
	tester := revealtest.NewMaskTesterWithT(t, cfg, geometry.RectFromLTWH(0, 0, 300, 200))
	tester.Mount()
	tester.MoveTo(10, 10)

	before := tester.Host().Measures()
	remove := tester.Engine().AddListener(func() { recenters++ })
	for range 10 {
		tester.Host().MutateChildren()
	}
	tester.Pump(1)
	remove()

	if got := tester.Host().Measures() - before; got != 1 {
		t.Errorf("container measured %d times, want 1", got)
	}
	if recenters != 1 {
		t.Errorf("listeners notified %d times, want 1", recenters)
	}
	if got := tester.Engine().Target(); got != (geometry.Offset{X: 150, Y: 100}) {
		t.Errorf("target = %+v, want center", got)
	}
}

func TestObserversOffByDefault(t *testing.T) {
	tester := revealtest.NewMaskTesterWithT(t, trackingConfig(), geometry.RectFromLTWH(0, 0, 300, 200))
	tester.Mount()
	if n := tester.Host().LiveSubscriptions(); n != 0 {
		t.Errorf("live subscriptions = %d, want 0", n)
	}
}

func TestUnmountReleasesEverything(t *testing.T) {
	cfg := trackingConfig()
	cfg.TrackPointerOnDocument = true
	cfg.RecenterOnResize = true
	cfg.RecenterOnChildrenChange = true
	tester := revealtest.NewMaskTesterWithT(t, cfg, geometry.RectFromLTWH(0, 0, 300, 200))
	base := animation.RunningTickers()
	tester.Mount()

	if n := tester.Host().LiveSubscriptions(); n != 3 {
		t.Fatalf("live subscriptions = %d, want 3", n)
	}
	tester.Host().MutateChildren()
	if !tester.Engine().Animating() || tester.Frames().Pending() != 1 {
		t.Fatal("expected a running loop and a pending recenter")
	}

	tester.Unmount()
	tester.Unmount()

	if n := animation.RunningTickers(); n != base {
		t.Errorf("running tickers after unmount = %d, want %d", n, base)
	}

	if n := tester.Host().LiveSubscriptions(); n != 0 {
		t.Errorf("live subscriptions after unmount = %d", n)
	}
	if tester.Frames().Pending() != 0 {
		t.Errorf("pending frames after unmount = %d", tester.Frames().Pending())
	}
	if tester.Engine().Animating() {
		t.Error("loop still running after unmount")
	}
}

func TestSetConfigTogglesDocumentListener(t *testing.T) {
	cfg := trackingConfig()
	tester := revealtest.NewMaskTesterWithT(t, cfg, geometry.RectFromLTWH(0, 0, 300, 200))
	tester.Mount()

	cfg.TrackPointerOnDocument = true
	tester.Engine().SetConfig(cfg)
	if tester.Host().DocumentListeners() != 1 {
		t.Fatal("document listener not added")
	}
	tester.Engine().SetConfig(cfg)
	if tester.Host().DocumentListeners() != 1 {
		t.Fatal("document listener added twice")
	}

	cfg.WithCursorMask = false
	tester.Engine().SetConfig(cfg)
	if tester.Host().DocumentListeners() != 0 {
		t.Error("document listener kept after tracking was disabled")
	}
}

func TestUnmountedEngineFallbacks(t *testing.T) {
	cfg := trackingConfig()
	cfg.Variant = mask.VariantLinear
	e := mask.New(cfg, nil)

	v := e.Vars()
	if v.X != 0 || v.Y != 0 || v.Unit != mask.UnitPixels {
		t.Errorf("unmounted center = %v,%v %s", v.X, v.Y, v.Unit)
	}
	if v.LinearCenter != 50 {
		t.Errorf("unmounted linear center = %v, want 50", v.LinearCenter)
	}

	e.Mount()
	if !e.Animating() {
		t.Error("mounted tracking mask should animate")
	}
	e.PointerMove(5, 5)
	e.Unmount()
}

func TestRemeasureCentersOnceSizeIsKnown(t *testing.T) {
	tester := revealtest.NewMaskTesterWithT(t, trackingConfig(), geometry.Rect{})
	tester.Mount()
	if got := tester.Engine().Target(); got != (geometry.Offset{}) {
		t.Fatalf("zero-size mount target = %+v", got)
	}

	tester.Host().SetRect(geometry.RectFromLTWH(0, 0, 120, 80))
	tester.Engine().Remeasure()
	if got := tester.Engine().Target(); got != (geometry.Offset{X: 60, Y: 40}) {
		t.Errorf("target = %+v, want (60, 40)", got)
	}
}

func TestOnActiveChangePanicIsRecovered(t *testing.T) {
	var reported *errors.PanicError
	errors.SetHandler(panicRecorder{fn: func(p *errors.PanicError) { reported = p }})
	defer errors.SetHandler(nil)

	cfg := mask.DefaultConfig()
	cfg.Activation = mask.ActivationFocus
	cfg.OnActiveChange = func(bool) { panic("listener failed") }
	tester := revealtest.NewMaskTesterWithT(t, cfg, geometry.RectFromLTWH(0, 0, 100, 100))
	tester.Mount()

	tester.Focus()
	if !tester.Vars().Active {
		t.Error("activation should survive a panicking callback")
	}
	if reported == nil || reported.Op != "mask.onActiveChange" {
		t.Errorf("reported = %+v", reported)
	}
}

func TestPresenceFades(t *testing.T) {
	cfg := mask.DefaultConfig()
	cfg.Activation = mask.ActivationHover
	cfg.FadeDuration = 160 * time.Millisecond
	cfg.FadeEase = "linear"
	tester := revealtest.NewMaskTesterWithT(t, cfg, geometry.RectFromLTWH(0, 0, 100, 100))
	tester.Mount()

	if p := tester.Vars().Presence; p != 0 {
		t.Fatalf("initial presence = %v, want 0", p)
	}
	tester.Enter()
	tester.Pump(5)
	if p := tester.Vars().Presence; p <= 0 || p >= 1 {
		t.Errorf("presence halfway = %v, want within (0, 1)", p)
	}
	tester.Pump(6)
	if p := tester.Vars().Presence; p != 1 {
		t.Errorf("presence after fade = %v, want 1", p)
	}

	cfg.FadeDuration = 0
	tester.Engine().SetConfig(cfg)
	tester.Leave()
	if p := tester.Vars().Presence; p != 0 {
		t.Errorf("instant presence = %v, want 0", p)
	}
}

func TestValidate(t *testing.T) {
	good := mask.DefaultConfig()
	if err := good.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*mask.Config)
	}{
		{"variant", func(c *mask.Config) { c.Variant = "conic" }},
		{"activation", func(c *mask.Config) { c.Activation = "click" }},
		{"animation", func(c *mask.Config) { c.Animation = "spring" }},
		{"radius", func(c *mask.Config) { c.RadiusX = geometry.Px(-1) }},
		{"easing", func(c *mask.Config) { c.Easing = 1.5 }},
		{"padding", func(c *mask.Config) { c.ClampPadding = -4 }},
		{"fade ease", func(c *mask.Config) { c.FadeEase = "wobble" }},
		{"angle", func(c *mask.Config) { c.Angle = "sideways" }},
	}
	for _, tt := range tests {
		cfg := mask.DefaultConfig()
		tt.mutate(&cfg)
		err := cfg.Validate()
		if err == nil {
			t.Errorf("%s: expected validation error", tt.name)
			continue
		}
		var e *errors.Error
		if !asError(err, &e) || e.Kind != errors.KindConfig {
			t.Errorf("%s: got %v, want a config error", tt.name, err)
		}
	}
}

func TestUnknownEnumsFallBack(t *testing.T) {
	var reported []*errors.Error
	errors.SetHandler(errorRecorder{fn: func(e *errors.Error) { reported = append(reported, e) }})
	defer errors.SetHandler(nil)

	cfg := mask.Config{Variant: "conic", Activation: "click", Animation: "spring", Easing: 3}
	e := mask.New(cfg, nil)
	got := e.Config()
	if got.Variant != mask.VariantRadial || got.Activation != mask.ActivationAlways ||
		got.Animation != mask.AnimationLerp || got.Easing != 1 {
		t.Errorf("normalized config = %+v", got)
	}
	if len(reported) != 1 || reported[0].Kind != errors.KindConfig {
		t.Fatalf("reported = %v, want one config error", reported)
	}

	e.SetConfig(mask.DefaultConfig())
	if len(reported) != 1 {
		t.Errorf("a valid config was reported: %v", reported[1:])
	}
}

type panicRecorder struct {
	fn func(*errors.PanicError)
}

func (panicRecorder) HandleError(*errors.Error)         {}
func (r panicRecorder) HandlePanic(p *errors.PanicError) { r.fn(p) }

type errorRecorder struct {
	fn func(*errors.Error)
}

func (r errorRecorder) HandleError(e *errors.Error) { r.fn(e) }
func (errorRecorder) HandlePanic(*errors.PanicError) {}

func asError(err error, target **errors.Error) bool {
	e, ok := err.(*errors.Error)
	if ok {
		*target = e
	}
	return ok
}
