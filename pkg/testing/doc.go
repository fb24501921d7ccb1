// Package testing provides a deterministic harness for mask engine tests.
//
// # Quick Start
//
// Create a tester for a configuration, mount it and drive it with
// simulated pointer and focus events:
//
//	func TestHoverReveal(t *testing.T) {
//	    cfg := mask.DefaultConfig()
//	    cfg.WithCursorMask = true
//	    cfg.Activation = mask.ActivationHover
//
//	    tester := revealtest.NewMaskTesterWithT(t, cfg, geometry.RectFromLTWH(0, 0, 300, 200))
//	    tester.Mount()
//
//	    tester.Enter()
//	    tester.MoveTo(40, 60)
//	    tester.Pump(10)
//
//	    if !tester.Vars().Active {
//	        t.Error("expected active mask")
//	    }
//	}
//
// # Frames and Time
//
// Pump advances the fake clock by one frame interval and steps every
// ticker and queued frame callback, so easing loops and debounced
// recenters progress exactly as far as the test asks.
//
// # Host Events
//
// [FakeHost] records subscriptions and lets tests resize the container,
// mutate its children and move the pointer anywhere on the document.
// LiveSubscriptions reports leaks after Unmount.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import revealtest "github.com/go-drift/reveal/pkg/testing"
package testing
