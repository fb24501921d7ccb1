// Package mask implements the geometry and animation state behind a
// pointer-reactive reveal mask.
//
// A mask is a radial or linear gradient drawn over some content. Its
// center either sits at a static percentage of the container or follows
// the pointer, easing toward it once per frame. The package does not draw
// anything: [Engine.Vars] returns the numbers a rendering layer needs, and
// [Vars.CSS] and [Vars.Attrs] render them as style variables and data
// attributes.
//
// # Lifecycle
//
// An [Engine] is created from a [Config] and a [Host], which supplies the
// container rectangle and optional resize, mutation and document pointer
// subscriptions:
//
//	e := mask.New(cfg, host)
//	e.Mount()
//	defer e.Unmount()
//
//	e.PointerEnter()
//	e.PointerMove(clientX, clientY)
//	animation.StepTickers() // once per frame
//	css := e.Vars().CSS()
//
// SetConfig replaces the configuration snapshot. Subscriptions and the
// frame loop follow the new flags.
//
// # Activation
//
// The mask is active always, while hovered, or while focused, unless
// Config.Active overrides the mode. The lerp loop only runs while the mask
// is mounted, tracking, and active.
package mask
