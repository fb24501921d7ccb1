package preview

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/go-drift/reveal/pkg/errors"
	"github.com/go-drift/reveal/pkg/mask"
	"golang.org/x/image/draw"
)

// MaxSide is the largest container side Rasterize accepts, in pixels.
const MaxSide = 16384

func validSide(px float64) bool {
	return !math.IsNaN(px) && px <= MaxSide
}

// Options controls Rasterize.
type Options struct {
	// Scale is the sampling resolution relative to the output, in (0, 1].
	// The sampled field is upscaled with Catmull-Rom. Default 0.25.
	Scale float64
	// RemPx is the root font size used to resolve rem and em radii.
	// Default 16.
	RemPx float64
	// FallbackRadius is used for radii in units that cannot be resolved
	// without a layout, such as vmin or calc(). Default 240.
	FallbackRadius float64
	// ShowInactive draws the mask at full presence even when the engine
	// reports it as faded out.
	ShowInactive bool
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 || o.Scale > 1 {
		o.Scale = 0.25
	}
	if o.RemPx <= 0 {
		o.RemPx = 16
	}
	if o.FallbackRadius <= 0 {
		o.FallbackRadius = 240
	}
	return o
}

// Rasterize renders the mask described by v as an alpha image the size of
// the container. Opaque pixels show the content and transparent pixels
// hide it.
func Rasterize(v mask.Vars, opts Options) (*image.Alpha, error) {
	const op = "preview.Rasterize"
	opts = opts.withDefaults()

	if v.Size.IsEmpty() {
		return nil, errors.New(op, errors.KindRender, fmt.Errorf("container has no size (%gx%g)", v.Size.Width, v.Size.Height))
	}
	if !validSide(v.Size.Width) || !validSide(v.Size.Height) {
		return nil, errors.New(op, errors.KindRender, fmt.Errorf("container %gx%g exceeds %dpx per side", v.Size.Width, v.Size.Height, MaxSide))
	}
	w := int(math.Ceil(v.Size.Width))
	h := int(math.Ceil(v.Size.Height))

	g := GradientFromVars(v, opts.RemPx, opts.FallbackRadius)
	if opts.ShowInactive {
		g.Presence = 1
	}

	sw := max(1, int(math.Round(float64(w)*opts.Scale)))
	sh := max(1, int(math.Round(float64(h)*opts.Scale)))
	field := image.NewAlpha(image.Rect(0, 0, sw, sh))
	for j := range sh {
		y := (float64(j) + 0.5) * v.Size.Height / float64(sh)
		for i := range sw {
			x := (float64(i) + 0.5) * v.Size.Width / float64(sw)
			field.Pix[field.PixOffset(i, j)] = alpha8(g.AlphaAt(x, y))
		}
	}
	if sw == w && sh == h {
		return field, nil
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), field, field.Bounds(), draw.Src, nil)
	return dst, nil
}

// Composite draws content through m over a solid background. A nil content
// is drawn as solid white.
func Composite(m *image.Alpha, content image.Image, bg color.Color) *image.NRGBA {
	b := m.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, image.NewUniform(bg), image.Point{}, draw.Src)

	if content == nil {
		content = image.NewUniform(color.White)
	} else if content.Bounds().Size() != b.Size() {
		scaled := image.NewNRGBA(b)
		draw.CatmullRom.Scale(scaled, b, content, content.Bounds(), draw.Src, nil)
		content = scaled
	}
	draw.DrawMask(dst, b, content, content.Bounds().Min, m, b.Min, draw.Over)
	return dst
}

func alpha8(a float64) uint8 {
	switch {
	case a <= 0:
		return 0
	case a >= 1:
		return 255
	}
	return uint8(a*255 + 0.5)
}
