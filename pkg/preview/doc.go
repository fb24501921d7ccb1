// Package preview rasterizes a mask into an image, for inspecting a
// configuration without a browser.
//
// [Rasterize] samples the alpha field at a reduced resolution and
// upscales it with Catmull-Rom. [Composite] draws content through the
// resulting mask and [Encode] writes it as PNG or lossless WebP.
package preview
