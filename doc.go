// Package canvas is a software-only 2D rasterization engine with an
// immediate-mode drawing API modeled on HTML5 Canvas 2D.
//
// # Quick Start
//
//	import "github.com/davidedc/SWCanvas-sub003"
//
//	dc := canvas.NewContext(512, 512)
//
//	dc.SetFillColor(canvas.RGB(255, 0, 0))
//	dc.FillCircle(256, 256, 100)
//
//	dc.SavePNG("output.png")
//
// # Architecture
//
// Public API: Context, Path, Paint (SolidColor, *LinearGradient,
// *RadialGradient, *ConicGradient, *ImagePattern), Transform, Point,
// Surface.
//
// Internal packages:
//   - internal/path: curve flattening into polygon rings
//   - internal/raster: the scanline polygon filler (nonzero/evenodd)
//   - internal/stroke: stroke-to-fill outline expansion (joins, caps, dashing)
//   - internal/clip: the 1-bit clip mask stencil
//   - internal/blend: Porter-Duff compositing
//
// # Rendering model
//
// There is no anti-aliasing: a span is either fully in or fully out of
// a filled shape, sampled at each scanline's pixel center. Simple
// shapes recognized on the current path (axis-aligned rectangles,
// circles, thin lines) take a direct fast path instead of flowing
// through curve flattening and the generic polygon filler; both routes
// produce identical pixels.
//
// # Coordinate System
//
//   - Origin (0, 0) at top-left, X right, Y down
//   - Angles in radians, 0 along +X, increasing clockwise (matching
//     the downward Y axis)
package canvas
