package canvas

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
)

// Context is the mutable drawing state and target surface for the
// immediate-mode drawing API. A Context owns exactly one Surface and
// one path-building cursor; everything else (transform, paints, stroke
// parameters, globals, clip mask) lives on the GraphicsState stack
// manipulated by Save/Restore.
//
// Nothing here is global state: every Context, including the
// fast-path usage flag tracked for tests, is independent of every
// other Context.
type Context struct {
	surface *Surface
	path    *Path

	state GraphicsState
	stack []GraphicsState

	forceGenericPipeline bool
	genericPipelineUsed  bool
}

// NewContext allocates a new width x height Context backed by a fresh
// Surface, initially transparent black.
func NewContext(width, height int, opts ...ContextOption) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	surf := o.surface
	if surf == nil {
		surf = NewSurface(width, height)
	}

	return &Context{
		surface:              surf,
		path:                 NewPath(),
		state:                newGraphicsState(),
		forceGenericPipeline: o.forceGenericPipeline,
	}
}

// NewContextForImage creates a Context sized to img's bounds, with the
// surface initialized from img's pixels.
func NewContextForImage(img image.Image, opts ...ContextOption) *Context {
	b := img.Bounds()
	c := NewContext(b.Dx(), b.Dy(), opts...)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c.surface.SetPixel(x, y, ColorFromStd(img.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return c
}

// Width returns the surface width in pixels.
func (c *Context) Width() int { return c.surface.Width() }

// Height returns the surface height in pixels.
func (c *Context) Height() int { return c.surface.Height() }

// Image returns the surface's pixels as a standard library image.Image.
func (c *Context) Image() image.Image { return c.surface.ToImage() }

// Surface returns the Context's backing Surface.
func (c *Context) Surface() *Surface { return c.surface }

// SavePNG encodes the current surface to a PNG file at path.
func (c *Context) SavePNG(path string) error { return c.surface.SavePNG(path) }

// EncodePNG writes the current surface to w as PNG.
func (c *Context) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.surface.ToImage())
}

// EncodeJPEG writes the current surface to w as JPEG at the given
// quality (1-100).
func (c *Context) EncodeJPEG(w io.Writer, quality int) error {
	return jpeg.Encode(w, c.surface.ToImage(), &jpeg.Options{Quality: quality})
}

// Resize reallocates the surface to the given dimensions, discarding
// its pixel contents, the current path, and any clip mask. The drawing
// state stack is left untouched.
func (c *Context) Resize(width, height int) {
	c.surface = NewSurface(width, height)
	c.path = NewPath()
	c.state.clipMask = nil
}

// UsedGenericPipeline reports whether any Fill or Stroke call since the
// last call to ResetPipelineInstrumentation fell through to the generic
// scanline pipeline rather than a direct fast path.
func (c *Context) UsedGenericPipeline() bool { return c.genericPipelineUsed }

// ResetPipelineInstrumentation clears the flag UsedGenericPipeline reports.
func (c *Context) ResetPipelineInstrumentation() { c.genericPipelineUsed = false }

// --- Transform ---

// Translate post-multiplies the current transform by a translation.
func (c *Context) Translate(x, y float64) {
	c.state.transform = c.state.transform.Multiply(TranslateTransform(x, y))
}

// Scale post-multiplies the current transform by a scale.
func (c *Context) Scale(x, y float64) {
	c.state.transform = c.state.transform.Multiply(ScaleTransform(x, y))
}

// Rotate post-multiplies the current transform by a rotation of angle
// radians.
func (c *Context) Rotate(angle float64) {
	c.state.transform = c.state.transform.Multiply(RotateTransform(angle))
}

// Shear post-multiplies the current transform by a shear.
func (c *Context) Shear(x, y float64) {
	c.state.transform = c.state.transform.Multiply(ShearTransform(x, y))
}

// Transform post-multiplies the current transform by an arbitrary
// matrix given by its six components.
func (c *Context) Transform(a, b, cc, d, e, f float64) {
	c.state.transform = c.state.transform.Multiply(Transform{A: a, B: b, C: cc, D: d, E: e, F: f})
}

// SetTransform replaces the current transform outright (not a
// post-multiply).
func (c *Context) SetTransform(a, b, cc, d, e, f float64) {
	c.state.transform = Transform{A: a, B: b, C: cc, D: d, E: e, F: f}
}

// ResetTransform sets the current transform back to identity.
func (c *Context) ResetTransform() {
	c.state.transform = Identity()
}

// GetTransform returns the current transform.
func (c *Context) GetTransform() Transform {
	return c.state.transform
}

// --- Path building ---
//
// Every coordinate is transformed through the current transform at
// command time, so the Path always holds device-space geometry; Save
// and Restore only affect points recorded after the call.

// BeginPath discards the current path.
func (c *Context) BeginPath() {
	c.path.Clear()
}

// MoveTo begins a new subpath at (x, y).
func (c *Context) MoveTo(x, y float64) {
	p := c.state.transform.TransformPoint(Pt(x, y))
	c.path.MoveTo(p.X, p.Y)
}

// LineTo appends a straight segment to (x, y).
func (c *Context) LineTo(x, y float64) {
	p := c.state.transform.TransformPoint(Pt(x, y))
	c.path.LineTo(p.X, p.Y)
}

// QuadraticCurveTo appends a quadratic Bezier segment.
func (c *Context) QuadraticCurveTo(cx, cy, x, y float64) {
	cp := c.state.transform.TransformPoint(Pt(cx, cy))
	p := c.state.transform.TransformPoint(Pt(x, y))
	c.path.QuadraticCurveTo(cp.X, cp.Y, p.X, p.Y)
}

// BezierCurveTo appends a cubic Bezier segment.
func (c *Context) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	c1 := c.state.transform.TransformPoint(Pt(c1x, c1y))
	c2 := c.state.transform.TransformPoint(Pt(c2x, c2y))
	p := c.state.transform.TransformPoint(Pt(x, y))
	c.path.BezierCurveTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
}

// ArcTo appends a tangent arc between the lines (currentPoint, (x1,y1))
// and ((x1,y1), (x2,y2)), per HTML5 Canvas semantics.
func (c *Context) ArcTo(x1, y1, x2, y2, r float64) {
	p1 := c.state.transform.TransformPoint(Pt(x1, y1))
	p2 := c.state.transform.TransformPoint(Pt(x2, y2))
	deviceR := c.state.transform.ScaledLineWidth(r)
	c.path.ArcTo(p1.X, p1.Y, p2.X, p2.Y, deviceR)
}

// Arc appends a circular arc subpath.
func (c *Context) Arc(cx, cy, r, startAngle, endAngle float64, ccw bool) {
	c.ellipseImpl(cx, cy, r, r, 0, startAngle, endAngle, ccw)
}

// Ellipse appends an elliptical arc subpath, rotated by rot radians.
func (c *Context) Ellipse(cx, cy, rx, ry, rot, startAngle, endAngle float64, ccw bool) {
	c.ellipseImpl(cx, cy, rx, ry, rot, startAngle, endAngle, ccw)
}

// ellipseImpl builds the ellipse in a scratch user-space Path, then
// copies it onto c.path transforming every point and control point
// through the current transform, so any transform (including
// non-uniform scale and shear) is applied to the Bezier approximation
// itself. When c.path already has a current point, the arc's leading
// MoveTo becomes a LineTo, joining the arc to the current subpath.
func (c *Context) ellipseImpl(cx, cy, rx, ry, rot, startAngle, endAngle float64, ccw bool) {
	scratch := NewPath()
	scratch.Ellipse(cx, cy, rx, ry, rot, startAngle, endAngle, ccw)
	if c.path.HasCurrentPoint() && len(scratch.elements) > 0 {
		if m, ok := scratch.elements[0].(MoveTo); ok {
			scratch.elements[0] = LineTo{Point: m.Point}
		}
	}
	c.appendTransformed(scratch)
}

// transformPathInto copies elements from a user-space src path onto dst,
// transforming every point through the current transform.
func (c *Context) transformPathInto(dst, src *Path) {
	for _, elem := range src.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			p := c.state.transform.TransformPoint(e.Point)
			dst.MoveTo(p.X, p.Y)
		case LineTo:
			p := c.state.transform.TransformPoint(e.Point)
			dst.LineTo(p.X, p.Y)
		case QuadTo:
			ctrl := c.state.transform.TransformPoint(e.Control)
			p := c.state.transform.TransformPoint(e.Point)
			dst.QuadraticCurveTo(ctrl.X, ctrl.Y, p.X, p.Y)
		case CubicTo:
			c1 := c.state.transform.TransformPoint(e.Control1)
			c2 := c.state.transform.TransformPoint(e.Control2)
			p := c.state.transform.TransformPoint(e.Point)
			dst.BezierCurveTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
		case Close:
			dst.ClosePath()
		}
	}
}

// appendTransformed copies elements from a user-space scratch path onto
// c.path, transforming every point through the current transform.
func (c *Context) appendTransformed(scratch *Path) {
	c.transformPathInto(c.path, scratch)
}

// devicePath builds a standalone device-space path via build, which
// records user-space commands onto the scratch path it receives,
// without touching the context's current path. Used by direct-rect
// operations (FillRect, StrokeRect, ClearRect) that draw independently
// of whatever subpath is currently being built.
func (c *Context) devicePath(build func(p *Path)) *Path {
	scratch := NewPath()
	build(scratch)
	out := NewPath()
	c.transformPathInto(out, scratch)
	return out
}

// Rect appends a closed rectangular subpath (HTML5 Canvas rect semantics).
func (c *Context) Rect(x, y, w, h float64) {
	scratch := NewPath()
	scratch.Rect(x, y, w, h)
	c.appendTransformed(scratch)
}

// RoundRect appends a closed rounded-rectangle subpath. radii follows
// HTML5 Canvas's 1/2/4-value convention.
func (c *Context) RoundRect(x, y, w, h float64, radii ...float64) {
	scratch := NewPath()
	scratch.RoundRect(x, y, w, h, radii)
	c.appendTransformed(scratch)
}

// ClosePath closes the current subpath back to its start.
func (c *Context) ClosePath() {
	c.path.ClosePath()
}

// Path returns the context's current path (device-space coordinates).
func (c *Context) Path() *Path {
	return c.path
}
