package canvas

import "math"

// --- Fill and stroke style ---

// SetFillColor sets the fill paint to a solid color.
func (c *Context) SetFillColor(col Color) { c.state.fillPaint = Solid(col) }

// SetFillPaint sets the fill paint to an arbitrary Paint (gradient or
// pattern). Paint sources are shared by reference, not cloned.
func (c *Context) SetFillPaint(p Paint) { c.state.fillPaint = p }

// FillPaint returns the current fill paint.
func (c *Context) FillPaint() Paint { return c.state.fillPaint }

// SetStrokeColor sets the stroke paint to a solid color.
func (c *Context) SetStrokeColor(col Color) { c.state.strokePaint = Solid(col) }

// SetStrokePaint sets the stroke paint to an arbitrary Paint.
func (c *Context) SetStrokePaint(p Paint) { c.state.strokePaint = p }

// StrokePaint returns the current stroke paint.
func (c *Context) StrokePaint() Paint { return c.state.strokePaint }

// SetFillRule sets the fill rule used by Fill/FillPreserve.
func (c *Context) SetFillRule(rule FillRule) { c.state.fillRule = rule }

// FillRule returns the current fill rule.
func (c *Context) FillRule() FillRule { return c.state.fillRule }

// --- Stroke parameters ---
//
// Setters follow spec's IgnoredInvalidSetter rule: an invalid value
// silently keeps the prior value rather than erroring.

// SetLineWidth sets the stroke width in user-space units. Values that
// are zero, negative, or non-finite are ignored.
func (c *Context) SetLineWidth(w float64) {
	c.state.stroke = c.state.stroke.WithWidth(w)
}

// LineWidth returns the current stroke width.
func (c *Context) LineWidth() float64 { return c.state.stroke.Width }

// SetLineCap sets the stroke line cap.
func (c *Context) SetLineCap(cap LineCap) {
	c.state.stroke = c.state.stroke.WithCap(cap)
}

// LineCap returns the current stroke line cap.
func (c *Context) LineCap() LineCap { return c.state.stroke.Cap }

// SetLineJoin sets the stroke line join.
func (c *Context) SetLineJoin(join LineJoin) {
	c.state.stroke = c.state.stroke.WithJoin(join)
}

// LineJoin returns the current stroke line join.
func (c *Context) LineJoin() LineJoin { return c.state.stroke.Join }

// SetMiterLimit sets the miter limit used by miter joins. Values that
// are zero, negative, or non-finite are ignored.
func (c *Context) SetMiterLimit(limit float64) {
	if !(limit > 0) || math.IsInf(limit, 0) {
		return
	}
	c.state.stroke = c.state.stroke.WithMiterLimit(limit)
}

// MiterLimit returns the current miter limit.
func (c *Context) MiterLimit() float64 { return c.state.stroke.MiterLimit }

// SetLineDash sets the dash pattern. A pattern containing a negative or
// non-finite length, or whose entries are all zero, is ignored
// entirely (the prior dash state, if any, is kept).
func (c *Context) SetLineDash(lengths ...float64) {
	if len(lengths) > 0 && NewDash(lengths...) == nil {
		return
	}
	c.state.stroke = c.state.stroke.WithDashPattern(lengths...)
}

// LineDash returns the current dash pattern, or nil when not dashed.
func (c *Context) LineDash() []float64 {
	if c.state.stroke.Dash == nil {
		return nil
	}
	return append([]float64(nil), c.state.stroke.Dash.Array...)
}

// SetLineDashOffset sets the dash phase offset. Non-finite values are
// ignored.
func (c *Context) SetLineDashOffset(offset float64) {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return
	}
	if c.state.stroke.Dash == nil {
		c.state.stroke = c.state.stroke.WithDash(NewDash())
		if c.state.stroke.Dash == nil {
			return
		}
	}
	c.state.stroke = c.state.stroke.WithDashOffset(offset)
}

// LineDashOffset returns the current dash phase offset.
func (c *Context) LineDashOffset() float64 {
	if c.state.stroke.Dash == nil {
		return 0
	}
	return c.state.stroke.Dash.Offset
}

// --- Global state ---

// SetGlobalAlpha sets the alpha multiplier applied to every paint
// sample before compositing, clamped to [0, 1].
func (c *Context) SetGlobalAlpha(a float64) {
	if math.IsNaN(a) {
		return
	}
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.state.globalAlpha = a
}

// GlobalAlpha returns the current global alpha.
func (c *Context) GlobalAlpha() float64 { return c.state.globalAlpha }

// SetGlobalCompositeOperation sets the Porter-Duff (or "lighter")
// operator used when compositing onto the surface.
func (c *Context) SetGlobalCompositeOperation(op CompositeOperation) {
	c.state.compositeOp = op
}

// GlobalCompositeOperation returns the current composite operator.
func (c *Context) GlobalCompositeOperation() CompositeOperation { return c.state.compositeOp }

// SetShadowColor, SetShadowBlur, and SetShadowOffset record shadow
// parameters for API compatibility. Shadows are dispatch-only per
// spec: nothing is ever rendered from them, but a configured shadow
// forces every Fill/Stroke call through the generic pipeline since the
// fast paths assume no shadow is present.

// SetShadowColor sets the shadow color.
func (c *Context) SetShadowColor(col Color) { c.state.shadowColor = col }

// SetShadowBlur sets the shadow blur radius.
func (c *Context) SetShadowBlur(blur float64) { c.state.shadowBlur = blur }

// SetShadowOffset sets the shadow offset.
func (c *Context) SetShadowOffset(x, y float64) {
	c.state.shadowOffsetX = x
	c.state.shadowOffsetY = y
}

// --- Gradient and pattern factories ---
//
// Control points are transformed through the current transform at
// creation time, matching how Path's own MoveTo et al. bake the
// transform in at command time rather than storing it for later.

// CreateLinearGradient creates a linear gradient between two points
// given in user space.
func (c *Context) CreateLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	p0 := c.state.transform.TransformPoint(Pt(x0, y0))
	p1 := c.state.transform.TransformPoint(Pt(x1, y1))
	return &LinearGradient{Start: p0, End: p1}
}

// CreateRadialGradient creates a radial gradient between two circles
// given in user space.
func (c *Context) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) *RadialGradient {
	p0 := c.state.transform.TransformPoint(Pt(x0, y0))
	p1 := c.state.transform.TransformPoint(Pt(x1, y1))
	scale := c.state.transform.ScaledLineWidth(1.0)
	return &RadialGradient{Start: p0, StartRadius: r0 * scale, End: p1, EndRadius: r1 * scale}
}

// CreateConicGradient creates a conic gradient centered at a user-space
// point.
func (c *Context) CreateConicGradient(startAngle, cx, cy float64) *ConicGradient {
	center := c.state.transform.TransformPoint(Pt(cx, cy))
	return &ConicGradient{Center: center, StartAngle: startAngle + c.state.transform.Rotation()}
}

// CreatePattern creates an image pattern, its Transform initialized to
// the current transform so Sample's device-to-pattern inverse mapping
// matches where the pattern was declared.
func (c *Context) CreatePattern(img *Image, repetition Repetition) *ImagePattern {
	return &ImagePattern{Image: img, Repetition: repetition, Transform: c.state.transform}
}
