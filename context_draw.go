package canvas

import (
	"math"

	ipath "github.com/davidedc/SWCanvas-sub003/internal/path"
	iraster "github.com/davidedc/SWCanvas-sub003/internal/raster"
	istroke "github.com/davidedc/SWCanvas-sub003/internal/stroke"
)

func rasterFillRule(rule FillRule) iraster.FillRule {
	if rule == FillRuleEvenOdd {
		return iraster.EvenOdd
	}
	return iraster.NonZero
}

// --- direct rect operations ---

// FillRect fills an axis-aligned rectangle given in user space.
// Non-positive width or height is a no-op (spec's InvalidArgumentRange
// / DegenerateGeometry rules).
func (c *Context) FillRect(x, y, w, h float64) {
	if !(w > 0) || !(h > 0) {
		return
	}
	path := c.devicePath(func(p *Path) { p.Rect(x, y, w, h) })
	c.fillPath(path, FillRuleNonZero)
}

// StrokeRect strokes the outline of an axis-aligned rectangle given in
// user space.
func (c *Context) StrokeRect(x, y, w, h float64) {
	if !(w > 0) || !(h > 0) {
		return
	}
	path := c.devicePath(func(p *Path) { p.Rect(x, y, w, h) })
	c.strokePath(path)
}

// ClearRect writes transparent black into an axis-aligned rectangle,
// bypassing globalCompositeOperation and globalAlpha entirely (spec
// §4.11) and respecting only the clip mask.
func (c *Context) ClearRect(x, y, w, h float64) {
	if !(w > 0) || !(h > 0) {
		return
	}
	path := c.devicePath(func(p *Path) { p.Rect(x, y, w, h) })
	rings := ipath.Flatten(toInternalPath(path.Elements()))
	iraster.Fill(rings, iraster.NonZero, c.surface.Width(), c.surface.Height(), func(x1, x2, y int) {
		for xx := x1; xx <= x2; xx++ {
			if c.state.clipMask != nil && !c.state.clipMask.Get(xx, y) {
				continue
			}
			c.surface.SetPixel(xx, y, Transparent)
		}
	})
}

// --- Fill / Stroke ---

// Fill fills the current path with the current fill paint and fill
// rule, then clears the path.
func (c *Context) Fill() {
	c.fillPath(c.path, c.state.fillRule)
	c.path.Clear()
}

// FillPreserve fills the current path without clearing it.
func (c *Context) FillPreserve() {
	c.fillPath(c.path, c.state.fillRule)
}

// FillPath fills an explicit device-space path with an explicit fill
// rule, independent of the context's current path.
func (c *Context) FillPath(path *Path, rule FillRule) {
	c.fillPath(path, rule)
}

// Stroke strokes the current path with the current stroke style, then
// clears the path.
func (c *Context) Stroke() {
	c.strokePath(c.path)
	c.path.Clear()
}

// StrokePreserve strokes the current path without clearing it.
func (c *Context) StrokePreserve() {
	c.strokePath(c.path)
}

// StrokePath strokes an explicit device-space path, independent of the
// context's current path.
func (c *Context) StrokePath(path *Path) {
	c.strokePath(path)
}

func (c *Context) fillPath(path *Path, rule FillRule) {
	if path.IsEmpty() {
		return
	}

	pre := fastPathPreconditions{
		op:          c.state.compositeOp,
		globalAlpha: c.state.globalAlpha,
		shadowed:    c.state.hasShadow(),
	}

	if !c.forceGenericPipeline {
		if solid, ok := c.state.fillPaint.(SolidColor); ok {
			pre.color = solid.Color
			if pre.eligible() {
				if c.fillFastPath(path, pre.resolvedColor()) {
					return
				}
			}
		}
	}

	c.genericPipelineUsed = true
	rings := ipath.Flatten(toInternalPath(path.Elements()))
	c.fillRings(rings, rule, c.state.fillPaint)
}

// fillFastPath attempts to recognize path as a circle or axis-aligned
// rectangle and fill it with a direct scanline routine. Reports whether
// it handled the fill.
func (c *Context) fillFastPath(path *Path, col Color) bool {
	shape := DetectShape(path)
	switch shape.Kind {
	case ShapeCircle:
		fillFullCircle(c.surface, c.state.clipMask,
			int(math.Round(shape.CenterX)), int(math.Round(shape.CenterY)),
			int(math.Round(shape.RadiusX)), col, c.state.compositeOp)
		return true
	case ShapeRect:
		x0 := int(math.Round(shape.CenterX - shape.Width/2))
		y0 := int(math.Round(shape.CenterY - shape.Height/2))
		x1 := int(math.Round(shape.CenterX + shape.Width/2))
		y1 := int(math.Round(shape.CenterY + shape.Height/2))
		fillAxisAlignedRect(c.surface, c.state.clipMask, x0, y0, x1, y1, col, c.state.compositeOp)
		return true
	}
	Logger().Debug("fast-path shape miss", "kind", shape.Kind.String(), "elements", len(path.Elements()))
	return false
}

// fillRings rasterizes rings against the surface. A solid paint is
// sampled once and written with batched spans; any other paint is
// sampled per pixel.
func (c *Context) fillRings(rings []iraster.Ring, rule FillRule, paint Paint) {
	mask := c.state.clipMask
	op := c.state.compositeOp
	alpha := c.state.globalAlpha

	if solid, ok := paint.(SolidColor); ok {
		col := applyGlobalAlpha(solid.Color, alpha)
		iraster.Fill(rings, rasterFillRule(rule), c.surface.Width(), c.surface.Height(), func(x1, x2, y int) {
			writeSpan(c.surface, mask, x1, x2, y, col, op)
		})
		return
	}

	iraster.Fill(rings, rasterFillRule(rule), c.surface.Width(), c.surface.Height(), func(x1, x2, y int) {
		for x := x1; x <= x2; x++ {
			col := applyGlobalAlpha(paint.Sample(float64(x)+0.5, float64(y)+0.5), alpha)
			writePixel(c.surface, mask, x, y, col, op)
		}
	})
}

func (c *Context) strokePath(path *Path) {
	if path.IsEmpty() {
		return
	}

	deviceWidth := c.state.transform.ScaledLineWidth(c.state.stroke.Width)
	if !(deviceWidth > 0) {
		return
	}

	pre := fastPathPreconditions{
		op:          c.state.compositeOp,
		globalAlpha: c.state.globalAlpha,
		shadowed:    c.state.hasShadow(),
	}

	if !c.forceGenericPipeline && !c.state.stroke.IsDashed() {
		if solid, ok := c.state.strokePaint.(SolidColor); ok {
			pre.color = solid.Color
			if pre.eligible() {
				if c.strokeFastPath(path, deviceWidth, pre.resolvedColor()) {
					return
				}
			}
		}
	}

	c.genericPipelineUsed = true
	rings := c.strokeOutlineRings(path, deviceWidth)
	c.fillRings(rings, FillRuleNonZero, c.state.strokePaint)
}

// strokeFastPath recognizes a stroked circle or axis-aligned rectangle
// and draws it with a direct scanline routine, per spec §4.10's circle
// dispatch: a thin (~1px) stroke and a thick stroke both reduce to the
// same inner/outer-radius annulus scan, just with a narrower band.
func (c *Context) strokeFastPath(path *Path, deviceWidth float64, col Color) bool {
	if x0, y0, x1, y1, ok := detectStraightLine(path); ok && deviceWidth <= 1.5 && c.state.stroke.Cap == LineCapButt {
		strokeThinLine(c.surface, c.state.clipMask,
			int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)), col, c.state.compositeOp)
		return true
	}

	shape := DetectShape(path)
	switch shape.Kind {
	case ShapeCircle:
		if col.A == 0 {
			return false
		}
		half := deviceWidth / 2
		strokeFullCircleAnnulus(c.surface, c.state.clipMask,
			shape.CenterX, shape.CenterY, shape.RadiusX-half, shape.RadiusX+half, col, c.state.compositeOp)
		return true
	case ShapeRect:
		x0 := int(math.Round(shape.CenterX - shape.Width/2))
		y0 := int(math.Round(shape.CenterY - shape.Height/2))
		x1 := int(math.Round(shape.CenterX + shape.Width/2))
		y1 := int(math.Round(shape.CenterY + shape.Height/2))
		strokeAxisAlignedRectBorder(c.surface, c.state.clipMask, x0, y0, x1, y1, int(math.Round(deviceWidth)), col, c.state.compositeOp)
		return true
	}
	return false
}

// detectStraightLine recognizes a path consisting of exactly one open
// MoveTo+LineTo segment, for strokeThinLine's Bresenham fast path.
func detectStraightLine(path *Path) (x0, y0, x1, y1 float64, ok bool) {
	elems := path.Elements()
	if len(elems) != 2 {
		return 0, 0, 0, 0, false
	}
	m, isMove := elems[0].(MoveTo)
	l, isLine := elems[1].(LineTo)
	if !isMove || !isLine {
		return 0, 0, 0, 0, false
	}
	return m.Point.X, m.Point.Y, l.Point.X, l.Point.Y, true
}

// strokeOutlineRings expands path into a filled outline: flatten to
// rings, optionally split each ring into dash runs, expand each
// resulting polyline through the stroke generator (which may emit
// curved caps/joins), and reflatten the result into fillable rings.
func (c *Context) strokeOutlineRings(path *Path, deviceWidth float64) []iraster.Ring {
	style := istroke.Stroke{
		Width:      deviceWidth,
		Cap:        istroke.LineCap(c.state.stroke.Cap),
		Join:       istroke.LineJoin(c.state.stroke.Join),
		MiterLimit: c.state.stroke.MiterLimit,
	}
	expander := istroke.NewStrokeExpander(style)

	rings := ipath.Flatten(toInternalPath(path.Elements()))
	var out []iraster.Ring

	dash := c.state.stroke.Dash
	if dash != nil && dash.IsDashed() {
		scale := c.state.transform.ScaledLineWidth(1.0)
		scaled := dash.Scale(scale)
		pattern := istroke.DashPattern{Array: scaled.effectiveArray(), Offset: scaled.NormalizedOffset()}

		for _, ring := range rings {
			runs := istroke.SplitDash(rasterPointsToStrokePoints(ring.Points), ring.Closed, pattern)
			for _, run := range runs {
				expanded := expander.Expand(runToStrokePath(run))
				out = append(out, ipath.Flatten(fromStrokePath(expanded))...)
			}
		}
		return out
	}

	for _, ring := range rings {
		if len(ring.Points) < 2 {
			continue // DegenerateGeometry: zero-length subpath, nothing to stroke
		}
		expanded := expander.Expand(ringToStrokePath(ring))
		out = append(out, ipath.Flatten(fromStrokePath(expanded))...)
	}
	return out
}
