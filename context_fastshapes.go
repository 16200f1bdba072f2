package canvas

import "math"

// --- Direct shape operations ---
//
// These build the equivalent path with BeginPath/Arc/Rect/RoundRect and
// fill or stroke it immediately, then restore whatever path was being
// built before the call. Shape detection (DetectShape) recognizes the
// resulting path as a circle or axis-aligned rectangle, so a solid,
// unshadowed, source-over paint still reaches the same fast scanline
// routines fillPath/strokePath already dispatch to; the only thing
// these methods add is not having to build the path by hand.

// withScratchPath runs build against a fresh path installed as the
// context's current path, then restores the path that was being built
// beforehand.
func (c *Context) withScratchPath(build func()) {
	saved := c.path
	c.path = NewPath()
	build()
	c.path = saved
}

// FillCircle fills a full circle centered at (cx, cy) with radius r.
func (c *Context) FillCircle(cx, cy, r float64) {
	if !(r > 0) {
		return
	}
	c.withScratchPath(func() {
		c.Arc(cx, cy, r, 0, 2*math.Pi, false)
		c.ClosePath()
		c.Fill()
	})
}

// StrokeCircle strokes a full circle centered at (cx, cy) with radius r.
func (c *Context) StrokeCircle(cx, cy, r float64) {
	if !(r > 0) {
		return
	}
	c.withScratchPath(func() {
		c.Arc(cx, cy, r, 0, 2*math.Pi, false)
		c.ClosePath()
		c.Stroke()
	})
}

// FillAndStrokeCircle fills then strokes a full circle, in one path
// build, matching HTML5 Canvas's usual fill-then-stroke ordering.
func (c *Context) FillAndStrokeCircle(cx, cy, r float64) {
	if !(r > 0) {
		return
	}
	c.withScratchPath(func() {
		c.Arc(cx, cy, r, 0, 2*math.Pi, false)
		c.ClosePath()
		c.FillPreserve()
		c.Stroke()
	})
}

// StrokeLine strokes a single straight segment between two points.
func (c *Context) StrokeLine(x0, y0, x1, y1 float64) {
	c.withScratchPath(func() {
		c.MoveTo(x0, y0)
		c.LineTo(x1, y1)
		c.Stroke()
	})
}

// FillArc fills the pie slice bounded by a circular arc and its two
// radii back to the center.
func (c *Context) FillArc(cx, cy, r, startAngle, endAngle float64, ccw bool) {
	if !(r > 0) {
		return
	}
	c.withScratchPath(func() {
		c.MoveTo(cx, cy)
		c.Arc(cx, cy, r, startAngle, endAngle, ccw)
		c.ClosePath()
		c.Fill()
	})
}

// OuterStrokeArc strokes just the circular arc itself, without the
// closing radii FillArc draws.
func (c *Context) OuterStrokeArc(cx, cy, r, startAngle, endAngle float64, ccw bool) {
	if !(r > 0) {
		return
	}
	c.withScratchPath(func() {
		c.Arc(cx, cy, r, startAngle, endAngle, ccw)
		c.Stroke()
	})
}

// FillAndOuterStrokeArc fills the pie slice and strokes only the arc
// edge, leaving the two radii unstroked.
func (c *Context) FillAndOuterStrokeArc(cx, cy, r, startAngle, endAngle float64, ccw bool) {
	if !(r > 0) {
		return
	}
	c.withScratchPath(func() {
		c.MoveTo(cx, cy)
		c.Arc(cx, cy, r, startAngle, endAngle, ccw)
		c.ClosePath()
		c.Fill()
	})
	c.withScratchPath(func() {
		c.Arc(cx, cy, r, startAngle, endAngle, ccw)
		c.Stroke()
	})
}

// FillRoundRect fills a rounded rectangle. radii follows HTML5 Canvas's
// 1/2/4-value convention.
func (c *Context) FillRoundRect(x, y, w, h float64, radii ...float64) {
	if !(w > 0) || !(h > 0) {
		return
	}
	c.withScratchPath(func() {
		c.RoundRect(x, y, w, h, radii...)
		c.Fill()
	})
}

// StrokeRoundRect strokes a rounded rectangle.
func (c *Context) StrokeRoundRect(x, y, w, h float64, radii ...float64) {
	if !(w > 0) || !(h > 0) {
		return
	}
	c.withScratchPath(func() {
		c.RoundRect(x, y, w, h, radii...)
		c.Stroke()
	})
}

// FillAndStrokeRoundRect fills then strokes a rounded rectangle.
func (c *Context) FillAndStrokeRoundRect(x, y, w, h float64, radii ...float64) {
	if !(w > 0) || !(h > 0) {
		return
	}
	c.withScratchPath(func() {
		c.RoundRect(x, y, w, h, radii...)
		c.FillPreserve()
		c.Stroke()
	})
}

// FillAndStrokeRect fills then strokes an axis-aligned rectangle.
func (c *Context) FillAndStrokeRect(x, y, w, h float64) {
	c.FillRect(x, y, w, h)
	c.StrokeRect(x, y, w, h)
}
