package canvas

// IsPointInPath reports whether (x, y), given in the same device space
// as the path itself (no inverse-transform is applied), lies inside the
// current path under the given fill rule.
func (c *Context) IsPointInPath(x, y float64, rule FillRule) bool {
	winding := c.path.Winding(Pt(x, y))
	if rule == FillRuleEvenOdd {
		return winding%2 != 0
	}
	return winding != 0
}

// IsPointInStroke reports whether (x, y), given in device space, lies
// inside the outline the current path's stroke would occupy. Always
// uses the non-zero rule, since a stroke outline never self-intersects
// in a way evenodd would need to resolve differently.
func (c *Context) IsPointInStroke(x, y float64) bool {
	deviceWidth := c.state.transform.ScaledLineWidth(c.state.stroke.Width)
	if !(deviceWidth > 0) {
		return false
	}
	rings := c.strokeOutlineRings(c.path, deviceWidth)
	outline := NewPath()
	for _, ring := range rings {
		if len(ring.Points) == 0 {
			continue
		}
		outline.MoveTo(ring.Points[0].X, ring.Points[0].Y)
		for _, p := range ring.Points[1:] {
			outline.LineTo(p.X, p.Y)
		}
		outline.ClosePath()
	}
	return outline.Contains(Pt(x, y))
}
