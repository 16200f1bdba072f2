package canvas

import "math"

// PathElement is a single command in a Path's append-only command
// sequence. It is a sealed sum type: the only implementations are the
// ones in this file.
type PathElement interface {
	isPathElement()
}

// MoveTo begins a new subpath at Point without drawing.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a straight line to Point.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve through Control to Point.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve through Control1, Control2 to Point.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath with a straight line back to its
// starting point and begins a new subpath there.
type Close struct{}

func (Close) isPathElement() {}

// Path is an append-only sequence of path commands, the way HTML5 Canvas
// paths are built. BeginPath (Clear) discards all commands and starts
// over; nothing else removes a command once appended.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
	hasPoint bool
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 16)}
}

// MoveTo begins a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	p.hasPoint = true
}

// LineTo appends a straight line segment to (x, y). If the path has no
// current point, it behaves as MoveTo.
func (p *Path) LineTo(x, y float64) {
	if !p.hasPoint {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticCurveTo appends a quadratic Bezier curve with control point
// (cx, cy) ending at (x, y).
func (p *Path) QuadraticCurveTo(cx, cy, x, y float64) {
	if !p.hasPoint {
		p.MoveTo(cx, cy)
	}
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// BezierCurveTo appends a cubic Bezier curve with control points
// (c1x, c1y), (c2x, c2y) ending at (x, y).
func (p *Path) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !p.hasPoint {
		p.MoveTo(c1x, c1y)
	}
	ctrl1 := Pt(c1x, c1y)
	ctrl2 := Pt(c2x, c2y)
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{Control1: ctrl1, Control2: ctrl2, Point: pt})
	p.current = pt
}

// ClosePath closes the current subpath: it appends an implicit line back
// to the subpath's starting point, then begins a new subpath there, so
// that a following LineTo continues from the close point rather than
// from wherever the path happened to end.
func (p *Path) ClosePath() {
	if len(p.elements) == 0 {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear discards all path commands (BeginPath).
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
	p.hasPoint = false
}

// Elements returns the path's command sequence.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the path's current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint reports whether the path has a current point.
func (p *Path) HasCurrentPoint() bool {
	return p.hasPoint
}

// IsEmpty reports whether the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Transform returns a new path with every point mapped through t.
func (p *Path) Transform(t Transform) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := t.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := t.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := t.TransformPoint(e.Control)
			pt := t.TransformPoint(e.Point)
			result.QuadraticCurveTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			ctrl1 := t.TransformPoint(e.Control1)
			ctrl2 := t.TransformPoint(e.Control2)
			pt := t.TransformPoint(e.Point)
			result.BezierCurveTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case Close:
			result.ClosePath()
		}
	}
	return result
}

// Rect adds an axis-aligned rectangle as a new closed subpath:
// MoveTo(x,y); LineTo x3; ClosePath. No MoveTo is appended after the
// ClosePath; the ClosePath itself leaves the current point at (x,y),
// matching HTML5 Canvas's rect() behavior.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.ClosePath()
}

const kappa = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)

// Ellipse adds an elliptical arc centered at (cx, cy) with radii
// (rx, ry), rotated by rot radians, swept from startAngle to endAngle.
// ccw selects the sweep direction: false sweeps angles increasing mod
// 2*pi, true sweeps them decreasing.
func (p *Path) Ellipse(cx, cy, rx, ry, rot, startAngle, endAngle float64, ccw bool) {
	sweepSegmentsEllipse(p, cx, cy, rx, ry, rot, startAngle, endAngle, ccw)
}

// Arc adds a circular arc; equivalent to Ellipse with rx == ry == r and
// no rotation.
func (p *Path) Arc(cx, cy, r, startAngle, endAngle float64, ccw bool) {
	sweepSegmentsEllipse(p, cx, cy, r, r, 0, startAngle, endAngle, ccw)
}

func sweepSegmentsEllipse(p *Path, cx, cy, rx, ry, rot, a1, a2 float64, ccw bool) {
	const twoPi = 2 * math.Pi
	delta := a2 - a1
	if ccw {
		for delta > 0 {
			delta -= twoPi
		}
		if a1 == a2 {
			delta = -twoPi
		}
	} else {
		for delta < 0 {
			delta += twoPi
		}
		if a1 == a2 {
			delta = twoPi
		}
	}

	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil(math.Abs(delta) / maxAngle))
	if numSegments < 1 {
		numSegments = 1
	}
	angleStep := delta / float64(numSegments)

	cosRot, sinRot := math.Cos(rot), math.Sin(rot)
	pointOn := func(angle float64) Point {
		ex := rx * math.Cos(angle)
		ey := ry * math.Sin(angle)
		return Point{X: cx + ex*cosRot - ey*sinRot, Y: cy + ex*sinRot + ey*cosRot}
	}

	start := pointOn(a1)
	if !p.hasPoint {
		p.MoveTo(start.X, start.Y)
	} else {
		p.LineTo(start.X, start.Y)
	}

	for i := 0; i < numSegments; i++ {
		s1 := a1 + float64(i)*angleStep
		s2 := s1 + angleStep
		ellipseArcSegment(p, cx, cy, rx, ry, cosRot, sinRot, s1, s2)
	}
}

// ellipseArcSegment appends one cubic-Bezier approximation of an
// elliptical arc segment no larger than 90 degrees.
func ellipseArcSegment(p *Path, cx, cy, rx, ry, cosRot, sinRot, a1, a2 float64) {
	delta := a2 - a1
	alpha := 4.0 / 3.0 * math.Tan(delta/4)

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	rot := func(ex, ey float64) (float64, float64) {
		return ex*cosRot - ey*sinRot, ex*sinRot + ey*cosRot
	}

	e1x, e1y := rot(rx*cos1, ry*sin1)
	e2x, e2y := rot(rx*cos2, ry*sin2)
	d1x, d1y := rot(-rx*sin1, ry*cos1)
	d2x, d2y := rot(-rx*sin2, ry*cos2)

	x1, y1 := cx+e1x, cy+e1y
	x2, y2 := cx+e2x, cy+e2y
	c1x, c1y := x1+alpha*d1x, y1+alpha*d1y
	c2x, c2y := x2-alpha*d2x, y2-alpha*d2y

	p.BezierCurveTo(c1x, c1y, c2x, c2y, x2, y2)
}

// ArcTo adds a circular arc tangent to the line from the path's current
// point to (x1, y1), and to the line from (x1, y1) to (x2, y2), with
// radius r. If the current point, (x1, y1), and (x2, y2) are collinear,
// or r is zero, it degrades to a straight LineTo(x1, y1).
func (p *Path) ArcTo(x1, y1, x2, y2, r float64) {
	if !p.hasPoint {
		p.MoveTo(x1, y1)
		return
	}
	p0 := p.current
	p1 := Pt(x1, y1)
	p2 := Pt(x2, y2)

	v1 := p0.Sub(p1)
	v2 := p2.Sub(p1)
	len1 := v1.Length()
	len2 := v2.Length()
	if r == 0 || len1 == 0 || len2 == 0 {
		p.LineTo(x1, y1)
		return
	}

	u1 := v1.Div(len1)
	u2 := v2.Div(len2)
	cross := u1.Cross(u2)
	if math.Abs(cross) < 1e-12 {
		// Collinear: degenerate to a straight line.
		p.LineTo(x1, y1)
		return
	}

	angle := math.Acos(clamp01ToRange(u1.Dot(u2), -1, 1))
	dist := r / math.Tan(angle/2)
	if math.IsInf(dist, 0) || math.IsNaN(dist) {
		p.LineTo(x1, y1)
		return
	}

	tangent1 := p1.Add(u1.Mul(dist))
	tangent2 := p1.Add(u2.Mul(dist))

	// Bisector direction determines the arc center.
	bisector := u1.Add(u2).Normalize()
	centerDist := r / math.Sin(angle/2)
	center := p1.Add(bisector.Mul(centerDist))

	startAngle := math.Atan2(tangent1.Y-center.Y, tangent1.X-center.X)
	endAngle := math.Atan2(tangent2.Y-center.Y, tangent2.X-center.X)
	ccw := cross > 0

	p.LineTo(tangent1.X, tangent1.Y)
	p.Arc(center.X, center.Y, r, startAngle, endAngle, ccw)
}

func clamp01ToRange(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// RoundRect adds a rectangle with rounded corners to the path. radii
// gives 1, 2, or 4 corner radii (HTML5 Canvas semantics): a single value
// applies to all corners; four values apply to top-left, top-right,
// bottom-right, bottom-left in order.
func (p *Path) RoundRect(x, y, w, h float64, radii []float64) {
	var tl, tr, br, bl float64
	switch len(radii) {
	case 0:
		tl, tr, br, bl = 0, 0, 0, 0
	case 1:
		tl, tr, br, bl = radii[0], radii[0], radii[0], radii[0]
	case 2:
		tl, tr, br, bl = radii[0], radii[1], radii[0], radii[1]
	default:
		tl, tr, br, bl = radii[0], radii[1], radii[2], radii[3]
	}

	maxR := math.Min(w, h) / 2
	clamp := func(r float64) float64 {
		if r < 0 {
			return 0
		}
		if r > maxR {
			return maxR
		}
		return r
	}
	tl, tr, br, bl = clamp(tl), clamp(tr), clamp(br), clamp(bl)

	p.MoveTo(x+tl, y)
	p.LineTo(x+w-tr, y)
	if tr > 0 {
		p.Arc(x+w-tr, y+tr, tr, -math.Pi/2, 0, false)
	}
	p.LineTo(x+w, y+h-br)
	if br > 0 {
		p.Arc(x+w-br, y+h-br, br, 0, math.Pi/2, false)
	}
	p.LineTo(x+bl, y+h)
	if bl > 0 {
		p.Arc(x+bl, y+h-bl, bl, math.Pi/2, math.Pi, false)
	}
	p.LineTo(x, y+tl)
	if tl > 0 {
		p.Arc(x+tl, y+tl, tl, math.Pi, 3*math.Pi/2, false)
	}
	p.ClosePath()
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	result.hasPoint = p.hasPoint
	return result
}
