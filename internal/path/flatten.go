// Package path converts curve/arc path commands into polygon rings at a
// resolution-appropriate tolerance, for consumption by the polygon
// filler and stroke generator.
package path

import (
	"math"

	"github.com/davidedc/SWCanvas-sub003/internal/raster"
)

// Point is a path vertex (internal copy to avoid an import cycle with
// the root package).
type Point = raster.Point

// Tolerance is the maximum chord-to-curve distance allowed before a
// curve segment is subdivided further, in device pixels.
const Tolerance = 0.25

// PathElement mirrors the root package's sealed path element set.
type PathElement interface {
	isPathElement()
}

// MoveTo begins a new subpath at Point.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo appends a straight segment to Point.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// QuadTo appends a quadratic Bezier segment.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isPathElement() {}

// CubicTo appends a cubic Bezier segment.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the current subpath back to its start.
type Close struct{}

func (Close) isPathElement() {}

// Flatten converts a sequence of path elements into polygon rings, one
// per subpath. A subpath terminated by Close is marked Closed; any
// other subpath (including the implicit final one) is left open —
// still useful for stroking, but filled as if a straight closing
// segment were present, per the filler's always-closed fill semantics.
func Flatten(elements []PathElement) []raster.Ring {
	var rings []raster.Ring
	var current []Point
	var start Point
	var hasCurrent bool

	flushOpen := func() {
		if len(current) > 0 {
			rings = append(rings, raster.Ring{Points: current, Closed: false})
		}
		current = nil
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			flushOpen()
			start = e.Point
			current = []Point{start}
			hasCurrent = true

		case LineTo:
			if !hasCurrent {
				start = e.Point
				current = []Point{start}
				hasCurrent = true
				continue
			}
			current = append(current, e.Point)

		case QuadTo:
			if !hasCurrent {
				continue
			}
			p0 := current[len(current)-1]
			current = append(current, flattenQuadratic(p0, e.Control, e.Point, Tolerance)...)

		case CubicTo:
			if !hasCurrent {
				continue
			}
			p0 := current[len(current)-1]
			current = append(current, flattenCubic(p0, e.Control1, e.Control2, e.Point, Tolerance)...)

		case Close:
			if hasCurrent && len(current) > 0 {
				rings = append(rings, raster.Ring{Points: current, Closed: true})
			}
			current = nil
			hasCurrent = false
		}
	}
	flushOpen()

	return rings
}

func lerp(p, q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

func sub(p, q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }
func add(p, q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func mul(p Point, s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }
func dot(p, q Point) float64 { return p.X*q.X + p.Y*q.Y }
func length(p Point) float64 { return math.Sqrt(p.X*p.X + p.Y*p.Y) }
func dist(p, q Point) float64 { return length(sub(p, q)) }

// flattenQuadratic flattens a quadratic Bezier curve into line segments
// (excluding p0, including p2).
func flattenQuadratic(p0, p1, p2 Point, tolerance float64) []Point {
	var points []Point
	flattenQuadraticRec(p0, p1, p2, tolerance, &points)
	return points
}

func flattenQuadraticRec(p0, p1, p2 Point, tolerance float64, points *[]Point) {
	if distanceToLine(p1, p0, p2) < tolerance {
		*points = append(*points, p2)
		return
	}

	q0 := lerp(p0, p1, 0.5)
	q1 := lerp(p1, p2, 0.5)
	q2 := lerp(q0, q1, 0.5)

	flattenQuadraticRec(p0, q0, q2, tolerance, points)
	flattenQuadraticRec(q2, q1, p2, tolerance, points)
}

// flattenCubic flattens a cubic Bezier curve into line segments
// (excluding p0, including p3).
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64) []Point {
	var points []Point
	flattenCubicRec(p0, p1, p2, p3, tolerance, &points)
	return points
}

func flattenCubicRec(p0, p1, p2, p3 Point, tolerance float64, points *[]Point) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if math.Max(d1, d2) < tolerance {
		*points = append(*points, p3)
		return
	}

	q0 := lerp(p0, p1, 0.5)
	q1 := lerp(p1, p2, 0.5)
	q2 := lerp(p2, p3, 0.5)
	r0 := lerp(q0, q1, 0.5)
	r1 := lerp(q1, q2, 0.5)
	s := lerp(r0, r1, 0.5)

	flattenCubicRec(p0, q0, r0, s, tolerance, points)
	flattenCubicRec(s, r1, q2, p3, tolerance, points)
}

// distanceToLine is the perpendicular distance from p to segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := sub(b, a)
	abLen := length(ab)
	if abLen < 1e-10 {
		return dist(p, a)
	}

	ap := sub(p, a)
	t := dot(ap, ab) / (abLen * abLen)

	if t < 0 {
		return dist(p, a)
	}
	if t > 1 {
		return dist(p, b)
	}

	closest := add(a, mul(ab, t))
	return dist(p, closest)
}
