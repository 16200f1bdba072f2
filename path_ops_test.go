package canvas

import (
	"math"
	"testing"
)

func squarePath() *Path {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.LineTo(0, 10)
	p.ClosePath()
	return p
}

func TestAreaOfSquare(t *testing.T) {
	area := squarePath().Area()
	if math.Abs(math.Abs(area)-100) > 1e-9 {
		t.Fatalf("expected |area| = 100 for a 10x10 square, got %v", area)
	}
}

func TestAreaSignIndicatesWinding(t *testing.T) {
	cw := NewPath()
	cw.MoveTo(0, 0)
	cw.LineTo(10, 0)
	cw.LineTo(10, 10)
	cw.LineTo(0, 10)
	cw.ClosePath()

	ccw := NewPath()
	ccw.MoveTo(0, 0)
	ccw.LineTo(0, 10)
	ccw.LineTo(10, 10)
	ccw.LineTo(10, 0)
	ccw.ClosePath()

	if cw.Area()*ccw.Area() >= 0 {
		t.Fatalf("expected opposite winding directions to produce opposite-signed areas, got %v and %v", cw.Area(), ccw.Area())
	}
}

func TestWindingAndContainsSquare(t *testing.T) {
	p := squarePath()
	if !p.Contains(Pt(5, 5)) {
		t.Fatalf("expected center point to be contained")
	}
	if p.Contains(Pt(20, 20)) {
		t.Fatalf("expected far outside point to not be contained")
	}
	if p.Winding(Pt(5, 5)) == 0 {
		t.Fatalf("expected non-zero winding at the center")
	}
}

func TestContainsEvenOddHole(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(20, 0)
	p.LineTo(20, 20)
	p.LineTo(0, 20)
	p.ClosePath()
	// Inner ring wound the same direction: NonZero sums to 2 (still inside);
	// this only demonstrates Winding's raw value, not a fill-rule decision.
	p.MoveTo(5, 5)
	p.LineTo(15, 5)
	p.LineTo(15, 15)
	p.LineTo(5, 15)
	p.ClosePath()

	if p.Winding(Pt(10, 10)) != 2 {
		t.Fatalf("expected winding 2 inside two same-direction overlapping rings, got %d", p.Winding(Pt(10, 10)))
	}
}

func TestBoundingBoxOfSquare(t *testing.T) {
	bbox := squarePath().BoundingBox()
	if bbox.Min != (Point{0, 0}) || bbox.Max != (Point{10, 10}) {
		t.Fatalf("expected bbox [0,0]-[10,10], got %v-%v", bbox.Min, bbox.Max)
	}
}

func TestBoundingBoxEmptyPath(t *testing.T) {
	if got := NewPath().BoundingBox(); got != (Rect{}) {
		t.Fatalf("expected zero-value bbox for empty path, got %v", got)
	}
}

func TestBoundingBoxIncludesCurveExtrema(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.QuadraticCurveTo(50, 100, 100, 0)

	bbox := p.BoundingBox()
	if bbox.Max.Y < 40 {
		t.Fatalf("expected bbox to include the curve's peak, got max.Y=%v", bbox.Max.Y)
	}
}

func TestLengthOfStraightLine(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(3, 4)

	if got := p.Length(0.001); math.Abs(got-5) > 1e-6 {
		t.Fatalf("expected length 5 for a 3-4-5 triangle side, got %v", got)
	}
}

func TestLengthOfSquarePerimeter(t *testing.T) {
	if got := squarePath().Length(0.001); math.Abs(got-40) > 1e-6 {
		t.Fatalf("expected perimeter 40 for a 10x10 square, got %v", got)
	}
}

func TestReversedPreservesShape(t *testing.T) {
	p := squarePath()
	rev := p.Reversed()

	if math.Abs(math.Abs(rev.Area())-math.Abs(p.Area())) > 1e-9 {
		t.Fatalf("expected reversing to preserve area magnitude, got %v vs %v", rev.Area(), p.Area())
	}
	if rev.Area()*p.Area() >= 0 {
		t.Fatalf("expected reversing to flip winding direction")
	}
}

func TestFlattenProducesPointsAlongPath(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)

	pts := p.Flatten(0.1)
	if len(pts) < 2 {
		t.Fatalf("expected at least 2 points, got %d", len(pts))
	}
	if pts[0] != (Point{0, 0}) {
		t.Errorf("expected first point (0,0), got %v", pts[0])
	}
	last := pts[len(pts)-1]
	if last != (Point{10, 0}) {
		t.Errorf("expected last point (10,0), got %v", last)
	}
}
