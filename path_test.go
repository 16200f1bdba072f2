package canvas

import (
	"math"
	"testing"
)

func TestPathMoveToStartsSubpath(t *testing.T) {
	p := NewPath()
	p.MoveTo(3, 4)
	if !p.HasCurrentPoint() {
		t.Fatalf("expected MoveTo to set a current point")
	}
	if p.CurrentPoint() != (Point{3, 4}) {
		t.Fatalf("expected current point (3,4), got %v", p.CurrentPoint())
	}
}

func TestPathLineToWithoutMoveToActsLikeMoveTo(t *testing.T) {
	p := NewPath()
	p.LineTo(5, 5)
	elems := p.Elements()
	if len(elems) != 1 {
		t.Fatalf("expected a single element, got %d", len(elems))
	}
	if _, ok := elems[0].(MoveTo); !ok {
		t.Fatalf("expected a dangling LineTo to become a MoveTo, got %T", elems[0])
	}
}

func TestPathQuadraticCurveToWithoutMoveToInsertsImplicitMoveTo(t *testing.T) {
	p := NewPath()
	p.QuadraticCurveTo(1, 1, 2, 2)
	elems := p.Elements()
	if len(elems) != 2 {
		t.Fatalf("expected an implicit MoveTo plus the QuadTo, got %d elements", len(elems))
	}
	if _, ok := elems[0].(MoveTo); !ok {
		t.Fatalf("expected the first element to be an implicit MoveTo, got %T", elems[0])
	}
}

func TestPathClosePathOnEmptyPathIsNoOp(t *testing.T) {
	p := NewPath()
	p.ClosePath()
	if len(p.Elements()) != 0 {
		t.Fatalf("expected ClosePath on an empty path to append nothing")
	}
}

func TestPathClosePathReturnsCurrentToStart(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.ClosePath()
	if p.CurrentPoint() != (Point{0, 0}) {
		t.Fatalf("expected ClosePath to reset current point to the subpath start, got %v", p.CurrentPoint())
	}
}

func TestPathClearResetsEverything(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.LineTo(2, 2)
	p.Clear()
	if !p.IsEmpty() || p.HasCurrentPoint() {
		t.Fatalf("expected Clear to empty the path and drop the current point")
	}
}

func TestPathTransformMapsEveryPoint(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.LineTo(2, 2)
	moved := p.Transform(TranslateTransform(10, 0))
	elems := moved.Elements()
	m := elems[0].(MoveTo)
	l := elems[1].(LineTo)
	if m.Point != (Point{11, 1}) || l.Point != (Point{12, 2}) {
		t.Fatalf("expected every point translated by (10,0), got MoveTo=%v LineTo=%v", m.Point, l.Point)
	}
}

func TestPathRectProducesClosedRectangleWithoutTrailingMoveTo(t *testing.T) {
	p := NewPath()
	p.Rect(0, 0, 4, 2)
	elems := p.Elements()
	if len(elems) != 5 {
		t.Fatalf("expected MoveTo+3*LineTo+Close (5 elements), got %d: %v", len(elems), elems)
	}
	if _, ok := elems[4].(Close); !ok {
		t.Fatalf("expected Rect to end with Close, got %T", elems[4])
	}
}

func TestPathArcFullCircleEndsWithClosablePath(t *testing.T) {
	p := NewPath()
	p.Arc(5, 5, 3, 0, 2*math.Pi, false)
	if p.IsEmpty() {
		t.Fatalf("expected Arc to append path elements")
	}
	last := p.CurrentPoint()
	if math.Abs(last.X-8) > 1e-6 || math.Abs(last.Y-5) > 1e-6 {
		t.Fatalf("expected a full-circle arc to end back near its start (8,5), got %v", last)
	}
}

func TestPathArcToDegeneratesToLineWhenCollinear(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.ArcTo(5, 0, 10, 0, 2)
	elems := p.Elements()
	if len(elems) != 2 {
		t.Fatalf("expected MoveTo+LineTo for a collinear ArcTo, got %d elements", len(elems))
	}
	if _, ok := elems[1].(LineTo); !ok {
		t.Fatalf("expected the collinear case to degrade to LineTo, got %T", elems[1])
	}
}

func TestPathArcToZeroRadiusDegeneratesToLine(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.ArcTo(5, 5, 10, 0, 0)
	elems := p.Elements()
	if _, ok := elems[len(elems)-1].(LineTo); !ok {
		t.Fatalf("expected zero radius to degrade to a LineTo, got %T", elems[len(elems)-1])
	}
}

func TestPathArcToProducesTangentArcForRightAngleCorner(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.ArcTo(10, 0, 10, 10, 2)
	elems := p.Elements()
	foundCurve := false
	for _, e := range elems {
		if _, ok := e.(CubicTo); ok {
			foundCurve = true
		}
	}
	if !foundCurve {
		t.Fatalf("expected a right-angle corner ArcTo to produce curve segments")
	}
}

func TestPathRoundRectClampsOversizedRadius(t *testing.T) {
	p := NewPath()
	p.RoundRect(0, 0, 4, 4, []float64{100})
	if p.IsEmpty() {
		t.Fatalf("expected RoundRect to append path elements")
	}
	elems := p.Elements()
	if _, ok := elems[len(elems)-1].(Close); !ok {
		t.Fatalf("expected RoundRect to end with Close, got %T", elems[len(elems)-1])
	}
}

func TestPathRoundRectTwoRadiiAppliesDiagonally(t *testing.T) {
	p := NewPath()
	p.RoundRect(0, 0, 10, 10, []float64{1, 2})
	if p.IsEmpty() {
		t.Fatalf("expected RoundRect with two radii to still build a path")
	}
}

func TestPathCloneIsIndependent(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	clone := p.Clone()
	p.LineTo(2, 2)
	if len(clone.Elements()) != 1 {
		t.Fatalf("expected Clone to snapshot the path, unaffected by later mutation, got %d elements", len(clone.Elements()))
	}
}
