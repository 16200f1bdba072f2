package canvas

import (
	"math"
	"testing"
)

func TestPointAddSubMulDiv(t *testing.T) {
	a := Pt(1, 2)
	b := Pt(3, 4)
	if got := a.Add(b); got != (Point{4, 6}) {
		t.Errorf("Add = %v, want (4,6)", got)
	}
	if got := b.Sub(a); got != (Point{2, 2}) {
		t.Errorf("Sub = %v, want (2,2)", got)
	}
	if got := a.Mul(2); got != (Point{2, 4}) {
		t.Errorf("Mul = %v, want (2,4)", got)
	}
	if got := a.Div(2); got != (Point{0.5, 1}) {
		t.Errorf("Div = %v, want (0.5,1)", got)
	}
}

func TestPointDotAndCross(t *testing.T) {
	a := Pt(1, 0)
	b := Pt(0, 1)
	if got := a.Dot(b); got != 0 {
		t.Errorf("expected perpendicular dot product 0, got %v", got)
	}
	if got := a.Cross(b); got != 1 {
		t.Errorf("expected Cross((1,0),(0,1)) = 1, got %v", got)
	}
}

func TestPointLengthAndLengthSquared(t *testing.T) {
	p := Pt(3, 4)
	if p.Length() != 5 {
		t.Errorf("expected length 5, got %v", p.Length())
	}
	if p.LengthSquared() != 25 {
		t.Errorf("expected length-squared 25, got %v", p.LengthSquared())
	}
}

func TestPointDistance(t *testing.T) {
	if got := Pt(0, 0).Distance(Pt(3, 4)); got != 5 {
		t.Errorf("expected distance 5, got %v", got)
	}
}

func TestPointNormalize(t *testing.T) {
	p := Pt(3, 4).Normalize()
	if math.Abs(p.Length()-1) > 1e-9 {
		t.Fatalf("expected a unit-length result, got length %v", p.Length())
	}
}

func TestPointNormalizeZeroIsZero(t *testing.T) {
	if got := Pt(0, 0).Normalize(); got != (Point{}) {
		t.Fatalf("expected normalizing the zero point to return zero, got %v", got)
	}
}

func TestPointRotateQuarterTurn(t *testing.T) {
	p := Pt(1, 0).Rotate(math.Pi / 2)
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Y-1) > 1e-9 {
		t.Fatalf("expected a quarter turn of (1,0) to land near (0,1), got %v", p)
	}
}

func TestPointLerp(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(10, 10)
	if got := a.Lerp(b, 0.25); got != (Point{2.5, 2.5}) {
		t.Errorf("Lerp(0.25) = %v, want (2.5,2.5)", got)
	}
}
