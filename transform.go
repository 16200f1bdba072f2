package canvas

import "math"

// Transform is a 2D affine transformation matrix, matching the HTML5
// Canvas convention:
//
//	| a  c  e |
//	| b  d  f |
//	| 0  0  1 |
//
// mapping a point as x' = a*x + c*y + e, y' = b*x + d*y + f.
type Transform struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: 1, B: 0, C: 0, D: 1, E: 0, F: 0}
}

// TranslateTransform returns a pure translation transform.
func TranslateTransform(x, y float64) Transform {
	return Transform{A: 1, B: 0, C: 0, D: 1, E: x, F: y}
}

// ScaleTransform returns a pure scale transform.
func ScaleTransform(x, y float64) Transform {
	return Transform{A: x, B: 0, C: 0, D: y, E: 0, F: 0}
}

// RotateTransform returns a pure rotation transform (angle in radians).
func RotateTransform(angle float64) Transform {
	s, c := math.Sin(angle), math.Cos(angle)
	return Transform{A: c, B: s, C: -s, D: c, E: 0, F: 0}
}

// ShearTransform returns a pure shear transform.
func ShearTransform(x, y float64) Transform {
	return Transform{A: 1, B: y, C: x, D: 1, E: 0, F: 0}
}

// Multiply returns self·other, i.e. other applied first, then self. This
// is the operation Context.Transform uses to post-multiply the current
// transformation matrix by a newly supplied one.
func (t Transform) Multiply(other Transform) Transform {
	return Transform{
		A: t.A*other.A + t.C*other.B,
		B: t.B*other.A + t.D*other.B,
		C: t.A*other.C + t.C*other.D,
		D: t.B*other.C + t.D*other.D,
		E: t.A*other.E + t.C*other.F + t.E,
		F: t.B*other.E + t.D*other.F + t.F,
	}
}

// TransformPoint maps a point through the transform.
func (t Transform) TransformPoint(p Point) Point {
	return Point{
		X: t.A*p.X + t.C*p.Y + t.E,
		Y: t.B*p.X + t.D*p.Y + t.F,
	}
}

// TransformVector maps a vector (direction, no translation) through the
// transform.
func (t Transform) TransformVector(p Point) Point {
	return Point{X: t.A*p.X + t.C*p.Y, Y: t.B*p.X + t.D*p.Y}
}

// Determinant returns a*d - b*c.
func (t Transform) Determinant() float64 {
	return t.A*t.D - t.B*t.C
}

// Invertible reports whether the transform has a usable inverse.
func (t Transform) Invertible() bool {
	return math.Abs(t.Determinant()) > 1e-10
}

// Invert returns the inverse transform, or the identity transform if the
// transform is not invertible (determinant within epsilon of zero).
func (t Transform) Invert() Transform {
	det := t.Determinant()
	if math.Abs(det) < 1e-10 {
		return Identity()
	}
	invDet := 1.0 / det
	return Transform{
		A: t.D * invDet,
		B: -t.B * invDet,
		C: -t.C * invDet,
		D: t.A * invDet,
		E: (t.C*t.F - t.D*t.E) * invDet,
		F: (t.B*t.E - t.A*t.F) * invDet,
	}
}

// IsIdentity reports exact equality with the identity transform.
func (t Transform) IsIdentity() bool {
	return t.A == 1 && t.B == 0 && t.C == 0 && t.D == 1 && t.E == 0 && t.F == 0
}

// Rotation returns the transform's rotation angle in radians, atan2(b, a).
func (t Transform) Rotation() float64 {
	return math.Atan2(t.B, t.A)
}

// ScaleX returns the magnitude of the transform's first column, hypot(a, b).
func (t Transform) ScaleX() float64 {
	return math.Hypot(t.A, t.B)
}

// ScaleY returns the magnitude of the transform's second column, hypot(c, d).
func (t Transform) ScaleY() float64 {
	return math.Hypot(t.C, t.D)
}

// IsUniformScale reports whether the transform scales the X and Y axes by
// the same factor (within tolerance), which is the precondition several
// fast paths require when the transform also rotates.
func (t Transform) IsUniformScale() bool {
	sx, sy := t.ScaleX(), t.ScaleY()
	if sx == 0 || sy == 0 {
		return sx == sy
	}
	return math.Abs(sx-sy) < 1e-6*math.Max(sx, sy)
}

// IsAxisAligned reports whether the transform has no rotation or shear
// component (b == 0 && c == 0), the precondition fast-path rect rendering
// requires.
func (t Transform) IsAxisAligned() bool {
	return t.B == 0 && t.C == 0
}

// ScaledLineWidth returns the device-space line width produced by scaling
// a user-space width w through this transform's area scale factor,
// w * sqrt(|ad - bc|).
func (t Transform) ScaledLineWidth(w float64) float64 {
	return w * math.Sqrt(math.Abs(t.Determinant()))
}
