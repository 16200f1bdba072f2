package canvas

// Vec2 is Point used as a displacement rather than a position: curve
// tangents, normals and offsets read clearer typed as Vec2 even though
// the underlying arithmetic (Add, Sub, Dot, Cross, Length, Normalize,
// Lerp, Rotate, ...) is exactly Point's. The alias keeps that single
// method set instead of a parallel copy that would drift from it;
// Neg, Perp, Atan2, Angle, IsZero and Approx live on Point itself for
// the same reason.
type Vec2 = Point

// V2 is a convenience function to create a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// LengthSq returns the squared length of the vector. Faster than
// Length when only comparing magnitudes.
func (p Point) LengthSq() float64 {
	return p.LengthSquared()
}

// ToPoint converts a Vec2 to a Point. Since Vec2 is an alias for
// Point this is the identity; it exists so call sites can document
// the displacement-to-position transition at the type level.
func (p Point) ToPoint() Point {
	return p
}

// PointToVec2 converts a Point to a Vec2.
func PointToVec2(p Point) Vec2 {
	return p
}
