package canvas

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt draws no cap; the line ends flush at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound draws a semicircular cap.
	LineCapRound
	// LineCapSquare draws a square cap extending half the line width.
	LineCapSquare
)

// LineJoin specifies the shape used to join two line segments.
type LineJoin int

const (
	// LineJoinMiter extends the outer edges until they meet, falling back
	// to a bevel when the miter length exceeds the miter limit.
	LineJoinMiter LineJoin = iota
	// LineJoinRound joins segments with a circular arc.
	LineJoinRound
	// LineJoinBevel joins segments with a flat triangular notch.
	LineJoinBevel
)

// FillRule specifies how a path's self-intersections are resolved into
// an inside/outside test.
type FillRule int

const (
	// FillRuleNonZero fills regions where the winding number is non-zero.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd fills regions where the winding number is odd.
	FillRuleEvenOdd
)

// CompositeOperation names a Porter-Duff compositing operator or the
// additive "lighter" operator, selected by Context.SetGlobalCompositeOperation.
type CompositeOperation int

const (
	CompositeSourceOver CompositeOperation = iota
	CompositeDestinationOver
	CompositeSourceIn
	CompositeDestinationIn
	CompositeSourceOut
	CompositeDestinationOut
	CompositeSourceAtop
	CompositeDestinationAtop
	CompositeXor
	CompositeCopy
	CompositeLighter
)

// Repetition names how a Pattern paint source repeats an image across
// the plane.
type Repetition int

const (
	RepeatBoth Repetition = iota
	RepeatX
	RepeatY
	RepeatNone
)
