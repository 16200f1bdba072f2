package canvas

import "github.com/davidedc/SWCanvas-sub003/internal/clip"

// GraphicsState is the saved/restored portion of a Context's drawing
// state: everything Save/Restore push and pop, grouped the way HTML5
// Canvas 2D's drawing state is specified.
type GraphicsState struct {
	transform Transform

	fillPaint   Paint
	strokePaint Paint
	stroke      Stroke
	fillRule    FillRule

	globalAlpha float64
	compositeOp CompositeOperation

	shadowColor   Color
	shadowBlur    float64
	shadowOffsetX float64
	shadowOffsetY float64

	// clipMask is nil when unclipped. Clip/ClipRect always build a new
	// mask rather than mutate the existing one in place, so sharing the
	// pointer across a Save is behaviorally identical to a deep clone —
	// the prior state can never observe a later Clip narrowing it.
	clipMask *clip.BitMask
}

func newGraphicsState() GraphicsState {
	return GraphicsState{
		transform:   Identity(),
		fillPaint:   Solid(Black),
		strokePaint: Solid(Black),
		stroke:      DefaultStroke(),
		fillRule:    FillRuleNonZero,
		globalAlpha: 1,
		compositeOp: CompositeSourceOver,
		shadowColor: Transparent,
	}
}

// hasShadow reports whether a shadow is configured. Shadows are
// dispatch-only per spec: Context tracks the parameters but never
// renders a shadow, and their only effect is forcing fast paths off.
func (g GraphicsState) hasShadow() bool {
	return g.shadowColor.A != 0 && (g.shadowBlur != 0 || g.shadowOffsetX != 0 || g.shadowOffsetY != 0)
}

// Save pushes a copy of the current drawing state onto a stack, to be
// restored by a matching Restore.
func (c *Context) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the most recently saved drawing state. Restoring an
// empty stack is silently ignored per spec's EmptyState rule.
func (c *Context) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}
