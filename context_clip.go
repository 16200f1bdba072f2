package canvas

import (
	"github.com/davidedc/SWCanvas-sub003/internal/clip"
	ipath "github.com/davidedc/SWCanvas-sub003/internal/path"
)

// Clip intersects the clip region with the current path filled under
// the current fill rule, then clears the path. An empty path clips
// everything out (nothing passes).
func (c *Context) Clip() {
	c.clipToPath(c.path, c.state.fillRule)
	c.path.Clear()
}

// ClipPreserve intersects the clip region with the current path without
// clearing it.
func (c *Context) ClipPreserve() {
	c.clipToPath(c.path, c.state.fillRule)
}

// ClipRect intersects the clip region with an axis-aligned rectangle
// given in user space.
func (c *Context) ClipRect(x, y, w, h float64) {
	path := c.devicePath(func(p *Path) { p.Rect(x, y, w, h) })
	c.clipToPath(path, FillRuleNonZero)
}

// ResetClip removes any clip region, restoring the unclipped state.
func (c *Context) ResetClip() {
	c.state.clipMask = nil
}

// clipToPath rasterizes path under rule into a fresh mask and
// intersects it with the current clip mask (or adopts it outright when
// unclipped), per spec's allowance that either a deep-clone-per-Save or
// a copy-on-write scheme is acceptable: Clip never mutates a mask that
// an enclosing Save might still be holding a reference to.
func (c *Context) clipToPath(path *Path, rule FillRule) {
	rings := ipath.Flatten(toInternalPath(path.Elements()))

	next := clip.NewBitMask(c.surface.Width(), c.surface.Height())
	next.FillRings(rings, rasterFillRule(rule))

	if c.state.clipMask == nil {
		c.state.clipMask = next
		return
	}
	next.IntersectWith(c.state.clipMask)
	c.state.clipMask = next
}
