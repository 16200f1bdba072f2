package canvas

// DrawImage draws the full source image at (dx, dy) in user space, at
// its natural pixel size (the 3-argument HTML5 Canvas form).
func (c *Context) DrawImage(img *Image, dx, dy float64) {
	c.DrawImageScaled(img, dx, dy, float64(img.Width), float64(img.Height))
}

// DrawImageScaled draws the full source image into a (dw, dh)-sized
// rectangle at (dx, dy) in user space (the 5-argument HTML5 Canvas
// form), nearest-neighbor resampled if the size doesn't match the
// source.
func (c *Context) DrawImageScaled(img *Image, dx, dy, dw, dh float64) {
	c.DrawImagePart(img, 0, 0, float64(img.Width), float64(img.Height), dx, dy, dw, dh)
}

// DrawImagePart draws the (sw, sh)-sized source rectangle at (sx, sy)
// into a (dw, dh)-sized destination rectangle at (dx, dy), both in
// their respective spaces (the 9-argument HTML5 Canvas form). A
// non-positive source or destination extent is a no-op.
func (c *Context) DrawImagePart(img *Image, sx, sy, sw, sh, dx, dy, dw, dh float64) {
	if img == nil || !(sw > 0) || !(sh > 0) || !(dw > 0) || !(dh > 0) {
		return
	}

	patternToUser := TranslateTransform(dx, dy).
		Multiply(ScaleTransform(dw/sw, dh/sh)).
		Multiply(TranslateTransform(-sx, -sy))
	pattern := &ImagePattern{
		Image:      img,
		Repetition: RepeatNone,
		Transform:  c.state.transform.Multiply(patternToUser),
	}

	savedFill := c.state.fillPaint
	c.state.fillPaint = pattern
	c.withScratchPath(func() {
		c.Rect(dx, dy, dw, dh)
		c.Fill()
	})
	c.state.fillPaint = savedFill
}
