package canvas

import (
	"bytes"
	"math"
	"testing"
)

func TestNewContextDefaultsToFreshSurface(t *testing.T) {
	dc := NewContext(5, 7)
	if dc.Width() != 5 || dc.Height() != 7 {
		t.Fatalf("expected a 5x7 surface, got %dx%d", dc.Width(), dc.Height())
	}
	if got := dc.Surface().GetPixel(0, 0); got != Transparent {
		t.Fatalf("expected a fresh context to start transparent black, got %v", got)
	}
}

func TestNewContextWithSurfaceReusesGivenSurface(t *testing.T) {
	surf := NewSurface(3, 3)
	surf.SetPixel(1, 1, Red)
	dc := NewContext(0, 0, WithSurface(surf))
	if dc.Width() != 3 || dc.Height() != 3 {
		t.Fatalf("expected WithSurface to size the context from the surface, got %dx%d", dc.Width(), dc.Height())
	}
	if got := dc.Surface().GetPixel(1, 1); got != Red {
		t.Fatalf("expected the supplied surface's pixels to be preserved, got %v", got)
	}
}

func TestNewContextForImageCopiesPixels(t *testing.T) {
	src := NewSurface(2, 2)
	src.SetPixel(0, 0, Red)
	src.SetPixel(1, 1, Blue)
	dc := NewContextForImage(src.ToImage())
	if got := dc.Surface().GetPixel(0, 0); got != Red {
		t.Errorf("expected pixel (0,0) copied from source image, got %v", got)
	}
	if got := dc.Surface().GetPixel(1, 1); got != Blue {
		t.Errorf("expected pixel (1,1) copied from source image, got %v", got)
	}
}

func TestResizeDiscardsPathAndClip(t *testing.T) {
	dc := NewContext(4, 4)
	dc.MoveTo(1, 1)
	dc.LineTo(2, 2)
	dc.ClipRect(0, 0, 2, 2)
	dc.Resize(8, 8)
	if dc.Width() != 8 || dc.Height() != 8 {
		t.Fatalf("expected Resize to change dimensions, got %dx%d", dc.Width(), dc.Height())
	}
	if len(dc.Path().Elements()) != 0 {
		t.Fatalf("expected Resize to discard the current path")
	}
	if dc.state.clipMask != nil {
		t.Fatalf("expected Resize to discard the clip region")
	}
}

func TestUsedGenericPipelineResetsOnDemand(t *testing.T) {
	dc := NewContext(4, 4, WithRasterizerInstrumentation())
	dc.genericPipelineUsed = true
	if !dc.UsedGenericPipeline() {
		t.Fatalf("expected UsedGenericPipeline to reflect the flag")
	}
	dc.ResetPipelineInstrumentation()
	if dc.UsedGenericPipeline() {
		t.Fatalf("expected ResetPipelineInstrumentation to clear the flag")
	}
}

func TestContextTranslateThenMoveToProducesDeviceSpacePath(t *testing.T) {
	dc := NewContext(10, 10)
	dc.Translate(5, 5)
	dc.MoveTo(1, 1)
	elems := dc.Path().Elements()
	m, ok := elems[0].(MoveTo)
	if !ok {
		t.Fatalf("expected the first element to be a MoveTo, got %T", elems[0])
	}
	if m.Point != (Point{6, 6}) {
		t.Fatalf("expected the translated MoveTo to land at (6,6), got %v", m.Point)
	}
}

func TestContextSetTransformReplacesRatherThanComposes(t *testing.T) {
	dc := NewContext(10, 10)
	dc.Translate(5, 5)
	dc.SetTransform(1, 0, 0, 1, 2, 2)
	got := dc.GetTransform()
	if got != (Transform{A: 1, D: 1, E: 2, F: 2}) {
		t.Fatalf("expected SetTransform to replace the prior transform outright, got %v", got)
	}
}

func TestContextResetTransformRestoresIdentity(t *testing.T) {
	dc := NewContext(10, 10)
	dc.Rotate(math.Pi / 4)
	dc.ResetTransform()
	if !dc.GetTransform().IsIdentity() {
		t.Fatalf("expected ResetTransform to restore the identity transform, got %v", dc.GetTransform())
	}
}

func TestContextRectBuildsClosedDeviceSpaceSubpath(t *testing.T) {
	dc := NewContext(10, 10)
	dc.Scale(2, 2)
	dc.Rect(0, 0, 3, 3)
	elems := dc.Path().Elements()
	if len(elems) == 0 {
		t.Fatalf("expected Rect to append path elements")
	}
	last := elems[len(elems)-1]
	if _, ok := last.(Close); !ok {
		t.Fatalf("expected Rect to end with a Close element, got %T", last)
	}
}

func TestDevicePathDoesNotMutateCurrentPath(t *testing.T) {
	dc := NewContext(10, 10)
	dc.MoveTo(1, 1)
	before := len(dc.Path().Elements())
	_ = dc.devicePath(func(p *Path) { p.Rect(0, 0, 1, 1) })
	if got := len(dc.Path().Elements()); got != before {
		t.Fatalf("expected devicePath to leave the context's own path untouched, before=%d after=%d", before, got)
	}
}

func TestEncodePNGProducesValidStream(t *testing.T) {
	dc := NewContext(2, 2)
	dc.Surface().SetPixel(0, 0, Red)
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		t.Fatalf("unexpected error encoding PNG: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected EncodePNG to write a non-empty stream")
	}
}

func TestEncodeJPEGProducesValidStream(t *testing.T) {
	dc := NewContext(2, 2)
	var buf bytes.Buffer
	if err := dc.EncodeJPEG(&buf, 90); err != nil {
		t.Fatalf("unexpected error encoding JPEG: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected EncodeJPEG to write a non-empty stream")
	}
}
