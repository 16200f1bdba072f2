package canvas

import "testing"

func TestNewSurfaceIsTransparentBlack(t *testing.T) {
	s := NewSurface(4, 4)
	if got := s.GetPixel(0, 0); got != Transparent {
		t.Fatalf("expected a fresh surface to be transparent black, got %v", got)
	}
}

func TestSetPixelGetPixelRoundTrip(t *testing.T) {
	s := NewSurface(4, 4)
	s.SetPixel(1, 2, Red)
	if got := s.GetPixel(1, 2); got != Red {
		t.Fatalf("expected pixel (1,2) to be Red, got %v", got)
	}
}

func TestSetPixelOutOfBoundsIsNoOp(t *testing.T) {
	s := NewSurface(2, 2)
	s.SetPixel(-1, 0, Red)
	s.SetPixel(5, 5, Red)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := s.GetPixel(x, y); got != Transparent {
				t.Fatalf("expected out-of-bounds writes to leave the surface untouched, got %v at (%d,%d)", got, x, y)
			}
		}
	}
}

func TestGetPixelOutOfBoundsReturnsTransparent(t *testing.T) {
	s := NewSurface(2, 2)
	if got := s.GetPixel(-1, -1); got != Transparent {
		t.Errorf("expected out-of-bounds read to return transparent, got %v", got)
	}
	if got := s.GetPixel(2, 2); got != Transparent {
		t.Errorf("expected out-of-bounds read to return transparent, got %v", got)
	}
}

func TestInBounds(t *testing.T) {
	s := NewSurface(3, 3)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{2, 2, true},
		{3, 0, false},
		{0, 3, false},
		{-1, 0, false},
	}
	for _, c := range cases {
		if got := s.InBounds(c.x, c.y); got != c.want {
			t.Errorf("InBounds(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestClearFillsEverything(t *testing.T) {
	s := NewSurface(3, 3)
	s.Clear(Blue)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := s.GetPixel(x, y); got != Blue {
				t.Fatalf("expected every pixel to be Blue after Clear, got %v at (%d,%d)", got, x, y)
			}
		}
	}
}

func TestFillSpanShortRun(t *testing.T) {
	s := NewSurface(10, 1)
	s.FillSpan(2, 6, 0, Red)
	for x := 0; x < 10; x++ {
		want := Transparent
		if x >= 2 && x < 6 {
			want = Red
		}
		if got := s.GetPixel(x, 0); got != want {
			t.Fatalf("x=%d: got %v, want %v", x, got, want)
		}
	}
}

func TestFillSpanLongRunUsesDoublingPath(t *testing.T) {
	s := NewSurface(40, 1)
	s.FillSpan(0, 40, 0, Green)
	for x := 0; x < 40; x++ {
		if got := s.GetPixel(x, 0); got != Green {
			t.Fatalf("x=%d: expected Green from the long-run fill path, got %v", x, got)
		}
	}
}

func TestFillSpanClampsToSurfaceBounds(t *testing.T) {
	s := NewSurface(5, 5)
	s.FillSpan(-10, 100, 2, Red)
	for x := 0; x < 5; x++ {
		if got := s.GetPixel(x, 2); got != Red {
			t.Fatalf("expected row 2 fully filled after clamping, x=%d got %v", x, got)
		}
	}
	if got := s.GetPixel(0, 0); got != Transparent {
		t.Fatalf("expected row 0 untouched, got %v", got)
	}
}

func TestFillSpanOutOfRangeRowIsNoOp(t *testing.T) {
	s := NewSurface(4, 4)
	s.FillSpan(0, 4, -1, Red)
	s.FillSpan(0, 4, 4, Red)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := s.GetPixel(x, y); got != Transparent {
				t.Fatalf("expected out-of-range row fills to be no-ops, got %v at (%d,%d)", got, x, y)
			}
		}
	}
}

func TestFillSpanBlendOpaqueSourceActsLikeFillSpan(t *testing.T) {
	s := NewSurface(4, 1)
	s.Clear(Blue)
	s.FillSpanBlend(0, 4, 0, Red)
	for x := 0; x < 4; x++ {
		if got := s.GetPixel(x, 0); got != Red {
			t.Fatalf("expected opaque FillSpanBlend to fully replace, got %v at x=%d", got, x)
		}
	}
}

func TestFillSpanBlendTransparentSourceIsNoOp(t *testing.T) {
	s := NewSurface(4, 1)
	s.Clear(Blue)
	transparentRed := Color{R: 255, A: 0}
	s.FillSpanBlend(0, 4, 0, transparentRed)
	for x := 0; x < 4; x++ {
		if got := s.GetPixel(x, 0); got != Blue {
			t.Fatalf("expected fully transparent source to leave destination untouched, got %v at x=%d", got, x)
		}
	}
}

func TestFillSpanBlendHalfAlphaMixesWithDestination(t *testing.T) {
	s := NewSurface(1, 1)
	s.SetPixel(0, 0, White)
	s.FillSpanBlend(0, 1, 0, Color{R: 0, G: 0, B: 0, A: 128})
	got := s.GetPixel(0, 0)
	if got.R == 255 || got.R == 0 {
		t.Fatalf("expected a half-alpha black-over-white blend to land strictly between, got %v", got)
	}
}

func TestToImageCopiesPixelsWithoutSharingMemory(t *testing.T) {
	s := NewSurface(2, 2)
	s.SetPixel(0, 0, Red)
	img := s.ToImage()
	s.SetPixel(0, 0, Blue)
	r, g, b, a := img.At(0, 0).RGBA()
	_ = g
	_ = b
	_ = a
	if r>>8 != 255 {
		t.Fatalf("expected the copied image to keep the original Red value, got R=%d", r>>8)
	}
}

func TestBoundsMatchesDimensions(t *testing.T) {
	s := NewSurface(7, 3)
	b := s.Bounds()
	if b.Dx() != 7 || b.Dy() != 3 {
		t.Fatalf("expected bounds 7x3, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestSetViaStdColorInterfaceRoundTrips(t *testing.T) {
	s := NewSurface(2, 2)
	s.Set(0, 0, Red.ToNRGBA())
	if got := s.GetPixel(0, 0); got != Red {
		t.Fatalf("expected Set through the std color.Color interface to round-trip, got %v", got)
	}
}

func TestAddClamp(t *testing.T) {
	if got := addClamp(200, 100); got != 255 {
		t.Errorf("expected addClamp to saturate at 255, got %v", got)
	}
	if got := addClamp(10, 20); got != 30 {
		t.Errorf("expected addClamp(10,20) = 30, got %v", got)
	}
}
