package canvas

import "testing"

func TestHexParsesAllForms(t *testing.T) {
	tests := []struct {
		hex  string
		want Color
	}{
		{"#fff", RGB(255, 255, 255)},
		{"000", RGB(0, 0, 0)},
		{"#ff0000", RGB(255, 0, 0)},
		{"ff000080", RGBA(255, 0, 0, 0x80)},
		{"#f00f", RGBA(255, 0, 0, 255)},
	}
	for _, tt := range tests {
		got, err := Hex(tt.hex)
		if err != nil {
			t.Fatalf("Hex(%q) returned error: %v", tt.hex, err)
		}
		if got != tt.want {
			t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
		}
	}
}

func TestHexRejectsInvalidInput(t *testing.T) {
	if _, err := Hex("#12"); err == nil {
		t.Fatalf("expected an error for a bad-length hex string")
	}
	if _, err := Hex("#gggggg"); err == nil {
		t.Fatalf("expected an error for non-hex digits")
	}
}

func TestPremultiplyUnpremultiplyRoundTrip(t *testing.T) {
	c := RGBA(200, 100, 50, 128)
	rt := c.Premultiply().Unpremultiply()
	// Integer rounding means we only expect this to be close, not exact.
	diff := func(a, b uint8) int {
		d := int(a) - int(b)
		if d < 0 {
			d = -d
		}
		return d
	}
	if diff(rt.R, c.R) > 2 || diff(rt.G, c.G) > 2 || diff(rt.B, c.B) > 2 {
		t.Fatalf("expected premultiply/unpremultiply round trip close to original, got %v want %v", rt, c)
	}
}

func TestUnpremultiplyTransparentIsTransparentBlack(t *testing.T) {
	c := Color{R: 50, G: 60, B: 70, A: 0}
	if got := c.Unpremultiply(); got != (Color{}) {
		t.Fatalf("expected fully transparent color to unpremultiply to zero value, got %v", got)
	}
}

func TestColorLerpEndpoints(t *testing.T) {
	a, b := Black, White
	if got := a.Lerp(b, 0); got != a {
		t.Fatalf("expected Lerp(t=0) == a, got %v", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Fatalf("expected Lerp(t=1) == b, got %v", got)
	}
}

func TestColorLerpClampsT(t *testing.T) {
	a, b := Black, White
	if got := a.Lerp(b, -5); got != a {
		t.Fatalf("expected negative t to clamp to a, got %v", got)
	}
	if got := a.Lerp(b, 5); got != b {
		t.Fatalf("expected t>1 to clamp to b, got %v", got)
	}
}

func TestHSLPrimaries(t *testing.T) {
	if got := HSL(0, 1, 0.5); got != RGB(255, 0, 0) {
		t.Errorf("expected HSL(0,1,0.5) = red, got %v", got)
	}
	if got := HSL(120, 1, 0.5); got != RGB(0, 255, 0) {
		t.Errorf("expected HSL(120,1,0.5) = green, got %v", got)
	}
	if got := HSL(240, 1, 0.5); got != RGB(0, 0, 255) {
		t.Errorf("expected HSL(240,1,0.5) = blue, got %v", got)
	}
}

func TestHSLWrapsHue(t *testing.T) {
	if got := HSL(-360, 1, 0.5); got != HSL(0, 1, 0.5) {
		t.Errorf("expected negative hue to wrap, got %v", got)
	}
	if got := HSL(720, 1, 0.5); got != HSL(0, 1, 0.5) {
		t.Errorf("expected hue >= 360 to wrap, got %v", got)
	}
}

func TestHSLGrayscaleAtZeroSaturation(t *testing.T) {
	got := HSL(200, 0, 0.5)
	if got.R != got.G || got.G != got.B {
		t.Fatalf("expected zero saturation to produce a neutral gray, got %v", got)
	}
}
