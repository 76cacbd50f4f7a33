package vtcore

import "testing"

func TestNewTrueColorRoundTrip(t *testing.T) {
	c := NewTrueColor(10, 200, 300) // 300 clamps to 255
	if !c.IsTrueColor() {
		t.Fatalf("expected truecolour flag set")
	}
	r, g, b := c.RGB()
	if r != 10 || g != 200 || b != 255 {
		t.Fatalf("got (%d,%d,%d), want (10,200,255)", r, g, b)
	}
}

func TestPaletteColorIsNotTrueColor(t *testing.T) {
	c := PaletteColor(42)
	if c.IsTrueColor() {
		t.Fatalf("palette colour should not carry the truecolour flag")
	}
	if c != 42 {
		t.Fatalf("got %v, want 42", c)
	}
}

func TestPaletteResolve(t *testing.T) {
	fg := DefaultForeground
	bg := DefaultBackground
	if got := DefaultPalette.Resolve(DefaultFg, fg, bg); got != fg {
		t.Errorf("DefaultFg resolved to %+v, want %+v", got, fg)
	}
	if got := DefaultPalette.Resolve(DefaultBg, fg, bg); got != bg {
		t.Errorf("DefaultBg resolved to %+v, want %+v", got, bg)
	}
	if got := DefaultPalette.Resolve(PaletteColor(1), fg, bg); got != DefaultPalette[1] {
		t.Errorf("palette 1 resolved to %+v, want %+v", got, DefaultPalette[1])
	}
	tc := NewTrueColor(1, 2, 3)
	if got := DefaultPalette.Resolve(tc, fg, bg); got.R != 1 || got.G != 2 || got.B != 3 {
		t.Errorf("truecolour resolved to %+v", got)
	}
}

func TestDefaultPaletteCubeAndGrayscale(t *testing.T) {
	// 16 is the first cube entry: r=g=b=0.
	if DefaultPalette[16].R != 0 || DefaultPalette[16].G != 0 || DefaultPalette[16].B != 0 {
		t.Errorf("palette[16] = %+v, want black", DefaultPalette[16])
	}
	// 231 is the last cube entry: r=g=b=5*51=255.
	if DefaultPalette[231].R != 255 {
		t.Errorf("palette[231].R = %d, want 255", DefaultPalette[231].R)
	}
	// 232 starts the grayscale ramp.
	if DefaultPalette[232].R != 8 {
		t.Errorf("palette[232].R = %d, want 8", DefaultPalette[232].R)
	}
}
