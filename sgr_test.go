package vtcore

import "testing"

func TestSetAttrBasicStyles(t *testing.T) {
	term := New()
	term.setAttr([]int{1, 4, 7})
	pen := term.cursor.Pen
	if !pen.HasFlag(AttrBold) || !pen.HasFlag(AttrUnderline) || !pen.HasFlag(AttrReverse) {
		t.Fatalf("expected bold+underline+reverse, got %v", pen.Attr)
	}

	term.setAttr([]int{0})
	pen = term.cursor.Pen
	if pen.Attr != 0 || pen.Fg != DefaultFg || pen.Bg != DefaultBg {
		t.Fatalf("SGR 0 should reset pen, got %+v", pen)
	}
}

func TestSetAttrPaletteColors(t *testing.T) {
	term := New()
	term.setAttr([]int{31, 44})
	pen := term.cursor.Pen
	if pen.Fg != PaletteColor(1) {
		t.Errorf("fg = %v, want palette 1", pen.Fg)
	}
	if pen.Bg != PaletteColor(4) {
		t.Errorf("bg = %v, want palette 4", pen.Bg)
	}
}

func TestSetAttrBrightPaletteColors(t *testing.T) {
	term := New()
	term.setAttr([]int{91, 102})
	pen := term.cursor.Pen
	if pen.Fg != PaletteColor(9) {
		t.Errorf("fg = %v, want palette 9", pen.Fg)
	}
	if pen.Bg != PaletteColor(10) {
		t.Errorf("bg = %v, want palette 10", pen.Bg)
	}
}

func TestSetAttrExtendedTrueColor(t *testing.T) {
	term := New()
	term.setAttr([]int{38, 2, 10, 20, 30})
	pen := term.cursor.Pen
	if !pen.Fg.IsTrueColor() {
		t.Fatalf("expected truecolour fg")
	}
	r, g, b := pen.Fg.RGB()
	if r != 10 || g != 20 || b != 30 {
		t.Errorf("got (%d,%d,%d), want (10,20,30)", r, g, b)
	}
}

func TestSetAttrExtendedIndexed(t *testing.T) {
	term := New()
	term.setAttr([]int{48, 5, 200})
	pen := term.cursor.Pen
	if pen.Bg != PaletteColor(200) {
		t.Errorf("bg = %v, want palette 200", pen.Bg)
	}
}

func TestSetAttrExtendedMalformedLeavesColorUntouched(t *testing.T) {
	term := New()
	before := term.cursor.Pen.Fg
	term.setAttr([]int{38, 2, 10}) // truncated rgb
	if term.cursor.Pen.Fg != before {
		t.Fatalf("malformed extended colour should leave pen untouched")
	}
}

func TestSetAttrToggleOff(t *testing.T) {
	term := New()
	term.setAttr([]int{1, 4})
	term.setAttr([]int{22, 24})
	pen := term.cursor.Pen
	if pen.HasFlag(AttrBold) || pen.HasFlag(AttrUnderline) {
		t.Fatalf("expected bold/underline cleared, got %v", pen.Attr)
	}
}
