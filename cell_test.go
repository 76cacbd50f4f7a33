package vtcore

import "testing"

func TestCellFlags(t *testing.T) {
	var c Cell
	c.SetFlag(AttrBold)
	c.SetFlag(AttrItalic)
	if !c.HasFlag(AttrBold) || !c.HasFlag(AttrItalic) {
		t.Fatalf("expected bold and italic set, got %v", c.Attr)
	}
	if c.HasFlag(AttrUnderline) {
		t.Fatalf("underline should not be set")
	}
	c.ClearFlag(AttrBold)
	if c.HasFlag(AttrBold) {
		t.Fatalf("bold should be cleared")
	}
}

func TestWidePairFlags(t *testing.T) {
	wide := Cell{Char: '中', Attr: AttrWide}
	dummy := Cell{Attr: AttrWDummy}
	if !wide.IsWide() || wide.IsWideDummy() {
		t.Fatalf("wide cell misclassified: %+v", wide)
	}
	if !dummy.IsWideDummy() || dummy.IsWide() {
		t.Fatalf("dummy cell misclassified: %+v", dummy)
	}
}

func TestBlankCell(t *testing.T) {
	pen := Cell{Fg: PaletteColor(1), Bg: PaletteColor(2), Attr: AttrBold, Hyperlink: &Hyperlink{URI: "x"}}
	b := blankCell(pen)
	if b.Char != ' ' {
		t.Fatalf("blank cell char = %q, want space", b.Char)
	}
	if b.Fg != pen.Fg || b.Bg != pen.Bg || b.Attr != pen.Attr {
		t.Fatalf("blank cell should keep pen colours/attrs, got %+v", b)
	}
	if b.Hyperlink != nil {
		t.Fatalf("blank cell should not carry a hyperlink")
	}
}
