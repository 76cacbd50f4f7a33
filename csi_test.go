package vtcore

import "testing"

func TestParseCSIBasic(t *testing.T) {
	c := parseCSI([]byte("5;10H"))
	if c.priv {
		t.Fatalf("expected no private marker")
	}
	if c.narg != 2 || c.arg(0) != 5 || c.arg(1) != 10 || c.final != 'H' {
		t.Fatalf("got %+v", c)
	}
}

func TestParseCSIPrivateMarker(t *testing.T) {
	c := parseCSI([]byte("?1049h"))
	if !c.priv {
		t.Fatalf("expected private marker")
	}
	if c.arg(0) != 1049 || c.final != 'h' {
		t.Fatalf("got %+v", c)
	}
}

func TestParseCSIEmptyArgDefaultsToZero(t *testing.T) {
	c := parseCSI([]byte(";5H"))
	if c.arg(0) != 0 || c.arg(1) != 5 {
		t.Fatalf("got args %v", c.args)
	}
	if c.argDefault(0, 1) != 1 {
		t.Fatalf("argDefault should substitute default for 0")
	}
}

func TestCSICursorMovement(t *testing.T) {
	term := New(WithSize(80, 24))
	term.Feed([]byte("\x1b[10;20H"))
	x, y := term.CursorPosition()
	if x != 19 || y != 9 {
		t.Fatalf("cursor at (%d,%d), want (19,9)", x, y)
	}

	term.Feed([]byte("\x1b[2A"))
	_, y = term.CursorPosition()
	if y != 7 {
		t.Fatalf("CUU: y = %d, want 7", y)
	}

	term.Feed([]byte("\x1b[3C"))
	x, _ = term.CursorPosition()
	if x != 22 {
		t.Fatalf("CUF: x = %d, want 22", x)
	}
}

func TestCSIEraseInLine(t *testing.T) {
	term := New(WithSize(10, 1))
	term.Feed([]byte("abcdefghij"))
	term.Feed([]byte("\x1b[5G"))
	term.Feed([]byte("\x1b[K"))
	for x := 0; x < 4; x++ {
		if got := term.Cell(x, 0).Char; got != rune('a'+x) {
			t.Errorf("col %d = %q, want untouched %q", x, got, rune('a'+x))
		}
	}
	for x := 4; x < 10; x++ {
		if got := term.Cell(x, 0).Char; got != ' ' {
			t.Errorf("col %d = %q, want blank after EL", x, got)
		}
	}
}

func TestCSIInsertBlank(t *testing.T) {
	term := New(WithSize(5, 1))
	term.Feed([]byte("12345"))
	term.Feed([]byte("\x1b[1G\x1b[2@"))
	want := []rune{' ', ' ', '1', '2', '3'}
	for x, w := range want {
		if got := term.Cell(x, 0).Char; got != w {
			t.Errorf("after ICH col %d = %q, want %q", x, got, w)
		}
	}
}

func TestCSIScrollRegion(t *testing.T) {
	term := New(WithSize(10, 5))
	term.Feed([]byte("\x1b[2;4r"))
	x, y := term.CursorPosition()
	if x != 0 || y != 0 {
		t.Fatalf("DECSTBM homes cursor, got (%d,%d)", x, y)
	}
}
