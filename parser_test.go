package vtcore

import "testing"

func TestFeedControlCharacters(t *testing.T) {
	term := New(WithSize(10, 3))
	term.Feed([]byte("ab\bc"))
	if term.Cell(0, 0).Char != 'a' || term.Cell(1, 0).Char != 'c' {
		t.Fatalf("backspace-then-overwrite failed: %q %q", term.Cell(0, 0).Char, term.Cell(1, 0).Char)
	}
}

func TestFeedTab(t *testing.T) {
	term := New(WithSize(20, 1))
	term.Feed([]byte("\t"))
	x, _ := term.CursorPosition()
	if x != 8 {
		t.Fatalf("tab should land on column 8, got %d", x)
	}
}

type bellCallbacks struct {
	NopCallbacks
	rang bool
}

func (b *bellCallbacks) Bell() { b.rang = true }

func TestFeedBell(t *testing.T) {
	cb := &bellCallbacks{}
	term := New(WithHostCallbacks(cb))
	term.Feed([]byte("\a"))
	if !cb.rang {
		t.Fatalf("expected Bell callback invoked")
	}
}

func TestFeedRIS(t *testing.T) {
	term := New(WithSize(10, 3))
	term.Feed([]byte("\x1b[31mhello"))
	term.Feed([]byte("\x1bc"))
	if term.Cell(0, 0).Char != 0 && term.Cell(0, 0).Char != ' ' {
		t.Fatalf("RIS should blank the screen, got %q", term.Cell(0, 0).Char)
	}
	if term.cursor.Pen.Fg != DefaultFg {
		t.Fatalf("RIS should reset the pen, got fg %v", term.cursor.Pen.Fg)
	}
}

func TestFeedSOSIShiftsCharset(t *testing.T) {
	term := New()
	term.Feed([]byte("\x1b(0")) // designate G0 as DEC graphics
	term.Feed([]byte("\x0e"))   // SO: select G0
	if !term.cursor.Pen.HasFlag(AttrGFX) {
		t.Fatalf("expected GFX pen flag after SO with G0=graphics")
	}
	term.Feed([]byte("\x0f")) // SI: select G1 (USA)
	if term.cursor.Pen.HasFlag(AttrGFX) {
		t.Fatalf("expected GFX pen flag cleared after SI with G1=USA")
	}
}

func TestFeedDECSpecialGraphicsSubstitution(t *testing.T) {
	term := New()
	term.Feed([]byte("\x1b(0\x0ej")) // designate+select graphics, print 'j' -> '┘'
	if term.Cell(0, 0).Char != '┘' {
		t.Fatalf("got %q, want DEC graphics substitution for 'j'", term.Cell(0, 0).Char)
	}
}

func TestFeedDECScreenAlignmentTest(t *testing.T) {
	term := New(WithSize(5, 2))
	term.Feed([]byte("\x1b#8"))
	for y := 0; y < 2; y++ {
		for x := 0; x < 5; x++ {
			if term.Cell(x, y).Char != 'E' {
				t.Fatalf("DECALN should fill the screen with E, got %q at (%d,%d)", term.Cell(x, y).Char, x, y)
			}
		}
	}
}

func TestFeedSaveRestoreCursor(t *testing.T) {
	term := New(WithSize(80, 24))
	term.Feed([]byte("\x1b[5;5H\x1b7"))
	term.Feed([]byte("\x1b[1;1H"))
	term.Feed([]byte("\x1b8"))
	x, y := term.CursorPosition()
	if x != 4 || y != 4 {
		t.Fatalf("DECRC should restore (4,4), got (%d,%d)", x, y)
	}
}

func FuzzFeed(f *testing.F) {
	f.Add([]byte("hello\n"))
	f.Add([]byte("\x1b[31mA\x1b[0m"))
	f.Add([]byte("\x1b[?1049h\x1b[?1049l"))
	f.Add([]byte("\x1b]0;title\x07"))
	f.Add([]byte{0x1b, '[', '3', '8', ';', '2', ';', '1', ';', '2', ';', '3', 'm'})
	f.Fuzz(func(t *testing.T, data []byte) {
		term := New(WithSize(80, 24))
		term.Feed(data)
		if term.Rows() != 24 || term.Cols() != 80 {
			t.Fatalf("Feed must never change grid dimensions")
		}
		x, y := term.CursorPosition()
		if x < 0 || x >= term.Cols() || y < 0 || y >= term.Rows() {
			t.Fatalf("cursor escaped the grid: (%d,%d)", x, y)
		}
	})
}
