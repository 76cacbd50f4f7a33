package vtcore

import "testing"

func TestTranslateGraphicsKnownAndUnknown(t *testing.T) {
	if got := translateGraphics('q'); got != '─' {
		t.Errorf("translateGraphics('q') = %q, want ─", got)
	}
	if got := translateGraphics('Z'); got != 'Z' {
		t.Errorf("translateGraphics('Z') = %q, want pass-through", got)
	}
	if got := translateGraphics('1'); got != '1' {
		t.Errorf("translateGraphics out of table range should pass through, got %q", got)
	}
}

func TestCharsetDesignators(t *testing.T) {
	cases := map[byte]Charset{
		'0': CharsetGraphic0,
		'B': CharsetUSA,
		'A': CharsetUK,
		'<': CharsetMulti,
	}
	for b, want := range cases {
		if got, ok := charsetDesignators[b]; !ok || got != want {
			t.Errorf("designator %q = %v, want %v", string(b), got, want)
		}
	}
	if _, ok := charsetDesignators['?']; ok {
		t.Errorf("expected unknown designator to be absent from the table")
	}
}
