package vtcore

import "testing"

func TestCallbacksDefaultsToNop(t *testing.T) {
	term := New()
	if _, ok := term.callbacks().(NopCallbacks); !ok {
		t.Fatalf("expected NopCallbacks default, got %T", term.callbacks())
	}
}

func TestCallbacksUsesHostCallbacks(t *testing.T) {
	cb := &recordingCallbacks{}
	term := New(WithHostCallbacks(cb))
	if term.callbacks() != cb {
		t.Fatalf("expected configured HostCallbacks to be used")
	}
}

func TestNoopScrollbackDiscardsEverything(t *testing.T) {
	var s NoopScrollback
	s.Push([]Cell{{Char: 'x'}})
	if s.Len() != 0 {
		t.Fatalf("NoopScrollback should report zero length")
	}
	if s.Line(0) != nil {
		t.Fatalf("NoopScrollback should never return a line")
	}
}

type recordingScrollback struct {
	rows [][]Cell
}

func (r *recordingScrollback) Push(row []Cell) { r.rows = append(r.rows, row) }
func (r *recordingScrollback) Len() int        { return len(r.rows) }
func (r *recordingScrollback) Line(i int) []Cell {
	if i < 0 || i >= len(r.rows) {
		return nil
	}
	return r.rows[i]
}

func TestScrollbackReceivesEvictedRows(t *testing.T) {
	sb := &recordingScrollback{}
	term := New(WithSize(10, 3), WithScrollbackStore(sb))
	for i := 0; i < 4; i++ {
		term.Feed([]byte{'a' + byte(i), '\n'})
	}
	if sb.Len() == 0 {
		t.Fatalf("expected at least one row pushed to scrollback")
	}
}
