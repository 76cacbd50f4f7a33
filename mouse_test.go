package vtcore

import "testing"

func TestNotifyMouseEventIgnoredWithoutMouseMode(t *testing.T) {
	term := New()
	term.NotifyMouseEvent(MousePressed, 5, 5, 0, 1)
	if out := term.Output(); out != nil {
		t.Fatalf("expected no report without a mouse mode enabled, got %q", out)
	}
}

func TestNotifyMouseEventSGR(t *testing.T) {
	term := New()
	term.setPrivateMode(1000, true)
	term.setPrivateMode(1006, true)
	term.NotifyMouseEvent(MousePressed, 5, 5, 0, 1)
	want := "\x1b[<0;6;6M"
	if got := string(term.Output()); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	term.NotifyMouseEvent(MouseReleased, 5, 5, 0, 1)
	want = "\x1b[<0;6;6m"
	if got := string(term.Output()); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNotifyMouseEventLegacy(t *testing.T) {
	term := New()
	term.setPrivateMode(1000, true)
	term.NotifyMouseEvent(MousePressed, 5, 5, 0, 1)
	want := []byte{0x1b, '[', 'M', 32, 32 + 6, 32 + 6}
	got := term.Output()
	if string(got) != string(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNotifyMouseEventLegacyDropsLargeCoordinates(t *testing.T) {
	term := New()
	term.setPrivateMode(1000, true)
	term.NotifyMouseEvent(MousePressed, 300, 5, 0, 1)
	if out := term.Output(); out != nil {
		t.Fatalf("expected legacy report dropped for out-of-range coordinate, got %q", out)
	}
}

func TestNotifyFocus(t *testing.T) {
	term := New()
	term.setPrivateMode(1004, true)
	term.NotifyFocus(true)
	if got := string(term.Output()); got != focusIn {
		t.Fatalf("got %q, want focus-in", got)
	}
	term.NotifyFocus(false)
	if got := string(term.Output()); got != focusOut {
		t.Fatalf("got %q, want focus-out", got)
	}
}
