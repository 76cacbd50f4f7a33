package vtcore

import "fmt"

// MouseEventKind distinguishes a button press, release, or motion report,
// mirroring libsuckterm_mouse_event.
type MouseEventKind int

const (
	MousePressed MouseEventKind = iota
	MouseReleased
	MouseMotion
)

// Modifier is a bitmask of keyboard modifiers accompanying a mouse event.
type Modifier int

const (
	ModShift Modifier = 1 << (iota + 2) // matches LIBSUCKTERM_MODIFIER_SHIFT = 4
	ModMeta
	ModControl
)

const (
	vt102ID   = "\x1b[?6c"
	focusIn   = "\x1b[I"
	focusOut  = "\x1b[O"
)

func cursorPositionReport(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dR", row, col)
}

// NotifyMouseEvent emits an xterm mouse report for (x, y) according to the
// active mouse mode, and sends it to the host via Send. Motion events are
// gated by MOUSEMOTION/MOUSEMANY and deduplicated against the last
// reported cell by the caller (the host owns cell-level dedup since it
// drives the event loop).
func (t *Terminal) NotifyMouseEvent(kind MouseEventKind, x, y int, mods Modifier, buttonIndex int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch kind {
	case MousePressed, MouseReleased:
		if !t.HasMode(ModeMouseBtn) && !t.HasMode(ModeMouseX10) && !t.HasMode(ModeMouseMotion) && !t.HasMode(ModeMouseMany) {
			return
		}
	case MouseMotion:
		if !t.HasMode(ModeMouseMotion) && !t.HasMode(ModeMouseMany) {
			return
		}
	}

	b := buttonIndex - 1
	if buttonIndex >= 3 {
		b = buttonIndex - 1 + 64
	}
	if kind == MouseMotion {
		b += 32
	}
	if !t.HasMode(ModeMouseX10) {
		b |= int(mods)
	}

	if t.HasMode(ModeMouseSGR) {
		final := byte('M')
		if kind == MouseReleased {
			final = 'm'
		}
		t.send([]byte(fmt.Sprintf("\x1b[<%d;%d;%d%c", b, x+1, y+1, final)))
		return
	}

	if x >= 223 || y >= 223 {
		return
	}
	t.send([]byte{0x1b, '[', 'M', byte(32 + b), byte(32 + x + 1), byte(32 + y + 1)})
}

// NotifyFocus reports a focus change to the host program, when FOCUS mode
// is enabled.
func (t *Terminal) NotifyFocus(focused bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.HasMode(ModeFocus) {
		return
	}
	if focused {
		t.send([]byte(focusIn))
	} else {
		t.send([]byte(focusOut))
	}
}
