package vtcore

import "fmt"

// Output drains and returns whatever bytes the core has queued for the host
// to write to the pseudo-terminal (device-attribute replies, cursor-position
// reports, mouse reports, and Send/SendEcho payloads).
func (t *Terminal) Output() []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.outbox) == 0 {
		return nil
	}
	b := t.outbox
	t.outbox = nil
	return b
}

// Send enqueues bytes for the host to write to the pseudo-terminal, for
// example keyboard input translated by the host's keymap.
func (t *Terminal) Send(b []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.send(b)
}

// SendEcho is Send plus, when ECHO mode is on, a local rendering of the
// bytes into the grid with ^X / ^[ decoration for control codes, so the
// host sees its own keystrokes before the child process replies.
func (t *Terminal) SendEcho(b []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.send(b)
	if !t.HasMode(ModeEcho) {
		return
	}
	for _, c := range b {
		switch {
		case c == '\r' || c == '\n':
			t.putChar(rune(c), 1)
		case c < 0x20 || c == 0x7f:
			t.putChar('^', 1)
			t.putChar(rune(c^0x40), 1)
		default:
			t.putChar(rune(c), 1)
		}
	}
}

// String renders the currently displayed screen as plain text, rows
// separated by newlines, trailing blank rows included (a convenience for
// tests and simple hosts; production front-ends should use Cell/DirtyRows).
func (t *Terminal) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := ""
	for y := 0; y < t.rows; y++ {
		if y > 0 {
			s += "\n"
		}
		s += fmt.Sprintf("%s", t.lineTextLocked(y))
	}
	return s
}

func (t *Terminal) lineTextLocked(y int) string {
	row := t.activeGrid().Row(y)
	if row == nil {
		return ""
	}
	buf := make([]rune, 0, len(row))
	for _, c := range row {
		if c.HasFlag(AttrWDummy) {
			continue
		}
		if c.Char == 0 {
			buf = append(buf, ' ')
			continue
		}
		buf = append(buf, c.Char)
	}
	return string(buf)
}
