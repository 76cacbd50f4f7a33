package vtcore

// EscState is the parser's escape-sequence state bitmask (escape_state).
type EscState uint8

const (
	EscStart EscState = 1 << iota
	EscCSI
	EscStr
	EscAltCharset
	EscStrEnd
	EscTest
)

const maxSeqBuf = 128 * 4 // ESC_BUF_SIZ: 128 * UTF_SIZ

// Feed interprets data as a byte stream from the pseudo-terminal, updating
// the terminal's grid and cursor and accumulating any reply bytes for the
// host to drain via Output. A partial UTF-8 tail is carried across
// calls so callers may feed arbitrarily chunked reads (ttyread's buffering
// loop).
func (t *Terminal) Feed(data []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()

	buf := data
	if len(t.utf8Carry) > 0 {
		buf = append(append([]byte(nil), t.utf8Carry...), data...)
		t.utf8Carry = nil
	}

	i := 0
	for i < len(buf) {
		remaining := buf[i:]
		if len(remaining) < 4 && !IsFullUTF8(remaining) {
			t.utf8Carry = append([]byte(nil), remaining...)
			break
		}
		r, n := DecodeRune(remaining)
		if n == 0 {
			n = 1
		}
		t.putChar(r, n)
		i += n
	}
}

// putChar is the per-codepoint entry point (tputc). size is the number of
// raw bytes the codepoint decoded from; it is 1 exactly for ASCII/control
// bytes, which is how control-code detection distinguishes them from a
// multi-byte rune that happens to equal a control code's ordinal value.
func (t *Terminal) putChar(r rune, size int) {
	control := size == 1 && (r < 0x20 || r == 0x7f)
	width := 1
	if size != 1 {
		width = columnWidth(r)
	}

	// STR sequences must be checked before anything else: a string payload
	// may itself contain bytes that would otherwise be read as control
	// codes.
	if t.esc&EscStr != 0 {
		t.feedStr(r, size)
		return
	}

	if control {
		if t.controlChar(r) {
			return
		}
	} else if t.esc&EscStart != 0 {
		t.dispatchEscStart(byte(r))
		return
	}

	// Control characters are suppressed from display unless the pen has
	// the DEC graphics charset active.
	if control && !t.cursor.Pen.HasFlag(AttrGFX) {
		return
	}

	t.printChar(r, width)
}

func (t *Terminal) feedStr(r rune, size int) {
	switch r {
	case 0x1b:
		t.esc = EscStart | EscStrEnd
	case 0x07: // BEL, backwards compatibility to xterm
		t.esc = 0
		t.dispatchSTR()
	default:
		if len(t.strBuf)+size < maxSeqBuf-1 {
			var enc [4]byte
			n := EncodeRune(enc[:], r)
			t.strBuf = append(t.strBuf, enc[:n]...)
		}
		// Overflow is a known, deliberately preserved quirk: an
		// unterminated string stops dispatching until the next ESC/BEL or
		// a reset, rather than silently truncating and firing anyway.
	}
}

// controlChar handles a C0/DEL byte that acts immediately, even when
// embedded inside a CSI sequence. Returns true if it was consumed.
func (t *Terminal) controlChar(r rune) bool {
	switch r {
	case '\t':
		t.putTab(true)
	case '\b':
		t.moveTo(t.cursor.X-1, t.cursor.Y)
	case '\r':
		t.moveTo(0, t.cursor.Y)
	case '\f', '\v', '\n':
		t.newline(t.HasMode(ModeCRLF))
	case '\a':
		t.callbacks().Bell()
	case 0x1b: // ESC
		t.resetCSI()
		t.esc = EscStart
	case 0x0e: // SO
		t.activeCharsetSlot = 0
		t.selectCharset()
	case 0x0f: // SI
		t.activeCharsetSlot = 1
		t.selectCharset()
	case 0x1a, 0x18: // SUB, CAN
		t.resetCSI()
	case 0x05, 0x00, 0x11, 0x13, 0x7f: // ENQ, NUL, XON, XOFF, DEL
	default:
		return false
	}
	return true
}

func (t *Terminal) printChar(r rune, width int) {
	if t.HasMode(ModeWrap) && t.cursor.State&CursorWrapNext != 0 {
		if row := t.activeGrid().Row(t.cursor.Y); row != nil && t.cursor.X < len(row) {
			row[t.cursor.X].SetFlag(AttrWrap)
			t.activeGrid().MarkDirty(t.cursor.Y)
		}
		t.newline(true)
	}

	if t.HasMode(ModeInsert) && t.cursor.X+1 < t.cols {
		grid := t.activeGrid()
		row := grid.Row(t.cursor.Y)
		copy(row[t.cursor.X+1:], row[t.cursor.X:t.cols-1])
		grid.MarkDirty(t.cursor.Y)
	}

	if t.cursor.X+width > t.cols {
		t.newline(true)
	}

	t.setChar(r, t.cursor.X, t.cursor.Y)

	if width == 2 {
		grid := t.activeGrid()
		wide := grid.Cell(t.cursor.X, t.cursor.Y)
		wide.SetFlag(AttrWide)
		grid.SetCell(t.cursor.X, t.cursor.Y, wide)
		if t.cursor.X+1 < t.cols {
			dummy := Cell{Attr: AttrWDummy}
			grid.SetCell(t.cursor.X+1, t.cursor.Y, dummy)
		}
	}

	if t.cursor.X+width < t.cols {
		t.moveTo(t.cursor.X+width, t.cursor.Y)
	} else {
		t.cursor.State |= CursorWrapNext
	}
}

// dispatchEscStart handles a byte arriving while ESC_START is set: the
// ESC_CSI/ESC_STR_END/ESC_ALTCHARSET/ESC_TEST sub-states, and otherwise the
// single-character ESC commands.
func (t *Terminal) dispatchEscStart(b byte) {
	switch {
	case t.esc&EscCSI != 0:
		t.csiBuf = append(t.csiBuf, b)
		if (b >= 0x40 && b <= 0x7e) || len(t.csiBuf) >= maxSeqBuf-1 {
			t.esc = 0
			args := parseCSI(t.csiBuf)
			t.handleCSI(args)
		}
		return
	case t.esc&EscStrEnd != 0:
		t.esc = 0
		if b == '\\' {
			t.dispatchSTR()
		}
		return
	case t.esc&EscAltCharset != 0:
		t.designateCharset(b)
		t.selectCharset()
		t.esc = 0
		return
	case t.esc&EscTest != 0:
		if b == '8' {
			t.fillScreenWithE()
		}
		t.esc = 0
		return
	}

	switch b {
	case '[':
		t.esc |= EscCSI
	case '#':
		t.esc |= EscTest
	case 'P', '_', '^', ']', 'k': // DCS, APC, PM, OSC, legacy title
		t.resetSTR()
		t.strType = b
		t.esc |= EscStr
	case '(', ')', '*', '+':
		t.pendingCharsetSlot = int(b - '(')
		t.esc |= EscAltCharset
	case 'D': // IND
		if t.cursor.Y == t.scrollBottom {
			t.activeGrid().ScrollUp(t.scrollTop, t.scrollBottom, 1, t.cursor.Pen, t.onScrollEvict)
		} else {
			t.moveTo(t.cursor.X, t.cursor.Y+1)
		}
		t.esc = 0
	case 'E': // NEL
		t.newline(true)
		t.esc = 0
	case 'H': // HTS
		t.activeGrid().SetTabStop(t.cursor.X)
		t.esc = 0
	case 'M': // RI
		if t.cursor.Y == t.scrollTop {
			t.activeGrid().ScrollDown(t.scrollTop, t.scrollBottom, 1, t.cursor.Pen)
		} else {
			t.moveTo(t.cursor.X, t.cursor.Y-1)
		}
		t.esc = 0
	case 'Z': // DECID
		t.send([]byte(vt102ID))
		t.esc = 0
	case 'c': // RIS
		t.fullReset()
		t.esc = 0
		t.callbacks().ResetTitle()
		t.callbacks().ResetColors()
	case '=': // DECPAM
		t.mode |= ModeAppKeypad
		t.esc = 0
	case '>': // DECPNM
		t.mode &^= ModeAppKeypad
		t.esc = 0
	case '7': // DECSC
		t.saveCursor()
		t.esc = 0
	case '8': // DECRC
		t.loadCursor()
		t.esc = 0
	case '\\': // ST: arrived here only because STR mode wasn't active
		t.esc = 0
	default:
		t.logUnknown("unknown sequence ESC 0x%02X %q", b, string(rune(b)))
		t.esc = 0
	}
}

func (t *Terminal) resetCSI() {
	t.csiBuf = t.csiBuf[:0]
}

func (t *Terminal) resetSTR() {
	t.strBuf = t.strBuf[:0]
	t.strType = 0
}

func (t *Terminal) dispatchSTR() {
	args := parseSTR(t.strType, t.strBuf)
	t.handleSTR(args)
}

func (t *Terminal) fillScreenWithE() {
	grid := t.activeGrid()
	for y := 0; y < t.rows; y++ {
		for x := 0; x < t.cols; x++ {
			grid.SetCell(x, y, Cell{Char: 'E'})
		}
	}
}
