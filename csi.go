package vtcore

// csiArgs holds one parsed CSI sequence: an optional private marker, up to
// 16 numeric arguments, and the terminating final byte.
type csiArgs struct {
	priv  bool
	args  [16]int
	narg  int
	final byte
}

// arg returns the i'th argument, or 0 if absent (an empty argument parses
// to 0, matching csiparse).
func (c *csiArgs) arg(i int) int {
	if i < 0 || i >= c.narg {
		return 0
	}
	return c.args[i]
}

// argDefault returns the i'th argument, substituting def when it is absent
// or zero (the source's DEFAULT macro).
func (c *csiArgs) argDefault(i, def int) int {
	v := c.arg(i)
	if v == 0 {
		return def
	}
	return v
}

// parseCSI walks a raw CSI buffer (bytes after "ESC["), extracting the
// optional '?' private marker, ';'-separated integer arguments (empty ->
// 0, overflow -> -1), and the final mode byte (csiparse).
func parseCSI(buf []byte) csiArgs {
	var c csiArgs
	i := 0
	if i < len(buf) && buf[i] == '?' {
		c.priv = true
		i++
	}

	for i < len(buf) && c.narg < len(c.args) {
		start := i
		neg := false
		if i < len(buf) && buf[i] == '-' {
			neg = true
			i++
		}
		v := 0
		digits := 0
		overflow := false
		for i < len(buf) && buf[i] >= '0' && buf[i] <= '9' {
			if v > (int(^uint(0)>>1)-9)/10 {
				overflow = true
			} else {
				v = v*10 + int(buf[i]-'0')
			}
			i++
			digits++
		}
		if digits == 0 {
			v = 0
			i = start
			if neg {
				i++
			}
		} else if overflow {
			v = -1
		} else if neg {
			v = -v
		}
		c.args[c.narg] = v
		c.narg++

		if i >= len(buf) || buf[i] != ';' {
			break
		}
		i++
	}

	for i < len(buf) {
		b := buf[i]
		if b >= 0x40 && b <= 0x7e {
			c.final = b
			break
		}
		i++
	}
	return c
}

// handleCSI dispatches a parsed CSI sequence (csihandle). Every cursor move
// goes through moveTo/moveAbs so scroll-region clamping and WRAPNEXT
// clearing stay centralised.
func (t *Terminal) handleCSI(c csiArgs) {
	switch c.final {
	case '@': // ICH
		t.activeGrid().InsertBlank(t.cursor.X, t.cursor.Y, c.argDefault(0, 1), t.cursor.Pen)
		t.activeGrid().MarkDirty(t.cursor.Y)
	case 'A': // CUU
		t.moveTo(t.cursor.X, t.cursor.Y-c.argDefault(0, 1))
	case 'B', 'e': // CUD, VPR
		t.moveTo(t.cursor.X, t.cursor.Y+c.argDefault(0, 1))
	case 'c': // DA
		if c.arg(0) == 0 {
			t.send([]byte(vt102ID))
		}
	case 'C', 'a': // CUF, HPR
		t.moveTo(t.cursor.X+c.argDefault(0, 1), t.cursor.Y)
	case 'D': // CUB
		t.moveTo(t.cursor.X-c.argDefault(0, 1), t.cursor.Y)
	case 'E': // CNL
		t.moveTo(0, t.cursor.Y+c.argDefault(0, 1))
	case 'F': // CPL
		t.moveTo(0, t.cursor.Y-c.argDefault(0, 1))
	case 'g': // TBC
		switch c.arg(0) {
		case 0:
			t.activeGrid().ClearTabStop(t.cursor.X)
		case 3:
			t.activeGrid().ClearAllTabStops()
		default:
			t.logUnknown("unknown CSI 'g' argument %d", c.arg(0))
		}
	case 'G', '`': // CHA, HPA
		t.moveTo(c.argDefault(0, 1)-1, t.cursor.Y)
	case 'H', 'f': // CUP, HVP
		t.moveAbs(c.argDefault(1, 1)-1, c.argDefault(0, 1)-1)
	case 'I': // CHT
		for n := c.argDefault(0, 1); n > 0; n-- {
			t.putTab(true)
		}
	case 'J': // ED
		t.eraseInDisplay(c.arg(0))
	case 'K': // EL
		t.eraseInLine(c.arg(0))
	case 'S': // SU
		t.activeGrid().ScrollUp(t.scrollTop, t.scrollBottom, c.argDefault(0, 1), t.cursor.Pen, t.onScrollEvict)
	case 'T': // SD
		t.activeGrid().ScrollDown(t.scrollTop, t.scrollBottom, c.argDefault(0, 1), t.cursor.Pen)
	case 'L': // IL
		t.insertBlankLine(c.argDefault(0, 1))
	case 'l': // RM
		t.setMode(c.priv, false, c.args[:c.narg])
	case 'M': // DL
		t.deleteLine(c.argDefault(0, 1))
	case 'X': // ECH
		n := c.argDefault(0, 1)
		t.activeGrid().ClearRegion(t.cursor.X, t.cursor.Y, t.cursor.X+n-1, t.cursor.Y, t.cursor.Pen)
	case 'P': // DCH
		t.activeGrid().DeleteChar(t.cursor.X, t.cursor.Y, c.argDefault(0, 1), t.cursor.Pen)
	case 'Z': // CBT
		for n := c.argDefault(0, 1); n > 0; n-- {
			t.putTab(false)
		}
	case 'd': // VPA
		t.moveAbs(t.cursor.X, c.argDefault(0, 1)-1)
	case 'h': // SM
		t.setMode(c.priv, true, c.args[:c.narg])
	case 'm': // SGR
		t.setAttr(c.args[:c.narg])
	case 'n': // DSR
		if c.arg(0) == 6 {
			t.send([]byte(cursorPositionReport(t.cursor.Y+1, t.cursor.X+1)))
			return
		}
	case 'r': // DECSTBM
		if c.priv {
			t.logUnknown("unknown private CSI 'r'")
			return
		}
		top := c.argDefault(0, 1) - 1
		bot := c.argDefault(1, t.rows) - 1
		t.setScrollRegion(top, bot)
		t.moveAbs(0, 0)
	case 's': // DECSC (ANSI.SYS)
		t.saveCursor()
	case 'u': // DECRC (ANSI.SYS)
		t.loadCursor()
	default:
		t.logUnknown("unknown CSI final %q", string(c.final))
	}
}

func (t *Terminal) eraseInDisplay(mode int) {
	switch mode {
	case 0: // below
		t.activeGrid().ClearRegion(t.cursor.X, t.cursor.Y, t.cols-1, t.cursor.Y, t.cursor.Pen)
		if t.cursor.Y < t.rows-1 {
			t.activeGrid().ClearRegion(0, t.cursor.Y+1, t.cols-1, t.rows-1, t.cursor.Pen)
		}
	case 1: // above
		if t.cursor.Y > 0 {
			t.activeGrid().ClearRegion(0, 0, t.cols-1, t.cursor.Y-1, t.cursor.Pen)
		}
		t.activeGrid().ClearRegion(0, t.cursor.Y, t.cursor.X, t.cursor.Y, t.cursor.Pen)
	case 2: // all
		t.activeGrid().ClearRegion(0, 0, t.cols-1, t.rows-1, t.cursor.Pen)
	default:
		t.logUnknown("unknown CSI 'J' argument %d", mode)
	}
}

func (t *Terminal) eraseInLine(mode int) {
	switch mode {
	case 0: // right
		t.activeGrid().ClearRegion(t.cursor.X, t.cursor.Y, t.cols-1, t.cursor.Y, t.cursor.Pen)
	case 1: // left
		t.activeGrid().ClearRegion(0, t.cursor.Y, t.cursor.X, t.cursor.Y, t.cursor.Pen)
	case 2: // all
		t.activeGrid().ClearRegion(0, t.cursor.Y, t.cols-1, t.cursor.Y, t.cursor.Pen)
	}
}
