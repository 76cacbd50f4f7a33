package vtcore

// Mode is the terminal-wide mode bitmask, mirroring the source's
// `term_mode` enum.
type Mode uint32

const (
	ModeWrap Mode = 1 << iota
	ModeInsert
	ModeAppKeypad
	ModeAltScreen
	ModeCRLF
	ModeMouseBtn
	ModeMouseMotion
	_ // MODE_REVERSE, deleted upstream
	ModeKbdLock
	_ // MODE_HIDE, deleted upstream
	ModeEcho
	ModeAppCursor
	ModeMouseSGR
	Mode8Bit
	ModeBlink
	ModeFBlink
	ModeFocus
	ModeMouseX10
	ModeMouseMany
	ModeBrcktPaste
)

// ModeMouse is the union of every mouse-reporting submode; setting any one
// of them clears the others first (they are mutually exclusive).
const ModeMouse = ModeMouseBtn | ModeMouseMotion | ModeMouseX10 | ModeMouseMany

// HasMode reports whether any bit in flag is set.
func (t *Terminal) HasMode(flag Mode) bool {
	return t.mode&flag != 0
}

func (t *Terminal) setModeBit(flag Mode, set bool) {
	if set {
		t.mode |= flag
	} else {
		t.mode &^= flag
	}
}

// setMode implements tsetmode: for each argument, branch on priv (DEC
// private vs. ANSI standard) and apply set/reset.
func (t *Terminal) setMode(priv bool, set bool, args []int) {
	if priv {
		for _, a := range args {
			t.setPrivateMode(a, set)
		}
		return
	}
	for _, a := range args {
		t.setANSIMode(a, set)
	}
}

func (t *Terminal) setPrivateMode(arg int, set bool) {
	switch arg {
	case 1: // DECCKM
		t.setModeBit(ModeAppCursor, set)
	case 5: // DECSCNM
		t.callbacks().SetReverseVideo(set)
	case 6: // DECOM
		if set {
			t.cursor.State |= CursorOrigin
		} else {
			t.cursor.State &^= CursorOrigin
		}
		t.moveAbs(0, 0)
	case 7: // DECAWM
		t.setModeBit(ModeWrap, set)
	case 0, 2, 3, 4, 8, 12, 18, 19, 42:
		// ignored: error, DECANM, DECCOLM, DECSCLM, DECARM, att610,
		// DECPFF, DECPEX, DECNRCM
	case 25: // DECTCEM
		t.callbacks().SetCursorVisibility(set)
	case 9: // X10 mouse compatibility
		t.callbacks().SetPointerMotion(false)
		t.setModeBit(ModeMouse, false)
		t.setModeBit(ModeMouseX10, set)
	case 1000:
		t.callbacks().SetPointerMotion(false)
		t.setModeBit(ModeMouse, false)
		t.setModeBit(ModeMouseBtn, set)
	case 1002:
		t.callbacks().SetPointerMotion(false)
		t.setModeBit(ModeMouse, false)
		t.setModeBit(ModeMouseMotion, set)
	case 1003:
		t.callbacks().SetPointerMotion(set)
		t.setModeBit(ModeMouse, false)
		t.setModeBit(ModeMouseMany, set)
	case 1004: // focus events
		t.setModeBit(ModeFocus, set)
	case 1006: // SGR mouse reporting
		t.setModeBit(ModeMouseSGR, set)
	case 1034:
		t.setModeBit(Mode8Bit, set)
	case 1049: // swap screen & save/restore cursor
		t.saveOrLoadCursor(set)
		fallthrough
	case 47, 1047:
		t.enterOrLeaveAltScreen(set, arg)
		if arg == 1049 {
			t.saveOrLoadCursor(set)
		}
	case 1048:
		t.saveOrLoadCursor(set)
	case 2004: // bracketed paste
		t.setModeBit(ModeBrcktPaste, set)
	case 1001, 1005, 1015:
		// recognised-but-unimplemented mouse modes: highlight mode,
		// UTF-8 mouse mode, urxvt mangled mode.
		t.logUnknown("unsupported private mode %d", arg)
	default:
		t.logUnknown("unknown private set/reset mode %d", arg)
	}
}

func (t *Terminal) enterOrLeaveAltScreen(set bool, arg int) {
	alt := t.HasMode(ModeAltScreen)
	if alt {
		t.alternate.ClearRegion(0, 0, t.alternate.Cols()-1, t.alternate.Rows()-1, t.cursor.Pen)
	}
	if set != alt {
		t.swapScreen()
	}
}

func (t *Terminal) saveOrLoadCursor(set bool) {
	if set {
		t.saveCursor()
	} else {
		t.loadCursor()
	}
}

func (t *Terminal) setANSIMode(arg int, set bool) {
	switch arg {
	case 0: // ignored
	case 2: // KAM
		t.setModeBit(ModeKbdLock, set)
	case 4: // IRM
		t.setModeBit(ModeInsert, set)
	case 12: // SRM — inverted: set means "don't echo"
		t.setModeBit(ModeEcho, !set)
	case 20: // LNM
		t.setModeBit(ModeCRLF, set)
	default:
		t.logUnknown("unknown set/reset mode %d", arg)
	}
}
