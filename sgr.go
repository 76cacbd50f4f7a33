package vtcore

// setAttr walks an SGR argument vector in order, mutating the pen
// (tsetattr). Malformed extended-colour forms are logged and leave the
// colour untouched for that argument.
func (t *Terminal) setAttr(args []int) {
	pen := &t.cursor.Pen
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case 0:
			pen.Attr &^= AttrReverse | AttrUnderline | AttrBold | AttrItalic | AttrBlink
			pen.Fg = t.defaultPen.Fg
			pen.Bg = t.defaultPen.Bg
		case 1:
			pen.Attr |= AttrBold
		case 3:
			pen.Attr |= AttrItalic
		case 4:
			pen.Attr |= AttrUnderline
		case 5, 6: // slow / rapid blink
			pen.Attr |= AttrBlink
		case 7:
			pen.Attr |= AttrReverse
		case 21, 22:
			pen.Attr &^= AttrBold
		case 23:
			pen.Attr &^= AttrItalic
		case 24:
			pen.Attr &^= AttrUnderline
		case 25, 26:
			pen.Attr &^= AttrBlink
		case 27:
			pen.Attr &^= AttrReverse
		case 38:
			if c, ok := t.extendedColor(args, &i); ok {
				pen.Fg = c
			}
		case 39:
			pen.Fg = t.defaultPen.Fg
		case 48:
			if c, ok := t.extendedColor(args, &i); ok {
				pen.Bg = c
			}
		case 49:
			pen.Bg = t.defaultPen.Bg
		default:
			switch {
			case between(args[i], 30, 37):
				pen.Fg = PaletteColor(args[i] - 30)
			case between(args[i], 40, 47):
				pen.Bg = PaletteColor(args[i] - 40)
			case between(args[i], 90, 97):
				pen.Fg = PaletteColor(args[i] - 90 + 8)
			case between(args[i], 100, 107):
				pen.Bg = PaletteColor(args[i] - 100 + 8)
			default:
				t.logUnknown("unknown SGR attribute %d", args[i])
			}
		}
	}
}

// extendedColor parses the argument(s) following an SGR 38/48, advancing i
// past whatever it consumes (tdefcolor). ok is false if the form was
// malformed or truncated, in which case the pen is left unchanged.
func (t *Terminal) extendedColor(args []int, i *int) (Color, bool) {
	if *i+1 >= len(args) {
		t.logUnknown("SGR extended colour missing selector")
		return 0, false
	}
	switch args[*i+1] {
	case 2: // direct colour in RGB space
		if *i+4 >= len(args) {
			t.logUnknown("SGR extended colour: incorrect number of parameters")
			return 0, false
		}
		r, g, b := args[*i+2], args[*i+3], args[*i+4]
		*i += 4
		if !between(r, 0, 255) || !between(g, 0, 255) || !between(b, 0, 255) {
			t.logUnknown("SGR extended colour: bad rgb (%d,%d,%d)", r, g, b)
			return 0, false
		}
		return NewTrueColor(r, g, b), true
	case 5: // indexed colour
		if *i+2 >= len(args) {
			t.logUnknown("SGR extended colour: incorrect number of parameters")
			return 0, false
		}
		*i += 2
		idx := args[*i]
		if !between(idx, 0, 255) {
			t.logUnknown("SGR extended colour: bad index %d", idx)
			return 0, false
		}
		return PaletteColor(idx), true
	default:
		t.logUnknown("SGR extended colour: unknown selector %d", args[*i+1])
		return 0, false
	}
}

func between(v, lo, hi int) bool {
	return v >= lo && v <= hi
}
