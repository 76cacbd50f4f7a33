package vtcore

// Charset identifies one of the character sets a G0-G3 slot can designate,
// mirroring the source's `charset` enum.
type Charset int

const (
	CharsetGraphic0 Charset = iota
	CharsetGraphic1
	CharsetUK
	CharsetUSA
	CharsetMulti
	CharsetGerman
	CharsetFinnish
)

// charsetDesignators maps the ASCII byte following an ESC ( ) * + sequence
// to the charset it designates (tdeftran's table).
var charsetDesignators = map[byte]Charset{
	'0': CharsetGraphic0,
	'1': CharsetGraphic1,
	'A': CharsetUK,
	'B': CharsetUSA,
	'<': CharsetMulti,
	'K': CharsetGerman,
	'5': CharsetFinnish,
	'C': CharsetFinnish,
}

// decSpecialGraphics is the DEC special-graphics substitution table
// (box-drawing and symbol glyphs for ASCII 0x41-0x7e), ported verbatim from
// the source's vt100_0 table (itself borrowed from rxvt). A zero rune means
// the slot is unmapped and the original ASCII byte passes through unchanged.
var decSpecialGraphics = [62]rune{
	'↑', '↓', '→', '←', '█', '▚', '☃', // A-G
	0, 0, 0, 0, 0, 0, 0, 0, // H-O
	0, 0, 0, 0, 0, 0, 0, 0, // P-W
	0, 0, 0, 0, 0, 0, 0, ' ', // X-_
	'◆', '▒', '␉', '␌', '␍', '␊', '°', '±', // `-g
	'␤', '␋', '┘', '┐', '┌', '└', '┼', '⎺', // h-o
	'⎻', '─', '⎼', '⎽', '├', '┤', '┴', '┬', // p-w
	'│', '≤', '≥', 'π', '≠', '£', '·', // x-~
}

// translateGraphics substitutes r through the DEC special-graphics table
// when the pen's GFX bit is set. Unmapped slots and out-of-range input pass
// through unchanged.
func translateGraphics(r rune) rune {
	if r < 0x41 || r > 0x7e {
		return r
	}
	if g := decSpecialGraphics[r-0x41]; g != 0 {
		return g
	}
	return r
}
