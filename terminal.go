// Package vtcore implements the core of a VT102/xterm-compatible terminal
// emulator: the byte-stream parser and the screen model it drives.
package vtcore

import (
	"sync"

	"go.uber.org/zap"
)

// Terminal owns the primary and alternate grids, the cursor, and every piece
// of parser state, and is the entry point for feeding it pseudo-terminal
// output and reading back what it wants written to the pseudo-terminal in
// reply.
type Terminal struct {
	mu sync.Mutex

	cols, rows int

	primaryGrid *Grid
	alternate   *Grid

	cursor      Cursor
	savedCursor [2]Cursor

	mode Mode

	scrollTop, scrollBottom int

	charsets           [4]Charset
	activeCharsetSlot  int
	pendingCharsetSlot int

	esc     EscState
	csiBuf  []byte
	strBuf  []byte
	strType byte

	utf8Carry []byte

	hostCallbacks HostCallbacks
	scrollback    ScrollbackStore
	logger        *zap.SugaredLogger

	outbox []byte

	workingDir       string
	currentHyperlink *Hyperlink

	defaultPen Cell
	tabSpaces  int
}

// Option configures a Terminal at construction time.
type Option func(*Terminal)

// WithSize sets the initial grid dimensions. Defaults to 80x24.
func WithSize(cols, rows int) Option {
	return func(t *Terminal) {
		if cols > 0 {
			t.cols = cols
		}
		if rows > 0 {
			t.rows = rows
		}
	}
}

// WithLogger routes unknown/malformed-sequence diagnostics to logger
// instead of discarding them.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Terminal) {
		if logger != nil {
			t.logger = logger.Sugar()
		}
	}
}

// WithTabStop sets the initial tab width in columns. Defaults to 8.
func WithTabStop(n int) Option {
	return func(t *Terminal) {
		if n > 0 {
			t.tabSpaces = n
		}
	}
}

// WithDefaultColors sets the pen's resting foreground/background, restored
// on SGR 0 and RIS.
func WithDefaultColors(fg, bg Color) Option {
	return func(t *Terminal) {
		t.defaultPen.Fg = fg
		t.defaultPen.Bg = bg
	}
}

// WithHostCallbacks supplies the sink for title/bell/color/visibility
// notifications. When omitted, NopCallbacks is used.
func WithHostCallbacks(h HostCallbacks) Option {
	return func(t *Terminal) { t.hostCallbacks = h }
}

// WithScrollbackStore supplies the sink for rows scrolled off the primary
// screen's scroll region. When omitted, rows are discarded.
func WithScrollbackStore(s ScrollbackStore) Option {
	return func(t *Terminal) { t.scrollback = s }
}

// New constructs a Terminal at its initial (reset) state (tnew + treset).
func New(opts ...Option) *Terminal {
	t := &Terminal{
		cols:      80,
		rows:      24,
		tabSpaces: 8,
		defaultPen: Cell{
			Fg: DefaultFg,
			Bg: DefaultBg,
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	t.reset()
	return t
}

// reset implements treset: blank both screens, home the cursor, clear every
// mode except the ones the real hardware boots with, and reinstall default
// tab stops.
func (t *Terminal) reset() {
	t.mode = ModeWrap
	t.charsets = [4]Charset{CharsetUSA, CharsetUSA, CharsetUSA, CharsetUSA}
	t.activeCharsetSlot = 0
	t.pendingCharsetSlot = 0
	t.scrollTop = 0
	t.scrollBottom = t.rows - 1
	t.cursor = Cursor{Pen: t.defaultPen}
	t.savedCursor = [2]Cursor{{Pen: t.defaultPen}, {Pen: t.defaultPen}}
	t.esc = 0
	t.csiBuf = nil
	t.strBuf = nil
	t.utf8Carry = nil
	t.workingDir = ""
	t.currentHyperlink = nil

	t.primaryGrid = NewGrid(t.rows, t.cols, t.tabSpaces, t.defaultPen)
	t.alternate = NewGrid(t.rows, t.cols, t.tabSpaces, t.defaultPen)
}

// fullReset implements the RIS (ESC c) command: a reset plus clearing both
// screens (treset is already blank-on-construct; RIS must re-blank grids
// that have accumulated content).
func (t *Terminal) fullReset() {
	t.reset()
}

// primary returns the primary screen grid, regardless of which is active.
func (t *Terminal) primary() *Grid { return t.primaryGrid }

// activeGrid returns whichever screen is currently displayed.
func (t *Terminal) activeGrid() *Grid {
	if t.HasMode(ModeAltScreen) {
		return t.alternate
	}
	return t.primaryGrid
}

// Rows reports the number of visible rows.
func (t *Terminal) Rows() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rows
}

// Cols reports the number of visible columns.
func (t *Terminal) Cols() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cols
}

// Cell returns the cell at (x, y) on the currently displayed screen.
func (t *Terminal) Cell(x, y int) Cell {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.activeGrid().Cell(x, y)
}

// IsAltScreen reports whether the alternate screen is currently displayed.
func (t *Terminal) IsAltScreen() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.HasMode(ModeAltScreen)
}

// CursorPosition reports the cursor's current (x, y).
func (t *Terminal) CursorPosition() (x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cursor.X, t.cursor.Y
}

// LineText returns row y of the currently displayed screen as plain text,
// wide-dummy cells omitted.
func (t *Terminal) LineText(y int) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lineTextLocked(y)
}

// DirtyRows returns the indices of rows that changed since the last
// Redrawn call on the currently displayed screen.
func (t *Terminal) DirtyRows() []int {
	t.mu.Lock()
	defer t.mu.Unlock()
	grid := t.activeGrid()
	var dirty []int
	for y := 0; y < grid.Rows(); y++ {
		if grid.IsDirty(y) {
			dirty = append(dirty, y)
		}
	}
	return dirty
}

// Redrawn clears the dirty bitmap for the currently displayed screen,
// acknowledging that the host has repainted every row DirtyRows reported.
func (t *Terminal) Redrawn() {
	t.mu.Lock()
	defer t.mu.Unlock()
	grid := t.activeGrid()
	for y := 0; y < grid.Rows(); y++ {
		grid.ClearDirty(y)
	}
}

// Resize adjusts the grid dimensions, sliding content to keep the cursor
// visible (tresize) and resetting the scroll region to the full screen.
func (t *Terminal) Resize(cols, rows int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if cols <= 0 || rows <= 0 || (cols == t.cols && rows == t.rows) {
		return
	}
	oldY := t.cursor.Y
	t.cursor.Y = t.primaryGrid.Resize(rows, cols, oldY, t.defaultPen)
	t.alternate.Resize(rows, cols, oldY, t.defaultPen)
	t.cols, t.rows = cols, rows
	t.cursor.X = clampInt(t.cursor.X, 0, t.cols-1)
	t.cursor.Y = clampInt(t.cursor.Y, 0, t.rows-1)
	t.scrollTop = 0
	t.scrollBottom = t.rows - 1
}

// moveTo implements tmoveto: clamp (x, y) into the grid, honouring the
// scroll-region clamp when DECOM (origin mode) is set, and clear WRAPNEXT.
func (t *Terminal) moveTo(x, y int) {
	miny, maxy := 0, t.rows-1
	if t.cursor.State&CursorOrigin != 0 {
		miny, maxy = t.scrollTop, t.scrollBottom
	}
	t.cursor.State &^= CursorWrapNext
	t.cursor.X = clampInt(x, 0, t.cols-1)
	t.cursor.Y = clampInt(y, miny, maxy)
}

// moveAbs implements tmoveato: translate (x, y) out of origin-mode-relative
// coordinates before delegating to moveTo.
func (t *Terminal) moveAbs(x, y int) {
	if t.cursor.State&CursorOrigin != 0 {
		y += t.scrollTop
	}
	t.moveTo(x, y)
}

// newline implements tnewline: advance to the next row, scrolling the
// region if already at its bottom, and optionally returning to column 0
// (LF vs CRLF mode, or NEL/IND's forced first-column).
func (t *Terminal) newline(firstCol bool) {
	y := t.cursor.Y
	if y == t.scrollBottom {
		t.activeGrid().ScrollUp(t.scrollTop, t.scrollBottom, 1, t.cursor.Pen, t.onScrollEvict)
	} else {
		y++
	}
	x := t.cursor.X
	if firstCol {
		x = 0
	}
	t.moveTo(x, y)
}

// onScrollEvict receives rows scrolled off the top of the primary screen's
// scroll region, forwarding them to the configured ScrollbackStore.
func (t *Terminal) onScrollEvict(row []Cell) {
	if t.activeGrid() != t.primaryGrid || t.scrollback == nil {
		return
	}
	cp := make([]Cell, len(row))
	copy(cp, row)
	t.scrollback.Push(cp)
}

// putTab implements tputtab: move to the next (or, going backward, the
// previous) tab stop, clamped to the grid.
func (t *Terminal) putTab(forward bool) {
	if forward {
		t.moveTo(t.activeGrid().NextTabStop(t.cursor.X), t.cursor.Y)
	} else {
		t.moveTo(t.activeGrid().PrevTabStop(t.cursor.X), t.cursor.Y)
	}
}

// setScrollRegion implements tsetscroll: clamp both bounds into the grid and
// install the region, swapping an inverted pair so that top <= bot.
func (t *Terminal) setScrollRegion(top, bot int) {
	top = clampInt(top, 0, t.rows-1)
	bot = clampInt(bot, 0, t.rows-1)
	if top > bot {
		top, bot = bot, top
	}
	t.scrollTop = top
	t.scrollBottom = bot
}

// insertBlankLine implements the IL control function: push n blank rows in
// at the cursor row, shifting the rest of the scroll region down.
func (t *Terminal) insertBlankLine(n int) {
	if t.cursor.Y < t.scrollTop || t.cursor.Y > t.scrollBottom {
		return
	}
	t.activeGrid().ScrollDown(t.cursor.Y, t.scrollBottom, n, t.cursor.Pen)
}

// deleteLine implements the DL control function: remove n rows at the
// cursor row, pulling the rest of the scroll region up.
func (t *Terminal) deleteLine(n int) {
	if t.cursor.Y < t.scrollTop || t.cursor.Y > t.scrollBottom {
		return
	}
	t.activeGrid().ScrollUp(t.cursor.Y, t.scrollBottom, n, t.cursor.Pen, t.onScrollEvict)
}

// saveCursor implements the save half of tcursor, keyed by which screen is
// active (DECSC, and the 1048/1049 private-mode save).
func (t *Terminal) saveCursor() {
	t.savedCursor[boolIndex(t.HasMode(ModeAltScreen))] = t.cursor
}

// loadCursor implements the restore half of tcursor (DECRC, 1048/1049).
func (t *Terminal) loadCursor() {
	t.cursor = t.savedCursor[boolIndex(t.HasMode(ModeAltScreen))]
	t.moveTo(t.cursor.X, t.cursor.Y)
}

// swapScreen implements tswapscreen: flip MODE_ALTSCREEN and mark the newly
// displayed screen fully dirty so the host repaints it in full.
func (t *Terminal) swapScreen() {
	t.setModeBit(ModeAltScreen, !t.HasMode(ModeAltScreen))
	t.activeGrid().MarkAllDirty()
}

// designateCharset implements tdeftran: bind the pending G-slot to the
// charset named by b, logging and leaving the slot untouched if b doesn't
// name one.
func (t *Terminal) designateCharset(b byte) {
	cs, ok := charsetDesignators[b]
	if !ok {
		t.logUnknown("unknown charset designator %q", string(b))
		return
	}
	t.charsets[t.pendingCharsetSlot] = cs
}

// selectCharset implements select_charset: recompute the pen's GFX bit from
// whichever of G0/G1 is currently active.
func (t *Terminal) selectCharset() {
	if t.charsets[t.activeCharsetSlot] == CharsetGraphic0 {
		t.cursor.Pen.SetFlag(AttrGFX)
	} else {
		t.cursor.Pen.ClearFlag(AttrGFX)
	}
}

// setChar implements tsetchar: clean up a wide/wide-dummy neighbour the new
// glyph is overwriting, substitute through the DEC graphics table when the
// pen has GFX set, and stamp the pen (with any active hyperlink) onto the
// cell.
func (t *Terminal) setChar(r rune, x, y int) {
	pen := t.cursor.Pen
	if pen.HasFlag(AttrGFX) {
		r = translateGraphics(r)
	}
	grid := t.activeGrid()

	if cur := grid.Cell(x, y); cur.HasFlag(AttrWide) {
		if x+1 < t.cols {
			next := grid.Cell(x+1, y)
			next.Char = ' '
			next.ClearFlag(AttrWDummy)
			grid.SetCell(x+1, y, next)
		}
	} else if cur.HasFlag(AttrWDummy) {
		if x-1 >= 0 {
			prev := grid.Cell(x-1, y)
			prev.Char = ' '
			prev.ClearFlag(AttrWide)
			grid.SetCell(x-1, y, prev)
		}
	}

	pen.Char = r
	pen.Hyperlink = t.currentHyperlink
	grid.SetCell(x, y, pen)
}

// send enqueues bytes for the host to write to the pseudo-terminal; drain
// with Output (pty.go).
func (t *Terminal) send(b []byte) {
	t.outbox = append(t.outbox, b...)
}

// logUnknown records a diagnostic about a malformed or unrecognised
// sequence. With no logger configured, diagnostics are discarded: they are
// a debugging aid, never part of the terminal's observable behaviour.
func (t *Terminal) logUnknown(format string, args ...any) {
	if t.logger == nil {
		return
	}
	t.logger.Debugf(format, args...)
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}
