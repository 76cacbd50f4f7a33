package vtcore

// Grid is one screen: rows x cols of Cells, a dirty bitmap at row
// granularity, and tab stops. A Terminal owns two Grids (primary and
// alternate); scroll-region bounds, the cursor, and scrollback policy all
// live one level up in Terminal, since a lone Grid has no notion of which
// rows are "the scroll region" — it only knows how to shuffle and clear its
// own rows (DESIGN NOTES: index-based rotation instead of the source's
// pointer-swap scroll).
type Grid struct {
	rows    [][]Cell
	dirty   []bool
	tabStop []bool
	cols    int
}

// NewGrid allocates a rows x cols grid, every cell painted with pen-blank,
// and tab stops every tabSpaces columns.
func NewGrid(rows, cols, tabSpaces int, pen Cell) *Grid {
	g := &Grid{
		rows:    make([][]Cell, rows),
		dirty:   make([]bool, rows),
		tabStop: make([]bool, cols),
		cols:    cols,
	}
	blank := blankCell(pen)
	for i := range g.rows {
		g.rows[i] = newRow(cols, blank)
	}
	if tabSpaces > 0 {
		for i := tabSpaces; i < cols; i += tabSpaces {
			g.tabStop[i] = true
		}
	}
	return g
}

func newRow(cols int, blank Cell) []Cell {
	row := make([]Cell, cols)
	for i := range row {
		row[i] = blank
	}
	return row
}

// Rows and Cols report the grid's current dimensions.
func (g *Grid) Rows() int { return len(g.rows) }
func (g *Grid) Cols() int { return g.cols }

// Cell returns the cell at (x, y), or the zero Cell if out of bounds.
func (g *Grid) Cell(x, y int) Cell {
	if y < 0 || y >= len(g.rows) || x < 0 || x >= g.cols {
		return Cell{}
	}
	return g.rows[y][x]
}

// SetCell writes cell at (x, y) and marks row y dirty. Out-of-bounds
// coordinates are ignored.
func (g *Grid) SetCell(x, y int, cell Cell) {
	if y < 0 || y >= len(g.rows) || x < 0 || x >= g.cols {
		return
	}
	g.rows[y][x] = cell
	g.dirty[y] = true
}

// Row returns the live row slice for y, or nil if out of bounds. Callers
// that mutate it must mark the row dirty themselves.
func (g *Grid) Row(y int) []Cell {
	if y < 0 || y >= len(g.rows) {
		return nil
	}
	return g.rows[y]
}

// IsDirty reports whether row y has changed since the last ClearDirty(y).
func (g *Grid) IsDirty(y int) bool {
	if y < 0 || y >= len(g.dirty) {
		return false
	}
	return g.dirty[y]
}

// MarkDirty flags row y as changed.
func (g *Grid) MarkDirty(y int) {
	if y >= 0 && y < len(g.dirty) {
		g.dirty[y] = true
	}
}

// ClearDirty clears row y's dirty flag.
func (g *Grid) ClearDirty(y int) {
	if y >= 0 && y < len(g.dirty) {
		g.dirty[y] = false
	}
}

// MarkAllDirty flags every row as changed (used after a swap_screen or
// full reset).
func (g *Grid) MarkAllDirty() {
	for i := range g.dirty {
		g.dirty[i] = true
	}
}

// ClearRegion normalises (x1,y1)-(x2,y2), clamps to the grid, and fills
// every touched cell with pen-blank, marking each touched row dirty.
func (g *Grid) ClearRegion(x1, y1, x2, y2 int, pen Cell) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	x1 = clampInt(x1, 0, g.cols-1)
	x2 = clampInt(x2, 0, g.cols-1)
	y1 = clampInt(y1, 0, len(g.rows)-1)
	y2 = clampInt(y2, 0, len(g.rows)-1)

	blank := blankCell(pen)
	for y := y1; y <= y2; y++ {
		row := g.rows[y]
		for x := x1; x <= x2; x++ {
			row[x] = blank
		}
		g.dirty[y] = true
	}
}

// ScrollUp rotates rows orig+n..bot into orig..bot-n and blanks the n rows
// left vacated at the bottom of the region, clamping n to the region's
// height. If onEvicted is non-nil, it is called once per row that scrolls
// off the top of the region (in top-to-bottom order) with a copy of that
// row's content, before it is overwritten — the hook a Terminal uses to
// feed a ScrollbackStore.
func (g *Grid) ScrollUp(orig, bot, n int, pen Cell, onEvicted func([]Cell)) {
	if n <= 0 || orig > bot {
		return
	}
	if n > bot-orig+1 {
		n = bot - orig + 1
	}

	if onEvicted != nil {
		for y := orig; y < orig+n; y++ {
			onEvicted(append([]Cell(nil), g.rows[y]...))
		}
	}

	g.ClearRegion(0, orig, g.cols-1, orig+n-1, pen)
	for y := orig; y <= bot-n; y++ {
		g.rows[y], g.rows[y+n] = g.rows[y+n], g.rows[y]
		g.dirty[y] = true
		g.dirty[y+n] = true
	}
}

// ScrollDown mirrors ScrollUp: rotates rows orig..bot-n into orig+n..bot and
// blanks the rows exposed at the top of the region.
func (g *Grid) ScrollDown(orig, bot, n int, pen Cell) {
	if n <= 0 || orig > bot {
		return
	}
	if n > bot-orig+1 {
		n = bot - orig + 1
	}

	g.ClearRegion(0, bot-n+1, g.cols-1, bot, pen)
	for y := bot; y >= orig+n; y-- {
		g.rows[y], g.rows[y-n] = g.rows[y-n], g.rows[y]
		g.dirty[y] = true
		g.dirty[y-n] = true
	}
}

// InsertBlank shifts row y's cells right by n starting at column x, then
// clears the vacated [x, x+n) span. Overflow past the right edge is
// dropped.
func (g *Grid) InsertBlank(x, y, n int, pen Cell) {
	if y < 0 || y >= len(g.rows) || n <= 0 {
		return
	}
	row := g.rows[y]
	dst := x + n
	if dst >= g.cols {
		g.ClearRegion(x, y, g.cols-1, y, pen)
		return
	}
	copy(row[dst:], row[x:g.cols-n])
	blank := blankCell(pen)
	for i := x; i < dst; i++ {
		row[i] = blank
	}
	g.dirty[y] = true
}

// DeleteChar shifts row y's cells left by n starting at column x, filling
// the vacated tail with pen-blank.
func (g *Grid) DeleteChar(x, y, n int, pen Cell) {
	if y < 0 || y >= len(g.rows) || n <= 0 {
		return
	}
	row := g.rows[y]
	src := x + n
	if src >= g.cols {
		g.ClearRegion(x, y, g.cols-1, y, pen)
		return
	}
	copy(row[x:], row[src:g.cols])
	blank := blankCell(pen)
	for i := g.cols - n; i < g.cols; i++ {
		row[i] = blank
	}
	g.dirty[y] = true
}

// Resize grows or shrinks the grid to newRows x newCols. Content is kept at
// the top-left; new cells are pen-blank. If cursorY would fall below the
// new row count, the grid slides upward (dropping the oldest rows) to keep
// it in view, mirroring the source's tresize cursor-slide behaviour; the
// resulting clamped cursor row is returned.
func (g *Grid) Resize(newRows, newCols, cursorY int, pen Cell) (adjustedCursorY int) {
	if newRows <= 0 || newCols <= 0 {
		return cursorY
	}

	slide := cursorY - newRows + 1
	if slide < 0 {
		slide = 0
	}
	if slide > len(g.rows) {
		slide = len(g.rows)
	}

	rows := g.rows[slide:]
	blank := blankCell(pen)

	if len(rows) > newRows {
		rows = rows[:newRows]
	}
	resized := make([][]Cell, newRows)
	copy(resized, rows)
	for i := len(rows); i < newRows; i++ {
		resized[i] = newRow(newCols, blank)
	}

	for i, row := range resized {
		if len(row) == newCols {
			continue
		}
		grown := make([]Cell, newCols)
		copy(grown, row)
		for j := len(row); j < newCols; j++ {
			grown[j] = blank
		}
		resized[i] = grown
	}

	newTabStop := make([]bool, newCols)
	copy(newTabStop, g.tabStop)

	g.rows = resized
	g.dirty = make([]bool, newRows)
	g.MarkAllDirty()
	g.cols = newCols
	g.tabStop = newTabStop

	adjustedCursorY = clampInt(cursorY-slide, 0, newRows-1)
	return adjustedCursorY
}

// SetTabStop, ClearTabStop, ClearAllTabStops, NextTabStop and PrevTabStop
// manage the grid's per-column tab stop bitmap (tputtab's table).

func (g *Grid) SetTabStop(x int) {
	if x >= 0 && x < g.cols {
		g.tabStop[x] = true
	}
}

func (g *Grid) ClearTabStop(x int) {
	if x >= 0 && x < g.cols {
		g.tabStop[x] = false
	}
}

func (g *Grid) ClearAllTabStops() {
	for i := range g.tabStop {
		g.tabStop[i] = false
	}
}

func (g *Grid) SetTabStops(tabSpaces int) {
	g.ClearAllTabStops()
	if tabSpaces > 0 {
		for i := tabSpaces; i < g.cols; i += tabSpaces {
			g.tabStop[i] = true
		}
	}
}

// NextTabStop returns the next enabled tab stop strictly after x, or the
// last column if none is found (tputtab(forward=true)).
func (g *Grid) NextTabStop(x int) int {
	for c := x + 1; c < g.cols; c++ {
		if g.tabStop[c] {
			return c
		}
	}
	return g.cols - 1
}

// PrevTabStop returns the previous enabled tab stop strictly before x, or
// column 0 if none is found (tputtab(forward=false)).
func (g *Grid) PrevTabStop(x int) int {
	for c := x - 1; c > 0; c-- {
		if g.tabStop[c] {
			return c
		}
	}
	return 0
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
