package terminal

// Row is one line of the screen buffer.
type Row struct {
	cells      []Cell
	wrapForced bool
}

func newRow(width int, attr TextAttribute) Row {
	r := Row{cells: make([]Cell, width)}
	for i := range r.cells {
		r.cells[i] = BlankCell(attr)
	}
	return r
}

// Reset blank-fills the row with the given attributes and clears the
// forced-wrap flag.
func (r *Row) Reset(attr TextAttribute) {
	for i := range r.cells {
		r.cells[i].Reset(attr)
	}
	r.wrapForced = false
}

// SetWrapForced records whether the row flowed into the next one because
// it ran out of columns (as opposed to ending with an explicit newline).
func (r *Row) SetWrapForced(wrap bool) {
	r.wrapForced = wrap
}

// WasWrapForced returns the forced-wrap flag.
func (r *Row) WasWrapForced() bool {
	return r.wrapForced
}

// copyOf returns a deep copy of the row.
func (r *Row) copyOf() Row {
	cells := make([]Cell, len(r.cells))
	copy(cells, r.cells)
	return Row{cells: cells, wrapForced: r.wrapForced}
}

// ScreenBuffer is the scrollable cell arena the engine mutates. Rows are
// addressed logically: logical row 0 lives wherever firstRow points into
// the physical arena, so IncrementCircularBuffer is an O(1) base-index
// update plus clearing the recycled row, never a bulk copy.
//
// The buffer also owns the pieces of session state the engine reads and
// writes through it: the cursor, the current pen attributes, and the
// hyperlink id map.
type ScreenBuffer struct {
	width  int
	height int

	rows     []Row
	firstRow int

	cursor      Cursor
	currentAttr TextAttribute

	hyperlinkIDs    map[string]uint16
	hyperlinkURIs   map[uint16]string
	nextHyperlinkID uint16
}

// NewScreenBuffer creates a buffer of the given size with blank cells,
// default attributes, and the cursor at the origin.
func NewScreenBuffer(width, height int) *ScreenBuffer {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	b := &ScreenBuffer{
		width:           width,
		height:          height,
		rows:            make([]Row, height),
		cursor:          NewCursor(),
		currentAttr:     DefaultTextAttribute(),
		hyperlinkIDs:    make(map[string]uint16),
		hyperlinkURIs:   make(map[uint16]string),
		nextHyperlinkID: 1,
	}
	for i := range b.rows {
		b.rows[i] = newRow(width, b.currentAttr)
	}
	return b
}

// Width returns the buffer width in character columns.
func (b *ScreenBuffer) Width() int { return b.width }

// Height returns the total number of rows, visible plus scrollback.
func (b *ScreenBuffer) Height() int { return b.height }

// Size returns the buffer's full coordinate space as a viewport.
func (b *ScreenBuffer) Size() Viewport {
	return ViewportFromDimensions(Coord{}, b.width, b.height)
}

// GetRowByOffset returns the row at the given logical offset. Out-of-range
// offsets are clamped to the nearest edge row.
func (b *ScreenBuffer) GetRowByOffset(y int) *Row {
	if y < 0 {
		y = 0
	}
	if y >= b.height {
		y = b.height - 1
	}
	return &b.rows[(b.firstRow+y)%b.height]
}

// CellAt returns a pointer to the cell at the given logical position, or
// nil if the position is outside the buffer.
func (b *ScreenBuffer) CellAt(pos Coord) *Cell {
	if pos.X < 0 || pos.X >= b.width || pos.Y < 0 || pos.Y >= b.height {
		return nil
	}
	return &b.GetRowByOffset(pos.Y).cells[pos.X]
}

// Write copies cells into the row at pos, stopping at the row's right
// edge. When setWrap is true and the write runs through the final column,
// the row is marked as forced-wrapped; erase fills pass false so that
// blanking a line never looks like wrapped text.
func (b *ScreenBuffer) Write(pos Coord, cells []Cell, setWrap bool) {
	if pos.Y < 0 || pos.Y >= b.height || pos.X >= b.width {
		return
	}
	row := b.GetRowByOffset(pos.Y)
	x := pos.X
	for _, cell := range cells {
		if x < 0 {
			x++
			continue
		}
		if x >= b.width {
			break
		}
		row.cells[x] = cell
		x++
	}
	if setWrap && x >= b.width {
		row.wrapForced = true
	}
}

// FillCells writes count copies of a character with the given attributes
// starting at pos, clamped to the row's right edge. The forced-wrap flag
// is never touched.
func (b *ScreenBuffer) FillCells(pos Coord, ch rune, attr TextAttribute, count int) {
	if pos.Y < 0 || pos.Y >= b.height || count <= 0 {
		return
	}
	row := b.GetRowByOffset(pos.Y)
	start := pos.X
	if start < 0 {
		count += start
		start = 0
	}
	end := start + count
	if end > b.width {
		end = b.width
	}
	for x := start; x < end; x++ {
		row.cells[x] = Cell{Char: ch, Attr: attr}
	}
}

// IncrementCircularBuffer rotates the arena by one row: logical row 1
// becomes logical row 0 and the recycled row reappears at the bottom,
// reset to blank with the current attributes.
func (b *ScreenBuffer) IncrementCircularBuffer() {
	recycled := &b.rows[b.firstRow]
	b.firstRow = (b.firstRow + 1) % b.height
	recycled.Reset(b.currentAttr)
}

// ScrollRows moves the block of size logical rows starting at firstRow by
// delta positions (negative is up). Rows vacated by the move keep their
// previous content; callers that need them blanked reset them explicitly.
func (b *ScreenBuffer) ScrollRows(firstRow, size, delta int) {
	if size <= 0 || delta == 0 {
		return
	}
	if firstRow < 0 {
		size += firstRow
		firstRow = 0
	}
	if firstRow+size > b.height {
		size = b.height - firstRow
	}
	if size <= 0 {
		return
	}

	moved := make([]Row, size)
	for i := 0; i < size; i++ {
		moved[i] = b.GetRowByOffset(firstRow + i).copyOf()
	}
	for i := 0; i < size; i++ {
		target := firstRow + delta + i
		if target < 0 || target >= b.height {
			continue
		}
		*b.GetRowByOffset(target) = moved[i]
	}
}

// GetLastNonBlankCharacter returns the buffer-absolute position of the
// last cell inside the viewport holding a visible character, scanning
// bottom-up. Returns the origin if the region is entirely blank.
func (b *ScreenBuffer) GetLastNonBlankCharacter(view Viewport) Coord {
	top := view.Top()
	bottom := view.BottomExclusive()
	left := view.Left()
	right := view.RightExclusive()
	if top < 0 {
		top = 0
	}
	if bottom > b.height {
		bottom = b.height
	}
	if left < 0 {
		left = 0
	}
	if right > b.width {
		right = b.width
	}

	for y := bottom - 1; y >= top; y-- {
		row := b.GetRowByOffset(y)
		for x := right - 1; x >= left; x-- {
			if !row.cells[x].IsBlank() {
				return Coord{X: x, Y: y}
			}
		}
	}
	return Coord{}
}

// CurrentAttributes returns the pen applied to newly written cells.
func (b *ScreenBuffer) CurrentAttributes() TextAttribute {
	return b.currentAttr
}

// SetCurrentAttributes replaces the pen wholesale.
func (b *ScreenBuffer) SetCurrentAttributes(attr TextAttribute) {
	b.currentAttr = attr
}

// Cursor returns the buffer's cursor for reading and mutation.
func (b *ScreenBuffer) Cursor() *Cursor {
	return &b.cursor
}

// GetHyperlinkID returns a stable id for the (uri, params) pair, assigning
// the next free id on first sight. Ids start at 1; 0 is the "no hyperlink"
// sentinel stored in attributes.
func (b *ScreenBuffer) GetHyperlinkID(uri, params string) uint16 {
	key := uri
	if params != "" {
		key = params + ";" + uri
	}
	if id, ok := b.hyperlinkIDs[key]; ok {
		return id
	}
	id := b.nextHyperlinkID
	b.nextHyperlinkID++
	b.hyperlinkIDs[key] = id
	return id
}

// AddHyperlinkToMap records the uri a hyperlink id dereferences to.
func (b *ScreenBuffer) AddHyperlinkToMap(uri string, id uint16) {
	b.hyperlinkURIs[id] = uri
}

// HyperlinkURIByID returns the uri for an id, or "" if unknown.
func (b *ScreenBuffer) HyperlinkURIByID(id uint16) string {
	return b.hyperlinkURIs[id]
}

// RowText returns the text content of the logical row, trimming trailing
// blanks and skipping wide-character spacers.
func (b *ScreenBuffer) RowText(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	row := b.GetRowByOffset(y)

	lastVisible := -1
	for x := b.width - 1; x >= 0; x-- {
		cell := &row.cells[x]
		if !cell.IsBlank() && !cell.IsWideSpacer() {
			lastVisible = x
			break
		}
	}
	if lastVisible < 0 {
		return ""
	}

	runes := make([]rune, 0, lastVisible+1)
	for x := 0; x <= lastVisible; x++ {
		cell := &row.cells[x]
		if cell.IsWideSpacer() {
			continue
		}
		if cell.Char == 0 {
			runes = append(runes, ' ')
		} else {
			runes = append(runes, cell.Char)
		}
	}
	return string(runes)
}
