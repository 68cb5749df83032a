package terminal

import "errors"

// EraseMode selects the region an erase operation clears.
type EraseMode int

const (
	// EraseFromBeginning clears from the edge through the cursor.
	EraseFromBeginning EraseMode = iota
	// EraseToEnd clears from the cursor through the edge.
	EraseToEnd
	// EraseAll clears the whole line or the visible screen.
	EraseAll
	// EraseScrollback clears everything above the visible screen.
	EraseScrollback
)

// ErrInvalidEraseMode is returned when an erase operation receives a mode
// it does not support. Nothing is mutated in that case.
var ErrInvalidEraseMode = errors.New("terminal: unsupported erase mode")

// SetCursorPosition moves the cursor to (x, y) relative to the mutable
// viewport's origin. Out-of-range inputs are clamped to the viewport, not
// rejected. Only the cursor moves; the viewport stays put.
func (t *Terminal) SetCursorPosition(x, y int) {
	viewport := t.mutableViewport
	origin := viewport.Origin()
	newPos := Coord{X: origin.X + x, Y: origin.Y + y}
	newPos = viewport.Clamp(newPos)
	t.buffer.Cursor().Position = newPos
	t.pendingWrap = false
}

// GetCursorPosition returns the cursor position relative to the mutable
// viewport's origin, clamped to the viewport's dimensions.
func (t *Terminal) GetCursorPosition() (x, y int) {
	absolute := t.buffer.Cursor().Position
	viewport := t.mutableViewport
	relative := viewport.ToOrigin(absolute)
	relative = ViewportFromDimensions(Coord{}, viewport.Width(), viewport.Height()).Clamp(relative)
	return relative.X, relative.Y
}

// CursorLineFeed moves the cursor down one line, and to the leftmost
// column when withReturn is set. Since this is an explicit line break,
// the forced-wrap flag on the departed row is cleared.
func (t *Terminal) CursorLineFeed(withReturn bool) {
	pos := t.buffer.Cursor().Position
	t.buffer.GetRowByOffset(pos.Y).SetWrapForced(false)
	pos.Y++
	if withReturn {
		pos.X = 0
	}
	t.adjustCursorPosition(pos)
}

// DeleteCharacter deletes count characters starting at the cursor,
// shifting the remainder of the line left to replace them. With the
// buffer [abc|def], DeleteCharacter(1) yields [abc|ef]: the shifted cells
// keep their previous attributes. The vacated cells at the end of the
// line are left holding whatever shifted in from the right; callers blank
// the tail separately when they want it cleared.
func (t *Terminal) DeleteCharacter(count int) {
	if count <= 0 {
		return
	}
	cursorPos := t.buffer.Cursor().Position
	copyFromPos := Coord{X: cursorPos.X + count, Y: cursorPos.Y}
	width := t.mutableViewport.RightExclusive() - copyFromPos.X
	if width <= 0 {
		return
	}

	source := ViewportFromDimensions(copyFromPos, width, 1)
	target := ViewportFromDimensions(cursorPos, width, 1)
	t.copyRun(source, target)
}

// InsertCharacter inserts count blank cells at the cursor, shifting the
// existing text right. With the buffer [abc|def], InsertCharacter(1)
// yields [abc| def]: the shifted cells keep their previous attributes
// while the inserted blanks carry the current attributes. Cells shifted
// past the viewport's right edge are dropped.
func (t *Terminal) InsertCharacter(count int) {
	if count <= 0 {
		return
	}
	cursorPos := t.buffer.Cursor().Position
	right := t.mutableViewport.RightExclusive()

	width := right - cursorPos.X - count
	if width > 0 {
		source := ViewportFromDimensions(cursorPos, width, 1)
		target := ViewportFromDimensions(Coord{X: cursorPos.X + count, Y: cursorPos.Y}, width, 1)
		t.copyRun(source, target)
	}

	fill := count
	if cursorPos.X+fill > right {
		fill = right - cursorPos.X
	}
	t.buffer.FillCells(cursorPos, ' ', t.buffer.CurrentAttributes(), fill)
}

// copyRun copies the source rectangle's cells onto the target rectangle,
// walking in the direction that keeps overlapping ranges safe. Both
// insert and delete reduce to this one primitive.
func (t *Terminal) copyRun(source, target Viewport) {
	if !source.IsValid() || !target.IsValid() {
		return
	}
	dir := DetermineWalkDirection(source, target)
	srcPos := source.WalkOrigin(dir)
	dstPos := target.WalkOrigin(dir)

	for {
		if cell := t.buffer.CellAt(srcPos); cell != nil {
			data := *cell
			t.buffer.Write(dstPos, []Cell{data}, false)
		}
		var srcOK, dstOK bool
		srcPos, srcOK = source.WalkInBounds(srcPos, dir)
		dstPos, dstOK = target.WalkInBounds(dstPos, dir)
		if !srcOK || !dstOK {
			return
		}
	}
}

// EraseCharacters fills at most numChars cells from the cursor with
// blanks carrying the current attributes, stopping at the viewport's
// right edge. Never wraps to the next line.
func (t *Terminal) EraseCharacters(numChars int) {
	cursorPos := t.buffer.Cursor().Position
	distanceToRight := t.mutableViewport.RightExclusive() - cursorPos.X
	fillLimit := numChars
	if fillLimit > distanceToRight {
		fillLimit = distanceToRight
	}
	if fillLimit <= 0 {
		return
	}
	t.buffer.FillCells(cursorPos, ' ', t.buffer.CurrentAttributes(), fillLimit)
}

// EraseInLine erases a region of the cursor's line: from the beginning
// through the cursor, from the cursor to the end, or the whole line
// within viewport bounds. The fill carries the current attributes and
// never marks the row as wrapped. An unrecognized mode returns
// ErrInvalidEraseMode without mutating.
func (t *Terminal) EraseInLine(mode EraseMode) error {
	cursorPos := t.buffer.Cursor().Position
	viewport := t.mutableViewport
	startPos := Coord{Y: cursorPos.Y}
	length := 0

	switch mode {
	case EraseFromBeginning:
		startPos.X = viewport.Left()
		length = cursorPos.X - viewport.Left() + 1
	case EraseToEnd:
		startPos.X = cursorPos.X
		length = viewport.RightExclusive() - startPos.X
	case EraseAll:
		startPos.X = viewport.Left()
		length = viewport.RightExclusive() - startPos.X
	default:
		return ErrInvalidEraseMode
	}

	t.buffer.FillCells(startPos, ' ', t.buffer.CurrentAttributes(), length)
	return nil
}

// EraseInDisplay erases either all text visible to the user or all the
// text in the scrollback. An unrecognized mode returns
// ErrInvalidEraseMode without mutating.
//
// Neither mode clears visible memory directly. EraseAll relocates the
// viewport below the last written row, pushing the old screen contents
// into scrollback and rotating the circular buffer when the window would
// run past the end of the arena. EraseScrollback rotates the visible
// rows up to the top of the buffer and blanks the stale rows the rotation
// left behind below them.
//
// Relocation completes, including any rotation, before the scroll
// notification fires and before the cursor is restored at its previous
// viewport-relative position.
func (t *Terminal) EraseInDisplay(mode EraseMode) error {
	if mode != EraseAll && mode != EraseScrollback {
		return ErrInvalidEraseMode
	}

	// Store the relative cursor position so it can be restored after the
	// viewport moves.
	cursorPos := t.buffer.Cursor().Position
	relativeCursor := t.mutableViewport.ToOrigin(cursorPos)

	newLeft := t.mutableViewport.Left()
	newRight := t.mutableViewport.RightExclusive()
	newTop := 0
	newBottom := 0

	if mode == EraseAll {
		// Move the viewport down past the written content, pushing the
		// old screen into scrollback.
		lastChar := t.buffer.GetLastNonBlankCharacter(t.mutableViewport)
		if lastChar.X == 0 && lastChar.Y == 0 {
			// Nothing to clear, just return
			return nil
		}

		newTop = lastChar.Y + 1

		// Rotate the circular buffer once per row the new window would
		// hang past the end of the arena.
		delta := (newTop + t.mutableViewport.Height()) - t.buffer.Height()
		for i := 0; i < delta; i++ {
			t.buffer.IncrementCircularBuffer()
			newTop--
		}

		newBottom = newTop + t.mutableViewport.Height()
	} else {
		// Rotate the visible rows up to the top of the buffer.
		scrollFromPos := t.mutableViewport.FromOrigin(Coord{})
		t.buffer.ScrollRows(scrollFromPos.Y, t.mutableViewport.Height(), -scrollFromPos.Y)

		// The rotation only moved rows, so the old scrollback content is
		// now duplicated below the visible region and has to be blanked.
		// The scan must cover the whole buffer down to the old viewport's
		// bottom: a blank visible screen still leaves scrollback text
		// between the relocated rows and the old viewport top.
		eraseStart := t.mutableViewport.Height()
		scanRegion := ViewportFromExclusive(0, 0, t.buffer.Width(), t.mutableViewport.BottomExclusive())
		eraseEnd := t.buffer.GetLastNonBlankCharacter(scanRegion).Y
		for i := eraseStart; i <= eraseEnd; i++ {
			t.buffer.GetRowByOffset(i).Reset(t.buffer.CurrentAttributes())
		}

		// There is nothing left for the user to scroll to.
		t.scrollOffset = 0

		newTop = 0
		newBottom = t.mutableViewport.Height()
	}

	t.mutableViewport = ViewportFromExclusive(newLeft, newTop, newRight, newBottom)
	t.notifyScroll()
	t.SetCursorPosition(relativeCursor.X, relativeCursor.Y)

	return nil
}

// adjustCursorPosition places the cursor at pos, sliding the viewport
// down (and rotating the circular buffer when it reaches the end of the
// arena) if pos lies below the viewport's bottom edge.
func (t *Terminal) adjustCursorPosition(pos Coord) {
	t.pendingWrap = false

	if pos.X < 0 {
		pos.X = 0
	}
	if pos.X >= t.buffer.Width() {
		pos.X = t.buffer.Width() - 1
	}

	if pos.Y >= t.mutableViewport.BottomExclusive() {
		delta := pos.Y - (t.mutableViewport.BottomExclusive() - 1)
		newTop := t.mutableViewport.Top() + delta
		newBottom := t.mutableViewport.BottomExclusive() + delta

		overhang := newBottom - t.buffer.Height()
		for i := 0; i < overhang; i++ {
			t.buffer.IncrementCircularBuffer()
			newTop--
			newBottom--
			pos.Y--
		}

		t.mutableViewport = ViewportFromExclusive(
			t.mutableViewport.Left(), newTop,
			t.mutableViewport.RightExclusive(), newBottom,
		)
		t.notifyScroll()
	}

	if pos.Y < 0 {
		pos.Y = 0
	}
	if pos.Y >= t.buffer.Height() {
		pos.Y = t.buffer.Height() - 1
	}

	t.buffer.Cursor().Position = pos
}
