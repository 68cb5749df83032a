package terminal

// PrintString writes text at the cursor using the current attributes and
// advances the cursor. Wide runes occupy two columns with a spacer cell
// in the second. When a rune does not fit before the viewport's right
// edge the row is marked as forced-wrapped and writing continues on the
// next line, scrolling the viewport if needed. Carriage return and line
// feed are honored; other control runes are dropped.
func (t *Terminal) PrintString(s string) {
	for _, r := range s {
		switch r {
		case '\n':
			t.CursorLineFeed(false)
		case '\r':
			cursor := t.buffer.Cursor()
			cursor.Position.X = t.mutableViewport.Left()
			t.pendingWrap = false
		default:
			if r < ' ' {
				continue
			}
			t.printRune(r)
		}
	}
}

func (t *Terminal) printRune(r rune) {
	width := runeWidth(r)
	if width == 0 {
		// Combining marks would attach to the previous cell; dropped here.
		return
	}

	pos := t.buffer.Cursor().Position
	right := t.mutableViewport.RightExclusive()

	// Wrap is deferred: filling the final column leaves the cursor on it
	// until the next rune actually arrives.
	if t.pendingWrap || pos.X+width > right {
		t.buffer.GetRowByOffset(pos.Y).SetWrapForced(true)
		t.adjustCursorPosition(Coord{X: t.mutableViewport.Left(), Y: pos.Y + 1})
		pos = t.buffer.Cursor().Position
		right = t.mutableViewport.RightExclusive()
	}

	attr := t.buffer.CurrentAttributes()
	cell := Cell{Char: r, Attr: attr}
	if width == 2 {
		cell.Flags = CellFlagWideChar
	}
	t.buffer.Write(pos, []Cell{cell}, true)

	if width == 2 {
		spacer := BlankCell(attr)
		spacer.Flags = CellFlagWideCharSpacer
		t.buffer.Write(Coord{X: pos.X + 1, Y: pos.Y}, []Cell{spacer}, true)
	}

	next := pos.X + width
	if next >= right {
		pos.X = right - 1
		t.pendingWrap = true
	} else {
		pos.X = next
	}
	t.buffer.Cursor().Position = pos
}
