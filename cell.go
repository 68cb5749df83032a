package terminal

// CellFlags is a bitmask of per-cell layout flags. Rendering attributes
// (bold, underline, colors) live in the cell's TextAttribute instead.
type CellFlags uint8

const (
	// CellFlagWideChar marks the first column of a 2-column character.
	CellFlagWideChar CellFlags = 1 << iota
	// CellFlagWideCharSpacer marks the second column of a wide character.
	CellFlagWideCharSpacer
)

// Cell stores the character and attributes for one grid position.
// Wide characters (2 columns) use a spacer cell in the second position.
type Cell struct {
	Char  rune
	Attr  TextAttribute
	Flags CellFlags
}

// BlankCell creates a space cell carrying the given attributes. Erase
// fills use the buffer's current attributes here.
func BlankCell(attr TextAttribute) Cell {
	return Cell{Char: ' ', Attr: attr}
}

// Reset sets the cell to a blank with the given attributes.
func (c *Cell) Reset(attr TextAttribute) {
	c.Char = ' '
	c.Attr = attr
	c.Flags = 0
}

// HasFlag returns true if the specified flag is set.
func (c *Cell) HasFlag(flag CellFlags) bool {
	return c.Flags&flag != 0
}

// IsWide returns true if this cell starts a character that occupies 2 columns.
func (c *Cell) IsWide() bool {
	return c.HasFlag(CellFlagWideChar)
}

// IsWideSpacer returns true if this is the second cell of a wide character
// (skipped when reading text back out).
func (c *Cell) IsWideSpacer() bool {
	return c.HasFlag(CellFlagWideCharSpacer)
}

// IsBlank returns true if the cell holds no visible character.
func (c *Cell) IsBlank() bool {
	return c.Char == ' ' || c.Char == 0
}
