package terminal

// CursorShape determines how the cursor is drawn.
type CursorShape int

const (
	// CursorShapeLegacy is the classic partial-height box.
	CursorShapeLegacy CursorShape = iota
	// CursorShapeFullBox fills the whole cell.
	CursorShapeFullBox
	// CursorShapeUnderscore is a line at the bottom of the cell.
	CursorShapeUnderscore
	// CursorShapeVerticalBar is a line at the left of the cell.
	CursorShapeVerticalBar
)

// CursorStyle is the caller-facing style selector (DECSCUSR values). Each
// style maps deterministically to a (shape, blink-allowed) pair.
type CursorStyle int

const (
	CursorStyleUserDefault CursorStyle = iota
	CursorStyleBlinkingBlock
	CursorStyleSteadyBlock
	CursorStyleBlinkingUnderline
	CursorStyleSteadyUnderline
	CursorStyleBlinkingBar
	CursorStyleSteadyBar
)

// Cursor tracks the buffer-absolute position and presentation state.
// Callers always see viewport-relative coordinates; the translation
// happens at the engine's API boundary.
//
// Visible and IsOn are independent: blinking toggles IsOn while Visible
// says whether the user may see the cursor at all.
type Cursor struct {
	Position        Coord
	Visible         bool
	BlinkingAllowed bool
	IsOn            bool
	Shape           CursorShape
}

// NewCursor creates a visible legacy-shaped cursor at the origin.
func NewCursor() Cursor {
	return Cursor{
		Visible:         true,
		BlinkingAllowed: true,
		IsOn:            true,
		Shape:           CursorShapeLegacy,
	}
}
