package terminal

// Coord identifies a single buffer position. X is the column, Y is the row.
type Coord struct {
	X int
	Y int
}

// Viewport is a rectangle over the buffer's coordinate space. Left and Top
// are inclusive, the right and bottom edges are exclusive. Viewports are
// plain values: callers snapshot one and every derived coordinate stays
// consistent with that snapshot.
type Viewport struct {
	left   int
	top    int
	right  int
	bottom int
}

// ViewportFromDimensions creates a viewport from an origin and a size.
func ViewportFromDimensions(origin Coord, width, height int) Viewport {
	return Viewport{
		left:   origin.X,
		top:    origin.Y,
		right:  origin.X + width,
		bottom: origin.Y + height,
	}
}

// ViewportFromExclusive creates a viewport from edge coordinates, where
// right and bottom are exclusive.
func ViewportFromExclusive(left, top, right, bottom int) Viewport {
	return Viewport{left: left, top: top, right: right, bottom: bottom}
}

// Left returns the leftmost column (inclusive).
func (v Viewport) Left() int { return v.left }

// Top returns the topmost row (inclusive).
func (v Viewport) Top() int { return v.top }

// RightExclusive returns the column just past the right edge.
func (v Viewport) RightExclusive() int { return v.right }

// BottomExclusive returns the row just past the bottom edge.
func (v Viewport) BottomExclusive() int { return v.bottom }

// Width returns the number of columns covered.
func (v Viewport) Width() int { return v.right - v.left }

// Height returns the number of rows covered.
func (v Viewport) Height() int { return v.bottom - v.top }

// Origin returns the top-left corner.
func (v Viewport) Origin() Coord { return Coord{X: v.left, Y: v.top} }

// IsValid returns true if the viewport covers at least one cell.
func (v Viewport) IsValid() bool {
	return v.right > v.left && v.bottom > v.top
}

// Contains returns true if pos lies inside the viewport.
func (v Viewport) Contains(pos Coord) bool {
	return pos.X >= v.left && pos.X < v.right && pos.Y >= v.top && pos.Y < v.bottom
}

// Clamp returns pos forced inside the viewport's bounds.
func (v Viewport) Clamp(pos Coord) Coord {
	if pos.X < v.left {
		pos.X = v.left
	}
	if pos.X >= v.right {
		pos.X = v.right - 1
	}
	if pos.Y < v.top {
		pos.Y = v.top
	}
	if pos.Y >= v.bottom {
		pos.Y = v.bottom - 1
	}
	return pos
}

// ToOrigin converts a buffer-absolute coordinate to one relative to the
// viewport's origin.
func (v Viewport) ToOrigin(pos Coord) Coord {
	return Coord{X: pos.X - v.left, Y: pos.Y - v.top}
}

// FromOrigin converts a viewport-relative coordinate to a buffer-absolute
// one.
func (v Viewport) FromOrigin(pos Coord) Coord {
	return Coord{X: pos.X + v.left, Y: pos.Y + v.top}
}

// WalkDirection selects the iteration order used when copying one
// rectangle of cells onto another.
type WalkDirection int

const (
	// WalkTopLeft iterates left-to-right, top-to-bottom.
	WalkTopLeft WalkDirection = iota
	// WalkBottomRight iterates right-to-left, bottom-to-top.
	WalkBottomRight
)

// DetermineWalkDirection picks the iteration order that never overwrites a
// source cell before it has been read when source and target overlap. If
// the target starts after the source in reading order, the copy must run
// backwards from the bottom-right corner.
func DetermineWalkDirection(source, target Viewport) WalkDirection {
	if target.top > source.top || (target.top == source.top && target.left > source.left) {
		return WalkBottomRight
	}
	return WalkTopLeft
}

// WalkOrigin returns the first position visited when walking the viewport
// in the given direction.
func (v Viewport) WalkOrigin(dir WalkDirection) Coord {
	if dir == WalkBottomRight {
		return Coord{X: v.right - 1, Y: v.bottom - 1}
	}
	return Coord{X: v.left, Y: v.top}
}

// WalkInBounds advances pos one step in the walk order and reports whether
// the result is still inside the viewport. The column moves first; the row
// changes when the walk passes an edge.
func (v Viewport) WalkInBounds(pos Coord, dir WalkDirection) (Coord, bool) {
	if dir == WalkBottomRight {
		pos.X--
		if pos.X < v.left {
			pos.X = v.right - 1
			pos.Y--
		}
		return pos, pos.Y >= v.top
	}
	pos.X++
	if pos.X >= v.right {
		pos.X = v.left
		pos.Y++
	}
	return pos, pos.Y < v.bottom
}
