package terminal

// AttrFlags is a bitmask of text rendering attributes (SGR styles).
type AttrFlags uint16

const (
	AttrBold AttrFlags = 1 << iota
	AttrFaint
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrHidden
	AttrStrike
)

// TextAttribute is the pen state applied to newly written cells: colors,
// style flags, and the current hyperlink id (0 means no hyperlink).
//
// The engine treats attributes as values: it reads the buffer's current
// attributes, modifies the copy, and writes it back wholesale.
type TextAttribute struct {
	Foreground  TextColor
	Background  TextColor
	Flags       AttrFlags
	HyperlinkID uint16
}

// DefaultTextAttribute returns the pen used before any SGR state is set:
// default foreground on default background, no styles, no hyperlink.
func DefaultTextAttribute() TextAttribute {
	return TextAttribute{
		Foreground: DefaultColor(),
		Background: DefaultColor(),
	}
}

// HasFlag returns true if the specified style flag is set.
func (a TextAttribute) HasFlag(flag AttrFlags) bool {
	return a.Flags&flag != 0
}

// AttrSelector is a bitmask naming which attribute fields a saved stack
// entry preserves. The zero selector means "all fields".
type AttrSelector uint16

const (
	SelectBold AttrSelector = 1 << iota
	SelectFaint
	SelectItalic
	SelectUnderline
	SelectBlink
	SelectReverse
	SelectHidden
	SelectStrike
	SelectForeground
	SelectBackground
)

// SelectAll is the empty selector: every field is saved and restored.
const SelectAll AttrSelector = 0

var selectorFlags = [...]struct {
	sel  AttrSelector
	flag AttrFlags
}{
	{SelectBold, AttrBold},
	{SelectFaint, AttrFaint},
	{SelectItalic, AttrItalic},
	{SelectUnderline, AttrUnderline},
	{SelectBlink, AttrBlink},
	{SelectReverse, AttrReverse},
	{SelectHidden, AttrHidden},
	{SelectStrike, AttrStrike},
}

// apply merges the selected fields of saved onto base. Fields outside the
// selector keep base's values. The zero selector restores saved wholesale.
func (sel AttrSelector) apply(saved, base TextAttribute) TextAttribute {
	if sel == SelectAll {
		return saved
	}
	out := base
	for _, sf := range selectorFlags {
		if sel&sf.sel != 0 {
			out.Flags = out.Flags&^sf.flag | saved.Flags&sf.flag
		}
	}
	if sel&SelectForeground != 0 {
		out.Foreground = saved.Foreground
	}
	if sel&SelectBackground != 0 {
		out.Background = saved.Background
	}
	return out
}
