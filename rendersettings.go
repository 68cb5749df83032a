package terminal

import "image/color"

// Color table layout: 256 palette slots plus named slots for the default
// foreground, default background, and cursor colors. The named slots let
// aliases point at a dedicated value without shadowing a palette entry.
const (
	NamedColorForeground = 256
	NamedColorBackground = 257
	NamedColorCursor     = 258
	ColorTableSize       = 259
)

// ColorAlias names a semantic color resolved through the table.
type ColorAlias int

const (
	AliasDefaultForeground ColorAlias = iota
	AliasDefaultBackground
	colorAliasCount
)

// RenderMode is a bitmask of global rendering behavior flags.
type RenderMode uint8

const (
	// RenderModeBlinkAllowed permits blinking text to actually blink.
	RenderModeBlinkAllowed RenderMode = 1 << iota
	// RenderModeScreenReversed swaps foreground and background everywhere.
	RenderModeScreenReversed
	// RenderModeIntenseIsBright renders bold text with the bright palette.
	RenderModeIntenseIsBright
)

// RenderSettings holds the indexed color table, the alias indices that
// point semantic colors at table slots, and the render-mode flags.
type RenderSettings struct {
	table   [ColorTableSize]color.RGBA
	aliases [colorAliasCount]int
	modes   RenderMode
}

// NewRenderSettings creates settings with the standard palette, default
// named slot values, and aliases pointing at the named slots.
func NewRenderSettings() *RenderSettings {
	rs := &RenderSettings{
		modes: RenderModeBlinkAllowed | RenderModeIntenseIsBright,
	}
	copy(rs.table[:256], DefaultPalette[:])
	rs.table[NamedColorForeground] = DefaultForeground
	rs.table[NamedColorBackground] = DefaultBackground
	rs.table[NamedColorCursor] = DefaultCursorColor
	rs.aliases[AliasDefaultForeground] = NamedColorForeground
	rs.aliases[AliasDefaultBackground] = NamedColorBackground
	return rs
}

// ColorTableEntry returns the value at the given table index. Out-of-range
// indices return the zero value.
func (rs *RenderSettings) ColorTableEntry(index int) color.RGBA {
	if index < 0 || index >= ColorTableSize {
		return color.RGBA{}
	}
	return rs.table[index]
}

// SetColorTableEntry updates the value at the given table index.
// Out-of-range indices are ignored.
func (rs *RenderSettings) SetColorTableEntry(index int, c color.RGBA) {
	if index < 0 || index >= ColorTableSize {
		return
	}
	rs.table[index] = c
}

// ColorAliasIndex returns the table index the alias currently points at.
func (rs *RenderSettings) ColorAliasIndex(alias ColorAlias) int {
	if alias < 0 || alias >= colorAliasCount {
		return 0
	}
	return rs.aliases[alias]
}

// SetColorAliasIndex repoints the alias at a different table slot.
func (rs *RenderSettings) SetColorAliasIndex(alias ColorAlias, index int) {
	if alias < 0 || alias >= colorAliasCount || index < 0 || index >= ColorTableSize {
		return
	}
	rs.aliases[alias] = index
}

// SetRenderMode enables or disables a render-mode flag.
func (rs *RenderSettings) SetRenderMode(mode RenderMode, enabled bool) {
	if enabled {
		rs.modes |= mode
	} else {
		rs.modes &^= mode
	}
}

// HasRenderMode returns true if the given render-mode flag is enabled.
func (rs *RenderSettings) HasRenderMode(mode RenderMode) bool {
	return rs.modes&mode != 0
}
