package terminal

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/image/colornames"
)

// ColorKind says how a TextColor resolves to a concrete value.
type ColorKind uint8

const (
	// ColorKindDefault resolves through the default foreground or
	// background alias in the render settings.
	ColorKindDefault ColorKind = iota
	// ColorKindIndexed resolves through the color table.
	ColorKindIndexed
	// ColorKindRGB is a literal 24-bit value.
	ColorKindRGB
)

// TextColor is a color reference stored in a TextAttribute. It stays
// symbolic until render time so that color table and alias updates take
// effect on already-written cells.
type TextColor struct {
	Kind  ColorKind
	Index int
	RGB   color.RGBA
}

// DefaultColor returns a reference to the default foreground or
// background, depending on which side of the attribute it is stored in.
func DefaultColor() TextColor {
	return TextColor{Kind: ColorKindDefault}
}

// IndexedColor returns a reference to a color table slot.
func IndexedColor(index int) TextColor {
	return TextColor{Kind: ColorKindIndexed, Index: index}
}

// RGBColor returns a literal color value.
func RGBColor(c color.RGBA) TextColor {
	return TextColor{Kind: ColorKindRGB, RGB: c}
}

// Resolve returns the concrete value for this reference under the given
// render settings. foreground selects which default alias applies for
// ColorKindDefault references.
func (tc TextColor) Resolve(rs *RenderSettings, foreground bool) color.RGBA {
	switch tc.Kind {
	case ColorKindRGB:
		return tc.RGB
	case ColorKindIndexed:
		return rs.ColorTableEntry(tc.Index)
	default:
		alias := AliasDefaultBackground
		if foreground {
			alias = AliasDefaultForeground
		}
		return rs.ColorTableEntry(rs.ColorAliasIndex(alias))
	}
}

// IsDefault returns true if the reference resolves through a default alias.
func (tc TextColor) IsDefault() bool {
	return tc.Kind == ColorKindDefault
}

// DefaultPalette is the standard 256-color palette: 16 named colors (0-15),
// 216 color cube (16-231), 24 grayscale (232-255).
var DefaultPalette = [256]color.RGBA{
	// Standard colors (0-7)
	{0, 0, 0, 255},       // Black
	{205, 49, 49, 255},   // Red
	{13, 188, 121, 255},  // Green
	{229, 229, 16, 255},  // Yellow
	{36, 114, 200, 255},  // Blue
	{188, 63, 188, 255},  // Magenta
	{17, 168, 205, 255},  // Cyan
	{229, 229, 229, 255}, // White

	// Bright colors (8-15)
	{102, 102, 102, 255}, // Bright Black
	{241, 76, 76, 255},   // Bright Red
	{35, 209, 139, 255},  // Bright Green
	{245, 245, 67, 255},  // Bright Yellow
	{59, 142, 234, 255},  // Bright Blue
	{214, 112, 214, 255}, // Bright Magenta
	{41, 184, 219, 255},  // Bright Cyan
	{255, 255, 255, 255}, // Bright White

	// 16-231 and 232-255 are generated in init below.
}

func init() {
	// Generate 216 color cube (16-231)
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = color.RGBA{
					R: uint8(r * 51),
					G: uint8(g * 51),
					B: uint8(b * 51),
					A: 255,
				}
				i++
			}
		}
	}

	// Generate grayscale (232-255)
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = color.RGBA{gray, gray, gray, 255}
	}
}

// DefaultForeground is the default text color (light gray).
var DefaultForeground = color.RGBA{229, 229, 229, 255}

// DefaultBackground is the default background color (black).
var DefaultBackground = color.RGBA{0, 0, 0, 255}

// DefaultCursorColor is the default cursor rendering color (light gray).
var DefaultCursorColor = color.RGBA{229, 229, 229, 255}

// ParseColorSpec parses an XParseColor-style color specification as used
// by OSC color updates: "rgb:RR/GG/BB" (and longer per-channel forms),
// "#RRGGBB", or an X11 color name such as "red". Returns false if the
// spec is not recognized.
func ParseColorSpec(spec string) (color.RGBA, bool) {
	if spec == "" {
		return color.RGBA{}, false
	}
	if c, ok := colornames.Map[strings.ToLower(spec)]; ok {
		return c, true
	}
	c := ansi.XParseColor(spec)
	if c == nil {
		return color.RGBA{}, false
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}, true
}
