package export

import "fmt"

// 16:9 widescreen deck, 13.33in x 7.5in
const (
	emuPerInch = 914400
	emuPerPt   = 12700

	deckWidthIn  = 13.33
	deckHeightIn = 7.5

	deckSlideWidth  = int64(deckWidthIn * emuPerInch)
	deckSlideHeight = int64(deckHeightIn * emuPerInch)

	lineWidthEMU = 1 * emuPerPt

	deckFontFamily = "Inter"
	deckSlideCount = 8
)

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as "RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ARGB returns the fully opaque "FFRRGGBB" form GoPPT expects.
func (c Color) ARGB() string {
	return "FF" + c.Hex()
}

// Palette
var (
	BgLight    = RGB(0xFA, 0xFA, 0xF8)
	BgDark     = RGB(0x1A, 0x19, 0x15)
	Accent     = RGB(0xD9, 0x77, 0x57)
	TextDark   = RGB(0x1A, 0x19, 0x15)
	TextLight  = RGB(0xFA, 0xFA, 0xF8)
	Muted      = RGB(0x8A, 0x89, 0x85)
	Border     = RGB(0xE5, 0xE4, 0xE0)
	Panel      = RGB(0xF0, 0xEF, 0xEB)
	DarkPanel  = RGB(0x25, 0x24, 0x20)
	DarkBorder = RGB(0x35, 0x34, 0x30)
	White      = RGB(0xFF, 0xFF, 0xFF)

	// tints used by single slides
	warmBlob    = RGB(0xF5, 0xE8, 0xE0)
	coolBlob    = RGB(0xE8, 0xF0, 0xED)
	aiBubble    = RGB(0xFD, 0xF0, 0xEB)
	darkMuted   = RGB(0x60, 0x5F, 0x5A)
	darkSidebar = RGB(0x20, 0x1F, 0x1B)
	darkAIBlob  = RGB(0x2D, 0x1F, 0x15)
	darkPageNum = RGB(0x40, 0x3F, 0x3B)
	doneGreen   = RGB(0x22, 0x88, 0x55)
)

// PaletteEntry names a palette color for the inventory export.
type PaletteEntry struct {
	Name  string
	Color Color
}

// Palette lists the named colors in declaration order.
func Palette() []PaletteEntry {
	return []PaletteEntry{
		{"BG_LIGHT", BgLight},
		{"BG_DARK", BgDark},
		{"ACCENT", Accent},
		{"TEXT_DARK", TextDark},
		{"TEXT_LIGHT", TextLight},
		{"MUTED", Muted},
		{"BORDER", Border},
		{"PANEL", Panel},
		{"DARK_PANEL", DarkPanel},
		{"DARK_BORDER", DarkBorder},
		{"WHITE", White},
	}
}

// Inches converts inches to EMU, truncating like python-pptx's Inches().
func Inches(v float64) int64 {
	return int64(v * emuPerInch)
}

// EMUToInches is the inverse of Inches, for reports.
func EMUToInches(v int64) float64 {
	return float64(v) / emuPerInch
}
