package vtcore

import "image/color"

// Color is either a palette index (0-255) or a truecolour value: bit 24 set
// flags truecolour, with R, G, B packed into bits 16, 8, 0 respectively
// (mirroring the source's `TRUECOLOR(r,g,b) = 1<<24 | r<<16 | g<<8 | b`).
// Palette 0-7 are system colours, 8-15 "bright", 16-231 a 6x6x6 RGB cube,
// 232-255 greyscale.
type Color uint32

const truecolorFlag Color = 1 << 24

// DefaultFg and DefaultBg are sentinel indices standing for the terminal's
// default foreground and background; a freshly reset pen uses these unless
// WithDefaultColors supplies other colours.
const (
	DefaultFg Color = 256
	DefaultBg Color = 257
)

// NewTrueColor packs r, g, b (each clamped to 0-255) into a truecolour Color.
func NewTrueColor(r, g, b int) Color {
	r = clampByte(r)
	g = clampByte(g)
	b = clampByte(b)
	return truecolorFlag | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// PaletteColor returns a Color referencing palette index idx (0-255).
func PaletteColor(idx int) Color {
	return Color(idx & 0xff)
}

// IsTrueColor reports whether c carries a packed RGB triple rather than a
// palette index.
func (c Color) IsTrueColor() bool {
	return c&truecolorFlag != 0
}

// RGB unpacks a truecolour Color's channels. Only meaningful when
// IsTrueColor is true.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Palette is the 256-entry colour table a Terminal resolves indexed Colors
// against: 16 named + a 6x6x6 cube + 24 greys, exactly the layout the
// source's VT102ID-compatible default palette uses.
type Palette [256]color.RGBA

// DefaultPalette is the standard ANSI 256-colour palette.
var DefaultPalette = Palette{
	{0, 0, 0, 255},
	{205, 49, 49, 255},
	{13, 188, 121, 255},
	{229, 229, 16, 255},
	{36, 114, 200, 255},
	{188, 63, 188, 255},
	{17, 168, 205, 255},
	{229, 229, 229, 255},

	{102, 102, 102, 255},
	{241, 76, 76, 255},
	{35, 209, 139, 255},
	{245, 245, 67, 255},
	{59, 142, 234, 255},
	{214, 112, 214, 255},
	{41, 184, 219, 255},
	{255, 255, 255, 255},
}

func init() {
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
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = color.RGBA{gray, gray, gray, 255}
	}
}

// DefaultForeground and DefaultBackground back the DefaultFg/DefaultBg
// sentinel indices when a Terminal isn't constructed with WithDefaultColors.
var (
	DefaultForeground = color.RGBA{229, 229, 229, 255}
	DefaultBackground = color.RGBA{0, 0, 0, 255}
)

// Resolve converts c to concrete RGBA using pal for palette indices, and
// fg/bg for the DefaultFg/DefaultBg sentinels.
func (pal *Palette) Resolve(c Color, fg color.RGBA, bg color.RGBA) color.RGBA {
	switch {
	case c.IsTrueColor():
		r, g, b := c.RGB()
		return color.RGBA{R: r, G: g, B: b, A: 255}
	case c == DefaultFg:
		return fg
	case c == DefaultBg:
		return bg
	case c >= 0 && c < 256:
		return pal[c]
	default:
		return fg
	}
}
