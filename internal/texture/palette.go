package texture

import "image/color"

// Palette maps the 8 bit framebuffer to RGBA. It is laid out as 16 ramps of
// 16 shades; index hue*16+shade, shade 15 brightest.
type Palette [256]color.RGBA

// Ramp count and length.
const (
	Ramps     = 16
	RampShade = 16
)

// rampBase are the full-bright colours of each ramp. Ramp 0 is neutral grey
// and is used for ceilings and floors.
var rampBase = [Ramps]color.RGBA{
	{200, 200, 200, 255}, // grey
	{64, 64, 64, 255},    // stone
	{101, 67, 33, 255},   // wood
	{120, 120, 120, 255}, // light stone
	{34, 80, 34, 255},    // moss
	{105, 105, 105, 255}, // rock
	{128, 64, 128, 255},  // purple
	{50, 120, 50, 255},   // green
	{64, 128, 255, 255},  // blue
	{255, 255, 150, 255}, // yellow
	{80, 150, 80, 255},   // light green
	{30, 100, 200, 255},  // deep blue
	{69, 39, 19, 255},    // dark wood
	{180, 40, 40, 255},   // red
	{40, 120, 140, 255},  // teal
	{150, 150, 170, 255}, // steel
}

// Index returns the palette index of shade in ramp.
func Index(ramp, shade int) byte {
	ramp = min(max(ramp, 0), Ramps-1)
	shade = min(max(shade, 0), RampShade-1)
	return byte(ramp*RampShade + shade)
}

// NewPalette builds the ramps from dark (30%) to full brightness.
func NewPalette() *Palette {
	var p Palette
	for r, base := range rampBase {
		for s := 0; s < RampShade; s++ {
			scale := 0.3 + 0.7*float64(s)/float64(RampShade-1)
			p[r*RampShade+s] = color.RGBA{
				R: uint8(float64(base.R) * scale),
				G: uint8(float64(base.G) * scale),
				B: uint8(float64(base.B) * scale),
				A: 255,
			}
		}
	}
	return &p
}

// Expand writes the RGBA bytes for every palette index in src into dst,
// which must hold 4*len(src) bytes.
func (p *Palette) Expand(dst, src []byte) {
	for i, c := range src {
		rgba := p[c]
		o := i * 4
		dst[o] = rgba.R
		dst[o+1] = rgba.G
		dst[o+2] = rgba.B
		dst[o+3] = rgba.A
	}
}
