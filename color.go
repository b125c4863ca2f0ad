package blit

import (
	"image/color"
	"math"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// NewRGBA creates a color from RGBA components.
func NewRGBA(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Mul returns the component-wise product of two colors, clamped to [0, 1].
// This is the tint operation: sampled texel color times per-object tint.
func (c RGBA) Mul(o RGBA) RGBA {
	return RGBA{
		R: Clamp01(c.R * o.R),
		G: Clamp01(c.G * o.G),
		B: Clamp01(c.B * o.B),
		A: Clamp01(c.A * o.A),
	}
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Pack packs the color into a single 32-bit word as
// (A<<24)|(R<<16)|(G<<8)|B, each channel rounded via
// round(clamp01(x)*255). This is the framebuffer pixel format of the
// software backend.
func (c RGBA) Pack() uint32 {
	return packChannel(c.A)<<24 | packChannel(c.R)<<16 | packChannel(c.G)<<8 | packChannel(c.B)
}

// Unpack is the inverse of Pack: it expands an (A<<24)|(R<<16)|(G<<8)|B
// word back into normalized float components.
func Unpack(p uint32) RGBA {
	return RGBA{
		A: float64(p>>24&0xFF) / 255,
		R: float64(p>>16&0xFF) / 255,
		G: float64(p>>8&0xFF) / 255,
		B: float64(p&0xFF) / 255,
	}
}

func packChannel(x float64) uint32 {
	return uint32(math.Round(Clamp01(x) * 255))
}

// Clamp01 clamps x to the range [0, 1].
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Predefined colors.
var (
	Transparent = RGBA{0, 0, 0, 0}
	Black       = RGBA{0, 0, 0, 1}
	White       = RGBA{1, 1, 1, 1}
	Red         = RGBA{1, 0, 0, 1}
	Green       = RGBA{0, 1, 0, 1}
	Blue        = RGBA{0, 0, 1, 1}
)
