package holga

import (
	"errors"
	"image/color"
)

var (
	// ErrInvalidArgument is returned (wrapped) when an operation receives a
	// value it cannot work with: an inverted rect, a missing render callback,
	// a non-positive cell size.
	ErrInvalidArgument = errors.New("holga: invalid argument")

	// ErrIndexOutOfRange is returned (wrapped) by Pool.Get for an index outside
	// [0, Len()).
	ErrIndexOutOfRange = errors.New("holga: index out of range")
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a host converts it for drawing.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// RGB builds an opaque Color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// toRGBA converts c to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: to8(c.R * c.A),
		G: to8(c.G * c.A),
		B: to8(c.B * c.A),
		A: to8(c.A),
	}
}

// rgb8 returns the straight (non-premultiplied) 8-bit channels.
func (c Color) rgb8() (r, g, b uint8) {
	return to8(c.R), to8(c.G), to8(c.B)
}

// to8 maps [0, 1] to [0, 255], rounding to nearest.
func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
