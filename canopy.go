package canopy

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a target submits the draw.
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	ColorBlack       = Color{0, 0, 0, 1}
	ColorWhite       = Color{1, 1, 1, 1}
	ColorRed         = Color{1, 0, 0, 1}
	ColorGreen       = Color{0, 1, 0, 1}
	ColorBlue        = Color{0, 0, 1, 1}
	ColorYellow      = Color{1, 1, 0, 1}
	ColorMagenta     = Color{1, 0, 1, 1}
	ColorCyan        = Color{0, 1, 1, 1}
	ColorTransparent = Color{}
)

// RGB8 builds an opaque Color from 8-bit channel values.
func RGB8(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// RGBA implements color.Color, returning premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.toNRGBA().RGBA()
}

// toNRGBA converts to an 8-bit straight-alpha color, clamping each channel.
func (c Color) toNRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// Lerp returns the component-wise interpolation (1-r)*c + r*to.
func (c Color) Lerp(to Color, r float64) Color {
	return Color{
		R: (1-r)*c.R + r*to.R,
		G: (1-r)*c.G + r*to.G,
		B: (1-r)*c.B + r*to.B,
		A: (1-r)*c.A + r*to.A,
	}
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

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Div returns v divided by s.
func (v Vec2) Div(s float64) Vec2 { return Vec2{v.X / s, v.Y / s} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Lerp returns (1-r)*v + r*to.
func (v Vec2) Lerp(to Vec2, r float64) Vec2 {
	return Vec2{(1-r)*v.X + r*to.X, (1-r)*v.Y + r*to.Y}
}

// Box is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Box struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Box) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Union returns the smallest rectangle containing both r and o.
// A zero-size r is treated as empty.
func (r Box) Union(o Box) Box {
	if r.Width == 0 && r.Height == 0 {
		return o
	}
	minX := math.Min(r.X, o.X)
	minY := math.Min(r.Y, o.Y)
	maxX := math.Max(r.X+r.Width, o.X+o.Width)
	maxY := math.Max(r.Y+r.Height, o.Y+o.Height)
	return Box{minX, minY, maxX - minX, maxY - minY}
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                       // additive / lighter
	BlendMultiply                  // multiply (source * destination; only darkens)
	BlendScreen                    // screen (1 - (1-src)*(1-dst); only brightens)
	BlendErase                     // destination-out (punch transparent holes)
	BlendNone                      // opaque copy (skip blending)
)

// String returns the lowercase name of the blend mode.
func (b BlendMode) String() string {
	switch b {
	case BlendNormal:
		return "normal"
	case BlendAdd:
		return "add"
	case BlendMultiply:
		return "multiply"
	case BlendScreen:
		return "screen"
	case BlendErase:
		return "erase"
	case BlendNone:
		return "none"
	default:
		return "unknown"
	}
}

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendNormal:
		return ebiten.BlendSourceOver
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendErase:
		return ebiten.BlendDestinationOut
	case BlendNone:
		return ebiten.BlendCopy
	default:
		return ebiten.BlendSourceOver
	}
}

// TextFlags is a bitmask of text style flags.
// Values can be combined with bitwise OR (e.g. TextBold | TextItalic).
type TextFlags uint8

const (
	TextRegular       TextFlags = 0
	TextBold          TextFlags = 1 << (iota - 1) // synthesized by over-drawing with a small offset
	TextItalic                                    // synthesized with a horizontal skew
	TextUnderlined                                // line below the baseline
	TextStrikeThrough                             // line through the x-height
)

// Has reports whether all bits of f are set.
func (t TextFlags) Has(f TextFlags) bool {
	return t&f == f
}
