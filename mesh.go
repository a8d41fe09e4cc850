package canopy

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// mesh accumulates untextured triangles in screen space. Vertex colors are
// premultiplied and sample the centre of the white pixel.
type mesh struct {
	verts []ebiten.Vertex
	inds  []uint16
}

func (m *mesh) reset() {
	m.verts = m.verts[:0]
	m.inds = m.inds[:0]
}

func (m *mesh) empty() bool {
	return len(m.inds) == 0
}

func vertexAt(p Vec2, c Color) ebiten.Vertex {
	a := float32(c.A)
	return ebiten.Vertex{
		DstX:   float32(p.X),
		DstY:   float32(p.Y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(c.R) * a,
		ColorG: float32(c.G) * a,
		ColorB: float32(c.B) * a,
		ColorA: a,
	}
}

// appendFan appends a fan triangulation of the convex polygon points.
// Vertex 0 is the hub. Fewer than three points add nothing.
func (m *mesh) appendFan(points []Vec2, c Color) {
	n := len(points)
	if n < 3 {
		return
	}
	base := uint16(len(m.verts))
	for _, p := range points {
		m.verts = append(m.verts, vertexAt(p, c))
	}
	for i := 0; i < n-2; i++ {
		m.inds = append(m.inds, base, base+uint16(i+1), base+uint16(i+2))
	}
}

// appendSegment appends a quad of the given width centred on the segment a-b.
func (m *mesh) appendSegment(a, b Vec2, width float64, c Color) {
	nx, ny := perpendicular(a, b)
	h := width / 2
	off := Vec2{nx * h, ny * h}
	base := uint16(len(m.verts))
	m.verts = append(m.verts,
		vertexAt(a.Add(off), c),
		vertexAt(b.Add(off), c),
		vertexAt(b.Sub(off), c),
		vertexAt(a.Sub(off), c),
	)
	m.inds = append(m.inds, base, base+1, base+2, base, base+2, base+3)
}

// appendLoop appends the closed outline through points.
func (m *mesh) appendLoop(points []Vec2, width float64, c Color) {
	n := len(points)
	if n < 2 {
		return
	}
	for i := range points {
		m.appendSegment(points[i], points[(i+1)%n], width, c)
	}
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}

// transformPoints maps points through m into a new slice.
func transformPoints(points []Vec2, m Transform) []Vec2 {
	out := make([]Vec2, len(points))
	for i, p := range points {
		out[i] = m.Apply(p)
	}
	return out
}

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}
