package canopy

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Texture is a decoded image shared by any number of regions. The GPU copy
// used by Screen is created on first use.
type Texture struct {
	img  image.Image
	ebit *ebiten.Image
}

// NewTexture wraps an already decoded image.
func NewTexture(img image.Image) *Texture {
	return &Texture{img: img}
}

// NewTextureFromEbiten wraps an ebiten image. Image() reads pixels back from
// the GPU, so such textures are best kept to the Screen target.
func NewTextureFromEbiten(img *ebiten.Image) *Texture {
	return &Texture{img: img, ebit: img}
}

// LoadTexture reads and decodes an image file. PNG, JPEG, BMP and WebP are
// supported.
func LoadTexture(path string) (*Texture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("canopy: failed to read texture: %w", err)
	}
	tex, err := DecodeTexture(data)
	if err != nil {
		return nil, err
	}
	b := tex.img.Bounds()
	Logger().Debug("texture loaded", "path", path, "width", b.Dx(), "height", b.Dy())
	return tex, nil
}

// DecodeTexture decodes image bytes in any registered format.
func DecodeTexture(data []byte) (*Texture, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("canopy: failed to decode texture: %w", err)
	}
	return NewTexture(img), nil
}

// Image returns the CPU-side image.
func (t *Texture) Image() image.Image {
	return t.img
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (w, h int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Ebiten returns the GPU-side image, uploading it on first call.
func (t *Texture) Ebiten() *ebiten.Image {
	if t.ebit == nil {
		t.ebit = ebiten.NewImageFromImage(t.img)
	}
	return t.ebit
}

// Region returns a region covering the whole texture.
func (t *Texture) Region() TextureRegion {
	w, h := t.Size()
	return TextureRegion{
		Texture:   t,
		Width:     w,
		Height:    h,
		OriginalW: w,
		OriginalH: h,
	}
}

// SubRegion returns the region at (x, y) of size w by h.
func (t *Texture) SubRegion(x, y, w, h int) TextureRegion {
	return TextureRegion{
		Texture:   t,
		X:         x,
		Y:         y,
		Width:     w,
		Height:    h,
		OriginalW: w,
		OriginalH: h,
	}
}

// TextureRegion describes a sub-rectangle within a texture.
type TextureRegion struct {
	Texture   *Texture
	X, Y      int  // top-left corner of the sub-image rect within the texture
	Width     int  // displayed width (may differ from OriginalW if trimmed)
	Height    int  // displayed height (may differ from OriginalH if trimmed)
	OriginalW int  // untrimmed sprite width as authored
	OriginalH int  // untrimmed sprite height as authored
	OffsetX   int  // horizontal trim offset from TexturePacker
	OffsetY   int  // vertical trim offset from TexturePacker
	Rotated   bool // true if the region is stored 90 degrees clockwise in the texture
}

// Size returns the displayed size of the region.
func (r TextureRegion) Size() Vec2 {
	return Vec2{float64(r.Width), float64(r.Height)}
}

// SourceRect returns the rectangle the region occupies in its texture. For
// rotated regions width and height are swapped.
func (r TextureRegion) SourceRect() image.Rectangle {
	w, h := r.Width, r.Height
	if r.Rotated {
		w, h = h, w
	}
	o := r.Texture.img.Bounds().Min
	return image.Rect(o.X+r.X, o.Y+r.Y, o.X+r.X+w, o.Y+r.Y+h)
}

// LocalTransform maps source-rect pixel coordinates to the region's local
// space: trim offsets are applied and rotated regions are turned back upright.
func (r TextureRegion) LocalTransform() Transform {
	m := TranslateMatrix(Vec2{float64(r.OffsetX), float64(r.OffsetY)})
	if r.Rotated {
		m = m.Mul(Transform{0, -1, 1, 0, 0, float64(r.Height)})
	}
	return m
}
