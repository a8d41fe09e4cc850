package canopy

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"slices"
)

// Atlas holds one or more page textures and a map of named regions.
type Atlas struct {
	// Pages contains the page textures indexed by page number.
	Pages   []*Texture
	regions map[string]TextureRegion
}

// Region returns the TextureRegion for the given name.
// If the name doesn't exist, it logs a warning and returns a 1×1 magenta
// placeholder region.
func (a *Atlas) Region(name string) TextureRegion {
	if r, ok := a.regions[name]; ok {
		return r
	}
	Logger().Warn("atlas region not found, using magenta placeholder", "region", name)
	return magentaTexture.Region()
}

// Lookup returns the named region and whether it exists.
func (a *Atlas) Lookup(name string) (TextureRegion, bool) {
	r, ok := a.regions[name]
	return r, ok
}

// Names returns the region names in sorted order.
func (a *Atlas) Names() []string {
	names := make([]string, 0, len(a.regions))
	for name := range a.regions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

var magentaTexture = func() *Texture {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, B: 255, A: 255})
	return NewTexture(img)
}()

// LoadAtlas parses TexturePacker JSON data and associates the given page textures.
// Supports both the hash format (single "frames" object) and the array format
// ("textures" array with per-page frame lists).
func LoadAtlas(jsonData []byte, pages []*Texture) (*Atlas, error) {
	// Probe top-level keys to detect format.
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("canopy: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{
		Pages:   pages,
		regions: make(map[string]TextureRegion),
	}

	switch {
	case probe.Textures != nil:
		if err := parseArrayFormat(probe.Textures, atlas); err != nil {
			return nil, err
		}
	case probe.Frames != nil:
		if err := parseHashFrames(probe.Frames, 0, atlas); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("canopy: atlas JSON has neither \"frames\" nor \"textures\" key")
	}

	Logger().Debug("atlas loaded", "pages", len(pages), "regions", len(atlas.regions))
	return atlas, nil
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame            jsonRect `json:"frame"`
	Rotated          bool     `json:"rotated"`
	Trimmed          bool     `json:"trimmed"`
	SpriteSourceSize jsonRect `json:"spriteSourceSize"`
	SourceSize       jsonSize `json:"sourceSize"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

// parseHashFrames parses the hash format: {"name": {frame...}, ...}
func parseHashFrames(raw json.RawMessage, page int, atlas *Atlas) error {
	var frames map[string]jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("canopy: failed to parse atlas frames: %w", err)
	}
	tex, err := atlas.page(page)
	if err != nil {
		return err
	}
	for name, f := range frames {
		atlas.regions[name] = frameToRegion(f, tex)
	}
	return nil
}

// parseArrayFormat parses the array format: [{"image":"...", "frames":{...}}, ...]
func parseArrayFormat(raw json.RawMessage, atlas *Atlas) error {
	var textures []jsonTexturePage
	if err := json.Unmarshal(raw, &textures); err != nil {
		return fmt.Errorf("canopy: failed to parse atlas textures array: %w", err)
	}
	for i, page := range textures {
		tex, err := atlas.page(i)
		if err != nil {
			return err
		}
		for name, f := range page.Frames {
			atlas.regions[name] = frameToRegion(f, tex)
		}
	}
	return nil
}

func (a *Atlas) page(i int) (*Texture, error) {
	if i >= len(a.Pages) || a.Pages[i] == nil {
		return nil, fmt.Errorf("canopy: atlas references page %d but %d page textures were given", i, len(a.Pages))
	}
	return a.Pages[i], nil
}

// frameToRegion converts a TexturePacker frame. The frame rect of a rotated
// sprite is already given in the sprite's upright orientation.
func frameToRegion(f jsonFrame, tex *Texture) TextureRegion {
	return TextureRegion{
		Texture:   tex,
		X:         f.Frame.X,
		Y:         f.Frame.Y,
		Width:     f.Frame.W,
		Height:    f.Frame.H,
		OriginalW: f.SourceSize.W,
		OriginalH: f.SourceSize.H,
		OffsetX:   f.SpriteSourceSize.X,
		OffsetY:   f.SpriteSourceSize.Y,
		Rotated:   f.Rotated,
	}
}
