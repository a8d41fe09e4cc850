package canopy

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Typeface is a parsed TrueType/OpenType font. A Typeface carries no size;
// the text style picks the size at draw time. Targets keep their own caches
// keyed by the *Typeface, so a Typeface must outlive the frames that use it.
type Typeface struct {
	name   string
	data   []byte
	source *text.GoTextFaceSource
}

// NewTypeface parses raw TTF/OTF data.
func NewTypeface(name string, data []byte) (*Typeface, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("canopy: failed to parse font %q: %w", name, err)
	}
	return &Typeface{name: name, data: data, source: source}, nil
}

// LoadTypeface reads and parses a font file. The typeface is named after the
// file without its extension.
func LoadTypeface(path string) (*Typeface, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("canopy: failed to read font: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	f, err := NewTypeface(name, data)
	if err != nil {
		return nil, err
	}
	Logger().Debug("font loaded", "path", path, "name", name)
	return f, nil
}

var (
	defaultTypefaceOnce sync.Once
	defaultTypeface     *Typeface
)

// DefaultTypeface returns Go Regular, embedded in the binary.
func DefaultTypeface() *Typeface {
	defaultTypefaceOnce.Do(func() {
		f, err := NewTypeface("goregular", goregular.TTF)
		if err != nil {
			panic(err) // embedded font always parses
		}
		defaultTypeface = f
	})
	return defaultTypeface
}

// Name returns the typeface name.
func (f *Typeface) Name() string { return f.name }

// Data returns the raw font bytes. The slice must not be modified.
func (f *Typeface) Data() []byte { return f.data }

// Face returns an Ebitengine face at the given pixel size.
func (f *Typeface) Face(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.source, Size: size}
}

// LineHeight returns the baseline-to-baseline distance at size, scaled by
// lineSpacing.
func (f *Typeface) LineHeight(size, lineSpacing float64) float64 {
	m := f.Face(size).Metrics()
	return (m.HAscent + m.HDescent + m.HLineGap) * lineSpacing
}

// Ascent returns the distance from the top of a line to its baseline at size.
func (f *Typeface) Ascent(size float64) float64 {
	return f.Face(size).Metrics().HAscent
}

// Measure returns the width and height of s laid out with style. Lines are
// separated by '\n'; every glyph advance is multiplied by the letter spacing.
func (f *Typeface) Measure(s string, style TextStyle) (width, height float64) {
	face := f.Face(style.Size)
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		w := text.Advance(line, face) * style.LetterSpacing
		width = max(width, w)
	}
	height = f.LineHeight(style.Size, style.LineSpacing) * float64(len(lines))
	return width, height
}
