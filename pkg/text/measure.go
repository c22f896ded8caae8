package text

import (
	"fmt"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"pageflow/pkg/geom"
)

// Standard font identifiers.
const (
	Helvetica  = "Helvetica"
	Courier    = "Courier"
	TimesRoman = "Times-Roman"
)

// Font describes how a run of text is set.
type Font struct {
	Name  string
	Size  float64 // points
	Color geom.Color
}

func NewFont(name string, size float64) Font {
	return Font{Name: name, Size: size, Color: geom.Black}
}

func (f Font) WithColor(c geom.Color) Font {
	f.Color = c
	return f
}

// Measurer estimates how wide a line of text is and how far glyphs descend
// below the baseline, both in pixels at the font's size.
type Measurer interface {
	LineWidth(s string, f Font) float64
	Descent(f Font) float64
}

// lineHeightFactor converts a point size at a given dpi into the pixel
// height of one line of text before leading.
const lineHeightFactor = 0.0159708658854167

// LineHeight estimates the pixel height of a single line set at sizePt,
// including 20% leading.
func LineHeight(sizePt, dpi float64) float64 {
	return lineHeightFactor * sizePt * dpi * 1.2
}

// unitsPerEm is the design grid descents are expressed in.
const unitsPerEm = 2048

// GlyphTable measures text from per-font advance widths (in em) and
// descents (in units of a 2048 em). Missing glyphs count as one em.
type GlyphTable struct {
	widths   map[string]map[rune]float64
	descents map[string]float64
}

func NewGlyphTable() *GlyphTable {
	return &GlyphTable{
		widths:   make(map[string]map[rune]float64),
		descents: make(map[string]float64),
	}
}

// AddFont registers advance widths and a descent for a font name.
func (g *GlyphTable) AddFont(name string, widths map[rune]float64, descent float64) {
	g.widths[name] = widths
	g.descents[name] = descent
}

func (g *GlyphTable) LineWidth(s string, f Font) float64 {
	widths := g.widths[f.Name]
	total := 0.0
	for _, c := range s {
		if c == '\n' {
			continue
		}
		if w, ok := widths[c]; ok {
			total += w
		} else {
			total += 1.0
		}
	}
	return total * f.Size
}

func (g *GlyphTable) Descent(f Font) float64 {
	return g.descents[f.Name] * f.Size / unitsPerEm
}

// helveticaWidths are the advance widths of printable ASCII, space through
// tilde, in thousandths of an em.
var helveticaWidths = []float64{
	278, 278, 355, 556, 556, 889, 667, 191, 333, 333, 389, 584, 278, 333, 278, 278,
	556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 278, 278, 584, 584, 584, 556,
	1015, 667, 667, 722, 722, 667, 611, 778, 722, 278, 500, 667, 556, 833, 722, 778,
	667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, 278, 278, 278, 469, 556,
	333, 556, 556, 500, 556, 556, 278, 556, 556, 222, 222, 500, 222, 833, 556, 556,
	556, 556, 333, 500, 278, 556, 500, 722, 500, 500, 500, 334, 260, 334, 584,
}

func asciiWidths(per func(i int) float64) map[rune]float64 {
	m := make(map[rune]float64, 95)
	for i := 0; i < 95; i++ {
		m[rune(' '+i)] = per(i)
	}
	return m
}

// DefaultGlyphTable knows Helvetica and Courier for printable ASCII.
func DefaultGlyphTable() *GlyphTable {
	g := NewGlyphTable()
	g.AddFont(Helvetica, asciiWidths(func(i int) float64 { return helveticaWidths[i] / 1000 }), 424)
	g.AddFont(Courier, asciiWidths(func(int) float64 { return 0.6 }), 322)
	return g
}

// FaceMeasurer measures text with a rasterizer font face through gg. The
// face is loaded at a nominal size and results are scaled to the requested
// font size, so one face serves every size.
type FaceMeasurer struct {
	dc      *gg.Context
	face    font.Face
	nominal float64
}

// NewFaceMeasurer uses the fixed 7x13 face that ships with x/image.
func NewFaceMeasurer() *FaceMeasurer {
	return newFaceMeasurer(basicfont.Face7x13, float64(basicfont.Face7x13.Height))
}

// LoadFaceMeasurer loads a TrueType font file at the given point size.
func LoadFaceMeasurer(path string, points float64) (*FaceMeasurer, error) {
	face, err := gg.LoadFontFace(path, points)
	if err != nil {
		return nil, fmt.Errorf("loading font face %s: %w", path, err)
	}
	return newFaceMeasurer(face, points), nil
}

func newFaceMeasurer(face font.Face, nominal float64) *FaceMeasurer {
	dc := gg.NewContext(1, 1)
	dc.SetFontFace(face)
	return &FaceMeasurer{dc: dc, face: face, nominal: nominal}
}

func (m *FaceMeasurer) LineWidth(s string, f Font) float64 {
	w, _ := m.dc.MeasureString(strings.ReplaceAll(s, "\n", ""))
	return w * f.Size / m.nominal
}

func (m *FaceMeasurer) Descent(f Font) float64 {
	d := float64(m.face.Metrics().Descent) / 64
	return d * f.Size / m.nominal
}
