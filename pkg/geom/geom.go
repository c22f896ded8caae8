package geom

import "fmt"

// Rect is a rectangle in layout space: top-left origin, y grows downward.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Inset shrinks the rectangle by the given amount on each edge.
func (r Rect) Inset(top, left, right, bottom float64) Rect {
	return Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  r.Width - left - right,
		Height: r.Height - top - bottom,
	}
}

// FlipY converts the rectangle into bottom-up page space, which is what
// PDF-style backends expect.
func (r Rect) FlipY(pageHeight float64) Rect {
	return Rect{X: r.X, Y: pageHeight - r.Y - r.Height, Width: r.Width, Height: r.Height}
}

// Bounds returns the smallest rectangle enclosing every rect in rects.
// An empty slice yields the zero Rect.
func Bounds(rects []Rect) Rect {
	if len(rects) == 0 {
		return Rect{}
	}
	minX, minY := rects[0].X, rects[0].Y
	maxX, maxY := rects[0].Right(), rects[0].Bottom()
	for _, r := range rects[1:] {
		if r.X < minX {
			minX = r.X
		}
		if r.Y < minY {
			minY = r.Y
		}
		if r.Right() > maxX {
			maxX = r.Right()
		}
		if r.Bottom() > maxY {
			maxY = r.Bottom()
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func (r Rect) String() string {
	return fmt.Sprintf("x=%g y=%g width=%g height=%g", r.X, r.Y, r.Width, r.Height)
}

// Color is an RGB triple with components in [0,1].
type Color struct {
	R, G, B float64
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
)

// PageGeometry describes one page in pixels. It is immutable and copied by
// value into every placement.
type PageGeometry struct {
	WidthPx        float64
	HeightPx       float64
	DPI            float64
	TopMarginPx    float64
	BottomMarginPx float64
}

// NewPageGeometry converts inch measurements to pixels at the given dpi.
func NewPageGeometry(widthIn, heightIn, dpi, topMarginIn, bottomMarginIn float64) PageGeometry {
	return PageGeometry{
		WidthPx:        widthIn * dpi,
		HeightPx:       heightIn * dpi,
		DPI:            dpi,
		TopMarginPx:    topMarginIn * dpi,
		BottomMarginPx: bottomMarginIn * dpi,
	}
}

// UsableHeight is the drawable height between the top and bottom margins.
func (g PageGeometry) UsableHeight() float64 {
	return g.HeightPx - g.TopMarginPx - g.BottomMarginPx
}

func (g PageGeometry) String() string {
	return fmt.Sprintf("width=%gpx height=%gpx dpi=%g top=%gpx bottom=%gpx",
		g.WidthPx, g.HeightPx, g.DPI, g.TopMarginPx, g.BottomMarginPx)
}
