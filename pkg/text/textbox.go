package text

import (
	"pageflow/pkg/geom"
	"pageflow/pkg/layout"
	"pageflow/pkg/render"
)

// BorderStyle is the frame drawn around a text box.
type BorderStyle struct {
	Thickness float64 // zero means no border
}

var NoBorder = BorderStyle{}

func SingleBorder(thickness float64) BorderStyle {
	return BorderStyle{Thickness: thickness}
}

// TextBox is a leaf drawable: a filled rectangle with one line of text.
type TextBox struct {
	text              string
	font              Font
	alignment         Alignment
	border            BorderStyle
	borderColor       geom.Color
	background        geom.Color
	compensateDescent bool
	group             layout.GroupID
	measurer          Measurer
}

// Option configures a TextBox.
type Option func(*TextBox)

func WithAlignment(a Alignment) Option { return func(t *TextBox) { t.alignment = a } }

func WithBorder(b BorderStyle) Option { return func(t *TextBox) { t.border = b } }

func WithBorderColor(c geom.Color) Option { return func(t *TextBox) { t.borderColor = c } }

func WithBackground(c geom.Color) Option { return func(t *TextBox) { t.background = c } }

func WithGroup(g layout.GroupID) Option { return func(t *TextBox) { t.group = g } }

func WithMeasurer(m Measurer) Option { return func(t *TextBox) { t.measurer = m } }

// WithDescentCompensation lifts the baseline by the font descent so
// descenders stay inside the box.
func WithDescentCompensation() Option { return func(t *TextBox) { t.compensateDescent = true } }

var defaultMeasurer Measurer = DefaultGlyphTable()

// NewTextBox creates a text box, left-bottom aligned on white with no border
// and no group unless options say otherwise.
func NewTextBox(s string, f Font, opts ...Option) *TextBox {
	t := &TextBox{
		text:        s,
		font:        f,
		alignment:   LeftBottom,
		borderColor: geom.Black,
		background:  geom.White,
		group:       layout.NoGroup,
		measurer:    defaultMeasurer,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *TextBox) Text() string { return t.text }

func (t *TextBox) SetBackground(c geom.Color) { t.background = c }

func (t *TextBox) Group() layout.GroupID { return t.group }

// Anchor returns where the text baseline starts inside area.
func (t *TextBox) Anchor(area geom.Rect, dpi float64) (x, y float64) {
	lineWidth := t.measurer.LineWidth(t.text, t.font)
	up := 0.0
	if t.compensateDescent {
		up = t.measurer.Descent(t.font)
	}
	indent := t.alignment.Indent * dpi

	switch t.alignment.H {
	case Center:
		x = area.X + area.Width/2 - lineWidth/2
	case Right:
		x = area.X - indent + area.Width - lineWidth
	default:
		x = area.X + indent
	}
	switch t.alignment.V {
	case Top:
		y = area.Y + t.font.Size - up
	case Middle:
		y = area.Y + area.Height/2 + t.font.Size/2 - up
	default:
		y = area.Bottom() - up
	}
	return x, y
}

// Draw fills the box background, clips to it and sets the text. The box
// always fits its placement, so there is never a replacement.
func (t *TextBox) Draw(p layout.Placement, sink render.Sink, borders *layout.BorderCollector) (layout.Placement, bool) {
	area := p.ContentRect()
	x, y := t.Anchor(area, p.Geometry.DPI)

	pt := render.NewPainter(sink, p.Page)
	pt.Push()
	pt.ClipRect(area)
	pt.SetColor(t.background)
	pt.FillRect(area)
	pt.SetColor(t.font.Color)
	pt.Text(t.text, x, y, t.font.Name, t.font.Size)
	pt.Pop()

	if t.border.Thickness > 0 {
		layout.DrawBorder(sink, borders, layout.BorderRecord{
			Placement: p,
			Color:     t.borderColor,
			Thickness: t.border.Thickness,
		})
	}
	return layout.Placement{}, false
}
