package render

import (
	"pageflow/pkg/geom"
)

// Painter appends instructions for a single page of a Sink. Its methods
// mirror an immediate-mode drawing context so callers read like gg code.
type Painter struct {
	sink Sink
	page int
}

// NewPainter binds a painter to page, growing the sink if needed.
func NewPainter(sink Sink, page int) *Painter {
	if page >= sink.PageCount() {
		sink.EnsurePageCapacity(page)
	}
	return &Painter{sink: sink, page: page}
}

func (p *Painter) Page() int { return p.page }

func (p *Painter) Push() { p.sink.Append(p.page, Instruction{Op: OpPush}) }
func (p *Painter) Pop()  { p.sink.Append(p.page, Instruction{Op: OpPop}) }

func (p *Painter) SetColor(c geom.Color) {
	p.sink.Append(p.page, Instruction{Op: OpSetColor, Color: c})
}

func (p *Painter) SetLineWidth(w float64) {
	p.sink.Append(p.page, Instruction{Op: OpSetLineWidth, Width: w})
}

func (p *Painter) ClipRect(r geom.Rect) {
	p.sink.Append(p.page, Instruction{Op: OpClipRect, Rect: r})
}

func (p *Painter) FillRect(r geom.Rect) {
	p.sink.Append(p.page, Instruction{Op: OpFillRect, Rect: r})
}

func (p *Painter) StrokeRect(r geom.Rect) {
	p.sink.Append(p.page, Instruction{Op: OpStrokeRect, Rect: r})
}

func (p *Painter) Line(x1, y1, x2, y2 float64) {
	p.sink.Append(p.page, Instruction{Op: OpLine, X1: x1, Y1: y1, X2: x2, Y2: y2})
}

// Text places s with its baseline starting at (x, y).
func (p *Painter) Text(s string, x, y float64, font string, size float64) {
	p.sink.Append(p.page, Instruction{Op: OpText, Text: s, X1: x, Y1: y, Font: font, Size: size})
}

// DrawRectangle strokes r with the given thickness and color.
func DrawRectangle(sink Sink, page int, r geom.Rect, thickness float64, color geom.Color) {
	p := NewPainter(sink, page)
	p.Push()
	p.SetColor(color)
	p.SetLineWidth(thickness)
	p.StrokeRect(r)
	p.Pop()
}

// DrawHorizontalLine draws a line of the given width starting at (x, top).
func DrawHorizontalLine(sink Sink, page int, top, x, width, thickness float64, color geom.Color) {
	p := NewPainter(sink, page)
	p.Push()
	p.SetColor(color)
	p.SetLineWidth(thickness)
	p.Line(x, top, x+width, top)
	p.Pop()
}

// DrawVerticalLine draws a line of the given height downward from (x, top).
func DrawVerticalLine(sink Sink, page int, top, x, height, thickness float64, color geom.Color) {
	p := NewPainter(sink, page)
	p.Push()
	p.SetColor(color)
	p.SetLineWidth(thickness)
	p.Line(x, top, x, top+height)
	p.Pop()
}
