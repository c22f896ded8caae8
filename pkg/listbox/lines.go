package listbox

import (
	"pageflow/pkg/geom"
	"pageflow/pkg/layout"
	"pageflow/pkg/render"
)

// VerticalExtent is the part of one page covered by the table frame.
type VerticalExtent struct {
	Page   int
	Top    float64
	Bottom float64
}

// lineSpan is a run of vertically adjacent rows that share column lines.
type lineSpan struct {
	page   int
	top    float64
	height float64
}

// separators accumulates the table's inner line state while rows are drawn.
type separators struct {
	spans     []lineSpan
	connected bool
	// ignoreAbove skips the horizontal line for rows whose index on the page
	// is not greater than it.
	ignoreAbove  int
	suppressNext bool
}

// track extends the current span with a row, or starts a new one. Single
// span rows have no column lines and break the run.
func (s *separators) track(page int, r geom.Rect, single bool) {
	if single {
		s.connected = false
		return
	}
	if n := len(s.spans); s.connected && n > 0 && s.spans[n-1].page == page {
		s.spans[n-1].height += r.Height
	} else {
		s.spans = append(s.spans, lineSpan{page: page, top: r.Y, height: r.Height})
	}
	s.connected = true
}

// horizontal decides whether a separator goes above the row just drawn.
func (s *separators) horizontal(indexOnPage int, suppressesBorder bool) bool {
	skip := s.suppressNext
	s.suppressNext = false
	if suppressesBorder {
		skip = true
		s.suppressNext = true
	}
	if indexOnPage > s.ignoreAbove && !skip {
		s.ignoreAbove = 0
		return true
	}
	return false
}

// boundaries returns the x of every interior column edge.
func (lb *ListBox) boundaries(table layout.ColumnRange) []float64 {
	w := lb.engine.Geometry().WidthPx
	xs := make([]float64, 0, len(lb.widths))
	start := table.Start
	for i, pct := range lb.widths {
		if i > 0 {
			xs = append(xs, float64(start)/100*w)
		}
		start += pct
	}
	return xs
}

// columns splits the table range by the configured widths.
func (lb *ListBox) columns(table layout.ColumnRange) []layout.ColumnRange {
	cols := make([]layout.ColumnRange, len(lb.widths))
	start := table.Start
	for i, pct := range lb.widths {
		cols[i] = layout.Cols(start, start+pct)
		start += pct
	}
	return cols
}

// flushVerticals draws the column lines of every pending span and clears them.
func (lb *ListBox) flushVerticals(sink render.Sink, s *separators, table layout.ColumnRange) {
	if lb.style.hasInner() {
		xs := lb.boundaries(table)
		for _, span := range s.spans {
			for _, x := range xs {
				render.DrawVerticalLine(sink, span.page, span.top, x, span.height, lb.style.Inner, lb.borderColor)
			}
		}
	}
	s.spans = nil
}

func (lb *ListBox) drawHorizontal(sink render.Sink, first, last layout.Placement) {
	if !lb.style.hasInner() {
		return
	}
	width := last.Rect.Right() - first.Rect.X
	render.DrawHorizontalLine(sink, first.Page, first.Rect.Y, first.Rect.X, width, lb.style.Inner, lb.borderColor)
}

// drawFrame outlines every recorded page segment across the full table
// width, immediately or through borders.
func (lb *ListBox) drawFrame(sink render.Sink, borders *layout.BorderCollector, table layout.ColumnRange) {
	if !lb.style.hasOuter() {
		return
	}
	g := lb.engine.Geometry()
	for _, ext := range lb.extents {
		if ext.Top <= 0 || ext.Bottom <= 0 {
			continue
		}
		p := layout.Placement{
			Rect: geom.Rect{
				X:      g.WidthPx * float64(table.Start) / 100,
				Y:      ext.Top,
				Width:  g.WidthPx * float64(table.Len()) / 100,
				Height: ext.Bottom - ext.Top,
			},
			Page:     ext.Page,
			Geometry: g,
			Columns:  table,
		}
		layout.DrawBorder(sink, borders, layout.BorderRecord{
			Placement: p,
			Color:     lb.borderColor,
			Thickness: lb.style.Outer,
		})
	}
}
