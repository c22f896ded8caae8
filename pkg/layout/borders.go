package layout

import (
	"pageflow/pkg/geom"
	"pageflow/pkg/render"
)

// BorderRecord is a border rectangle recorded for later drawing.
type BorderRecord struct {
	Placement Placement
	Color     geom.Color
	Thickness float64
}

// BorderCollector accumulates deferred borders so they can be painted after
// all content, on top of cell backgrounds. It is append-only.
type BorderCollector struct {
	records []BorderRecord
}

func NewBorderCollector() *BorderCollector {
	return &BorderCollector{}
}

func (b *BorderCollector) Add(r BorderRecord) {
	b.records = append(b.records, r)
}

func (b *BorderCollector) Records() []BorderRecord {
	return b.records
}

func (b *BorderCollector) Len() int {
	return len(b.records)
}

// Flush draws every recorded border in append order.
func (b *BorderCollector) Flush(sink render.Sink) {
	for _, r := range b.records {
		render.DrawRectangle(sink, r.Placement.Page, r.Placement.Rect, r.Thickness, r.Color)
	}
}

// DrawBorder draws r now when borders is nil, or defers it otherwise.
func DrawBorder(sink render.Sink, borders *BorderCollector, r BorderRecord) {
	if borders == nil {
		render.DrawRectangle(sink, r.Placement.Page, r.Placement.Rect, r.Thickness, r.Color)
		return
	}
	borders.Add(r)
}
