package layout

import (
	"fmt"

	"go.uber.org/zap"

	"pageflow/pkg/render"
)

// Handle is a cursor for one content item bound to a column range. It holds
// the engine it came from so nested handles all reach the same grid.
type Handle struct {
	engine    *Engine
	placement Placement
}

// Placement returns a copy of the handle's current placement.
func (h *Handle) Placement() Placement {
	return h.placement
}

// SetHeight assigns the item's pixel height. If the height does not fit in
// what is left of the page, the item moves to the top of the next page.
func (h *Handle) SetHeight(px float64) {
	if h.placement.Remaining >= px {
		h.placement.Rect.Height = px
		return
	}
	h.engine.logger.Debug("height overflows page",
		zap.Float64("height", px),
		zap.Float64("remaining", h.placement.Remaining),
		zap.Int("page", h.placement.Page))
	h.placement = h.engine.RequestNextPosition(h.placement.Columns, true)
	h.placement.Rect.Height = px
}

// SetRestrictedInterior shrinks the drawable interior inside the outer rect.
// Call it after SetHeight; a later page advance discards it.
func (h *Handle) SetRestrictedInterior(top, left, right, bottom float64) {
	interior := h.placement.Rect.Inset(top, left, right, bottom)
	h.placement.Interior = &interior
}

// Draw renders d at the handle's placement and commits the result. When d
// reports a replacement placement, that is what gets committed.
func (h *Handle) Draw(d Drawable, sink render.Sink, borders *BorderCollector) {
	if h.placement.Page >= sink.PageCount() {
		sink.EnsurePageCapacity(h.placement.Page)
	}
	if final, ok := d.Draw(h.placement, sink, borders); ok {
		h.placement = final
	}
	h.engine.Commit(h.placement, d.Group())
}

func (h *Handle) String() string {
	return fmt.Sprintf("Range(%s) Height: %g Page: %d Top: %g",
		h.placement.Columns, h.placement.Rect.Height, h.placement.Page, h.placement.Rect.Y)
}
