package layout

import "pageflow/pkg/render"

// Drawable is content that can render itself at a placement. Draw may return
// a replacement placement describing the space it actually consumed, which
// composites spanning several rows or pages use to report their final extent.
//
// borders is optional: when nil, borders are drawn immediately; otherwise
// they are appended to it and drawn later by the caller.
type Drawable interface {
	Draw(p Placement, sink render.Sink, borders *BorderCollector) (Placement, bool)
	Group() GroupID
}

// Spacer draws nothing. Committing it with zero height levels every slot of
// its range to the lowest cursor, and with a height it reserves blank space.
type Spacer struct {
	GroupID GroupID
}

func (s Spacer) Draw(Placement, render.Sink, *BorderCollector) (Placement, bool) {
	return Placement{}, false
}

func (s Spacer) Group() GroupID { return s.GroupID }
