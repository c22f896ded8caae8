package layout

import (
	"fmt"

	"pageflow/pkg/geom"
)

// ColumnRange is a half-open range of percentage slots [Start, End).
type ColumnRange struct {
	Start int
	End   int
}

// Cols is shorthand for ColumnRange{start, end}.
func Cols(start, end int) ColumnRange {
	return ColumnRange{Start: start, End: end}
}

// FullWidth covers every slot of the grid.
var FullWidth = ColumnRange{Start: 0, End: GridSlots}

func (c ColumnRange) Len() int { return c.End - c.Start }

func (c ColumnRange) String() string {
	return fmt.Sprintf("%d..%d", c.Start, c.End)
}

// Placement is the computed rectangle and page assignment for one content
// item. It is a plain value; handles mutate their own copy.
type Placement struct {
	Rect      geom.Rect
	Page      int
	IsNewPage bool
	// Remaining is the drawable height left on the page below Rect.Y.
	Remaining float64
	Geometry  geom.PageGeometry
	Columns   ColumnRange
	// Interior, when set, is the area content should draw inside, typically
	// Rect shrunk by border insets.
	Interior *geom.Rect
}

// ContentRect returns Interior when set, Rect otherwise.
func (p Placement) ContentRect() geom.Rect {
	if p.Interior != nil {
		return *p.Interior
	}
	return p.Rect
}

func (p Placement) String() string {
	return fmt.Sprintf("page %d cols %s top-left %g,%g bottom-right %g,%g",
		p.Page, p.Columns, p.Rect.X, p.Rect.Y, p.Rect.Right(), p.Rect.Bottom())
}
