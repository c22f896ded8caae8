// Package listbox lays tabular rows out across pages. Each row is placed
// through the shared layout engine, classified into a pagination role and
// drawn cell by cell, while separator and frame geometry is accumulated so
// no line is broken or doubled across a page break.
package listbox

import (
	"fmt"

	"go.uber.org/zap"

	"pageflow/pkg/format"
	"pageflow/pkg/geom"
	"pageflow/pkg/layout"
	"pageflow/pkg/text"
)

// Role is how a drawn row takes part in its page segment.
type Role int

const (
	RoleHeader Role = iota
	RoleTop
	RoleItem
	RoleItemWithTopBorder
	RoleBottom
	RoleFullPageItem
)

var roleNames = [...]string{"header", "top", "item", "item-with-top-border", "bottom", "full-page-item"}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[int(r)]
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// endsSegment reports whether nothing of the table follows this row on its page.
func (r Role) endsSegment() bool {
	return r == RoleBottom || r == RoleFullPageItem
}

// Placed records where one row ended up.
type Placed struct {
	Row  int // index into the data rows; header rows repeat the row they precede
	Role Role
	Page int
	Rect geom.Rect
}

// DefaultInteriorMargin is the gap kept between a cell's lines and its text.
const DefaultInteriorMargin = 0.2

// ListBox is a table drawable. Construct it with New, configure it with the
// setters, then draw it through a layout.Handle over the table's columns.
type ListBox struct {
	engine       *layout.Engine
	rows         []Row
	widths       []int
	header       *Row
	itemFont     text.Font
	headerFont   text.Font
	style        BorderStyle
	group        layout.GroupID
	headerBorder bool
	borderColor  geom.Color
	rowColors    [2]geom.Color
	types        []format.ColumnType
	itemAlign    []text.Alignment
	headerAlign  []text.Alignment
	rowHeights   []float64
	headerHeight float64
	margin       float64
	measurer     text.Measurer
	logger       *zap.Logger

	extents []VerticalExtent
	placed  []Placed
}

// New creates a table over rows. widths are column widths in percent of the
// page and must add up to the width of the range the table is drawn into.
// header may be nil.
func New(engine *layout.Engine, rows []Row, widths []int, header *Row, itemFont, headerFont text.Font, style BorderStyle, group layout.GroupID) *ListBox {
	lb := &ListBox{
		engine:       engine,
		rows:         rows,
		widths:       widths,
		header:       header,
		itemFont:     itemFont,
		headerFont:   headerFont,
		style:        style,
		group:        group,
		headerBorder: true,
		borderColor:  geom.Black,
		rowColors:    [2]geom.Color{geom.White, {R: 0.9, G: 1, B: 1}},
		types:        make([]format.ColumnType, len(widths)),
		margin:       DefaultInteriorMargin,
		logger:       engine.Logger(),
	}
	g := engine.Geometry()
	lb.headerHeight = lb.clampHeader(text.LineHeight(headerFont.Size, g.DPI))
	return lb
}

func (lb *ListBox) Group() layout.GroupID { return lb.group }

// SetRowHeights gives every data row an explicit pixel height instead of the
// item font's line height.
func (lb *ListBox) SetRowHeights(heights []float64) { lb.rowHeights = heights }

// SetHeaderHeight overrides the header font's line height.
func (lb *ListBox) SetHeaderHeight(px float64) { lb.headerHeight = lb.clampHeader(px) }

func (lb *ListBox) SetColumnTypes(types []format.ColumnType) { lb.types = types }

func (lb *ListBox) SetItemAlignments(a []text.Alignment) { lb.itemAlign = a }

func (lb *ListBox) SetHeaderAlignments(a []text.Alignment) { lb.headerAlign = a }

// SetHeaderHasBorder controls whether the header is inside the frame. A
// borderless header sits above the frame, which then starts at the first
// row below it.
func (lb *ListBox) SetHeaderHasBorder(b bool) { lb.headerBorder = b }

func (lb *ListBox) SetBorderColor(c geom.Color) { lb.borderColor = c }

// SetAlternateRowColors sets the backgrounds for even and odd rows of a page.
func (lb *ListBox) SetAlternateRowColors(even, odd geom.Color) {
	lb.rowColors = [2]geom.Color{even, odd}
}

func (lb *ListBox) SetInteriorMargin(px float64) { lb.margin = px }

func (lb *ListBox) SetMeasurer(m text.Measurer) { lb.measurer = m }

func (lb *ListBox) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	lb.logger = logger
}

// Extents returns the frame spans recorded by the last Draw, one per page
// segment.
func (lb *ListBox) Extents() []VerticalExtent { return lb.extents }

// Placements returns every row drawn by the last Draw, in drawing order.
func (lb *ListBox) Placements() []Placed { return lb.placed }

func (lb *ListBox) hasHeader() bool { return lb.header != nil }

func (lb *ListBox) borderlessHeader() bool { return lb.hasHeader() && !lb.headerBorder }

func (lb *ListBox) usable() float64 { return lb.engine.Geometry().UsableHeight() }

func (lb *ListBox) clampHeader(px float64) float64 {
	_, outer := lb.style.halves()
	if limit := lb.usable() - 4*outer; px > limit {
		return limit
	}
	return px
}

func (lb *ListBox) clampItem(px float64) float64 {
	inner, outer := lb.style.halves()
	if limit := lb.usable() - 2*outer - 2*inner; px > limit {
		return limit
	}
	return px
}

// heights returns the pixel height of row i and of the row after it. The
// last row counts as its own follower.
func (lb *ListBox) heights(i int) (this, next float64) {
	fallback := text.LineHeight(lb.itemFont.Size, lb.engine.Geometry().DPI)
	at := func(j int) float64 {
		if j < len(lb.rowHeights) {
			return lb.rowHeights[j]
		}
		return fallback
	}
	this = at(i)
	next = this
	if i+1 < len(lb.rows) {
		next = at(i + 1)
	}
	return lb.clampItem(this), lb.clampItem(next)
}

func (lb *ListBox) rowColor(indexOnPage int) geom.Color {
	return lb.rowColors[indexOnPage%2]
}

func (lb *ListBox) alignment(col int, header bool) text.Alignment {
	aligns := lb.itemAlign
	if header {
		aligns = lb.headerAlign
	}
	if col < len(aligns) {
		return aligns[col]
	}
	return text.LeftBottom
}

func (lb *ListBox) columnType(col int) format.ColumnType {
	if col < len(lb.types) {
		return lb.types[col]
	}
	return format.Text
}
