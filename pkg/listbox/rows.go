package listbox

import (
	"pageflow/pkg/geom"
	"pageflow/pkg/text"
)

type RowKind int

const (
	Normal RowKind = iota
	// SingleSpan rows are one cell across the whole table.
	SingleSpan
	// SingleSpanNoBorder rows also suppress the separator below them.
	SingleSpanNoBorder
	SingleSpanWithColor
	SingleSpanNoBorderWithColor
)

func (k RowKind) String() string {
	switch k {
	case SingleSpan:
		return "single"
	case SingleSpanNoBorder:
		return "single-no-border"
	case SingleSpanWithColor:
		return "single-color"
	case SingleSpanNoBorderWithColor:
		return "single-no-border-color"
	default:
		return "normal"
	}
}

func (k RowKind) singleSpan() bool { return k != Normal }

func (k RowKind) suppressesBorder() bool {
	return k == SingleSpanNoBorder || k == SingleSpanNoBorderWithColor
}

func (k RowKind) colored() bool {
	return k == SingleSpanWithColor || k == SingleSpanNoBorderWithColor
}

// Row is one line of table data.
type Row struct {
	Cells []string
	Kind  RowKind
	// Align and Color apply to single-span rows; Color only to the
	// colored kinds.
	Align text.Alignment
	Color geom.Color
}

func NewRow(cells ...string) Row {
	return Row{Cells: cells, Kind: Normal}
}

func NewSingleSpan(s string, align text.Alignment) Row {
	return Row{Cells: []string{s}, Kind: SingleSpan, Align: align}
}

func NewSingleSpanNoBorder(s string, align text.Alignment) Row {
	return Row{Cells: []string{s}, Kind: SingleSpanNoBorder, Align: align}
}

func NewSingleSpanWithColor(s string, c geom.Color, align text.Alignment) Row {
	return Row{Cells: []string{s}, Kind: SingleSpanWithColor, Align: align, Color: c}
}

func NewSingleSpanNoBorderWithColor(s string, c geom.Color, align text.Alignment) Row {
	return Row{Cells: []string{s}, Kind: SingleSpanNoBorderWithColor, Align: align, Color: c}
}

// cell returns the i-th cell, or "" for a short row.
func (r Row) cell(i int) string {
	if i < len(r.Cells) {
		return r.Cells[i]
	}
	return ""
}
