package listbox

import (
	"go.uber.org/zap"

	"pageflow/pkg/format"
	"pageflow/pkg/geom"
	"pageflow/pkg/layout"
	"pageflow/pkg/render"
	"pageflow/pkg/text"
)

// rowPlan is the decision for one drawn row.
type rowPlan struct {
	role      Role
	force     bool
	height    float64 // pixel height of every cell, borders included
	topBorder bool
	bottom    bool
	zeroTop   bool
}

// position finds where row i can go and how it is classified. A row that
// does not fit is retried once on a fresh page, where it always fits.
func (lb *ListBox) position(table layout.ColumnRange, h, next float64, first, last bool) (Outcome, layout.Placement, bool) {
	inner, outer := lb.style.halves()
	force := false
	for {
		p := lb.engine.RequestNextPosition(table, force)
		rem := p.Remaining
		s := rowState{
			last:        last,
			newPage:     p.IsNewPage,
			roomHeader:  rem > (lb.headerHeight+outer+inner)+(h+outer+inner),
			roomRowNext: rem >= (h+2*inner)+(next+outer+inner),
			roomRow:     rem >= h+outer+inner || force,
			first:       first,
		}
		out := classify(s)
		if out != Retry {
			return out, p, force
		}
		lb.logger.Debug("row moves to next page",
			zap.Int("page", p.Page), zap.Float64("remaining", rem), zap.Float64("height", h))
		force = true
	}
}

// resolve turns an outcome into the role drawn, given whether the current
// page segment already has its top border.
func (lb *ListBox) resolve(out Outcome, segmentOpen bool) Role {
	switch out {
	case Lead:
		if lb.hasHeader() {
			return RoleHeader
		}
		return RoleTop
	case LeadOrFull:
		if lb.hasHeader() {
			return RoleHeader
		}
		return RoleFullPageItem
	case FullPage:
		return RoleFullPageItem
	case Bottom:
		return RoleBottom
	default:
		if !segmentOpen {
			return RoleItemWithTopBorder
		}
		return RoleItem
	}
}

func (lb *ListBox) plan(role Role, h float64, segmentOpen, afterBorderlessHeader bool) rowPlan {
	inner, outer := lb.style.halves()
	pl := rowPlan{role: role, zeroTop: afterBorderlessHeader}
	switch role {
	case RoleHeader:
		if lb.headerBorder {
			pl.height = lb.headerHeight + outer + inner
			pl.topBorder = true
			break
		}
		pl.bottom = true
		pl.zeroTop = true
		switch lb.style.Kind {
		case AllBorders, OuterOnly:
			pl.height = lb.headerHeight + outer
		case InnerOnly:
			pl.height = lb.headerHeight + inner
		default:
			pl.height = lb.headerHeight
		}
	case RoleTop, RoleItemWithTopBorder:
		pl.height = h + outer + inner
		pl.topBorder = true
	case RoleItem:
		pl.height = h + 2*inner
	case RoleBottom:
		pl.bottom = true
		if !segmentOpen {
			pl.topBorder = true
			pl.height = h + 2*outer
		} else {
			pl.height = h + outer + inner
		}
	case RoleFullPageItem:
		pl.height = h + 2*outer
		pl.topBorder = true
		pl.bottom = true
	}
	return pl
}

// Draw lays out every row starting at p and returns the table's extent on
// its final page. An empty table draws nothing.
func (lb *ListBox) Draw(p layout.Placement, sink render.Sink, borders *layout.BorderCollector) (layout.Placement, bool) {
	lb.extents = nil
	lb.placed = nil
	if len(lb.rows) == 0 {
		return layout.Placement{}, false
	}
	table := p.Columns

	// level every slot of the table to its lowest cursor
	lb.engine.PlaceNow(0, table, sink, layout.Spacer{GroupID: lb.group}, borders)

	var (
		lines       separators
		first       = true
		indexOnPage = 0
		segmentOpen bool
		segmentTop  float64
		afterHeader bool // previous row was a borderless header
		page        = -1
		pageTop     float64
		bottom      float64
	)
	for i := 0; i < len(lb.rows); {
		last := i == len(lb.rows)-1
		h, next := lb.heights(i)
		out, cand, force := lb.position(table, h, next, first, last)
		if cand.IsNewPage || out == Lead || out == LeadOrFull {
			indexOnPage = 0
		}
		if cand.IsNewPage {
			segmentOpen = false
			afterHeader = false
		}
		role := lb.resolve(out, segmentOpen)
		pl := lb.plan(role, h, segmentOpen, afterHeader)
		pl.force = force

		header := role == RoleHeader
		src := lb.rows[i]
		font := lb.itemFont
		if header {
			src = *lb.header
			font = lb.headerFont
		}
		single := !header && src.Kind.singleSpan()

		background := lb.rowColor(indexOnPage)
		if lb.borderlessHeader() && !cand.IsNewPage && indexOnPage > 0 {
			background = lb.rowColor(indexOnPage + 1)
		}

		firstCell, lastCell := lb.drawCells(sink, borders, table, src, font, pl, single, header, background)
		y := firstCell.Rect.Y

		if pl.topBorder {
			segmentTop = y
			segmentOpen = true
		}
		switch role {
		case RoleBottom:
			lb.extents = append(lb.extents, VerticalExtent{Page: firstCell.Page, Top: segmentTop, Bottom: y + pl.height})
		case RoleFullPageItem:
			lb.extents = append(lb.extents, VerticalExtent{Page: firstCell.Page, Top: y, Bottom: y + pl.height})
		}

		if !(header && !lb.headerBorder) {
			lines.track(firstCell.Page, firstCell.Rect, single)
		}
		if header && !lb.headerBorder {
			lines.ignoreAbove = 1
		}
		if lines.horizontal(indexOnPage, !header && src.Kind.suppressesBorder()) {
			lb.drawHorizontal(sink, firstCell, lastCell)
		}
		if role.endsSegment() {
			lb.flushVerticals(sink, &lines, table)
			segmentOpen = false
			segmentTop = 0
		}

		if firstCell.Page != page {
			page = firstCell.Page
			pageTop = y
		}
		bottom = y + pl.height
		lb.placed = append(lb.placed, Placed{
			Row:  i,
			Role: role,
			Page: firstCell.Page,
			Rect: geom.Bounds([]geom.Rect{firstCell.Rect, lastCell.Rect}),
		})
		lb.logger.Debug("row placed",
			zap.Int("row", i), zap.Stringer("role", role),
			zap.Int("page", firstCell.Page), zap.Float64("y", y), zap.Float64("height", pl.height))

		if !header {
			i++
		}
		afterHeader = header && !lb.headerBorder
		first = false
		indexOnPage++
	}
	lb.flushVerticals(sink, &lines, table)
	lb.drawFrame(sink, borders, table)

	g := lb.engine.Geometry()
	return layout.Placement{
		Rect: geom.Rect{
			X:      g.WidthPx * float64(table.Start) / 100,
			Y:      pageTop,
			Width:  g.WidthPx * float64(table.Len()) / 100,
			Height: bottom - pageTop,
		},
		Page:      page,
		Remaining: g.HeightPx - g.BottomMarginPx - bottom,
		Geometry:  g,
		Columns:   table,
	}, true
}

// drawCells places and draws the cells of one row and returns the first and
// last cell placements.
func (lb *ListBox) drawCells(sink render.Sink, borders *layout.BorderCollector, table layout.ColumnRange,
	src Row, font text.Font, pl rowPlan, single, header bool, background geom.Color) (first, last layout.Placement) {
	cols := lb.columns(table)
	if single {
		cols = []layout.ColumnRange{table}
	}
	for c, cr := range cols {
		hd := lb.engine.Handle(cr, pl.force)
		hd.SetHeight(pl.height)
		hd.SetRestrictedInterior(lb.style.insets(edges{
			top:     pl.topBorder,
			left:    c == 0,
			right:   c == len(cols)-1,
			bottom:  pl.bottom,
			zeroTop: pl.zeroTop,
		}, lb.margin))

		s, color := src.cell(c), font.Color
		align := src.Align
		if !single {
			s, color = format.Cell(lb.columnType(c), s, font.Color, header)
			align = lb.alignment(c, header)
		} else if src.Kind.colored() {
			color = src.Color
		}

		opts := []text.Option{text.WithAlignment(align), text.WithBackground(background)}
		if lb.measurer != nil {
			opts = append(opts, text.WithMeasurer(lb.measurer))
		}
		if !(header && !lb.headerBorder) {
			opts = append(opts, text.WithGroup(lb.group))
		}
		hd.Draw(text.NewTextBox(s, font.WithColor(color), opts...), sink, borders)

		if c == 0 {
			first = hd.Placement()
		}
		last = hd.Placement()
	}
	return first, last
}
