package layout

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"pageflow/pkg/geom"
	"pageflow/pkg/render"
)

// GridSlots is the number of percentage slots across the page.
const GridSlots = 100

// GroupID tags placements so a bounding rectangle per page can be derived.
type GroupID int

// NoGroup marks a placement that belongs to no group.
const NoGroup GroupID = -1

type slot struct {
	page   int
	cursor float64
}

// Engine tracks, for every percentage slot, the page and vertical cursor of
// the most recent committed placement covering it. Every Handle created from
// an Engine shares it, so nested content (a table's cells while the table's
// own handle is pending) sees one column grid.
//
// Each method locks the engine, but a request/height/draw/commit sequence
// for one item is not atomic; concurrent callers must serialize whole items.
type Engine struct {
	mu       sync.Mutex
	geometry geom.PageGeometry
	columns  []slot
	groups   map[GroupID][][]geom.Rect
	logger   *zap.Logger
}

// NewEngine creates an engine for a page of the given size in inches.
func NewEngine(widthIn, heightIn, dpi, topMarginIn, bottomMarginIn float64) *Engine {
	return NewEngineWithGeometry(geom.NewPageGeometry(widthIn, heightIn, dpi, topMarginIn, bottomMarginIn))
}

// NewEngineWithGeometry creates an engine from pixel geometry.
func NewEngineWithGeometry(g geom.PageGeometry) *Engine {
	e := &Engine{
		geometry: g,
		columns:  make([]slot, GridSlots),
		groups:   make(map[GroupID][][]geom.Rect),
		logger:   zap.NewNop(),
	}
	for i := range e.columns {
		e.columns[i] = slot{page: 0, cursor: g.TopMarginPx}
	}
	return e
}

// SetLogger sets the logger used for page advances and range clamping.
func (e *Engine) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	e.logger = logger
}

func (e *Engine) Logger() *zap.Logger { return e.logger }

func (e *Engine) Geometry() geom.PageGeometry { return e.geometry }

// PageDims returns page width, height and dpi in pixels.
func (e *Engine) PageDims() (width, height, dpi float64) {
	return e.geometry.WidthPx, e.geometry.HeightPx, e.geometry.DPI
}

// Margins returns the top and bottom margins in pixels.
func (e *Engine) Margins() (top, bottom float64) {
	return e.geometry.TopMarginPx, e.geometry.BottomMarginPx
}

func (e *Engine) ColumnCount() int { return len(e.columns) }

// LastPageIndex is the highest page index any slot has reached.
func (e *Engine) LastPageIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	page, _ := e.reference(FullWidth)
	return page
}

// PageCount is the number of pages touched so far.
func (e *Engine) PageCount() int {
	return e.LastPageIndex() + 1
}

// clamp keeps a caller-supplied range inside the grid. Out-of-range values are
// tolerated rather than rejected: a start past the grid resets to 0 and an end
// past the grid clamps to the last slot.
func (e *Engine) clamp(c ColumnRange) ColumnRange {
	n := len(e.columns)
	orig := c
	if c.Start > n || c.Start < 0 {
		c.Start = 0
	}
	if c.End > n {
		c.End = n - 1
	}
	if c.End <= c.Start {
		if c.Start >= n {
			c.Start = n - 1
		}
		c.End = c.Start + 1
	}
	if c != orig {
		e.logger.Debug("column range clamped",
			zap.Stringer("requested", orig), zap.Stringer("used", c))
	}
	return c
}

// reference returns the highest page over c and the lowest free cursor on that
// page. Slots still on an earlier page count as cursor 0.
func (e *Engine) reference(c ColumnRange) (int, float64) {
	page := 0
	for _, s := range e.columns[c.Start:c.End] {
		if s.page > page {
			page = s.page
		}
	}
	cursor := 0.0
	for _, s := range e.columns[c.Start:c.End] {
		if s.page == page && s.cursor > cursor {
			cursor = s.cursor
		}
	}
	return page, cursor
}

// RequestNextPosition computes where the next item over c would go. It never
// fails; the returned placement has zero height.
func (e *Engine) RequestNextPosition(c ColumnRange, forceNewPage bool) Placement {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.requestLocked(c, forceNewPage)
}

func (e *Engine) requestLocked(c ColumnRange, forceNewPage bool) Placement {
	c = e.clamp(c)
	g := e.geometry
	page, cursor := e.reference(c)
	isNewPage := false
	switch {
	case forceNewPage:
		page++
		cursor = g.TopMarginPx
		isNewPage = true
		e.logger.Debug("page advance", zap.Int("page", page), zap.Stringer("columns", c))
	case cursor < g.TopMarginPx:
		cursor = g.TopMarginPx
		isNewPage = true
	}
	return Placement{
		Rect: geom.Rect{
			X:      g.WidthPx * float64(c.Start) / 100,
			Y:      cursor,
			Width:  g.WidthPx * float64(c.Len()) / 100,
			Height: 0,
		},
		Page:      page,
		IsNewPage: isNewPage,
		Remaining: g.HeightPx - g.BottomMarginPx - cursor,
		Geometry:  g,
		Columns:   c,
	}
}

// Commit records p as the latest content over its columns. Slots are
// overwritten, not merged, so composites must commit their final placement.
func (e *Engine) Commit(p Placement, group GroupID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	c := e.clamp(p.Columns)
	bottom := p.Rect.Y + p.Rect.Height
	for i := c.Start; i < c.End; i++ {
		e.columns[i] = slot{page: p.Page, cursor: bottom}
	}
	if group == NoGroup {
		return
	}
	pages := e.groups[group]
	for len(pages) <= p.Page {
		pages = append(pages, nil)
	}
	pages[p.Page] = append(pages[p.Page], p.Rect)
	e.groups[group] = pages
}

// GroupBounds returns, per group, one bounding rectangle per page. Pages a
// group never touched get the zero Rect.
func (e *Engine) GroupBounds() map[GroupID][]geom.Rect {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[GroupID][]geom.Rect, len(e.groups))
	for id, pages := range e.groups {
		bounds := make([]geom.Rect, len(pages))
		for i, rects := range pages {
			bounds[i] = geom.Bounds(rects)
		}
		out[id] = bounds
	}
	return out
}

// Groups returns the group ids in ascending order.
func (e *Engine) Groups() []GroupID {
	e.mu.Lock()
	defer e.mu.Unlock()
	ids := make([]GroupID, 0, len(e.groups))
	for id := range e.groups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Handle starts a placement over c.
func (e *Engine) Handle(c ColumnRange, forceNewPage bool) *Handle {
	return &Handle{
		engine:    e,
		placement: e.RequestNextPosition(c, forceNewPage),
	}
}

// PlaceNow requests a position over c, sets its height, draws d and commits.
func (e *Engine) PlaceNow(height float64, c ColumnRange, sink render.Sink, d Drawable, borders *BorderCollector) Placement {
	h := e.Handle(c, false)
	h.SetHeight(height)
	h.Draw(d, sink, borders)
	return h.Placement()
}
