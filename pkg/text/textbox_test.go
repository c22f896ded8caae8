package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pageflow/pkg/geom"
	"pageflow/pkg/layout"
	"pageflow/pkg/render"
)

func boxPlacement() layout.Placement {
	return layout.Placement{
		Rect:     geom.NewRect(10, 20, 100, 30),
		Geometry: geom.NewPageGeometry(8.5, 11, 72, 0.25, 0.25),
		Columns:  layout.FullWidth,
	}
}

func TestTextBox_Anchor(t *testing.T) {
	area := geom.NewRect(10, 20, 100, 30)
	courier := NewFont(Courier, 10)

	tests := []struct {
		name  string
		opts  []Option
		wantX float64
		wantY float64
	}{
		{"left bottom default", nil, 10, 50},
		{"left top", []Option{WithAlignment(LeftTop)}, 10, 30},
		{"center center", []Option{WithAlignment(CenterCenter)}, 51, 40},
		{"right top", []Option{WithAlignment(RightTop)}, 92, 30},
		{"left indent", []Option{WithAlignment(LeftBottom.Indented(0.5))}, 46, 50},
		{"right indent", []Option{WithAlignment(RightCenter.Indented(0.5))}, 56, 40},
		{"center ignores indent", []Option{WithAlignment(CenterBottom.Indented(1))}, 51, 50},
		{"descent compensated", []Option{WithDescentCompensation()}, 10, 50 - 322.0*10/2048},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := NewTextBox("abc", courier, tt.opts...).Anchor(area, 72)
			assert.InDelta(t, tt.wantX, x, 1e-9)
			assert.InDelta(t, tt.wantY, y, 1e-9)
		})
	}
}

func TestTextBox_DrawSequence(t *testing.T) {
	doc := render.NewDocument()
	box := NewTextBox("abc", NewFont(Courier, 10).WithColor(geom.Red), WithBackground(geom.Color{R: 0.9, G: 1, B: 1}))

	_, replaced := box.Draw(boxPlacement(), doc, nil)
	assert.False(t, replaced)

	page := doc.Page(0)
	require.Len(t, page, 7)
	ops := make([]render.Op, len(page))
	for i, ins := range page {
		ops[i] = ins.Op
	}
	assert.Equal(t, []render.Op{
		render.OpPush, render.OpClipRect, render.OpSetColor, render.OpFillRect,
		render.OpSetColor, render.OpText, render.OpPop,
	}, ops)
	assert.Equal(t, geom.Color{R: 0.9, G: 1, B: 1}, page[2].Color)
	assert.Equal(t, geom.Red, page[4].Color)
	assert.Equal(t, "abc", page[5].Text)
	assert.Equal(t, geom.NewRect(10, 20, 100, 30), page[1].Rect)
}

func TestTextBox_DrawsInsideInterior(t *testing.T) {
	doc := render.NewDocument()
	p := boxPlacement()
	interior := geom.NewRect(12, 22, 96, 26)
	p.Interior = &interior

	NewTextBox("abc", NewFont(Courier, 10)).Draw(p, doc, nil)
	assert.Equal(t, interior, doc.Page(0)[1].Rect)
	assert.Equal(t, interior, doc.Page(0)[3].Rect)
}

func TestTextBox_Border(t *testing.T) {
	t.Run("immediate", func(t *testing.T) {
		doc := render.NewDocument()
		NewTextBox("abc", NewFont(Courier, 10), WithBorder(SingleBorder(2))).Draw(boxPlacement(), doc, nil)
		assert.Equal(t, 1, doc.Count(0, render.OpStrokeRect))
	})

	t.Run("deferred", func(t *testing.T) {
		doc := render.NewDocument()
		borders := layout.NewBorderCollector()
		NewTextBox("abc", NewFont(Courier, 10), WithBorder(SingleBorder(2))).Draw(boxPlacement(), doc, borders)
		assert.Equal(t, 0, doc.Count(0, render.OpStrokeRect))
		require.Equal(t, 1, borders.Len())
		assert.Equal(t, 2.0, borders.Records()[0].Thickness)
		assert.Equal(t, geom.Black, borders.Records()[0].Color)
	})

	t.Run("none", func(t *testing.T) {
		doc := render.NewDocument()
		borders := layout.NewBorderCollector()
		NewTextBox("abc", NewFont(Courier, 10)).Draw(boxPlacement(), doc, borders)
		assert.Equal(t, 0, borders.Len())
	})
}

func TestTextBox_PlacedThroughEngine(t *testing.T) {
	e := layout.NewEngine(8.5, 11, 72, 0.25, 0.25)
	doc := render.NewDocument()
	box := NewTextBox("Title", NewFont(Helvetica, 14), WithGroup(3))

	p := e.PlaceNow(LineHeight(14, 72), layout.Cols(0, 50), doc, box, nil)

	assert.Equal(t, 18.0, p.Rect.Y)
	bounds := e.GroupBounds()[3]
	require.Len(t, bounds, 1)
	assert.Equal(t, p.Rect.X, bounds[0].X)
	assert.Equal(t, p.Rect.Y, bounds[0].Y)
	assert.Equal(t, p.Rect.Width, bounds[0].Width)
	assert.InDelta(t, p.Rect.Height, bounds[0].Height, 1e-9)
	next := e.RequestNextPosition(layout.Cols(0, 50), false)
	assert.InDelta(t, p.Rect.Bottom(), next.Rect.Y, 1e-9)
}

func TestAlignment_String(t *testing.T) {
	assert.Equal(t, "left-bottom", LeftBottom.String())
	assert.Equal(t, "right-center+0.5in", RightCenter.Indented(0.5).String())
}
