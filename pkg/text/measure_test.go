package text

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pageflow/pkg/geom"
)

func TestGlyphTable_LineWidth(t *testing.T) {
	g := DefaultGlyphTable()

	assert.InDelta(t, 18.0, g.LineWidth("abc", NewFont(Courier, 10)), 1e-9)
	assert.InDelta(t, 16.12, g.LineWidth("abc", NewFont(Helvetica, 10)), 1e-9)
	// newlines do not advance
	assert.InDelta(t, 18.0, g.LineWidth("a\nbc", NewFont(Courier, 10)), 1e-9)
}

func TestGlyphTable_MissingGlyphIsOneEm(t *testing.T) {
	g := DefaultGlyphTable()
	assert.InDelta(t, 12.0, g.LineWidth("é", NewFont(Helvetica, 12)), 1e-9)
	assert.InDelta(t, 24.0, g.LineWidth("ab", NewFont("Unknown", 12)), 1e-9)
}

func TestGlyphTable_Descent(t *testing.T) {
	g := DefaultGlyphTable()
	assert.InDelta(t, 322.0*10/2048, g.Descent(NewFont(Courier, 10)), 1e-9)
	assert.Equal(t, 0.0, g.Descent(NewFont("Unknown", 10)))
}

func TestLineHeight(t *testing.T) {
	assert.InDelta(t, 0.0159708658854167*12*72*1.2, LineHeight(12, 72), 1e-9)
	assert.InDelta(t, 2*LineHeight(10, 72), LineHeight(10, 144), 1e-9)
}

func TestFaceMeasurer_BasicFont(t *testing.T) {
	m := NewFaceMeasurer()

	// 7 px advance per glyph at the face's nominal 13 px
	assert.InDelta(t, 21.0, m.LineWidth("abc", NewFont(Courier, 13)), 1e-9)
	assert.InDelta(t, 42.0, m.LineWidth("abc", NewFont(Courier, 26)), 1e-9)
	assert.InDelta(t, 2.0, m.Descent(NewFont(Courier, 13)), 1e-9)
}

func TestFont_WithColor(t *testing.T) {
	f := NewFont(Helvetica, 9)
	red := f.WithColor(geom.Red)
	assert.Equal(t, geom.Red, red.Color)
	assert.NotEqual(t, f.Color, red.Color)
}
