package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pageflow/pkg/geom"
)

func TestDocumentGrowsOnDemand(t *testing.T) {
	doc := NewDocument()
	assert.Equal(t, 0, doc.PageCount())

	doc.EnsurePageCapacity(2)
	assert.Equal(t, 3, doc.PageCount())

	doc.EnsurePageCapacity(1)
	assert.Equal(t, 3, doc.PageCount(), "capacity never shrinks")
}

func TestDocumentAppendToMissingPagePanics(t *testing.T) {
	doc := NewDocument()
	assert.Panics(t, func() {
		doc.Append(0, Instruction{Op: OpPush})
	})
}

func TestDrawRectangle(t *testing.T) {
	doc := NewDocument()
	r := geom.NewRect(10, 20, 30, 40)
	DrawRectangle(doc, 1, r, 2, geom.Red)

	require.Equal(t, 2, doc.PageCount())
	ops := doc.Page(1)
	require.Len(t, ops, 5)
	assert.Equal(t, OpPush, ops[0].Op)
	assert.Equal(t, geom.Red, ops[1].Color)
	assert.Equal(t, 2.0, ops[2].Width)
	assert.Equal(t, r, ops[3].Rect)
	assert.Equal(t, OpPop, ops[4].Op)
	assert.Empty(t, doc.Page(0))
}

func TestDrawLines(t *testing.T) {
	doc := NewDocument()
	DrawHorizontalLine(doc, 0, 100, 10, 50, 1, geom.Black)
	DrawVerticalLine(doc, 0, 100, 30, 25, 1, geom.Black)

	require.Equal(t, 2, doc.Count(0, OpLine))
	var lines []Instruction
	for _, ins := range doc.Page(0) {
		if ins.Op == OpLine {
			lines = append(lines, ins)
		}
	}
	assert.Equal(t, Instruction{Op: OpLine, X1: 10, Y1: 100, X2: 60, Y2: 100}, lines[0])
	assert.Equal(t, Instruction{Op: OpLine, X1: 30, Y1: 100, X2: 30, Y2: 125}, lines[1])
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "stroke-rect", OpStrokeRect.String())
	assert.Equal(t, "op(99)", Op(99).String())
}
