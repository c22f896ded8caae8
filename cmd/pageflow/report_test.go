package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"pageflow/pkg/config"
	"pageflow/pkg/listbox"
	"pageflow/pkg/render"
	"pageflow/pkg/text"
)

func testConfig(rows int) *config.Config {
	cfg := config.NewDefaultConfig()
	cfg.Table.Rows = rows
	return cfg
}

func TestLedgerRows(t *testing.T) {
	rows, heights := ledgerRows(50, 3)

	// 50 accounts, 5 subtotals, 2 section notes
	require.Len(t, rows, 57)
	assert.Len(t, heights, len(rows))
	assert.Equal(t, listbox.SingleSpanWithColor, rows[10].Kind)
	assert.Equal(t, listbox.SingleSpanNoBorder, rows[27].Kind)

	again, _ := ledgerRows(50, 3)
	assert.Equal(t, rows, again)
}

func TestBuildReport_DrawsEveryRowOnce(t *testing.T) {
	r := buildReport(testConfig(80), zap.NewNop(), text.DefaultGlyphTable())

	rows, _ := ledgerRows(80, 1)
	seen := make(map[int]int)
	for _, p := range r.table.Placements() {
		if p.Role != listbox.RoleHeader {
			seen[p.Row]++
		}
	}
	require.Len(t, seen, len(rows))
	for i := range rows {
		assert.Equal(t, 1, seen[i], "row %d", i)
	}

	assert.Greater(t, r.doc.PageCount(), 1)
	assert.Equal(t, r.engine.PageCount(), r.doc.PageCount())
	// one frame per page segment, flushed from the deferred collector
	frames := 0
	for i := 0; i < r.doc.PageCount(); i++ {
		frames += r.doc.Count(i, render.OpStrokeRect)
	}
	assert.Equal(t, len(r.table.Extents()), frames)
}

func TestBuildReport_TableStartsBelowTitle(t *testing.T) {
	r := buildReport(testConfig(5), zap.NewNop(), text.DefaultGlyphTable())

	title := r.engine.GroupBounds()[titleGroup][0]
	first := r.table.Placements()[0]
	assert.Equal(t, 0, first.Page)
	assert.InDelta(t, title.Bottom(), first.Rect.Y, 1e-9)
}

func TestBorderStyle(t *testing.T) {
	tc := config.TableConfig{InnerThickness: 1, OuterThickness: 3}
	for border, want := range map[string]listbox.BorderStyle{
		"none":  listbox.None(),
		"inner": listbox.Inner(1),
		"outer": listbox.Outer(3),
		"all":   listbox.All(1, 3),
	} {
		tc.Border = border
		assert.Equal(t, want, borderStyle(tc), border)
	}
}

func TestReportCommand(t *testing.T) {
	dump := filepath.Join(t.TempDir(), "doc.yaml")
	out := new(bytes.Buffer)
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetArgs([]string{"report", "--rows", "30", "--seed", "7", "--log-level", "error", "--dump", dump})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "title")
	assert.Contains(t, out.String(), "table")
	assert.Contains(t, out.String(), "Wrote instructions to "+dump)

	data, err := os.ReadFile(dump)
	require.NoError(t, err)
	var pages []struct {
		Page         int                      `yaml:"page"`
		Instructions []map[string]interface{} `yaml:"instructions"`
	}
	require.NoError(t, yaml.Unmarshal(data, &pages))
	require.NotEmpty(t, pages)
	assert.Equal(t, 0, pages[0].Page)
	require.NotEmpty(t, pages[0].Instructions)
	assert.Equal(t, "push", pages[0].Instructions[0]["op"])
}

func TestReportCommand_BadConfig(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"report", "--config", filepath.Join(t.TempDir(), "nope.yaml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

