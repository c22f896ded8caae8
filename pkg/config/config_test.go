package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 8.5, cfg.Page.WidthIn)
	assert.Equal(t, 72.0, cfg.Page.DPI)
	assert.Equal(t, "all", cfg.Table.Border)
	assert.True(t, cfg.Table.HeaderBorder)
	assert.Equal(t, "pageflow", cfg.Logger.ServiceName)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pageflow.yaml")
	content := []byte(`
page:
  dpi: 144
  top_margin_in: 1
table:
  border: inner
  header_border: false
logger:
  format: json
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 144.0, cfg.Page.DPI)
	assert.Equal(t, 1.0, cfg.Page.TopMarginIn)
	assert.Equal(t, 11.0, cfg.Page.HeightIn)
	assert.Equal(t, "inner", cfg.Table.Border)
	assert.False(t, cfg.Table.HeaderBorder)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PAGEFLOW_PAGE_DPI", "300")
	t.Setenv("PAGEFLOW_TABLE_BORDER", "outer")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 300.0, cfg.Page.DPI)
	assert.Equal(t, "outer", cfg.Table.Border)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero dpi", func(c *Config) { c.Page.DPI = 0 }, "page.dpi"},
		{"margins fill page", func(c *Config) { c.Page.TopMarginIn = 6; c.Page.BottomMarginIn = 5 }, "leave no room"},
		{"negative margin", func(c *Config) { c.Page.TopMarginIn = -1 }, "must not be negative"},
		{"unknown border", func(c *Config) { c.Table.Border = "dotted" }, "table.border"},
		{"zero font", func(c *Config) { c.Table.ItemFontSize = 0 }, "font sizes"},
		{"bad log format", func(c *Config) { c.Logger.Format = "xml" }, "logger.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
