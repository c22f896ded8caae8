// Package config loads page, table and logger settings with viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. PAGEFLOW_PAGE_DPI.
const EnvPrefix = "PAGEFLOW"

type Config struct {
	Page   PageConfig   `mapstructure:"page" yaml:"page"`
	Table  TableConfig  `mapstructure:"table" yaml:"table"`
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
}

// PageConfig is the page setup in inches.
type PageConfig struct {
	WidthIn        float64 `mapstructure:"width_in" yaml:"width_in"`
	HeightIn       float64 `mapstructure:"height_in" yaml:"height_in"`
	DPI            float64 `mapstructure:"dpi" yaml:"dpi"`
	TopMarginIn    float64 `mapstructure:"top_margin_in" yaml:"top_margin_in"`
	BottomMarginIn float64 `mapstructure:"bottom_margin_in" yaml:"bottom_margin_in"`
}

// TableConfig holds the defaults for tables in generated reports.
type TableConfig struct {
	Border         string  `mapstructure:"border" yaml:"border"`
	InnerThickness float64 `mapstructure:"inner_thickness" yaml:"inner_thickness"`
	OuterThickness float64 `mapstructure:"outer_thickness" yaml:"outer_thickness"`
	HeaderBorder   bool    `mapstructure:"header_border" yaml:"header_border"`
	ItemFont       string  `mapstructure:"item_font" yaml:"item_font"`
	ItemFontSize   float64 `mapstructure:"item_font_size" yaml:"item_font_size"`
	HeaderFont     string  `mapstructure:"header_font" yaml:"header_font"`
	HeaderFontSize float64 `mapstructure:"header_font_size" yaml:"header_font_size"`
	InteriorMargin float64 `mapstructure:"interior_margin" yaml:"interior_margin"`
	DeferBorders   bool    `mapstructure:"defer_borders" yaml:"defer_borders"`
	Rows           int     `mapstructure:"rows" yaml:"rows"`
	Seed           int64   `mapstructure:"seed" yaml:"seed"`
}

type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// SetDefaults registers every key with its default, which also makes each
// key visible to environment overrides.
func SetDefaults(v *viper.Viper) {
	// -- Page --
	v.SetDefault("page.width_in", 8.5)
	v.SetDefault("page.height_in", 11.0)
	v.SetDefault("page.dpi", 72.0)
	v.SetDefault("page.top_margin_in", 0.5)
	v.SetDefault("page.bottom_margin_in", 0.5)

	// -- Table --
	v.SetDefault("table.border", "all")
	v.SetDefault("table.inner_thickness", 1.0)
	v.SetDefault("table.outer_thickness", 2.0)
	v.SetDefault("table.header_border", true)
	v.SetDefault("table.item_font", "Courier")
	v.SetDefault("table.item_font_size", 10.0)
	v.SetDefault("table.header_font", "Helvetica")
	v.SetDefault("table.header_font_size", 12.0)
	v.SetDefault("table.interior_margin", 0.2)
	v.SetDefault("table.defer_borders", true)
	v.SetDefault("table.rows", 120)
	v.SetDefault("table.seed", 1)

	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "pageflow")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)
}

func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// New returns a viper instance with defaults and environment overrides set
// up. When path is not empty the file is read as well.
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	return v, nil
}

// Load reads the config file at path (optional) and validates the result.
func Load(path string) (*Config, error) {
	v, err := New(path)
	if err != nil {
		return nil, err
	}
	return NewConfigFromViper(v)
}

func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	p := c.Page
	if p.WidthIn <= 0 || p.HeightIn <= 0 {
		return fmt.Errorf("page size must be positive, got %gx%g in", p.WidthIn, p.HeightIn)
	}
	if p.DPI <= 0 {
		return fmt.Errorf("page.dpi must be positive, got %g", p.DPI)
	}
	if p.TopMarginIn < 0 || p.BottomMarginIn < 0 {
		return fmt.Errorf("page margins must not be negative")
	}
	if p.TopMarginIn+p.BottomMarginIn >= p.HeightIn {
		return fmt.Errorf("page margins (%g in) leave no room on a %g in page",
			p.TopMarginIn+p.BottomMarginIn, p.HeightIn)
	}

	t := c.Table
	switch t.Border {
	case "none", "inner", "outer", "all":
	default:
		return fmt.Errorf("table.border must be one of none, inner, outer, all; got %q", t.Border)
	}
	if t.InnerThickness < 0 || t.OuterThickness < 0 {
		return fmt.Errorf("table border thickness must not be negative")
	}
	if t.ItemFontSize <= 0 || t.HeaderFontSize <= 0 {
		return fmt.Errorf("table font sizes must be positive")
	}
	if t.Rows < 0 {
		return fmt.Errorf("table.rows must not be negative, got %d", t.Rows)
	}

	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be console or json, got %q", c.Logger.Format)
	}
	return nil
}
