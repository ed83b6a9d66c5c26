package config

import (
	"io"

	"github.com/lgbarn/chess-tactics-go/internal/puzzle"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithStrict selects strict judging.
func (b *ConfigBuilder) WithStrict(strict bool) *ConfigBuilder {
	if strict {
		b.cfg.Mode = puzzle.ModeStrict
	} else {
		b.cfg.Mode = puzzle.ModePractice
	}
	return b
}

// WithWorkers sets the audit worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithCatalogPath sets the catalog file.
func (b *ConfigBuilder) WithCatalogPath(path string) *ConfigBuilder {
	b.cfg.Catalog.Path = path
	return b
}

// WithDifficulty limits listings to one difficulty.
func (b *ConfigBuilder) WithDifficulty(d string) *ConfigBuilder {
	b.cfg.Catalog.Difficulty = d
	return b
}

// WithMaterial limits listings to positions matching a material pattern.
func (b *ConfigBuilder) WithMaterial(pattern string, exact bool) *ConfigBuilder {
	b.cfg.Catalog.Material = pattern
	b.cfg.Catalog.ExactMaterial = exact
	return b
}

// WithUnicode enables chess glyphs.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Render.Unicode = enabled
	return b
}

// WithCoordinates toggles board labels.
func (b *ConfigBuilder) WithCoordinates(enabled bool) *ConfigBuilder {
	b.cfg.Render.Coordinates = enabled
	return b
}

// WithTargets toggles move target markers.
func (b *ConfigBuilder) WithTargets(enabled bool) *ConfigBuilder {
	b.cfg.Render.ShowTargets = enabled
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Render.JSONFormat = enabled
	return b
}

// WithMaxLineLength sets the message wrap width.
func (b *ConfigBuilder) WithMaxLineLength(length int) *ConfigBuilder {
	b.cfg.Render.MaxLineLength = length
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithLogJSON selects JSON log lines.
func (b *ConfigBuilder) WithLogJSON(enabled bool) *ConfigBuilder {
	b.cfg.LogJSON = enabled
	return b
}
