// Package config provides configuration for the tactics trainer.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-tactics-go/internal/errors"
	"github.com/lgbarn/chess-tactics-go/internal/puzzle"
)

// Verbosity levels.
const (
	Quiet   = -1 // errors only
	Normal  = 0  // warnings
	Verbose = 1  // session events
	Debug   = 2  // every judged move
)

// Config holds all program configuration.
type Config struct {
	Verbosity int

	// Mode selects practice or strict judging for new sessions.
	Mode puzzle.Mode

	// Workers is the number of goroutines used by catalog audits.
	Workers int

	Render  *RenderConfig
	Catalog *CatalogConfig

	// LogJSON writes structured JSON log lines instead of console text.
	LogJSON bool

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Normal,
		Mode:       puzzle.ModePractice,
		Workers:    1,
		Render:     NewRenderConfig(),
		Catalog:    NewCatalogConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate reports every invalid setting. The result wraps ErrInvalidConfig.
// Catalog filter values are checked by the command that applies them.
func (c *Config) Validate() error {
	var result *multierror.Error
	add := func(format string, args ...interface{}) {
		result = multierror.Append(result,
			errors.Wrap(errors.ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}

	if c.Verbosity < Quiet {
		add("verbosity %d below %d", c.Verbosity, Quiet)
	}
	if c.Workers < 1 {
		add("workers must be at least 1, got %d", c.Workers)
	}
	if c.Mode != puzzle.ModePractice && c.Mode != puzzle.ModeStrict {
		add("unknown mode %d", int(c.Mode))
	}
	if c.OutputFile == nil {
		add("no output writer")
	}
	if c.Render == nil {
		add("no render settings")
	} else if c.Render.MaxLineLength != 0 && c.Render.MaxLineLength < MinLineLength {
		add("line length %d below %d", c.Render.MaxLineLength, MinLineLength)
	}
	if c.Catalog == nil {
		add("no catalog settings")
	}
	return result.ErrorOrNil()
}
