// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chess-tactics-go/internal/config"
	"github.com/lgbarn/chess-tactics-go/internal/puzzle"
)

var (
	// Catalog options
	catalogFile = flag.String("catalog", "", "Exercise catalog JSON file (default: built-in)")
	listOnly    = flag.Bool("list", false, "List exercises and exit")
	difficulty  = flag.String("difficulty", "", "With -list, show only this difficulty (beginner, intermediate, advanced, master)")
	tactic      = flag.String("tactic", "", "With -list, show only this tactic")
	material    = flag.String("material", "", "With -list, show only positions with at least this material, e.g. QR:q")
	exactMat    = flag.Bool("exactmaterial", false, "With -material, require exactly the listed pieces")
	auditMode   = flag.Bool("audit", false, "Validate the catalog and check every solution under full chess rules")
	exportFile  = flag.String("export", "", "Write the catalog as JSON to this file and exit")

	// Play options
	playID     = flag.String("play", "", "Start with the exercise with this ID (default: first)")
	strictMode = flag.Bool("strict", false, "Accept only the solution move; wrong moves leave the board untouched")
	fenBoard   = flag.String("fen", "", "Draw the position in this FEN and exit")

	// Output options
	unicodeBoard = flag.Bool("unicode", false, "Draw pieces as chess glyphs")
	noCoords     = flag.Bool("nocoords", false, "Don't draw rank and file labels")
	showTargets  = flag.Bool("targets", true, "Mark the squares the selected piece may move to")
	jsonOutput   = flag.Bool("J", false, "Output JSON snapshots instead of diagrams")
	jsonIndent   = flag.Bool("indent", false, "Pretty-print JSON output")
	lineLength   = flag.Int("w", 72, "Maximum line length for hints and explanations")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to log file")
	logJSON = flag.Bool("logjson", false, "Write log lines as JSON")
	verbose = flag.Int("v", 0, "Log verbosity: 0=warnings, 1=session events, 2=every move")

	// Other options
	quiet      = flag.Bool("s", false, "Silent mode (errors only)")
	help       = flag.Bool("h", false, "Show help")
	version    = flag.Bool("version", false, "Show version")
	profileDir = flag.String("profile", "", "Write a CPU profile to this directory")

	// Performance options
	workers = flag.Int("workers", 0, "Number of audit workers (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyCatalogFlags(cfg)
	applyRenderFlags(cfg)

	cfg.Verbosity = *verbose
	if *quiet {
		cfg.Verbosity = config.Quiet
	}
	cfg.LogJSON = *logJSON

	cfg.Workers = *workers
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}

	if *strictMode {
		cfg.Mode = puzzle.ModeStrict
	}
}

// applyCatalogFlags configures catalog selection.
func applyCatalogFlags(cfg *config.Config) {
	cfg.Catalog.Path = *catalogFile
	cfg.Catalog.Difficulty = *difficulty
	cfg.Catalog.Tactic = *tactic
	cfg.Catalog.Material = *material
	cfg.Catalog.ExactMaterial = *exactMat
}

// applyRenderFlags configures board and message output.
func applyRenderFlags(cfg *config.Config) {
	cfg.Render.Unicode = *unicodeBoard
	cfg.Render.Coordinates = !*noCoords
	cfg.Render.ShowTargets = *showTargets
	cfg.Render.JSONFormat = *jsonOutput
	cfg.Render.Indent = *jsonIndent
	cfg.Render.MaxLineLength = *lineLength
}
