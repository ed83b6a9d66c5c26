// tactics is an interactive chess tactics trainer. It loads a catalog of
// exercises and lets the player solve them by selecting squares.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-tactics-go/internal/catalog"
	"github.com/lgbarn/chess-tactics-go/internal/config"
	"github.com/lgbarn/chess-tactics-go/internal/engine"
	"github.com/lgbarn/chess-tactics-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()
	os.Exit(run())
}

// run executes the command and returns the process exit code.
func run() int {
	if *help {
		usage()
		return 0
	}

	if *version {
		fmt.Printf("tactics version %s\n", programVersion)
		return 0
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	closeLog, err := setupLogFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		return 1
	}
	defer closeLog()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid options: %v\n", err)
		return 2
	}
	if err := validateFilters(cfg.Catalog); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid options: %v\n", err)
		return 2
	}
	log := cfg.Logger()

	if *profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profileDir), profile.Quiet).Stop()
	}

	// Draw a single position
	if *fenBoard != "" {
		return drawFEN(cfg, *fenBoard)
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	log.Info().Int("exercises", cat.Len()).Str("path", cfg.Catalog.Path).Msg("catalog loaded")

	switch {
	case *exportFile != "":
		if err := cat.Save(*exportFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		log.Info().Str("path", *exportFile).Msg("catalog exported")
		return 0
	case *auditMode:
		return audit(cfg, cat, log)
	case *listOnly:
		list, err := selectExercises(cat, cfg.Catalog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
		if err := writeExerciseList(cfg.OutputFile, list, cfg.Render.JSONFormat); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	return play(cfg, cat, log, os.Stdin)
}

// setupLogFile opens the -l log file. The returned func closes it.
func setupLogFile(cfg *config.Config) (func(), error) {
	if *logFile == "" {
		return func() {}, nil
	}
	file, err := os.Create(*logFile)
	if err != nil {
		return nil, err
	}
	cfg.LogFile = file
	return func() { file.Close() }, nil //nolint:errcheck,gosec // G104: cleanup on exit
}

// loadCatalog reads -catalog or falls back to the built-in exercises.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Builtin(), nil
	}
	return catalog.Load(cfg.Catalog.Path)
}

// drawFEN writes the position described by fen.
func drawFEN(cfg *config.Config, fen string) int {
	board, err := engine.DecodeFEN(fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	w := newSessionWriter(cfg)
	if err := w.WriteBoard(board, output.Highlight{}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// audit validates the catalog and replays every solution under full
// chess rules. It returns 1 when anything is wrong.
func audit(cfg *config.Config, cat *catalog.Catalog, log zerolog.Logger) int {
	status := 0
	if err := cat.Validate(); err != nil {
		fmt.Fprintf(cfg.OutputFile, "%v\n", err)
		status = 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	findings, err := cat.Audit(ctx, cfg.Workers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Audit interrupted: %v\n", err)
		return 1
	}

	problems := reportFindings(cfg.OutputFile, findings)
	dups := cat.DuplicatePositions()
	for _, d := range dups.Duplicates {
		problems++
		fmt.Fprintf(cfg.OutputFile, "DUP   %s (#%d) starts from the same position as %s\n", d.ExerciseID, d.Index, d.FirstID)
	}
	fmt.Fprintf(cfg.OutputFile, "%d distinct starting position(s)\n", dups.Distinct)
	if problems > 0 {
		status = 1
	}
	log.Info().Int("exercises", len(findings)).Int("distinct", dups.Distinct).Int("problems", problems).Msg("audit finished")

	if cfg.Verbosity > config.Quiet {
		fmt.Fprintf(os.Stderr, "%d exercise(s) audited, %d with problems.\n", len(findings), problems)
	}
	return status
}

// reportFindings prints each finding and returns how many had problems.
func reportFindings(w io.Writer, findings []catalog.Finding) int {
	problems := 0
	for _, f := range findings {
		if f.OK() {
			fmt.Fprintf(w, "ok    %s  %s\n", f.ExerciseID, f.SAN)
			continue
		}
		problems++
		fmt.Fprintf(w, "FAIL  %s (#%d)\n", f.ExerciseID, f.Index)
		for _, p := range f.Problems {
			fmt.Fprintf(w, "      %s\n", p)
		}
	}
	return problems
}

// play runs the interactive trainer on r.
func play(cfg *config.Config, cat *catalog.Catalog, log zerolog.Logger, r io.Reader) int {
	if err := cat.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid catalog: %v\n", err)
		return 1
	}
	if cat.Len() == 0 {
		fmt.Fprintln(os.Stderr, "Error: catalog is empty")
		return 1
	}

	start := *playID
	if start == "" {
		start = cat.List()[0].ID
	}

	p := NewProcessor(cat, cfg, log)
	if err := p.Open(start); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := p.Run(r); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	sc := p.Score()
	log.Info().Int("solved", sc.Solved).Int("points", sc.Points).Msg("session finished")
	if cfg.Verbosity > config.Quiet && !cfg.Render.JSONFormat {
		fmt.Fprintf(os.Stderr, "%d exercise(s) solved, %d point(s).\n", sc.Solved, sc.Points)
	}
	return 0
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: tactics [options]\n\n")
	fmt.Fprintf(os.Stderr, "An interactive chess tactics trainer.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands while playing (type help for the full list):\n")
	fmt.Fprintf(os.Stderr, "  click e2    select a piece, then click its destination\n")
	fmt.Fprintf(os.Stderr, "  e2e4        play a move directly\n")
	fmt.Fprintf(os.Stderr, "  hint        show the hint\n")
	fmt.Fprintf(os.Stderr, "  solution    reveal the solution\n")
	fmt.Fprintf(os.Stderr, "  next        go to the next exercise\n")
	fmt.Fprintf(os.Stderr, "  quit        leave\n")
}
