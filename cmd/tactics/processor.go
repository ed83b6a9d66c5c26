package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-tactics-go/internal/catalog"
	"github.com/lgbarn/chess-tactics-go/internal/chess"
	"github.com/lgbarn/chess-tactics-go/internal/config"
	"github.com/lgbarn/chess-tactics-go/internal/engine"
	"github.com/lgbarn/chess-tactics-go/internal/output"
	"github.com/lgbarn/chess-tactics-go/internal/puzzle"
)

// Message kinds written alongside boards.
const (
	kindInfo      = "info"
	kindError     = "error"
	kindHint      = "hint"
	kindSolution  = "solution"
	kindSolved    = "solved"
	kindRejected  = "rejected"
	kindPlayed    = "played"
	kindCorrect   = "correct"
	kindIncorrect = "incorrect"
	kindScore     = "score"
)

const helpText = `Commands:
  click SQ          select a piece or play the selected piece to SQ
  move FROM TO      play a move (also "move f3f5" or just "f3f5")
  targets SQ        show where the piece on SQ may move
  hint              show the hint
  solution          reveal the solution (no points)
  answer TEXT       check a written answer such as Qxf7#
  reset             restore the starting position
  board, status     show the current position
  open ID           switch to another exercise
  next              go to the next exercise
  list              list the exercises
  score             show solved exercises and points
  help              show this text
  quit              leave`

// Processor runs interactive commands against the open puzzle sessions.
type Processor struct {
	cfg     *config.Config
	cat     *catalog.Catalog
	reg     *puzzle.Registry
	out     output.SessionWriter
	log     zerolog.Logger
	current string
}

// NewProcessor creates a processor writing to cfg.OutputFile.
func NewProcessor(cat *catalog.Catalog, cfg *config.Config, log zerolog.Logger) *Processor {
	return &Processor{
		cfg: cfg,
		cat: cat,
		reg: puzzle.NewRegistry(puzzle.WithLogger(log)),
		out: newSessionWriter(cfg),
		log: log,
	}
}

// newSessionWriter picks the writer for the configured format.
func newSessionWriter(cfg *config.Config) output.SessionWriter {
	if cfg.Render.JSONFormat {
		return output.NewJSONWriter(cfg.OutputFile, cfg.Render.Indent)
	}
	return output.NewTextWriter(cfg.OutputFile,
		output.WithUnicode(cfg.Render.Unicode),
		output.WithCoordinates(cfg.Render.Coordinates),
		output.WithLineLength(cfg.Render.MaxLineLength),
	)
}

// Score returns the running tally.
func (p *Processor) Score() puzzle.Score {
	return p.reg.Score()
}

// Current returns the ID of the exercise being played.
func (p *Processor) Current() string {
	return p.current
}

// Open starts a fresh session for the exercise and shows it.
func (p *Processor) Open(id string) error {
	e, err := p.cat.Get(id)
	if err != nil {
		return err
	}
	s, err := e.NewSession(puzzle.WithMode(p.cfg.Mode))
	if err != nil {
		return err
	}
	if p.current != "" && p.current != id {
		p.reg.Close(p.current)
	}
	p.reg.Open(s)
	p.current = id

	if err := p.out.WriteMessage(kindInfo, fmt.Sprintf("%s (%s, %s, %d points)", e.Title, e.Tactic, e.Difficulty, e.Score())); err != nil {
		return err
	}
	if e.Description != "" {
		if err := p.out.WriteMessage("", e.Description); err != nil {
			return err
		}
	}
	return p.show(output.Highlight{})
}

// Run reads commands from r until EOF or quit.
func (p *Processor) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		quit, err := p.Execute(scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return p.out.Flush()
}

// Execute runs one command line. It reports whether the user asked to
// quit. Bad input is answered with an error message, not returned; the
// returned error is an output failure.
func (p *Processor) Execute(line string) (bool, error) {
	fields := splitCommand(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	p.log.Debug().Str("command", cmd).Strs("args", args).Msg("command")

	switch cmd {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		return false, p.writeHelp()
	case "list":
		return false, writeExerciseList(p.cfg.OutputFile, p.cat.List(), p.cfg.Render.JSONFormat)
	case "open":
		if len(args) != 1 {
			return false, p.userError("usage: open ID")
		}
		if err := p.Open(args[0]); err != nil {
			return false, p.userError(err.Error())
		}
		return false, nil
	case "next":
		return false, p.next()
	case "score":
		sc := p.reg.Score()
		return false, p.out.WriteMessage(kindScore, fmt.Sprintf("%d solved, %d points", sc.Solved, sc.Points))
	}

	if p.current == "" {
		return false, p.userError("no exercise open; use open ID")
	}

	switch cmd {
	case "click":
		if len(args) != 1 {
			return false, p.userError("usage: click SQ")
		}
		sq, err := chess.ParseSquare(args[0])
		if err != nil {
			return false, p.userError(err.Error())
		}
		return false, p.click(sq)
	case "move", "m":
		from, to, err := parseMove(args)
		if err != nil {
			return false, p.userError(err.Error())
		}
		return false, p.move(from, to)
	case "targets":
		if len(args) != 1 {
			return false, p.userError("usage: targets SQ")
		}
		sq, err := chess.ParseSquare(args[0])
		if err != nil {
			return false, p.userError(err.Error())
		}
		return false, p.targets(sq)
	case "hint":
		return false, p.hint()
	case "solution":
		return false, p.solution()
	case "answer":
		if len(args) == 0 {
			return false, p.userError("usage: answer TEXT")
		}
		return false, p.answer(strings.Join(args, " "))
	case "reset":
		if err := p.reg.Reset(p.current); err != nil {
			return false, err
		}
		return false, p.show(output.Highlight{})
	case "board", "status":
		return false, p.show(p.selectionHighlight())
	}

	// A bare move such as "f3f5".
	if len(args) == 0 {
		if from, to, err := parseMove(fields); err == nil {
			return false, p.move(from, to)
		}
	}
	return false, p.userError(fmt.Sprintf("unknown command %q; try help", fields[0]))
}

func (p *Processor) click(sq chess.Square) error {
	out, err := p.reg.Click(p.current, sq)
	if err != nil {
		return err
	}
	if out.Ignored {
		return p.ignored(sq)
	}
	if out.Transition == puzzle.PieceSelected || out.Transition == puzzle.AwaitingSelection {
		return p.show(p.selectionHighlight())
	}
	return p.judged(out)
}

func (p *Processor) move(from, to chess.Square) error {
	out, err := p.reg.Move(p.current, from, to)
	if err != nil {
		return err
	}
	if out.Ignored {
		return p.ignored(from)
	}
	return p.judged(out)
}

// ignored explains why an input did nothing.
func (p *Processor) ignored(sq chess.Square) error {
	var msg string
	err := p.reg.Do(p.current, func(s *puzzle.Session) error {
		switch {
		case s.Solved():
			msg = "exercise finished; use reset, next or open ID"
		case s.Board().IsEmpty(sq):
			msg = fmt.Sprintf("%s is empty", sq)
		default:
			msg = fmt.Sprintf("%s does not hold a %s piece you can move", sq, strings.ToLower(s.Turn().String()))
		}
		return nil
	})
	if err != nil {
		return err
	}
	return p.out.WriteMessage(kindInfo, msg)
}

// judged reports a move attempt and shows the resulting position.
func (p *Processor) judged(out puzzle.Outcome) error {
	return p.reg.Do(p.current, func(s *puzzle.Session) error {
		move := fmt.Sprintf("%s-%s", out.From, out.To)
		switch {
		case out.Solved:
			sol, _ := s.Solution()
			if err := p.out.WriteMessage(kindSolved, fmt.Sprintf("%s is correct! +%d points", move, s.Points())); err != nil {
				return err
			}
			if sol.Description != "" {
				if err := p.out.WriteMessage("", sol.Description); err != nil {
					return err
				}
			}
		case out.Rejected && s.Mode() == puzzle.ModeStrict:
			if err := p.out.WriteMessage(kindRejected, fmt.Sprintf("%s is not the solution; try again", move)); err != nil {
				return err
			}
		case out.Rejected:
			if err := p.out.WriteMessage(kindRejected, fmt.Sprintf("%s is not a legal move", move)); err != nil {
				return err
			}
		case out.Applied:
			if err := p.out.WriteMessage(kindPlayed, fmt.Sprintf("%s played, but it is not the solution; %s to move, or reset", move, strings.ToLower(s.Turn().String()))); err != nil {
				return err
			}
		}
		return p.out.WriteSession(s, output.SessionHighlight(s, p.cfg.Render.ShowTargets))
	})
}

func (p *Processor) targets(sq chess.Square) error {
	return p.reg.Do(p.current, func(s *puzzle.Session) error {
		board := s.Board()
		if board.IsEmpty(sq) {
			return p.out.WriteMessage(kindInfo, fmt.Sprintf("%s is empty", sq))
		}
		targets := engine.LegalTargets(board, sq)
		if len(targets) == 0 {
			if err := p.out.WriteMessage(kindInfo, fmt.Sprintf("the piece on %s cannot move", sq)); err != nil {
				return err
			}
		}
		return p.out.WriteBoard(board, output.NewHighlight(sq, targets))
	})
}

func (p *Processor) hint() error {
	return p.reg.Do(p.current, func(s *puzzle.Session) error {
		h, ok := s.Hint()
		if !ok {
			return p.out.WriteMessage(kindInfo, "no hint available")
		}
		if err := p.out.WriteMessage(kindHint, h.Message); err != nil {
			return err
		}
		if !h.Square.Valid() {
			return nil
		}
		var hl output.Highlight
		hl.Set(h.Square, output.MarkHint)
		return p.out.WriteBoard(s.Board(), hl)
	})
}

func (p *Processor) solution() error {
	return p.reg.Do(p.current, func(s *puzzle.Session) error {
		sol, ok := s.RevealSolution()
		if !ok {
			return p.out.WriteMessage(kindInfo, "this exercise has no stored solution")
		}
		p.log.Info().Str("exercise", s.ExerciseID()).Str("move", sol.Move).Msg("solution revealed")

		if err := p.out.WriteMessage(kindSolution, fmt.Sprintf("%s (%s-%s)", sol.Move, sol.From, sol.To)); err != nil {
			return err
		}
		if sol.Description != "" {
			if err := p.out.WriteMessage("", sol.Description); err != nil {
				return err
			}
		}
		return p.out.WriteBoard(s.Board(), output.NewHighlight(sol.From, []chess.Square{sol.To}))
	})
}

func (p *Processor) answer(text string) error {
	e, err := p.cat.Get(p.current)
	if err != nil {
		return err
	}
	correct := catalog.CheckAnswer(e, text)
	p.log.Info().Str("exercise", e.ID).Str("answer", text).Bool("correct", correct).Msg("answer checked")

	if correct {
		return p.out.WriteMessage(kindCorrect, fmt.Sprintf("%s is right: %s", text, e.Solution.Move))
	}
	msg := fmt.Sprintf("%s is not the answer", text)
	if e.Hint != nil && e.Hint.Message != "" {
		msg += "; hint: " + e.Hint.Message
	}
	return p.out.WriteMessage(kindIncorrect, msg)
}

func (p *Processor) next() error {
	list := p.cat.List()
	if len(list) == 0 {
		return p.userError("catalog is empty")
	}
	idx := 0
	for i, e := range list {
		if e.ID == p.current {
			idx = (i + 1) % len(list)
			break
		}
	}
	return p.Open(list[idx].ID)
}

func (p *Processor) show(h output.Highlight) error {
	return p.reg.Do(p.current, func(s *puzzle.Session) error {
		return p.out.WriteSession(s, h)
	})
}

func (p *Processor) selectionHighlight() output.Highlight {
	var h output.Highlight
	_ = p.reg.Do(p.current, func(s *puzzle.Session) error {
		h = output.SessionHighlight(s, p.cfg.Render.ShowTargets)
		return nil
	})
	return h
}

// writeHelp keeps the command table's layout in text mode.
func (p *Processor) writeHelp() error {
	if p.cfg.Render.JSONFormat {
		return p.out.WriteMessage("help", helpText)
	}
	if err := p.out.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(p.cfg.OutputFile, helpText)
	return err
}

func (p *Processor) userError(msg string) error {
	p.log.Debug().Str("error", msg).Msg("bad input")
	return p.out.WriteMessage(kindError, msg)
}

// parseMove accepts "f3 f5", "f3f5" and "f3-f5".
func parseMove(args []string) (chess.Square, chess.Square, error) {
	var fromName, toName string
	switch len(args) {
	case 1:
		s := strings.ReplaceAll(args[0], "-", "")
		if len(s) != 4 {
			return chess.NoSquare, chess.NoSquare, fmt.Errorf("cannot read move %q", args[0])
		}
		fromName, toName = s[:2], s[2:]
	case 2:
		fromName, toName = args[0], args[1]
	default:
		return chess.NoSquare, chess.NoSquare, fmt.Errorf("usage: move FROM TO")
	}

	from, err := chess.ParseSquare(fromName)
	if err != nil {
		return chess.NoSquare, chess.NoSquare, err
	}
	to, err := chess.ParseSquare(toName)
	if err != nil {
		return chess.NoSquare, chess.NoSquare, err
	}
	return from, to, nil
}

// splitCommand splits a command line on whitespace, keeping quoted
// strings together.
func splitCommand(line string) []string {
	var fields []string
	var cur strings.Builder
	var quote rune
	inField := false

	for _, r := range line {
		switch {
		case quote != 0 && r == quote:
			quote = 0
		case quote != 0:
			cur.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inField = true
		case r == ' ' || r == '\t':
			if inField {
				fields = append(fields, cur.String())
				cur.Reset()
				inField = false
			}
		default:
			cur.WriteRune(r)
			inField = true
		}
	}
	if inField {
		fields = append(fields, cur.String())
	}
	return fields
}
