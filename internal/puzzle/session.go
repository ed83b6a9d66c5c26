// Package puzzle implements the click-to-move exercise state machine that
// sits on top of the board model and the pseudo-legal move engine.
//
// A Session is not safe for concurrent use. Callers that share sessions
// between goroutines go through a Registry, which serialises access.
package puzzle

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-tactics-go/internal/chess"
	"github.com/lgbarn/chess-tactics-go/internal/engine"
	"github.com/lgbarn/chess-tactics-go/internal/errors"
)

// State is a node of the session state machine.
type State int

const (
	AwaitingSelection State = iota
	PieceSelected
	MoveApplied
	MoveRejected
	Solved
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case AwaitingSelection:
		return "AwaitingSelection"
	case PieceSelected:
		return "PieceSelected"
	case MoveApplied:
		return "MoveApplied"
	case MoveRejected:
		return "MoveRejected"
	case Solved:
		return "Solved"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Mode selects how attempted moves are judged.
type Mode int

const (
	// ModePractice applies any pseudo-legal move and then compares it with
	// the solution. Both colours move in turn.
	ModePractice Mode = iota

	// ModeStrict accepts only the solution move. Other attempts are
	// rejected without touching the board, and only the player colour
	// may move.
	ModeStrict
)

// String returns the string representation of a mode.
func (m Mode) String() string {
	if m == ModeStrict {
		return "strict"
	}
	return "practice"
}

// Solution is the expected move of an exercise.
type Solution struct {
	From        chess.Square
	To          chess.Square
	Move        string // Display notation, e.g. "Qxf7#"
	Description string
}

// Matches reports exact (from, to) equality. Alternate notations of the
// same move are not considered.
func (s Solution) Matches(from, to chess.Square) bool {
	return s.From == from && s.To == to
}

// Hint points the player at a square.
type Hint struct {
	Square  chess.Square
	Message string
}

// Outcome reports what a single interaction did.
type Outcome struct {
	// State is the settled state after the interaction.
	State State
	// Transition is the transient state passed through: MoveApplied or
	// MoveRejected for move attempts, otherwise equal to State.
	Transition State

	From     chess.Square
	To       chess.Square
	Applied  bool
	Rejected bool
	Solved   bool
	// Ignored is set when the session was frozen or the input did nothing.
	Ignored bool
}

// Session owns the board and selection state of one exercise view.
type Session struct {
	id         string
	exerciseID string
	mode       Mode
	player     chess.Colour

	original *chess.Board
	current  *chess.Board

	selected chess.Square
	turn     chess.Colour
	state    State
	solved   bool
	revealed bool
	moves    int
	attempts int
	points   int

	solution *Solution
	hint     *Hint
}

// Option configures a Session.
type Option func(*Session)

// WithSolution sets the expected solution move.
func WithSolution(sol Solution) Option {
	return func(s *Session) {
		s.solution = &sol
	}
}

// WithHint sets the hint offered before the exercise is solved.
func WithHint(h Hint) Option {
	return func(s *Session) {
		s.hint = &h
	}
}

// WithMode selects practice or strict judging.
func WithMode(m Mode) Option {
	return func(s *Session) {
		s.mode = m
	}
}

// WithPoints sets the score awarded for solving the exercise.
func WithPoints(n int) Option {
	return func(s *Session) {
		s.points = n
	}
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}

// NewSession decodes fen and creates a session for the exercise.
// Strict mode requires a solution.
func NewSession(exerciseID, fen string, opts ...Option) (*Session, error) {
	board, err := engine.DecodeFEN(fen)
	if err != nil {
		return nil, &errors.ExerciseError{Err: err, ExerciseID: exerciseID, Field: "fen"}
	}

	s := &Session{
		id:         uuid.New().String(),
		exerciseID: exerciseID,
		player:     chess.White,
		original:   board,
		current:    board.Copy(),
		selected:   chess.NoSquare,
		turn:       chess.White,
		state:      AwaitingSelection,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.mode == ModeStrict && s.solution == nil {
		return nil, &errors.ExerciseError{
			Err:        errors.Wrap(errors.ErrInvalidConfig, "strict mode requires a solution"),
			ExerciseID: exerciseID,
		}
	}
	return s, nil
}

// Click handles a click on sq.
func (s *Session) Click(sq chess.Square) Outcome {
	if s.solved {
		return s.ignored(sq, chess.NoSquare)
	}
	if !sq.Valid() {
		return s.ignored(sq, chess.NoSquare)
	}

	if s.selected == chess.NoSquare {
		if !s.ownsPiece(sq) {
			return s.ignored(sq, chess.NoSquare)
		}
		s.selected = sq
		s.state = PieceSelected
		return s.settled(sq, chess.NoSquare)
	}

	if s.selected == sq {
		s.selected = chess.NoSquare
		s.state = AwaitingSelection
		return s.settled(sq, chess.NoSquare)
	}

	from := s.selected
	s.selected = chess.NoSquare
	return s.attempt(from, sq)
}

// Move handles a drag from from to to. It behaves like selecting from and
// then clicking to, except that a drag from a square the side to move does
// not own is ignored outright.
func (s *Session) Move(from, to chess.Square) Outcome {
	if s.solved || !from.Valid() || !to.Valid() || from == to || !s.ownsPiece(from) {
		return s.ignored(from, to)
	}
	s.selected = chess.NoSquare
	return s.attempt(from, to)
}

// attempt judges a move and applies it when accepted.
func (s *Session) attempt(from, to chess.Square) Outcome {
	if s.mode == ModeStrict {
		return s.attemptStrict(from, to)
	}

	if !engine.IsLegal(s.current, from, to) {
		return s.reject(from, to)
	}

	s.apply(from, to)
	if s.solution != nil {
		s.attempts++
	}
	if s.solution == nil || s.solution.Matches(from, to) {
		s.solved = true
		s.state = Solved
	} else {
		s.state = AwaitingSelection
	}
	return Outcome{
		State:      s.state,
		Transition: MoveApplied,
		From:       from,
		To:         to,
		Applied:    true,
		Solved:     s.solved,
	}
}

func (s *Session) attemptStrict(from, to chess.Square) Outcome {
	s.attempts++
	if !s.solution.Matches(from, to) {
		s.state = AwaitingSelection
		return Outcome{
			State:      s.state,
			Transition: MoveRejected,
			From:       from,
			To:         to,
			Rejected:   true,
		}
	}

	s.apply(from, to)
	s.solved = true
	s.state = Solved
	return Outcome{
		State:      s.state,
		Transition: MoveApplied,
		From:       from,
		To:         to,
		Applied:    true,
		Solved:     true,
	}
}

// reject handles an illegal practice move: the clicked square becomes the
// new selection when it holds a piece of the side to move.
func (s *Session) reject(from, to chess.Square) Outcome {
	if s.ownsPiece(to) {
		s.selected = to
		s.state = PieceSelected
	} else {
		s.state = AwaitingSelection
	}
	return Outcome{
		State:      s.state,
		Transition: MoveRejected,
		From:       from,
		To:         to,
		Rejected:   true,
	}
}

func (s *Session) apply(from, to chess.Square) {
	s.current.Move(from, to)
	s.moves++
	s.turn = s.turn.Opposite()
}

// ownsPiece reports whether sq holds a piece the session lets move now.
func (s *Session) ownsPiece(sq chess.Square) bool {
	p, ok := s.current.Get(sq)
	if !ok || p.Colour != s.turn {
		return false
	}
	return s.mode != ModeStrict || p.Colour == s.player
}

func (s *Session) settled(from, to chess.Square) Outcome {
	return Outcome{State: s.state, Transition: s.state, From: from, To: to}
}

func (s *Session) ignored(from, to chess.Square) Outcome {
	o := s.settled(from, to)
	o.Ignored = true
	o.Solved = s.solved
	return o
}

// Reset restores the original position and clears all progress.
func (s *Session) Reset() {
	s.current = s.original.Copy()
	s.selected = chess.NoSquare
	s.turn = chess.White
	s.state = AwaitingSelection
	s.solved = false
	s.revealed = false
	s.moves = 0
	s.attempts = 0
}

// RevealSolution shows the solution and freezes the session as solved.
// The second result is false when no solution is configured; the session
// is then left untouched.
func (s *Session) RevealSolution() (Solution, bool) {
	if s.solution == nil {
		return Solution{}, false
	}
	s.selected = chess.NoSquare
	s.solved = true
	s.revealed = true
	s.state = Solved
	return *s.solution, true
}

// Hint returns the configured hint while the exercise is unsolved.
func (s *Session) Hint() (Hint, bool) {
	if s.hint == nil || s.solved {
		return Hint{}, false
	}
	return *s.hint, true
}

// Solution returns the configured solution without revealing it.
func (s *Session) Solution() (Solution, bool) {
	if s.solution == nil {
		return Solution{}, false
	}
	return *s.solution, true
}

// ID returns the unique session identifier.
func (s *Session) ID() string { return s.id }

// ExerciseID returns the exercise this session belongs to.
func (s *Session) ExerciseID() string { return s.exerciseID }

// Mode returns the judging mode.
func (s *Session) Mode() Mode { return s.mode }

// State returns the settled state.
func (s *Session) State() State { return s.state }

// Board returns a copy of the current position.
func (s *Session) Board() *chess.Board { return s.current.Copy() }

// OriginalBoard returns a copy of the starting position.
func (s *Session) OriginalBoard() *chess.Board { return s.original.Copy() }

// Turn returns the side to move.
func (s *Session) Turn() chess.Colour { return s.turn }

// Selected returns the selected square or chess.NoSquare.
func (s *Session) Selected() chess.Square { return s.selected }

// Solved reports whether the session is frozen as solved.
func (s *Session) Solved() bool { return s.solved }

// Revealed reports whether the solution was shown rather than found.
func (s *Session) Revealed() bool { return s.revealed }

// MoveCount returns the number of moves applied since the last reset.
func (s *Session) MoveCount() int { return s.moves }

// Attempts returns how many moves were judged against the solution since
// the last reset.
func (s *Session) Attempts() int { return s.attempts }

// Points returns the score awarded for solving the exercise.
func (s *Session) Points() int { return s.points }
