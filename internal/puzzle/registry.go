package puzzle

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-tactics-go/internal/chess"
	"github.com/lgbarn/chess-tactics-go/internal/errors"
)

// Score tallies solved exercises across a registry's lifetime. Revealed
// solutions do not count.
type Score struct {
	Solved int
	Points int
}

// Registry maps exercise IDs to the sessions their views own. All
// mutations of a registered session go through the registry so that each
// mutate-then-render sequence runs under one lock.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	score    Score
	log      zerolog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for session events.
func WithLogger(l zerolog.Logger) RegistryOption {
	return func(r *Registry) {
		r.log = l
	}
}

// NewRegistry creates an empty registry. Logging is disabled unless
// WithLogger is given.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		sessions: make(map[string]*Session),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open registers s under its exercise ID, replacing any previous session
// for the same exercise.
func (r *Registry) Open(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.sessions[s.ExerciseID()]; ok {
		r.log.Debug().Str("exercise", s.ExerciseID()).Str("session", old.ID()).Msg("session replaced")
	}
	r.sessions[s.ExerciseID()] = s
	r.log.Info().
		Str("exercise", s.ExerciseID()).
		Str("session", s.ID()).
		Str("mode", s.Mode().String()).
		Msg("session opened")
}

// Close drops the session for exerciseID. It reports whether one existed.
func (r *Registry) Close(exerciseID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[exerciseID]
	if !ok {
		return false
	}
	delete(r.sessions, exerciseID)
	r.log.Info().Str("exercise", exerciseID).Str("session", s.ID()).Msg("session closed")
	return true
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// IDs returns the exercise IDs with open sessions, sorted.
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Do runs fn with exclusive access to the session for exerciseID. A solve
// made by moves inside fn is scored like one made through Click or Move;
// a revealed solution is not.
func (r *Registry) Do(exerciseID string, fn func(*Session) error) error {
	return r.do(exerciseID, func(s *Session) error {
		wasSolved := s.Solved()
		err := fn(s)
		if !wasSolved && s.Solved() && !s.Revealed() {
			r.log.Info().Str("exercise", s.ExerciseID()).
				Str("session", s.ID()).
				Int("moves", s.MoveCount()).
				Msg("solved in callback")
			r.credit(s)
		}
		return err
	})
}

func (r *Registry) do(exerciseID string, fn func(*Session) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[exerciseID]
	if !ok {
		return errors.Wrapf(errors.ErrSessionNotFound, "exercise %q", exerciseID)
	}
	return fn(s)
}

// Click forwards a click to the session for exerciseID.
func (r *Registry) Click(exerciseID string, sq chess.Square) (Outcome, error) {
	var out Outcome
	err := r.do(exerciseID, func(s *Session) error {
		out = s.Click(sq)
		r.record(s, out)
		return nil
	})
	return out, err
}

// Move forwards a drag to the session for exerciseID.
func (r *Registry) Move(exerciseID string, from, to chess.Square) (Outcome, error) {
	var out Outcome
	err := r.do(exerciseID, func(s *Session) error {
		out = s.Move(from, to)
		r.record(s, out)
		return nil
	})
	return out, err
}

// Reset restores the session for exerciseID to its starting position.
func (r *Registry) Reset(exerciseID string) error {
	return r.do(exerciseID, func(s *Session) error {
		s.Reset()
		r.log.Info().Str("exercise", exerciseID).Str("session", s.ID()).Msg("session reset")
		return nil
	})
}

// Score returns the running tally.
func (r *Registry) Score() Score {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.score
}

// record logs a move outcome and updates the score. Caller holds r.mu.
func (r *Registry) record(s *Session, out Outcome) {
	if out.Ignored || (!out.Applied && !out.Rejected) {
		return
	}

	ev := r.log.Debug()
	if out.Solved {
		ev = r.log.Info()
	}
	ev.Str("exercise", s.ExerciseID()).
		Str("session", s.ID()).
		Str("from", out.From.String()).
		Str("to", out.To.String()).
		Str("transition", out.Transition.String()).
		Str("state", out.State.String()).
		Int("moves", s.MoveCount()).
		Msg("move judged")

	if out.Solved {
		r.credit(s)
	}
}

// credit adds a solve to the tally. Caller holds r.mu.
func (r *Registry) credit(s *Session) {
	r.score.Solved++
	r.score.Points += s.Points()
}
