// Package catalog holds tactical exercises: their positions, expected
// solutions and hints. It loads and saves catalogs as JSON, validates them
// against the move engine and audits them against full chess rules.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lgbarn/chess-tactics-go/internal/chess"
	"github.com/lgbarn/chess-tactics-go/internal/errors"
	"github.com/lgbarn/chess-tactics-go/internal/puzzle"
)

// Difficulty grades an exercise.
type Difficulty int

const (
	DifficultyUnset Difficulty = iota
	Beginner
	Intermediate
	Advanced
	Master
)

var difficultyNames = map[Difficulty]string{
	Beginner:     "beginner",
	Intermediate: "intermediate",
	Advanced:     "advanced",
	Master:       "master",
}

// String returns the lowercase name of the difficulty.
func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// Valid reports whether d is one of the named difficulties.
func (d Difficulty) Valid() bool {
	_, ok := difficultyNames[d]
	return ok
}

// ParseDifficulty parses a difficulty name, ignoring case.
func ParseDifficulty(s string) (Difficulty, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for d, name := range difficultyNames {
		if name == want {
			return d, nil
		}
	}
	return DifficultyUnset, fmt.Errorf("unknown difficulty %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("cannot marshal %v", d)
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Solution is the expected answer to an exercise.
type Solution struct {
	From        chess.Square `json:"from"`
	To          chess.Square `json:"to"`
	Move        string       `json:"move"`
	Explanation string       `json:"explanation,omitempty"`
}

// Hint nudges the player towards the solution.
type Hint struct {
	Square  chess.Square `json:"square"`
	Message string       `json:"message"`
}

// UnmarshalJSON implements json.Unmarshaler. A missing square key
// decodes to NoSquare rather than a1.
func (h *Hint) UnmarshalJSON(data []byte) error {
	type plain Hint
	v := plain{Square: chess.NoSquare}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	*h = Hint(v)
	return nil
}

// Exercise is a single tactical puzzle. White is always to move.
type Exercise struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	FEN           string     `json:"fen"`
	Solution      Solution   `json:"solution"`
	Hint          *Hint      `json:"hint,omitempty"`
	Tactic        string     `json:"tactic,omitempty"`
	Difficulty    Difficulty `json:"difficulty"`
	Points        int        `json:"points"`
	MovesRequired int        `json:"moves_required,omitempty"`
}

// DefaultPoints is awarded when an exercise does not set Points.
const DefaultPoints = 10

// Score returns the points awarded for solving the exercise.
func (e *Exercise) Score() int {
	if e.Points <= 0 {
		return DefaultPoints
	}
	return e.Points
}

// NewSession starts a puzzle session for the exercise. Extra options are
// applied after the exercise's own solution, hint and points.
func (e *Exercise) NewSession(opts ...puzzle.Option) (*puzzle.Session, error) {
	base := []puzzle.Option{
		puzzle.WithSolution(puzzle.Solution{
			From:        e.Solution.From,
			To:          e.Solution.To,
			Move:        e.Solution.Move,
			Description: e.Solution.Explanation,
		}),
		puzzle.WithPoints(e.Score()),
	}
	if e.Hint != nil {
		base = append(base, puzzle.WithHint(puzzle.Hint{
			Square:  e.Hint.Square,
			Message: e.Hint.Message,
		}))
	}
	return puzzle.NewSession(e.ID, e.FEN, append(base, opts...)...)
}

// Catalog is an ordered collection of exercises indexed by ID.
type Catalog struct {
	exercises []Exercise
	byID      map[string]int
}

// New builds a catalog from exercises in the given order. When IDs repeat,
// Get returns the first; Validate reports the duplicates.
func New(exercises ...Exercise) *Catalog {
	c := &Catalog{byID: make(map[string]int, len(exercises))}
	for _, e := range exercises {
		c.Add(e)
	}
	return c
}

// Add appends an exercise.
func (c *Catalog) Add(e Exercise) {
	if _, dup := c.byID[e.ID]; !dup {
		c.byID[e.ID] = len(c.exercises)
	}
	c.exercises = append(c.exercises, e)
}

// Len returns the number of exercises.
func (c *Catalog) Len() int {
	return len(c.exercises)
}

// Get returns the exercise with the given ID.
func (c *Catalog) Get(id string) (Exercise, error) {
	i, ok := c.byID[id]
	if !ok {
		return Exercise{}, errors.Wrapf(errors.ErrUnknownExercise, "%q", id)
	}
	return c.exercises[i], nil
}

// List returns a copy of every exercise in catalog order.
func (c *Catalog) List() []Exercise {
	out := make([]Exercise, len(c.exercises))
	copy(out, c.exercises)
	return out
}

// Filter returns the exercises of the given difficulty in catalog order.
func (c *Catalog) Filter(d Difficulty) []Exercise {
	var out []Exercise
	for _, e := range c.exercises {
		if e.Difficulty == d {
			out = append(out, e)
		}
	}
	return out
}

// Tactics returns the distinct tactic names in first-seen order.
func (c *Catalog) Tactics() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range c.exercises {
		if e.Tactic == "" || seen[e.Tactic] {
			continue
		}
		seen[e.Tactic] = true
		out = append(out, e.Tactic)
	}
	return out
}
