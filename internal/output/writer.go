// Package output renders boards and puzzle sessions as text diagrams or
// JSON snapshots.
package output

import (
	"github.com/lgbarn/chess-tactics-go/internal/chess"
	"github.com/lgbarn/chess-tactics-go/internal/engine"
	"github.com/lgbarn/chess-tactics-go/internal/puzzle"
)

// Mark is the kind of highlight drawn on a square.
type Mark int

const (
	MarkNone Mark = iota
	MarkTarget
	MarkHint
	MarkSelected
)

// Highlight holds per-square marks. The zero value highlights nothing.
type Highlight struct {
	marks map[chess.Square]Mark
}

// NewHighlight marks the selected square and its move targets. Invalid
// squares are skipped.
func NewHighlight(selected chess.Square, targets []chess.Square) Highlight {
	var h Highlight
	for _, sq := range targets {
		h.Set(sq, MarkTarget)
	}
	h.Set(selected, MarkSelected)
	return h
}

// SessionHighlight marks the session's selection and, when showTargets is
// set, the squares the selected piece may move to.
func SessionHighlight(s *puzzle.Session, showTargets bool) Highlight {
	sel := s.Selected()
	if !sel.Valid() || !showTargets {
		return NewHighlight(sel, nil)
	}
	return NewHighlight(sel, engine.LegalTargets(s.Board(), sel))
}

// Set marks sq. A higher mark replaces a lower one.
func (h *Highlight) Set(sq chess.Square, m Mark) {
	if !sq.Valid() || m == MarkNone {
		return
	}
	if h.marks == nil {
		h.marks = make(map[chess.Square]Mark)
	}
	if m > h.marks[sq] {
		h.marks[sq] = m
	}
}

// At returns the mark on sq.
func (h Highlight) At(sq chess.Square) Mark {
	return h.marks[sq]
}

// Selected returns the selected square or chess.NoSquare.
func (h Highlight) Selected() chess.Square {
	for sq, m := range h.marks {
		if m == MarkSelected {
			return sq
		}
	}
	return chess.NoSquare
}

// Targets returns the target squares in a1..h8 order.
func (h Highlight) Targets() []chess.Square {
	var out []chess.Square
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if h.marks[sq] == MarkTarget {
			out = append(out, sq)
		}
	}
	return out
}

// BoardWriter renders a single position.
type BoardWriter interface {
	WriteBoard(board *chess.Board, h Highlight) error
}

// SessionWriter renders puzzle sessions and the messages around them.
// Different implementations handle different formats (text, JSON).
type SessionWriter interface {
	BoardWriter

	// WriteSession writes the session status and its current board.
	WriteSession(s *puzzle.Session, h Highlight) error

	// WriteMessage writes a labelled message such as a hint or an error.
	WriteMessage(kind, text string) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error
}
