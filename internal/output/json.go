package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-tactics-go/internal/chess"
	"github.com/lgbarn/chess-tactics-go/internal/engine"
	"github.com/lgbarn/chess-tactics-go/internal/puzzle"
)

// JSONBoard is a position with its highlights.
type JSONBoard struct {
	FEN      string   `json:"fen"`
	Selected string   `json:"selected,omitempty"`
	Targets  []string `json:"targets,omitempty"`
}

// JSONSnapshot is the state of a puzzle session.
type JSONSnapshot struct {
	Exercise string   `json:"exercise"`
	Session  string   `json:"session"`
	Mode     string   `json:"mode"`
	State    string   `json:"state"`
	Turn     string   `json:"turn"`
	FEN      string   `json:"fen"`
	Selected string   `json:"selected,omitempty"`
	Targets  []string `json:"targets,omitempty"`
	Solved   bool     `json:"solved"`
	Revealed bool     `json:"revealed,omitempty"`
	Moves    int      `json:"moves"`
	Attempts int      `json:"attempts"`
}

// JSONMessage is a labelled message.
type JSONMessage struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// BoardToJSON converts a board and its highlights.
func BoardToJSON(board *chess.Board, h Highlight) *JSONBoard {
	return &JSONBoard{
		FEN:      engine.EncodeFEN(board),
		Selected: squareName(h.Selected()),
		Targets:  squareNames(h.Targets()),
	}
}

// SessionToJSON converts a session snapshot.
func SessionToJSON(s *puzzle.Session, h Highlight) *JSONSnapshot {
	return &JSONSnapshot{
		Exercise: s.ExerciseID(),
		Session:  s.ID(),
		Mode:     s.Mode().String(),
		State:    s.State().String(),
		Turn:     strings.ToLower(s.Turn().String()),
		FEN:      engine.EncodeFEN(s.Board()),
		Selected: squareName(s.Selected()),
		Targets:  squareNames(h.Targets()),
		Solved:   s.Solved(),
		Revealed: s.Revealed(),
		Moves:    s.MoveCount(),
		Attempts: s.Attempts(),
	}
}

// JSONWriter writes one JSON document per call.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates a JSON writer. With indent set documents are
// pretty-printed; otherwise each document is a single line.
func NewJSONWriter(w io.Writer, indent bool) *JSONWriter {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return &JSONWriter{enc: enc}
}

// WriteBoard writes a JSONBoard.
func (jw *JSONWriter) WriteBoard(board *chess.Board, h Highlight) error {
	return jw.enc.Encode(BoardToJSON(board, h))
}

// WriteSession writes a JSONSnapshot.
func (jw *JSONWriter) WriteSession(s *puzzle.Session, h Highlight) error {
	return jw.enc.Encode(SessionToJSON(s, h))
}

// WriteMessage writes a JSONMessage.
func (jw *JSONWriter) WriteMessage(kind, text string) error {
	return jw.enc.Encode(&JSONMessage{Kind: kind, Message: text})
}

// Flush is a no-op; documents are written immediately.
func (jw *JSONWriter) Flush() error {
	return nil
}

func squareName(sq chess.Square) string {
	if !sq.Valid() {
		return ""
	}
	return sq.String()
}

func squareNames(sqs []chess.Square) []string {
	if len(sqs) == 0 {
		return nil
	}
	out := make([]string, len(sqs))
	for i, sq := range sqs {
		out[i] = sq.String()
	}
	return out
}
