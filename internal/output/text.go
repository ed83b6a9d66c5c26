package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-tactics-go/internal/chess"
	"github.com/lgbarn/chess-tactics-go/internal/puzzle"
)

// TextWriter draws boards as 8x8 character diagrams, rank 8 at the top.
//
// Squares render as " X " and marks replace the padding: [X] selected,
// (X) move target, <X> hint.
type TextWriter struct {
	w           *bufio.Writer
	unicode     bool
	coordinates bool
	lineLength  int
}

// TextOption configures a TextWriter.
type TextOption func(*TextWriter)

// WithUnicode draws pieces as chess glyphs instead of FEN letters.
func WithUnicode(on bool) TextOption {
	return func(tw *TextWriter) {
		tw.unicode = on
	}
}

// WithCoordinates toggles the rank and file labels.
func WithCoordinates(on bool) TextOption {
	return func(tw *TextWriter) {
		tw.coordinates = on
	}
}

// WithLineLength sets the wrap width for messages.
func WithLineLength(n int) TextOption {
	return func(tw *TextWriter) {
		tw.lineLength = n
	}
}

// NewTextWriter creates a text writer. Coordinates are on by default.
func NewTextWriter(w io.Writer, opts ...TextOption) *TextWriter {
	tw := &TextWriter{
		w:           bufio.NewWriter(w),
		coordinates: true,
		lineLength:  DefaultLineLength,
	}
	for _, opt := range opts {
		opt(tw)
	}
	return tw
}

// WriteBoard writes the diagram.
func (tw *TextWriter) WriteBoard(board *chess.Board, h Highlight) error {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		var line strings.Builder
		if tw.coordinates {
			fmt.Fprintf(&line, "%d ", rank+1)
		}
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.NewSquare(file, rank)
			left, right := brackets(h.At(sq))
			line.WriteString(left)
			line.WriteString(tw.glyph(board, sq))
			line.WriteString(right)
		}
		tw.writeLine(line.String())
	}

	if tw.coordinates {
		var footer strings.Builder
		footer.WriteString("  ")
		for file := 0; file < chess.BoardSize; file++ {
			fmt.Fprintf(&footer, " %c ", rune(chess.FileBase+file))
		}
		tw.writeLine(footer.String())
	}
	return tw.w.Flush()
}

// WriteSession writes a one-line status followed by the board.
func (tw *TextWriter) WriteSession(s *puzzle.Session, h Highlight) error {
	status := fmt.Sprintf("%s  %s to move  moves %d  attempts %d",
		s.ExerciseID(), s.Turn(), s.MoveCount(), s.Attempts())
	switch {
	case s.Revealed():
		status += "  [revealed]"
	case s.Solved():
		status += "  [solved]"
	}
	if s.Mode() == puzzle.ModeStrict {
		status += "  (strict)"
	}
	tw.writeLine(status)
	return tw.WriteBoard(s.Board(), h)
}

// WriteMessage writes "kind: text" wrapped at the configured line length.
func (tw *TextWriter) WriteMessage(kind, text string) error {
	ow := NewOutputWriter(tw.w, tw.lineLength)
	if kind != "" {
		ow.Write(kind + ":")
	}
	ow.WriteParagraph(text)
	if err := ow.Err(); err != nil {
		return err
	}
	return tw.w.Flush()
}

// Flush flushes buffered output.
func (tw *TextWriter) Flush() error {
	return tw.w.Flush()
}

func (tw *TextWriter) writeLine(s string) {
	tw.w.WriteString(strings.TrimRight(s, " "))
	tw.w.WriteByte('\n')
}

func (tw *TextWriter) glyph(board *chess.Board, sq chess.Square) string {
	p, ok := board.Get(sq)
	switch {
	case !ok && tw.unicode:
		return "·"
	case !ok:
		return "."
	case tw.unicode:
		return string(p.Symbol())
	default:
		return string(p.Letter())
	}
}

func brackets(m Mark) (string, string) {
	switch m {
	case MarkSelected:
		return "[", "]"
	case MarkTarget:
		return "(", ")"
	case MarkHint:
		return "<", ">"
	}
	return " ", " "
}
