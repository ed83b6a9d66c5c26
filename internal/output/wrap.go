package output

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// DefaultLineLength is the wrap width used when none is configured.
const DefaultLineLength = 72

// OutputWriter writes words with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a word, preceded by a space or a line break as needed.
func (o *OutputWriter) Write(s string) {
	n := utf8.RuneCountInString(s)
	if o.needsSpace && n > 0 {
		if o.lineLength+1+n > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}

	o.print(s)
	o.lineLength += n
	o.needsSpace = true
}

// WriteParagraph writes text word by word and ends the line.
func (o *OutputWriter) WriteParagraph(text string) {
	for _, word := range strings.Fields(text) {
		o.Write(word)
	}
	o.NewLine()
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error encountered.
func (o *OutputWriter) Err() error {
	return o.err
}

func (o *OutputWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = fmt.Fprint(o.w, s)
}
