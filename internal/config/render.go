package config

// MinLineLength is the narrowest message wrap width accepted.
const MinLineLength = 20

// RenderConfig holds settings related to board and message output.
type RenderConfig struct {
	// Unicode draws pieces as chess glyphs instead of FEN letters
	Unicode bool

	// Coordinates adds rank and file labels to diagrams
	Coordinates bool

	// ShowTargets marks the squares the selected piece may move to
	ShowTargets bool

	// JSONFormat enables JSON snapshots instead of text diagrams
	JSONFormat bool

	// Indent pretty-prints JSON output
	Indent bool

	// MaxLineLength is the wrap width for hints and explanations
	MaxLineLength int
}

// NewRenderConfig creates a RenderConfig with default values.
func NewRenderConfig() *RenderConfig {
	return &RenderConfig{
		Coordinates:   true,
		ShowTargets:   true,
		MaxLineLength: 72,
	}
}
