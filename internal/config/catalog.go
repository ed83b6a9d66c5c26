package config

// CatalogConfig holds settings for choosing exercises.
type CatalogConfig struct {
	// Path is a JSON catalog file; empty selects the built-in catalog
	Path string

	// Difficulty limits listing to one grade (empty = all)
	Difficulty string

	// Tactic limits listing to one tactic name (empty = all)
	Tactic string

	// Material limits listing to positions with this material, e.g. "QR:q"
	Material string

	// ExactMaterial requires exactly the Material pieces rather than at least
	ExactMaterial bool
}

// NewCatalogConfig creates a CatalogConfig with default values.
func NewCatalogConfig() *CatalogConfig {
	return &CatalogConfig{}
}
