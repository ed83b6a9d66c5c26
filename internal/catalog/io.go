package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	perrors "github.com/pkg/errors"

	"github.com/lgbarn/chess-tactics-go/internal/errors"
)

// document is the on-disk JSON layout.
type document struct {
	Exercises []Exercise `json:"exercises"`
}

// Decode reads a JSON catalog. Unknown fields are rejected. The result is
// not validated; call Validate for that.
func Decode(r io.Reader) (*Catalog, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, perrors.WithStack(fmt.Errorf("%w: %w", errors.ErrInvalidCatalog, err))
	}
	return New(doc.Exercises...), nil
}

// Load reads a JSON catalog from path.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perrors.Wrapf(err, "open catalog %s", path)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, perrors.Wrapf(err, "load catalog %s", path)
	}
	return c, nil
}

// Encode writes the catalog as indented JSON.
func (c *Catalog) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Exercises: c.List()}); err != nil {
		return perrors.Wrap(err, "encode catalog")
	}
	return nil
}

// Save writes the catalog to path atomically via a temporary file in the
// same directory.
func (c *Catalog) Save(path string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".catalog-*.json")
	if err != nil {
		return perrors.Wrapf(err, "save catalog %s", path)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = c.Encode(tmp); err != nil {
		return perrors.Wrapf(err, "save catalog %s", path)
	}
	if err = tmp.Close(); err != nil {
		return perrors.Wrapf(err, "save catalog %s", path)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return perrors.Wrapf(err, "save catalog %s", path)
	}
	return nil
}
