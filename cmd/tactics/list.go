package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-tactics-go/internal/catalog"
	"github.com/lgbarn/chess-tactics-go/internal/config"
	"github.com/lgbarn/chess-tactics-go/internal/errors"
	"github.com/lgbarn/chess-tactics-go/internal/matching"
)

// listEntry is the JSON form of one -list line.
type listEntry struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Tactic     string `json:"tactic,omitempty"`
	Difficulty string `json:"difficulty"`
	Points     int    `json:"points"`
}

// validateFilters checks the -difficulty and -material values before any
// catalog is read. The result wraps ErrInvalidConfig.
func validateFilters(cc *config.CatalogConfig) error {
	var result *multierror.Error
	if _, err := parseDifficultyFilter(cc); err != nil {
		result = multierror.Append(result, errors.Wrap(errors.ErrInvalidConfig, err.Error()))
	}
	if _, err := matching.NewMaterialMatcher(cc.Material, cc.ExactMaterial); err != nil {
		result = multierror.Append(result, errors.Wrap(errors.ErrInvalidConfig, err.Error()))
	}
	return result.ErrorOrNil()
}

// parseDifficultyFilter returns nil when no -difficulty was given.
func parseDifficultyFilter(cc *config.CatalogConfig) (*catalog.Difficulty, error) {
	if cc.Difficulty == "" {
		return nil, nil
	}
	d, err := catalog.ParseDifficulty(cc.Difficulty)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// selectExercises applies the -difficulty, -tactic and -material filters.
func selectExercises(cat *catalog.Catalog, cc *config.CatalogConfig) ([]catalog.Exercise, error) {
	d, err := parseDifficultyFilter(cc)
	if err != nil {
		return nil, err
	}
	list := cat.List()
	if d != nil {
		list = cat.Filter(*d)
	}

	mm, err := matching.NewMaterialMatcher(cc.Material, cc.ExactMaterial)
	if err != nil {
		return nil, err
	}

	var out []catalog.Exercise
	for _, e := range list {
		if cc.Tactic != "" && !strings.EqualFold(e.Tactic, cc.Tactic) {
			continue
		}
		if mm.HasCriteria() {
			ok, err := mm.MatchFEN(e.FEN)
			if err != nil {
				return nil, fmt.Errorf("exercise %q against %q: %w", e.ID, mm.Pattern(), err)
			}
			if !ok {
				continue
			}
		}
		out = append(out, e)
	}
	return out, nil
}

// writeExerciseList writes one row per exercise, or a JSON array.
func writeExerciseList(w io.Writer, list []catalog.Exercise, asJSON bool) error {
	if asJSON {
		entries := make([]listEntry, 0, len(list))
		for i := range list {
			e := &list[i]
			entries = append(entries, listEntry{
				ID:         e.ID,
				Title:      e.Title,
				Tactic:     e.Tactic,
				Difficulty: e.Difficulty.String(),
				Points:     e.Score(),
			})
		}
		return json.NewEncoder(w).Encode(entries)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tTACTIC\tDIFFICULTY\tPOINTS")
	for i := range list {
		e := &list[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", e.ID, e.Title, e.Tactic, e.Difficulty, e.Score())
	}
	return tw.Flush()
}
