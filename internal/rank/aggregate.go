package rank

import (
	"fmt"
	"log/slog"

	"toplist/internal/table"
	"toplist/internal/traits"
)

// BreedSpec ties one breed to its source file and top-N cutoff. Built once
// from configuration, immutable for the rest of the run.
type BreedSpec struct {
	Breed string
	Path  string
	TopN  int
}

// Aggregate holds every breed's ranking per trait. Breeds and Traits keep
// their declared order, which drives the sheet and block layout downstream.
type Aggregate struct {
	Breeds  []string
	Traits  []string
	results map[string]map[string]Result
}

// Result returns the extraction outcome for one breed and trait. Unknown
// combinations read as absent.
func (a *Aggregate) Result(breed, trait string) Result {
	return a.results[breed][trait]
}

// Run loads each breed's file once and extracts every trait's top list with
// that breed's own cutoff. A breed whose file cannot be loaded aborts the
// whole run; the report layout assumes every declared breed was attempted.
func Run(specs []BreedSpec, traitIDs, descCols []string, delimiter rune, names *traits.NameMap) (*Aggregate, error) {
	agg := &Aggregate{
		Traits:  append([]string(nil), traitIDs...),
		results: make(map[string]map[string]Result, len(specs)),
	}
	for _, spec := range specs {
		tbl, err := table.Load(spec.Path, delimiter)
		if err != nil {
			return nil, fmt.Errorf("load breed %s: %w", spec.Breed, err)
		}
		slog.Debug("breed file loaded",
			slog.String("breed", spec.Breed),
			slog.String("path", spec.Path),
			slog.Int("rows", tbl.Len()))

		perTrait := make(map[string]Result, len(traitIDs))
		for _, trait := range traitIDs {
			res := Extract(tbl, trait, descCols, spec.TopN, names)
			if !res.Present {
				slog.Debug("trait not present for breed",
					slog.String("breed", spec.Breed),
					slog.String("trait", trait))
			}
			perTrait[trait] = res
		}
		agg.Breeds = append(agg.Breeds, spec.Breed)
		agg.results[spec.Breed] = perTrait
	}
	return agg, nil
}
