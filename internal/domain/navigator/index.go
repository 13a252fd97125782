package navigator

import (
	m "gooze.dev/pkg/mutview/internal/model"
)

// Index is the precomputed lookup structure of one source page. It is built
// once from the report and never changes.
type Index struct {
	locations []m.Location
	locByID   map[string]int
	owner     map[string]int
	mutants   map[string]m.Mutant
	kills     map[string]int
}

// NewIndex builds the index of file against the mutants of report. Mutant ids
// listed on a location but missing from the report are dropped.
func NewIndex(report *m.Report, file m.SourceFile) *Index {
	idx := &Index{
		locations: make([]m.Location, 0, len(file.Locations)),
		locByID:   make(map[string]int, len(file.Locations)),
		owner:     make(map[string]int),
		mutants:   make(map[string]m.Mutant, len(report.Mutants)),
		kills:     report.TestCases,
	}

	for _, mu := range report.Mutants {
		idx.mutants[mu.ID] = mu
	}

	for _, loc := range file.Locations {
		if loc.ID == "" {
			loc.ID = m.LocationID(loc.Line)
		}

		if _, dup := idx.locByID[loc.ID]; dup {
			continue
		}

		ids := make([]string, 0, len(loc.Mutants))

		for _, id := range loc.Mutants {
			if _, ok := idx.mutants[id]; !ok {
				continue
			}

			if _, taken := idx.owner[id]; taken {
				continue
			}

			idx.owner[id] = len(idx.locations)
			ids = append(ids, id)
		}

		loc.Mutants = ids
		idx.locByID[loc.ID] = len(idx.locations)
		idx.locations = append(idx.locations, loc)
	}

	return idx
}

// Len returns the number of locations.
func (idx *Index) Len() int {
	return len(idx.locations)
}

// Location returns the location at position i in document order.
func (idx *Index) Location(i int) m.Location {
	return idx.locations[i]
}

// LocationPos returns the document position of a location id.
func (idx *Index) LocationPos(id string) (int, bool) {
	pos, ok := idx.locByID[id]
	return pos, ok
}

// Owner returns the document position of the location holding a mutant.
func (idx *Index) Owner(mutantID string) (int, bool) {
	pos, ok := idx.owner[mutantID]
	return pos, ok
}

// Mutant returns the mutant record for id.
func (idx *Index) Mutant(id string) (m.Mutant, bool) {
	mu, ok := idx.mutants[id]
	return mu, ok
}

// Kills returns how many mutants a test case killed.
func (idx *Index) Kills(testCase string) int {
	return idx.kills[testCase]
}
