package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	m "gooze.dev/pkg/mutview/internal/model"
)

// SortColumn is a column of the report listing.
type SortColumn string

// Available SortColumn values.
const (
	SortByPath      SortColumn = "path"
	SortByLocations SortColumn = "locations"
	SortByMutants   SortColumn = "mutants"
	SortByAlive     SortColumn = "alive"
	SortByKilled    SortColumn = "killed"
	SortByScore     SortColumn = "score"
)

// ParseSortColumn parses a column name; the empty string sorts by path.
func ParseSortColumn(value string) (SortColumn, error) {
	column := SortColumn(strings.ToLower(strings.TrimSpace(value)))

	switch column {
	case SortByPath, SortByLocations, SortByMutants, SortByAlive, SortByKilled, SortByScore:
		return column, nil
	case "":
		return SortByPath, nil
	}

	return "", fmt.Errorf("unknown sort column %q", value)
}

// Summarize returns one listing row per source file of report, in report
// order. The score of a file is read from the report tree when it has one.
func Summarize(report *m.Report) []m.FileSummary {
	byID := make(map[string]m.Mutant, len(report.Mutants))
	for _, mu := range report.Mutants {
		byID[mu.ID] = mu
	}

	scores := leafScores(report.Tree)
	rows := make([]m.FileSummary, 0, len(report.Files))

	for _, file := range report.Files {
		row := m.FileSummary{Path: file.Path, Locations: len(file.Locations)}
		mutants := make([]m.Mutant, 0)

		for _, loc := range file.Locations {
			for _, id := range loc.Mutants {
				mu, ok := byID[id]
				if !ok {
					continue
				}

				mutants = append(mutants, mu)

				switch mu.Status {
				case m.StatusAlive:
					row.Alive++
				case m.StatusKilled, m.StatusTimeout, m.StatusKilledByCompiler:
					row.Killed++
				}
			}
		}

		row.Mutants = len(mutants)

		if score, ok := scores[file.Path]; ok {
			row.Score = score
		} else {
			row.Score = mutationScore(mutants)
		}

		rows = append(rows, row)
	}

	return rows
}

// leafScores maps the "/"-joined path of every scored file below root to its
// score. The root name itself is not part of the path.
func leafScores(root *m.Node) map[m.Path]float64 {
	scores := make(map[m.Path]float64)
	if root == nil {
		return scores
	}

	var walk func(node *m.Node, prefix []string)

	walk = func(node *m.Node, prefix []string) {
		for _, child := range node.Children {
			path := append(slices.Clone(prefix), child.Name)

			if !child.IsLeaf() {
				walk(child, path)
				continue
			}

			if child.Score != nil {
				scores[m.Path(strings.Join(path, "/"))] = *child.Score
			}
		}
	}

	walk(root, nil)

	return scores
}

// SortSummaries orders rows in place by column, breaking ties by path.
func SortSummaries(rows []m.FileSummary, column SortColumn, desc bool) {
	slices.SortStableFunc(rows, func(a, b m.FileSummary) int {
		order := compareSummaries(a, b, column)
		if order == 0 && column != SortByPath {
			return cmp.Compare(a.Path, b.Path)
		}

		if desc {
			return -order
		}

		return order
	})
}

func compareSummaries(a, b m.FileSummary, column SortColumn) int {
	switch column {
	case SortByLocations:
		return cmp.Compare(a.Locations, b.Locations)
	case SortByMutants:
		return cmp.Compare(a.Mutants, b.Mutants)
	case SortByAlive:
		return cmp.Compare(a.Alive, b.Alive)
	case SortByKilled:
		return cmp.Compare(a.Killed, b.Killed)
	case SortByScore:
		return cmp.Compare(a.Score, b.Score)
	case SortByPath:
	}

	return cmp.Compare(a.Path, b.Path)
}

// FilterSummaries keeps the rows whose path contains query, ignoring case.
// An empty query keeps every row.
func FilterSummaries(rows []m.FileSummary, query string) []m.FileSummary {
	query = strings.ToUpper(strings.TrimSpace(query))
	if query == "" {
		return rows
	}

	kept := make([]m.FileSummary, 0, len(rows))

	for _, row := range rows {
		if strings.Contains(strings.ToUpper(string(row.Path)), query) {
			kept = append(kept, row)
		}
	}

	return kept
}
