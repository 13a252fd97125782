package domain

import (
	m "gooze.dev/pkg/mutview/internal/model"
)

// mutationScore returns the share of detected mutants in [0, 1]. Equivalent,
// skipped and unknown mutants are excluded from the denominator; a set with
// nothing left to score counts as fully detected.
func mutationScore(mutants []m.Mutant) float64 {
	killed := 0
	total := 0

	for _, mu := range mutants {
		switch mu.Status {
		case m.StatusKilled, m.StatusTimeout, m.StatusKilledByCompiler:
			killed++
			total++
		case m.StatusAlive, m.StatusNoCoverage:
			total++
		case m.StatusEquivalent, m.StatusSkipped, m.StatusUnknown:
			// Not scored.
		}
	}

	if total == 0 {
		return 1.0
	}

	return float64(killed) / float64(total)
}
