package navigator

import (
	"log/slog"

	m "gooze.dev/pkg/mutview/internal/model"
)

// Filter holds the kind-groups and statuses excluded from candidate sets.
// The zero value excludes nothing.
type Filter struct {
	groups   map[m.KindGroup]struct{}
	statuses map[m.Status]struct{}
}

// ToggleKindGroup flips the exclusion of group and reports whether it is now
// excluded.
func (f *Filter) ToggleKindGroup(group m.KindGroup) bool {
	if f.groups == nil {
		f.groups = make(map[m.KindGroup]struct{})
	}

	if _, ok := f.groups[group]; ok {
		delete(f.groups, group)
		slog.Debug("kind-group included", "group", group)

		return false
	}

	f.groups[group] = struct{}{}
	slog.Debug("kind-group excluded", "group", group)

	return true
}

// ToggleStatus flips the exclusion of status and reports whether it is now
// excluded.
func (f *Filter) ToggleStatus(status m.Status) bool {
	if f.statuses == nil {
		f.statuses = make(map[m.Status]struct{})
	}

	if _, ok := f.statuses[status]; ok {
		delete(f.statuses, status)
		slog.Debug("status included", "status", status)

		return false
	}

	f.statuses[status] = struct{}{}
	slog.Debug("status excluded", "status", status)

	return true
}

// KindGroupExcluded reports whether group is excluded.
func (f *Filter) KindGroupExcluded(group m.KindGroup) bool {
	_, ok := f.groups[group]
	return ok
}

// StatusExcluded reports whether status is excluded.
func (f *Filter) StatusExcluded(status m.Status) bool {
	_, ok := f.statuses[status]
	return ok
}

// Excludes reports whether mu is hidden by either exclusion set.
func (f *Filter) Excludes(mu m.Mutant) bool {
	return f.KindGroupExcluded(mu.Group) || f.StatusExcluded(mu.Status)
}

// Apply returns the ids that survive filtering, in their original order.
func (f *Filter) Apply(idx *Index, ids []string) []string {
	kept := make([]string, 0, len(ids))

	for _, id := range ids {
		mu, ok := idx.Mutant(id)
		if !ok || f.Excludes(mu) {
			continue
		}

		kept = append(kept, id)
	}

	return kept
}
