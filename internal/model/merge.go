package model

// MergeReports combines report shards into one report. The first shard wins
// on conflicting mutant ids, titles and file leaves; locations of the same
// file are merged by id and test-case kill counts are summed.
func MergeReports(shards ...*Report) *Report {
	merged := &Report{}
	seenMutants := make(map[string]struct{})
	fileIndex := make(map[Path]int)

	for _, shard := range shards {
		if shard == nil {
			continue
		}

		if merged.Title == "" {
			merged.Title = shard.Title
		}

		merged.Statuses = appendUnique(merged.Statuses, shard.Statuses...)
		merged.KindGroups = appendUnique(merged.KindGroups, shard.KindGroups...)

		for _, mu := range shard.Mutants {
			if _, ok := seenMutants[mu.ID]; ok {
				continue
			}

			seenMutants[mu.ID] = struct{}{}
			merged.Mutants = append(merged.Mutants, mu)
		}

		for _, file := range shard.Files {
			i, ok := fileIndex[file.Path]
			if !ok {
				fileIndex[file.Path] = len(merged.Files)
				merged.Files = append(merged.Files, SourceFile{Path: file.Path})
				i = len(merged.Files) - 1
			}

			merged.Files[i].Locations = mergeLocations(merged.Files[i].Locations, file.Locations)
		}

		for name, kills := range shard.TestCases {
			if merged.TestCases == nil {
				merged.TestCases = make(map[string]int)
			}

			merged.TestCases[name] += kills
		}

		merged.Tree = mergeNodes(merged.Tree, shard.Tree)
	}

	return merged
}

func mergeLocations(into, from []Location) []Location {
	byID := make(map[string]int, len(into))
	for i, loc := range into {
		byID[locationKey(loc)] = i
	}

	for _, loc := range from {
		i, ok := byID[locationKey(loc)]
		if !ok {
			byID[locationKey(loc)] = len(into)
			loc.Mutants = append([]string(nil), loc.Mutants...)
			into = append(into, loc)

			continue
		}

		into[i].Mutants = appendUnique(into[i].Mutants, loc.Mutants...)
		if into[i].Text == "" {
			into[i].Text = loc.Text
		}
	}

	return into
}

func locationKey(loc Location) string {
	if loc.ID != "" {
		return loc.ID
	}

	return LocationID(loc.Line)
}

func mergeNodes(into, from *Node) *Node {
	switch {
	case from == nil:
		return into
	case into == nil:
		return cloneNode(from)
	case into.IsLeaf() || from.IsLeaf():
		return into
	}

	for _, child := range from.Children {
		existing, ok := into.Child(child.Name)
		if !ok {
			into.Children = append(into.Children, cloneNode(child))
			continue
		}

		mergeNodes(existing, child)
	}

	return into
}

func cloneNode(n *Node) *Node {
	clone := *n
	if n.Children == nil {
		return &clone
	}

	clone.Children = make([]*Node, 0, len(n.Children))
	for _, child := range n.Children {
		clone.Children = append(clone.Children, cloneNode(child))
	}

	return &clone
}

func appendUnique[T comparable](into []T, values ...T) []T {
	for _, v := range values {
		found := false

		for _, existing := range into {
			if existing == v {
				found = true
				break
			}
		}

		if !found {
			into = append(into, v)
		}
	}

	return into
}
