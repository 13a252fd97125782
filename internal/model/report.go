package model

// Report is the preloaded, read-only dataset produced by the report generator.
type Report struct {
	Title      string         `yaml:"title,omitempty" json:"title,omitempty" msgpack:"title,omitempty"`
	Statuses   []Status       `yaml:"statuses,omitempty" json:"statuses,omitempty" msgpack:"statuses,omitempty"`
	KindGroups []KindGroup    `yaml:"kind_groups,omitempty" json:"kind_groups,omitempty" msgpack:"kind_groups,omitempty"`
	Mutants    []Mutant       `yaml:"mutants" json:"mutants" msgpack:"mutants"`
	Files      []SourceFile   `yaml:"files" json:"files" msgpack:"files"`
	TestCases  map[string]int `yaml:"test_cases,omitempty" json:"test_cases,omitempty" msgpack:"test_cases,omitempty"`
	Tree       *Node          `yaml:"tree,omitempty" json:"tree,omitempty" msgpack:"tree,omitempty"`
}

// File returns the source file with the given path.
func (r *Report) File(path Path) (SourceFile, bool) {
	for _, file := range r.Files {
		if file.Path == path {
			return file, true
		}
	}

	return SourceFile{}, false
}

// StatusOrder returns the declared status set, or DefaultStatuses.
func (r *Report) StatusOrder() []Status {
	if len(r.Statuses) > 0 {
		return r.Statuses
	}

	return DefaultStatuses
}

// KindGroupOrder returns the declared kind-groups, or the groups seen on
// mutants in first-appearance order.
func (r *Report) KindGroupOrder() []KindGroup {
	if len(r.KindGroups) > 0 {
		return r.KindGroups
	}

	seen := make(map[KindGroup]struct{})
	groups := make([]KindGroup, 0)

	for _, mu := range r.Mutants {
		if _, ok := seen[mu.Group]; ok {
			continue
		}

		seen[mu.Group] = struct{}{}
		groups = append(groups, mu.Group)
	}

	return groups
}

// Node is one entry of the folder/file hierarchy shown by the treemap.
// A node with nil Children is a file.
type Node struct {
	Name     string   `yaml:"name" json:"name" msgpack:"name"`
	Score    *float64 `yaml:"score,omitempty" json:"score,omitempty" msgpack:"score,omitempty"`
	Locs     *int     `yaml:"locs,omitempty" json:"locs,omitempty" msgpack:"locs,omitempty"`
	Children []*Node  `yaml:"children,omitempty" json:"children,omitempty" msgpack:"children,omitempty"`
}

// IsLeaf reports whether the node is a file.
func (n *Node) IsLeaf() bool {
	return n.Children == nil
}

// Child returns the direct child with the given name.
func (n *Node) Child(name string) (*Node, bool) {
	for _, child := range n.Children {
		if child.Name == name {
			return child, true
		}
	}

	return nil, false
}

// Leaves returns the files below n, or n itself for a file.
func (n *Node) Leaves() []*Node {
	if n.IsLeaf() {
		return []*Node{n}
	}

	leaves := make([]*Node, 0)
	for _, child := range n.Children {
		leaves = append(leaves, child.Leaves()...)
	}

	return leaves
}

// AggregateScore returns the file score, or the average score of all files
// below a folder. Files without a score count as zero.
func (n *Node) AggregateScore() float64 {
	if n.IsLeaf() && n.Score != nil {
		return *n.Score
	}

	leaves := n.Leaves()
	if len(leaves) == 0 {
		return 0
	}

	sum := 0.0

	for _, leaf := range leaves {
		if leaf.Score != nil {
			sum += *leaf.Score
		}
	}

	return sum / float64(len(leaves))
}

// AggregateLocs returns the file line count, or the sum over a folder.
func (n *Node) AggregateLocs() int {
	if n.IsLeaf() {
		if n.Locs == nil {
			return 0
		}

		return *n.Locs
	}

	total := 0
	for _, child := range n.Children {
		total += child.AggregateLocs()
	}

	return total
}
