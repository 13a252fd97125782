package navigator

import (
	"log/slog"
	"sort"
	"strings"

	m "gooze.dev/pkg/mutview/internal/model"
)

// Address layout of the treemap: RootMarker followed by one
// AddressSeparator-prefixed name per level, e.g. "root_src_parser".
const (
	RootMarker       = "root"
	AddressSeparator = "_"
)

// Tile is one child of the displayed node with its aggregates.
type Tile struct {
	Name   string
	Folder bool
	Score  float64
	Locs   int
}

// TreemapView is what the presenter draws for the current node.
type TreemapView struct {
	Title string
	Node  *m.Node
	Path  []string
	Score float64
	Locs  int
	Tiles []Tile
}

// TreemapPresenter draws the treemap and performs the navigations that leave
// the treemap.
type TreemapPresenter interface {
	RenderTreemap(view TreemapView)
	// OpenFile shows the per-file page of a leaf, path joined with "/".
	OpenFile(path m.Path)
	// OpenListing shows the top-level report listing.
	OpenListing()
}

// Treemap is the drill-down navigator. stack holds the ancestors of current
// and path the names taken from the root; both always have the same length.
type Treemap struct {
	root      *m.Node
	current   *m.Node
	stack     []*m.Node
	path      []string
	presenter TreemapPresenter
	bar       AddressBar
}

// NewTreemap creates a navigator positioned at root. bar may be nil.
func NewTreemap(root *m.Node, presenter TreemapPresenter, bar AddressBar) *Treemap {
	t := &Treemap{
		root:      root,
		current:   root,
		presenter: presenter,
		bar:       bar,
	}

	if bar != nil {
		bar.Subscribe(t.Reconcile)
	}

	return t
}

// Load positions the navigator at the current address and renders it.
func (t *Treemap) Load() {
	if t.bar != nil {
		t.rebuild(t.bar.Fragment())
	}

	t.render()
}

// Current returns the displayed node.
func (t *Treemap) Current() *m.Node {
	return t.current
}

// Depth returns the number of drill-ins from the root.
func (t *Treemap) Depth() int {
	return len(t.stack)
}

// Path returns the names taken from the root to the current node.
func (t *Treemap) Path() []string {
	return append([]string(nil), t.path...)
}

// Stack returns the ancestors of the current node, root first.
func (t *Treemap) Stack() []*m.Node {
	return append([]*m.Node(nil), t.stack...)
}

// Address returns the canonical address of the current position.
func (t *Treemap) Address() string {
	return EncodeAddress(t.path)
}

// DrillIn descends into the folder child called name. A file child opens its
// per-file page instead and leaves the state unchanged. It reports whether
// the displayed node changed.
func (t *Treemap) DrillIn(name string) bool {
	child, ok := t.current.Child(name)
	if !ok {
		slog.Debug("unknown treemap child", "name", name, "address", t.Address())
		return false
	}

	if child.IsLeaf() {
		path := m.Path(strings.Join(append(t.Path(), name), "/"))
		slog.Debug("opening file", "path", path)
		t.presenter.OpenFile(path)

		return false
	}

	t.stack = append(t.stack, t.current)
	t.path = append(t.path, name)
	t.current = child

	slog.Debug("drilled in", "address", t.Address())
	t.render()
	t.write()

	return true
}

// DrillOut returns to the parent of the current node, or opens the report
// listing when already at the root.
func (t *Treemap) DrillOut() {
	if len(t.stack) == 0 {
		slog.Debug("drill out at root, opening listing")
		t.presenter.OpenListing()

		return
	}

	last := len(t.stack) - 1
	t.current = t.stack[last]
	t.stack = t.stack[:last]
	t.path = t.path[:last]

	slog.Debug("drilled out", "address", t.Address())
	t.render()
	t.write()
}

// Reconcile rebuilds the navigator from the root when address differs from
// the canonical address of the current position.
func (t *Treemap) Reconcile(address string) {
	if address == t.Address() {
		return
	}

	t.rebuild(address)
	t.render()
}

func (t *Treemap) rebuild(address string) {
	t.stack = nil
	t.path = nil
	t.current = t.root

	stack, path, ok := DecodeAddress(t.root, address)
	if !ok {
		slog.Debug("ignoring malformed treemap address", "address", address)
		return
	}

	t.stack = stack
	t.path = path

	if len(stack) > 0 {
		current, _ := stack[len(stack)-1].Child(path[len(path)-1])
		t.current = current
	}

	slog.Debug("treemap rebuilt", "address", t.Address(), "depth", len(t.stack))
}

func (t *Treemap) render() {
	view := TreemapView{
		Title: strings.Join(append([]string{t.root.Name}, t.path...), "/"),
		Node:  t.current,
		Path:  t.Path(),
		Score: t.current.AggregateScore(),
		Locs:  t.current.AggregateLocs(),
		Tiles: make([]Tile, 0, len(t.current.Children)),
	}

	for _, child := range t.current.Children {
		view.Tiles = append(view.Tiles, Tile{
			Name:   child.Name,
			Folder: !child.IsLeaf(),
			Score:  child.AggregateScore(),
			Locs:   child.AggregateLocs(),
		})
	}

	t.presenter.RenderTreemap(view)
}

func (t *Treemap) write() {
	if t.bar == nil {
		return
	}

	if address := t.Address(); t.bar.Fragment() != address {
		t.bar.SetFragment(address)
	}
}

// EncodeAddress serialises a path of names as a treemap address.
func EncodeAddress(path []string) string {
	return strings.Join(append([]string{RootMarker}, path...), AddressSeparator)
}

// DecodeAddress walks root along address and returns the ancestors visited
// and the names taken. Child names may themselves contain the separator; at
// each level longer matching folder names are tried first. An empty address
// is the root. ok is false when the address does not name a folder below
// root.
func DecodeAddress(root *m.Node, address string) ([]*m.Node, []string, bool) {
	address = strings.TrimPrefix(address, "#")
	if address == "" || address == RootMarker {
		return nil, nil, true
	}

	rest, found := strings.CutPrefix(address, RootMarker+AddressSeparator)
	if !found || rest == "" {
		return nil, nil, false
	}

	return descend(root, rest)
}

func descend(node *m.Node, rest string) ([]*m.Node, []string, bool) {
	for _, child := range matchingFolders(node, rest) {
		if rest == child.Name {
			return []*m.Node{node}, []string{child.Name}, true
		}

		stack, path, ok := descend(child, rest[len(child.Name)+len(AddressSeparator):])
		if ok {
			return append([]*m.Node{node}, stack...), append([]string{child.Name}, path...), true
		}
	}

	return nil, nil, false
}

// matchingFolders returns the folder children of node whose name is a whole
// leading segment run of rest, longest name first.
func matchingFolders(node *m.Node, rest string) []*m.Node {
	matches := make([]*m.Node, 0, 1)

	for _, child := range node.Children {
		if child.IsLeaf() || child.Name == "" {
			continue
		}

		if rest == child.Name || strings.HasPrefix(rest, child.Name+AddressSeparator) {
			matches = append(matches, child)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return len(matches[i].Name) > len(matches[j].Name)
	})

	return matches
}
