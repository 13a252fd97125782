package navigator

import (
	"log/slog"
	"slices"

	m "gooze.dev/pkg/mutview/internal/model"
)

// NoneID is the picker value meaning "no active mutant".
const NoneID = "none"

// State is the coarse state of a Selector.
type State int

// Available State values.
const (
	NoSelection State = iota
	LocationSelected
	MutantSelected
)

func (s State) String() string {
	switch s {
	case NoSelection:
		return "no selection"
	case LocationSelected:
		return "location selected"
	case MutantSelected:
		return "mutant selected"
	}

	return "unknown"
}

// Candidate is one entry of the mutant picker.
type Candidate struct {
	ID    string
	Label string
}

// TestCase is a covering test case listed in the info panel.
type TestCase struct {
	Name  string
	Kills int
}

// MutantInfo is the content of the info panel for the active mutant.
type MutantInfo struct {
	Mutant    m.Mutant
	Location  m.Location
	TestCases []TestCase
}

// SourcePresenter reflects the selection visually. Implementations must not
// call back into the Selector.
type SourcePresenter interface {
	// ShowLocation highlights the active location.
	ShowLocation(loc m.Location)
	// ShowCandidates rebuilds the mutant picker; active is "" for none.
	ShowCandidates(candidates []Candidate, active string)
	// ShowMutant shows the replacement text and info panel, or clears both
	// when info is nil.
	ShowMutant(info *MutantInfo)
	// ScrollTo brings the element with id into view, centring it if asked.
	ScrollTo(id string, center bool)
}

// Selector is the selection state machine of one source page.
type Selector struct {
	idx       *Index
	filter    Filter
	presenter SourcePresenter
	opts      Options
	publish   func(fragment string)

	loc    int
	mutant string
}

// NewSelector creates a selector in the NoSelection state.
func NewSelector(idx *Index, presenter SourcePresenter, options ...Option) *Selector {
	opts := DefaultOptions()
	for _, option := range options {
		option(&opts)
	}

	return &Selector{
		idx:       idx,
		presenter: presenter,
		opts:      opts,
		loc:       -1,
	}
}

// Index returns the page index the selector navigates.
func (s *Selector) Index() *Index {
	return s.idx
}

// Options returns the selector configuration.
func (s *Selector) Options() Options {
	return s.opts
}

// State returns the current state.
func (s *Selector) State() State {
	switch {
	case s.loc < 0:
		return NoSelection
	case s.mutant == "":
		return LocationSelected
	default:
		return MutantSelected
	}
}

// ActiveLocation returns the active location.
func (s *Selector) ActiveLocation() (m.Location, bool) {
	if s.loc < 0 {
		return m.Location{}, false
	}

	return s.idx.Location(s.loc), true
}

// ActiveMutant returns the active mutant.
func (s *Selector) ActiveMutant() (m.Mutant, bool) {
	if s.mutant == "" {
		return m.Mutant{}, false
	}

	return s.idx.Mutant(s.mutant)
}

// Candidates returns the ids of the active location's mutants that survive
// the filter, in document order.
func (s *Selector) Candidates() []string {
	if s.loc < 0 {
		return nil
	}

	return s.filter.Apply(s.idx, s.idx.Location(s.loc).Mutants)
}

// KindGroupExcluded reports whether group is filtered out.
func (s *Selector) KindGroupExcluded(group m.KindGroup) bool {
	return s.filter.KindGroupExcluded(group)
}

// StatusExcluded reports whether status is filtered out.
func (s *Selector) StatusExcluded(status m.Status) bool {
	return s.filter.StatusExcluded(status)
}

// Fragment returns the canonical address of the current state: the active
// mutant id, else the active location id.
func (s *Selector) Fragment() string {
	if s.mutant != "" {
		return s.mutant
	}

	if loc, ok := s.ActiveLocation(); ok {
		return loc.ID
	}

	return ""
}

// SelectLocation makes the location with id active. Unless preserve is set
// the active mutant is cleared; with preserve it is kept when it still
// belongs to the candidate set. Unknown ids keep the current location, or
// fall back to the first one when nothing is selected yet.
func (s *Selector) SelectLocation(id string, preserve bool) {
	pos, ok := s.idx.LocationPos(id)
	if !ok {
		slog.Debug("unknown location", "id", id)

		switch {
		case s.loc >= 0:
			pos = s.loc
		case s.idx.Len() > 0:
			pos = 0
		default:
			return
		}
	}

	mutant := ""
	if preserve && slices.Contains(s.filter.Apply(s.idx, s.idx.Location(pos).Mutants), s.mutant) {
		mutant = s.mutant
	}

	slog.Debug("location selected", "location", s.idx.Location(pos).ID, "preserve", preserve, "mutant", mutant)
	s.activate(pos, mutant)
}

// activate paints location pos with mutant active and publishes the new
// address. mutant must be "" or a candidate of pos.
func (s *Selector) activate(pos int, mutant string) {
	s.loc = pos
	s.mutant = mutant

	s.presenter.ShowLocation(s.idx.Location(pos))
	s.render()
	s.emit(s.Fragment())
}

// SelectMutant makes the mutant with id active within the active location.
// NoneID or "" clears the active mutant; ids outside the candidate set are
// treated as NoneID.
func (s *Selector) SelectMutant(id string) {
	if s.loc < 0 {
		slog.Debug("mutant selected without location", "mutant", id)
		return
	}

	previous := s.mutant

	switch {
	case id == "" || id == NoneID:
		s.mutant = ""
	case slices.Contains(s.Candidates(), id):
		s.mutant = id
	default:
		slog.Debug("mutant not a candidate", "mutant", id, "location", s.idx.Location(s.loc).ID)
		s.mutant = ""
	}

	s.render()

	if s.mutant != previous {
		s.emit(s.mutant)
	}
}

// TraverseLocation moves to the next (dir > 0) or previous (dir < 0)
// location in document order and clears the active mutant.
func (s *Selector) TraverseLocation(dir int) {
	n := s.idx.Len()
	if n == 0 || dir == 0 {
		return
	}

	next, ok := s.step(s.loc, sign(dir))
	if !ok {
		return
	}

	previous := s.loc
	id := s.idx.Location(next).ID

	s.SelectLocation(id, false)

	if previous != next {
		s.presenter.ScrollTo(id, true)
	}
}

// TraverseMutant moves through the picker entries of the active location,
// "none" first. Past either end the configured MutantPolicy applies.
// Wheel input never moves the viewport.
func (s *Selector) TraverseMutant(dir int, input Input) {
	if s.loc < 0 || dir == 0 {
		return
	}

	entries := append([]string{""}, s.Candidates()...)
	pos := slices.Index(entries, s.mutant)

	if pos < 0 {
		pos = 0
	}

	target := pos + sign(dir)

	if target < 0 || target >= len(entries) {
		switch s.opts.MutantPolicy {
		case PolicyStop:
			return
		case PolicyLoop:
			target = (target + len(entries)) % len(entries)
		case PolicyFallthrough:
			s.fallThrough(sign(dir), input)
			return
		}
	}

	s.SelectMutant(entries[target])

	if input == InputKey {
		s.presenter.ScrollTo(s.Fragment(), false)
	}
}

// fallThrough activates the first (dir > 0) or last (dir < 0) candidate of
// the nearest location in direction dir that has any.
func (s *Selector) fallThrough(dir int, input Input) {
	pos := s.loc

	for i, n := 0, s.idx.Len(); i < n; i++ {
		next, ok := s.step(pos, dir)
		if !ok {
			return
		}

		pos = next
		candidates := s.filter.Apply(s.idx, s.idx.Location(pos).Mutants)

		if len(candidates) == 0 {
			continue
		}

		target := candidates[0]
		if dir < 0 {
			target = candidates[len(candidates)-1]
		}

		slog.Debug("falling through", "location", s.idx.Location(pos).ID, "mutant", target)
		s.activate(pos, target)

		if input == InputKey {
			s.presenter.ScrollTo(s.idx.Location(pos).ID, true)
		}

		return
	}

	slog.Debug("no candidates to fall through to", "direction", dir)
}

// ToggleKindGroup flips the exclusion of group and refreshes the picker.
func (s *Selector) ToggleKindGroup(group m.KindGroup) {
	s.filter.ToggleKindGroup(group)
	s.refilter()
}

// ToggleStatus flips the exclusion of status and refreshes the picker.
func (s *Selector) ToggleStatus(status m.Status) {
	s.filter.ToggleStatus(status)
	s.refilter()
}

func (s *Selector) refilter() {
	if s.loc < 0 {
		return
	}

	if s.mutant != "" && !slices.Contains(s.Candidates(), s.mutant) {
		slog.Debug("active mutant filtered out", "mutant", s.mutant)
		s.mutant = ""
		s.emit("")
	}

	s.render()
}

// restoreMutant activates a deep-linked mutant and its owning location.
func (s *Selector) restoreMutant(id string) bool {
	pos, ok := s.idx.Owner(id)
	if !ok {
		return false
	}

	if !slices.Contains(s.filter.Apply(s.idx, s.idx.Location(pos).Mutants), id) {
		slog.Debug("deep-linked mutant filtered out", "mutant", id)
		id = ""
	}

	s.activate(pos, id)

	return true
}

// step returns the neighbour of pos in direction dir, honouring the location
// loop setting. A negative pos starts from the matching end.
func (s *Selector) step(pos, dir int) (int, bool) {
	n := s.idx.Len()

	if pos < 0 {
		if dir > 0 {
			return 0, true
		}

		return n - 1, true
	}

	next := pos + dir

	if next >= 0 && next < n {
		return next, true
	}

	if !s.opts.LoopLocations {
		return pos, false
	}

	return (next + n) % n, true
}

func (s *Selector) render() {
	ids := s.Candidates()
	candidates := make([]Candidate, 0, len(ids))

	for _, id := range ids {
		mu, _ := s.idx.Mutant(id)
		candidates = append(candidates, Candidate{ID: id, Label: CandidateLabel(mu)})
	}

	s.presenter.ShowCandidates(candidates, s.mutant)
	s.presenter.ShowMutant(s.info())
}

func (s *Selector) info() *MutantInfo {
	mu, ok := s.ActiveMutant()
	if !ok {
		return nil
	}

	info := &MutantInfo{
		Mutant:   mu,
		Location: s.idx.Location(s.loc),
	}

	for _, name := range mu.TestCases {
		if len(info.TestCases) >= s.opts.TestCases {
			break
		}

		info.TestCases = append(info.TestCases, TestCase{Name: name, Kills: s.idx.Kills(name)})
	}

	return info
}

func (s *Selector) emit(fragment string) {
	if s.publish != nil {
		s.publish(fragment)
	}
}

// CandidateLabel is the picker text of a mutant: "+" for alive mutants
// followed by the quoted replacement text.
func CandidateLabel(mu m.Mutant) string {
	label := "'" + mu.Mutated + "'"
	if mu.Alive() {
		return "+" + label
	}

	return label
}

func sign(v int) int {
	if v < 0 {
		return -1
	}

	return 1
}
