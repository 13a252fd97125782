package navigator

import (
	m "gooze.dev/pkg/mutview/internal/model"
)

type recordingPresenter struct {
	location   m.Location
	candidates []Candidate
	active     string
	info       *MutantInfo
	scrolls    []scroll
	renders    int
}

type scroll struct {
	id     string
	center bool
}

func (p *recordingPresenter) ShowLocation(loc m.Location) { p.location = loc }

func (p *recordingPresenter) ShowCandidates(candidates []Candidate, active string) {
	p.candidates = candidates
	p.active = active
	p.renders++
}

func (p *recordingPresenter) ShowMutant(info *MutantInfo) { p.info = info }

func (p *recordingPresenter) ScrollTo(id string, center bool) {
	p.scrolls = append(p.scrolls, scroll{id: id, center: center})
}

func (p *recordingPresenter) candidateIDs() []string {
	ids := make([]string, 0, len(p.candidates))
	for _, c := range p.candidates {
		ids = append(ids, c.ID)
	}

	return ids
}

type fakeBar struct {
	fragment   string
	writes     []string
	replaces   []string
	subscriber func(string)
}

func (b *fakeBar) Fragment() string { return b.fragment }

func (b *fakeBar) SetFragment(fragment string) {
	b.fragment = fragment
	b.writes = append(b.writes, fragment)
}

func (b *fakeBar) ReplaceFragment(fragment string) {
	b.fragment = fragment
	b.replaces = append(b.replaces, fragment)
}

func (b *fakeBar) Subscribe(fn func(string)) { b.subscriber = fn }

// navigate simulates an external change of the address.
func (b *fakeBar) navigate(fragment string) {
	b.fragment = fragment
	if b.subscriber != nil {
		b.subscriber(fragment)
	}
}

// sampleReport holds L1 [M1 alive, M2 killed], L2 [M3 alive] and an empty L3.
func sampleReport() *m.Report {
	return &m.Report{
		Mutants: []m.Mutant{
			{ID: "M1", Status: m.StatusAlive, Kind: "rorLT", Group: "ror", Original: "a < b", Mutated: "a <= b", TestCases: []string{"t1", "t2", "t3", "t4"}},
			{ID: "M2", Status: m.StatusKilled, Kind: "aorSub", Group: "aor", Original: "a + b", Mutated: "a - b", Meta: "nomut"},
			{ID: "M3", Status: m.StatusAlive, Kind: "dcr", Group: "dcr", Original: "x", Mutated: "true"},
		},
		Files: []m.SourceFile{{
			Path: "src/main.c",
			Locations: []m.Location{
				{ID: "L1", Line: 1, Mutants: []string{"M1", "M2"}},
				{ID: "L2", Line: 2, Mutants: []string{"M3"}},
				{ID: "L3", Line: 3},
			},
		}},
		TestCases: map[string]int{"t1": 4, "t2": 1},
	}
}

func newSampleSelector(options ...Option) (*Selector, *recordingPresenter) {
	report := sampleReport()
	presenter := &recordingPresenter{}
	sel := NewSelector(NewIndex(report, report.Files[0]), presenter, options...)

	return sel, presenter
}
