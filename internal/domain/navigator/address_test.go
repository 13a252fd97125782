package navigator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "gooze.dev/pkg/mutview/internal/model"
)

func newSampleSync(fragment string, options ...Option) (*SourceSync, *Selector, *recordingPresenter, *fakeBar) {
	sel, presenter := newSampleSelector(options...)
	bar := &fakeBar{fragment: fragment}
	sync := NewSourceSync(sel, bar)

	return sync, sel, presenter, bar
}

func TestSourceSync_Load(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		location string
		mutant   string
	}{
		{name: "empty", fragment: "", location: "L1"},
		{name: "mutant", fragment: "M3", location: "L2", mutant: "M3"},
		{name: "location", fragment: "L2", location: "L2"},
		{name: "unknown", fragment: "bogus", location: "L1"},
		{name: "none", fragment: NoneID, location: "L1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sync, sel, _, bar := newSampleSync(tt.fragment)

			sync.Load()

			loc, ok := sel.ActiveLocation()
			require.True(t, ok)
			assert.Equal(t, tt.location, loc.ID)

			mu, _ := sel.ActiveMutant()
			assert.Equal(t, tt.mutant, mu.ID)
			assert.Empty(t, bar.writes, "load never rewrites the address")
		})
	}
}

func TestSourceSync_LoadCentresDeepLink(t *testing.T) {
	sync, _, presenter, _ := newSampleSync("M2")

	sync.Load()

	assert.Equal(t, []scroll{{id: "M2", center: true}}, presenter.scrolls)
}

func TestSourceSync_LoadEmptyPage(t *testing.T) {
	presenter := &recordingPresenter{}
	sel := NewSelector(NewIndex(&m.Report{}, m.SourceFile{}), presenter)
	bar := &fakeBar{fragment: "M1"}

	NewSourceSync(sel, bar).Load()

	assert.Equal(t, NoSelection, sel.State())
	assert.Empty(t, bar.writes)
}

func TestSourceSync_WritesTransitions(t *testing.T) {
	sync, sel, _, bar := newSampleSync("")
	sync.Load()

	sel.TraverseMutant(1, InputKey)
	sel.TraverseMutant(1, InputKey)
	sel.TraverseMutant(1, InputKey)
	sel.TraverseLocation(1)
	sel.SelectMutant("M1")

	assert.Equal(t, []string{"M1", "M2", "M3", "L3"}, bar.writes)
}

func TestSourceSync_ClearingMutantWritesEmptyFragment(t *testing.T) {
	sync, sel, _, bar := newSampleSync("M1")
	sync.Load()

	sel.SelectMutant(NoneID)

	assert.Equal(t, []string{""}, bar.writes)
	assert.Empty(t, bar.fragment)
}

func TestSourceSync_FilterClearsFragment(t *testing.T) {
	sync, sel, _, bar := newSampleSync("M2")
	sync.Load()

	sel.ToggleStatus(m.StatusKilled)

	assert.Equal(t, []string{""}, bar.writes)
}

func TestSourceSync_Reconcile(t *testing.T) {
	sync, sel, presenter, bar := newSampleSync("")
	sync.Load()

	bar.navigate("M2")

	loc, _ := sel.ActiveLocation()
	mu, _ := sel.ActiveMutant()
	assert.Equal(t, "L1", loc.ID)
	assert.Equal(t, "M2", mu.ID)
	assert.Equal(t, scroll{id: "M2", center: true}, presenter.scrolls[len(presenter.scrolls)-1])

	bar.navigate("L3")

	loc, _ = sel.ActiveLocation()
	assert.Equal(t, "L3", loc.ID)
	assert.Equal(t, LocationSelected, sel.State())
	assert.Empty(t, bar.writes, "reconciliation does not echo the address back")
}

func TestSourceSync_ReconcileEmptyFragmentClearsMutant(t *testing.T) {
	sync, sel, _, bar := newSampleSync("M3")
	sync.Load()

	bar.navigate("")

	loc, _ := sel.ActiveLocation()
	assert.Equal(t, "L2", loc.ID)
	assert.Equal(t, LocationSelected, sel.State())
	assert.Empty(t, bar.writes)
}

func TestSourceSync_ReconcileIgnoresCanonicalAndUnknown(t *testing.T) {
	sync, sel, presenter, bar := newSampleSync("M1")
	sync.Load()
	renders := presenter.renders

	bar.navigate("M1")
	assert.Equal(t, renders, presenter.renders)

	bar.navigate("bogus")
	assert.Equal(t, renders, presenter.renders)

	mu, _ := sel.ActiveMutant()
	assert.Equal(t, "M1", mu.ID)
}

func TestSourceSync_ReconcileFilteredMutantCanonicalises(t *testing.T) {
	sync, sel, _, bar := newSampleSync("")
	sync.Load()
	sel.ToggleStatus(m.StatusKilled)

	bar.navigate("M2")

	loc, _ := sel.ActiveLocation()
	assert.Equal(t, "L1", loc.ID)
	assert.Equal(t, LocationSelected, sel.State())
	assert.Equal(t, "L1", bar.fragment)
	assert.Equal(t, []string{"L1"}, bar.replaces)
	assert.NotContains(t, bar.writes, "L1", "canonical fragment replaces the entry instead of pushing one")
}

func TestSourceSync_CanonicalFragmentRoundTrip(t *testing.T) {
	for _, fragment := range []string{"M1", "M2", "M3", "L1", "L2", "L3"} {
		t.Run(fragment, func(t *testing.T) {
			sync, sel, _, _ := newSampleSync(fragment)
			sync.Load()

			assert.Equal(t, fragment, sel.Fragment())

			other, otherSel, _, _ := newSampleSync(sel.Fragment())
			other.Load()
			assert.Equal(t, sel.Fragment(), otherSel.Fragment())
		})
	}
}
