package navigator

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "gooze.dev/pkg/mutview/internal/model"
)

func TestSelector_InitialState(t *testing.T) {
	sel, _ := newSampleSelector()

	assert.Equal(t, NoSelection, sel.State())
	assert.Empty(t, sel.Candidates())
	assert.Empty(t, sel.Fragment())

	_, ok := sel.ActiveLocation()
	assert.False(t, ok)
}

func TestSelector_SelectLocation(t *testing.T) {
	sel, presenter := newSampleSelector()

	sel.SelectLocation("L1", false)

	assert.Equal(t, LocationSelected, sel.State())
	assert.Equal(t, []string{"M1", "M2"}, sel.Candidates())
	assert.Equal(t, "L1", presenter.location.ID)
	assert.Equal(t, []string{"M1", "M2"}, presenter.candidateIDs())
	assert.Equal(t, "+'a <= b'", presenter.candidates[0].Label)
	assert.Equal(t, "'a - b'", presenter.candidates[1].Label)
	assert.Empty(t, presenter.active)
	assert.Nil(t, presenter.info)
	assert.Equal(t, "L1", sel.Fragment())
}

func TestSelector_SelectLocation_UnknownID(t *testing.T) {
	sel, _ := newSampleSelector()

	sel.SelectLocation("nope", false)
	loc, ok := sel.ActiveLocation()
	require.True(t, ok)
	assert.Equal(t, "L1", loc.ID, "falls back to the first location")

	sel.SelectLocation("L2", false)
	sel.SelectLocation("nope", false)
	loc, _ = sel.ActiveLocation()
	assert.Equal(t, "L2", loc.ID, "keeps the current location")
}

func TestSelector_SelectLocation_PreserveIdempotence(t *testing.T) {
	sel, _ := newSampleSelector()
	sel.SelectLocation("L1", false)
	sel.SelectMutant("M1")

	sel.SelectLocation("L1", true)
	mu, ok := sel.ActiveMutant()
	require.True(t, ok)
	assert.Equal(t, "M1", mu.ID)

	sel.SelectLocation("L1", false)
	_, ok = sel.ActiveMutant()
	assert.False(t, ok)
}

func TestSelector_SelectMutant(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{"candidate", "M2", "M2"},
		{"none", NoneID, ""},
		{"empty", "", ""},
		{"other location", "M3", ""},
		{"unknown", "ghost", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, presenter := newSampleSelector()
			sel.SelectLocation("L1", false)
			sel.SelectMutant("M1")

			sel.SelectMutant(tt.id)

			assert.Equal(t, tt.want, presenter.active)
			assert.Equal(t, tt.want == "", presenter.info == nil)

			if tt.want != "" {
				assert.Equal(t, MutantSelected, sel.State())
				assert.Equal(t, tt.want, presenter.info.Mutant.ID)
			} else {
				assert.Equal(t, LocationSelected, sel.State())
			}
		})
	}
}

func TestSelector_SelectMutant_WithoutLocation(t *testing.T) {
	sel, presenter := newSampleSelector()

	sel.SelectMutant("M1")

	assert.Equal(t, NoSelection, sel.State())
	assert.Zero(t, presenter.renders)
}

func TestSelector_InfoPanel(t *testing.T) {
	sel, presenter := newSampleSelector()
	sel.SelectLocation("L1", false)
	sel.SelectMutant("M1")

	require.NotNil(t, presenter.info)
	assert.Equal(t, "L1", presenter.info.Location.ID)
	assert.Equal(t, "a < b", presenter.info.Mutant.Original)
	assert.Equal(t, []TestCase{{"t1", 4}, {"t2", 1}, {"t3", 0}}, presenter.info.TestCases)

	sel, presenter = newSampleSelector(WithTestCases(1))
	sel.SelectLocation("L1", false)
	sel.SelectMutant("M1")
	assert.Len(t, presenter.info.TestCases, 1)
}

func TestSelector_TraverseMutant_FallthroughScenario(t *testing.T) {
	sel, presenter := newSampleSelector()
	sel.SelectLocation("L1", false)
	require.Equal(t, []string{"M1", "M2"}, sel.Candidates())

	sel.TraverseMutant(1, InputKey)
	sel.TraverseMutant(1, InputKey)

	mu, _ := sel.ActiveMutant()
	assert.Equal(t, "M2", mu.ID)

	sel.TraverseMutant(1, InputKey)

	loc, _ := sel.ActiveLocation()
	mu, _ = sel.ActiveMutant()
	assert.Equal(t, "L2", loc.ID)
	assert.Equal(t, "M3", mu.ID)
	assert.Equal(t, scroll{id: "L2", center: true}, presenter.scrolls[len(presenter.scrolls)-1])
}

func TestSelector_TraverseMutant_FallthroughBackward(t *testing.T) {
	sel, _ := newSampleSelector()
	sel.SelectLocation("L2", false)

	sel.TraverseMutant(-1, InputKey)

	loc, _ := sel.ActiveLocation()
	mu, _ := sel.ActiveMutant()
	assert.Equal(t, "L1", loc.ID)
	assert.Equal(t, "M2", mu.ID)

	sel.TraverseMutant(-1, InputKey)
	sel.TraverseMutant(-1, InputKey)
	assert.Equal(t, LocationSelected, sel.State(), "first candidate steps back to none")
}

func TestSelector_TraverseMutant_FallthroughSkipsEmptyLocations(t *testing.T) {
	sel, _ := newSampleSelector()
	sel.SelectLocation("L2", false)
	sel.SelectMutant("M3")

	sel.TraverseMutant(1, InputKey)

	loc, _ := sel.ActiveLocation()
	mu, _ := sel.ActiveMutant()
	assert.Equal(t, "L1", loc.ID, "L3 has no candidates and the location order wraps")
	assert.Equal(t, "M1", mu.ID)
}

func TestSelector_TraverseMutant_FallthroughWithoutLocationLoop(t *testing.T) {
	sel, _ := newSampleSelector(WithLocationLoop(false))
	sel.SelectLocation("L2", false)
	sel.SelectMutant("M3")

	sel.TraverseMutant(1, InputKey)

	loc, _ := sel.ActiveLocation()
	mu, _ := sel.ActiveMutant()
	assert.Equal(t, "L2", loc.ID)
	assert.Equal(t, "M3", mu.ID)
}

func TestSelector_TraverseMutant_Policies(t *testing.T) {
	tests := []struct {
		name     string
		policy   MutantPolicy
		start    string
		dir      int
		expected string
	}{
		{"stop at end", PolicyStop, "M2", 1, "M2"},
		{"stop at none", PolicyStop, NoneID, -1, ""},
		{"loop at end", PolicyLoop, "M2", 1, ""},
		{"loop at none", PolicyLoop, NoneID, -1, "M2"},
		{"inner step", PolicyStop, "M1", 1, "M2"},
		{"back to none", PolicyLoop, "M1", -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, _ := newSampleSelector(WithMutantPolicy(tt.policy))
			sel.SelectLocation("L1", false)
			sel.SelectMutant(tt.start)

			sel.TraverseMutant(tt.dir, InputKey)

			loc, _ := sel.ActiveLocation()
			assert.Equal(t, "L1", loc.ID)

			mu, _ := sel.ActiveMutant()
			assert.Equal(t, tt.expected, mu.ID)
		})
	}
}

func TestSelector_TraverseMutant_WheelDoesNotScroll(t *testing.T) {
	sel, presenter := newSampleSelector()
	sel.SelectLocation("L1", false)

	sel.TraverseMutant(1, InputWheel)
	sel.TraverseMutant(1, InputWheel)
	sel.TraverseMutant(1, InputWheel)

	mu, _ := sel.ActiveMutant()
	assert.Equal(t, "M3", mu.ID)
	assert.Empty(t, presenter.scrolls)
}

func TestSelector_TraverseLocation(t *testing.T) {
	sel, presenter := newSampleSelector()
	sel.SelectLocation("L1", false)
	sel.SelectMutant("M1")

	sel.TraverseLocation(1)

	loc, _ := sel.ActiveLocation()
	assert.Equal(t, "L2", loc.ID)
	assert.Equal(t, LocationSelected, sel.State())
	assert.Equal(t, []scroll{{id: "L2", center: true}}, presenter.scrolls)

	sel.TraverseLocation(-1)
	sel.TraverseLocation(-1)

	loc, _ = sel.ActiveLocation()
	assert.Equal(t, "L3", loc.ID, "wraps to the last location")
}

func TestSelector_TraverseLocation_LoopReturnsToStart(t *testing.T) {
	sel, _ := newSampleSelector()
	sel.SelectLocation("L2", false)

	for i, n := 0, sel.Index().Len(); i < n; i++ {
		sel.TraverseLocation(1)
	}

	loc, _ := sel.ActiveLocation()
	assert.Equal(t, "L2", loc.ID)
}

func TestSelector_TraverseLocation_NoLoop(t *testing.T) {
	sel, _ := newSampleSelector(WithLocationLoop(false))
	sel.SelectLocation("L1", false)
	sel.SelectMutant("M2")

	sel.TraverseLocation(-1)

	loc, _ := sel.ActiveLocation()
	mu, _ := sel.ActiveMutant()
	assert.Equal(t, "L1", loc.ID)
	assert.Equal(t, "M2", mu.ID, "no transition, mutant kept")
}

func TestSelector_TraverseLocation_Empty(t *testing.T) {
	presenter := &recordingPresenter{}
	sel := NewSelector(NewIndex(&m.Report{}, m.SourceFile{}), presenter)

	sel.TraverseLocation(1)
	sel.TraverseMutant(1, InputKey)

	assert.Equal(t, NoSelection, sel.State())
	assert.Zero(t, presenter.renders)
}

func TestSelector_ToggleStatus(t *testing.T) {
	sel, presenter := newSampleSelector()
	sel.SelectLocation("L1", false)
	sel.SelectMutant("M2")

	sel.ToggleStatus(m.StatusKilled)

	assert.True(t, sel.StatusExcluded(m.StatusKilled))
	assert.Equal(t, []string{"M1"}, sel.Candidates())
	assert.Equal(t, []string{"M1"}, presenter.candidateIDs())
	assert.Equal(t, LocationSelected, sel.State())
	assert.Nil(t, presenter.info)

	sel.ToggleStatus(m.StatusKilled)

	assert.False(t, sel.StatusExcluded(m.StatusKilled))
	assert.Equal(t, []string{"M1", "M2"}, sel.Candidates())
}

func TestSelector_ToggleStatus_KeepsSurvivingMutant(t *testing.T) {
	sel, presenter := newSampleSelector()
	sel.SelectLocation("L1", false)
	sel.SelectMutant("M1")

	sel.ToggleStatus(m.StatusKilled)

	mu, ok := sel.ActiveMutant()
	require.True(t, ok)
	assert.Equal(t, "M1", mu.ID)
	assert.Equal(t, "M1", presenter.active)
}

func TestSelector_ToggleKindGroup(t *testing.T) {
	sel, _ := newSampleSelector()
	sel.SelectLocation("L1", false)
	sel.SelectMutant("M1")

	sel.ToggleKindGroup("ror")

	assert.True(t, sel.KindGroupExcluded("ror"))
	assert.Equal(t, []string{"M2"}, sel.Candidates())
	assert.Equal(t, LocationSelected, sel.State())

	sel.TraverseLocation(1)
	sel.TraverseLocation(-1)
	assert.Equal(t, []string{"M2"}, sel.Candidates(), "filters apply to every location")
}

func TestSelector_ToggleBeforeSelection(t *testing.T) {
	sel, presenter := newSampleSelector()

	sel.ToggleStatus(m.StatusAlive)

	assert.Zero(t, presenter.renders)
	sel.SelectLocation("L2", false)
	assert.Empty(t, sel.Candidates())
}

// TestSelector_ActiveMutantInvariant drives random input and checks that an
// active mutant always belongs to the active location and passes the filter.
func TestSelector_ActiveMutantInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	statuses := []m.Status{m.StatusAlive, m.StatusKilled}
	groups := []m.KindGroup{"ror", "aor", "dcr"}
	ids := []string{"M1", "M2", "M3", NoneID, "ghost"}
	locs := []string{"L1", "L2", "L3", "nope"}

	for _, policy := range []MutantPolicy{PolicyStop, PolicyLoop, PolicyFallthrough} {
		sel, _ := newSampleSelector(WithMutantPolicy(policy))
		sel.SelectLocation("L1", false)

		for i := 0; i < 2000; i++ {
			switch rng.Intn(7) {
			case 0:
				sel.SelectLocation(locs[rng.Intn(len(locs))], rng.Intn(2) == 0)
			case 1:
				sel.SelectMutant(ids[rng.Intn(len(ids))])
			case 2:
				sel.TraverseLocation(rng.Intn(3) - 1)
			case 3, 4:
				sel.TraverseMutant(rng.Intn(3)-1, Input(rng.Intn(3)))
			case 5:
				sel.ToggleStatus(statuses[rng.Intn(len(statuses))])
			case 6:
				sel.ToggleKindGroup(groups[rng.Intn(len(groups))])
			}

			mu, ok := sel.ActiveMutant()
			if !ok {
				continue
			}

			loc, hasLoc := sel.ActiveLocation()
			require.True(t, hasLoc)
			require.True(t, slices.Contains(loc.Mutants, mu.ID), "mutant %s outside %s", mu.ID, loc.ID)
			require.False(t, sel.StatusExcluded(mu.Status))
			require.False(t, sel.KindGroupExcluded(mu.Group))
		}
	}
}

func TestParseMutantPolicy(t *testing.T) {
	tests := []struct {
		value   string
		want    MutantPolicy
		wantErr bool
	}{
		{"", PolicyFallthrough, false},
		{"stop", PolicyStop, false},
		{" Loop ", PolicyLoop, false},
		{"fallthrough", PolicyFallthrough, false},
		{"wrap", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseMutantPolicy(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "no selection", NoSelection.String())
	assert.Equal(t, "mutant selected", MutantSelected.String())
	assert.Equal(t, "unknown", State(9).String())
}
