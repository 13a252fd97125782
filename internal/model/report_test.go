package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNode_Aggregates(t *testing.T) {
	root := &Node{Name: "root", Children: []*Node{
		{Name: "a", Children: []*Node{
			{Name: "a1.go", Score: ptr(1.0), Locs: ptr(10)},
			{Name: "a2.go"},
		}},
		{Name: "b.go", Score: ptr(0.5), Locs: ptr(5)},
		{Name: "empty", Children: []*Node{}},
	}}

	assert.InDelta(t, 0.5, root.AggregateScore(), 1e-9)
	assert.Equal(t, 15, root.AggregateLocs())

	a, ok := root.Child("a")
	require.True(t, ok)
	assert.False(t, a.IsLeaf())
	assert.InDelta(t, 0.5, a.AggregateScore(), 1e-9)
	assert.Equal(t, 10, a.AggregateLocs())

	empty, _ := root.Child("empty")
	assert.False(t, empty.IsLeaf())
	assert.Zero(t, empty.AggregateScore())
	assert.Zero(t, empty.AggregateLocs())

	_, ok = root.Child("missing")
	assert.False(t, ok)
	assert.Len(t, root.Leaves(), 3)
}

func TestReport_Orders(t *testing.T) {
	r := &Report{Mutants: []Mutant{
		{ID: "1", Group: "ror"},
		{ID: "2", Group: "aor"},
		{ID: "3", Group: "ror"},
	}}

	assert.Equal(t, DefaultStatuses, r.StatusOrder())
	assert.Equal(t, []KindGroup{"ror", "aor"}, r.KindGroupOrder())

	r.Statuses = []Status{StatusAlive, StatusKilled}
	r.KindGroups = []KindGroup{"dcr"}
	assert.Equal(t, []Status{StatusAlive, StatusKilled}, r.StatusOrder())
	assert.Equal(t, []KindGroup{"dcr"}, r.KindGroupOrder())
}

func TestReport_File(t *testing.T) {
	r := &Report{Files: []SourceFile{{Path: "a.go"}, {Path: "b.go"}}}

	f, ok := r.File("b.go")
	require.True(t, ok)
	assert.Equal(t, Path("b.go"), f.Path)

	_, ok = r.File("c.go")
	assert.False(t, ok)
}

func TestMutant_Alive(t *testing.T) {
	assert.True(t, Mutant{Status: StatusAlive}.Alive())
	assert.False(t, Mutant{Status: StatusKilled}.Alive())
	assert.Equal(t, "loc-12", LocationID(12))
}
