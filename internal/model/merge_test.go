package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeReports(t *testing.T) {
	first := &Report{
		Title:    "shard 0",
		Statuses: []Status{StatusAlive, StatusKilled},
		Mutants: []Mutant{
			{ID: "1", Status: StatusAlive},
			{ID: "2", Status: StatusKilled},
		},
		Files: []SourceFile{{
			Path:      "src/a.c",
			Locations: []Location{{ID: "loc-1", Line: 1, Mutants: []string{"1"}}},
		}},
		TestCases: map[string]int{"t1": 1},
		Tree: &Node{Name: "project", Children: []*Node{
			{Name: "src", Children: []*Node{{Name: "a.c", Score: ptr(1.0)}}},
		}},
	}
	second := &Report{
		Title:    "shard 1",
		Statuses: []Status{StatusKilled, StatusTimeout},
		Mutants: []Mutant{
			{ID: "2", Status: StatusAlive},
			{ID: "3", Status: StatusTimeout},
		},
		Files: []SourceFile{
			{Path: "src/a.c", Locations: []Location{
				{Line: 1, Text: "a < b", Mutants: []string{"1", "2"}},
				{Line: 4, Mutants: []string{"3"}},
			}},
			{Path: "src/b.c"},
		},
		TestCases: map[string]int{"t1": 2, "t2": 5},
		Tree: &Node{Name: "project", Children: []*Node{
			{Name: "src", Children: []*Node{{Name: "b.c"}}},
			{Name: "README"},
		}},
	}

	merged := MergeReports(first, nil, second)

	assert.Equal(t, "shard 0", merged.Title)
	assert.Equal(t, []Status{StatusAlive, StatusKilled, StatusTimeout}, merged.Statuses)
	require.Len(t, merged.Mutants, 3)
	assert.Equal(t, StatusKilled, merged.Mutants[1].Status, "first shard wins")
	assert.Equal(t, map[string]int{"t1": 3, "t2": 5}, merged.TestCases)

	require.Len(t, merged.Files, 2)
	locs := merged.Files[0].Locations
	require.Len(t, locs, 2)
	assert.Equal(t, []string{"1", "2"}, locs[0].Mutants)
	assert.Equal(t, "a < b", locs[0].Text)
	assert.Equal(t, []string{"3"}, locs[1].Mutants)

	src, ok := merged.Tree.Child("src")
	require.True(t, ok)
	assert.Len(t, src.Children, 2)
	assert.Len(t, merged.Tree.Children, 2)

	assert.Len(t, first.Tree.Children, 1, "inputs are not modified")
	assert.Len(t, first.Files[0].Locations, 1)
}

func TestMergeReports_Empty(t *testing.T) {
	merged := MergeReports()

	assert.Empty(t, merged.Mutants)
	assert.Nil(t, merged.Tree)
}
