package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"gooze.dev/pkg/mutview/internal/adapter"
	"gooze.dev/pkg/mutview/internal/domain/navigator"
	m "gooze.dev/pkg/mutview/internal/model"
)

// sampleReport holds a three-line file: line 1 with two mutants, line 2 with
// one and a plain line 3.
func sampleReport() *m.Report {
	return &m.Report{
		Title:      "demo",
		Statuses:   []m.Status{m.StatusAlive, m.StatusKilled},
		KindGroups: []m.KindGroup{"ror", "aor"},
		Mutants: []m.Mutant{
			{ID: "M1", Status: m.StatusAlive, Kind: "rorLT", Group: "ror", Original: "a < b", Mutated: "a <= b", TestCases: []string{"t1"}},
			{ID: "M2", Status: m.StatusKilled, Kind: "aorSub", Group: "aor", Original: "a + b", Mutated: "a - b", Meta: "slow"},
			{ID: "M3", Status: m.StatusAlive, Kind: "rorGT", Group: "ror", Original: "x > 0", Mutated: "x >= 0"},
		},
		Files: []m.SourceFile{{
			Path: "src/main.go",
			Locations: []m.Location{
				{ID: "L1", Line: 1, Text: "if a < b { a + b }", Mutants: []string{"M1", "M2"}},
				{ID: "L2", Line: 2, Text: "return x > 0", Mutants: []string{"M3"}},
				{ID: "L3", Line: 3, Text: "}"},
			},
		}},
		TestCases: map[string]int{"t1": 2},
	}
}

func samplePage(fragment string) (SourcePage, *adapter.History) {
	report := sampleReport()
	file := report.Files[0]
	history := adapter.NewHistory(fragment)

	return SourcePage{
		Title:      report.Title,
		File:       file,
		Index:      navigator.NewIndex(report, file),
		Statuses:   report.StatusOrder(),
		KindGroups: report.KindGroupOrder(),
		History:    history,
	}, history
}

func ptr[T any](v T) *T {
	return &v
}

func sampleTree() *m.Node {
	return &m.Node{Name: "project", Children: []*m.Node{
		{Name: "src", Children: []*m.Node{
			{Name: "main.go", Score: ptr(0.5), Locs: ptr(20)},
			{Name: "util.go", Score: ptr(1.0), Locs: ptr(10)},
		}},
		{Name: "README.go", Score: ptr(0.0), Locs: ptr(5)},
	}}
}

func keyMsg(name string) tea.KeyMsg {
	switch name {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
	}
}

// press feeds keys to model and returns the resulting model and the command
// of the last key.
func press(model tea.Model, keys ...string) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	for _, name := range keys {
		model, cmd = model.Update(keyMsg(name))
	}

	return model, cmd
}
