package controller

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/mutview/internal/adapter"
	m "gooze.dev/pkg/mutview/internal/model"
)

func newSampleTreemapModel(fragment string) (treemapModel, *adapter.History) {
	history := adapter.NewHistory(fragment)

	return newTreemapModel(TreemapPage{Title: "demo", Root: sampleTree(), History: history}), history
}

func TestTreemapModel_LoadsRoot(t *testing.T) {
	tm, history := newSampleTreemapModel("")

	assert.Equal(t, "project", tm.pane.view.Title)
	require.Len(t, tm.pane.view.Tiles, 2)
	assert.True(t, tm.pane.view.Tiles[0].Folder)
	assert.Equal(t, 35, tm.pane.view.Locs)
	assert.Equal(t, "", history.Fragment())
}

func TestTreemapModel_LoadsAddress(t *testing.T) {
	tm, _ := newSampleTreemapModel("root_src")

	assert.Equal(t, "project/src", tm.pane.view.Title)
	assert.Equal(t, []string{"src"}, tm.nav.Path())
}

func TestTreemapModel_DrillInAndOut(t *testing.T) {
	tm, history := newSampleTreemapModel("")

	model, cmd := press(tm, "enter")
	assert.Nil(t, cmd)
	assert.Equal(t, "root_src", history.Fragment())
	assert.Equal(t, "project/src", model.(treemapModel).pane.view.Title)

	model, _ = press(model, "esc")
	assert.Equal(t, "root", history.Fragment())
	assert.Equal(t, "project", model.(treemapModel).pane.view.Title)
}

func TestTreemapModel_OpenFile(t *testing.T) {
	tm, _ := newSampleTreemapModel("root_src")

	model, cmd := press(tm, "right", "enter")

	require.NotNil(t, cmd)
	got := model.(treemapModel)
	assert.Equal(t, Outcome{Action: ActionOpenFile, Path: m.Path("src/util.go")}, got.outcome)
}

func TestTreemapModel_DrillOutAtRootOpensListing(t *testing.T) {
	tm, _ := newSampleTreemapModel("")

	model, cmd := press(tm, "esc")

	require.NotNil(t, cmd)
	assert.Equal(t, ActionOpenListing, model.(treemapModel).outcome.Action)
}

func TestTreemapModel_CursorStaysOnTiles(t *testing.T) {
	tm, _ := newSampleTreemapModel("")

	model, _ := press(tm, "right", "right", "right")
	assert.Equal(t, 1, model.(treemapModel).cursor)

	model, _ = press(model, "left", "left")
	assert.Equal(t, 0, model.(treemapModel).cursor)
}

func TestTreemapModel_HistoryBack(t *testing.T) {
	tm, history := newSampleTreemapModel("")

	model, _ := press(tm, "enter", "[")

	assert.Equal(t, "", history.Fragment())
	assert.Equal(t, "project", model.(treemapModel).pane.view.Title)

	model, _ = press(model, "]")
	assert.Equal(t, "project/src", model.(treemapModel).pane.view.Title)
}

func TestTreemapModel_AddressPrompt(t *testing.T) {
	tm, history := newSampleTreemapModel("")

	model, _ := press(tm, ":")
	require.True(t, model.(treemapModel).prompting)

	for _, r := range "root_src" {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	model, _ = press(model, "enter")

	assert.False(t, model.(treemapModel).prompting)
	assert.Equal(t, "root_src", history.Fragment())
	assert.Equal(t, "project/src", model.(treemapModel).pane.view.Title)
}

func TestTreemapModel_MalformedAddressResetsToRoot(t *testing.T) {
	tm, _ := newSampleTreemapModel("root_src")

	tm.page.History.Navigate("root_nope")

	assert.Equal(t, "project", tm.pane.view.Title)
}

func TestTreemapModel_View(t *testing.T) {
	tm, _ := newSampleTreemapModel("")

	model, _ := tm.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	view := model.View()

	assert.Contains(t, view, "project")
	assert.Contains(t, view, "src/")
	assert.Contains(t, view, "README.go")
	assert.Contains(t, view, "35 locs")
}

func TestTreemapModel_ViewEmptyFolder(t *testing.T) {
	history := adapter.NewHistory("")
	tm := newTreemapModel(TreemapPage{Root: &m.Node{Name: "empty", Children: []*m.Node{}}, History: history})

	assert.Contains(t, tm.View(), "(empty)")

	model, cmd := press(tm, "enter")
	assert.Nil(t, cmd)
	assert.Equal(t, ActionQuit, model.(treemapModel).outcome.Action)
}

func TestTileWidth(t *testing.T) {
	tests := []struct {
		name                      string
		locs, total, count, width int
		want                      int
	}{
		{"proportional share", 50, 100, 2, 80, 80},
		{"minimum width", 1, 1000, 10, 80, minTileWidth},
		{"no lines splits evenly", 0, 0, 4, 80, 40},
		{"capped at screen", 100, 100, 1, 60, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tileWidth(tt.locs, tt.total, tt.count, tt.width))
		})
	}
}
