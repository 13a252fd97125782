package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"gooze.dev/pkg/mutview/internal/domain/navigator"
	m "gooze.dev/pkg/mutview/internal/model"
)

const minTileWidth = 16

// treemapPane records what the treemap navigator asks to show.
type treemapPane struct {
	view    navigator.TreemapView
	file    m.Path
	opened  bool
	listing bool
}

func (p *treemapPane) RenderTreemap(view navigator.TreemapView) {
	p.view = view
}

func (p *treemapPane) OpenFile(path m.Path) {
	p.file = path
	p.opened = true
}

func (p *treemapPane) OpenListing() {
	p.listing = true
}

// treemapModel is the Bubble Tea model of the treemap page.
type treemapModel struct {
	page    TreemapPage
	pane    *treemapPane
	nav     *navigator.Treemap
	keys    treemapKeyMap
	help    help.Model
	address textinput.Model

	prompting bool
	cursor    int
	width     int
	height    int
	outcome   Outcome
}

func newTreemapModel(page TreemapPage) treemapModel {
	pane := &treemapPane{}
	nav := navigator.NewTreemap(page.Root, pane, page.History)
	nav.Load()

	address := textinput.New()
	address.Prompt = "#"
	address.Placeholder = "root_dir_subdir"
	address.CharLimit = 512

	return treemapModel{
		page:    page,
		pane:    pane,
		nav:     nav,
		keys:    newTreemapKeyMap(),
		help:    help.New(),
		address: address,
		width:   80,
		height:  24,
	}
}

func (tm treemapModel) Init() tea.Cmd {
	return nil
}

func (tm treemapModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		tm.width = msg.Width
		tm.height = msg.Height
		tm.help.Width = msg.Width
		tm.address.Width = max(msg.Width-4, 10)

		return tm, nil

	case tea.KeyMsg:
		if tm.prompting {
			return tm.handlePrompt(msg)
		}

		return tm.handleKeyPress(msg)
	}

	return tm, nil
}

func (tm treemapModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tiles := tm.pane.view.Tiles

	switch {
	case key.Matches(msg, tm.keys.Quit):
		tm.outcome = Outcome{Action: ActionQuit}
		return tm, tea.Quit

	case key.Matches(msg, tm.keys.Prev):
		if tm.cursor > 0 {
			tm.cursor--
		}

	case key.Matches(msg, tm.keys.Next):
		if tm.cursor < len(tiles)-1 {
			tm.cursor++
		}

	case key.Matches(msg, tm.keys.DrillIn):
		if len(tiles) == 0 {
			return tm, nil
		}

		if tm.nav.DrillIn(tiles[tm.cursor].Name) {
			tm.cursor = 0
		}

	case key.Matches(msg, tm.keys.DrillOut):
		tm.nav.DrillOut()
		tm.cursor = 0

	case key.Matches(msg, tm.keys.Back):
		tm.page.History.Back()

	case key.Matches(msg, tm.keys.Forward):
		tm.page.History.Forward()

	case key.Matches(msg, tm.keys.Address):
		tm.prompting = true
		tm.address.SetValue("")

		cmd := tm.address.Focus()

		return tm, cmd
	}

	return tm.settle()
}

func (tm treemapModel) handlePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // Only submit and cancel are special.
	switch msg.Type {
	case tea.KeyEnter:
		tm.prompting = false
		tm.address.Blur()
		tm.page.History.Navigate(tm.address.Value())

		return tm.settle()

	case tea.KeyEsc, tea.KeyCtrlC:
		tm.prompting = false
		tm.address.Blur()

		return tm, nil
	}

	var cmd tea.Cmd

	tm.address, cmd = tm.address.Update(msg)

	return tm, cmd
}

// settle ends the session when the navigator left the treemap and keeps the
// cursor on an existing tile otherwise.
func (tm treemapModel) settle() (tea.Model, tea.Cmd) {
	switch {
	case tm.pane.opened:
		tm.outcome = Outcome{Action: ActionOpenFile, Path: tm.pane.file}
		return tm, tea.Quit
	case tm.pane.listing:
		tm.outcome = Outcome{Action: ActionOpenListing}
		return tm, tea.Quit
	}

	if tm.cursor >= len(tm.pane.view.Tiles) {
		tm.cursor = max(len(tm.pane.view.Tiles)-1, 0)
	}

	return tm, nil
}

func (tm treemapModel) View() string {
	view := tm.pane.view

	header := titleStyle.Render(view.Title) +
		subtleStyle.Render(fmt.Sprintf(" score %.0f%%  %d locs  #%s", view.Score*100, view.Locs, tm.page.History.Fragment()))

	sections := []string{header, tm.renderTiles()}

	if tm.prompting {
		sections = append(sections, panelStyle.Render(tm.address.View()))
	}

	sections = append(sections, tm.help.View(tm.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTiles lays the tiles out in rows, each tile as wide as its share of
// the lines of code allows.
func (tm treemapModel) renderTiles() string {
	tiles := tm.pane.view.Tiles
	if len(tiles) == 0 {
		return subtleStyle.Render("  (empty)")
	}

	total := 0
	for _, tile := range tiles {
		total += tile.Locs
	}

	var (
		rows     []string
		row      []string
		rowWidth int
	)

	for i, tile := range tiles {
		width := tileWidth(tile.Locs, total, len(tiles), tm.width)

		if rowWidth+width > tm.width && len(row) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
			rowWidth = 0
		}

		row = append(row, renderTile(tile, width, i == tm.cursor))
		rowWidth += width
	}

	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))

	return strings.Join(rows, "\n")
}

func tileWidth(locs, total, count, screen int) int {
	share := 1.0 / float64(count)
	if total > 0 {
		share = float64(locs) / float64(total)
	}

	width := int(share * float64(screen) * 2)

	return min(max(width, minTileWidth), max(screen, minTileWidth))
}

func renderTile(tile navigator.Tile, width int, selected bool) string {
	inner := width - 2

	name := tile.Name
	if tile.Folder {
		name += "/"
	}

	border := lipgloss.NormalBorder()
	if selected {
		border = lipgloss.ThickBorder()
	}

	style := lipgloss.NewStyle().
		Width(inner).
		Border(border).
		BorderForeground(scoreColor(tile.Score)).
		Foreground(lipgloss.Color("0")).
		Background(scoreColor(tile.Score))

	content := strings.Join([]string{
		runewidth.Truncate(name, inner, "…"),
		fmt.Sprintf("%.0f%%", tile.Score*100),
		runewidth.Truncate(fmt.Sprintf("%d locs", tile.Locs), inner, "…"),
	}, "\n")

	return style.Render(content)
}
