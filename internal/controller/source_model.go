package controller

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pmezard/go-difflib/difflib"

	"gooze.dev/pkg/mutview/internal/domain/navigator"
	m "gooze.dev/pkg/mutview/internal/model"
)

// Rows outside the source viewport: title, picker, info panel (border,
// four content lines and up to three test cases) and the legend.
const sourceChromeRows = 12

// sourcePane records what the selector asks to show. Bubble Tea copies the
// model on every update, so the pane is shared by pointer.
type sourcePane struct {
	location   m.Location
	candidates []navigator.Candidate
	active     string
	info       *navigator.MutantInfo
	scroll     *scrollRequest
}

type scrollRequest struct {
	id     string
	center bool
}

func (p *sourcePane) ShowLocation(loc m.Location) {
	p.location = loc
}

func (p *sourcePane) ShowCandidates(candidates []navigator.Candidate, active string) {
	p.candidates = candidates
	p.active = active
}

func (p *sourcePane) ShowMutant(info *navigator.MutantInfo) {
	p.info = info
}

func (p *sourcePane) ScrollTo(id string, center bool) {
	p.scroll = &scrollRequest{id: id, center: center}
}

// filterEntry is one checkbox of the filter panel.
type filterEntry struct {
	status m.Status
	group  m.KindGroup
}

func (e filterEntry) label() string {
	if e.group != "" {
		return "kind " + string(e.group)
	}

	return string(e.status)
}

// sourceModel is the Bubble Tea model of one source page.
type sourceModel struct {
	page     SourcePage
	pane     *sourcePane
	sel      *navigator.Selector
	keys     sourceKeyMap
	help     help.Model
	viewport viewport.Model
	address  textinput.Model

	filters      []filterEntry
	filterCursor int
	filtering    bool
	prompting    bool
	showMutant   bool

	width   int
	height  int
	outcome Outcome
}

func newSourceModel(page SourcePage, keys KeyConfig) sourceModel {
	pane := &sourcePane{}
	sel := navigator.NewSelector(page.Index, pane, page.Options...)
	navigator.NewSourceSync(sel, page.History).Load()

	address := textinput.New()
	address.Prompt = "#"
	address.Placeholder = "mutant or line id"
	address.CharLimit = 256

	filters := make([]filterEntry, 0, len(page.Statuses)+len(page.KindGroups))
	for _, status := range page.Statuses {
		filters = append(filters, filterEntry{status: status})
	}

	for _, group := range page.KindGroups {
		filters = append(filters, filterEntry{group: group})
	}

	model := sourceModel{
		page:       page,
		pane:       pane,
		sel:        sel,
		keys:       newSourceKeyMap(keys),
		help:       help.New(),
		viewport:   viewport.New(80, 20),
		address:    address,
		filters:    filters,
		showMutant: true,
		width:      80,
		height:     20 + sourceChromeRows,
	}

	model.viewport.MouseWheelEnabled = true
	model.refresh()

	return model
}

func (sm sourceModel) Init() tea.Cmd {
	return nil
}

func (sm sourceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm = sm.resize(msg.Width, msg.Height)
		return sm, nil

	case tea.KeyMsg:
		switch {
		case sm.prompting:
			return sm.handlePrompt(msg)
		case sm.filtering:
			return sm.handleFilterKey(msg), nil
		default:
			return sm.handleKeyPress(msg)
		}

	case tea.MouseMsg:
		return sm.handleMouse(msg)
	}

	return sm, nil
}

func (sm sourceModel) resize(width, height int) sourceModel {
	sm.width = width
	sm.height = height
	sm.help.Width = width
	sm.address.Width = max(width-4, 10)
	sm.viewport.Width = width
	sm.viewport.Height = max(height-sourceChromeRows, 3)
	sm.refresh()

	return sm
}

func (sm sourceModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, sm.keys.Quit):
		sm.outcome = Outcome{Action: ActionQuit}
		return sm, tea.Quit

	case key.Matches(msg, sm.keys.Return):
		if !sm.page.Returnable {
			return sm, nil
		}

		sm.outcome = Outcome{Action: ActionBack}

		return sm, tea.Quit

	case key.Matches(msg, sm.keys.LocationUp):
		sm.sel.TraverseLocation(-1)

	case key.Matches(msg, sm.keys.LocationDown):
		sm.sel.TraverseLocation(1)

	case key.Matches(msg, sm.keys.MutantPrev):
		sm.sel.TraverseMutant(-1, navigator.InputKey)

	case key.Matches(msg, sm.keys.MutantNext):
		sm.sel.TraverseMutant(1, navigator.InputKey)

	case key.Matches(msg, sm.keys.ToggleMutant):
		sm.showMutant = !sm.showMutant

	case key.Matches(msg, sm.keys.Filter):
		sm.filtering = len(sm.filters) > 0

	case key.Matches(msg, sm.keys.Back):
		sm.page.History.Back()

	case key.Matches(msg, sm.keys.Forward):
		sm.page.History.Forward()

	case key.Matches(msg, sm.keys.Address):
		sm.prompting = true
		sm.address.SetValue("")

		cmd := sm.address.Focus()

		return sm, cmd

	case key.Matches(msg, sm.keys.Help):
		sm.help.ShowAll = !sm.help.ShowAll

	default:
		var cmd tea.Cmd

		sm.viewport, cmd = sm.viewport.Update(msg)

		return sm, cmd
	}

	sm.refresh()

	return sm, nil
}

func (sm sourceModel) handlePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // Only submit and cancel are special.
	switch msg.Type {
	case tea.KeyEnter:
		sm.prompting = false
		sm.address.Blur()
		sm.page.History.Navigate(sm.address.Value())
		sm.refresh()

		return sm, nil

	case tea.KeyEsc, tea.KeyCtrlC:
		sm.prompting = false
		sm.address.Blur()

		return sm, nil
	}

	var cmd tea.Cmd

	sm.address, cmd = sm.address.Update(msg)

	return sm, cmd
}

func (sm sourceModel) handleFilterKey(msg tea.KeyMsg) sourceModel {
	switch msg.String() {
	case "up", "k":
		if sm.filterCursor > 0 {
			sm.filterCursor--
		}

	case "down", "j":
		if sm.filterCursor < len(sm.filters)-1 {
			sm.filterCursor++
		}

	case " ", "enter", "x":
		entry := sm.filters[sm.filterCursor]
		if entry.group != "" {
			sm.sel.ToggleKindGroup(entry.group)
		} else {
			sm.sel.ToggleStatus(entry.status)
		}

		sm.refresh()

	case "f", "esc", "q":
		sm.filtering = false
	}

	return sm
}

func (sm sourceModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	pickerRow := 1 + sm.viewport.Height
	overMutants := msg.Y == pickerRow || sm.onActiveRow(msg.Y)

	switch {
	case overMutants && msg.Button == tea.MouseButtonWheelUp:
		sm.sel.TraverseMutant(-1, navigator.InputWheel)
	case overMutants && msg.Button == tea.MouseButtonWheelDown:
		sm.sel.TraverseMutant(1, navigator.InputWheel)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		row := msg.Y - 1 + sm.viewport.YOffset
		if msg.Y < 1 || msg.Y >= pickerRow || row >= sm.sel.Index().Len() {
			return sm, nil
		}

		sm.sel.SelectLocation(sm.sel.Index().Location(row).ID, false)
	default:
		var cmd tea.Cmd

		sm.viewport, cmd = sm.viewport.Update(msg)

		return sm, cmd
	}

	sm.refresh()

	return sm, nil
}

// onActiveRow reports whether screen row y shows the active location.
func (sm sourceModel) onActiveRow(y int) bool {
	if y < 1 || y > sm.viewport.Height {
		return false
	}

	loc, ok := sm.sel.ActiveLocation()
	if !ok {
		return false
	}

	pos, ok := sm.sel.Index().LocationPos(loc.ID)

	return ok && pos == y-1+sm.viewport.YOffset
}

// refresh re-renders the source rows and applies a pending scroll request.
func (sm *sourceModel) refresh() {
	sm.viewport.SetContent(sm.renderRows())

	request := sm.pane.scroll
	if request == nil {
		return
	}

	sm.pane.scroll = nil

	row, ok := sm.rowOf(request.id)
	if !ok {
		return
	}

	switch {
	case request.center:
		sm.viewport.SetYOffset(row - sm.viewport.Height/2)
	case row < sm.viewport.YOffset:
		sm.viewport.SetYOffset(row)
	case row >= sm.viewport.YOffset+sm.viewport.Height:
		sm.viewport.SetYOffset(row - sm.viewport.Height + 1)
	}
}

func (sm sourceModel) rowOf(id string) (int, bool) {
	idx := sm.sel.Index()

	if pos, ok := idx.LocationPos(id); ok {
		return pos, true
	}

	return idx.Owner(id)
}

func (sm sourceModel) renderRows() string {
	idx := sm.sel.Index()
	active, hasActive := sm.sel.ActiveLocation()
	rows := make([]string, 0, idx.Len())

	for i, n := 0, idx.Len(); i < n; i++ {
		loc := idx.Location(i)

		marker := " "
		if len(loc.Mutants) > 0 {
			marker = mutantLine.Render("●")
		}

		text := loc.Text

		if hasActive && loc.ID == active.ID {
			if sm.showMutant && sm.pane.info != nil {
				text = overlayMutant(text, sm.pane.info.Mutant)
			}

			rows = append(rows, lineNoStyle.Render(strconv.Itoa(loc.Line))+marker+" "+activeLine.Render(text))

			continue
		}

		rows = append(rows, lineNoStyle.Render(strconv.Itoa(loc.Line))+marker+" "+text)
	}

	return strings.Join(rows, "\n")
}

// overlayMutant shows the mutated text in place of the first occurrence of
// the original text, or appends it when the original is not on the line.
func overlayMutant(text string, mu m.Mutant) string {
	if mu.Original != "" && strings.Contains(text, mu.Original) {
		return strings.Replace(text, mu.Original, replacement.Render(mu.Mutated), 1)
	}

	return text + "  " + replacement.Render("→ "+mu.Mutated)
}

func (sm sourceModel) View() string {
	sections := []string{
		sm.renderHeader(),
		sm.viewport.View(),
		sm.renderPicker(),
	}

	switch {
	case sm.prompting:
		sections = append(sections, panelStyle.Render(sm.address.View()))
	case sm.filtering:
		sections = append(sections, sm.renderFilters())
	default:
		sections = append(sections, sm.renderInfo())
	}

	sections = append(sections, sm.help.View(sm.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (sm sourceModel) renderHeader() string {
	title := titleStyle.Render(fmt.Sprintf("%s  %s", sm.page.Title, sm.page.File.Path))

	return title + subtleStyle.Render(" #"+sm.page.History.Fragment())
}

func (sm sourceModel) renderPicker() string {
	entries := make([]string, 0, len(sm.pane.candidates)+2)
	entries = append(entries, subtleStyle.Render("mutants:"))

	none := pickerEntry
	if sm.pane.active == "" {
		none = pickerActive
	}

	entries = append(entries, none.Render(navigator.NoneID))

	for _, candidate := range sm.pane.candidates {
		style := pickerEntry
		if candidate.ID == sm.pane.active {
			style = pickerActive
		}

		entries = append(entries, style.Render(candidate.Label))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, entries...)
}

func (sm sourceModel) renderInfo() string {
	width := max(sm.width-2, 20)

	info := sm.pane.info
	if info == nil {
		return panelStyle.Width(width).Render(subtleStyle.Render("no mutant selected"))
	}

	mu := info.Mutant
	status := lipgloss.NewStyle().Foreground(statusColor(mu.Status)).Bold(true).Render(string(mu.Status))

	lines := []string{
		fmt.Sprintf("%s  %s (%s)  id %s  line %d", status, mu.Kind, mu.Group, mu.ID, info.Location.Line),
	}

	if mu.Meta != "" {
		lines = append(lines, subtleStyle.Render("meta: "+mu.Meta))
	}

	lines = append(lines, renderDiff(mu.Original, mu.Mutated)...)

	if len(mu.TestCases) > 0 {
		lines = append(lines, fmt.Sprintf("covered by %d test case(s)", len(mu.TestCases)))
	}

	for _, tc := range info.TestCases {
		lines = append(lines, fmt.Sprintf("  %s %s", tc.Name, subtleStyle.Render(fmt.Sprintf("(kills %d)", tc.Kills))))
	}

	return panelStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// renderDiff returns the coloured change lines of an original → mutated diff.
func renderDiff(original, mutated string) []string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(mutated),
		FromFile: "original",
		ToFile:   "mutated",
		Context:  0,
	})
	if err != nil || diff == "" {
		return []string{"original: " + original}
	}

	lines := make([]string, 0, 2)

	// The first two lines are the file header.
	for i, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		switch {
		case i < 2, strings.HasPrefix(line, "@@"):
			continue
		case strings.HasPrefix(line, "-"):
			lines = append(lines, diffDel.Render(line))
		case strings.HasPrefix(line, "+"):
			lines = append(lines, diffAdd.Render(line))
		}
	}

	return lines
}

func (sm sourceModel) renderFilters() string {
	lines := make([]string, 0, len(sm.filters)+1)
	lines = append(lines, subtleStyle.Render("space toggles • f closes"))

	for i, entry := range sm.filters {
		excluded := sm.sel.StatusExcluded(entry.status)
		if entry.group != "" {
			excluded = sm.sel.KindGroupExcluded(entry.group)
		}

		box := "[x]"
		if excluded {
			box = "[ ]"
		}

		line := fmt.Sprintf("%s %s", box, entry.label())
		if i == sm.filterCursor {
			line = checkboxCursor.Render("> " + line)
		} else {
			line = "  " + line
		}

		lines = append(lines, line)
	}

	return panelStyle.Width(max(sm.width-2, 20)).Render(strings.Join(lines, "\n"))
}
