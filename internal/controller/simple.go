package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"gooze.dev/pkg/mutview/internal/domain/navigator"
	m "gooze.dev/pkg/mutview/internal/model"
)

const maxPathWidth = 60

var (
	lowScore  = color.New(color.FgRed, color.Bold)
	midScore  = color.New(color.FgYellow)
	highScore = color.New(color.FgGreen)
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// BrowseSource prints the page with the selection the address points at.
func (s *SimpleUI) BrowseSource(ctx context.Context, page SourcePage) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	pane := &sourcePane{}
	sel := navigator.NewSelector(page.Index, pane, page.Options...)
	navigator.NewSourceSync(sel, page.History).Load()

	s.printf("%s #%s\n", page.File.Path, sel.Fragment())

	active, hasActive := sel.ActiveLocation()
	idx := sel.Index()

	for i, n := 0, idx.Len(); i < n; i++ {
		loc := idx.Location(i)

		marker := " "
		if len(loc.Mutants) > 0 {
			marker = "*"
		}

		if hasActive && loc.ID == active.ID {
			marker = ">"
		}

		s.printf("%6d %s %s\n", loc.Line, marker, loc.Text)

		if hasActive && loc.ID == active.ID {
			s.printPicker(pane)
		}
	}

	if pane.info != nil {
		s.printInfo(pane.info)
	}

	return Outcome{Action: ActionQuit, Fragment: page.History.Fragment()}, nil
}

func (s *SimpleUI) printPicker(pane *sourcePane) {
	entries := make([]string, 0, len(pane.candidates)+1)

	none := navigator.NoneID
	if pane.active == "" {
		none = "[" + none + "]"
	}

	entries = append(entries, none)

	for _, candidate := range pane.candidates {
		label := candidate.ID + " " + candidate.Label
		if candidate.ID == pane.active {
			label = "[" + label + "]"
		}

		entries = append(entries, label)
	}

	s.printf("         mutants: %s\n", strings.Join(entries, "  "))
}

func (s *SimpleUI) printInfo(info *navigator.MutantInfo) {
	mu := info.Mutant

	s.printf("\nmutant %s: %s %s (%s) on line %d\n", mu.ID, mu.Status, mu.Kind, mu.Group, info.Location.Line)

	if mu.Meta != "" {
		s.printf("meta: %s\n", mu.Meta)
	}

	s.printf("- %s\n+ %s\n", mu.Original, mu.Mutated)

	for _, tc := range info.TestCases {
		s.printf("test %s (kills %d)\n", tc.Name, tc.Kills)
	}
}

// BrowseTreemap prints the node the address points at and its children.
func (s *SimpleUI) BrowseTreemap(ctx context.Context, page TreemapPage) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	pane := &treemapPane{}
	navigator.NewTreemap(page.Root, pane, page.History).Load()

	view := pane.view
	s.printf("%s  score %s  %d locs\n\n", view.Title, scoreText(view.Score), view.Locs)

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Name", "Type", "Score", "Locs"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, tile := range view.Tiles {
		kind := "file"
		if tile.Folder {
			kind = "dir"
		}

		table.Append([]string{truncatePath(tile.Name), kind, scoreText(tile.Score), strconv.Itoa(tile.Locs)})
	}

	table.Render()
	s.printf("%s", buf.String())

	return Outcome{Action: ActionQuit, Fragment: page.History.Fragment()}, nil
}

// DisplayListing prints the report listing as a table.
func (s *SimpleUI) DisplayListing(ctx context.Context, rows []m.FileSummary, options ListingOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderListingTable(rows, options, false))

	return nil
}

// DisplayReportSaved confirms a written report.
func (s *SimpleUI) DisplayReportSaved(ctx context.Context, path m.Path, mutants int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("saved %s (%d mutants)\n", path, mutants)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderListingTable(rows []m.FileSummary, options ListingOptions, bordered bool) string {
	var buf bytes.Buffer

	if options.Title != "" {
		fmt.Fprintf(&buf, "%s\n\n", options.Title)
	}

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Path", "Locations", "Mutants", "Alive", "Killed", "Score"})
	table.SetBorder(bordered)
	table.SetAutoWrapText(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	mutants, alive, killed := 0, 0, 0

	for _, row := range rows {
		table.Append([]string{
			truncatePath(string(row.Path)),
			strconv.Itoa(row.Locations),
			strconv.Itoa(row.Mutants),
			strconv.Itoa(row.Alive),
			strconv.Itoa(row.Killed),
			scoreText(row.Score),
		})

		mutants += row.Mutants
		alive += row.Alive
		killed += row.Killed
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(rows)),
		"",
		strconv.Itoa(mutants),
		strconv.Itoa(alive),
		strconv.Itoa(killed),
		"",
	})

	table.Render()

	return buf.String()
}

// scoreText formats a score in [0, 1] as a percentage coloured by the
// nearest stop of the report colour scale.
func scoreText(score float64) string {
	text := fmt.Sprintf("%.1f%%", score*100)

	switch {
	case score < 0.25:
		return lowScore.Sprint(text)
	case score < 0.75:
		return midScore.Sprint(text)
	default:
		return highScore.Sprint(text)
	}
}

func truncatePath(path string) string {
	if runewidth.StringWidth(path) <= maxPathWidth {
		return path
	}

	return "…" + runewidth.TruncateLeft(path, runewidth.StringWidth(path)-maxPathWidth+1, "")
}
