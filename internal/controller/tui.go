package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	m "gooze.dev/pkg/mutview/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	input  io.Reader
	output io.Writer
	config StartConfig
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{
		input:  input,
		output: output,
		config: StartConfig{keys: DefaultKeyConfig()},
	}
}

// Start initializes the UI.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, option := range options {
		option(&t.config)
	}

	slog.Debug("tui started", "mode", t.config.mode)

	return nil
}

// Close finalizes the UI.
func (t *TUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	slog.Debug("tui closed")
}

// Wait returns once the last program has exited; programs run synchronously.
func (t *TUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// BrowseSource runs the interactive source page until the user leaves it.
func (t *TUI) BrowseSource(ctx context.Context, page SourcePage) (Outcome, error) {
	model := newSourceModel(page, t.config.keys)
	if width, height, ok := terminalSize(t.output); ok {
		model = model.resize(width, height)
	}

	final, err := t.run(ctx, model, tea.WithMouseCellMotion())
	if err != nil {
		return Outcome{}, fmt.Errorf("source page: %w", err)
	}

	outcome := final.(sourceModel).outcome
	outcome.Fragment = page.History.Fragment()

	return outcome, nil
}

// BrowseTreemap runs the interactive treemap until the user opens a file,
// the listing, or quits.
func (t *TUI) BrowseTreemap(ctx context.Context, page TreemapPage) (Outcome, error) {
	model := newTreemapModel(page)
	if width, height, ok := terminalSize(t.output); ok {
		model.width = width
		model.height = height
	}

	final, err := t.run(ctx, model)
	if err != nil {
		return Outcome{}, fmt.Errorf("treemap: %w", err)
	}

	outcome := final.(treemapModel).outcome
	outcome.Fragment = page.History.Fragment()

	return outcome, nil
}

// DisplayListing shows the listing. The table fits a terminal as is, so the
// TUI prints it the way SimpleUI does.
func (t *TUI) DisplayListing(ctx context.Context, rows []m.FileSummary, options ListingOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprint(t.output, renderListingTable(rows, options, true))

	return err
}

// DisplayReportSaved confirms a written report.
func (t *TUI) DisplayReportSaved(ctx context.Context, path m.Path, mutants int) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintf(t.output, "%s %s (%d mutants)\n", titleStyle.Render("saved"), path, mutants)
}

func (t *TUI) run(ctx context.Context, model tea.Model, options ...tea.ProgramOption) (tea.Model, error) {
	options = append(options,
		tea.WithContext(ctx),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
	)

	return tea.NewProgram(model, options...).Run()
}
