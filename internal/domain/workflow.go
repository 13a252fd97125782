// Package domain wires report loading, the navigators and the UI into the
// commands of the mutview CLI.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"gooze.dev/pkg/mutview/internal/adapter"
	"gooze.dev/pkg/mutview/internal/controller"
	"gooze.dev/pkg/mutview/internal/domain/navigator"
	m "gooze.dev/pkg/mutview/internal/model"
)

var (
	// ErrFileNotFound is returned when a report has no page for a source path.
	ErrFileNotFound = errors.New("file not found in report")
	// ErrNoTree is returned by Treemap for reports without a file tree.
	ErrNoTree = errors.New("report has no file tree")
)

// NavigationArgs configures the source selector.
type NavigationArgs struct {
	LoopLocations bool
	MutantPolicy  navigator.MutantPolicy
	TestCases     int
}

// options converts the arguments to selector options.
func (a NavigationArgs) options() []navigator.Option {
	return []navigator.Option{
		navigator.WithLocationLoop(a.LoopLocations),
		navigator.WithMutantPolicy(a.MutantPolicy),
		navigator.WithTestCases(a.TestCases),
	}
}

// SourceArgs contains the arguments for browsing one source page.
type SourceArgs struct {
	Report     m.Path
	File       m.Path
	Fragment   string
	SourceRoot m.Path
	Navigation NavigationArgs
	Keys       controller.KeyConfig
}

// TreemapArgs contains the arguments for browsing the treemap.
type TreemapArgs struct {
	Report     m.Path
	Fragment   string
	SourceRoot m.Path
	Navigation NavigationArgs
	Keys       controller.KeyConfig
}

// ListArgs contains the arguments for the report listing.
type ListArgs struct {
	Report m.Path
	SortBy SortColumn
	Desc   bool
	Filter string
}

// ConvertArgs contains the arguments for rewriting a report.
type ConvertArgs struct {
	Report m.Path
	Output m.Path
}

// Workflow defines the use cases of the CLI.
type Workflow interface {
	Source(ctx context.Context, args SourceArgs) error
	Treemap(ctx context.Context, args TreemapArgs) error
	List(ctx context.Context, args ListArgs) error
	Convert(ctx context.Context, args ConvertArgs) error
}

type workflow struct {
	adapter.ReportStore
	adapter.SourceFSAdapter
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		UI:              ui,
	}
}

func (w *workflow) Source(ctx context.Context, args SourceArgs) error {
	report, err := w.LoadReport(ctx, args.Report)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	page, err := w.sourcePage(report, args.File, args.SourceRoot, args.Navigation)
	if err != nil {
		return err
	}

	page.History = adapter.NewHistory(args.Fragment)

	if err := w.Start(ctx, controller.WithSourceMode(), controller.WithKeys(args.Keys)); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	outcome, err := w.BrowseSource(ctx, page)
	if err != nil {
		return fmt.Errorf("browse %s: %w", page.File.Path, err)
	}

	slog.Info("source page closed", "file", page.File.Path, "fragment", outcome.Fragment)
	w.Wait(ctx)

	return nil
}

// Treemap runs the treemap and the pages it opens until the user quits.
// A file page opened from the treemap returns to it; the treemap keeps its
// address history across those visits.
func (w *workflow) Treemap(ctx context.Context, args TreemapArgs) error {
	report, err := w.LoadReport(ctx, args.Report)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	if report.Tree == nil {
		return fmt.Errorf("%s: %w", args.Report, ErrNoTree)
	}

	if err := w.Start(ctx, controller.WithTreemapMode(), controller.WithKeys(args.Keys)); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	treemap := controller.TreemapPage{
		Title:   report.Title,
		Root:    report.Tree,
		History: adapter.NewHistory(args.Fragment),
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		outcome, err := w.BrowseTreemap(ctx, treemap)
		if err != nil {
			return fmt.Errorf("browse treemap: %w", err)
		}

		switch outcome.Action {
		case controller.ActionOpenFile:
			quit, err := w.openFromTreemap(ctx, report, outcome.Path, args)
			if err != nil {
				return err
			}

			if quit {
				w.Wait(ctx)
				return nil
			}

		case controller.ActionOpenListing:
			return w.DisplayListing(ctx, Summarize(report), controller.ListingOptions{Title: report.Title, SortBy: string(SortByPath)})

		case controller.ActionQuit, controller.ActionBack:
			w.Wait(ctx)
			return nil
		}
	}
}

// openFromTreemap browses the page of path and reports whether the user quit
// instead of returning to the treemap.
func (w *workflow) openFromTreemap(ctx context.Context, report *m.Report, path m.Path, args TreemapArgs) (bool, error) {
	page, err := w.sourcePage(report, path, args.SourceRoot, args.Navigation)
	if errors.Is(err, ErrFileNotFound) {
		slog.Warn("treemap file has no source page", "path", path)
		return false, nil
	}

	if err != nil {
		return false, err
	}

	page.History = adapter.NewHistory("")
	page.Returnable = true

	outcome, err := w.BrowseSource(ctx, page)
	if err != nil {
		return false, fmt.Errorf("browse %s: %w", path, err)
	}

	return outcome.Action == controller.ActionQuit, nil
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	report, err := w.LoadReport(ctx, args.Report)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.Start(ctx, controller.WithListingMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	rows := FilterSummaries(Summarize(report), args.Filter)
	SortSummaries(rows, args.SortBy, args.Desc)

	err = w.DisplayListing(ctx, rows, controller.ListingOptions{
		Title:  report.Title,
		SortBy: string(args.SortBy),
		Desc:   args.Desc,
		Filter: args.Filter,
	})
	if err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}

func (w *workflow) Convert(ctx context.Context, args ConvertArgs) error {
	report, err := w.LoadReport(ctx, args.Report)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.SaveReport(ctx, args.Output, report); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	w.DisplayReportSaved(ctx, args.Output, len(report.Mutants))

	return nil
}

// sourcePage builds the page of path. An empty path selects the only file
// of a single-file report. Missing line text is filled from sourceRoot.
func (w *workflow) sourcePage(report *m.Report, path m.Path, sourceRoot m.Path, nav NavigationArgs) (controller.SourcePage, error) {
	if path == "" && len(report.Files) == 1 {
		path = report.Files[0].Path
	}

	file, ok := report.File(path)
	if !ok {
		return controller.SourcePage{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	if sourceRoot != "" {
		file = w.fillText(file, sourceRoot)
	}

	return controller.SourcePage{
		Title:      report.Title,
		File:       file,
		Index:      navigator.NewIndex(report, file),
		Statuses:   report.StatusOrder(),
		KindGroups: report.KindGroupOrder(),
		Options:    nav.options(),
	}, nil
}

// fillText returns a copy of file whose empty location texts are read from
// the source tree. Unreadable sources leave the page as it is.
func (w *workflow) fillText(file m.SourceFile, sourceRoot m.Path) m.SourceFile {
	lines, err := w.ReadLines(w.JoinPath(string(sourceRoot), string(file.Path)))
	if err != nil {
		slog.Warn("cannot read source", "path", file.Path, "error", err)
		return file
	}

	file.Locations = slices.Clone(file.Locations)

	for i, loc := range file.Locations {
		if loc.Text == "" && loc.Line >= 1 && loc.Line <= len(lines) {
			file.Locations[i].Text = lines[loc.Line-1]
		}
	}

	return file
}
