// Package controller provides the presenters of mutview: an interactive
// Bubble Tea TUI and a plain-text SimpleUI for pipes and CI logs.
package controller

import (
	"context"

	"gooze.dev/pkg/mutview/internal/domain/navigator"
	m "gooze.dev/pkg/mutview/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeSource StartMode = iota
	ModeTreemap
	ModeListing
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
	keys KeyConfig
}

// WithSourceMode starts the UI on a source page.
func WithSourceMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeSource
	}
}

// WithTreemapMode starts the UI on the treemap.
func WithTreemapMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeTreemap
	}
}

// WithListingMode starts the UI on the report listing.
func WithListingMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeListing
	}
}

// WithKeys overrides the navigation key bindings.
func WithKeys(keys KeyConfig) StartOption {
	return func(c *StartConfig) {
		c.keys = keys
	}
}

// AddressHistory is the address bar a page is browsed with.
type AddressHistory interface {
	navigator.AddressBar
	Back() bool
	Forward() bool
	Navigate(fragment string)
}

// Action is what a browsing session ended with.
type Action int

// Available Action values.
const (
	ActionQuit Action = iota
	ActionBack
	ActionOpenFile
	ActionOpenListing
)

// Outcome is the result of a browsing session.
type Outcome struct {
	Action Action
	// Path is the file to open for ActionOpenFile.
	Path m.Path
	// Fragment is the address at the end of the session.
	Fragment string
}

// SourcePage is everything needed to browse one source file.
type SourcePage struct {
	Title      string
	File       m.SourceFile
	Index      *navigator.Index
	Statuses   []m.Status
	KindGroups []m.KindGroup
	Options    []navigator.Option
	History    AddressHistory
	// Returnable is set when the page was opened from the treemap.
	Returnable bool
}

// TreemapPage is everything needed to browse the treemap.
type TreemapPage struct {
	Title   string
	Root    *m.Node
	History AddressHistory
}

// ListingOptions controls how the listing is shown.
type ListingOptions struct {
	Title  string
	SortBy string
	Desc   bool
	Filter string
}

// UI defines the interface for browsing mutation reports.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	BrowseSource(ctx context.Context, page SourcePage) (Outcome, error)
	BrowseTreemap(ctx context.Context, page TreemapPage) (Outcome, error)
	DisplayListing(ctx context.Context, rows []m.FileSummary, options ListingOptions) error
	DisplayReportSaved(ctx context.Context, path m.Path, mutants int)
}
