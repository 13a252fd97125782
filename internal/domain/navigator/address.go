package navigator

import (
	"log/slog"
)

// AddressBar is the shareable address fragment of the environment.
type AddressBar interface {
	// Fragment returns the current fragment without the leading '#'.
	Fragment() string
	// SetFragment records a new fragment written by a navigator. It must not
	// notify the subscriber.
	SetFragment(fragment string)
	// ReplaceFragment overwrites the current fragment in place, keeping the
	// entries before and after it. It must not notify the subscriber.
	ReplaceFragment(fragment string)
	// Subscribe registers the single callback invoked when the fragment is
	// changed from outside (history back/forward, edited address).
	Subscribe(fn func(fragment string))
}

// SourceSync keeps a Selector and an AddressBar in step.
type SourceSync struct {
	sel         *Selector
	bar         AddressBar
	loading     bool
	reconciling bool
}

// NewSourceSync binds sel to bar. Every later selection change of sel is
// written to bar, and external changes of bar are reconciled into sel.
func NewSourceSync(sel *Selector, bar AddressBar) *SourceSync {
	sync := &SourceSync{sel: sel, bar: bar}

	sel.publish = sync.write
	bar.Subscribe(sync.Reconcile)

	return sync
}

// Load performs the initial selection: the first location, then whatever the
// current fragment names. The address is not rewritten while loading.
func (a *SourceSync) Load() {
	a.loading = true
	defer func() { a.loading = false }()

	fragment := a.bar.Fragment()

	if a.sel.Index().Len() == 0 {
		slog.Debug("page has no locations")
		return
	}

	a.sel.SelectLocation(a.sel.Index().Location(0).ID, false)

	if !a.apply(fragment) && fragment != "" {
		slog.Debug("ignoring unknown fragment", "fragment", fragment)
	}
}

// Reconcile applies an externally changed fragment when it differs from the
// canonical fragment of the current selection. A fragment that resolves to a
// different canonical one (a filtered-out mutant) replaces the current entry
// instead of adding one, so forward entries survive.
func (a *SourceSync) Reconcile(fragment string) {
	if fragment == a.sel.Fragment() {
		return
	}

	a.reconciling = true
	defer func() { a.reconciling = false }()

	if fragment == "" {
		if a.sel.State() == MutantSelected {
			a.sel.SelectMutant(NoneID)
		}

		return
	}

	if !a.apply(fragment) {
		slog.Debug("ignoring unknown fragment", "fragment", fragment)
	}
}

// apply decodes fragment as a mutant id or a location id and selects it.
func (a *SourceSync) apply(fragment string) bool {
	if fragment == "" {
		return false
	}

	if a.sel.restoreMutant(fragment) {
		a.sel.presenter.ScrollTo(a.sel.Fragment(), true)
		return true
	}

	if _, ok := a.sel.Index().LocationPos(fragment); ok {
		a.sel.SelectLocation(fragment, false)
		a.sel.presenter.ScrollTo(fragment, true)

		return true
	}

	return false
}

func (a *SourceSync) write(fragment string) {
	if a.loading || a.bar.Fragment() == fragment {
		return
	}

	if a.reconciling {
		a.bar.ReplaceFragment(fragment)
		return
	}

	a.bar.SetFragment(fragment)
}
