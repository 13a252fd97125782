package controller

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyConfig names the configurable navigation keys in Bubble Tea notation.
type KeyConfig struct {
	LocationUp   string
	LocationDown string
	MutantPrev   string
	MutantNext   string
	ToggleMutant string
}

// DefaultKeyConfig returns the arrow-key layout of the HTML report.
func DefaultKeyConfig() KeyConfig {
	return KeyConfig{
		LocationUp:   "up",
		LocationDown: "down",
		MutantPrev:   "left",
		MutantNext:   "right",
		ToggleMutant: "0",
	}
}

// withDefaults fills empty entries from DefaultKeyConfig.
func (c KeyConfig) withDefaults() KeyConfig {
	def := DefaultKeyConfig()

	pick := func(value, fallback string) string {
		if strings.TrimSpace(value) == "" {
			return fallback
		}

		return strings.TrimSpace(value)
	}

	return KeyConfig{
		LocationUp:   pick(c.LocationUp, def.LocationUp),
		LocationDown: pick(c.LocationDown, def.LocationDown),
		MutantPrev:   pick(c.MutantPrev, def.MutantPrev),
		MutantNext:   pick(c.MutantNext, def.MutantNext),
		ToggleMutant: pick(c.ToggleMutant, def.ToggleMutant),
	}
}

// sourceKeyMap holds the bindings of the source page. It implements
// help.KeyMap so the legend is generated from the same bindings.
type sourceKeyMap struct {
	LocationUp   key.Binding
	LocationDown key.Binding
	MutantPrev   key.Binding
	MutantNext   key.Binding
	ToggleMutant key.Binding
	Filter       key.Binding
	Back         key.Binding
	Forward      key.Binding
	Address      key.Binding
	Return       key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func newSourceKeyMap(cfg KeyConfig) sourceKeyMap {
	cfg = cfg.withDefaults()

	return sourceKeyMap{
		LocationUp:   binding(cfg.LocationUp, "previous line"),
		LocationDown: binding(cfg.LocationDown, "next line"),
		MutantPrev:   binding(cfg.MutantPrev, "previous mutant"),
		MutantNext:   binding(cfg.MutantNext, "next mutant"),
		ToggleMutant: binding(cfg.ToggleMutant, "show/hide mutant"),
		Filter:       key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filters")),
		Back:         key.NewBinding(key.WithKeys("[", "alt+left"), key.WithHelp("[", "back")),
		Forward:      key.NewBinding(key.WithKeys("]", "alt+right"), key.WithHelp("]", "forward")),
		Address:      key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "go to")),
		Return:       key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "treemap")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k sourceKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LocationUp, k.LocationDown, k.MutantPrev, k.MutantNext, k.ToggleMutant, k.Help, k.Quit}
}

func (k sourceKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LocationUp, k.LocationDown, k.MutantPrev, k.MutantNext, k.ToggleMutant},
		{k.Filter, k.Back, k.Forward, k.Address},
		{k.Return, k.Help, k.Quit},
	}
}

// treemapKeyMap holds the bindings of the treemap page.
type treemapKeyMap struct {
	Prev     key.Binding
	Next     key.Binding
	DrillIn  key.Binding
	DrillOut key.Binding
	Back     key.Binding
	Forward  key.Binding
	Address  key.Binding
	Quit     key.Binding
}

func newTreemapKeyMap() treemapKeyMap {
	return treemapKeyMap{
		Prev:     key.NewBinding(key.WithKeys("left", "up", "h", "k"), key.WithHelp("←/↑", "previous")),
		Next:     key.NewBinding(key.WithKeys("right", "down", "l", "j", "tab"), key.WithHelp("→/↓", "next")),
		DrillIn:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		DrillOut: key.NewBinding(key.WithKeys("backspace", "esc"), key.WithHelp("esc", "up")),
		Back:     key.NewBinding(key.WithKeys("[", "alt+left"), key.WithHelp("[", "back")),
		Forward:  key.NewBinding(key.WithKeys("]", "alt+right"), key.WithHelp("]", "forward")),
		Address:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "go to")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k treemapKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.DrillIn, k.DrillOut, k.Back, k.Forward, k.Address, k.Quit}
}

func (k treemapKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func binding(keys, desc string) key.Binding {
	names := strings.Split(keys, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}

	return key.NewBinding(key.WithKeys(names...), key.WithHelp(names[0], desc))
}
