// Package navigator implements the report navigation state machines: the
// per-line selection of a source page and the treemap drill-down.
//
// Navigators are driven by exactly one input event at a time and are not safe
// for concurrent use. They never paint; they push what should be shown to a
// presenter and write their position to an AddressBar.
package navigator

import (
	"fmt"
	"strings"
)

// MutantPolicy decides what happens when mutant traversal runs past the first
// or last picker entry of a location.
type MutantPolicy string

// Available MutantPolicy values.
const (
	// PolicyStop keeps the current entry.
	PolicyStop MutantPolicy = "stop"
	// PolicyLoop wraps around the picker of the same location.
	PolicyLoop MutantPolicy = "loop"
	// PolicyFallthrough continues with the neighbouring location.
	PolicyFallthrough MutantPolicy = "fallthrough"
)

// ParseMutantPolicy parses a policy name as found in configuration.
func ParseMutantPolicy(value string) (MutantPolicy, error) {
	policy := MutantPolicy(strings.ToLower(strings.TrimSpace(value)))

	switch policy {
	case PolicyStop, PolicyLoop, PolicyFallthrough:
		return policy, nil
	case "":
		return PolicyFallthrough, nil
	}

	return "", fmt.Errorf("unknown mutant policy %q", value)
}

// Input identifies the kind of user interaction that triggered a transition.
type Input int

// Available Input values.
const (
	InputKey Input = iota
	InputWheel
	InputPointer
)

// Options holds selector configuration.
type Options struct {
	LoopLocations bool
	MutantPolicy  MutantPolicy
	TestCases     int
}

// DefaultOptions mirrors the behaviour of the HTML report.
func DefaultOptions() Options {
	return Options{
		LoopLocations: true,
		MutantPolicy:  PolicyFallthrough,
		TestCases:     3,
	}
}

// Option is a functional option for NewSelector.
type Option func(*Options)

// WithLocationLoop enables or disables wrap-around of location traversal.
func WithLocationLoop(loop bool) Option {
	return func(o *Options) {
		o.LoopLocations = loop
	}
}

// WithMutantPolicy sets the end-of-list policy of mutant traversal.
func WithMutantPolicy(policy MutantPolicy) Option {
	return func(o *Options) {
		o.MutantPolicy = policy
	}
}

// WithTestCases sets how many covering test cases the info panel lists.
func WithTestCases(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.TestCases = n
		}
	}
}
