// Package model defines the data structures of a mutation report.
package model

// Status is the test outcome recorded for a mutant.
type Status string

// Statuses known to the report generator. A dataset may declare others.
const (
	StatusUnknown          Status = "unknown"
	StatusAlive            Status = "alive"
	StatusKilled           Status = "killed"
	StatusTimeout          Status = "timeout"
	StatusKilledByCompiler Status = "killedByCompiler"
	StatusNoCoverage       Status = "noCoverage"
	StatusEquivalent       Status = "equivalent"
	StatusSkipped          Status = "skipped"
)

// DefaultStatuses is the status order used when a dataset does not declare one.
var DefaultStatuses = []Status{
	StatusUnknown,
	StatusAlive,
	StatusKilled,
	StatusTimeout,
	StatusKilledByCompiler,
	StatusNoCoverage,
	StatusEquivalent,
	StatusSkipped,
}

// Kind is the concrete mutation operator (e.g. "rorLE").
type Kind string

// KindGroup is the coarse operator family used for filtering (e.g. "ror").
type KindGroup string

// Mutant is one candidate code alteration at a location.
type Mutant struct {
	ID        string    `yaml:"id" json:"id" msgpack:"id"`
	Status    Status    `yaml:"status" json:"status" msgpack:"status"`
	Kind      Kind      `yaml:"kind" json:"kind" msgpack:"kind"`
	Group     KindGroup `yaml:"group" json:"group" msgpack:"group"`
	Original  string    `yaml:"original" json:"original" msgpack:"original"`
	Mutated   string    `yaml:"mutated" json:"mutated" msgpack:"mutated"`
	Meta      string    `yaml:"meta,omitempty" json:"meta,omitempty" msgpack:"meta,omitempty"`
	TestCases []string  `yaml:"test_cases,omitempty" json:"test_cases,omitempty" msgpack:"test_cases,omitempty"`
}

// Alive reports whether no test detected the mutant.
func (mu Mutant) Alive() bool {
	return mu.Status == StatusAlive
}
