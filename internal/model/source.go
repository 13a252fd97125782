package model

import "fmt"

// Path represents a file system path.
type Path string

// Location is one addressable source line and the mutants placed on it.
type Location struct {
	ID      string   `yaml:"id" json:"id" msgpack:"id"`
	Line    int      `yaml:"line" json:"line" msgpack:"line"`
	Text    string   `yaml:"text" json:"text" msgpack:"text"`
	Mutants []string `yaml:"mutants,omitempty" json:"mutants,omitempty" msgpack:"mutants,omitempty"`
}

// LocationID returns the canonical id of the location on the given line.
func LocationID(line int) string {
	return fmt.Sprintf("loc-%d", line)
}

// SourceFile is one rendered source page of the report.
type SourceFile struct {
	Path      Path       `yaml:"path" json:"path" msgpack:"path"`
	Locations []Location `yaml:"locations" json:"locations" msgpack:"locations"`
}
