package model

// FileSummary is one row of the top-level report listing.
type FileSummary struct {
	Path      Path
	Locations int
	Mutants   int
	Alive     int
	Killed    int
	Score     float64
}
