package importrun

import "time"

// Source is a catalog entry for a known external data source, created lazily
// on first use.
type Source struct {
	ID   int64
	Name string
	Kind string
}

// Run is one audited execution of a source adapter for a season. Rows are
// append-only: once FinishedAt is set the row is never mutated again.
type Run struct {
	ID         int64
	SourceID   int64
	StartedAt  time.Time
	FinishedAt *time.Time
	Success    bool
	RowCount   int
	ErrorText  string
}
