package importrun

import "context"

// Repository persists sources and import runs. Its writes commit
// independently of the fact-table transaction so a failed batch still leaves
// an audit trail.
type Repository interface {
	GetOrCreateSource(ctx context.Context, name, kind string) (Source, error)
	StartRun(ctx context.Context, sourceID int64) (Run, error)
	FinishRun(ctx context.Context, run Run) error
	ListRecentRuns(ctx context.Context, limit int) ([]Run, error)
}
