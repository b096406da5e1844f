package memory

import (
	"context"
	"sync"
	"time"

	"github.com/avelent/draftday/internal/domain/importrun"
)

type ImportRunRepository struct {
	mu      sync.Mutex
	sources map[string]importrun.Source
	runs    map[int64]importrun.Run
	nextSrc int64
	nextRun int64
}

func NewImportRunRepository() *ImportRunRepository {
	return &ImportRunRepository{
		sources: make(map[string]importrun.Source),
		runs:    make(map[int64]importrun.Run),
	}
}

func (r *ImportRunRepository) GetOrCreateSource(_ context.Context, name, kind string) (importrun.Source, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if src, ok := r.sources[name]; ok {
		return src, nil
	}
	r.nextSrc++
	src := importrun.Source{ID: r.nextSrc, Name: name, Kind: kind}
	r.sources[name] = src
	return src, nil
}

func (r *ImportRunRepository) StartRun(_ context.Context, sourceID int64) (importrun.Run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextRun++
	run := importrun.Run{ID: r.nextRun, SourceID: sourceID, StartedAt: time.Now().UTC()}
	r.runs[run.ID] = run
	return run, nil
}

func (r *ImportRunRepository) FinishRun(_ context.Context, run importrun.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs[run.ID] = run
	return nil
}

func (r *ImportRunRepository) ListRecentRuns(_ context.Context, limit int) ([]importrun.Run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]importrun.Run, 0, len(r.runs))
	for id := r.nextRun; id > 0 && len(out) < limit; id-- {
		if run, ok := r.runs[id]; ok {
			out = append(out, run)
		}
	}
	return out, nil
}
