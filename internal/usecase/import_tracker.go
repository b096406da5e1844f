package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avelent/draftday/internal/domain/importrun"
)

// ImportTracker wraps every adapter invocation with audit bookkeeping: it
// ensures the Source row exists, opens an ImportRun before the adapter
// starts, and closes it with the outcome. Its own writes commit outside the
// fact-table transaction, so a rolled-back batch still leaves a run record.
// No failure escapes this boundary; everything becomes a structured result.
type ImportTracker struct {
	runs   importrun.Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewImportTracker(runs importrun.Repository, logger *slog.Logger) *ImportTracker {
	return &ImportTracker{
		runs:   runs,
		logger: logger,
		now:    time.Now,
	}
}

// RunTracked records one audited execution of fn. An error (or panic) from
// fn is converted into a failed run and a zero-row error result.
func (t *ImportTracker) RunTracked(ctx context.Context, sourceName, sourceKind string, fn func(ctx context.Context) (IngestResult, error)) IngestResult {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportTracker.RunTracked")
	defer span.End()

	src, err := t.runs.GetOrCreateSource(ctx, sourceName, sourceKind)
	if err != nil {
		return errorResult(fmt.Sprintf("get or create source %q: %v", sourceName, err))
	}

	run, err := t.runs.StartRun(ctx, src.ID)
	if err != nil {
		return errorResult(fmt.Sprintf("start import run for %q: %v", sourceName, err))
	}

	result, err := t.invoke(ctx, fn)
	finished := t.now().UTC()
	run.FinishedAt = &finished

	if err != nil {
		run.Success = false
		run.ErrorText = err.Error()
		result = errorResult(err.Error())
	} else {
		run.Success = len(result.Errors) == 0
		run.RowCount = result.Imported
		if len(result.Errors) > 0 {
			run.ErrorText = strings.Join(result.Errors, "; ")
		}
	}

	if finishErr := t.runs.FinishRun(ctx, run); finishErr != nil {
		t.logger.ErrorContext(ctx, "finish import run",
			"source", sourceName,
			"error", finishErr,
		)
	}

	t.logger.InfoContext(ctx, "import run finished",
		"source", sourceName,
		"kind", sourceKind,
		"success", run.Success,
		"imported", result.Imported,
		"unmatched", result.Unmatched,
	)
	return result
}

// ListRecentRuns exposes the audit trail, newest first.
func (t *ImportTracker) ListRecentRuns(ctx context.Context, limit int) ([]importrun.Run, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportTracker.ListRecentRuns")
	defer span.End()

	if limit <= 0 || limit > 200 {
		limit = 50
	}
	runs, err := t.runs.ListRecentRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent import runs: %w", err)
	}
	return runs, nil
}

// invoke shields the tracker from panicking collaborators.
func (t *ImportTracker) invoke(ctx context.Context, fn func(ctx context.Context) (IngestResult, error)) (result IngestResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("import panicked: %v", rec)
		}
	}()
	return fn(ctx)
}
