package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/avelent/draftday/internal/domain/importrun"
	qb "github.com/avelent/draftday/internal/platform/querybuilder"
)

// ImportRunRepository writes its rows on the shared handle, outside the
// fact-table transaction, so a rolled-back batch still leaves its audit row.
type ImportRunRepository struct {
	db *sqlx.DB
}

func NewImportRunRepository(db *sqlx.DB) *ImportRunRepository {
	return &ImportRunRepository{db: db}
}

func (r *ImportRunRepository) GetOrCreateSource(ctx context.Context, name, kind string) (importrun.Source, error) {
	var row sourceTableModel
	err := r.db.QueryRowxContext(ctx, `INSERT INTO sources (name, kind) VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET kind = EXCLUDED.kind
RETURNING source_id, name, kind`, name, kind).StructScan(&row)
	if err != nil {
		return importrun.Source{}, fmt.Errorf("get or create source: %w", err)
	}
	return importrun.Source{ID: row.ID, Name: row.Name, Kind: row.Kind}, nil
}

func (r *ImportRunRepository) StartRun(ctx context.Context, sourceID int64) (importrun.Run, error) {
	var row importRunTableModel
	err := r.db.QueryRowxContext(ctx, `INSERT INTO import_runs (source_id, started_at, success, row_count)
VALUES ($1, NOW(), FALSE, 0)
RETURNING run_id, source_id, started_at, finished_at, success, row_count, error_text`, sourceID).StructScan(&row)
	if err != nil {
		return importrun.Run{}, fmt.Errorf("start import run: %w", err)
	}
	return importRunToDomain(row), nil
}

func (r *ImportRunRepository) FinishRun(ctx context.Context, run importrun.Run) error {
	query, args, err := finishRunQuery(run)
	if err != nil {
		return fmt.Errorf("build finish import run query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("finish import run: %w", err)
	}
	return nil
}

func (r *ImportRunRepository) ListRecentRuns(ctx context.Context, limit int) ([]importrun.Run, error) {
	query, args, err := qb.Select("run_id", "source_id", "started_at", "finished_at", "success", "row_count", "error_text").
		From("import_runs").
		OrderBy("started_at DESC", "run_id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list import runs query: %w", err)
	}

	var rows []importRunTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list import runs: %w", err)
	}

	out := make([]importrun.Run, 0, len(rows))
	for _, row := range rows {
		out = append(out, importRunToDomain(row))
	}
	return out, nil
}

// finishRunQuery binds error_text as a plain string; the column is
// NOT NULL DEFAULT '', so a successful run writes '' rather than NULL.
func finishRunQuery(run importrun.Run) (string, []any, error) {
	return qb.Update("import_runs").
		SetExpr("finished_at", "NOW()").
		Set("success", run.Success).
		Set("row_count", run.RowCount).
		Set("error_text", run.ErrorText).
		Where(qb.Eq("run_id", run.ID)).
		ToSQL()
}

func importRunToDomain(row importRunTableModel) importrun.Run {
	return importrun.Run{
		ID:         row.ID,
		SourceID:   row.SourceID,
		StartedAt:  row.StartedAt,
		FinishedAt: nullTimeToPtr(row.FinishedAt),
		Success:    row.Success,
		RowCount:   row.RowCount,
		ErrorText:  nullStringToString(row.ErrorText),
	}
}
