package postgres

import (
	"database/sql"
	"time"
)

type sourceTableModel struct {
	ID   int64  `db:"source_id"`
	Name string `db:"name"`
	Kind string `db:"kind"`
}

type importRunTableModel struct {
	ID         int64          `db:"run_id"`
	SourceID   int64          `db:"source_id"`
	StartedAt  time.Time      `db:"started_at"`
	FinishedAt sql.NullTime   `db:"finished_at"`
	Success    bool           `db:"success"`
	RowCount   int            `db:"row_count"`
	ErrorText  sql.NullString `db:"error_text"`
}
