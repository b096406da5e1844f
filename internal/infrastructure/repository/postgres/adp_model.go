package postgres

import (
	"database/sql"
	"time"
)

type adpTableModel struct {
	Season     int             `db:"season"`
	PlayerID   string          `db:"player_id"`
	Source     string          `db:"source"`
	ADP        sql.NullFloat64 `db:"adp"`
	Rank       sql.NullFloat64 `db:"rank"`
	SampleSize sql.NullInt64   `db:"sample_size"`
	AsOf       time.Time       `db:"asof_ts"`
}

type adpInsertModel struct {
	Season     int             `db:"season"`
	PlayerID   string          `db:"player_id"`
	Source     string          `db:"source"`
	ADP        sql.NullFloat64 `db:"adp"`
	Rank       sql.NullFloat64 `db:"rank"`
	SampleSize sql.NullInt64   `db:"sample_size"`
	AsOf       time.Time       `db:"asof_ts"`
}
