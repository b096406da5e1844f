package postgres

import (
	"database/sql"
	"time"
)

type consensusRankTableModel struct {
	Season     int             `db:"season"`
	PlayerID   string          `db:"player_id"`
	ECRRank    sql.NullFloat64 `db:"ecr_rank"`
	ECRPosRank sql.NullFloat64 `db:"ecr_pos_rank"`
	Tier       sql.NullInt64   `db:"tier"`
	Source     string          `db:"source"`
	AsOf       time.Time       `db:"asof_ts"`
}

type consensusRankInsertModel struct {
	Season     int             `db:"season"`
	PlayerID   string          `db:"player_id"`
	ECRRank    sql.NullFloat64 `db:"ecr_rank"`
	ECRPosRank sql.NullFloat64 `db:"ecr_pos_rank"`
	Tier       sql.NullInt64   `db:"tier"`
	Source     string          `db:"source"`
	AsOf       time.Time       `db:"asof_ts"`
}

type tierOverrideTableModel struct {
	PlayerID string `db:"player_id"`
	Tier     int    `db:"tier_override"`
}
