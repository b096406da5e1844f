package postgres

import (
	"database/sql"
	"time"
)

type playerTableModel struct {
	ID        string         `db:"player_id"`
	Season    int            `db:"season"`
	CleanName string         `db:"clean_name"`
	Position  string         `db:"position"`
	Team      sql.NullString `db:"team"`
	ByeWeek   sql.NullInt64  `db:"bye_week"`
	SleeperID sql.NullString `db:"sleeper_id"`
	ESPNID    sql.NullString `db:"espn_id"`
	NFLID     sql.NullString `db:"nfl_id"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type playerInsertModel struct {
	ID        string         `db:"player_id"`
	Season    int            `db:"season"`
	CleanName string         `db:"clean_name"`
	Position  string         `db:"position"`
	Team      sql.NullString `db:"team"`
	ByeWeek   sql.NullInt64  `db:"bye_week"`
	SleeperID sql.NullString `db:"sleeper_id"`
	ESPNID    sql.NullString `db:"espn_id"`
	NFLID     sql.NullString `db:"nfl_id"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type enrichedRowTableModel struct {
	PlayerID   string          `db:"player_id"`
	Name       string          `db:"clean_name"`
	Position   string          `db:"position"`
	Team       sql.NullString  `db:"team"`
	ECRRank    sql.NullFloat64 `db:"ecr_rank"`
	ECRPosRank sql.NullFloat64 `db:"ecr_pos_rank"`
	Tier       sql.NullInt64   `db:"tier"`
	TierSource sql.NullString  `db:"tier_source"`
	ADP        sql.NullFloat64 `db:"adp"`
	Status     sql.NullString  `db:"status"`
	BodyPart   sql.NullString  `db:"body_part"`
}
