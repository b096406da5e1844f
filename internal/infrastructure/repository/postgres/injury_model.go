package postgres

import (
	"database/sql"
	"time"
)

type injuryTableModel struct {
	Season         int             `db:"season"`
	PlayerID       string          `db:"player_id"`
	Source         string          `db:"source"`
	Status         sql.NullString  `db:"status"`
	BodyPart       sql.NullString  `db:"body_part"`
	PracticeStatus sql.NullString  `db:"practice_status"`
	Probability    sql.NullFloat64 `db:"probability"`
	ReturnTimeline sql.NullString  `db:"return_timeline"`
	AsOf           time.Time       `db:"asof_ts"`
}

type injuryInsertModel struct {
	Season         int             `db:"season"`
	PlayerID       string          `db:"player_id"`
	Source         string          `db:"source"`
	Status         sql.NullString  `db:"status"`
	BodyPart       sql.NullString  `db:"body_part"`
	PracticeStatus sql.NullString  `db:"practice_status"`
	Probability    sql.NullFloat64 `db:"probability"`
	ReturnTimeline sql.NullString  `db:"return_timeline"`
	AsOf           time.Time       `db:"asof_ts"`
}
