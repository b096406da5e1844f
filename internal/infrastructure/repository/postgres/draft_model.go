package postgres

import (
	"database/sql"
	"time"
)

type teamSlotTableModel struct {
	SlotID        int    `db:"team_slot_id"`
	TeamName      string `db:"team_name"`
	DraftPosition int    `db:"draft_position"`
}

type pickTableModel struct {
	ID         int64  `db:"pick_id"`
	RoundNo    int    `db:"round_no"`
	OverallNo  int    `db:"overall_no"`
	TeamSlotID int    `db:"team_slot_id"`
	PlayerID   string `db:"player_id"`
}

type noteTableModel struct {
	ID         int64         `db:"note_id"`
	PlayerID   string        `db:"player_id"`
	TeamSlotID sql.NullInt64 `db:"team_slot_id"`
	Text       string        `db:"text"`
	TS         time.Time     `db:"ts"`
}
