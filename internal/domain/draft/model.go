package draft

import (
	"fmt"
	"time"
)

// TeamSlot is one of the fixed seats at the draft table.
type TeamSlot struct {
	SlotID        int
	TeamName      string
	DraftPosition int
}

func (t TeamSlot) Validate() error {
	if t.SlotID <= 0 {
		return fmt.Errorf("team slot id must be greater than zero")
	}
	if t.TeamName == "" {
		return fmt.Errorf("team name is required")
	}
	if t.DraftPosition <= 0 {
		return fmt.Errorf("draft position must be greater than zero")
	}
	return nil
}

// Pick records one drafted player. OverallNo is unique across the draft.
type Pick struct {
	ID         int64
	RoundNo    int
	OverallNo  int
	TeamSlotID int
	PlayerID   string
}

func (p Pick) Validate() error {
	if p.RoundNo <= 0 {
		return fmt.Errorf("round number must be greater than zero")
	}
	if p.OverallNo <= 0 {
		return fmt.Errorf("overall number must be greater than zero")
	}
	if p.TeamSlotID <= 0 {
		return fmt.Errorf("team slot id must be greater than zero")
	}
	if p.PlayerID == "" {
		return fmt.Errorf("player id is required")
	}
	return nil
}

// Note is a free-text annotation on a player, optionally scoped to a slot.
type Note struct {
	ID         int64
	PlayerID   string
	TeamSlotID *int
	Text       string
	TS         time.Time
}
