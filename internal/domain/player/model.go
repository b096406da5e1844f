package player

import (
	"fmt"
	"strings"
	"time"
)

// Player is the single canonical identity row every external fact is
// reconciled against. The ID is assigned at first sight and never changes;
// CleanName+Position is the primary human-matchable key.
type Player struct {
	ID        string
	Season    int
	CleanName string
	Position  string
	Team      string
	ByeWeek   *int
	SleeperID string
	ESPNID    string
	NFLID     string
	UpdatedAt time.Time
}

// DeterministicID derives a stable player id for catalog entries that carry
// none: "<lower position>.<lower name with spaces removed>".
func DeterministicID(position, cleanName string) string {
	return strings.ToLower(position) + "." + strings.ReplaceAll(strings.ToLower(cleanName), " ", "")
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Season <= 0 {
		return fmt.Errorf("player season must be greater than zero")
	}
	if p.CleanName == "" {
		return fmt.Errorf("player clean name is required")
	}
	if p.Position == "" {
		return fmt.Errorf("player position is required")
	}
	return nil
}

// EnrichedRow is the pre-joined read model the suggestion UI consumes:
// identity plus the latest consensus, ADP and injury facts, with a manual
// tier override shadowing the computed tier when set.
type EnrichedRow struct {
	PlayerID     string
	Name         string
	Position     string
	Team         string
	ECRRank      *float64
	ECRPosRank   *float64
	Tier         *int
	TierSource   string
	ADP          *float64
	InjuryStatus string
	InjuryBody   string
}
