package memory

import (
	"time"

	"github.com/avelent/draftday/internal/domain/player"
)

// SeedPlayers returns a small canonical roster used by tests and the
// database-less run mode.
func SeedPlayers() []player.Player {
	now := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	bye := func(week int) *int { return &week }
	return []player.Player{
		{ID: "rb.cmcc", Season: 2025, CleanName: "Christian McCaffrey", Position: "RB", Team: "SF", ByeWeek: bye(9), UpdatedAt: now},
		{ID: "wr.jchase", Season: 2025, CleanName: "Ja'Marr Chase", Position: "WR", Team: "CIN", ByeWeek: bye(12), UpdatedAt: now},
		{ID: "wr.cdlamb", Season: 2025, CleanName: "CeeDee Lamb", Position: "WR", Team: "DAL", ByeWeek: bye(7), UpdatedAt: now},
		{ID: "rb.brobinson", Season: 2025, CleanName: "Bijan Robinson", Position: "RB", Team: "ATL", ByeWeek: bye(12), UpdatedAt: now},
		{ID: "wr.asb", Season: 2025, CleanName: "Amon-Ra St. Brown", Position: "WR", Team: "DET", ByeWeek: bye(9), UpdatedAt: now},
		{ID: "qb.jallen", Season: 2025, CleanName: "Josh Allen", Position: "QB", Team: "BUF", ByeWeek: bye(12), UpdatedAt: now},
	}
}
