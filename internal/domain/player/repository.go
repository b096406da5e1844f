package player

import "context"

// Repository describes player persistence needs from use cases. Lookups that
// find nothing return a nil Player, not an error: an unresolved name is an
// expected outcome for the matcher, never an exceptional one.
type Repository interface {
	GetByID(ctx context.Context, playerID string) (*Player, error)
	// ListByCleanName returns all players with the given normalized name,
	// ordered by id so tie-breaking stays stable for a given snapshot.
	ListByCleanName(ctx context.Context, cleanName string) ([]Player, error)
	Search(ctx context.Context, query string, limit int) ([]Player, error)
	// Upsert creates the player on first sight and refreshes identity fields
	// on every later one.
	Upsert(ctx context.Context, p Player) error
	// ListEnriched joins players with their per-season facts for the
	// downstream suggestion view.
	ListEnriched(ctx context.Context, season int, position string, limit int) ([]EnrichedRow, error)
	// ListAvailableByRank lists unpicked players ordered by consensus rank
	// (ranked players first).
	ListAvailableByRank(ctx context.Context, season int, position string, excludeIDs []string, limit int) ([]Player, error)
}
