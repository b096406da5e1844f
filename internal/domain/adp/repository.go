package adp

import "context"

// Repository describes ADP persistence. Get returns nil when no row exists;
// Save upserts on (season, player_id, source).
type Repository interface {
	Get(ctx context.Context, season int, playerID, source string) (*ADP, error)
	Save(ctx context.Context, row ADP) error
}
