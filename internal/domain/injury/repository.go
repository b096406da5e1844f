package injury

import "context"

// Repository describes injury persistence. Get returns nil when no row
// exists; Save upserts on (season, player_id, source).
type Repository interface {
	Get(ctx context.Context, season int, playerID, source string) (*Injury, error)
	Save(ctx context.Context, row Injury) error
}
