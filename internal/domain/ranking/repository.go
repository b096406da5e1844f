package ranking

import "context"

// Repository describes consensus-rank persistence. Get returns nil when no
// row exists yet; Save is a full-row upsert on (season, player_id).
type Repository interface {
	Get(ctx context.Context, season int, playerID string) (*ConsensusRank, error)
	Save(ctx context.Context, row ConsensusRank) error

	GetOverride(ctx context.Context, playerID string) (*TierOverride, error)
	SetOverride(ctx context.Context, playerID string, tier int) error
	ClearOverride(ctx context.Context, playerID string) error
}
