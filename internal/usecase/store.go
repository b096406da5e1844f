package usecase

import (
	"context"

	"github.com/avelent/draftday/internal/domain/adp"
	"github.com/avelent/draftday/internal/domain/injury"
	"github.com/avelent/draftday/internal/domain/player"
	"github.com/avelent/draftday/internal/domain/ranking"
)

// FactTx exposes the repositories bound to one fact-table transaction. All
// writes of an ingestion batch go through a single FactTx and become visible
// to readers only on commit.
type FactTx interface {
	Players() player.Repository
	Ranks() ranking.Repository
	ADP() adp.Repository
	Injuries() injury.Repository
}

// FactStore runs a function inside one transactional unit. A non-nil error
// from fn rolls the batch back, leaving prior fact state unchanged.
type FactStore interface {
	InTx(ctx context.Context, fn func(ctx context.Context, tx FactTx) error) error
}
