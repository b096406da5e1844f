package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/avelent/draftday/internal/domain/adp"
	"github.com/avelent/draftday/internal/domain/injury"
	"github.com/avelent/draftday/internal/domain/player"
	"github.com/avelent/draftday/internal/domain/ranking"
	"github.com/avelent/draftday/internal/usecase"
)

// Store runs fact-table work inside one database transaction. Every write of
// an ingestion batch goes through a single InTx call and commits atomically.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, tx usecase.FactTx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin fact tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(ctx, &factTx{ext: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit fact tx: %w", err)
	}
	return nil
}

type factTx struct {
	ext sqlx.ExtContext
}

func (t *factTx) Players() player.Repository  { return NewPlayerRepository(t.ext) }
func (t *factTx) Ranks() ranking.Repository   { return NewRankingRepository(t.ext) }
func (t *factTx) ADP() adp.Repository         { return NewADPRepository(t.ext) }
func (t *factTx) Injuries() injury.Repository { return NewInjuryRepository(t.ext) }
