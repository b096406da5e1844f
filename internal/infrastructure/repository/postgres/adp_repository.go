package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/avelent/draftday/internal/domain/adp"
	qb "github.com/avelent/draftday/internal/platform/querybuilder"
)

type ADPRepository struct {
	db sqlx.ExtContext
}

func NewADPRepository(db sqlx.ExtContext) *ADPRepository {
	return &ADPRepository{db: db}
}

func (r *ADPRepository) Get(ctx context.Context, season int, playerID, source string) (*adp.ADP, error) {
	query, args, err := qb.Select("season", "player_id", "source", "adp", "rank", "sample_size", "asof_ts").
		From("adp_ranks").
		Where(
			qb.Eq("season", season),
			qb.Eq("player_id", playerID),
			qb.Eq("source", source),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get adp query: %w", err)
	}

	var row adpTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get adp: %w", err)
	}

	return &adp.ADP{
		Season:     row.Season,
		PlayerID:   row.PlayerID,
		Source:     row.Source,
		ADP:        nullFloat64ToPtr(row.ADP),
		Rank:       nullFloat64ToPtr(row.Rank),
		SampleSize: nullInt64ToIntPtr(row.SampleSize),
		AsOf:       row.AsOf,
	}, nil
}

func (r *ADPRepository) Save(ctx context.Context, row adp.ADP) error {
	insertModel := adpInsertModel{
		Season:     row.Season,
		PlayerID:   row.PlayerID,
		Source:     row.Source,
		ADP:        ptrToNullFloat64(row.ADP),
		Rank:       ptrToNullFloat64(row.Rank),
		SampleSize: intPtrToNullInt64(row.SampleSize),
		AsOf:       row.AsOf,
	}
	query, args, err := qb.InsertModel("adp_ranks", insertModel, `ON CONFLICT (season, player_id, source)
DO UPDATE SET
    adp = EXCLUDED.adp,
    rank = EXCLUDED.rank,
    sample_size = EXCLUDED.sample_size,
    asof_ts = EXCLUDED.asof_ts`)
	if err != nil {
		return fmt.Errorf("build upsert adp query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert adp: %w", err)
	}
	return nil
}
