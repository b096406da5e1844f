package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/avelent/draftday/internal/domain/ranking"
	qb "github.com/avelent/draftday/internal/platform/querybuilder"
)

type RankingRepository struct {
	db sqlx.ExtContext
}

func NewRankingRepository(db sqlx.ExtContext) *RankingRepository {
	return &RankingRepository{db: db}
}

func (r *RankingRepository) Get(ctx context.Context, season int, playerID string) (*ranking.ConsensusRank, error) {
	query, args, err := qb.Select("season", "player_id", "ecr_rank", "ecr_pos_rank", "tier", "source", "asof_ts").
		From("consensus_ranks").
		Where(
			qb.Eq("season", season),
			qb.Eq("player_id", playerID),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get consensus rank query: %w", err)
	}

	var row consensusRankTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get consensus rank: %w", err)
	}

	return &ranking.ConsensusRank{
		Season:     row.Season,
		PlayerID:   row.PlayerID,
		ECRRank:    nullFloat64ToPtr(row.ECRRank),
		ECRPosRank: nullFloat64ToPtr(row.ECRPosRank),
		Tier:       nullInt64ToIntPtr(row.Tier),
		Source:     row.Source,
		AsOf:       row.AsOf,
	}, nil
}

func (r *RankingRepository) Save(ctx context.Context, row ranking.ConsensusRank) error {
	insertModel := consensusRankInsertModel{
		Season:     row.Season,
		PlayerID:   row.PlayerID,
		ECRRank:    ptrToNullFloat64(row.ECRRank),
		ECRPosRank: ptrToNullFloat64(row.ECRPosRank),
		Tier:       intPtrToNullInt64(row.Tier),
		Source:     row.Source,
		AsOf:       row.AsOf,
	}
	query, args, err := qb.InsertModel("consensus_ranks", insertModel, `ON CONFLICT (season, player_id)
DO UPDATE SET
    ecr_rank = EXCLUDED.ecr_rank,
    ecr_pos_rank = EXCLUDED.ecr_pos_rank,
    tier = EXCLUDED.tier,
    source = EXCLUDED.source,
    asof_ts = EXCLUDED.asof_ts`)
	if err != nil {
		return fmt.Errorf("build upsert consensus rank query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert consensus rank: %w", err)
	}
	return nil
}

func (r *RankingRepository) GetOverride(ctx context.Context, playerID string) (*ranking.TierOverride, error) {
	query, args, err := qb.Select("player_id", "tier_override").
		From("tier_overrides").
		Where(qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get tier override query: %w", err)
	}

	var row tierOverrideTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tier override: %w", err)
	}

	return &ranking.TierOverride{PlayerID: row.PlayerID, Tier: row.Tier}, nil
}

func (r *RankingRepository) SetOverride(ctx context.Context, playerID string, tier int) error {
	insertModel := tierOverrideTableModel{PlayerID: playerID, Tier: tier}
	query, args, err := qb.InsertModel("tier_overrides", insertModel, `ON CONFLICT (player_id)
DO UPDATE SET tier_override = EXCLUDED.tier_override`)
	if err != nil {
		return fmt.Errorf("build set tier override query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set tier override: %w", err)
	}
	return nil
}

func (r *RankingRepository) ClearOverride(ctx context.Context, playerID string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM tier_overrides WHERE player_id = $1", playerID); err != nil {
		return fmt.Errorf("clear tier override: %w", err)
	}
	return nil
}
