package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/avelent/draftday/internal/domain/injury"
	qb "github.com/avelent/draftday/internal/platform/querybuilder"
)

type InjuryRepository struct {
	db sqlx.ExtContext
}

func NewInjuryRepository(db sqlx.ExtContext) *InjuryRepository {
	return &InjuryRepository{db: db}
}

func (r *InjuryRepository) Get(ctx context.Context, season int, playerID, source string) (*injury.Injury, error) {
	query, args, err := qb.Select("season", "player_id", "source", "status", "body_part", "practice_status", "probability", "return_timeline", "asof_ts").
		From("injuries").
		Where(
			qb.Eq("season", season),
			qb.Eq("player_id", playerID),
			qb.Eq("source", source),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get injury query: %w", err)
	}

	var row injuryTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get injury: %w", err)
	}

	return &injury.Injury{
		Season:         row.Season,
		PlayerID:       row.PlayerID,
		Source:         row.Source,
		Status:         nullStringToString(row.Status),
		BodyPart:       nullStringToString(row.BodyPart),
		PracticeStatus: nullStringToString(row.PracticeStatus),
		Probability:    nullFloat64ToPtr(row.Probability),
		ReturnTimeline: nullStringToString(row.ReturnTimeline),
		AsOf:           row.AsOf,
	}, nil
}

func (r *InjuryRepository) Save(ctx context.Context, row injury.Injury) error {
	insertModel := injuryInsertModel{
		Season:         row.Season,
		PlayerID:       row.PlayerID,
		Source:         row.Source,
		Status:         stringToNullString(row.Status),
		BodyPart:       stringToNullString(row.BodyPart),
		PracticeStatus: stringToNullString(row.PracticeStatus),
		Probability:    ptrToNullFloat64(row.Probability),
		ReturnTimeline: stringToNullString(row.ReturnTimeline),
		AsOf:           row.AsOf,
	}
	query, args, err := qb.InsertModel("injuries", insertModel, `ON CONFLICT (season, player_id, source)
DO UPDATE SET
    status = EXCLUDED.status,
    body_part = EXCLUDED.body_part,
    practice_status = EXCLUDED.practice_status,
    probability = EXCLUDED.probability,
    return_timeline = EXCLUDED.return_timeline,
    asof_ts = EXCLUDED.asof_ts`)
	if err != nil {
		return fmt.Errorf("build upsert injury query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert injury: %w", err)
	}
	return nil
}
