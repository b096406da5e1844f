package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/avelent/draftday/internal/domain/player"
	qb "github.com/avelent/draftday/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db sqlx.ExtContext
}

var playerSelectColumns = []string{
	"player_id",
	"season",
	"clean_name",
	"position",
	"team",
	"bye_week",
	"sleeper_id",
	"espn_id",
	"nfl_id",
	"updated_at",
}

// NewPlayerRepository binds a player repository to a database handle or an
// open transaction.
func NewPlayerRepository(db sqlx.ExtContext) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (*player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get player: %w", err)
	}

	p := playerToDomain(row)
	return &p, nil
}

func (r *PlayerRepository) ListByCleanName(ctx context.Context, cleanName string) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("clean_name", cleanName)).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players by name query: %w", err)
	}

	var rows []playerTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players by name: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerToDomain(row))
	}
	return out, nil
}

func (r *PlayerRepository) Search(ctx context.Context, search string, limit int) ([]player.Player, error) {
	builder := qb.Select(playerSelectColumns...).From("players")
	if search != "" {
		pattern := "%" + search + "%"
		builder = builder.Where(
			qb.Expr("(clean_name ILIKE ? OR position ILIKE ? OR team ILIKE ?)", pattern, pattern, pattern),
		)
	}
	query, args, err := builder.OrderBy("clean_name", "player_id").Limit(limit).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build search players query: %w", err)
	}

	var rows []playerTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerToDomain(row))
	}
	return out, nil
}

func (r *PlayerRepository) Upsert(ctx context.Context, p player.Player) error {
	if err := p.Validate(); err != nil {
		return err
	}

	insertModel := playerInsertModel{
		ID:        p.ID,
		Season:    p.Season,
		CleanName: p.CleanName,
		Position:  p.Position,
		Team:      stringToNullString(p.Team),
		ByeWeek:   intPtrToNullInt64(p.ByeWeek),
		SleeperID: stringToNullString(p.SleeperID),
		ESPNID:    stringToNullString(p.ESPNID),
		NFLID:     stringToNullString(p.NFLID),
		UpdatedAt: p.UpdatedAt,
	}
	query, args, err := qb.InsertModel("players", insertModel, `ON CONFLICT (player_id)
DO UPDATE SET
    season = EXCLUDED.season,
    clean_name = EXCLUDED.clean_name,
    position = EXCLUDED.position,
    team = EXCLUDED.team,
    bye_week = EXCLUDED.bye_week,
    sleeper_id = EXCLUDED.sleeper_id,
    espn_id = EXCLUDED.espn_id,
    nfl_id = EXCLUDED.nfl_id,
    updated_at = EXCLUDED.updated_at`)
	if err != nil {
		return fmt.Errorf("build upsert player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert player: %w", err)
	}
	return nil
}

func (r *PlayerRepository) ListEnriched(ctx context.Context, season int, position string, limit int) ([]player.EnrichedRow, error) {
	builder := qb.Select(
		"p.player_id",
		"p.clean_name",
		"p.position",
		"p.team",
		"cr.ecr_rank",
		"cr.ecr_pos_rank",
		"COALESCE(t.tier_override, cr.tier) AS tier",
		"CASE WHEN t.tier_override IS NOT NULL THEN 'override' WHEN cr.player_id IS NOT NULL THEN 'core' END AS tier_source",
		"a.adp",
		"i.status",
		"i.body_part",
	).
		From(`players p
LEFT JOIN consensus_ranks cr ON cr.season = p.season AND cr.player_id = p.player_id
LEFT JOIN tier_overrides t ON t.player_id = p.player_id
LEFT JOIN adp_ranks a ON a.season = p.season AND a.player_id = p.player_id AND a.source = 'fp_composite'
LEFT JOIN injuries i ON i.season = p.season AND i.player_id = p.player_id AND i.source = 'cbs'`).
		Where(qb.Eq("p.season", season))
	if position != "" {
		builder = builder.Where(qb.Eq("p.position", position))
	}
	query, args, err := builder.
		OrderBy("cr.ecr_rank NULLS LAST", "p.clean_name").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list enriched players query: %w", err)
	}

	var rows []enrichedRowTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list enriched players: %w", err)
	}

	out := make([]player.EnrichedRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.EnrichedRow{
			PlayerID:     row.PlayerID,
			Name:         row.Name,
			Position:     row.Position,
			Team:         nullStringToString(row.Team),
			ECRRank:      nullFloat64ToPtr(row.ECRRank),
			ECRPosRank:   nullFloat64ToPtr(row.ECRPosRank),
			Tier:         nullInt64ToIntPtr(row.Tier),
			TierSource:   nullStringToString(row.TierSource),
			ADP:          nullFloat64ToPtr(row.ADP),
			InjuryStatus: nullStringToString(row.Status),
			InjuryBody:   nullStringToString(row.BodyPart),
		})
	}
	return out, nil
}

func (r *PlayerRepository) ListAvailableByRank(ctx context.Context, season int, position string, excludeIDs []string, limit int) ([]player.Player, error) {
	columns := make([]string, 0, len(playerSelectColumns))
	for _, col := range playerSelectColumns {
		columns = append(columns, "p."+col)
	}

	builder := qb.Select(columns...).
		From("players p JOIN consensus_ranks cr ON cr.season = p.season AND cr.player_id = p.player_id").
		Where(qb.Eq("p.season", season))
	if position != "" {
		builder = builder.Where(qb.Eq("p.position", position))
	}
	if len(excludeIDs) > 0 {
		builder = builder.Where(qb.Expr("p.player_id <> ALL(?)", pq.Array(excludeIDs)))
	}
	query, args, err := builder.
		OrderBy("cr.ecr_rank NULLS LAST", "p.clean_name").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list available players query: %w", err)
	}

	var rows []playerTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list available players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerToDomain(row))
	}
	return out, nil
}

func playerToDomain(row playerTableModel) player.Player {
	return player.Player{
		ID:        row.ID,
		Season:    row.Season,
		CleanName: row.CleanName,
		Position:  row.Position,
		Team:      nullStringToString(row.Team),
		ByeWeek:   nullInt64ToIntPtr(row.ByeWeek),
		SleeperID: nullStringToString(row.SleeperID),
		ESPNID:    nullStringToString(row.ESPNID),
		NFLID:     nullStringToString(row.NFLID),
		UpdatedAt: row.UpdatedAt,
	}
}
