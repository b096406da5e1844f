package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/avelent/draftday/internal/domain/draft"
	qb "github.com/avelent/draftday/internal/platform/querybuilder"
)

type DraftRepository struct {
	db *sqlx.DB
}

func NewDraftRepository(db *sqlx.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

func (r *DraftRepository) UpsertTeamSlot(ctx context.Context, slot draft.TeamSlot) (draft.TeamSlot, error) {
	if err := slot.Validate(); err != nil {
		return draft.TeamSlot{}, err
	}

	insertModel := teamSlotTableModel{
		SlotID:        slot.SlotID,
		TeamName:      slot.TeamName,
		DraftPosition: slot.DraftPosition,
	}
	query, args, err := qb.InsertModel("team_slots", insertModel, `ON CONFLICT (team_slot_id)
DO UPDATE SET
    team_name = EXCLUDED.team_name,
    draft_position = EXCLUDED.draft_position`)
	if err != nil {
		return draft.TeamSlot{}, fmt.Errorf("build upsert team slot query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return draft.TeamSlot{}, fmt.Errorf("upsert team slot: %w", err)
	}
	return slot, nil
}

func (r *DraftRepository) ListTeamSlots(ctx context.Context) ([]draft.TeamSlot, error) {
	query, args, err := qb.Select("team_slot_id", "team_name", "draft_position").
		From("team_slots").
		OrderBy("team_slot_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list team slots query: %w", err)
	}

	var rows []teamSlotTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list team slots: %w", err)
	}

	out := make([]draft.TeamSlot, 0, len(rows))
	for _, row := range rows {
		out = append(out, draft.TeamSlot{
			SlotID:        row.SlotID,
			TeamName:      row.TeamName,
			DraftPosition: row.DraftPosition,
		})
	}
	return out, nil
}

func (r *DraftRepository) GetTeamSlot(ctx context.Context, slotID int) (*draft.TeamSlot, error) {
	query, args, err := qb.Select("team_slot_id", "team_name", "draft_position").
		From("team_slots").
		Where(qb.Eq("team_slot_id", slotID)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get team slot query: %w", err)
	}

	var row teamSlotTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get team slot: %w", err)
	}

	return &draft.TeamSlot{
		SlotID:        row.SlotID,
		TeamName:      row.TeamName,
		DraftPosition: row.DraftPosition,
	}, nil
}

func (r *DraftRepository) CreatePick(ctx context.Context, pick draft.Pick) (draft.Pick, error) {
	if err := pick.Validate(); err != nil {
		return draft.Pick{}, err
	}

	var id int64
	err := r.db.QueryRowxContext(ctx, `INSERT INTO picks (round_no, overall_no, team_slot_id, player_id)
VALUES ($1, $2, $3, $4)
RETURNING pick_id`, pick.RoundNo, pick.OverallNo, pick.TeamSlotID, pick.PlayerID).Scan(&id)
	if err != nil {
		return draft.Pick{}, fmt.Errorf("create pick: %w", err)
	}

	pick.ID = id
	return pick, nil
}

func (r *DraftRepository) ListPicks(ctx context.Context) ([]draft.Pick, error) {
	query, args, err := qb.Select("pick_id", "round_no", "overall_no", "team_slot_id", "player_id").
		From("picks").
		OrderBy("overall_no").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list picks query: %w", err)
	}

	var rows []pickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}

	out := make([]draft.Pick, 0, len(rows))
	for _, row := range rows {
		out = append(out, pickToDomain(row))
	}
	return out, nil
}

func (r *DraftRepository) GetPickByOverall(ctx context.Context, overallNo int) (*draft.Pick, error) {
	query, args, err := qb.Select("pick_id", "round_no", "overall_no", "team_slot_id", "player_id").
		From("picks").
		Where(qb.Eq("overall_no", overallNo)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get pick by overall query: %w", err)
	}

	var row pickTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pick by overall: %w", err)
	}

	pick := pickToDomain(row)
	return &pick, nil
}

func (r *DraftRepository) DeletePick(ctx context.Context, pickID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM picks WHERE pick_id = $1", pickID)
	if err != nil {
		return false, fmt.Errorf("delete pick: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete pick rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *DraftRepository) ListPickedPlayerIDs(ctx context.Context) ([]string, error) {
	query, args, err := qb.Select("player_id").
		From("picks").
		OrderBy("overall_no").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list picked player ids query: %w", err)
	}

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("list picked player ids: %w", err)
	}
	return ids, nil
}

func (r *DraftRepository) AddNote(ctx context.Context, note draft.Note) (draft.Note, error) {
	var id int64
	err := r.db.QueryRowxContext(ctx, `INSERT INTO notes (player_id, team_slot_id, text, ts)
VALUES ($1, $2, $3, $4)
RETURNING note_id`, note.PlayerID, intPtrToNullInt64(note.TeamSlotID), note.Text, note.TS).Scan(&id)
	if err != nil {
		return draft.Note{}, fmt.Errorf("add note: %w", err)
	}

	note.ID = id
	return note, nil
}

func (r *DraftRepository) ListNotes(ctx context.Context, playerID string, teamSlotID *int) ([]draft.Note, error) {
	builder := qb.Select("note_id", "player_id", "team_slot_id", "text", "ts").From("notes")
	if playerID != "" {
		builder = builder.Where(qb.Eq("player_id", playerID))
	}
	if teamSlotID != nil {
		builder = builder.Where(qb.Eq("team_slot_id", *teamSlotID))
	}
	query, args, err := builder.OrderBy("ts DESC", "note_id DESC").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list notes query: %w", err)
	}

	var rows []noteTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	out := make([]draft.Note, 0, len(rows))
	for _, row := range rows {
		out = append(out, draft.Note{
			ID:         row.ID,
			PlayerID:   row.PlayerID,
			TeamSlotID: nullInt64ToIntPtr(row.TeamSlotID),
			Text:       row.Text,
			TS:         row.TS,
		})
	}
	return out, nil
}

func pickToDomain(row pickTableModel) draft.Pick {
	return draft.Pick{
		ID:         row.ID,
		RoundNo:    row.RoundNo,
		OverallNo:  row.OverallNo,
		TeamSlotID: row.TeamSlotID,
		PlayerID:   row.PlayerID,
	}
}
