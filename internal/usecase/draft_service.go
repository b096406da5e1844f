package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/avelent/draftday/internal/domain/draft"
	"github.com/avelent/draftday/internal/domain/player"
	"github.com/avelent/draftday/internal/domain/ranking"
)

// defaultTeamCount is the number of seats InitTeamSlots provisions.
const defaultTeamCount = 12

// DraftService manages the draft board: team slots, picks, manual tier
// overrides and notes.
type DraftService struct {
	board   draft.Repository
	players player.Repository
	ranks   ranking.Repository
}

func NewDraftService(board draft.Repository, players player.Repository, ranks ranking.Repository) *DraftService {
	return &DraftService{
		board:   board,
		players: players,
		ranks:   ranks,
	}
}

// InitTeamSlots provisions the fixed draft seats, leaving already-named
// slots untouched.
func (s *DraftService) InitTeamSlots(ctx context.Context) ([]draft.TeamSlot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.InitTeamSlots")
	defer span.End()

	out := make([]draft.TeamSlot, 0, defaultTeamCount)
	for i := 1; i <= defaultTeamCount; i++ {
		existing, err := s.board.GetTeamSlot(ctx, i)
		if err != nil {
			return nil, fmt.Errorf("get team slot %d: %w", i, err)
		}

		slot := draft.TeamSlot{SlotID: i, TeamName: fmt.Sprintf("Team %d", i), DraftPosition: i}
		if existing != nil {
			slot = *existing
			if slot.DraftPosition <= 0 {
				slot.DraftPosition = i
			}
		}

		saved, err := s.board.UpsertTeamSlot(ctx, slot)
		if err != nil {
			return nil, fmt.Errorf("upsert team slot %d: %w", i, err)
		}
		out = append(out, saved)
	}
	return out, nil
}

func (s *DraftService) UpsertTeamSlot(ctx context.Context, slot draft.TeamSlot) (draft.TeamSlot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.UpsertTeamSlot")
	defer span.End()

	slot.TeamName = strings.TrimSpace(slot.TeamName)
	if err := slot.Validate(); err != nil {
		return draft.TeamSlot{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	saved, err := s.board.UpsertTeamSlot(ctx, slot)
	if err != nil {
		return draft.TeamSlot{}, fmt.Errorf("upsert team slot: %w", err)
	}
	return saved, nil
}

func (s *DraftService) ListTeamSlots(ctx context.Context) ([]draft.TeamSlot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.ListTeamSlots")
	defer span.End()

	return s.board.ListTeamSlots(ctx)
}

// CreatePick records a drafted player after validating the player, the seat
// and the overall slot.
func (s *DraftService) CreatePick(ctx context.Context, pick draft.Pick) (draft.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.CreatePick")
	defer span.End()

	pick.PlayerID = strings.TrimSpace(pick.PlayerID)
	if err := pick.Validate(); err != nil {
		return draft.Pick{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	p, err := s.players.GetByID(ctx, pick.PlayerID)
	if err != nil {
		return draft.Pick{}, fmt.Errorf("get player: %w", err)
	}
	if p == nil {
		return draft.Pick{}, fmt.Errorf("%w: unknown player_id %s", ErrInvalidInput, pick.PlayerID)
	}

	slot, err := s.board.GetTeamSlot(ctx, pick.TeamSlotID)
	if err != nil {
		return draft.Pick{}, fmt.Errorf("get team slot: %w", err)
	}
	if slot == nil {
		return draft.Pick{}, fmt.Errorf("%w: unknown team_slot_id %d", ErrInvalidInput, pick.TeamSlotID)
	}

	taken, err := s.board.GetPickByOverall(ctx, pick.OverallNo)
	if err != nil {
		return draft.Pick{}, fmt.Errorf("get pick by overall: %w", err)
	}
	if taken != nil {
		return draft.Pick{}, fmt.Errorf("%w: overall_no %d already used", ErrConflict, pick.OverallNo)
	}

	created, err := s.board.CreatePick(ctx, pick)
	if err != nil {
		return draft.Pick{}, fmt.Errorf("create pick: %w", err)
	}
	return created, nil
}

func (s *DraftService) ListPicks(ctx context.Context) ([]draft.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.ListPicks")
	defer span.End()

	return s.board.ListPicks(ctx)
}

func (s *DraftService) DeletePick(ctx context.Context, pickID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.DeletePick")
	defer span.End()

	deleted, err := s.board.DeletePick(ctx, pickID)
	if err != nil {
		return fmt.Errorf("delete pick: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: pick %d", ErrNotFound, pickID)
	}
	return nil
}

// SetTierOverride sets a manual tier for a player; a nil tier clears the
// override. Ingestion never touches this table.
func (s *DraftService) SetTierOverride(ctx context.Context, playerID string, tier *int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.SetTierOverride")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	p, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if p == nil {
		return fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}

	if tier == nil {
		if err := s.ranks.ClearOverride(ctx, playerID); err != nil {
			return fmt.Errorf("clear tier override: %w", err)
		}
		return nil
	}
	if err := s.ranks.SetOverride(ctx, playerID, *tier); err != nil {
		return fmt.Errorf("set tier override: %w", err)
	}
	return nil
}

func (s *DraftService) AddNote(ctx context.Context, note draft.Note) (draft.Note, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.AddNote")
	defer span.End()

	note.PlayerID = strings.TrimSpace(note.PlayerID)
	note.Text = strings.TrimSpace(note.Text)
	if note.PlayerID == "" || note.Text == "" {
		return draft.Note{}, fmt.Errorf("%w: player_id and text are required", ErrInvalidInput)
	}

	p, err := s.players.GetByID(ctx, note.PlayerID)
	if err != nil {
		return draft.Note{}, fmt.Errorf("get player: %w", err)
	}
	if p == nil {
		return draft.Note{}, fmt.Errorf("%w: player %s", ErrNotFound, note.PlayerID)
	}

	created, err := s.board.AddNote(ctx, note)
	if err != nil {
		return draft.Note{}, fmt.Errorf("add note: %w", err)
	}
	return created, nil
}

func (s *DraftService) ListNotes(ctx context.Context, playerID string, teamSlotID *int) ([]draft.Note, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.ListNotes")
	defer span.End()

	return s.board.ListNotes(ctx, strings.TrimSpace(playerID), teamSlotID)
}
