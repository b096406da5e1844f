package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/avelent/draftday/internal/domain/player"
)

// PlayerService serves canonical players and the pre-joined enriched view.
type PlayerService struct {
	players player.Repository
}

func NewPlayerService(players player.Repository) *PlayerService {
	return &PlayerService{players: players}
}

func (s *PlayerService) SearchPlayers(ctx context.Context, query string, limit int) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.SearchPlayers")
	defer span.End()

	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	players, err := s.players.Search(ctx, strings.TrimSpace(query), limit)
	if err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}
	return players, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player_id is required", ErrInvalidInput)
	}
	p, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if p == nil {
		return player.Player{}, fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}
	return *p, nil
}

// ListEnriched returns players joined with consensus rank, ADP, injury and
// tier override for one season, ordered by consensus rank.
func (s *PlayerService) ListEnriched(ctx context.Context, season int, position string, limit int) ([]player.EnrichedRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListEnriched")
	defer span.End()

	if season <= 0 {
		return nil, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}
	if limit <= 0 || limit > 2000 {
		limit = 500
	}
	rows, err := s.players.ListEnriched(ctx, season, strings.TrimSpace(position), limit)
	if err != nil {
		return nil, fmt.Errorf("list enriched players: %w", err)
	}
	return rows, nil
}
