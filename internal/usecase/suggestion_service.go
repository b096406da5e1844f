package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/avelent/draftday/internal/domain/draft"
	"github.com/avelent/draftday/internal/domain/player"
)

// Suggestions splits the best still-available players into a short head
// list and a longer tail.
type Suggestions struct {
	Top  []player.Player
	Next []player.Player
}

// SuggestionService computes pick suggestions from consensus ranks,
// excluding players already drafted.
type SuggestionService struct {
	players player.Repository
	board   draft.Repository
}

func NewSuggestionService(players player.Repository, board draft.Repository) *SuggestionService {
	return &SuggestionService{
		players: players,
		board:   board,
	}
}

func (s *SuggestionService) Suggest(ctx context.Context, season int, position string, limitTop, limitNext int) (Suggestions, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SuggestionService.Suggest")
	defer span.End()

	if season <= 0 {
		return Suggestions{}, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}
	if limitTop <= 0 || limitTop > 10 {
		limitTop = 3
	}
	if limitNext <= 0 || limitNext > 30 {
		limitNext = 10
	}

	picked, err := s.board.ListPickedPlayerIDs(ctx)
	if err != nil {
		return Suggestions{}, fmt.Errorf("list picked players: %w", err)
	}

	available, err := s.players.ListAvailableByRank(ctx, season, strings.TrimSpace(position), picked, limitTop+limitNext)
	if err != nil {
		return Suggestions{}, fmt.Errorf("list available players: %w", err)
	}

	if len(available) <= limitTop {
		return Suggestions{Top: available, Next: []player.Player{}}, nil
	}
	return Suggestions{Top: available[:limitTop], Next: available[limitTop:]}, nil
}
