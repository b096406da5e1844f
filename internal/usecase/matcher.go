package usecase

import (
	"context"
	"fmt"

	"github.com/avelent/draftday/internal/domain/player"
)

// PlayerMatcher resolves a normalized (name, position, team) triple to a
// canonical player using a fixed tier order of exact-equality filters:
//
//  1. name + position + team (only when both qualifiers are present)
//  2. name + position       (only when position is present)
//  3. name alone
//
// The first tier with at least one hit wins and its first hit is returned.
// Name-only ties between distinct players are resolved arbitrarily; callers
// accept that risk rather than guessing.
type PlayerMatcher struct {
	players player.Repository
}

func NewPlayerMatcher(players player.Repository) *PlayerMatcher {
	return &PlayerMatcher{players: players}
}

// Match returns nil when no tier hits. A miss is an expected outcome, not an
// error: callers skip and count the row.
func (m *PlayerMatcher) Match(ctx context.Context, name, position, team string) (*player.Player, error) {
	if name == "" {
		return nil, nil
	}

	candidates, err := m.players.ListByCleanName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("list players by name: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	if position != "" && team != "" {
		for i := range candidates {
			if candidates[i].Position == position && candidates[i].Team == team {
				return &candidates[i], nil
			}
		}
	}
	if position != "" {
		for i := range candidates {
			if candidates[i].Position == position {
				return &candidates[i], nil
			}
		}
	}
	return &candidates[0], nil
}

// MatchExact resolves name+position with no name-only fallback. The injury
// report uses it: attaching an injury to a same-named player at another
// position is worse than dropping the row.
func (m *PlayerMatcher) MatchExact(ctx context.Context, name, position string) (*player.Player, error) {
	if name == "" || position == "" {
		return nil, nil
	}

	candidates, err := m.players.ListByCleanName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("list players by name: %w", err)
	}
	for i := range candidates {
		if candidates[i].Position == position {
			return &candidates[i], nil
		}
	}
	return nil, nil
}
