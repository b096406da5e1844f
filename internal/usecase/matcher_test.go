package usecase_test

import (
	"testing"

	"github.com/avelent/draftday/internal/domain/player"
	"github.com/avelent/draftday/internal/infrastructure/repository/memory"
	"github.com/avelent/draftday/internal/usecase"
)

func matcherFixture() *usecase.PlayerMatcher {
	store := memory.NewStore([]player.Player{
		{ID: "rb.dsmith", Season: 2025, CleanName: "Deon Smith", Position: "RB", Team: "DAL"},
		{ID: "wr.dsmith", Season: 2025, CleanName: "Deon Smith", Position: "WR", Team: "PHI"},
		{ID: "wr.dsmith2", Season: 2025, CleanName: "Deon Smith", Position: "WR", Team: "SEA"},
		{ID: "qb.jallen", Season: 2025, CleanName: "Josh Allen", Position: "QB", Team: "BUF"},
	})
	return usecase.NewPlayerMatcher(store.Players())
}

func TestPlayerMatcher_Match_NamePositionTeam(t *testing.T) {
	m := matcherFixture()

	p, err := m.Match(t.Context(), "Deon Smith", "WR", "SEA")
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if p == nil || p.ID != "wr.dsmith2" {
		t.Fatalf("expected wr.dsmith2, got %+v", p)
	}
}

func TestPlayerMatcher_Match_FallsBackToNamePosition(t *testing.T) {
	m := matcherFixture()

	// Team mismatches every candidate, so the position tier decides.
	p, err := m.Match(t.Context(), "Deon Smith", "RB", "NYG")
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if p == nil || p.ID != "rb.dsmith" {
		t.Fatalf("expected rb.dsmith, got %+v", p)
	}
}

func TestPlayerMatcher_Match_FallsBackToNameAlone(t *testing.T) {
	m := matcherFixture()

	p, err := m.Match(t.Context(), "Josh Allen", "TE", "")
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if p == nil || p.ID != "qb.jallen" {
		t.Fatalf("expected qb.jallen, got %+v", p)
	}
}

func TestPlayerMatcher_Match_NameOnlyTieReturnsCandidate(t *testing.T) {
	m := matcherFixture()

	// Three players share the name and no qualifier narrows them down. Any
	// of them is an admissible answer; the contract is a hit, not a guess.
	p, err := m.Match(t.Context(), "Deon Smith", "", "")
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if p == nil || p.CleanName != "Deon Smith" {
		t.Fatalf("expected some Deon Smith, got %+v", p)
	}
}

func TestPlayerMatcher_MatchExact_NoNameOnlyFallback(t *testing.T) {
	m := matcherFixture()

	p, err := m.MatchExact(t.Context(), "Deon Smith", "RB")
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if p == nil || p.ID != "rb.dsmith" {
		t.Fatalf("expected the RB, got %+v", p)
	}

	// No player carries the name at TE; unlike Match, the lookup must not
	// degrade to a name-only hit.
	p, err = m.MatchExact(t.Context(), "Deon Smith", "TE")
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil for a position mismatch, got %+v", p)
	}

	if p, _ := m.MatchExact(t.Context(), "Deon Smith", ""); p != nil {
		t.Fatalf("expected nil for empty position, got %+v", p)
	}
}

func TestPlayerMatcher_Match_MissIsNilNotError(t *testing.T) {
	m := matcherFixture()

	p, err := m.Match(t.Context(), "Nobody Home", "QB", "BUF")
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil for unknown name, got %+v", p)
	}
}

func TestPlayerMatcher_Match_EmptyName(t *testing.T) {
	m := matcherFixture()

	p, err := m.Match(t.Context(), "", "QB", "BUF")
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil for empty name, got %+v", p)
	}
}
