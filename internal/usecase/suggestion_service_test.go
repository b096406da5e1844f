package usecase_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/avelent/draftday/internal/domain/draft"
	"github.com/avelent/draftday/internal/domain/player"
	"github.com/avelent/draftday/internal/infrastructure/repository/memory"
	"github.com/avelent/draftday/internal/usecase"
)

// suggestionFixture seeds eight ranked players (p01 best) plus one player
// with no consensus rank at all.
func suggestionFixture(t *testing.T) (*usecase.SuggestionService, *memory.DraftRepository) {
	t.Helper()

	players := make([]player.Player, 0, 9)
	for i := 1; i <= 8; i++ {
		players = append(players, player.Player{
			ID:        fmt.Sprintf("rb.p%02d", i),
			Season:    2025,
			CleanName: fmt.Sprintf("Player %02d", i),
			Position:  "RB",
			Team:      "DAL",
		})
	}
	players = append(players, player.Player{ID: "wr.unranked", Season: 2025, CleanName: "Unranked Guy", Position: "WR", Team: "SEA"})

	store := memory.NewStore(players)
	r := usecase.NewFactReconciler()
	for i := 1; i <= 8; i++ {
		rank := float64(i)
		if err := r.MergeConsensusRank(t.Context(), store.Ranks(), 2025, fmt.Sprintf("rb.p%02d", i), "fantasypros", usecase.RankFacts{ECRRank: &rank}); err != nil {
			t.Fatalf("seed rank: %v", err)
		}
	}

	board := memory.NewDraftRepository()
	return usecase.NewSuggestionService(store.Players(), board), board
}

func TestSuggestionService_Suggest_SplitsTopAndNext(t *testing.T) {
	svc, _ := suggestionFixture(t)

	got, err := svc.Suggest(t.Context(), 2025, "", 3, 10)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(got.Top) != 3 {
		t.Fatalf("expected 3 top, got %d", len(got.Top))
	}
	if got.Top[0].ID != "rb.p01" || got.Top[2].ID != "rb.p03" {
		t.Fatalf("top not ordered by rank: %+v", got.Top)
	}
	if len(got.Next) != 5 {
		t.Fatalf("expected the remaining 5 in next, got %d", len(got.Next))
	}
	if got.Next[0].ID != "rb.p04" {
		t.Fatalf("next must continue where top ends: %+v", got.Next[0])
	}
}

func TestSuggestionService_Suggest_ExcludesPickedAndUnranked(t *testing.T) {
	svc, board := suggestionFixture(t)

	for i, id := range []string{"rb.p01", "rb.p03"} {
		if _, err := board.CreatePick(t.Context(), draft.Pick{RoundNo: 1, OverallNo: i + 1, TeamSlotID: 1, PlayerID: id}); err != nil {
			t.Fatalf("seed pick: %v", err)
		}
	}

	got, err := svc.Suggest(t.Context(), 2025, "", 3, 10)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if got.Top[0].ID != "rb.p02" || got.Top[1].ID != "rb.p04" {
		t.Fatalf("picked players not excluded: %+v", got.Top)
	}
	for _, p := range append(got.Top, got.Next...) {
		if p.ID == "wr.unranked" {
			t.Fatal("unranked player suggested")
		}
	}
}

func TestSuggestionService_Suggest_PositionFilter(t *testing.T) {
	svc, _ := suggestionFixture(t)

	got, err := svc.Suggest(t.Context(), 2025, "WR", 3, 10)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	// The only WR has no rank; nothing qualifies.
	if len(got.Top) != 0 || len(got.Next) != 0 {
		t.Fatalf("expected no WR suggestions, got %+v", got)
	}
}

func TestSuggestionService_Suggest_DefaultsOutOfRangeLimits(t *testing.T) {
	svc, _ := suggestionFixture(t)

	got, err := svc.Suggest(t.Context(), 2025, "", 0, 999)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(got.Top) != 3 {
		t.Fatalf("expected default top of 3, got %d", len(got.Top))
	}
}

func TestSuggestionService_Suggest_RejectsBadSeason(t *testing.T) {
	svc, _ := suggestionFixture(t)

	if _, err := svc.Suggest(t.Context(), 0, "", 3, 10); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
