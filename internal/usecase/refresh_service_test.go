package usecase_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/avelent/draftday/internal/infrastructure/repository/memory"
	"github.com/avelent/draftday/internal/usecase"
)

func newRefreshFixture(rankingsURL, adpURL string, fetcher usecase.DocumentFetcher) (*usecase.RefreshService, *memory.Store) {
	store := memory.NewStore(nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracker := usecase.NewImportTracker(memory.NewImportRunRepository(), logger)
	reconciler := usecase.NewFactReconciler()

	catalog := usecase.NewCatalogImportService(&fakeCatalogFetcher{entries: map[string]usecase.CatalogEntry{
		"4034": {PlayerID: "4034", FullName: "Christian McCaffrey", Position: "RB", Team: "SF"},
	}}, store, tracker, logger)
	rankings := usecase.NewRankingsImportService(fetcher, &fakeTableExtractor{}, store, reconciler, tracker, logger)
	adp := usecase.NewADPImportService(fetcher, store, reconciler, tracker, logger)
	injuries := usecase.NewInjuryImportService(&fakeInjuryFetcher{rows: []usecase.InjuryRow{
		{Name: "Christian McCaffrey", Position: "RB", BodyPart: "Calf", Status: "Questionable"},
	}}, store, reconciler, tracker, logger)

	return usecase.NewRefreshService(catalog, rankings, adp, injuries, rankingsURL, adpURL, logger), store
}

func TestRefreshService_RefreshAll(t *testing.T) {
	csvBody := "Rank,Player,Team,Pos\n1,Christian McCaffrey,SF,RB\n2,Unknown Rook,FA,WR\n3,Another Ghost,FA,TE\n"
	adpBody := "Player,Team,Pos,AVG ADP\nChristian McCaffrey,SF,RB,1.4\n"
	fetcher := &fakeDocumentFetcher{responses: map[string][]byte{
		"https://rankings.example.com/ppr":  []byte(csvBody),
		"https://adp.example.com/composite": []byte(adpBody),
	}}
	svc, store := newRefreshFixture("https://rankings.example.com/ppr", "https://adp.example.com/composite", fetcher)

	results, err := svc.RefreshAll(t.Context(), 2025)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	for _, name := range []string{"players", "rankings", "adp", "injuries"} {
		if _, ok := results[name]; !ok {
			t.Fatalf("missing result for %q: %v", name, results)
		}
	}
	if results["players"].Imported != 1 {
		t.Fatalf("catalog import wrong: %+v", results["players"])
	}
	// The catalog runs first, so the fact sources can match its players.
	if results["rankings"].Matched != 1 || results["injuries"].Matched != 1 {
		t.Fatalf("fact sources could not see catalog players: %+v", results)
	}

	if row, _ := store.Ranks().Get(t.Context(), 2025, "4034"); row == nil {
		t.Fatal("rank fact not written")
	}
	if row, _ := store.Injuries().Get(t.Context(), 2025, "4034", "cbs"); row == nil {
		t.Fatal("injury fact not written")
	}
	// An unlabelled refresh run lands on the composite ADP source.
	if row, _ := store.ADP().Get(t.Context(), 2025, "4034", "fp_composite"); row == nil || row.ADP == nil || *row.ADP != 1.4 {
		t.Fatalf("adp fact not written: %+v", row)
	}
}

func TestRefreshService_RefreshAll_SkipsUnconfiguredURLSources(t *testing.T) {
	svc, _ := newRefreshFixture("", "", nil)

	results, err := svc.RefreshAll(t.Context(), 2025)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if _, ok := results["rankings"]; ok {
		t.Fatalf("rankings must be skipped when no URL is configured: %v", results)
	}
	if _, ok := results["adp"]; ok {
		t.Fatalf("adp must be skipped when no URL is configured: %v", results)
	}
	if _, ok := results["injuries"]; !ok {
		t.Fatal("injuries must still run")
	}
}

func TestRefreshService_RefreshAll_OneFailureDoesNotAbortOthers(t *testing.T) {
	// No response configured for the rankings URL, so every fetch fails.
	svc, _ := newRefreshFixture("https://rankings.example.com/down", "", &fakeDocumentFetcher{})

	results, err := svc.RefreshAll(t.Context(), 2025)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if len(results["rankings"].Errors) == 0 {
		t.Fatalf("expected rankings errors: %+v", results["rankings"])
	}
	if len(results["injuries"].Errors) != 0 || results["injuries"].Matched != 1 {
		t.Fatalf("injuries must succeed independently: %+v", results["injuries"])
	}
}

func TestRefreshService_RefreshAll_RejectsBadSeason(t *testing.T) {
	svc, _ := newRefreshFixture("", "", nil)

	if _, err := svc.RefreshAll(t.Context(), 0); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
