package usecase_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avelent/draftday/internal/infrastructure/repository/memory"
	"github.com/avelent/draftday/internal/usecase"
)

func newSeedFixture() (*usecase.SeedImportService, *memory.Store) {
	store := memory.NewStore(nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracker := usecase.NewImportTracker(memory.NewImportRunRepository(), logger)
	return usecase.NewSeedImportService(store, usecase.NewFactReconciler(), tracker, logger), store
}

func TestSeedImportService_ImportSeedCSV(t *testing.T) {
	svc, store := newSeedFixture()

	path := filepath.Join(t.TempDir(), "seed.csv")
	csv := strings.Join([]string{
		"player_id,season,clean_name,position,team,bye_week,ecr_rank,ecr_pos_rank,tier",
		"rb.cmcc,2025,Christian McCaffrey,RB,SF,9,1,1,1",
		"qb.jallen,2025,Josh Allen,QB,BUF,12,,,",
		",2025,No Id,WR,DAL,7,5,2,1",
	}, "\n")
	if err := os.WriteFile(path, []byte(csv), 0o600); err != nil {
		t.Fatalf("write seed csv: %v", err)
	}

	result := svc.ImportSeedCSV(t.Context(), path)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	// The id-less row is skipped.
	if result.Imported != 2 {
		t.Fatalf("expected 2 imported, got %+v", result)
	}

	p, err := store.Players().GetByID(t.Context(), "rb.cmcc")
	if err != nil || p == nil {
		t.Fatalf("seeded player missing: %v", err)
	}
	if p.ByeWeek == nil || *p.ByeWeek != 9 {
		t.Fatalf("bye week not ingested: %+v", p.ByeWeek)
	}

	row, _ := store.Ranks().Get(t.Context(), 2025, "rb.cmcc")
	if row == nil || row.ECRRank == nil || *row.ECRRank != 1 {
		t.Fatalf("rank facts not ingested alongside the player: %+v", row)
	}
	if row.Source != "seed_csv" {
		t.Fatalf("wrong rank source: %q", row.Source)
	}

	// A row with no rank fields seeds the player only.
	if row, _ := store.Ranks().Get(t.Context(), 2025, "qb.jallen"); row != nil {
		t.Fatalf("rank row created from empty fields: %+v", row)
	}
}

func TestSeedImportService_ImportSeedCSV_PreservesExternalIDs(t *testing.T) {
	svc, store := newSeedFixture()
	if err := store.Players().Upsert(t.Context(), memory.SeedPlayers()[0]); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	before, _ := store.Players().GetByID(t.Context(), "rb.cmcc")

	path := filepath.Join(t.TempDir(), "seed.csv")
	csv := "player_id,season,clean_name,position\nrb.cmcc,2025,Christian McCaffrey,RB\n"
	if err := os.WriteFile(path, []byte(csv), 0o600); err != nil {
		t.Fatalf("write seed csv: %v", err)
	}

	result := svc.ImportSeedCSV(t.Context(), path)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}

	after, _ := store.Players().GetByID(t.Context(), "rb.cmcc")
	if after == nil {
		t.Fatal("player missing after seed")
	}
	if after.Team != before.Team {
		t.Fatalf("team lost when the seed row omits it: %q", after.Team)
	}
	if after.ByeWeek == nil || before.ByeWeek == nil || *after.ByeWeek != *before.ByeWeek {
		t.Fatalf("bye week lost when the seed row omits it: %+v", after.ByeWeek)
	}
}

func TestSeedImportService_ImportSeedCSV_MissingColumns(t *testing.T) {
	svc, _ := newSeedFixture()

	path := filepath.Join(t.TempDir(), "seed.csv")
	if err := os.WriteFile(path, []byte("clean_name,team\nJosh Allen,BUF\n"), 0o600); err != nil {
		t.Fatalf("write seed csv: %v", err)
	}

	result := svc.ImportSeedCSV(t.Context(), path)
	if len(result.Errors) != 1 {
		t.Fatalf("expected one error, got %v", result.Errors)
	}
	if result.Errors[0] != "Missing columns: player_id, position, season" {
		t.Fatalf("missing columns not sorted and named: %q", result.Errors[0])
	}
}

func TestSeedImportService_ImportDemo(t *testing.T) {
	svc, store := newSeedFixture()

	result := svc.ImportDemo(t.Context(), 2025)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Imported != len(usecase.DemoBoardForTest) {
		t.Fatalf("expected %d imported, got %+v", len(usecase.DemoBoardForTest), result)
	}

	p, _ := store.Players().GetByID(t.Context(), "wr.jchase")
	if p == nil || p.Season != 2025 {
		t.Fatalf("demo player missing: %+v", p)
	}
	row, _ := store.Ranks().Get(t.Context(), 2025, "wr.jchase")
	if row == nil || row.Source != "demo" {
		t.Fatalf("demo rank missing: %+v", row)
	}
}

func TestSeedImportService_ImportDemo_RejectsBadSeason(t *testing.T) {
	svc, _ := newSeedFixture()

	result := svc.ImportDemo(t.Context(), 0)
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "season") {
		t.Fatalf("expected a season error, got %v", result.Errors)
	}
}
