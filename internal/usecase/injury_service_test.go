package usecase_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/avelent/draftday/internal/infrastructure/repository/memory"
	"github.com/avelent/draftday/internal/usecase"
)

type fakeInjuryFetcher struct {
	rows []usecase.InjuryRow
	err  error
}

func (f *fakeInjuryFetcher) FetchInjuries(context.Context) ([]usecase.InjuryRow, error) {
	return f.rows, f.err
}

func newInjuryFixture(fetcher usecase.InjuryFetcher) (*usecase.InjuryImportService, *memory.Store) {
	store := memory.NewStore(memory.SeedPlayers())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracker := usecase.NewImportTracker(memory.NewImportRunRepository(), logger)
	return usecase.NewInjuryImportService(fetcher, store, usecase.NewFactReconciler(), tracker, logger), store
}

func TestInjuryImportService_ImportInjuries(t *testing.T) {
	fetcher := &fakeInjuryFetcher{rows: []usecase.InjuryRow{
		{Name: "Amon-Ra St. Brown", Position: "WR", BodyPart: "Hamstring", Status: "Questionable"},
		{Name: "Christian McCaffrey", Position: "RB", BodyPart: "Calf", Status: "Out"},
		{Name: "Practice Squad Guy", Position: "TE", BodyPart: "Knee", Status: "IR"},
		{Name: "", Position: "QB"},
	}}
	svc, store := newInjuryFixture(fetcher)

	result := svc.ImportInjuries(t.Context(), 2025)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Imported != 2 {
		t.Fatalf("expected 2 imported, got %+v", result)
	}
	// The nameless row is dropped before matching; only the unknown name
	// counts as unmatched.
	if result.Unmatched != 1 {
		t.Fatalf("expected 1 unmatched, got %d", result.Unmatched)
	}

	row, err := store.Injuries().Get(t.Context(), 2025, "rb.cmcc", "cbs")
	if err != nil || row == nil {
		t.Fatalf("injury row missing: %v", err)
	}
	if row.Status != "Out" || row.BodyPart != "Calf" {
		t.Fatalf("injury facts not ingested: %+v", row)
	}
}

func TestInjuryImportService_ImportInjuries_MatchesWithoutTeam(t *testing.T) {
	// The report has no team column, so a traded player still matches on
	// name and position.
	fetcher := &fakeInjuryFetcher{rows: []usecase.InjuryRow{
		{Name: "Josh Allen", Position: "QB", BodyPart: "Shoulder", Status: "Probable"},
	}}
	svc, store := newInjuryFixture(fetcher)

	result := svc.ImportInjuries(t.Context(), 2025)
	if result.Imported != 1 || result.Unmatched != 0 {
		t.Fatalf("expected a name+position match, got %+v", result)
	}

	row, _ := store.Injuries().Get(t.Context(), 2025, "qb.jallen", "cbs")
	if row == nil || row.Status != "Probable" {
		t.Fatalf("injury row missing: %+v", row)
	}
}

func TestInjuryImportService_ImportInjuries_PositionMismatchSkipsRow(t *testing.T) {
	// The Jaguars edge rusher shares his name with the Bills quarterback.
	// Strict name+position matching must skip him, not tag the quarterback.
	fetcher := &fakeInjuryFetcher{rows: []usecase.InjuryRow{
		{Name: "Josh Allen", Position: "LB", BodyPart: "Knee", Status: "Out"},
	}}
	svc, store := newInjuryFixture(fetcher)

	result := svc.ImportInjuries(t.Context(), 2025)
	if result.Imported != 0 || result.Unmatched != 1 {
		t.Fatalf("expected an unmatched row, got %+v", result)
	}
	if row, _ := store.Injuries().Get(t.Context(), 2025, "qb.jallen", "cbs"); row != nil {
		t.Fatalf("injury attached to the wrong player: %+v", row)
	}
}

func TestInjuryImportService_ImportInjuries_FetchFailure(t *testing.T) {
	svc, _ := newInjuryFixture(&fakeInjuryFetcher{err: fmt.Errorf("blocked by upstream")})

	result := svc.ImportInjuries(t.Context(), 2025)
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "blocked by upstream") {
		t.Fatalf("expected the fetch error surfaced, got %v", result.Errors)
	}
}

func TestInjuryImportService_ImportInjuries_RejectsBadSeason(t *testing.T) {
	svc, _ := newInjuryFixture(&fakeInjuryFetcher{})

	result := svc.ImportInjuries(t.Context(), 0)
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "season") {
		t.Fatalf("expected a season error, got %v", result.Errors)
	}
}
