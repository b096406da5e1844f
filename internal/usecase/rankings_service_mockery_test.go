package usecase_test

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/avelent/draftday/internal/infrastructure/repository/memory"
	usecasemock "github.com/avelent/draftday/internal/mocks/usecase"
	"github.com/avelent/draftday/internal/usecase"
)

func TestRankingsImportService_ImportURL_CandidateOrderUsingMockery(t *testing.T) {
	t.Parallel()

	fetcher := usecasemock.NewDocumentFetcher(t)
	store := memory.NewStore(memory.SeedPlayers())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracker := usecase.NewImportTracker(memory.NewImportRunRepository(), logger)
	service := usecase.NewRankingsImportService(fetcher, nil, store, usecase.NewFactReconciler(), tracker, logger)

	page := []byte("<html>not a csv</html>")
	csvBody := []byte(strings.Join([]string{
		"Rank,Player,Team,Pos",
		"1,Christian McCaffrey,SF,RB",
		"2,Ja'Marr Chase,CIN,WR",
		"3,CeeDee Lamb,DAL,WR",
	}, "\n"))

	// The verbatim URL serves markup; only the csv=1 variant is tabular, so
	// the export=csv variant must never be requested.
	fetcher.
		On("Get", mock.Anything, "https://rankings.example.com/ppr").
		Return(page, nil).
		Once()
	fetcher.
		On("Get", mock.Anything, "https://rankings.example.com/ppr?csv=1").
		Return(csvBody, nil).
		Once()

	result := service.ImportURL(t.Context(), 2025, "https://rankings.example.com/ppr")
	if len(result.Errors) != 0 {
		t.Fatalf("import rankings url: %v", result.Errors)
	}
	if result.Imported != 3 {
		t.Fatalf("unexpected imported count: got=%d want=3", result.Imported)
	}
}

func TestCatalogImportService_ImportPlayers_FetchFailureUsingMockery(t *testing.T) {
	t.Parallel()

	fetcher := usecasemock.NewCatalogFetcher(t)
	store := memory.NewStore(nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracker := usecase.NewImportTracker(memory.NewImportRunRepository(), logger)
	service := usecase.NewCatalogImportService(fetcher, store, tracker, logger)

	fetcher.
		On("FetchPlayers", mock.Anything).
		Return(nil, errors.New("catalog endpoint down")).
		Once()

	result := service.ImportPlayers(t.Context(), 2025)
	if len(result.Errors) != 1 {
		t.Fatalf("expected one error, got %v", result.Errors)
	}
	if !strings.Contains(result.Errors[0], "catalog endpoint down") {
		t.Fatalf("fetch failure not surfaced: %q", result.Errors[0])
	}
}
