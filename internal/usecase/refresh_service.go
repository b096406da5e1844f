package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/sourcegraph/conc"
)

// RefreshService runs every configured source for a season in one shot. The
// catalog import goes first because the fact adapters can only match players
// it has created; the remaining sources are independent of each other and
// fan out concurrently.
type RefreshService struct {
	catalog     *CatalogImportService
	rankings    *RankingsImportService
	adp         *ADPImportService
	injuries    *InjuryImportService
	rankingsURL string
	adpURL      string
	logger      *slog.Logger
}

func NewRefreshService(catalog *CatalogImportService, rankings *RankingsImportService, adp *ADPImportService, injuries *InjuryImportService, rankingsURL, adpURL string, logger *slog.Logger) *RefreshService {
	return &RefreshService{
		catalog:     catalog,
		rankings:    rankings,
		adp:         adp,
		injuries:    injuries,
		rankingsURL: rankingsURL,
		adpURL:      adpURL,
		logger:      logger,
	}
}

// RefreshAll returns one result per source name. A failed source never
// aborts the others; each entry carries its own errors.
func (s *RefreshService) RefreshAll(ctx context.Context, season int) (map[string]IngestResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RefreshService.RefreshAll")
	defer span.End()

	if season <= 0 {
		return nil, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}

	results := map[string]IngestResult{
		"players": s.catalog.ImportPlayers(ctx, season),
	}

	var mu sync.Mutex
	var wg conc.WaitGroup
	if s.rankingsURL != "" {
		wg.Go(func() {
			res := s.rankings.ImportURL(ctx, season, s.rankingsURL)
			mu.Lock()
			results["rankings"] = res
			mu.Unlock()
		})
	}
	if s.adpURL != "" {
		wg.Go(func() {
			res := s.adp.ImportAuto(ctx, season, s.adpURL, "")
			mu.Lock()
			results["adp"] = res
			mu.Unlock()
		})
	}
	wg.Go(func() {
		res := s.injuries.ImportInjuries(ctx, season)
		mu.Lock()
		results["injuries"] = res
		mu.Unlock()
	})
	wg.Wait()

	for name, res := range results {
		if len(res.Errors) > 0 {
			s.logger.WarnContext(ctx, "source refresh finished with errors", "source", name, "errors", res.Errors)
		}
	}
	return results, nil
}
