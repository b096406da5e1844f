package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/avelent/draftday/internal/platform/normalize"
)

const injurySource = "cbs"

// InjuryRow is one already-parsed line of the fixed-layout injury report:
// name, position, last-updated, body part, status text.
type InjuryRow struct {
	Name     string
	Position string
	Updated  string
	BodyPart string
	Status   string
}

// InjuryFetcher acquires and parses the external injury report into rows.
type InjuryFetcher interface {
	FetchInjuries(ctx context.Context) ([]InjuryRow, error)
}

// InjuryImportService ingests the league-wide injury report. Matching is
// strict name+position with no bare-name fallback: team rosters on the
// injury source lag trades, so a team filter would drop recently moved
// players, while a name-only match could pin an injury on a same-named
// player at another position.
type InjuryImportService struct {
	fetcher    InjuryFetcher
	store      FactStore
	reconciler *FactReconciler
	tracker    *ImportTracker
	logger     *slog.Logger
}

func NewInjuryImportService(fetcher InjuryFetcher, store FactStore, reconciler *FactReconciler, tracker *ImportTracker, logger *slog.Logger) *InjuryImportService {
	return &InjuryImportService{
		fetcher:    fetcher,
		store:      store,
		reconciler: reconciler,
		tracker:    tracker,
		logger:     logger,
	}
}

func (s *InjuryImportService) ImportInjuries(ctx context.Context, season int) IngestResult {
	ctx, span := startUsecaseSpan(ctx, "usecase.InjuryImportService.ImportInjuries")
	defer span.End()

	if season <= 0 {
		return errorResult(fmt.Sprintf("%v: season must be greater than zero", ErrInvalidInput))
	}

	return s.tracker.RunTracked(ctx, injurySource, "injuries", func(ctx context.Context) (IngestResult, error) {
		rows, err := s.fetcher.FetchInjuries(ctx)
		if err != nil {
			return IngestResult{}, fmt.Errorf("fetch injury report: %w", err)
		}

		var result IngestResult
		err = s.store.InTx(ctx, func(ctx context.Context, tx FactTx) error {
			matcher := NewPlayerMatcher(tx.Players())
			for _, row := range rows {
				name := normalize.Text(row.Name)
				position := normalize.Position(row.Position)
				if name == "" {
					continue
				}

				p, err := matcher.MatchExact(ctx, name, position)
				if err != nil {
					return err
				}
				if p == nil {
					result.recordUnmatched(name, position, "", "")
					continue
				}

				facts := InjuryFacts{
					Status:   normalize.Text(row.Status),
					BodyPart: normalize.Text(row.BodyPart),
				}
				if err := s.reconciler.MergeInjury(ctx, tx.Injuries(), season, p.ID, injurySource, facts); err != nil {
					return err
				}
				result.Imported++
				result.Matched++
			}
			return nil
		})
		if err != nil {
			return IngestResult{}, err
		}
		return result, nil
	})
}
