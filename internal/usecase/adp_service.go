package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/avelent/draftday/internal/platform/normalize"
)

// ADPImportService ingests average-draft-position tables. The caller labels
// the provider so multiple ADP sources can coexist for one season.
type ADPImportService struct {
	fetcher    DocumentFetcher
	store      FactStore
	reconciler *FactReconciler
	tracker    *ImportTracker
	logger     *slog.Logger
}

func NewADPImportService(fetcher DocumentFetcher, store FactStore, reconciler *FactReconciler, tracker *ImportTracker, logger *slog.Logger) *ADPImportService {
	return &ADPImportService{
		fetcher:    fetcher,
		store:      store,
		reconciler: reconciler,
		tracker:    tracker,
		logger:     logger,
	}
}

type adpRow struct {
	Name     string
	Team     string
	Position string
	Facts    ADPFacts
}

// ImportAuto reads a local CSV file or fetches a URL, whichever the location
// looks like.
func (s *ADPImportService) ImportAuto(ctx context.Context, season int, location, sourceLabel string) IngestResult {
	ctx, span := startUsecaseSpan(ctx, "usecase.ADPImportService.ImportAuto")
	defer span.End()

	if season <= 0 {
		return errorResult(fmt.Sprintf("%v: season must be greater than zero", ErrInvalidInput))
	}
	if sourceLabel == "" {
		sourceLabel = "fp_composite"
	}

	return s.tracker.RunTracked(ctx, sourceLabel, "adp", func(ctx context.Context) (IngestResult, error) {
		var data []byte
		var err error
		if urlSchemeRegex.MatchString(location) {
			data, err = s.fetcher.Get(ctx, location)
			if err != nil {
				return IngestResult{}, fmt.Errorf("fetch adp document: %w", err)
			}
		} else {
			data, err = os.ReadFile(location)
			if err != nil {
				return IngestResult{}, fmt.Errorf("read adp file: %w", err)
			}
		}
		return s.ingestCSV(ctx, season, sourceLabel, data), nil
	})
}

func (s *ADPImportService) ingestCSV(ctx context.Context, season int, sourceLabel string, data []byte) IngestResult {
	header, records, err := parseCSV(data)
	if err != nil {
		return errorResult(fmt.Sprintf("CSV parse failed: %v", err))
	}

	cols := detectADPColumns(header)
	if cols.name < 0 || cols.adp < 0 {
		return errorResult("CSV missing Player/ADP columns")
	}

	rows := make([]adpRow, 0, len(records))
	for _, record := range records {
		name := normalize.Text(cell(record, cols.name))
		if name == "" {
			continue
		}
		rows = append(rows, adpRow{
			Name:     name,
			Team:     normalize.Team(cell(record, cols.team)),
			Position: normalize.Position(cell(record, cols.pos)),
			Facts: ADPFacts{
				ADP:        floatPtr(cell(record, cols.adp)),
				Rank:       floatPtr(cell(record, cols.rank)),
				SampleSize: intPtr(cell(record, cols.sample)),
			},
		})
	}

	var result IngestResult
	err = s.store.InTx(ctx, func(ctx context.Context, tx FactTx) error {
		matcher := NewPlayerMatcher(tx.Players())
		for _, row := range rows {
			p, err := matcher.Match(ctx, row.Name, row.Position, row.Team)
			if err != nil {
				return err
			}
			if p == nil {
				result.recordUnmatched(row.Name, row.Position, row.Team, "Check players catalog import & team/pos normalization")
				continue
			}
			if err := s.reconciler.MergeADP(ctx, tx.ADP(), season, p.ID, sourceLabel, row.Facts); err != nil {
				return err
			}
			result.Imported++
			result.Matched++
		}
		return nil
	})
	if err != nil {
		return errorResult(fmt.Sprintf("ingest adp batch: %v", err))
	}
	return result
}

type adpColumns struct {
	name   int
	adp    int
	team   int
	pos    int
	rank   int
	sample int
}

func detectADPColumns(header []string) adpColumns {
	cols := adpColumns{name: -1, adp: -1, team: -1, pos: -1, rank: -1, sample: -1}
	for i, raw := range header {
		h := strings.ToLower(strings.TrimSpace(raw))
		switch {
		case cols.name < 0 && (h == "player" || h == "name"):
			cols.name = i
		case cols.adp < 0 && strings.Contains(h, "adp"):
			cols.adp = i
		case cols.team < 0 && (h == "team" || h == "tm"):
			cols.team = i
		case cols.pos < 0 && (h == "pos" || h == "position"):
			cols.pos = i
		case cols.rank < 0 && strings.Contains(h, "rank"):
			cols.rank = i
		case cols.sample < 0 && (h == "n" || h == "times drafted" || h == "drafts"):
			cols.sample = i
		}
	}
	return cols
}
