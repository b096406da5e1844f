package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/avelent/draftday/internal/platform/normalize"
)

const rankingsSource = "fantasypros"

// tabularCommaThreshold is the heuristic for "this response body looks like
// CSV rather than a rendered page".
const tabularCommaThreshold = 10

var urlSchemeRegex = regexp.MustCompile(`(?i)^https?://`)
var tierNumberRegex = regexp.MustCompile(`(\d+)`)

// DocumentFetcher retrieves a remote document body. Retries, auth and
// caching are its problem, not the core's.
type DocumentFetcher interface {
	Get(ctx context.Context, rawURL string) ([]byte, error)
}

// TableExtractor pulls the first table out of a markup page as rows of cell
// text. It fails when the page has no table at all (typically because the
// content is script-rendered).
type TableExtractor interface {
	ExtractFirstTable(body []byte) ([][]string, error)
}

// RankingsImportService ingests expert-consensus rankings from a CSV file, a
// URL that can be coerced into a CSV download, or a rendered rankings page
// as a last resort.
type RankingsImportService struct {
	fetcher    DocumentFetcher
	tables     TableExtractor
	store      FactStore
	reconciler *FactReconciler
	tracker    *ImportTracker
	logger     *slog.Logger
}

func NewRankingsImportService(fetcher DocumentFetcher, tables TableExtractor, store FactStore, reconciler *FactReconciler, tracker *ImportTracker, logger *slog.Logger) *RankingsImportService {
	return &RankingsImportService{
		fetcher:    fetcher,
		tables:     tables,
		store:      store,
		reconciler: reconciler,
		tracker:    tracker,
		logger:     logger,
	}
}

// rankRow is the typed intermediate record one rankings source row reduces
// to, decoupling upstream column layouts from the matcher and reconciler.
type rankRow struct {
	Name     string
	Team     string
	Position string
	Facts    RankFacts
}

// ImportAuto dispatches on the location shape: URLs take the CSV-coercion
// path with a markup fallback, anything else is read as a local CSV file.
func (s *RankingsImportService) ImportAuto(ctx context.Context, season int, location string) IngestResult {
	if urlSchemeRegex.MatchString(location) {
		return s.ImportURL(ctx, season, location)
	}
	return s.ImportCSVFile(ctx, season, location)
}

func (s *RankingsImportService) ImportCSVFile(ctx context.Context, season int, path string) IngestResult {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingsImportService.ImportCSVFile")
	defer span.End()

	if season <= 0 {
		return errorResult(fmt.Sprintf("%v: season must be greater than zero", ErrInvalidInput))
	}

	return s.tracker.RunTracked(ctx, rankingsSource, "rankings", func(ctx context.Context) (IngestResult, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return IngestResult{}, fmt.Errorf("read rankings file: %w", err)
		}
		return s.ingestCSV(ctx, season, data), nil
	})
}

// ImportURL attempts, in order, the URL verbatim, with csv=1 appended and
// with export=csv appended, accepting the first tabular-looking response.
// When none succeed it falls back to scraping the original URL as a page,
// because the same rankings resource may be reachable as either a download
// or rendered markup depending on the exact URL.
func (s *RankingsImportService) ImportURL(ctx context.Context, season int, rawURL string) IngestResult {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingsImportService.ImportURL")
	defer span.End()

	if season <= 0 {
		return errorResult(fmt.Sprintf("%v: season must be greater than zero", ErrInvalidInput))
	}

	return s.tracker.RunTracked(ctx, rankingsSource, "rankings", func(ctx context.Context) (IngestResult, error) {
		if data, ok := s.fetchTabular(ctx, rawURL); ok {
			return s.ingestCSV(ctx, season, data), nil
		}
		return s.ingestMarkup(ctx, season, rawURL)
	})
}

func (s *RankingsImportService) fetchTabular(ctx context.Context, rawURL string) ([]byte, bool) {
	candidates := []string{rawURL}
	if withCSV, err := appendQueryParam(rawURL, "csv", "1"); err == nil {
		candidates = append(candidates, withCSV)
	}
	if withExport, err := appendQueryParam(rawURL, "export", "csv"); err == nil {
		candidates = append(candidates, withExport)
	}

	for _, candidate := range candidates {
		body, err := s.fetcher.Get(ctx, candidate)
		if err != nil {
			s.logger.DebugContext(ctx, "tabular candidate fetch failed", "url", candidate, "error", err)
			continue
		}
		if looksTabular(body) {
			return body, true
		}
	}
	return nil, false
}

func (s *RankingsImportService) ingestCSV(ctx context.Context, season int, data []byte) IngestResult {
	header, records, err := parseCSV(data)
	if err != nil {
		return errorResult(fmt.Sprintf("CSV parse failed: %v", err))
	}

	cols := detectRankColumns(header)
	if cols.name < 0 {
		return errorResult("CSV missing 'Player'/'Name' column")
	}

	rows := make([]rankRow, 0, len(records))
	for _, record := range records {
		name := normalize.Text(cell(record, cols.name))
		if name == "" {
			continue
		}
		rows = append(rows, rankRow{
			Name:     name,
			Team:     normalize.Team(cell(record, cols.team)),
			Position: normalize.Position(cell(record, cols.pos)),
			Facts: RankFacts{
				ECRRank:    floatPtr(cell(record, cols.ecr)),
				ECRPosRank: floatPtr(cell(record, cols.posRank)),
				Tier:       intPtr(cell(record, cols.tier)),
			},
		})
	}

	return s.ingestRows(ctx, season, rows, "Check players catalog import & team/pos normalization")
}

func (s *RankingsImportService) ingestMarkup(ctx context.Context, season int, rawURL string) (IngestResult, error) {
	body, err := s.fetcher.Get(ctx, rawURL)
	if err != nil {
		return IngestResult{}, fmt.Errorf("fetch rankings page: %w", err)
	}

	table, err := s.tables.ExtractFirstTable(body)
	if err != nil {
		return errorResult("No table found (page may be JS-rendered). Try CSV mode."), nil
	}

	rows := make([]rankRow, 0, len(table))
	for _, cells := range table {
		if len(cells) < 4 {
			continue
		}
		rank, ok := normalize.CleanFloat(cells[0])
		if !ok {
			continue
		}
		row := rankRow{
			Name:     normalize.Text(cells[1]),
			Team:     normalize.Team(cells[2]),
			Position: normalize.Position(cells[3]),
			Facts:    RankFacts{ECRRank: &rank},
		}
		for _, c := range cells {
			if !strings.HasPrefix(strings.ToLower(c), "tier") {
				continue
			}
			if m := tierNumberRegex.FindStringSubmatch(c); m != nil {
				if tier, ok := normalize.CleanInt(m[1]); ok {
					row.Facts.Tier = &tier
				}
			}
		}
		rows = append(rows, row)
	}

	return s.ingestRows(ctx, season, rows, ""), nil
}

// ingestRows runs match+reconcile for a batch inside one transaction. Rows
// are processed in source order so first-hit-wins stays deterministic.
func (s *RankingsImportService) ingestRows(ctx context.Context, season int, rows []rankRow, hint string) IngestResult {
	var result IngestResult
	err := s.store.InTx(ctx, func(ctx context.Context, tx FactTx) error {
		matcher := NewPlayerMatcher(tx.Players())
		for _, row := range rows {
			p, err := matcher.Match(ctx, row.Name, row.Position, row.Team)
			if err != nil {
				return err
			}
			if p == nil {
				result.recordUnmatched(row.Name, row.Position, row.Team, hint)
				continue
			}
			if err := s.reconciler.MergeConsensusRank(ctx, tx.Ranks(), season, p.ID, rankingsSource, row.Facts); err != nil {
				return err
			}
			result.Imported++
			result.Matched++
		}
		return nil
	})
	if err != nil {
		return errorResult(fmt.Sprintf("ingest rankings batch: %v", err))
	}
	return result
}

func looksTabular(body []byte) bool {
	return bytes.Count(body, []byte{','}) > tabularCommaThreshold
}

func appendQueryParam(rawURL, key, value string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	query := parsed.Query()
	if query.Get(key) != value {
		query.Set(key, value)
	}
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

func parseCSV(data []byte) ([]string, [][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("empty document")
	}
	return records[0], records[1:], nil
}

type rankColumns struct {
	name    int
	team    int
	pos     int
	ecr     int
	posRank int
	tier    int
}

// detectRankColumns assigns column roles by case-insensitive header text.
func detectRankColumns(header []string) rankColumns {
	cols := rankColumns{name: -1, team: -1, pos: -1, ecr: -1, posRank: -1, tier: -1}
	for i, raw := range header {
		h := strings.ToLower(strings.TrimSpace(raw))
		switch {
		case cols.name < 0 && (h == "player" || h == "name"):
			cols.name = i
		case cols.team < 0 && (h == "team" || h == "team.1" || h == "tm"):
			cols.team = i
		case cols.pos < 0 && (h == "pos" || h == "position"):
			cols.pos = i
		case cols.posRank < 0 && strings.Contains(h, "pos") && strings.Contains(h, "rank"):
			cols.posRank = i
		case cols.ecr < 0 && (strings.Contains(h, "ecr") || h == "rank" || h == "overall"):
			cols.ecr = i
		case cols.tier < 0 && strings.Contains(h, "tier"):
			cols.tier = i
		}
	}
	return cols
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}

func floatPtr(raw string) *float64 {
	if f, ok := normalize.CleanFloat(raw); ok {
		return &f
	}
	return nil
}

func intPtr(raw string) *int {
	if n, ok := normalize.CleanInt(raw); ok {
		return &n
	}
	return nil
}
