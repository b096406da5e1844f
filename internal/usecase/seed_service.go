package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/avelent/draftday/internal/domain/player"
	"github.com/avelent/draftday/internal/platform/normalize"
)

// SeedImportService ingests hand-maintained seed CSVs that carry their own
// player ids, bypassing the matcher: each row upserts the player and its
// consensus rank together. It also ships a small built-in demo board.
type SeedImportService struct {
	store      FactStore
	reconciler *FactReconciler
	tracker    *ImportTracker
	logger     *slog.Logger
	now        func() time.Time
}

func NewSeedImportService(store FactStore, reconciler *FactReconciler, tracker *ImportTracker, logger *slog.Logger) *SeedImportService {
	return &SeedImportService{
		store:      store,
		reconciler: reconciler,
		tracker:    tracker,
		logger:     logger,
		now:        time.Now,
	}
}

var seedRequiredColumns = []string{"player_id", "season", "clean_name", "position"}

// ImportSeedCSV reads a local CSV whose rows are authoritative: player_id,
// season, clean_name and position are required; team, bye_week and the rank
// fields are optional.
func (s *SeedImportService) ImportSeedCSV(ctx context.Context, path string) IngestResult {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeedImportService.ImportSeedCSV")
	defer span.End()

	return s.tracker.RunTracked(ctx, "seed_csv", "seed", func(ctx context.Context) (IngestResult, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return IngestResult{}, fmt.Errorf("read seed file: %w", err)
		}

		header, records, err := parseCSV(data)
		if err != nil {
			return errorResult(fmt.Sprintf("CSV parse failed: %v", err)), nil
		}

		index := make(map[string]int, len(header))
		for i, h := range header {
			index[strings.ToLower(strings.TrimSpace(h))] = i
		}
		missing := make([]string, 0, len(seedRequiredColumns))
		for _, col := range seedRequiredColumns {
			if _, ok := index[col]; !ok {
				missing = append(missing, col)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			return errorResult(fmt.Sprintf("Missing columns: %s", strings.Join(missing, ", "))), nil
		}

		col := func(record []string, name string) string {
			i, ok := index[name]
			if !ok {
				return ""
			}
			return cell(record, i)
		}

		var result IngestResult
		err = s.store.InTx(ctx, func(ctx context.Context, tx FactTx) error {
			for _, record := range records {
				id := strings.TrimSpace(col(record, "player_id"))
				season, ok := normalize.CleanInt(col(record, "season"))
				cleanName := normalize.Text(col(record, "clean_name"))
				position := normalize.Position(col(record, "position"))
				if id == "" || !ok || cleanName == "" || position == "" {
					continue
				}

				p := player.Player{
					ID:        id,
					Season:    season,
					CleanName: cleanName,
					Position:  position,
					Team:      normalize.Team(col(record, "team")),
					ByeWeek:   intPtr(col(record, "bye_week")),
					UpdatedAt: s.now().UTC(),
				}
				if existing, err := tx.Players().GetByID(ctx, id); err != nil {
					return fmt.Errorf("get player %s: %w", id, err)
				} else if existing != nil {
					if p.Team == "" {
						p.Team = existing.Team
					}
					if p.ByeWeek == nil {
						p.ByeWeek = existing.ByeWeek
					}
					p.SleeperID = existing.SleeperID
					p.ESPNID = existing.ESPNID
					p.NFLID = existing.NFLID
				}
				if err := tx.Players().Upsert(ctx, p); err != nil {
					return fmt.Errorf("upsert player %s: %w", id, err)
				}

				facts := RankFacts{
					ECRRank:    floatPtr(col(record, "ecr_rank")),
					ECRPosRank: floatPtr(col(record, "ecr_pos_rank")),
					Tier:       intPtr(col(record, "tier")),
				}
				if facts.ECRRank != nil || facts.ECRPosRank != nil || facts.Tier != nil {
					if err := s.reconciler.MergeConsensusRank(ctx, tx.Ranks(), season, id, "seed_csv", facts); err != nil {
						return err
					}
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

type demoEntry struct {
	id       string
	name     string
	position string
	team     string
	bye      int
	ecr      float64
	posRank  float64
	tier     int
}

var demoBoard = []demoEntry{
	{"rb.cmcc", "Christian McCaffrey", "RB", "SF", 9, 1, 1, 1},
	{"wr.jchase", "Ja'Marr Chase", "WR", "CIN", 12, 2, 1, 1},
	{"wr.cdlamb", "CeeDee Lamb", "WR", "DAL", 7, 3, 2, 1},
	{"rb.brobinson", "Bijan Robinson", "RB", "ATL", 12, 4, 2, 1},
	{"wr.asb", "Amon-Ra St. Brown", "WR", "DET", 9, 5, 3, 1},
	{"qb.jallen", "Josh Allen", "QB", "BUF", 12, 20, 1, 2},
}

// ImportDemo seeds a handful of well-known players so the UI has something
// to show before any real source has been imported.
func (s *SeedImportService) ImportDemo(ctx context.Context, season int) IngestResult {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeedImportService.ImportDemo")
	defer span.End()

	if season <= 0 {
		return errorResult(fmt.Sprintf("%v: season must be greater than zero", ErrInvalidInput))
	}

	return s.tracker.RunTracked(ctx, "demo", "seed", func(ctx context.Context) (IngestResult, error) {
		var result IngestResult
		err := s.store.InTx(ctx, func(ctx context.Context, tx FactTx) error {
			for _, entry := range demoBoard {
				bye := entry.bye
				p := player.Player{
					ID:        entry.id,
					Season:    season,
					CleanName: entry.name,
					Position:  entry.position,
					Team:      entry.team,
					ByeWeek:   &bye,
					UpdatedAt: s.now().UTC(),
				}
				if err := tx.Players().Upsert(ctx, p); err != nil {
					return fmt.Errorf("upsert demo player %s: %w", entry.id, err)
				}

				ecr, posRank, tier := entry.ecr, entry.posRank, entry.tier
				facts := RankFacts{ECRRank: &ecr, ECRPosRank: &posRank, Tier: &tier}
				if err := s.reconciler.MergeConsensusRank(ctx, tx.Ranks(), season, entry.id, "demo", facts); err != nil {
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
