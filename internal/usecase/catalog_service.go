package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/avelent/draftday/internal/domain/player"
	"github.com/avelent/draftday/internal/platform/normalize"
)

// CatalogEntry is one record from the canonical player directory, keyed
// upstream by the directory's own external id.
type CatalogEntry struct {
	PlayerID string
	FullName string
	Position string
	Team     string
	ESPNID   string
	NFLID    string
}

// CatalogFetcher acquires the bulk player directory. Transport failures
// surface as errors and are absorbed by the import tracker.
type CatalogFetcher interface {
	FetchPlayers(ctx context.Context) (map[string]CatalogEntry, error)
}

// CatalogImportService ingests the player directory. It is the only adapter
// allowed to create Player rows wholesale; every other adapter only attaches
// facts to players this one has seen.
type CatalogImportService struct {
	fetcher CatalogFetcher
	store   FactStore
	tracker *ImportTracker
	logger  *slog.Logger
	now     func() time.Time
}

func NewCatalogImportService(fetcher CatalogFetcher, store FactStore, tracker *ImportTracker, logger *slog.Logger) *CatalogImportService {
	return &CatalogImportService{
		fetcher: fetcher,
		store:   store,
		tracker: tracker,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *CatalogImportService) ImportPlayers(ctx context.Context, season int) IngestResult {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogImportService.ImportPlayers")
	defer span.End()

	if season <= 0 {
		return errorResult(fmt.Sprintf("%v: season must be greater than zero", ErrInvalidInput))
	}

	return s.tracker.RunTracked(ctx, "sleeper", "players", func(ctx context.Context) (IngestResult, error) {
		entries, err := s.fetcher.FetchPlayers(ctx)
		if err != nil {
			return IngestResult{}, fmt.Errorf("fetch player catalog: %w", err)
		}

		// The upstream mapping has no order; sort by external id so reruns
		// touch rows in the same sequence.
		externalIDs := make([]string, 0, len(entries))
		for id := range entries {
			externalIDs = append(externalIDs, id)
		}
		sort.Strings(externalIDs)

		var result IngestResult
		err = s.store.InTx(ctx, func(ctx context.Context, tx FactTx) error {
			for _, externalID := range externalIDs {
				entry := entries[externalID]
				cleanName := normalize.Text(entry.FullName)
				position := normalize.Position(entry.Position)
				team := normalize.Team(entry.Team)
				// Skip after normalization: a name of pure whitespace is as
				// empty as a missing one, and one junk entry must not abort
				// the whole batch.
				if cleanName == "" || position == "" {
					continue
				}

				id := entry.PlayerID
				if id == "" {
					id = player.DeterministicID(position, cleanName)
				}

				existing, err := tx.Players().GetByID(ctx, id)
				if err != nil {
					return fmt.Errorf("get player %s: %w", id, err)
				}

				p := player.Player{
					ID:        id,
					Season:    season,
					CleanName: cleanName,
					Position:  position,
					Team:      team,
					SleeperID: entry.PlayerID,
					ESPNID:    entry.ESPNID,
					NFLID:     entry.NFLID,
					UpdatedAt: s.now().UTC(),
				}
				if existing != nil {
					p.ByeWeek = existing.ByeWeek
					if p.ESPNID == "" {
						p.ESPNID = existing.ESPNID
					}
					if p.NFLID == "" {
						p.NFLID = existing.NFLID
					}
				}

				if err := tx.Players().Upsert(ctx, p); err != nil {
					return fmt.Errorf("upsert player %s: %w", id, err)
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
