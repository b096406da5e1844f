// Package memory provides map-backed repository implementations. They back
// the usecase tests and let the service run without a database for local
// experiments.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/avelent/draftday/internal/domain/adp"
	"github.com/avelent/draftday/internal/domain/injury"
	"github.com/avelent/draftday/internal/domain/player"
	"github.com/avelent/draftday/internal/domain/ranking"
	"github.com/avelent/draftday/internal/usecase"
)

type rankKey struct {
	season   int
	playerID string
}

type sourcedKey struct {
	season   int
	playerID string
	source   string
}

// Store holds every fact table in memory behind one mutex. It implements
// both usecase.FactStore and usecase.FactTx; InTx runs the function directly
// without rollback, which is fine for tests and local use.
type Store struct {
	mu        sync.RWMutex
	players   map[string]player.Player
	ranks     map[rankKey]ranking.ConsensusRank
	overrides map[string]int
	adps      map[sourcedKey]adp.ADP
	injuries  map[sourcedKey]injury.Injury
}

func NewStore(seed []player.Player) *Store {
	s := &Store{
		players:   make(map[string]player.Player),
		ranks:     make(map[rankKey]ranking.ConsensusRank),
		overrides: make(map[string]int),
		adps:      make(map[sourcedKey]adp.ADP),
		injuries:  make(map[sourcedKey]injury.Injury),
	}
	for _, p := range seed {
		s.players[p.ID] = p
	}
	return s
}

func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, tx usecase.FactTx) error) error {
	return fn(ctx, s)
}

func (s *Store) Players() player.Repository  { return &playerRepository{store: s} }
func (s *Store) Ranks() ranking.Repository   { return &rankRepository{store: s} }
func (s *Store) ADP() adp.Repository         { return &adpRepository{store: s} }
func (s *Store) Injuries() injury.Repository { return &injuryRepository{store: s} }

type playerRepository struct {
	store *Store
}

func (r *playerRepository) GetByID(_ context.Context, playerID string) (*player.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.players[playerID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *playerRepository) ListByCleanName(_ context.Context, cleanName string) ([]player.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]player.Player, 0, 2)
	for _, p := range r.store.players {
		if p.CleanName == cleanName {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *playerRepository) Search(_ context.Context, query string, limit int) ([]player.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	q := strings.ToLower(query)
	out := make([]player.Player, 0, limit)
	for _, p := range r.store.players {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.CleanName), q) &&
			!strings.Contains(strings.ToLower(p.Position), q) &&
			!strings.Contains(strings.ToLower(p.Team), q) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CleanName < out[j].CleanName })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *playerRepository) Upsert(_ context.Context, p player.Player) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.players[p.ID] = p
	return nil
}

func (r *playerRepository) ListEnriched(_ context.Context, season int, position string, limit int) ([]player.EnrichedRow, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]player.EnrichedRow, 0, limit)
	for _, p := range r.store.players {
		if position != "" && p.Position != position {
			continue
		}
		row := player.EnrichedRow{
			PlayerID: p.ID,
			Name:     p.CleanName,
			Position: p.Position,
			Team:     p.Team,
		}
		if cr, ok := r.store.ranks[rankKey{season: season, playerID: p.ID}]; ok {
			row.ECRRank = cr.ECRRank
			row.ECRPosRank = cr.ECRPosRank
			row.Tier = cr.Tier
			row.TierSource = "core"
		}
		if tier, ok := r.store.overrides[p.ID]; ok {
			t := tier
			row.Tier = &t
			row.TierSource = "override"
		}
		if a, ok := r.store.adps[sourcedKey{season: season, playerID: p.ID, source: "fp_composite"}]; ok {
			row.ADP = a.ADP
		}
		if inj, ok := r.store.injuries[sourcedKey{season: season, playerID: p.ID, source: "cbs"}]; ok {
			row.InjuryStatus = inj.Status
			row.InjuryBody = inj.BodyPart
		}
		out = append(out, row)
	}

	sort.Slice(out, func(i, j int) bool {
		return lessByRankThenName(out[i].ECRRank, out[j].ECRRank, out[i].Name, out[j].Name)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *playerRepository) ListAvailableByRank(_ context.Context, season int, position string, excludeIDs []string, limit int) ([]player.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	excluded := make(map[string]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	type ranked struct {
		p    player.Player
		rank *float64
	}
	rows := make([]ranked, 0, limit)
	for _, p := range r.store.players {
		if _, skip := excluded[p.ID]; skip {
			continue
		}
		if position != "" && p.Position != position {
			continue
		}
		cr, ok := r.store.ranks[rankKey{season: season, playerID: p.ID}]
		if !ok {
			continue
		}
		rows = append(rows, ranked{p: p, rank: cr.ECRRank})
	}

	sort.Slice(rows, func(i, j int) bool {
		return lessByRankThenName(rows[i].rank, rows[j].rank, rows[i].p.CleanName, rows[j].p.CleanName)
	})
	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.p)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// lessByRankThenName orders ranked rows first (ascending), unranked last,
// ties by name.
func lessByRankThenName(a, b *float64, nameA, nameB string) bool {
	switch {
	case a != nil && b != nil:
		if *a != *b {
			return *a < *b
		}
	case a != nil:
		return true
	case b != nil:
		return false
	}
	return nameA < nameB
}

type rankRepository struct {
	store *Store
}

func (r *rankRepository) Get(_ context.Context, season int, playerID string) (*ranking.ConsensusRank, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	row, ok := r.store.ranks[rankKey{season: season, playerID: playerID}]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *rankRepository) Save(_ context.Context, row ranking.ConsensusRank) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.ranks[rankKey{season: row.Season, playerID: row.PlayerID}] = row
	return nil
}

func (r *rankRepository) GetOverride(_ context.Context, playerID string) (*ranking.TierOverride, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	tier, ok := r.store.overrides[playerID]
	if !ok {
		return nil, nil
	}
	return &ranking.TierOverride{PlayerID: playerID, Tier: tier}, nil
}

func (r *rankRepository) SetOverride(_ context.Context, playerID string, tier int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.overrides[playerID] = tier
	return nil
}

func (r *rankRepository) ClearOverride(_ context.Context, playerID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.overrides, playerID)
	return nil
}

type adpRepository struct {
	store *Store
}

func (r *adpRepository) Get(_ context.Context, season int, playerID, source string) (*adp.ADP, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	row, ok := r.store.adps[sourcedKey{season: season, playerID: playerID, source: source}]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *adpRepository) Save(_ context.Context, row adp.ADP) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.adps[sourcedKey{season: row.Season, playerID: row.PlayerID, source: row.Source}] = row
	return nil
}

type injuryRepository struct {
	store *Store
}

func (r *injuryRepository) Get(_ context.Context, season int, playerID, source string) (*injury.Injury, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	row, ok := r.store.injuries[sourcedKey{season: season, playerID: playerID, source: source}]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *injuryRepository) Save(_ context.Context, row injury.Injury) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.injuries[sourcedKey{season: row.Season, playerID: row.PlayerID, source: row.Source}] = row
	return nil
}
