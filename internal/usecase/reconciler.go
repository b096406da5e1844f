package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/avelent/draftday/internal/domain/adp"
	"github.com/avelent/draftday/internal/domain/injury"
	"github.com/avelent/draftday/internal/domain/ranking"
)

// FactReconciler owns all writes to the fact tables. Each merge looks up the
// existing row by its natural key, creates one if absent, and writes each
// incoming field only when it carries an actual value. A later import with
// partial data can add or overwrite fields, never erase them. Source and
// as-of always record the most recent touch.
type FactReconciler struct {
	now func() time.Time
}

func NewFactReconciler() *FactReconciler {
	return &FactReconciler{now: time.Now}
}

// RankFacts are the incoming consensus-rank values; nil means the source had
// no value for that field.
type RankFacts struct {
	ECRRank    *float64
	ECRPosRank *float64
	Tier       *int
}

func (r *FactReconciler) MergeConsensusRank(ctx context.Context, repo ranking.Repository, season int, playerID, source string, facts RankFacts) error {
	existing, err := repo.Get(ctx, season, playerID)
	if err != nil {
		return fmt.Errorf("get consensus rank: %w", err)
	}

	row := ranking.ConsensusRank{Season: season, PlayerID: playerID}
	if existing != nil {
		row = *existing
	}
	if facts.ECRRank != nil {
		row.ECRRank = facts.ECRRank
	}
	if facts.ECRPosRank != nil {
		row.ECRPosRank = facts.ECRPosRank
	}
	if facts.Tier != nil {
		row.Tier = facts.Tier
	}
	row.Source = source
	row.AsOf = r.now().UTC()

	if err := repo.Save(ctx, row); err != nil {
		return fmt.Errorf("save consensus rank: %w", err)
	}
	return nil
}

// ADPFacts are the incoming average-draft-position values.
type ADPFacts struct {
	ADP        *float64
	Rank       *float64
	SampleSize *int
}

func (r *FactReconciler) MergeADP(ctx context.Context, repo adp.Repository, season int, playerID, source string, facts ADPFacts) error {
	existing, err := repo.Get(ctx, season, playerID, source)
	if err != nil {
		return fmt.Errorf("get adp: %w", err)
	}

	row := adp.ADP{Season: season, PlayerID: playerID, Source: source}
	if existing != nil {
		row = *existing
	}
	if facts.ADP != nil {
		row.ADP = facts.ADP
	}
	if facts.Rank != nil {
		row.Rank = facts.Rank
	}
	if facts.SampleSize != nil {
		row.SampleSize = facts.SampleSize
	}
	row.AsOf = r.now().UTC()

	if err := repo.Save(ctx, row); err != nil {
		return fmt.Errorf("save adp: %w", err)
	}
	return nil
}

// InjuryFacts are the incoming injury-report values; empty strings mean the
// report carried nothing for that field.
type InjuryFacts struct {
	Status         string
	BodyPart       string
	PracticeStatus string
	Probability    *float64
	ReturnTimeline string
}

func (r *FactReconciler) MergeInjury(ctx context.Context, repo injury.Repository, season int, playerID, source string, facts InjuryFacts) error {
	existing, err := repo.Get(ctx, season, playerID, source)
	if err != nil {
		return fmt.Errorf("get injury: %w", err)
	}

	row := injury.Injury{Season: season, PlayerID: playerID, Source: source}
	if existing != nil {
		row = *existing
	}
	if facts.Status != "" {
		row.Status = facts.Status
	}
	if facts.BodyPart != "" {
		row.BodyPart = facts.BodyPart
	}
	if facts.PracticeStatus != "" {
		row.PracticeStatus = facts.PracticeStatus
	}
	if facts.Probability != nil {
		row.Probability = facts.Probability
	}
	if facts.ReturnTimeline != "" {
		row.ReturnTimeline = facts.ReturnTimeline
	}
	row.AsOf = r.now().UTC()

	if err := repo.Save(ctx, row); err != nil {
		return fmt.Errorf("save injury: %w", err)
	}
	return nil
}
