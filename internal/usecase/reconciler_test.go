package usecase_test

import (
	"testing"
	"time"

	"github.com/avelent/draftday/internal/infrastructure/repository/memory"
	"github.com/avelent/draftday/internal/usecase"
)

func TestFactReconciler_MergeConsensusRank_PartialUpdateKeepsEarlierFields(t *testing.T) {
	store := memory.NewStore(nil)
	first := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(24 * time.Hour)

	r := usecase.NewFactReconciler()
	r.SetNowForTest(func() time.Time { return first })

	ecr := 4.0
	tier := 1
	if err := r.MergeConsensusRank(t.Context(), store.Ranks(), 2025, "rb.cmcc", "fantasypros", usecase.RankFacts{ECRRank: &ecr, Tier: &tier}); err != nil {
		t.Fatalf("first merge: %v", err)
	}

	// Second import carries only a positional rank; earlier fields survive.
	r.SetNowForTest(func() time.Time { return second })
	posRank := 2.0
	if err := r.MergeConsensusRank(t.Context(), store.Ranks(), 2025, "rb.cmcc", "seed_csv", usecase.RankFacts{ECRPosRank: &posRank}); err != nil {
		t.Fatalf("second merge: %v", err)
	}

	row, err := store.Ranks().Get(t.Context(), 2025, "rb.cmcc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row == nil {
		t.Fatal("expected a consensus rank row")
	}
	if row.ECRRank == nil || *row.ECRRank != 4.0 {
		t.Fatalf("ECRRank erased by partial update: %+v", row.ECRRank)
	}
	if row.Tier == nil || *row.Tier != 1 {
		t.Fatalf("Tier erased by partial update: %+v", row.Tier)
	}
	if row.ECRPosRank == nil || *row.ECRPosRank != 2.0 {
		t.Fatalf("ECRPosRank not applied: %+v", row.ECRPosRank)
	}
	if row.Source != "seed_csv" {
		t.Fatalf("Source should record the latest touch, got %q", row.Source)
	}
	if !row.AsOf.Equal(second) {
		t.Fatalf("AsOf should record the latest touch, got %v", row.AsOf)
	}
}

func TestFactReconciler_MergeADP_NilFieldsNeverErase(t *testing.T) {
	store := memory.NewStore(nil)
	r := usecase.NewFactReconciler()

	adpVal := 12.5
	sample := 840
	if err := r.MergeADP(t.Context(), store.ADP(), 2025, "wr.jchase", "fp_composite", usecase.ADPFacts{ADP: &adpVal, SampleSize: &sample}); err != nil {
		t.Fatalf("first merge: %v", err)
	}
	rank := 11.0
	if err := r.MergeADP(t.Context(), store.ADP(), 2025, "wr.jchase", "fp_composite", usecase.ADPFacts{Rank: &rank}); err != nil {
		t.Fatalf("second merge: %v", err)
	}

	row, err := store.ADP().Get(t.Context(), 2025, "wr.jchase", "fp_composite")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row == nil {
		t.Fatal("expected an adp row")
	}
	if row.ADP == nil || *row.ADP != 12.5 {
		t.Fatalf("ADP erased: %+v", row.ADP)
	}
	if row.SampleSize == nil || *row.SampleSize != 840 {
		t.Fatalf("SampleSize erased: %+v", row.SampleSize)
	}
	if row.Rank == nil || *row.Rank != 11.0 {
		t.Fatalf("Rank not applied: %+v", row.Rank)
	}
}

func TestFactReconciler_MergeADP_SourcesAreIndependentRows(t *testing.T) {
	store := memory.NewStore(nil)
	r := usecase.NewFactReconciler()

	a, b := 8.0, 10.0
	if err := r.MergeADP(t.Context(), store.ADP(), 2025, "rb.cmcc", "fp_composite", usecase.ADPFacts{ADP: &a}); err != nil {
		t.Fatalf("merge fp_composite: %v", err)
	}
	if err := r.MergeADP(t.Context(), store.ADP(), 2025, "rb.cmcc", "underdog", usecase.ADPFacts{ADP: &b}); err != nil {
		t.Fatalf("merge underdog: %v", err)
	}

	row, err := store.ADP().Get(t.Context(), 2025, "rb.cmcc", "fp_composite")
	if err != nil || row == nil || *row.ADP != 8.0 {
		t.Fatalf("fp_composite row clobbered: %+v, %v", row, err)
	}
	row, err = store.ADP().Get(t.Context(), 2025, "rb.cmcc", "underdog")
	if err != nil || row == nil || *row.ADP != 10.0 {
		t.Fatalf("underdog row missing: %+v, %v", row, err)
	}
}

func TestFactReconciler_MergeInjury_EmptyStringsNeverErase(t *testing.T) {
	store := memory.NewStore(nil)
	r := usecase.NewFactReconciler()

	if err := r.MergeInjury(t.Context(), store.Injuries(), 2025, "wr.asb", "cbs", usecase.InjuryFacts{Status: "Questionable", BodyPart: "Ankle"}); err != nil {
		t.Fatalf("first merge: %v", err)
	}
	if err := r.MergeInjury(t.Context(), store.Injuries(), 2025, "wr.asb", "cbs", usecase.InjuryFacts{Status: "Probable"}); err != nil {
		t.Fatalf("second merge: %v", err)
	}

	row, err := store.Injuries().Get(t.Context(), 2025, "wr.asb", "cbs")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row == nil {
		t.Fatal("expected an injury row")
	}
	if row.Status != "Probable" {
		t.Fatalf("Status not updated: %q", row.Status)
	}
	if row.BodyPart != "Ankle" {
		t.Fatalf("BodyPart erased by empty incoming value: %q", row.BodyPart)
	}
}
