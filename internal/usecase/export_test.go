package usecase

import "time"

// Test-only aliases so the external usecase_test package can reach
// unexported values without creating an import cycle through the
// in-memory repository.
const (
	DefaultTeamCountForTest     = defaultTeamCount
	MaxUnmatchedExamplesForTest = maxUnmatchedExamples
)

var DemoBoardForTest = demoBoard

// SetNowForTest overrides the service's clock.
func (s *CatalogImportService) SetNowForTest(now func() time.Time) { s.now = now }

// SetNowForTest overrides the reconciler's clock.
func (r *FactReconciler) SetNowForTest(now func() time.Time) { r.now = now }
