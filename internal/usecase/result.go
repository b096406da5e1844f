package usecase

// maxUnmatchedExamples bounds the diagnostic sample kept per batch.
const maxUnmatchedExamples = 12

// UnmatchedExample is a sampled source record that resolved to no canonical
// player. Kept only for diagnostics, never persisted.
type UnmatchedExample struct {
	Name     string `json:"name"`
	Position string `json:"pos"`
	Team     string `json:"team"`
	Hint     string `json:"hint,omitempty"`
}

// IngestResult is the uniform outcome shape every adapter returns. Callers
// decide success from Errors alone; there is no separate exception path at
// this boundary.
type IngestResult struct {
	Imported          int                `json:"imported"`
	Matched           int                `json:"matched"`
	Unmatched         int                `json:"unmatched"`
	UnmatchedExamples []UnmatchedExample `json:"unmatchedExamples,omitempty"`
	Errors            []string           `json:"errors"`
}

func (r *IngestResult) recordUnmatched(name, position, team, hint string) {
	r.Unmatched++
	if len(r.UnmatchedExamples) >= maxUnmatchedExamples {
		return
	}
	r.UnmatchedExamples = append(r.UnmatchedExamples, UnmatchedExample{
		Name:     name,
		Position: position,
		Team:     team,
		Hint:     hint,
	})
}

func errorResult(messages ...string) IngestResult {
	return IngestResult{Errors: messages}
}
