package adp

import "time"

// ADP is one average-draft-position measurement for a player in a season
// from a single provider. Multiple providers may coexist for the same
// player/season, keyed by Source.
type ADP struct {
	Season     int
	PlayerID   string
	Source     string
	ADP        *float64
	Rank       *float64
	SampleSize *int
	AsOf       time.Time
}
