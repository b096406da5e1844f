package ranking

import "time"

// ConsensusRank holds the expert-consensus ranking facts for one player in
// one season. At most one row exists per (season, player): later imports
// merge into it, they do not append.
type ConsensusRank struct {
	Season     int
	PlayerID   string
	ECRRank    *float64
	ECRPosRank *float64
	Tier       *int
	Source     string
	AsOf       time.Time
}

// TierOverride is a manually set tier that shadows the computed one in
// downstream views. Ingestion never writes it.
type TierOverride struct {
	PlayerID string
	Tier     int
}
