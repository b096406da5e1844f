package injury

import "time"

// Injury is the latest injury-report fact for a player in a season from one
// source. Status and BodyPart carry the report text verbatim; AsOf records
// when this row was last touched.
type Injury struct {
	Season         int
	PlayerID       string
	Source         string
	Status         string
	BodyPart       string
	PracticeStatus string
	Probability    *float64
	ReturnTimeline string
	AsOf           time.Time
}
