package app

import (
	"regexp"
	"strings"
)

// tracedQueryLimit keeps span attributes small; anything longer is elided.
const tracedQueryLimit = 512

var queryWhitespaceRegex = regexp.MustCompile(`\s+`)

// formatDBQueryForTrace collapses a statement to one line for the db span
// attribute, truncating oversized queries.
func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	flat := queryWhitespaceRegex.ReplaceAllString(query, " ")
	if len(flat) > tracedQueryLimit {
		return flat[:tracedQueryLimit] + "..."
	}
	return flat
}
