// Package filter selects questions about speed limits.
package filter

import (
	"strings"

	"github.com/korjavin/speedquestions/models"
)

// Match reports whether q is about speed limits: its lowercased text
// mentions "speed limit" or "km/h", or contains both "speed" and "limit"
// anywhere.
func Match(q models.Question) bool {
	text := strings.ToLower(q.Text)
	switch {
	case strings.Contains(text, "speed limit"):
		return true
	case strings.Contains(text, "km/h"):
		return true
	default:
		return strings.Contains(text, "speed") && strings.Contains(text, "limit")
	}
}

// Filter returns the questions for which Match is true, in input order.
func Filter(qs []models.Question) []models.Question {
	var matched []models.Question
	for _, q := range qs {
		if Match(q) {
			matched = append(matched, q)
		}
	}
	return matched
}
