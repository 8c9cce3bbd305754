package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/Zachkp/folio/internal/portfolio"
)

// matchSection returns the section whose identifier or title is closest to
// query. A prefix counts as an exact match. Ties go to the earlier section.
func matchSection(query string, ids []string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}

	best, bestDist := "", -1
	for _, id := range ids {
		for _, name := range []string{strings.ToLower(id), strings.ToLower(portfolio.Title(id))} {
			d := 0
			if !strings.HasPrefix(name, q) {
				d = levenshtein.ComputeDistance(q, name)
			}
			if bestDist < 0 || d < bestDist {
				best, bestDist = id, d
			}
		}
	}
	if bestDist < 0 || bestDist > maxDistance(q) {
		return "", false
	}
	return best, true
}

func maxDistance(q string) int {
	return max(1, utf8.RuneCountInString(q)/2)
}
