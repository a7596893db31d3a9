package dashboard

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// JumpToTitle selects the tab whose title best matches query and reports
// whether any tab was selected. A case-insensitive prefix match wins;
// otherwise the smallest edit distance does, earliest tab on ties.
func (v *View) JumpToTitle(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(v.tabs) == 0 {
		return false
	}
	best, bestDist := -1, 0
	for i, t := range v.tabs {
		title := strings.ToLower(strings.TrimSpace(t.Title))
		if strings.HasPrefix(title, q) {
			best = i
			break
		}
		d := levenshtein.ComputeDistance(q, title)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	v.active = v.tabs[best].ID
	return true
}
