package merge

import (
	"sort"

	"github.com/petrolog/wellmerge/pkg/curves"
)

// defaultQCScore is assumed for a (source, curve) pair with no computed
// score, so a missing score neither dooms nor crowns a candidate.
const defaultQCScore = 50.0

// Projected pairs a source identifier with its grid-projected table.
type Projected struct {
	ID    string
	Table *curves.Table
}

// Candidate is one source's standing for a single curve.
type Candidate struct {
	Source   string
	Coverage float64
	QCScore  float64
}

// Scores maps source ID to per-curve composite QC scores.
type Scores map[string]map[string]float64

// RankSources ranks the sources that carry the named curve by coverage
// descending, then QC score descending. The sort is stable, so ties keep
// the original input order.
func RankSources(curveName string, projected []Projected, scores Scores) []Candidate {
	var rankings []Candidate

	for _, p := range projected {
		col, ok := p.Table.Column(curveName)
		if !ok {
			continue
		}
		score := defaultQCScore
		if bySource, ok := scores[p.ID]; ok {
			if s, ok := bySource[curveName]; ok {
				score = s
			}
		}
		rankings = append(rankings, Candidate{
			Source:   p.ID,
			Coverage: curves.Coverage(col),
			QCScore:  score,
		})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		if rankings[i].Coverage != rankings[j].Coverage {
			return rankings[i].Coverage > rankings[j].Coverage
		}
		return rankings[i].QCScore > rankings[j].QCScore
	})

	return rankings
}

// fillGaps copies secondary values into positions still missing in the
// merged column and returns how many positions were filled. Present
// values are never overwritten.
func fillGaps(merged, secondary []float64) int {
	filled := 0
	for i, v := range merged {
		if curves.Missing(v) && !curves.Missing(secondary[i]) {
			merged[i] = secondary[i]
			filled++
		}
	}
	return filled
}

// hasMissing reports whether the column still has any missing positions.
func hasMissing(values []float64) bool {
	for _, v := range values {
		if curves.Missing(v) {
			return true
		}
	}
	return false
}
