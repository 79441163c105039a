package curves

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// discreteTokens mark curves that hold coded values. A curve whose name
// contains any of these tokens must never be interpolated.
var discreteTokens = []string{"LITH", "FACIES", "FLAG", "ZONE", "CODE", "TYPE", "CLASS"}

// Range is an expected physical value range for a curve type.
type Range struct {
	Min float64
	Max float64
}

// expectedRanges maps common log curve mnemonics to their expected
// physical ranges, used by QC range-conformance scoring.
var expectedRanges = map[string]Range{
	"GR":   {0, 300},
	"RHOB": {1.0, 3.0},
	"NPHI": {-0.15, 0.60},
	"DT":   {40, 250},
	"RT":   {0.1, 10000},
	"CALI": {4, 20},
	"SP":   {-200, 200},
	"PEF":  {0, 10},
}

var upper = cases.Upper(language.English)

// IsDiscrete reports whether a curve name identifies a discrete (coded)
// curve. The check is a case-insensitive substring match against the
// fixed token set, so "Lith_Code" and "FLUID_TYPE" are both discrete
// even when their samples are numeric.
func IsDiscrete(name string) bool {
	folded := upper.String(name)
	for _, token := range discreteTokens {
		if strings.Contains(folded, token) {
			return true
		}
	}
	return false
}

// ExpectedRange returns the expected physical range for a curve type
// mnemonic, if one is known. The lookup is exact on the upper-cased
// mnemonic: "GR" has a range, "GR_RAW" does not.
func ExpectedRange(curveType string) (Range, bool) {
	r, ok := expectedRanges[upper.String(curveType)]
	return r, ok
}
