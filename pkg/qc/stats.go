package qc

import (
	"math"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/petrolog/wellmerge/internal/stat"
	"github.com/petrolog/wellmerge/pkg/curves"
)

// RequiredCurves are the curve mnemonics a complete petrophysical
// dataset is expected to carry.
var RequiredCurves = []string{"GR", "RHOB", "NPHI"}

var upper = cases.Upper(language.English)

// CurveStats holds descriptive statistics for a single curve.
type CurveStats struct {
	Mnemonic       string  `yaml:"mnemonic"`
	TotalPoints    int     `yaml:"total_points"`
	ValidPoints    int     `yaml:"valid_points"`
	NullCount      int     `yaml:"null_count"`
	NullPercentage float64 `yaml:"null_percentage"`
	Min            float64 `yaml:"min"`
	Max            float64 `yaml:"max"`
	Mean           float64 `yaml:"mean"`
	Std            float64 `yaml:"std"`
	Median         float64 `yaml:"median"`
	P5             float64 `yaml:"p5"`
	P95            float64 `yaml:"p95"`
	OutlierCount   int     `yaml:"outlier_count"`
	QualityScore   float64 `yaml:"quality_score"`
}

// TableReport is a whole-table quality summary.
type TableReport struct {
	WellName     string                `yaml:"well_name"`
	DepthMin     float64               `yaml:"depth_min"`
	DepthMax     float64               `yaml:"depth_max"`
	TotalDepth   float64               `yaml:"total_depth"`
	Step         float64               `yaml:"step"`
	TotalPoints  int                   `yaml:"total_points"`
	Available    []string              `yaml:"curves_available"`
	Missing      []string              `yaml:"curves_missing"`
	Curves       map[string]CurveStats `yaml:"curves"`
	OverallScore float64               `yaml:"overall_quality_score"`
}

// GapInterval is a contiguous run of missing samples, expressed as a
// depth interval.
type GapInterval struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

// Describe computes descriptive statistics for one curve.
func Describe(mnemonic string, values []float64) CurveStats {
	valid := stat.Valid(values)
	total := len(values)
	nullCount := total - len(valid)

	s := CurveStats{
		Mnemonic:    mnemonic,
		TotalPoints: total,
		ValidPoints: len(valid),
		NullCount:   nullCount,
		Min:         math.NaN(),
		Max:         math.NaN(),
		Mean:        math.NaN(),
		Std:         math.NaN(),
		Median:      math.NaN(),
		P5:          math.NaN(),
		P95:         math.NaN(),
	}
	if total > 0 {
		s.NullPercentage = float64(nullCount) / float64(total) * 100
	}

	if len(valid) > 0 {
		s.Min = stat.Min(valid)
		s.Max = stat.Max(valid)
		s.Mean = stat.Mean(valid)
		s.Std = stat.Std(valid)
		s.Median = stat.Median(valid)
		s.P5 = stat.Percentile(valid, 5)
		s.P95 = stat.Percentile(valid, 95)
		s.OutlierCount = countOutliers(valid)
	}

	s.QualityScore = simpleQuality(s.NullPercentage, s.OutlierCount, total)
	return s
}

// countOutliers counts values outside 1.5 IQR of the quartiles.
func countOutliers(valid []float64) int {
	q1 := stat.Percentile(valid, 25)
	q3 := stat.Percentile(valid, 75)
	iqr := q3 - q1
	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr

	n := 0
	for _, v := range valid {
		if v < lower || v > upper {
			n++
		}
	}
	return n
}

// simpleQuality is the descriptive quality score: start from 100,
// penalize nulls up to 40 points and outliers up to 20.
func simpleQuality(nullPct float64, outliers, total int) float64 {
	score := 100.0
	score -= math.Min(nullPct*0.5, 40)
	if total > 0 {
		outlierPct := float64(outliers) / float64(total) * 100
		score -= math.Min(outlierPct*0.3, 20)
	}
	return math.Max(0, math.Min(100, score))
}

// Gaps finds contiguous runs of at least minGapSize missing samples in a
// curve and reports them as depth intervals.
func Gaps(depths, values []float64, minGapSize int) []GapInterval {
	if len(depths) == 0 || len(depths) != len(values) {
		return nil
	}

	var gaps []GapInterval
	inGap := false
	gapStart := 0
	gapCount := 0

	for i, v := range values {
		if curves.Missing(v) {
			if !inGap {
				gapStart = i
				inGap = true
			}
			gapCount++
			continue
		}
		if inGap && gapCount >= minGapSize {
			gaps = append(gaps, GapInterval{Start: depths[gapStart], End: depths[i-1]})
		}
		inGap = false
		gapCount = 0
	}

	if inGap && gapCount >= minGapSize {
		gaps = append(gaps, GapInterval{Start: depths[gapStart], End: depths[len(depths)-1]})
	}
	return gaps
}

// Summarize builds a whole-table quality report from a normalized or
// merged curve table.
func Summarize(t *curves.Table, wellName string) *TableReport {
	depths := t.Depths()

	report := &TableReport{
		WellName:    wellName,
		DepthMin:    math.NaN(),
		DepthMax:    math.NaN(),
		TotalPoints: t.NumRows(),
		Curves:      make(map[string]CurveStats),
	}

	if len(depths) > 0 {
		report.DepthMin = stat.Min(depths)
		report.DepthMax = stat.Max(depths)
		report.TotalDepth = math.Abs(report.DepthMax - report.DepthMin)
	}
	if steps := stat.Diffs(depths); len(steps) > 0 {
		absSteps := make([]float64, len(steps))
		for i, s := range steps {
			absSteps[i] = math.Abs(s)
		}
		report.Step = stat.Median(absSteps)
	}

	available := t.CurveNames()
	report.Available = available

	haveUpper := make(map[string]bool, len(available))
	for _, name := range available {
		haveUpper[upper.String(name)] = true
	}
	for _, req := range RequiredCurves {
		if !haveUpper[req] {
			report.Missing = append(report.Missing, req)
		}
	}

	sum := 0.0
	for _, name := range available {
		col, _ := t.Column(name)
		stats := Describe(name, col)
		report.Curves[name] = stats
		sum += stats.QualityScore
	}
	if len(available) > 0 {
		report.OverallScore = sum / float64(len(available))
	}

	return report
}
