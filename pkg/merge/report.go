package merge

// CurveProvenance records which source contributed a merged curve and
// how the gaps were filled.
//
// Coverage is recomputed after gap filling, while QCScore is the primary
// source's pre-fill composite score. The asymmetry is deliberate: the
// score describes the source that was chosen, the coverage describes the
// curve that was delivered.
type CurveProvenance struct {
	SourceFile     string  `yaml:"source_file"`
	Coverage       float64 `yaml:"coverage"`
	QCScore        float64 `yaml:"qc_score"`
	GapsFilledFrom string  `yaml:"gaps_filled_from,omitempty"`
	GapsCount      int     `yaml:"gaps_count"`
}

// GridInfo describes the master depth grid of a merge.
type GridInfo struct {
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Step   float64 `yaml:"step"`
	Points int     `yaml:"points"`
}

// Report is the complete provenance and quality record of one merge.
// Immutable once returned; owned by the caller.
type Report struct {
	Curves         map[string]CurveProvenance `yaml:"curves"`
	MasterDepth    GridInfo                   `yaml:"master_depth"`
	FilesProcessed []string                   `yaml:"files_processed"`
	Warnings       []string                   `yaml:"warnings,omitempty"`
	WellName       string                     `yaml:"well_name"`

	// CurveOrder lists the curve names in deterministic first-seen
	// order, for rendering the Curves map reproducibly.
	CurveOrder []string `yaml:"-"`
}

// ValidateSameWell checks that every source declares the same well and
// returns the declared names in input order.
func ValidateSameWell(sources []Source) (bool, []string) {
	names := make([]string, len(sources))
	distinct := make(map[string]bool)
	for i, s := range sources {
		names[i] = wellNameOf(s)
		distinct[names[i]] = true
	}
	return len(distinct) <= 1, names
}
