package options

// MatchingStrategy selects the algorithm used to build a vertex matching
// at each coarsening level. See spec.md §4.4 and package matching.
type MatchingStrategy int

const (
	// Random pairs each unmatched vertex with the first unmatched
	// neighbor encountered in CSC order.
	Random MatchingStrategy = iota
	// HEM (heavy-edge matching) pairs each unmatched vertex with its
	// unmatched neighbor of maximum edge weight.
	HEM
	// HEMSR runs HEM, then a passive-aggressive brotherly/community
	// second pass over vertices left unmatched by HEM.
	HEMSR
	// HEMSRdeg is the Davis variant of HEMSR: the second pass only
	// triggers on vertices whose degree exceeds HighDegreeThreshold
	// times the graph's average degree.
	HEMSRdeg
)

// String renders the matching strategy name for logs and test output.
func (m MatchingStrategy) String() string {
	switch m {
	case Random:
		return "Random"
	case HEM:
		return "HEM"
	case HEMSR:
		return "HEMSR"
	case HEMSRdeg:
		return "HEMSRdeg"
	default:
		return "Unknown"
	}
}

// GuessCutType selects how the initial partition is produced on the
// coarsest graph. See spec.md §4.6 and package guess.
type GuessCutType int

const (
	// GuessQP seeds x at zero (vertex 0 at one), runs one full QP pass,
	// and lets refinement round the relaxed solution.
	GuessQP GuessCutType = iota
	// GuessRandom assigns each vertex an independent Bernoulli(1/2) side.
	GuessRandom
	// GuessNaturalOrder assigns the first half of vertices (by index) to
	// side 0 and the remainder to side 1.
	GuessNaturalOrder
)

// String renders the initial-guess strategy name.
func (g GuessCutType) String() string {
	switch g {
	case GuessQP:
		return "GuessQP"
	case GuessRandom:
		return "GuessRandom"
	case GuessNaturalOrder:
		return "GuessNaturalOrder"
	default:
		return "Unknown"
	}
}

// Options is the validated configuration record threaded through every
// stage of the pipeline. Construct with Default() and zero or more With*
// functions; always call Validate() before use — MultilevelDriver does
// this automatically and returns InvalidOption on failure.
//
// Fields correspond one-to-one with spec.md §4.1's option table.
type Options struct {
	// RandomSeed seeds the RNG used by Random matching and GuessRandom.
	// Zero is a valid seed (treated literally, not specially — unlike
	// lvlath/tsp's "0 means default" convention, a caller who wants a
	// non-deterministic run should seed from time themselves).
	RandomSeed int64

	// CoarsenLimit stops coarsening once the current level's vertex
	// count drops below this value. Must be >= 1.
	CoarsenLimit int

	// MatchingStrategy selects the matcher. See MatchingStrategy.
	MatchingStrategy MatchingStrategy

	// DoCommunityMatching permits 3-way "community" matches in the
	// passive-aggressive second pass of HEMSR/HEMSRdeg.
	DoCommunityMatching bool

	// HighDegreeThreshold gates the HEMSRdeg second pass: a matched
	// vertex's unmatched neighbors are only paired off when its degree
	// is >= HighDegreeThreshold * (nz/n). Must be > 0.
	//
	// This single field also covers what the original source called
	// davisBrotherlyThreshold under a separate name (spec.md §9).
	HighDegreeThreshold float64

	// GuessCutType selects the initial-cut strategy on the coarsest
	// graph. See GuessCutType.
	GuessCutType GuessCutType

	// NumDances is the number of FM/QP alternations run per level
	// during waterdance. Must be >= 0 (0 disables waterdance entirely).
	NumDances int

	// UseFM enables the FM boundary-heap refiner.
	UseFM bool
	// FMSearchDepth bounds the number of tentative moves per inner FM
	// pass. Must be >= 1.
	FMSearchDepth int
	// FMConsiderCount bounds how many top-of-heap candidates FM
	// examines, per side, at each step. Must be >= 1.
	FMConsiderCount int
	// FMMaxNumRefinements bounds the number of outer FM passes per
	// waterdance call. Must be >= 1.
	FMMaxNumRefinements int

	// UseQPGradProj enables the QP gradient-projection refiner.
	UseQPGradProj bool
	// GradProjTolerance is the max-coordinate-change stopping tolerance
	// for QPGradProj. Must be > 0.
	GradProjTolerance float64
	// GradprojIterationLimit bounds QPGradProj's outer loop. Must be >= 1.
	GradprojIterationLimit int

	// TargetSplit is the desired fraction of total vertex weight W on
	// side 0. Must be in [0, 1].
	TargetSplit float64
	// SoftSplitTolerance is the imbalance magnitude below which no
	// balance penalty is applied. Must be >= 0.
	SoftSplitTolerance float64
}

// Default returns the recommended baseline Options: HEMSR matching,
// GuessQP initial cut, FM and QP both enabled, one dance per level, and
// a 50/50 target split with a small soft tolerance.
//
// Complexity: O(1).
func Default() Options {
	return Options{
		RandomSeed:             1,
		CoarsenLimit:           50,
		MatchingStrategy:       HEMSR,
		DoCommunityMatching:    true,
		HighDegreeThreshold:    10.0,
		GuessCutType:           GuessQP,
		NumDances:              1,
		UseFM:                  true,
		FMSearchDepth:          50,
		FMConsiderCount:        2,
		FMMaxNumRefinements:    20,
		UseQPGradProj:          true,
		GradProjTolerance:      1e-4,
		GradprojIterationLimit: 50,
		TargetSplit:            0.5,
		SoftSplitTolerance:     0.01,
	}
}

// Option mutates an Options value in place; With* constructors below
// return Option closures applied left to right by Apply.
type Option func(*Options)

// Apply runs each Option against a copy of o and returns the result.
//
// Complexity: O(len(opts)).
func (o Options) Apply(opts ...Option) Options {
	result := o
	for _, opt := range opts {
		opt(&result)
	}

	return result
}

// WithRandomSeed sets RandomSeed.
func WithRandomSeed(seed int64) Option {
	return func(o *Options) { o.RandomSeed = seed }
}

// WithCoarsenLimit sets CoarsenLimit.
func WithCoarsenLimit(limit int) Option {
	return func(o *Options) { o.CoarsenLimit = limit }
}

// WithMatchingStrategy sets MatchingStrategy.
func WithMatchingStrategy(m MatchingStrategy) Option {
	return func(o *Options) { o.MatchingStrategy = m }
}

// WithCommunityMatching enables or disables 3-way community matches.
func WithCommunityMatching(enabled bool) Option {
	return func(o *Options) { o.DoCommunityMatching = enabled }
}

// WithHighDegreeThreshold sets HighDegreeThreshold.
func WithHighDegreeThreshold(t float64) Option {
	return func(o *Options) { o.HighDegreeThreshold = t }
}

// WithGuessCutType sets GuessCutType.
func WithGuessCutType(g GuessCutType) Option {
	return func(o *Options) { o.GuessCutType = g }
}

// WithNumDances sets NumDances.
func WithNumDances(n int) Option {
	return func(o *Options) { o.NumDances = n }
}

// WithFM enables or disables the FM refiner and optionally tunes its
// budgets (depth, consider-count, max refinements). Pass zero for any
// budget to leave it unchanged.
func WithFM(enabled bool, depth, considerCount, maxRefinements int) Option {
	return func(o *Options) {
		o.UseFM = enabled
		if depth > 0 {
			o.FMSearchDepth = depth
		}
		if considerCount > 0 {
			o.FMConsiderCount = considerCount
		}
		if maxRefinements > 0 {
			o.FMMaxNumRefinements = maxRefinements
		}
	}
}

// WithQPGradProj enables or disables the QP refiner and optionally tunes
// its tolerance and iteration limit. Pass zero for either to leave it
// unchanged.
func WithQPGradProj(enabled bool, tolerance float64, iterationLimit int) Option {
	return func(o *Options) {
		o.UseQPGradProj = enabled
		if tolerance > 0 {
			o.GradProjTolerance = tolerance
		}
		if iterationLimit > 0 {
			o.GradprojIterationLimit = iterationLimit
		}
	}
}

// WithTargetSplit sets TargetSplit.
func WithTargetSplit(split float64) Option {
	return func(o *Options) { o.TargetSplit = split }
}

// WithSoftSplitTolerance sets SoftSplitTolerance.
func WithSoftSplitTolerance(tol float64) Option {
	return func(o *Options) { o.SoftSplitTolerance = tol }
}
