package options

import "fmt"

// Validate checks every numeric field against its documented domain and
// returns a wrapped ErrInvalidOption naming the first offending field, or
// nil if o is fully valid.
//
// Validation never allocates beyond the returned error, and it must run
// before any level, matching, or QPDelta is allocated — MultilevelDriver
// enforces this ordering (spec.md §4.1, §4.12 step 1).
//
// Complexity: O(1).
func Validate(o Options) error {
	if o.CoarsenLimit < 1 {
		return fmt.Errorf("%w: CoarsenLimit must be >= 1, got %d", ErrInvalidOption, o.CoarsenLimit)
	}
	if o.MatchingStrategy < Random || o.MatchingStrategy > HEMSRdeg {
		return fmt.Errorf("%w: unknown MatchingStrategy %d", ErrInvalidOption, o.MatchingStrategy)
	}
	if o.HighDegreeThreshold <= 0 {
		return fmt.Errorf("%w: HighDegreeThreshold must be > 0, got %v", ErrInvalidOption, o.HighDegreeThreshold)
	}
	if o.GuessCutType < GuessQP || o.GuessCutType > GuessNaturalOrder {
		return fmt.Errorf("%w: unknown GuessCutType %d", ErrInvalidOption, o.GuessCutType)
	}
	if o.NumDances < 0 {
		return fmt.Errorf("%w: NumDances must be >= 0, got %d", ErrInvalidOption, o.NumDances)
	}
	if o.UseFM {
		if o.FMSearchDepth < 1 {
			return fmt.Errorf("%w: FMSearchDepth must be >= 1, got %d", ErrInvalidOption, o.FMSearchDepth)
		}
		if o.FMConsiderCount < 1 {
			return fmt.Errorf("%w: FMConsiderCount must be >= 1, got %d", ErrInvalidOption, o.FMConsiderCount)
		}
		if o.FMMaxNumRefinements < 1 {
			return fmt.Errorf("%w: FMMaxNumRefinements must be >= 1, got %d", ErrInvalidOption, o.FMMaxNumRefinements)
		}
	}
	if o.UseQPGradProj {
		if o.GradProjTolerance <= 0 {
			return fmt.Errorf("%w: GradProjTolerance must be > 0, got %v", ErrInvalidOption, o.GradProjTolerance)
		}
		if o.GradprojIterationLimit < 1 {
			return fmt.Errorf("%w: GradprojIterationLimit must be >= 1, got %d", ErrInvalidOption, o.GradprojIterationLimit)
		}
	}
	if o.TargetSplit < 0 || o.TargetSplit > 1 {
		return fmt.Errorf("%w: TargetSplit must be in [0,1], got %v", ErrInvalidOption, o.TargetSplit)
	}
	if o.SoftSplitTolerance < 0 {
		return fmt.Errorf("%w: SoftSplitTolerance must be >= 0, got %v", ErrInvalidOption, o.SoftSplitTolerance)
	}

	return nil
}
