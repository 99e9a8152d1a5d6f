// Package rice implements the scoring-and-ranking engine: the RICE score
// calculator, the deterministic ranking comparator and the field-level
// validation predicates. Everything here is pure - functions take feature
// snapshots and return derived values, never mutating their inputs.
package rice

import (
	"math"

	"github.com/arthur-debert/riceboard/types"
)

// ComputeScore computes the RICE score (reach x impact x confidence /
// effort) at full floating-point precision.
//
// The second return value is false when the score is undefined: reach
// unset or negative, any of impact/confidence/effort unset or holding an
// unrecognized label, effort resolving to zero or less, or a non-finite
// result. An undefined score is a normal state, not an error - the
// feature stays in the working set and simply sorts last.
func ComputeScore(f types.Feature) (float64, bool) {
	if f.Reach == nil || *f.Reach < 0 {
		return 0, false
	}
	impact, ok := f.Impact.Resolve(types.ImpactScale)
	if !ok {
		return 0, false
	}
	confidence, ok := f.Confidence.Resolve(types.ConfidenceScale)
	if !ok {
		return 0, false
	}
	effort, ok := f.Effort.Resolve(types.EffortScale)
	if !ok || effort <= 0 {
		return 0, false
	}
	score := (*f.Reach * impact * confidence) / effort
	if math.IsInf(score, 0) || math.IsNaN(score) {
		return 0, false
	}
	return score, true
}
