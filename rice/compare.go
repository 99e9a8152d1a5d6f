package rice

import (
	"math"
	"slices"
	"strings"

	"github.com/arthur-debert/riceboard/types"
)

// Compare is a total-order comparator over features, for use with
// slices.SortStableFunc. It returns a negative number when a sorts before
// b, positive when after, zero when equal.
//
// Order: score descending (undefined score sorts as -Inf), then resolved
// effort ascending (unresolvable effort sorts as +Inf), then resolved
// impact descending (unresolvable impact sorts as -Inf), then name
// ascending with case-sensitive byte order. The final name key makes the
// order fully deterministic even among identical empty records.
func Compare(a, b types.Feature) int {
	if c := compareFloat(scoreKey(b), scoreKey(a)); c != 0 {
		return c
	}
	if c := compareFloat(effortKey(a), effortKey(b)); c != 0 {
		return c
	}
	if c := compareFloat(impactKey(b), impactKey(a)); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}

// Sorted returns a new slice with the features in ranking order; the
// input slice is left untouched
func Sorted(features []types.Feature) []types.Feature {
	out := types.CloneFeatures(features)
	slices.SortStableFunc(out, Compare)
	return out
}

func scoreKey(f types.Feature) float64 {
	score, ok := ComputeScore(f)
	if !ok {
		return math.Inf(-1)
	}
	return score
}

func effortKey(f types.Feature) float64 {
	effort, ok := f.Effort.Resolve(types.EffortScale)
	if !ok {
		return math.Inf(1)
	}
	return effort
}

func impactKey(f types.Feature) float64 {
	impact, ok := f.Impact.Resolve(types.ImpactScale)
	if !ok {
		return math.Inf(-1)
	}
	return impact
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
