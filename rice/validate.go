package rice

import (
	"math"

	"github.com/arthur-debert/riceboard/types"
)

// Validation predicates for individual field values. They back UI
// warnings and import-row checks and are usable without computing a
// score; they report acceptance, they never return errors.
//
// Note the deliberate asymmetry with the lenient resolution path: label
// matching here is case-sensitive and alias-free, and a numeric effort
// of zero or less is rejected outright rather than quietly yielding an
// undefined score.

// IsValidReach reports whether v is a finite number greater than or
// equal to zero
func IsValidReach(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// IsAllowedImpact reports whether v is any number or exactly one of the
// impact scale's labels
func IsAllowedImpact(v types.Value) bool {
	switch v.Kind {
	case types.ValueNumber:
		return true
	case types.ValueLabel:
		return types.ImpactScale.Contains(v.Label)
	default:
		return false
	}
}

// IsAllowedConfidence reports whether v is any number or exactly one of
// the confidence scale's labels
func IsAllowedConfidence(v types.Value) bool {
	switch v.Kind {
	case types.ValueNumber:
		return true
	case types.ValueLabel:
		return types.ConfidenceScale.Contains(v.Label)
	default:
		return false
	}
}

// IsAllowedEffort reports whether v is a number greater than zero or
// exactly one of the effort scale's labels
func IsAllowedEffort(v types.Value) bool {
	switch v.Kind {
	case types.ValueNumber:
		return v.Number > 0
	case types.ValueLabel:
		return types.EffortScale.Contains(v.Label)
	default:
		return false
	}
}
