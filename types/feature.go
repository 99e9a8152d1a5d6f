package types

import "time"

// Feature is one prioritizable item in the working set.
//
// Reach is a plain optional count (per ReachUnit); impact, confidence and
// effort each carry the label-or-numeric Value union. The RICE score is
// never stored on the record - it is always recomputed from these four
// inputs, so a stale persisted score can never leak into the ranking.
type Feature struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Reach       *float64  `json:"reach,omitempty" yaml:"reach,omitempty"`
	Impact      Value     `json:"impact,omitzero" yaml:"impact,omitempty"`
	Confidence  Value     `json:"confidence,omitzero" yaml:"confidence,omitempty"`
	Effort      Value     `json:"effort,omitzero" yaml:"effort,omitempty"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// Clone returns a copy that shares no pointers with the receiver
func (f Feature) Clone() Feature {
	out := f
	if f.Reach != nil {
		r := *f.Reach
		out.Reach = &r
	}
	return out
}

// CloneFeatures deep-copies a slice of features
func CloneFeatures(features []Feature) []Feature {
	out := make([]Feature, len(features))
	for i, f := range features {
		out[i] = f.Clone()
	}
	return out
}
