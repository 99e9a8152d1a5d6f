package types

import "strings"

// Scale is a fixed mapping from human labels to numeric weights for one
// scoring dimension. Scales are static and not user-editable.
type Scale struct {
	// Name is the dimension this scale belongs to ("impact", etc.)
	Name string

	// labels preserves declaration order for display purposes
	labels []string

	// weights maps lowercased label to its numeric weight
	weights map[string]float64

	// canonical maps lowercased label (including aliases) back to the
	// canonical label as declared
	canonical map[string]string

	// aliases maps lowercased alternate spellings to canonical labels,
	// e.g. "80" -> "80%" for the confidence scale
	aliases map[string]string
}

// ReachUnit is the domain unit reach counts are expressed in
const ReachUnit = "customers per quarter"

// ImpactScale maps impact labels to their multipliers
var ImpactScale = newScale("impact", []scaleEntry{
	{"Massive", 3},
	{"High", 2},
	{"Medium", 1},
	{"Low", 0.5},
	{"Minimal", 0.25},
}, nil)

// ConfidenceScale maps confidence labels to their multipliers.
// The bare numbers "100", "80" and "50" are accepted as shorthand
// for the percentage labels.
var ConfidenceScale = newScale("confidence", []scaleEntry{
	{"100%", 1.0},
	{"80%", 0.8},
	{"50%", 0.5},
}, map[string]string{
	"100": "100%",
	"80":  "80%",
	"50":  "50%",
})

// EffortScale maps T-shirt effort sizes to person-week weights
var EffortScale = newScale("effort", []scaleEntry{
	{"XS", 0.5},
	{"S", 1},
	{"M", 2},
	{"L", 4},
	{"XL", 8},
}, nil)

type scaleEntry struct {
	label  string
	weight float64
}

func newScale(name string, entries []scaleEntry, aliases map[string]string) *Scale {
	s := &Scale{
		Name:      name,
		weights:   make(map[string]float64, len(entries)),
		canonical: make(map[string]string, len(entries)+len(aliases)),
		aliases:   make(map[string]string, len(aliases)),
	}
	for _, e := range entries {
		key := strings.ToLower(e.label)
		s.labels = append(s.labels, e.label)
		s.weights[key] = e.weight
		s.canonical[key] = e.label
	}
	for alias, label := range aliases {
		key := strings.ToLower(alias)
		s.aliases[key] = label
		s.canonical[key] = label
	}
	return s
}

// Labels returns the canonical labels in declaration order
func (s *Scale) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

// Weight resolves a label to its numeric weight. Matching is
// case-insensitive and accepts the scale's aliases.
func (s *Scale) Weight(label string) (float64, bool) {
	key := strings.ToLower(label)
	if canon, ok := s.aliases[key]; ok {
		key = strings.ToLower(canon)
	}
	w, ok := s.weights[key]
	return w, ok
}

// Canonical resolves a label or alias to its canonical declared form,
// case-insensitively. Returns false if the label is not on the scale.
func (s *Scale) Canonical(label string) (string, bool) {
	canon, ok := s.canonical[strings.ToLower(label)]
	return canon, ok
}

// Contains reports whether label exactly matches one of the scale's
// canonical labels. Unlike Weight this is case-sensitive; it backs the
// strict validation predicates rather than lenient resolution.
func (s *Scale) Contains(label string) bool {
	for _, l := range s.labels {
		if l == label {
			return true
		}
	}
	return false
}
