// Package export renders feature records back into the interchange
// formats. Exports carry only the user-entered fields: identifiers are
// session-local, timestamps are bookkeeping, and the score is always
// derivable, so none of them are emitted.
package export

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/arthur-debert/riceboard/delimited"
	"github.com/arthur-debert/riceboard/types"
	"gopkg.in/yaml.v3"
)

// Header is the delimited-export column order
var Header = []string{"name", "reach", "impact", "confidence", "effort", "description"}

// ToDelimited renders the features, in the order given, as delimited
// text with a header row. Label-backed fields emit their label, numeric
// fields their decimal text; cells are quoted only when they contain a
// comma or a quote.
func ToDelimited(features []types.Feature) string {
	var b strings.Builder
	b.WriteString(delimited.FormatRow(Header))
	for _, f := range features {
		b.WriteString(delimited.FormatRow([]string{
			f.Name,
			reachText(f.Reach),
			f.Impact.String(),
			f.Confidence.String(),
			f.Effort.String(),
			f.Description,
		}))
	}
	return b.String()
}

// ToJSON renders the features as an indented JSON array of records
func ToJSON(features []types.Feature) ([]byte, error) {
	data, err := json.MarshalIndent(toRecords(features), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// ToYAML renders the features as a YAML sequence of records
func ToYAML(features []types.Feature) ([]byte, error) {
	return yaml.Marshal(toRecords(features))
}

// record mirrors imports.Record on the way out, with every undefined
// field omitted
type record struct {
	Name        string      `json:"name,omitempty" yaml:"name,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Reach       *float64    `json:"reach,omitempty" yaml:"reach,omitempty"`
	Impact      types.Value `json:"impact,omitzero" yaml:"impact,omitempty"`
	Confidence  types.Value `json:"confidence,omitzero" yaml:"confidence,omitempty"`
	Effort      types.Value `json:"effort,omitzero" yaml:"effort,omitempty"`
}

func toRecords(features []types.Feature) []record {
	records := make([]record, len(features))
	for i, f := range features {
		records[i] = record{
			Name:        f.Name,
			Description: f.Description,
			Reach:       f.Reach,
			Impact:      f.Impact,
			Confidence:  f.Confidence,
			Effort:      f.Effort,
		}
	}
	return records
}

func reachText(reach *float64) string {
	if reach == nil {
		return ""
	}
	return strconv.FormatFloat(*reach, 'f', -1, 64)
}
