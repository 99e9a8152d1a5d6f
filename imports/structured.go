package imports

import (
	"encoding/json"
	"strconv"

	"github.com/arthur-debert/riceboard/rice"
	"github.com/arthur-debert/riceboard/types"
	"gopkg.in/yaml.v3"
)

// Record is one entry of the structured interchange format: a feature's
// scorable fields with every key optional and unknown keys ignored.
// Impact, confidence and effort pass through as-is - labels are not
// canonicalized here, resolution happens lazily at score time.
type Record struct {
	Name        *string     `json:"name" yaml:"name"`
	Description *string     `json:"description" yaml:"description"`
	Reach       interface{} `json:"reach" yaml:"reach"`
	Impact      types.Value `json:"impact" yaml:"impact"`
	Confidence  types.Value `json:"confidence" yaml:"confidence"`
	Effort      types.Value `json:"effort" yaml:"effort"`
}

// FromJSON normalizes a JSON array of records. A document that does not
// parse as an array yields zero features and one row-1 error.
func FromJSON(data []byte, opts Options) Result {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return structuralFailure("invalid JSON: " + err.Error())
	}
	return FromRecords(records, opts)
}

// FromYAML normalizes a YAML sequence of records, same rules as FromJSON
func FromYAML(data []byte, opts Options) Result {
	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return structuralFailure("invalid YAML: " + err.Error())
	}
	return FromRecords(records, opts)
}

// FromRecords applies the per-field import rules to already-decoded
// records. Rows are numbered from 1 in record order.
func FromRecords(records []Record, opts Options) Result {
	opts = opts.withDefaults()
	now := opts.Now()

	var result Result
	for i, rec := range records {
		rowNum := i + 1

		if rec.Name == nil || *rec.Name == "" {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Message: "Missing name"})
			continue
		}

		feature := types.Feature{
			ID:         opts.IDs.NewID(),
			Name:       *rec.Name,
			Impact:     rec.Impact,
			Confidence: rec.Confidence,
			Effort:     rec.Effort,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if rec.Description != nil {
			feature.Description = *rec.Description
		}

		if reach, ok, valid := coerceReach(rec.Reach); ok {
			if valid {
				feature.Reach = &reach
			} else {
				result.Errors = append(result.Errors, RowError{
					Row:     rowNum,
					Message: "Invalid reach: " + strconv.FormatFloat(reach, 'f', -1, 64),
				})
			}
		}

		result.Features = append(result.Features, feature)
	}
	return result
}

// coerceReach applies the numeric-parse coercion: numbers pass through,
// numeric strings parse, anything else stays unresolved. The third
// return value reports the range check.
func coerceReach(v interface{}) (reach float64, ok bool, valid bool) {
	switch n := v.(type) {
	case float64:
		reach, ok = n, true
	case int:
		reach, ok = float64(n), true
	case int64:
		reach, ok = float64(n), true
	case string:
		if parsed, err := strconv.ParseFloat(n, 64); err == nil {
			reach, ok = parsed, true
		}
	}
	if !ok {
		return 0, false, false
	}
	return reach, true, rice.IsValidReach(reach)
}
