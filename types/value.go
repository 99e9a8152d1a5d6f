package types

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ValueKind discriminates the two representations a scorable field can hold
type ValueKind int

const (
	// ValueUnset means the field has not been filled in
	ValueUnset ValueKind = iota

	// ValueNumber means the field holds a raw numeric weight
	ValueNumber

	// ValueLabel means the field holds a scale label (e.g. "High", "80%")
	ValueLabel
)

// Value is the label-or-numeric union used for impact, confidence and effort.
// Manual entry stores labels while imported numeric data passes through
// unchanged; both branches must resolve to the same weight via Resolve.
type Value struct {
	Kind   ValueKind
	Number float64
	Label  string
}

// NumberValue creates a Value holding a raw number
func NumberValue(n float64) Value {
	return Value{Kind: ValueNumber, Number: n}
}

// LabelValue creates a Value holding a scale label
func LabelValue(label string) Value {
	return Value{Kind: ValueLabel, Label: label}
}

// IsSet reports whether the value has been filled in
func (v Value) IsSet() bool {
	return v.Kind != ValueUnset
}

// IsZero reports whether the value is unset.
// Used by encoding/json (omitzero) and yaml.v3 (omitempty).
func (v Value) IsZero() bool {
	return v.Kind == ValueUnset
}

// Resolve converts the value to its canonical numeric weight using the
// given scale for the label branch. This is the single resolution path
// shared by scoring, comparison and validation.
func (v Value) Resolve(scale *Scale) (float64, bool) {
	switch v.Kind {
	case ValueNumber:
		return v.Number, true
	case ValueLabel:
		return scale.Weight(v.Label)
	default:
		return 0, false
	}
}

// String renders the value the way exports emit it: labels as-is,
// numbers as their decimal text, unset as the empty string
func (v Value) String() string {
	switch v.Kind {
	case ValueNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case ValueLabel:
		return v.Label
	default:
		return ""
	}
}

// MarshalJSON emits the number branch as a JSON number and the label
// branch as a JSON string; unset values marshal as null
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueNumber:
		return json.Marshal(v.Number)
	case ValueLabel:
		return json.Marshal(v.Label)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a number, a string, or null
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value{}
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = NumberValue(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = LabelValue(s)
		return nil
	}
	return fmt.Errorf("value must be a number or a string, got %s", data)
}

// MarshalYAML mirrors the JSON representation
func (v Value) MarshalYAML() (interface{}, error) {
	switch v.Kind {
	case ValueNumber:
		return v.Number, nil
	case ValueLabel:
		return v.Label, nil
	default:
		return nil, nil
	}
}

// UnmarshalYAML accepts a scalar number or string node
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*v = Value{}
		return nil
	}
	var n float64
	if err := node.Decode(&n); err == nil {
		*v = NumberValue(n)
		return nil
	}
	var s string
	if err := node.Decode(&s); err == nil {
		*v = LabelValue(s)
		return nil
	}
	return fmt.Errorf("value must be a number or a string, got %q", node.Value)
}
