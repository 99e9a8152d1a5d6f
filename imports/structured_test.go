package imports

import (
	"strings"
	"testing"

	"github.com/arthur-debert/riceboard/types"
)

func TestFromJSON(t *testing.T) {
	data := []byte(`[
		{"name": "Search", "reach": 100, "impact": "High", "confidence": 0.8, "effort": "M", "description": "Full text"},
		{"name": "Export", "reach": "250", "impact": 2}
	]`)
	result := FromJSON(data, testOptions())

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Features) != 2 {
		t.Fatalf("expected 2 features, got %d", len(result.Features))
	}

	first := result.Features[0]
	if first.Name != "Search" || first.Description != "Full text" {
		t.Errorf("name/description = %q/%q", first.Name, first.Description)
	}
	if first.Reach == nil || *first.Reach != 100 {
		t.Errorf("reach = %v, want 100", first.Reach)
	}
	// Labels pass through untouched; resolution is lazy
	if first.Impact != types.LabelValue("High") {
		t.Errorf("impact = %+v", first.Impact)
	}
	if first.Confidence != types.NumberValue(0.8) {
		t.Errorf("confidence = %+v", first.Confidence)
	}

	second := result.Features[1]
	if second.Reach == nil || *second.Reach != 250 {
		t.Errorf("string reach should coerce numerically, got %v", second.Reach)
	}
	if second.Impact != types.NumberValue(2) {
		t.Errorf("impact = %+v, want numeric 2", second.Impact)
	}
	if second.Effort.IsSet() {
		t.Error("missing effort key should stay unresolved")
	}
}

func TestFromJSONLabelsPassThroughUnvalidated(t *testing.T) {
	data := []byte(`[{"name": "X", "impact": "NotARealLabel"}]`)
	result := FromJSON(data, testOptions())

	if len(result.Errors) != 0 {
		t.Fatalf("structured labels are not validated at import, got %v", result.Errors)
	}
	if result.Features[0].Impact != types.LabelValue("NotARealLabel") {
		t.Errorf("impact = %+v, want verbatim label", result.Features[0].Impact)
	}
}

func TestFromJSONMalformedDocument(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax error", `[{"name": `},
		{"not an array", `{"name": "X"}`},
		{"scalar", `42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FromJSON([]byte(tt.data), testOptions())
			if len(result.Features) != 0 {
				t.Errorf("expected zero features, got %d", len(result.Features))
			}
			if len(result.Errors) != 1 || result.Errors[0].Row != 1 {
				t.Fatalf("expected a single row-1 error, got %v", result.Errors)
			}
			if !strings.Contains(result.Errors[0].Message, "invalid JSON") {
				t.Errorf("message = %q", result.Errors[0].Message)
			}
		})
	}
}

func TestFromJSONMissingNameRejectsRecord(t *testing.T) {
	data := []byte(`[{"reach": 10}, {"name": "Kept"}]`)
	result := FromJSON(data, testOptions())

	if len(result.Features) != 1 || result.Features[0].Name != "Kept" {
		t.Fatalf("expected only the named record, got %+v", result.Features)
	}
	if len(result.Errors) != 1 || result.Errors[0].Row != 1 {
		t.Fatalf("expected one row-1 rejection, got %v", result.Errors)
	}
}

func TestFromJSONUnknownKeysIgnored(t *testing.T) {
	data := []byte(`[{"name": "X", "score": 999, "id": "evil", "color": "red"}]`)
	result := FromJSON(data, testOptions())

	if len(result.Features) != 1 {
		t.Fatalf("expected 1 feature, got %d", len(result.Features))
	}
	if result.Features[0].ID != "feat-1" {
		t.Errorf("imported record must get a fresh identifier, got %q", result.Features[0].ID)
	}
}

func TestFromYAML(t *testing.T) {
	data := []byte(`
- name: Search
  reach: 100
  impact: High
  confidence: 80%
  effort: M
- name: Export
  reach: 250
`)
	result := FromYAML(data, testOptions())

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Features) != 2 {
		t.Fatalf("expected 2 features, got %d", len(result.Features))
	}
	if result.Features[0].Confidence != types.LabelValue("80%") {
		t.Errorf("confidence = %+v", result.Features[0].Confidence)
	}
	if result.Features[1].Reach == nil || *result.Features[1].Reach != 250 {
		t.Errorf("reach = %v, want 250", result.Features[1].Reach)
	}
}

func TestFromYAMLMalformedDocument(t *testing.T) {
	result := FromYAML([]byte("{{not yaml"), testOptions())
	if len(result.Features) != 0 || len(result.Errors) != 1 || result.Errors[0].Row != 1 {
		t.Fatalf("expected a single row-1 error, got %+v", result)
	}
}
