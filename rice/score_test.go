package rice

import (
	"math"
	"testing"

	"github.com/arthur-debert/riceboard/types"
)

func floatPtr(f float64) *float64 { return &f }

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name    string
		feature types.Feature
		want    float64
		wantOK  bool
	}{
		{
			name: "all labels resolve",
			feature: types.Feature{
				Reach:      floatPtr(100),
				Impact:     types.LabelValue("High"),
				Confidence: types.LabelValue("80%"),
				Effort:     types.LabelValue("M"),
			},
			// 100 * 2 * 0.8 / 2
			want:   80,
			wantOK: true,
		},
		{
			name: "numeric fields pass through",
			feature: types.Feature{
				Reach:      floatPtr(50),
				Impact:     types.NumberValue(3),
				Confidence: types.NumberValue(0.5),
				Effort:     types.NumberValue(4),
			},
			want:   18.75,
			wantOK: true,
		},
		{
			name: "labels resolve case-insensitively",
			feature: types.Feature{
				Reach:      floatPtr(100),
				Impact:     types.LabelValue("high"),
				Confidence: types.LabelValue("80%"),
				Effort:     types.LabelValue("m"),
			},
			want:   80,
			wantOK: true,
		},
		{
			name: "missing reach",
			feature: types.Feature{
				Impact:     types.LabelValue("High"),
				Confidence: types.LabelValue("80%"),
				Effort:     types.LabelValue("M"),
			},
		},
		{
			name: "negative reach",
			feature: types.Feature{
				Reach:      floatPtr(-1),
				Impact:     types.LabelValue("High"),
				Confidence: types.LabelValue("80%"),
				Effort:     types.LabelValue("M"),
			},
		},
		{
			name: "unknown impact label",
			feature: types.Feature{
				Reach:      floatPtr(100),
				Impact:     types.LabelValue("Gigantic"),
				Confidence: types.LabelValue("80%"),
				Effort:     types.LabelValue("M"),
			},
		},
		{
			name: "missing confidence",
			feature: types.Feature{
				Reach:  floatPtr(100),
				Impact: types.LabelValue("High"),
				Effort: types.LabelValue("M"),
			},
		},
		{
			name: "zero effort",
			feature: types.Feature{
				Reach:      floatPtr(100),
				Impact:     types.LabelValue("High"),
				Confidence: types.LabelValue("80%"),
				Effort:     types.NumberValue(0),
			},
		},
		{
			name: "negative effort",
			feature: types.Feature{
				Reach:      floatPtr(100),
				Impact:     types.LabelValue("High"),
				Confidence: types.LabelValue("80%"),
				Effort:     types.NumberValue(-2),
			},
		},
		{
			name:    "fully empty record",
			feature: types.Feature{Name: "empty"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ComputeScore(tt.feature)
			if ok != tt.wantOK {
				t.Fatalf("ComputeScore() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ComputeScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeScoreNeverReturnsNonFinite(t *testing.T) {
	huge := types.Feature{
		Reach:      floatPtr(math.MaxFloat64),
		Impact:     types.NumberValue(math.MaxFloat64),
		Confidence: types.NumberValue(math.MaxFloat64),
		Effort:     types.NumberValue(math.SmallestNonzeroFloat64),
	}
	if score, ok := ComputeScore(huge); ok {
		t.Errorf("expected undefined score for overflowing inputs, got %v", score)
	}

	infReach := types.Feature{
		Reach:      floatPtr(math.Inf(1)),
		Impact:     types.NumberValue(1),
		Confidence: types.NumberValue(1),
		Effort:     types.NumberValue(1),
	}
	if score, ok := ComputeScore(infReach); ok && (math.IsInf(score, 0) || math.IsNaN(score)) {
		t.Errorf("ComputeScore() leaked a non-finite score %v", score)
	}
}
