package rice

import (
	"testing"

	"github.com/arthur-debert/riceboard/types"
)

func scored(name string, reach float64, impact, confidence, effort string) types.Feature {
	return types.Feature{
		Name:       name,
		Reach:      floatPtr(reach),
		Impact:     types.LabelValue(impact),
		Confidence: types.LabelValue(confidence),
		Effort:     types.LabelValue(effort),
	}
}

func TestSortedOrdersByScoreDescending(t *testing.T) {
	hundred := scored("hundred", 50, "High", "100%", "S")  // 50*2*1/1 = 100
	eighty := scored("eighty", 100, "High", "80%", "M")    // 100*2*0.8/2 = 80
	forty := scored("forty", 80, "High", "100%", "L")      // 80*2*1/4 = 40
	undefined := types.Feature{Name: "undefined"}

	got := Sorted([]types.Feature{undefined, forty, hundred, eighty})
	wantOrder := []string{"hundred", "eighty", "forty", "undefined"}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Errorf("position %d = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestCompareTieBreakByEffort(t *testing.T) {
	// Equal scores (80) with efforts 1 and 2: lower effort wins
	small := scored("small", 40, "High", "100%", "S") // 40*2*1/1 = 80
	medium := scored("medium", 80, "High", "100%", "M")

	if Compare(small, medium) >= 0 {
		t.Error("expected the effort-1 feature to sort before the effort-2 feature")
	}
}

func TestCompareTieBreakByImpact(t *testing.T) {
	// Equal scores and efforts, impacts 2 and 1: higher impact wins
	high := scored("high", 50, "High", "100%", "M")     // 50*2*1/2 = 50
	medium := scored("medium", 100, "Medium", "100%", "M") // 100*1*1/2 = 50

	if Compare(high, medium) >= 0 {
		t.Error("expected the higher-impact feature to sort first")
	}
}

func TestCompareUnresolvedEffortLosesTieBreak(t *testing.T) {
	// Both have undefined scores; resolved effort beats unresolvable effort
	resolved := types.Feature{Name: "resolved", Effort: types.LabelValue("S")}
	unresolved := types.Feature{Name: "unresolved", Effort: types.LabelValue("??")}

	if Compare(resolved, unresolved) >= 0 {
		t.Error("expected resolvable effort to win the tie-break")
	}
}

func TestCompareUnresolvedImpactLosesTieBreak(t *testing.T) {
	withImpact := types.Feature{Name: "a", Impact: types.LabelValue("Low")}
	without := types.Feature{Name: "b"}

	if Compare(withImpact, without) >= 0 {
		t.Error("expected resolvable impact to win the tie-break")
	}
}

func TestCompareFallsBackToName(t *testing.T) {
	a := types.Feature{Name: "Alpha"}
	b := types.Feature{Name: "beta"}

	// Case-sensitive byte order puts "Alpha" before "beta"
	if Compare(a, b) >= 0 {
		t.Error("expected name ascending as the final tie-break")
	}
	if Compare(a, a) != 0 {
		t.Error("expected identical records to compare equal")
	}
}

func TestSortedIsDeterministicForEmptyRecords(t *testing.T) {
	a := types.Feature{Name: ""}
	b := types.Feature{Name: ""}
	got := Sorted([]types.Feature{a, b})
	if len(got) != 2 {
		t.Fatalf("Sorted() dropped records: %d", len(got))
	}
}

func TestSortedDoesNotMutateInput(t *testing.T) {
	first := scored("low", 10, "Low", "50%", "XL")
	second := scored("high", 100, "Massive", "100%", "XS")
	input := []types.Feature{first, second}

	_ = Sorted(input)

	if input[0].Name != "low" || input[1].Name != "high" {
		t.Error("Sorted() reordered the input slice")
	}
}
