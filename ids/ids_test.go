package ids

import "testing"

func TestSequenceGenerator(t *testing.T) {
	gen := NewSequence("feat")
	if got := gen.NewID(); got != "feat-1" {
		t.Errorf("first id = %q, want feat-1", got)
	}
	if got := gen.NewID(); got != "feat-2" {
		t.Errorf("second id = %q, want feat-2", got)
	}
}

func TestUUIDGeneratorProducesUniqueIDs(t *testing.T) {
	gen := NewUUID()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := gen.NewID()
		if id == "" {
			t.Fatal("generated an empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
