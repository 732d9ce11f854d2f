package analysis

import "testing"

func TestAmbiguities(t *testing.T) {
	// "ab"+"c" and "a"+"bc" spell the same thing when run together
	out := Ambiguities([]string{"a", "ab", "bc", "c"}, 2)
	var hit *Ambiguity
	for i := range out {
		if out[i].Joined == "abc" {
			hit = &out[i]
		}
	}
	if hit == nil {
		t.Fatalf("no ambiguity for abc in %v", out)
	}
	if len(hit.Readings) != 2 {
		t.Fatalf("readings = %v", hit.Readings)
	}
}

func TestAmbiguitiesNoFalsePositives(t *testing.T) {
	if out := Ambiguities([]string{"x", "yy"}, 2); len(out) != 0 {
		t.Fatalf("unexpected ambiguities: %v", out)
	}
}

func TestAmbiguitiesDegenerateInputs(t *testing.T) {
	if out := Ambiguities(nil, 3); out != nil {
		t.Fatalf("nil words: %v", out)
	}
	if out := Ambiguities([]string{"a"}, 0); out != nil {
		t.Fatalf("k=0: %v", out)
	}
}
