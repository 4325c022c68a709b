package textvec

import (
	"math"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"lowercases", "Kitchen REMODEL", []string{"kitchen", "remodel"}},
		{"strips punctuation", "deck, patio & fence!", []string{"deck", "patio", "fence"}},
		{"drops single chars", "a b kitchen c", []string{"kitchen"}},
		{"keeps digits", "24 hour service", []string{"24", "hour", "service"}},
		{"empty", "", nil},
		{"only punctuation", "?!,.", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tc.input, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("token %d: got %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestVectorize_CountsOccurrences(t *testing.T) {
	v := Vectorize([]string{"tile", "tile", "grout"})

	if v["tile"] != 2 {
		t.Errorf("tile count: got %d, want 2", v["tile"])
	}
	if v["grout"] != 1 {
		t.Errorf("grout count: got %d, want 1", v["grout"])
	}
}

func TestCosine_IdenticalVectorsScoreOne(t *testing.T) {
	v := FromText("kitchen remodel with custom cabinets")

	got := Cosine(v, v)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Cosine(v, v) = %f, want 1.0", got)
	}
}

func TestCosine_DisjointVectorsScoreZero(t *testing.T) {
	a := FromText("kitchen remodel")
	b := FromText("roof repair")

	if got := Cosine(a, b); got != 0 {
		t.Errorf("Cosine(disjoint) = %f, want 0", got)
	}
}

func TestCosine_ZeroVector(t *testing.T) {
	a := FromText("")
	b := FromText("bathroom tile")

	if got := Cosine(a, b); got != 0 {
		t.Errorf("Cosine(zero, b) = %f, want 0", got)
	}
	if got := Cosine(a, a); got != 0 {
		t.Errorf("Cosine(zero, zero) = %f, want 0", got)
	}
}

func TestCosine_RangeAndSymmetry(t *testing.T) {
	a := FromText("deck repair and staining")
	b := FromText("composite deck construction")

	ab := Cosine(a, b)
	ba := Cosine(b, a)

	if ab < 0 || ab > 1 {
		t.Errorf("Cosine out of [0,1]: %f", ab)
	}
	if math.Abs(ab-ba) > 1e-12 {
		t.Errorf("Cosine not symmetric: %f vs %f", ab, ba)
	}
	if ab == 0 {
		t.Error("expected overlap on shared term \"deck\"")
	}
}

func TestCosine_PartialOverlapRanksHigher(t *testing.T) {
	query := FromText("kitchen remodel costs")
	kitchen := FromText("Kitchen Remodeling Transform your kitchen with full remodeling")
	plumbing := FromText("Plumbing Service Faucets drains and fixture repair")

	if Cosine(query, kitchen) <= Cosine(query, plumbing) {
		t.Error("kitchen text should outscore plumbing text for a kitchen query")
	}
}
