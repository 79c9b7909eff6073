package match

import (
	"reflect"
	"testing"
)

func TestRankCandidates(t *testing.T) {
	names := []string{"ID", "CustomerName", "customer_id", "CustomerID"}

	candidates := RankCandidates("CustomerID", names)

	if len(candidates) != 4 {
		t.Fatalf("Expected 4 candidates, got %d", len(candidates))
	}

	var got []string
	for _, c := range candidates {
		got = append(got, c.Name)
	}

	// exact and normalized-equal names tie, then sort by name
	want := []string{"CustomerID", "customer_id", "CustomerName", "ID"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RankCandidates() order = %v, want %v", got, want)
	}

	if candidates[0].Score != 1.0 || candidates[1].Score != 1.0 {
		t.Errorf("Expected perfect scores for the first two, got %f and %f",
			candidates[0].Score, candidates[1].Score)
	}

	if candidates[0].NormalizedTarget != "customerid" {
		t.Errorf("NormalizedTarget = %q, want %q", candidates[0].NormalizedTarget, "customerid")
	}
}

func TestSuggest(t *testing.T) {
	members := []string{"ID", "Email", "FullName"}

	if got := Suggest("Emal", members, 3); !reflect.DeepEqual(got, []string{"Email"}) {
		t.Errorf("Suggest(Emal) = %v, want [Email]", got)
	}

	if got := Suggest("Zzz", members, 3); got != nil {
		t.Errorf("Suggest(Zzz) = %v, want nil", got)
	}

	if got := Suggest("Email", members, 0); got != nil {
		t.Errorf("Suggest with zero limit = %v, want nil", got)
	}
}

func TestCandidateList_Best(t *testing.T) {
	candidates := CandidateList{
		{Name: "FieldC", Score: 0.9},
		{Name: "FieldB", Score: 0.7},
	}

	best := candidates.Best()
	if best == nil || best.Name != "FieldC" {
		t.Errorf("Best() = %v, want FieldC", best)
	}

	if (CandidateList{}).Best() != nil {
		t.Error("Expected nil best for an empty list")
	}
}

func TestCandidateList_Top(t *testing.T) {
	candidates := CandidateList{
		{Name: "A", Score: 0.9},
		{Name: "B", Score: 0.8},
		{Name: "C", Score: 0.7},
	}

	if top2 := candidates.Top(2); len(top2) != 2 {
		t.Errorf("Expected 2 candidates, got %d", len(top2))
	}

	// Request more than available
	if top10 := candidates.Top(10); len(top10) != 3 {
		t.Errorf("Expected 3 candidates (all), got %d", len(top10))
	}
}

func TestCandidateList_IsAmbiguous(t *testing.T) {
	tests := []struct {
		name      string
		scores    []float64
		threshold float64
		expected  bool
	}{
		{
			name:      "clear winner",
			scores:    []float64{0.9, 0.5},
			threshold: 0.1,
			expected:  false,
		},
		{
			name:      "ambiguous",
			scores:    []float64{0.9, 0.85},
			threshold: 0.1,
			expected:  true,
		},
		{
			name:      "single candidate",
			scores:    []float64{0.9},
			threshold: 0.1,
			expected:  false,
		},
		{
			name:      "no candidates",
			scores:    []float64{},
			threshold: 0.1,
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var candidates CandidateList
			for i, score := range tt.scores {
				candidates = append(candidates, Candidate{
					Name:  string(rune('A' + i)),
					Score: score,
				})
			}

			if got := candidates.IsAmbiguous(tt.threshold); got != tt.expected {
				t.Errorf("IsAmbiguous() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCandidateList_AboveThreshold(t *testing.T) {
	candidates := CandidateList{
		{Name: "A", Score: 0.9},
		{Name: "B", Score: 0.7},
		{Name: "C", Score: 0.5},
		{Name: "D", Score: 0.3},
	}

	above := candidates.AboveThreshold(0.6)
	if len(above) != 2 {
		t.Errorf("Expected 2 candidates above 0.6, got %d", len(above))
	}
}
