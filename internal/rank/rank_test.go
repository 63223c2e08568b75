package rank

import (
	"testing"

	"fzmatch/pkg/fuzzy"
)

func TestRankFiltersAndSortsByScoreDescending(t *testing.T) {
	needle := fuzzy.PrepareNeedle("amor")
	candidates := []string{
		"app/views/zrder.rb",  // no match
		"app/models/order.rb", // boundary match
		"a-m-o-r",              // gappy match
		"amor.go",              // contiguous prefix match
	}

	got := Rank(needle, candidates, Options{Workers: 2})

	if len(got) != 3 {
		t.Fatalf("expected 3 matches, got %d: %+v", len(got), got)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("results not sorted descending at index %d: %v", i, got)
		}
	}
	for _, c := range got {
		if c.Text == "app/views/zrder.rb" {
			t.Errorf("non-matching candidate leaked into results: %+v", c)
		}
	}
}

func TestRankIncludeNonMatches(t *testing.T) {
	needle := fuzzy.PrepareNeedle("amor")
	candidates := []string{"app/views/zrder.rb", "app/models/order.rb"}

	got := Rank(needle, candidates, Options{IncludeNonMatches: true})
	if len(got) != 2 {
		t.Fatalf("expected both candidates kept, got %d", len(got))
	}
}

func TestRankWithPositionsPopulatesPositions(t *testing.T) {
	needle := fuzzy.PrepareNeedle("amor")
	candidates := []string{"app/models/order.rb"}

	got := Rank(needle, candidates, Options{WithPositions: true})
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if len(got[0].Positions) != needle.Len() {
		t.Fatalf("expected %d positions, got %d", needle.Len(), len(got[0].Positions))
	}
	for i := 1; i < len(got[0].Positions); i++ {
		if got[0].Positions[i] <= got[0].Positions[i-1] {
			t.Errorf("positions not strictly increasing: %v", got[0].Positions)
		}
	}
}

func TestRankEmptyCandidateList(t *testing.T) {
	needle := fuzzy.PrepareNeedle("amor")
	got := Rank(needle, nil, Options{})
	if len(got) != 0 {
		t.Errorf("expected no results for an empty candidate list, got %d", len(got))
	}
}

func TestRankPreservesIndexOfOriginalCandidate(t *testing.T) {
	needle := fuzzy.PrepareNeedle("ab")
	candidates := []string{"xab", "ab", "zzz", "a-b"}

	got := Rank(needle, candidates, Options{Workers: 4})
	seen := map[int]string{}
	for _, c := range got {
		seen[c.Index] = c.Text
	}
	for i, want := range candidates {
		if want == "zzz" {
			continue
		}
		if seen[i] != want {
			t.Errorf("index %d: got %q, want %q", i, seen[i], want)
		}
	}
}
