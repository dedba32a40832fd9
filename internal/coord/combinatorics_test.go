package coord

import (
	"reflect"
	"testing"
)

func TestLehmerRoundTrip(t *testing.T) {
	perms := [][]int8{
		{0, 1, 2, 3, 4, 5, 6, 7},
		{7, 6, 5, 4, 3, 2, 1, 0},
		{1, 0, 3, 2, 5, 4, 7, 6},
	}
	for _, p := range perms {
		rank := LehmerEncode(p)
		got := LehmerDecode(rank, len(p))
		if !reflect.DeepEqual(got, p) {
			t.Errorf("LehmerDecode(LehmerEncode(%v)) = %v", p, got)
		}
	}
}

func TestLehmerEncodeRangeIsDense(t *testing.T) {
	// All 24 permutations of 0..3 should hit every rank in [0, 24) exactly once.
	seen := make([]bool, 24)
	perm := []int8{0, 1, 2, 3}
	permute(perm, 0, func(p []int8) {
		cp := append([]int8{}, p...)
		rank := LehmerEncode(cp)
		if rank < 0 || rank >= 24 {
			t.Fatalf("rank %d out of range for %v", rank, cp)
		}
		if seen[rank] {
			t.Fatalf("rank %d produced by two different permutations", rank)
		}
		seen[rank] = true
	})
	for r, ok := range seen {
		if !ok {
			t.Errorf("rank %d was never produced", r)
		}
	}
}

func permute(p []int8, k int, visit func([]int8)) {
	if k == len(p) {
		visit(p)
		return
	}
	for i := k; i < len(p); i++ {
		p[k], p[i] = p[i], p[k]
		permute(p, k+1, visit)
		p[k], p[i] = p[i], p[k]
	}
}

func TestCombinationRoundTrip(t *testing.T) {
	tests := [][]int{
		{0, 1, 2, 3},
		{8, 9, 10, 11},
		{0, 5, 9, 11},
	}
	for _, idx := range tests {
		rank := CombinationRank(idx)
		got := CombinationUnrank(rank, 12, len(idx))
		if !reflect.DeepEqual(got, idx) {
			t.Errorf("CombinationUnrank(CombinationRank(%v)) = %v", idx, got)
		}
	}
}

func TestBinomialMatchesFactorialIdentity(t *testing.T) {
	for n := 0; n <= 12; n++ {
		for k := 0; k <= n; k++ {
			want := Factorial(n) / (Factorial(k) * Factorial(n-k))
			if got := Binomial(n, k); got != want {
				t.Errorf("Binomial(%d,%d) = %d, want %d", n, k, got, want)
			}
		}
	}
}
