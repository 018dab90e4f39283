package greedytp

// FirstCombination returns the lexicographically first k-combination of the
// indices [0, n) — i.e. [0, 1, ..., k-1]. Phase A only ever needs the first
// subset a lexicographic combinations generator would produce for a given k
// (every k-combination of critical-path edges yields the same feasibility
// check, since only the count of merged edges matters — see seedCut), so
// generating and discarding the rest would be pure overhead. NextCombination
// is kept alongside it so the generator's full lexicographic order is still
// exercised and testable.
func FirstCombination(n, k int) []int {
	if k < 0 || k > n {
		return nil
	}
	combo := make([]int, k)
	for i := range combo {
		combo[i] = i
	}
	return combo
}

// NextCombination advances combo (a k-combination of [0, n), as produced by
// FirstCombination or a prior call) to its lexicographic successor. It
// returns false once combo is already the last combination.
func NextCombination(combo []int, n int) bool {
	k := len(combo)
	if k == 0 {
		return false
	}
	i := k - 1
	for i >= 0 && combo[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	combo[i]++
	for j := i + 1; j < k; j++ {
		combo[j] = combo[j-1] + 1
	}
	return true
}
