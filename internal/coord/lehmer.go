// Package coord implements the bijections between cube-state fragments
// and the six compact integer coordinates the two-phase solver searches
// over (spec §3 "Coordinates", §4.3).
package coord

var factorials = [13]int{1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880, 3628800, 39916800, 479001600}

func factorial(n int) int {
	return factorials[n]
}

// PermToIndex computes the Lehmer/factorial-base rank of a permutation of
// 0..len(perm)-1: for each i, count perm[j] < perm[i] for j > i, multiply
// by (n-1-i)!, and sum.
func PermToIndex(perm []uint8) int {
	n := len(perm)
	idx := 0
	for i := 0; i < n; i++ {
		count := 0
		for j := i + 1; j < n; j++ {
			if perm[j] < perm[i] {
				count++
			}
		}
		idx += count * factorial(n-1-i)
	}
	return idx
}

// IndexToPerm is the inverse of PermToIndex: given a rank in [0, n!) it
// reconstructs the permutation of 0..n-1.
func IndexToPerm(idx, n int) []uint8 {
	digits := make([]int, n)
	rem := idx
	for i := 0; i < n; i++ {
		f := factorial(n - 1 - i)
		digits[i] = rem / f
		rem = rem % f
	}

	available := make([]uint8, n)
	for i := range available {
		available[i] = uint8(i)
	}

	perm := make([]uint8, n)
	for i := 0; i < n; i++ {
		d := digits[i]
		perm[i] = available[d]
		available = append(available[:d], available[d+1:]...)
	}
	return perm
}
