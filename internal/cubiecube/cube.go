// Package cubiecube implements the cubie-level Rubik's cube model: the
// permutation/orientation state representation, the 18 face-turn
// operators, and the primitive operations (apply, compose, invert,
// validate) the rest of the solver is built on.
package cubiecube

// Corner slot indices, in the order the spec fixes them.
const (
	URF = 0
	UFL = 1
	ULB = 2
	UBR = 3
	DFR = 4
	DLF = 5
	DBL = 6
	DRB = 7
)

// Edge slot indices, in the order the spec fixes them.
const (
	UR = 0
	UF = 1
	UL = 2
	UB = 3
	DR = 4
	DF = 5
	DL = 6
	DB = 7
	FR = 8
	FL = 9
	BL = 10
	BR = 11
)

// Cube is a cubie-level cube state: four fixed-length arrays describing
// where each corner/edge sits and how it is twisted/flipped.
type Cube struct {
	CP [8]uint8  // corner permutation: CP[slot] = identity of corner occupying slot
	CO [8]uint8  // corner orientation, values in {0,1,2}
	EP [12]uint8 // edge permutation: EP[slot] = identity of edge occupying slot
	EO [12]uint8 // edge orientation, values in {0,1}
}

// Solved returns the solved cube: identity permutation, zero orientation.
func Solved() Cube {
	var c Cube
	for i := range c.CP {
		c.CP[i] = uint8(i)
	}
	for i := range c.EP {
		c.EP[i] = uint8(i)
	}
	return c
}

// Equal reports whether two cubes have identical state.
func Equal(a, b Cube) bool {
	return a.CP == b.CP && a.CO == b.CO && a.EP == b.EP && a.EO == b.EO
}

// IsSolved reports whether c is the solved state.
func IsSolved(c Cube) bool {
	return Equal(c, Solved())
}

// Parity returns the parity of a permutation (0 = even, 1 = odd) via
// cycle decomposition.
func Parity(perm []uint8) int {
	n := len(perm)
	visited := make([]bool, n)
	parity := 0
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		cycleLen := 0
		for j := i; !visited[j]; j = int(perm[j]) {
			visited[j] = true
			cycleLen++
		}
		if cycleLen > 0 {
			parity ^= (cycleLen - 1) % 2
		}
	}
	return parity
}

// isPermutation reports whether perm is a permutation of 0..len(perm)-1.
func isPermutation(perm []uint8) bool {
	n := len(perm)
	seen := make([]bool, n)
	for _, v := range perm {
		if int(v) >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// IsValid checks all four global invariants from the data model: cp/ep
// are permutations, their parities agree, corner orientations sum to 0
// mod 3, and edge orientations sum to 0 mod 2.
func IsValid(c Cube) bool {
	if !isPermutation(c.CP[:]) || !isPermutation(c.EP[:]) {
		return false
	}
	if Parity(c.CP[:]) != Parity(c.EP[:]) {
		return false
	}
	coSum := 0
	for _, v := range c.CO {
		if v > 2 {
			return false
		}
		coSum += int(v)
	}
	if coSum%3 != 0 {
		return false
	}
	eoSum := 0
	for _, v := range c.EO {
		if v > 1 {
			return false
		}
		eoSum += int(v)
	}
	if eoSum%2 != 0 {
		return false
	}
	return true
}
