// Package randcube implements the uniform random-state cube sampler
// (spec §6 "Random-state generator"): a reproducible collaborator used
// by the CLI's scramble command and by property tests that want a
// large, varied sample of valid cubes.
package randcube

import "github.com/SeamusWaldron/kociemba/internal/cubiecube"

// Sample draws a uniformly random valid cube using the given seed. The
// same seed always produces the same cube.
func Sample(seed uint32) cubiecube.Cube {
	r := newMulberry32(seed)

	cp := randomPerm(r, 8)
	ep := randomPerm(r, 12)
	if cubiecube.Parity(cp) != cubiecube.Parity(ep) {
		ep[0], ep[1] = ep[1], ep[0]
	}

	var c cubiecube.Cube
	copy(c.CP[:], cp)
	copy(c.EP[:], ep)

	coSum := 0
	for i := 0; i < 7; i++ {
		c.CO[i] = uint8(r.intn(3))
		coSum += int(c.CO[i])
	}
	c.CO[7] = uint8((3 - coSum%3) % 3)

	eoXor := 0
	for i := 0; i < 11; i++ {
		c.EO[i] = uint8(r.intn(2))
		eoXor ^= int(c.EO[i])
	}
	c.EO[11] = uint8(eoXor)

	return c
}

// randomPerm returns a uniformly random permutation of {0,...,n-1} via a
// Fisher-Yates shuffle driven by r.
func randomPerm(r *mulberry32, n int) []uint8 {
	perm := make([]uint8, n)
	for i := range perm {
		perm[i] = uint8(i)
	}
	for i := n - 1; i > 0; i-- {
		j := int(r.intn(uint32(i + 1)))
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
