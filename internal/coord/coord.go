package coord

import "github.com/SeamusWaldron/kociemba/internal/cubiecube"

// Coordinate is a total, round-trip-consistent bijection between a
// projection of cube state and an integer in [0, Size). Decode always
// produces a cube that agrees with the solved cube outside the
// coordinate's own domain, which is what makes per-coordinate move-table
// construction (§4.4) well defined.
type Coordinate struct {
	Name   string
	Size   int
	Encode func(c cubiecube.Cube) int
	Decode func(k int) cubiecube.Cube
}

// sliceEdge reports whether edge identity id is one of the four E-slice
// edges {FR, FL, BL, BR} = {8, 9, 10, 11}.
func sliceEdge(id uint8) bool {
	return id >= 8 && id <= 11
}

// EO is the phase-1 edge-orientation coordinate, size 2048.
var EO = Coordinate{
	Name: "eo",
	Size: 2048,
	Encode: func(c cubiecube.Cube) int {
		v := 0
		for i := 0; i < 11; i++ {
			v |= int(c.EO[i]) << uint(i)
		}
		return v
	},
	Decode: func(k int) cubiecube.Cube {
		out := cubiecube.Solved()
		sum := 0
		for i := 0; i < 11; i++ {
			bit := uint8((k >> uint(i)) & 1)
			out.EO[i] = bit
			sum ^= int(bit)
		}
		out.EO[11] = uint8(sum & 1)
		return out
	},
}

// CO is the phase-1 corner-orientation coordinate, size 2187.
var CO = Coordinate{
	Name: "co",
	Size: 2187,
	Encode: func(c cubiecube.Cube) int {
		v := 0
		mul := 1
		for i := 0; i < 7; i++ {
			v += int(c.CO[i]) * mul
			mul *= 3
		}
		return v
	},
	Decode: func(k int) cubiecube.Cube {
		out := cubiecube.Solved()
		sum := 0
		for i := 0; i < 7; i++ {
			d := uint8(k % 3)
			k /= 3
			out.CO[i] = d
			sum += int(d)
		}
		out.CO[7] = uint8((3 - sum%3) % 3)
		return out
	},
}

// ESlice is the phase-1 E-slice-position coordinate, size 495 = C(12,4).
// It ranks the 4-subset of edge slots currently holding the E-slice
// edges {FR, FL, BL, BR} using the reverse-lex combinatorial index
// described in spec §4.3, chosen so the identity combination maps to 0.
var ESlice = Coordinate{
	Name: "eslice",
	Size: 495,
	Encode: func(c cubiecube.Cube) int {
		result := 494
		r := 4
		for i := 11; i >= 0 && r > 0; i-- {
			if sliceEdge(c.EP[i]) {
				result -= binom(i, r)
				r--
			}
		}
		return result
	},
	Decode: func(k int) cubiecube.Cube {
		out := cubiecube.Solved()
		target := 494 - k
		r := 4
		isSlice := [12]bool{}
		for i := 11; i >= 0 && r > 0; i-- {
			c := binom(i, r)
			if c <= target {
				target -= c
				isSlice[i] = true
				r--
			}
		}
		nextSlice := uint8(8)
		nextOther := uint8(0)
		for i := 0; i < 12; i++ {
			if isSlice[i] {
				out.EP[i] = nextSlice
				nextSlice++
			} else {
				out.EP[i] = nextOther
				nextOther++
			}
		}
		return out
	},
}

// CP is the phase-2 corner-permutation coordinate, size 40320 = 8!.
var CP = Coordinate{
	Name: "cp",
	Size: 40320,
	Encode: func(c cubiecube.Cube) int {
		return PermToIndex(c.CP[:])
	},
	Decode: func(k int) cubiecube.Cube {
		out := cubiecube.Solved()
		copy(out.CP[:], IndexToPerm(k, 8))
		return out
	},
}

// UDEP is the phase-2 U/D-edge-permutation coordinate, size 40320 = 8!.
// It is only meaningful once the cube is in G1, where slots 0..7 hold
// exactly the eight U/D edges.
var UDEP = Coordinate{
	Name: "udep",
	Size: 40320,
	Encode: func(c cubiecube.Cube) int {
		return PermToIndex(c.EP[0:8])
	},
	Decode: func(k int) cubiecube.Cube {
		out := cubiecube.Solved()
		copy(out.EP[0:8], IndexToPerm(k, 8))
		return out
	},
}

// EP is the phase-2 E-slice-edge-permutation coordinate, size 24 = 4!.
var EP = Coordinate{
	Name: "ep",
	Size: 24,
	Encode: func(c cubiecube.Cube) int {
		rel := make([]uint8, 4)
		for i := 0; i < 4; i++ {
			rel[i] = c.EP[8+i] - 8
		}
		return PermToIndex(rel)
	},
	Decode: func(k int) cubiecube.Cube {
		out := cubiecube.Solved()
		rel := IndexToPerm(k, 4)
		for i := 0; i < 4; i++ {
			out.EP[8+i] = rel[i] + 8
		}
		return out
	},
}
