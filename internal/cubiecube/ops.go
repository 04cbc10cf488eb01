package cubiecube

// Apply returns the cube resulting from turning face m on c, out of place.
func Apply(c Cube, m Move) Cube {
	var out Cube
	for i := 0; i < 8; i++ {
		out.CP[i] = c.CP[m.CPMap[i]]
		out.CO[i] = (c.CO[m.CPMap[i]] + m.CODelta[i]) % 3
	}
	for i := 0; i < 12; i++ {
		out.EP[i] = c.EP[m.EPMap[i]]
		out.EO[i] = c.EO[m.EPMap[i]] ^ m.EODelta[i]
	}
	return out
}

// ApplySeq applies a sequence of move indices to c in order.
func ApplySeq(c Cube, seq []MoveIndex) Cube {
	for _, m := range seq {
		c = Apply(c, Moves[m])
	}
	return c
}

// Compose returns the move operator equivalent to applying m1 then m2:
// Apply(Apply(c, m1), m2) == Apply(c, Compose(m1, m2)) for all c.
func Compose(m1, m2 Move) Move {
	var out Move
	for i := 0; i < 8; i++ {
		out.CPMap[i] = m1.CPMap[m2.CPMap[i]]
		out.CODelta[i] = (m1.CODelta[m2.CPMap[i]] + m2.CODelta[i]) % 3
	}
	for i := 0; i < 12; i++ {
		out.EPMap[i] = m1.EPMap[m2.EPMap[i]]
		out.EODelta[i] = m1.EODelta[m2.EPMap[i]] ^ m2.EODelta[i]
	}
	return out
}

// InvertIndex returns the move index whose operator undoes m: a 90-degree
// turn maps to its 270-degree counterpart and vice versa, a 180-degree
// turn maps to itself.
func InvertIndex(m MoveIndex) MoveIndex {
	face := m.Face()
	offset := int(m) % 3
	return MoveIndex(face*3 + (2 - offset))
}

// InvertSeq returns the move sequence that undoes seq: reverse the order
// and invert each move.
func InvertSeq(seq []MoveIndex) []MoveIndex {
	out := make([]MoveIndex, len(seq))
	for i, m := range seq {
		out[len(seq)-1-i] = InvertIndex(m)
	}
	return out
}

// invertPerm returns the array inverse of a permutation: inv[perm[i]] == i.
func invertPerm(perm []uint8) []uint8 {
	inv := make([]uint8, len(perm))
	for i, v := range perm {
		inv[v] = uint8(i)
	}
	return inv
}

// Invert returns the inverse move operator: Compose(m, Invert(m)) is the
// identity operator.
func Invert(m Move) Move {
	var out Move

	cpInv := invertPerm(m.CPMap[:])
	copy(out.CPMap[:], cpInv)
	for i := 0; i < 8; i++ {
		out.CODelta[i] = (3 - m.CODelta[out.CPMap[i]]%3) % 3
	}

	epInv := invertPerm(m.EPMap[:])
	copy(out.EPMap[:], epInv)
	for i := 0; i < 12; i++ {
		out.EODelta[i] = m.EODelta[out.EPMap[i]]
	}

	return out
}
