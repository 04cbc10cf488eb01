package cubiecube

import "testing"

func TestSolvedIsValidAndSolved(t *testing.T) {
	c := Solved()
	if !IsValid(c) {
		t.Error("solved cube should be valid")
	}
	if !IsSolved(c) {
		t.Error("Solved() should report IsSolved")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := Apply(Solved(), Moves[MoveR])
	if IsSolved(c) {
		t.Error("cube should not be solved after R")
	}
	if !IsValid(c) {
		t.Error("cube should remain valid after a single move")
	}
}

func TestFourQuarterTurnsReturnToSolved(t *testing.T) {
	for idx := MoveIndex(0); idx < NumMoves; idx += 3 {
		c := Solved()
		for i := 0; i < 4; i++ {
			c = Apply(c, Moves[idx])
		}
		if !IsSolved(c) {
			t.Errorf("%s x4 should return to solved", idx)
		}
	}
}

func TestDoubleTurnTwiceReturnsToSolved(t *testing.T) {
	for face := 0; face < 6; face++ {
		idx := MoveIndex(face*3 + 1)
		c := Solved()
		c = Apply(c, Moves[idx])
		c = Apply(c, Moves[idx])
		if !IsSolved(c) {
			t.Errorf("%s x2 should return to solved", idx)
		}
	}
}

func TestApplyThenInverseReturnsOriginal(t *testing.T) {
	c := ApplySeq(Solved(), []MoveIndex{MoveR, MoveU, MoveFPrime})
	for idx := MoveIndex(0); idx < NumMoves; idx++ {
		got := Apply(Apply(c, Moves[idx]), Invert(Moves[idx]))
		if !Equal(got, c) {
			t.Errorf("apply(apply(c,%s),invert(%s)) != c", idx, idx)
		}
	}
}

func TestSexyMoveSixTimesReturnsToSolved(t *testing.T) {
	c := Solved()
	for i := 0; i < 6; i++ {
		c = ApplySeq(c, []MoveIndex{MoveR, MoveU, MoveRPrime, MoveUPrime})
	}
	if !IsSolved(c) {
		t.Error("(R U R' U') x6 should return to solved")
	}
}

func TestAllMovesPreserveValidity(t *testing.T) {
	c := ApplySeq(Solved(), []MoveIndex{MoveR, MoveU, MoveFPrime, MoveL2, MoveB})
	for idx := MoveIndex(0); idx < NumMoves; idx++ {
		if !IsValid(Apply(c, Moves[idx])) {
			t.Errorf("apply(%s) produced an invalid cube", idx)
		}
	}
}

func TestMoveIndexFace(t *testing.T) {
	cases := map[MoveIndex]int{MoveU: 0, MoveU2: 0, MoveUPrime: 0, MoveR: 1, MoveB2: 5, MoveBPrime: 5}
	for idx, want := range cases {
		if got := idx.Face(); got != want {
			t.Errorf("%s.Face() = %d, want %d", idx, got, want)
		}
	}
}

func TestComposeMatchesSequentialApply(t *testing.T) {
	c := ApplySeq(Solved(), []MoveIndex{MoveD, MoveL, MoveB2})
	composed := Compose(Moves[MoveR], Moves[MoveU])
	got := Apply(c, composed)
	want := Apply(Apply(c, Moves[MoveR]), Moves[MoveU])
	if !Equal(got, want) {
		t.Error("Compose(R,U) should equal applying R then U")
	}
}
