package notation

import (
	"testing"

	"github.com/SeamusWaldron/kociemba/internal/cubiecube"
)

func TestParseMoveVariants(t *testing.T) {
	cases := map[string]cubiecube.MoveIndex{
		"U":  cubiecube.MoveU,
		"u":  cubiecube.MoveU,
		"U2": cubiecube.MoveU2,
		"U'": cubiecube.MoveUPrime,
		"Up": cubiecube.MoveUPrime,
		"UP": cubiecube.MoveUPrime,
		"r":  cubiecube.MoveR,
		"R'": cubiecube.MoveRPrime,
		"b2": cubiecube.MoveB2,
	}
	for token, want := range cases {
		got, err := ParseMove(token)
		if err != nil {
			t.Errorf("ParseMove(%q) error: %v", token, err)
			continue
		}
		if got != want {
			t.Errorf("ParseMove(%q) = %v, want %v", token, got, want)
		}
	}
}

func TestParseMoveRejectsInvalidTokens(t *testing.T) {
	for _, token := range []string{"", "X", "U3", "UU", "2U", "R''"} {
		if _, err := ParseMove(token); err == nil {
			t.Errorf("ParseMove(%q) expected an error", token)
		}
	}
}

func TestFormatMoveRoundTrip(t *testing.T) {
	for m := cubiecube.MoveIndex(0); m < cubiecube.NumMoves; m++ {
		token := FormatMove(m)
		got, err := ParseMove(token)
		if err != nil {
			t.Fatalf("ParseMove(%q) error: %v", token, err)
		}
		if got != m {
			t.Errorf("round trip for %v produced %q -> %v", m, token, got)
		}
	}
}

func TestParseSequenceAndFormat(t *testing.T) {
	seq, err := ParseSequence("R U R' U'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []cubiecube.MoveIndex{cubiecube.MoveR, cubiecube.MoveU, cubiecube.MoveRPrime, cubiecube.MoveUPrime}
	if len(seq) != len(want) {
		t.Fatalf("seq = %v, want %v", seq, want)
	}
	for i := range want {
		if seq[i] != want[i] {
			t.Errorf("seq[%d] = %v, want %v", i, seq[i], want[i])
		}
	}
	if got := FormatSequence(seq); got != "R U R' U'" {
		t.Errorf("FormatSequence = %q, want %q", got, "R U R' U'")
	}
}

func TestParseSequenceFailsOnInvalidToken(t *testing.T) {
	if _, err := ParseSequence("R U X U'"); err == nil {
		t.Fatal("expected an error for an invalid token in the sequence")
	}
}

func TestInvertReversesAndInverts(t *testing.T) {
	seq := []cubiecube.MoveIndex{cubiecube.MoveR, cubiecube.MoveU, cubiecube.MoveFPrime}
	inv := Invert(seq)
	want := []cubiecube.MoveIndex{cubiecube.MoveF, cubiecube.MoveUPrime, cubiecube.MoveRPrime}
	if len(inv) != len(want) {
		t.Fatalf("inv = %v, want %v", inv, want)
	}
	for i := range want {
		if inv[i] != want[i] {
			t.Errorf("inv[%d] = %v, want %v", i, inv[i], want[i])
		}
	}
}

func TestInvertUndoesApplication(t *testing.T) {
	seq, err := ParseSequence("R U R' U' R' F R2 U' R' U' R U R' F'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := cubiecube.ApplySeq(cubiecube.Solved(), seq)
	recovered := cubiecube.ApplySeq(c, Invert(seq))
	if !cubiecube.Equal(recovered, cubiecube.Solved()) {
		t.Error("applying the inverse did not undo the original sequence")
	}
}

func TestSimplifyCollapsesSameFaceRuns(t *testing.T) {
	seq, _ := ParseSequence("R R R")
	got := Simplify(seq)
	want, _ := ParseSequence("R'")
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("Simplify(R R R) = %v, want %v", got, want)
	}
}

func TestSimplifyDropsZeroTurnResult(t *testing.T) {
	seq, _ := ParseSequence("U U2 U")
	got := Simplify(seq)
	if len(got) != 0 {
		t.Errorf("Simplify(U U2 U) = %v, want empty", got)
	}
}

func TestSimplifyLeavesDifferentFacesAlone(t *testing.T) {
	seq, _ := ParseSequence("R U F")
	got := Simplify(seq)
	if len(got) != 3 {
		t.Errorf("Simplify(R U F) = %v, want unchanged", got)
	}
}
