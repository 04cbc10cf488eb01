package solver

import (
	"testing"

	"github.com/SeamusWaldron/kociemba/internal/cubiecube"
	"github.com/SeamusWaldron/kociemba/internal/tables"
)

func buildSolver(t *testing.T) *Solver {
	t.Helper()
	set, err := tables.Build(tables.BuildOptions{Composite: false})
	if err != nil {
		t.Fatalf("building tables: %v", err)
	}
	return New(set)
}

func TestSolveSolvedCubeReturnsEmpty(t *testing.T) {
	s := buildSolver(t)
	res, err := s.Solve(cubiecube.Solved(), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Solution) != 0 || len(res.Scramble) != 0 {
		t.Errorf("solution=%v scramble=%v, want both empty", res.Solution, res.Scramble)
	}
}

func TestSolveSingleUTurn(t *testing.T) {
	s := buildSolver(t)
	c := cubiecube.Apply(cubiecube.Solved(), cubiecube.Moves[cubiecube.MoveU])
	res, err := s.Solve(c, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Solution) != 1 || res.Solution[0] != cubiecube.MoveUPrime {
		t.Errorf("solution = %v, want [U']", res.Solution)
	}
}

func TestSolveUThenR(t *testing.T) {
	s := buildSolver(t)
	c := cubiecube.ApplySeq(cubiecube.Solved(), []cubiecube.MoveIndex{cubiecube.MoveU, cubiecube.MoveR})
	res, err := s.Solve(c, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []cubiecube.MoveIndex{cubiecube.MoveRPrime, cubiecube.MoveUPrime}
	if len(res.Solution) != len(want) {
		t.Fatalf("solution = %v, want %v", res.Solution, want)
	}
	for i := range want {
		if res.Solution[i] != want[i] {
			t.Errorf("solution = %v, want %v", res.Solution, want)
		}
	}
}

func TestSolveLongerScrambleSolvesWithinBudget(t *testing.T) {
	s := buildSolver(t)
	scramble := []cubiecube.MoveIndex{
		cubiecube.MoveR, cubiecube.MoveU, cubiecube.MoveRPrime, cubiecube.MoveUPrime,
		cubiecube.MoveRPrime, cubiecube.MoveF, cubiecube.MoveR, cubiecube.MoveR2,
		cubiecube.MoveUPrime, cubiecube.MoveRPrime, cubiecube.MoveUPrime, cubiecube.MoveR,
		cubiecube.MoveU, cubiecube.MoveRPrime, cubiecube.MoveFPrime,
	}
	c := cubiecube.ApplySeq(cubiecube.Solved(), scramble)

	res, err := s.Solve(c, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Solution) > DefaultMaxTotalDepth {
		t.Errorf("solution length %d exceeds combined cap %d", len(res.Solution), DefaultMaxTotalDepth)
	}
	if !cubiecube.IsSolved(cubiecube.ApplySeq(c, res.Solution)) {
		t.Error("solution does not solve the scrambled cube")
	}
}

func TestSolveIsDeterministic(t *testing.T) {
	s := buildSolver(t)
	c := cubiecube.ApplySeq(cubiecube.Solved(), []cubiecube.MoveIndex{
		cubiecube.MoveR, cubiecube.MoveU2, cubiecube.MoveFPrime, cubiecube.MoveL,
	})

	first, err := s.Solve(c, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := s.Solve(c, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first.Solution) != len(second.Solution) {
		t.Fatalf("non-deterministic lengths: %d vs %d", len(first.Solution), len(second.Solution))
	}
	for i := range first.Solution {
		if first.Solution[i] != second.Solution[i] {
			t.Fatalf("non-deterministic solutions: %v vs %v", first.Solution, second.Solution)
		}
	}
}

func TestSolveScrambleUndoesSolution(t *testing.T) {
	s := buildSolver(t)
	c := cubiecube.ApplySeq(cubiecube.Solved(), []cubiecube.MoveIndex{
		cubiecube.MoveF, cubiecube.MoveRPrime, cubiecube.MoveU2,
	})
	res, err := s.Solve(c, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	recovered := cubiecube.ApplySeq(cubiecube.Solved(), res.Scramble)
	if !cubiecube.Equal(recovered, c) {
		t.Error("applying scramble to solved cube does not recover the original state")
	}
}

func TestSolveRejectsInvalidCube(t *testing.T) {
	s := buildSolver(t)
	c := cubiecube.Solved()
	c.EO[0] = 1 // flips a single edge in isolation: breaks the XOR-parity invariant

	_, err := s.Solve(c, DefaultOptions())
	if err == nil {
		t.Fatal("expected an error for an invalid cube")
	}
	solveErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if solveErr.Kind != InvalidInput {
		t.Errorf("Kind = %v, want InvalidInput", solveErr.Kind)
	}
}
