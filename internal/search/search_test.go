package search

import (
	"testing"

	"github.com/SeamusWaldron/kociemba/internal/coord"
	"github.com/SeamusWaldron/kociemba/internal/cubiecube"
	"github.com/SeamusWaldron/kociemba/internal/tables"
)

func buildTestSet(t *testing.T) *tables.Set {
	t.Helper()
	s, err := tables.Build(tables.BuildOptions{Composite: false})
	if err != nil {
		t.Fatalf("building tables: %v", err)
	}
	return s
}

func phase1Coord(c cubiecube.Cube) Phase1Coord {
	return Phase1Coord{
		EO:     coord.EO.Encode(c),
		CO:     coord.CO.Encode(c),
		ESlice: coord.ESlice.Encode(c),
	}
}

func TestHeuristic1ZeroAtGoal(t *testing.T) {
	s := buildTestSet(t)
	h := Heuristic1(s)
	if got := h(phase1Coord(cubiecube.Solved())); got != 0 {
		t.Errorf("h_phase1(solved) = %d, want 0", got)
	}
}

func TestHeuristic1AdmissibleForSingleMove(t *testing.T) {
	s := buildTestSet(t)
	h := Heuristic1(s)
	scrambled := cubiecube.Apply(cubiecube.Solved(), cubiecube.Moves[cubiecube.MoveR])
	if got := h(phase1Coord(scrambled)); got > 1 {
		t.Errorf("h_phase1(one move away) = %d, want <= 1", got)
	}
}

func TestSearcherSolvesSingleMoveScramble(t *testing.T) {
	s := buildTestSet(t)
	searcher := &Searcher[Phase1Coord]{
		Legal:     tables.Phase1Moves[:],
		Heuristic: Heuristic1(s),
		Successor: Successor1(s),
		IsGoal:    Phase1Coord.IsZero,
	}

	scrambled := cubiecube.Apply(cubiecube.Solved(), cubiecube.Moves[cubiecube.MoveR])
	start := phase1Coord(scrambled)

	moves, ok := searcher.Search(start, 18)
	if !ok {
		t.Fatal("expected a solution")
	}
	if len(moves) != 1 || moves[0] != cubiecube.MoveRPrime {
		t.Errorf("moves = %v, want [R']", moves)
	}
}

func TestSearcherReturnsGoalImmediately(t *testing.T) {
	s := buildTestSet(t)
	searcher := &Searcher[Phase1Coord]{
		Legal:     tables.Phase1Moves[:],
		Heuristic: Heuristic1(s),
		Successor: Successor1(s),
		IsGoal:    Phase1Coord.IsZero,
	}

	moves, ok := searcher.Search(phase1Coord(cubiecube.Solved()), 18)
	if !ok {
		t.Fatal("expected ok for an already-solved start")
	}
	if len(moves) != 0 {
		t.Errorf("moves = %v, want empty", moves)
	}
}

func TestSearcherRespectsSameFacePruning(t *testing.T) {
	s := buildTestSet(t)
	searcher := &Searcher[Phase1Coord]{
		Legal:     tables.Phase1Moves[:],
		Heuristic: Heuristic1(s),
		Successor: Successor1(s),
		IsGoal:    Phase1Coord.IsZero,
	}

	scrambled := cubiecube.ApplySeq(cubiecube.Solved(), []cubiecube.MoveIndex{
		cubiecube.MoveR, cubiecube.MoveU, cubiecube.MoveFPrime, cubiecube.MoveL2, cubiecube.MoveB,
	})
	moves, ok := searcher.Search(phase1Coord(scrambled), 18)
	if !ok {
		t.Fatal("expected a solution")
	}
	if len(moves) < 2 {
		t.Fatalf("moves = %v, want a multi-move solution so the pruning rule is exercised", moves)
	}
	for i := 1; i < len(moves); i++ {
		if moves[i].Face() == moves[i-1].Face() {
			t.Errorf("moves %v contain two consecutive same-face moves at %d", moves, i)
		}
	}
}

func TestSearcherFailsWithinZeroDepthOnScrambledCube(t *testing.T) {
	s := buildTestSet(t)
	searcher := &Searcher[Phase1Coord]{
		Legal:     tables.Phase1Moves[:],
		Heuristic: Heuristic1(s),
		Successor: Successor1(s),
		IsGoal:    Phase1Coord.IsZero,
	}

	scrambled := cubiecube.Apply(cubiecube.Solved(), cubiecube.Moves[cubiecube.MoveR])
	if _, ok := searcher.Search(phase1Coord(scrambled), 0); ok {
		t.Error("expected no solution within depth 0 for a non-solved cube")
	}
}
