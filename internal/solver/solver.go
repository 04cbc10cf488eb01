// Package solver implements the two-phase orchestration (C8): drive a
// cube to G1 with a phase-1 search, then to solved with a phase-2
// search, verifying every intermediate claim before trusting it.
package solver

import (
	"github.com/SeamusWaldron/kociemba/internal/coord"
	"github.com/SeamusWaldron/kociemba/internal/cubiecube"
	"github.com/SeamusWaldron/kociemba/internal/notation"
	"github.com/SeamusWaldron/kociemba/internal/search"
	"github.com/SeamusWaldron/kociemba/internal/tables"
)

// Default per-phase and combined search depth caps (spec §4.7).
const (
	DefaultMaxPhase1Depth = 18
	DefaultMaxPhase2Depth = 18
	DefaultMaxTotalDepth  = 30
)

// Options controls the per-phase search caps. The zero value is not
// usable directly; callers should start from DefaultOptions.
type Options struct {
	MaxPhase1Depth int
	MaxPhase2Depth int
	MaxTotalDepth  int
}

// DefaultOptions returns the spec's default depth caps.
func DefaultOptions() Options {
	return Options{
		MaxPhase1Depth: DefaultMaxPhase1Depth,
		MaxPhase2Depth: DefaultMaxPhase2Depth,
		MaxTotalDepth:  DefaultMaxTotalDepth,
	}
}

// Stats records the length of each phase's move sequence in a solve.
type Stats struct {
	Phase1Depth int
	Phase2Depth int
}

// Result is what a successful solve returns (spec §4.8 step 6).
type Result struct {
	Solution []cubiecube.MoveIndex
	Scramble []cubiecube.MoveIndex
	Phase1   []cubiecube.MoveIndex
	Phase2   []cubiecube.MoveIndex
	Stats    Stats
}

// Solver bundles the precomputed tables a solve reads; build one with
// New and reuse it across solves, since the tables are read-only.
type Solver struct {
	tables *tables.Set
}

// New wraps a prebuilt table set. Building the tables is the caller's
// responsibility (see internal/storage for a disk-cached builder), so
// that startup cost stays visible to the host (spec §9).
func New(t *tables.Set) *Solver {
	return &Solver{tables: t}
}

// Solve runs the full two-phase pipeline on c and returns the move
// sequence that solves it, or a *Error with a spec §7 Kind on failure.
func (s *Solver) Solve(c cubiecube.Cube, opts Options) (*Result, error) {
	if !cubiecube.IsValid(c) {
		return nil, newError(InvalidInput, "cube violates corner/edge permutation, parity, or orientation invariants")
	}

	if cubiecube.IsSolved(c) {
		return &Result{Solution: nil, Scramble: nil, Phase1: nil, Phase2: nil}, nil
	}

	phase1, err := s.solvePhase1(c, opts.MaxPhase1Depth)
	if err != nil {
		return nil, err
	}

	afterPhase1 := cubiecube.ApplySeq(c, phase1)
	if !inG1(afterPhase1) {
		return nil, newError(G1Breach, "applying the phase-1 solution did not land in G1")
	}

	phase2MaxDepth := opts.MaxPhase2Depth
	if remaining := opts.MaxTotalDepth - len(phase1); remaining < phase2MaxDepth {
		phase2MaxDepth = remaining
	}
	phase2, err := s.solvePhase2(afterPhase1, phase2MaxDepth)
	if err != nil {
		return nil, err
	}

	// Phase 1 may end on the face phase 2 starts with (R then R2); fold the
	// pair into one turn at the end of phase 1. The folded phase 1 still
	// lands in G1, because phase 2's first move preserves G1.
	if n := len(phase1); n > 0 && len(phase2) > 0 && phase1[n-1].Face() == phase2[0].Face() {
		merged := notation.Simplify([]cubiecube.MoveIndex{phase1[n-1], phase2[0]})
		phase1 = append(phase1[:n-1:n-1], merged...)
		phase2 = phase2[1:]
	}

	solution := make([]cubiecube.MoveIndex, 0, len(phase1)+len(phase2))
	solution = append(solution, phase1...)
	solution = append(solution, phase2...)

	if !cubiecube.IsSolved(cubiecube.ApplySeq(c, solution)) {
		return nil, newError(VerificationFailure, "concatenated phase-1/phase-2 solution does not solve the cube")
	}

	return &Result{
		Solution: solution,
		Scramble: cubiecube.InvertSeq(solution),
		Phase1:   phase1,
		Phase2:   phase2,
		Stats:    Stats{Phase1Depth: len(phase1), Phase2Depth: len(phase2)},
	}, nil
}

func (s *Solver) solvePhase1(c cubiecube.Cube, maxDepth int) ([]cubiecube.MoveIndex, error) {
	start := search.Phase1Coord{
		EO:     coord.EO.Encode(c),
		CO:     coord.CO.Encode(c),
		ESlice: coord.ESlice.Encode(c),
	}
	searcher := &search.Searcher[search.Phase1Coord]{
		Legal:     tables.Phase1Moves[:],
		Heuristic: search.Heuristic1(s.tables),
		Successor: search.Successor1(s.tables),
		IsGoal:    search.Phase1Coord.IsZero,
	}
	moves, ok := searcher.Search(start, maxDepth)
	if !ok {
		return nil, newError(Phase1Exhausted, "no phase-1 solution within depth %d", maxDepth)
	}
	return moves, nil
}

func (s *Solver) solvePhase2(c cubiecube.Cube, maxDepth int) ([]cubiecube.MoveIndex, error) {
	start := search.Phase2Coord{
		CP:   coord.CP.Encode(c),
		UDEP: coord.UDEP.Encode(c),
		EP:   coord.EP.Encode(c),
	}
	searcher := &search.Searcher[search.Phase2Coord]{
		Legal:     tables.Phase2Moves[:],
		Heuristic: search.Heuristic2(s.tables),
		Successor: search.Successor2(s.tables),
		IsGoal:    search.Phase2Coord.IsZero,
	}
	moves, ok := searcher.Search(start, maxDepth)
	if !ok {
		return nil, newError(Phase2Exhausted, "no phase-2 solution within depth %d", maxDepth)
	}
	return moves, nil
}

// inG1 reports whether c has reached the phase-1 goal subgroup: all
// edges oriented and the four E-slice edges confined to slots 8-11.
func inG1(c cubiecube.Cube) bool {
	return coord.EO.Encode(c) == 0 && coord.ESlice.Encode(c) == 0
}
