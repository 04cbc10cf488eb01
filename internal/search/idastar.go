// Package search implements the per-phase heuristics (C6) and the
// iterative-deepening A* engine (C7) that finds a legal move sequence
// driving a coordinate tuple to all-zero.
package search

import "github.com/SeamusWaldron/kociemba/internal/cubiecube"

// noLastMove is the dfs root sentinel: no move has been played yet, so
// the same-face pruning rule never fires.
const noLastMove = cubiecube.MoveIndex(-1)

// SuccessorFunc advances a coordinate tuple by one move.
type SuccessorFunc[C any] func(c C, m cubiecube.MoveIndex) C

// HeuristicFunc returns an admissible lower bound on the number of
// phase-legal moves needed to reach the all-zero coordinate.
type HeuristicFunc[C any] func(c C) int

// IsGoalFunc reports whether every coordinate component is zero.
type IsGoalFunc[C any] func(c C) bool

// Searcher runs IDA* (spec §4.7) over a coordinate type C for one phase.
type Searcher[C any] struct {
	Legal     []cubiecube.MoveIndex
	Heuristic HeuristicFunc[C]
	Successor SuccessorFunc[C]
	IsGoal    IsGoalFunc[C]
}

// Search runs iterative-deepening A* from start, trying bounds
// max(1,h(start)), max(1,h(start))+1, ... up to maxDepth. It returns the
// first solution found at the smallest feasible bound, or ok=false if
// none exists within maxDepth. DFS visits moves in Legal's fixed order,
// so the result is deterministic.
func (s *Searcher[C]) Search(start C, maxDepth int) (moves []cubiecube.MoveIndex, ok bool) {
	if s.IsGoal(start) {
		return nil, true
	}

	bound := s.Heuristic(start)
	if bound < 1 {
		bound = 1
	}

	for bound <= maxDepth {
		if sol, found := s.dfs(start, 0, bound, noLastMove); found {
			return sol, true
		}
		bound++
	}
	return nil, false
}

// dfs is the depth-limited search from spec §4.7: fail once g+h exceeds
// bound, otherwise try each phase-legal move not pruned by skip, and on
// the first recursive success prepend the move taken and return.
func (s *Searcher[C]) dfs(c C, g, bound int, lastMove cubiecube.MoveIndex) ([]cubiecube.MoveIndex, bool) {
	if s.IsGoal(c) {
		return nil, true
	}
	if g+s.Heuristic(c) > bound {
		return nil, false
	}
	for _, m := range s.Legal {
		if skip(m, lastMove) {
			continue
		}
		next := s.Successor(c, m)
		if rest, found := s.dfs(next, g+1, bound, m); found {
			sol := make([]cubiecube.MoveIndex, 0, len(rest)+1)
			sol = append(sol, m)
			sol = append(sol, rest...)
			return sol, true
		}
	}
	return nil, false
}

// skip implements the mandatory move-pruning rule from spec §4.7: two
// moves on the same face in a row collapse to one quarter-turn count,
// so only the first is ever tried.
func skip(m, lastMove cubiecube.MoveIndex) bool {
	return lastMove != noLastMove && m.Face() == lastMove.Face()
}
