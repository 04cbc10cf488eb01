package search

import (
	"github.com/SeamusWaldron/kociemba/internal/cubiecube"
	"github.com/SeamusWaldron/kociemba/internal/tables"
)

// Phase1Coord is the phase-1 coordinate tuple: (eo, co, eslice).
type Phase1Coord struct {
	EO     int
	CO     int
	ESlice int
}

// IsZero reports whether the cube is in G1: all corners and edges
// oriented and the E-slice edges in E-slice positions.
func (c Phase1Coord) IsZero() bool {
	return c.EO == 0 && c.CO == 0 && c.ESlice == 0
}

// Phase2Coord is the phase-2 coordinate tuple: (cp, udep, ep).
type Phase2Coord struct {
	CP   int
	UDEP int
	EP   int
}

// IsZero reports whether the cube is solved (once already in G1).
func (c Phase2Coord) IsZero() bool {
	return c.CP == 0 && c.UDEP == 0 && c.EP == 0
}

// Heuristic1 implements spec §4.6's h_phase1: the max of the three
// component pruning-table lookups, an admissible lower bound because
// each component distance already is one.
func Heuristic1(t *tables.Set) HeuristicFunc[Phase1Coord] {
	return func(c Phase1Coord) int {
		h := int(t.EOPrune[c.EO])
		h = max(h, int(t.COPrune[c.CO]))
		h = max(h, int(t.ESlicePrune[c.ESlice]))
		return h
	}
}

// Heuristic2 implements spec §4.6's h_phase2, tightened by the optional
// composite tables when t.Composite is present.
func Heuristic2(t *tables.Set) HeuristicFunc[Phase2Coord] {
	return func(c Phase2Coord) int {
		h := int(t.CPPrune[c.CP])
		h = max(h, int(t.UDEPPrune[c.UDEP]))
		h = max(h, int(t.EPPrune[c.EP]))
		if t.Composite != nil {
			h = max(h, t.Composite.CPEP.Lookup(c.CP, c.EP))
			h = max(h, t.Composite.UDEPEP.Lookup(c.UDEP, c.EP))
		}
		return h
	}
}

// Successor1 advances a phase-1 coordinate tuple by move m using the
// precomputed move tables, so the search never touches the cubie model.
func Successor1(t *tables.Set) SuccessorFunc[Phase1Coord] {
	return func(c Phase1Coord, m cubiecube.MoveIndex) Phase1Coord {
		return Phase1Coord{
			EO:     t.EOMove.Next(c.EO, m),
			CO:     t.COMove.Next(c.CO, m),
			ESlice: t.ESliceMove.Next(c.ESlice, m),
		}
	}
}

// Successor2 advances a phase-2 coordinate tuple by move m.
func Successor2(t *tables.Set) SuccessorFunc[Phase2Coord] {
	return func(c Phase2Coord, m cubiecube.MoveIndex) Phase2Coord {
		return Phase2Coord{
			CP:   t.CPMove.Next(c.CP, m),
			UDEP: t.UDEPMove.Next(c.UDEP, m),
			EP:   t.EPMove.Next(c.EP, m),
		}
	}
}
