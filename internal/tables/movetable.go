// Package tables builds the coordinate move tables (C4) and pruning
// tables (C5) the two-phase search is driven by. Both are pure
// functions of the coordinate definitions in package coord, computed
// once and shared read-only thereafter (spec §5 "Shared resources").
package tables

import (
	"github.com/SeamusWaldron/kociemba/internal/coord"
	"github.com/SeamusWaldron/kociemba/internal/cubiecube"
)

// MoveTable holds, for a single coordinate, the successor coordinate
// value for every (value, move) pair: Entries[k][m] = encode(c, apply(decode(c,k), move[m])).
type MoveTable struct {
	Coord   coord.Coordinate
	Entries [][18]uint16
}

// BuildMoveTable constructs the move table for c by decoding each
// coordinate value at the solved cube, applying every one of the 18
// moves, and re-encoding (spec §4.4).
func BuildMoveTable(c coord.Coordinate) *MoveTable {
	entries := make([][18]uint16, c.Size)
	for k := 0; k < c.Size; k++ {
		base := c.Decode(k)
		for m := cubiecube.MoveIndex(0); m < cubiecube.NumMoves; m++ {
			next := c.Encode(cubiecube.Apply(base, cubiecube.Moves[m]))
			entries[k][m] = uint16(next)
		}
	}
	return &MoveTable{Coord: c, Entries: entries}
}

// Next returns the successor of coordinate value k under move m.
func (mt *MoveTable) Next(k int, m cubiecube.MoveIndex) int {
	return int(mt.Entries[k][m])
}
