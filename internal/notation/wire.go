package notation

import (
	"github.com/SeamusWaldron/kociemba/internal/cubiecube"
	"github.com/SeamusWaldron/kociemba/pkg/types"
)

var wireFaces = [6]types.Face{
	types.FaceU, types.FaceR, types.FaceF, types.FaceD, types.FaceL, types.FaceB,
}

var wireFaceIndex = map[types.Face]int{
	types.FaceU: 0, types.FaceR: 1, types.FaceF: 2,
	types.FaceD: 3, types.FaceL: 4, types.FaceB: 5,
}

// ToWireMove converts a cubie-level move index into the package's
// exported wire representation, for JSON export and other consumers
// outside the solver.
func ToWireMove(m cubiecube.MoveIndex) types.Move {
	face := wireFaces[m.Face()]
	var turn types.Turn
	switch int(m) % 3 {
	case 0:
		turn = types.TurnCW
	case 1:
		turn = types.Turn180
	default:
		turn = types.TurnCCW
	}
	return types.Move{Face: face, Turn: turn}
}

// ToWireMoves converts a whole sequence via ToWireMove.
func ToWireMoves(seq []cubiecube.MoveIndex) []types.Move {
	out := make([]types.Move, len(seq))
	for i, m := range seq {
		out[i] = ToWireMove(m)
	}
	return out
}

// FromWireMove converts a wire move back into a cubie-level move index.
func FromWireMove(w types.Move) cubiecube.MoveIndex {
	base := cubiecube.MoveIndex(wireFaceIndex[w.Face] * 3)
	switch w.Turn {
	case types.TurnCW:
		return base
	case types.Turn180:
		return base + 1
	default:
		return base + 2
	}
}

// FromWireMoves converts a whole sequence via FromWireMove.
func FromWireMoves(seq []types.Move) []cubiecube.MoveIndex {
	out := make([]cubiecube.MoveIndex, len(seq))
	for i, w := range seq {
		out[i] = FromWireMove(w)
	}
	return out
}
