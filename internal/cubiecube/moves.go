package cubiecube

// Move is a face-turn operator: cpMap/epMap say which slot supplies the
// piece landing in slot i, coDelta/eoDelta say how much that piece twists
// or flips in the process. See spec §3 "Move operator".
type Move struct {
	CPMap   [8]uint8
	CODelta [8]uint8
	EPMap   [12]uint8
	EODelta [12]uint8
}

// MoveIndex names one of the 18 face turns, in the fixed order
// U, U2, U', R, R2, R', F, F2, F', D, D2, D', L, L2, L', B, B2, B'.
type MoveIndex int

const (
	MoveU MoveIndex = iota
	MoveU2
	MoveUPrime
	MoveR
	MoveR2
	MoveRPrime
	MoveF
	MoveF2
	MoveFPrime
	MoveD
	MoveD2
	MoveDPrime
	MoveL
	MoveL2
	MoveLPrime
	MoveB
	MoveB2
	MoveBPrime
)

// NumMoves is the size of the fixed 18-move index space.
const NumMoves = 18

var moveNames = [NumMoves]string{
	"U", "U2", "U'",
	"R", "R2", "R'",
	"F", "F2", "F'",
	"D", "D2", "D'",
	"L", "L2", "L'",
	"B", "B2", "B'",
}

// String returns the canonical notation for a move index.
func (m MoveIndex) String() string {
	if m < 0 || int(m) >= NumMoves {
		return "?"
	}
	return moveNames[m]
}

// Face returns which of the 6 faces a move index turns: floor(m/3).
func (m MoveIndex) Face() int {
	return int(m) / 3
}

// identityMove is the no-op operator, used as the composition seed.
var identityMove = Move{
	CPMap: [8]uint8{0, 1, 2, 3, 4, 5, 6, 7},
	EPMap: [12]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
}

// baseGenerators are the six hard-coded 90-degree clockwise face turns
// from spec §6. They are authoritative and must not be altered.
var baseGenerators = [6]Move{
	{ // U
		CPMap:   [8]uint8{3, 0, 1, 2, 4, 5, 6, 7},
		CODelta: [8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		EPMap:   [12]uint8{3, 0, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11},
		EODelta: [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{ // R
		CPMap:   [8]uint8{4, 1, 2, 0, 7, 5, 6, 3},
		CODelta: [8]uint8{2, 0, 0, 1, 1, 0, 0, 2},
		EPMap:   [12]uint8{8, 1, 2, 3, 11, 5, 6, 7, 4, 9, 10, 0},
		EODelta: [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{ // F
		CPMap:   [8]uint8{1, 5, 2, 3, 0, 4, 6, 7},
		CODelta: [8]uint8{1, 2, 0, 0, 2, 1, 0, 0},
		EPMap:   [12]uint8{0, 9, 2, 3, 4, 8, 6, 7, 1, 5, 10, 11},
		EODelta: [12]uint8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	},
	{ // D
		CPMap:   [8]uint8{0, 1, 2, 3, 5, 6, 7, 4},
		CODelta: [8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		EPMap:   [12]uint8{0, 1, 2, 3, 5, 6, 7, 4, 8, 9, 10, 11},
		EODelta: [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{ // L
		CPMap:   [8]uint8{0, 2, 6, 3, 4, 1, 5, 7},
		CODelta: [8]uint8{0, 1, 2, 0, 0, 2, 1, 0},
		EPMap:   [12]uint8{0, 1, 10, 3, 4, 5, 9, 7, 8, 2, 6, 11},
		EODelta: [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{ // B
		CPMap:   [8]uint8{0, 1, 3, 7, 4, 5, 2, 6},
		CODelta: [8]uint8{0, 0, 1, 2, 0, 0, 2, 1},
		EPMap:   [12]uint8{0, 1, 2, 11, 4, 5, 6, 10, 8, 9, 3, 7},
		EODelta: [12]uint8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	},
}

// Moves holds the precomputed 18-entry move table, indexed by MoveIndex.
// It is built once at package init from the six base generators via
// Compose and Invert, per spec §4.2.
var Moves [NumMoves]Move

func init() {
	for face := 0; face < 6; face++ {
		base := baseGenerators[face]
		Moves[face*3+0] = base
		Moves[face*3+1] = Compose(base, base)
		Moves[face*3+2] = Invert(base)
	}
}
