package tables

import "github.com/SeamusWaldron/kociemba/internal/cubiecube"

// Phase1Moves is L1 from spec §4.7: all 18 face turns are legal while
// driving the cube into G1.
var Phase1Moves = [18]cubiecube.MoveIndex{
	cubiecube.MoveU, cubiecube.MoveU2, cubiecube.MoveUPrime,
	cubiecube.MoveR, cubiecube.MoveR2, cubiecube.MoveRPrime,
	cubiecube.MoveF, cubiecube.MoveF2, cubiecube.MoveFPrime,
	cubiecube.MoveD, cubiecube.MoveD2, cubiecube.MoveDPrime,
	cubiecube.MoveL, cubiecube.MoveL2, cubiecube.MoveLPrime,
	cubiecube.MoveB, cubiecube.MoveB2, cubiecube.MoveBPrime,
}

// Phase2Moves is L2 from spec §4.7: the ten moves that stabilize G1
// (every turn of U and D plus half turns of R, L, F, B).
var Phase2Moves = [10]cubiecube.MoveIndex{
	cubiecube.MoveU, cubiecube.MoveU2, cubiecube.MoveUPrime,
	cubiecube.MoveD, cubiecube.MoveD2, cubiecube.MoveDPrime,
	cubiecube.MoveR2, cubiecube.MoveL2, cubiecube.MoveF2, cubiecube.MoveB2,
}
