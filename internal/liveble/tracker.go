package liveble

import (
	"sync"

	"github.com/SeamusWaldron/kociemba/internal/cubiecube"
	"github.com/SeamusWaldron/kociemba/internal/solver"
)

// Tracker maintains a live cubiecube.Cube driven by decoded BLE rotation
// events and reports how many moves remain to solve it.
type Tracker struct {
	mu      sync.RWMutex
	cube    cubiecube.Cube
	history []cubiecube.MoveIndex

	solver *solver.Solver

	onMove   func(cubiecube.MoveIndex)
	onSolved func()
}

// NewTracker starts tracking from the solved state, using s to compute
// live "moves remaining" hints.
func NewTracker(s *solver.Solver) *Tracker {
	return &Tracker{cube: cubiecube.Solved(), solver: s}
}

// SetMoveCallback sets the callback invoked whenever a move is applied.
func (t *Tracker) SetMoveCallback(cb func(cubiecube.MoveIndex)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onMove = cb
}

// SetSolvedCallback sets the callback invoked the instant the cube
// becomes solved.
func (t *Tracker) SetSolvedCallback(cb func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onSolved = cb
}

// Reset returns the tracker to the solved state, discarding history.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cube = cubiecube.Solved()
	t.history = nil
}

// ApplyMove applies a single decoded move and fires callbacks.
func (t *Tracker) ApplyMove(m cubiecube.MoveIndex) {
	t.mu.Lock()
	t.cube = cubiecube.Apply(t.cube, cubiecube.Moves[m])
	t.history = append(t.history, m)
	solved := cubiecube.IsSolved(t.cube)
	onMove, onSolved := t.onMove, t.onSolved
	t.mu.Unlock()

	if onMove != nil {
		onMove(m)
	}
	if solved && onSolved != nil {
		onSolved()
	}
}

// ApplyRotationPayload decodes a rotation notification payload and
// applies every move it contains, in order.
func (t *Tracker) ApplyRotationPayload(payload []byte) error {
	moves, err := DecodeRotations(payload)
	if err != nil {
		return err
	}
	for _, m := range moves {
		t.ApplyMove(m)
	}
	return nil
}

// Cube returns a snapshot of the current tracked state.
func (t *Tracker) Cube() cubiecube.Cube {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cube
}

// History returns every move applied since the last Reset.
func (t *Tracker) History() []cubiecube.MoveIndex {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]cubiecube.MoveIndex, len(t.history))
	copy(out, t.history)
	return out
}

// IsSolved reports whether the tracked cube is currently solved.
func (t *Tracker) IsSolved() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return cubiecube.IsSolved(t.cube)
}

// RemainingMoves runs the solver against the current tracked state and
// returns how many moves are left, for a live "N moves to go" hint. It
// is relatively expensive (a full two-phase search), so callers should
// throttle how often they call it rather than invoking it per notification.
func (t *Tracker) RemainingMoves(opts solver.Options) (int, error) {
	cube := t.Cube()
	if cubiecube.IsSolved(cube) {
		return 0, nil
	}
	result, err := t.solver.Solve(cube, opts)
	if err != nil {
		return 0, err
	}
	return len(result.Solution), nil
}
