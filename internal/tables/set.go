package tables

import (
	"fmt"

	"github.com/SeamusWaldron/kociemba/internal/coord"
)

// Set bundles every move table and pruning table the solver needs: the
// three phase-1 coordinates, the three phase-2 coordinates, and
// (optionally) the composite phase-2 tables from spec §4.6. It is built
// once at startup and shared read-only across solves (spec §5, §9
// "Global/singleton tables").
type Set struct {
	EOMove     *MoveTable
	COMove     *MoveTable
	ESliceMove *MoveTable
	CPMove     *MoveTable
	UDEPMove   *MoveTable
	EPMove     *MoveTable

	EOPrune     []uint8
	COPrune     []uint8
	ESlicePrune []uint8
	CPPrune     []uint8
	UDEPPrune   []uint8
	EPPrune     []uint8

	// Composite is nil unless the tighter phase-2 heuristic was requested.
	Composite *CompositeTables
}

// CompositeTables holds the two optional composite phase-2 pruning
// tables (cp*EPSize+ep) and (udep*EPSize+ep).
type CompositeTables struct {
	CPEP   *CompositePrune
	UDEPEP *CompositePrune
}

// BuildOptions controls which optional tables Build produces.
type BuildOptions struct {
	Composite bool
}

// Build constructs every table from scratch. It is deterministic and
// pure: the same coordinate definitions always yield the same tables,
// which is what allows callers to cache the result (see
// internal/storage's table cache).
func Build(opts BuildOptions) (*Set, error) {
	s := &Set{
		EOMove:     BuildMoveTable(coord.EO),
		COMove:     BuildMoveTable(coord.CO),
		ESliceMove: BuildMoveTable(coord.ESlice),
		CPMove:     BuildMoveTable(coord.CP),
		UDEPMove:   BuildMoveTable(coord.UDEP),
		EPMove:     BuildMoveTable(coord.EP),
	}

	var err error
	if s.EOPrune, err = BuildPrune(s.EOMove, Phase1Moves[:]); err != nil {
		return nil, err
	}
	if s.COPrune, err = BuildPrune(s.COMove, Phase1Moves[:]); err != nil {
		return nil, err
	}
	if s.ESlicePrune, err = BuildPrune(s.ESliceMove, Phase1Moves[:]); err != nil {
		return nil, err
	}
	if s.CPPrune, err = BuildPrune(s.CPMove, Phase2Moves[:]); err != nil {
		return nil, err
	}
	if s.UDEPPrune, err = BuildPrune(s.UDEPMove, Phase2Moves[:]); err != nil {
		return nil, err
	}
	if s.EPPrune, err = BuildPrune(s.EPMove, Phase2Moves[:]); err != nil {
		return nil, err
	}

	if opts.Composite {
		cpep, err := BuildComposite(s.CPMove, s.EPMove, Phase2Moves[:])
		if err != nil {
			return nil, fmt.Errorf("tables: building cp/ep composite: %w", err)
		}
		udepep, err := BuildComposite(s.UDEPMove, s.EPMove, Phase2Moves[:])
		if err != nil {
			return nil, fmt.Errorf("tables: building udep/ep composite: %w", err)
		}
		s.Composite = &CompositeTables{CPEP: cpep, UDEPEP: udepep}
	}

	return s, nil
}
