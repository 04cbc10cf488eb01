package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/SeamusWaldron/kociemba/internal/coord"
	"github.com/SeamusWaldron/kociemba/internal/cubiecube"
	"github.com/SeamusWaldron/kociemba/internal/tables"
)

// namedCoordinates pairs each coordinate with the cache key its move and
// prune tables are stored under.
var namedCoordinates = []coord.Coordinate{
	coord.EO, coord.CO, coord.ESlice, coord.CP, coord.UDEP, coord.EP,
}

func moveTableKey(name string) string  { return name + ".move" }
func pruneTableKey(name string) string { return name + ".prune" }

// encodeMoveTable serializes a move table's Entries as little-endian
// uint16s, 18 per coordinate value.
func encodeMoveTable(mt *tables.MoveTable) []byte {
	buf := make([]byte, len(mt.Entries)*18*2)
	for k, row := range mt.Entries {
		for m, v := range row {
			binary.LittleEndian.PutUint16(buf[(k*18+m)*2:], v)
		}
	}
	return buf
}

// decodeMoveTable reconstructs a move table for c from raw bytes
// previously produced by encodeMoveTable.
func decodeMoveTable(c coord.Coordinate, data []byte) (*tables.MoveTable, error) {
	if len(data) != c.Size*18*2 {
		return nil, fmt.Errorf("move table %q: got %d bytes, want %d", c.Name, len(data), c.Size*18*2)
	}
	entries := make([][18]uint16, c.Size)
	for k := range entries {
		for m := 0; m < 18; m++ {
			entries[k][m] = binary.LittleEndian.Uint16(data[(k*18+m)*2:])
		}
	}
	return &tables.MoveTable{Coord: c, Entries: entries}, nil
}

// LoadOrBuildSet returns a fully populated table set, serving each
// coordinate's move/prune tables from cache when present and otherwise
// building and persisting them. Composite tables are never cached: when
// opts.Composite is set, both composite tables are rebuilt on every call.
func LoadOrBuildSet(cache *TableCache, opts tables.BuildOptions) (*tables.Set, error) {
	moveTables := make(map[string]*tables.MoveTable, len(namedCoordinates))
	pruneTables := make(map[string][]uint8, len(namedCoordinates))

	for _, c := range namedCoordinates {
		mt, err := loadOrBuildMoveTable(cache, c)
		if err != nil {
			return nil, err
		}
		moveTables[c.Name] = mt

		legal := tables.Phase1Moves[:]
		if c.Name == "cp" || c.Name == "udep" || c.Name == "ep" {
			legal = tables.Phase2Moves[:]
		}

		pt, err := loadOrBuildPruneTable(cache, c, mt, legal)
		if err != nil {
			return nil, err
		}
		pruneTables[c.Name] = pt
	}

	s := &tables.Set{
		EOMove:     moveTables["eo"],
		COMove:     moveTables["co"],
		ESliceMove: moveTables["eslice"],
		CPMove:     moveTables["cp"],
		UDEPMove:   moveTables["udep"],
		EPMove:     moveTables["ep"],

		EOPrune:     pruneTables["eo"],
		COPrune:     pruneTables["co"],
		ESlicePrune: pruneTables["eslice"],
		CPPrune:     pruneTables["cp"],
		UDEPPrune:   pruneTables["udep"],
		EPPrune:     pruneTables["ep"],
	}

	if opts.Composite {
		cpep, err := tables.BuildComposite(s.CPMove, s.EPMove, tables.Phase2Moves[:])
		if err != nil {
			return nil, fmt.Errorf("building cp/ep composite table: %w", err)
		}
		udepep, err := tables.BuildComposite(s.UDEPMove, s.EPMove, tables.Phase2Moves[:])
		if err != nil {
			return nil, fmt.Errorf("building udep/ep composite table: %w", err)
		}
		s.Composite = &tables.CompositeTables{CPEP: cpep, UDEPEP: udepep}
	}

	return s, nil
}

func loadOrBuildMoveTable(cache *TableCache, c coord.Coordinate) (*tables.MoveTable, error) {
	key := moveTableKey(c.Name)
	if data, ok, err := cache.Load(key); err != nil {
		return nil, err
	} else if ok {
		if mt, err := decodeMoveTable(c, data); err == nil {
			return mt, nil
		}
		// fall through to rebuild on a decode mismatch (e.g. stale layout)
	}

	mt := tables.BuildMoveTable(c)
	if err := cache.Store(key, encodeMoveTable(mt)); err != nil {
		return nil, err
	}
	return mt, nil
}

func loadOrBuildPruneTable(cache *TableCache, c coord.Coordinate, mt *tables.MoveTable, legal []cubiecube.MoveIndex) ([]uint8, error) {
	key := pruneTableKey(c.Name)
	if data, ok, err := cache.Load(key); err != nil {
		return nil, err
	} else if ok && len(data) == c.Size {
		return data, nil
	}

	pt, err := tables.BuildPrune(mt, legal)
	if err != nil {
		return nil, err
	}
	if err := cache.Store(key, pt); err != nil {
		return nil, err
	}
	return pt, nil
}
