package tables

import (
	"fmt"

	"github.com/SeamusWaldron/kociemba/internal/cubiecube"
)

// CompositePrune is an optional, tighter phase-2 pruning table indexed
// by a*bSize+b for two move tables sharing the same legal move set
// (spec §4.6 "Optional optimization"). It trades the memory of a second
// full-size table for a heuristic that is at least as tight as the max
// of the two component tables alone.
type CompositePrune struct {
	ASize, BSize int
	Dist         []uint8
}

// Lookup returns the distance for component values a, b.
func (p *CompositePrune) Lookup(a, b int) int {
	return int(p.Dist[a*p.BSize+b])
}

// BuildComposite BFS-floods the product space of two move tables under
// a shared legal move set, without materializing a full product move
// table: successors are computed on the fly from the two component
// move tables.
func BuildComposite(a, b *MoveTable, legal []cubiecube.MoveIndex) (*CompositePrune, error) {
	aSize, bSize := a.Coord.Size, b.Coord.Size
	n := aSize * bSize
	dist := make([]uint8, n)
	for i := range dist {
		dist[i] = unknown
	}
	dist[0] = 0

	queue := make([]int, 1, n/4+1)
	queue[0] = 0

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		d := dist[idx]
		av, bv := idx/bSize, idx%bSize
		for _, m := range legal {
			na := a.Next(av, m)
			nb := b.Next(bv, m)
			nidx := na*bSize + nb
			if dist[nidx] != unknown {
				continue
			}
			nd := d + 1
			if nd > maxPruneDistance {
				nd = maxPruneDistance
			}
			dist[nidx] = nd
			queue = append(queue, nidx)
		}
	}

	for idx, d := range dist {
		if d == unknown {
			return nil, fmt.Errorf("tables: composite prune table (%q x %q) has unreachable entry %d", a.Coord.Name, b.Coord.Name, idx)
		}
	}
	return &CompositePrune{ASize: aSize, BSize: bSize, Dist: dist}, nil
}
