package tables

import (
	"fmt"

	"github.com/SeamusWaldron/kociemba/internal/cubiecube"
)

// maxPruneDistance is the saturation ceiling from spec §4.5: no
// individual coordinate distance under either phase's legal move set
// exceeds this for the cube and coordinates this solver uses, so the
// clamp never actually triggers in practice — it exists as a safety
// net against a corrupt or mismatched move table.
const maxPruneDistance = 20

// unknown marks an as-yet-unvisited entry during BFS construction.
const unknown = 255

// BuildPrune computes Prune[c] by breadth-first flood fill from
// coordinate value 0 over the given legal move set (spec §4.5).
// Entries reachable from 0 are the minimum number of legal moves needed
// to reduce that coordinate value back to 0.
func BuildPrune(mt *MoveTable, legal []cubiecube.MoveIndex) ([]uint8, error) {
	n := len(mt.Entries)
	dist := make([]uint8, n)
	for i := range dist {
		dist[i] = unknown
	}
	dist[0] = 0

	queue := make([]int, 1, n)
	queue[0] = 0

	for len(queue) > 0 {
		k := queue[0]
		queue = queue[1:]
		d := dist[k]
		for _, m := range legal {
			next := mt.Next(k, m)
			if dist[next] != unknown {
				continue
			}
			nd := d + 1
			if nd > maxPruneDistance {
				nd = maxPruneDistance
			}
			dist[next] = nd
			queue = append(queue, next)
		}
	}

	for k, d := range dist {
		if d == unknown {
			return nil, fmt.Errorf("tables: prune table for %q has unreachable entry %d; move table or coordinate is buggy", mt.Coord.Name, k)
		}
	}
	return dist, nil
}
