// This file implements graph augmentation: duplicating the shortest paths
// selected by the matching so that every vertex gains even degree.

package cpp

import (
	"fmt"

	"github.com/PuffBear/extending-cpp-routing/core"
	"github.com/PuffBear/extending-cpp-routing/matching"
)

// augmentGraph clones g and re-adds, edge by edge, the shortest path
// between every matched pair of odd vertices. The returned set holds the
// IDs of the duplicated edges so the tour can tag them.
//
// Contracts:
//   - g is unmodified; the clone is a fresh graph safe to consume.
//   - after augmentation every vertex of the clone has even degree,
//     otherwise ErrNotEulerian (an internal invariant breach).
func augmentGraph(g *core.Graph, dists *oddDistances, pairs []matching.Pair) (*core.Graph, map[string]bool, error) {
	aug := g.Clone()
	dup := make(map[string]bool)

	for _, p := range pairs {
		edgeIDs, err := dists.edgePath(p.U, p.V)
		if err != nil {
			return nil, nil, err
		}

		for _, eid := range edgeIDs {
			orig, err := g.GetEdge(eid)
			if err != nil {
				return nil, nil, fmt.Errorf("cpp: augment: %w", err)
			}

			newID, err := aug.AddEdge(orig.From, orig.To, orig.Weight)
			if err != nil {
				return nil, nil, fmt.Errorf("cpp: augment: %w", err)
			}
			dup[newID] = true
		}
	}

	if odd := aug.OddVertices(); len(odd) != 0 {
		return nil, nil, fmt.Errorf("%w: %d odd vertices remain after augmentation", ErrNotEulerian, len(odd))
	}

	return aug, dup, nil
}
