// This file implements the shortest-path oracle: all-pairs distances and
// representative paths restricted to the odd-degree vertex set.

package cpp

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/PuffBear/extending-cpp-routing/core"
	"github.com/PuffBear/extending-cpp-routing/dijkstra"
)

// oddDistances holds the oracle output for one solve call: one shortest
// path tree per odd vertex, indexed consistently with the odd slice.
type oddDistances struct {
	odd   []string
	trees []*dijkstra.Tree
}

// computeOddDistances runs one Dijkstra per odd vertex. The per-source
// computations are independent (write-once result slots, read-only graph),
// so they fan out on an errgroup bound to ctx; the context check before
// each source is the governor's cooperative cancellation checkpoint.
//
// Complexity: |odd| × O((V+E) log V), the dominant cost of the whole
// exact pipeline.
func computeOddDistances(ctx context.Context, g *core.Graph, odd []string) (*oddDistances, error) {
	out := &oddDistances{
		odd:   odd,
		trees: make([]*dijkstra.Tree, len(odd)),
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for i, source := range odd {
		i, source := i, source
		eg.Go(func() error {
			// Abandoned solves stop scheduling new sources here; a source
			// already running completes and its tree is discarded.
			if err := egCtx.Err(); err != nil {
				return err
			}

			tree, err := dijkstra.Run(g, source)
			if err != nil {
				return fmt.Errorf("cpp: oracle source %q: %w", source, err)
			}
			out.trees[i] = tree

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// distance returns the shortest distance between odd vertices i and j
// (indices into the odd slice). ErrUnreachablePair is an internal
// inconsistency: connectivity was validated before the oracle ran.
func (d *oddDistances) distance(i, j int) (float64, error) {
	dist, ok := d.trees[i].DistanceTo(d.odd[j])
	if !ok {
		return 0, fmt.Errorf("%w: %q and %q", ErrUnreachablePair, d.odd[i], d.odd[j])
	}

	return dist, nil
}

// edgePath returns the representative shortest path (edge IDs) from odd
// vertex i to odd vertex j.
func (d *oddDistances) edgePath(i, j int) ([]string, error) {
	path, err := d.trees[i].EdgePathTo(d.odd[j])
	if err != nil {
		return nil, fmt.Errorf("%w: %q and %q", ErrUnreachablePair, d.odd[i], d.odd[j])
	}

	return path, nil
}
