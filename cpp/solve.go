// This file wires the exact pipeline together and hosts the timeout
// governor around it.

package cpp

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/PuffBear/extending-cpp-routing/core"
	"github.com/PuffBear/extending-cpp-routing/matching"
)

// Solve computes an exact closed postman tour of g under the default
// governor. Equivalent to SolveContext with context.Background().
func Solve(g *core.Graph, opts ...Option) (*Result, error) {
	return SolveContext(context.Background(), g, opts...)
}

// SolveContext computes an exact closed postman tour of g: a minimum-cost
// closed walk traversing every edge at least once, starting and ending at
// the configured start vertex.
//
// Contracts:
//   - g must be non-nil, non-empty and connected.
//   - the configured start vertex must exist (defaults to the smallest
//     vertex ID when unset).
//   - when the governor expires (Options.Timeout or ctx), the returned
//     Result carries Optimal=false, a FailureReason, Cost=NaN and a nil
//     Tour, with a nil error: an expired solve is an answered question,
//     not a failed call.
//
// Complexity: dominated by |odd| Dijkstra runs and one O(|odd|³)
// matching; practical well past a few hundred odd vertices.
func SolveContext(ctx context.Context, g *core.Graph, opts ...Option) (*Result, error) {
	started := time.Now()

	// 1. Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. Validate inputs in a fixed order.
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadTimeout, cfg.Timeout)
	}
	if cfg.Start == "" {
		cfg.Start = g.Vertices()[0]
	}
	if !g.HasVertex(cfg.Start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, cfg.Start)
	}
	if !g.ConnectedFrom(cfg.Start) {
		return nil, ErrDisconnected
	}

	odd := g.OddVertices()

	// 3. Race the pipeline against the governor.
	runCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	type outcome struct {
		res *Result
		err error
	}
	done := make(chan outcome, 1)

	go func() {
		res, err := runPipeline(runCtx, g, cfg.Start, odd)
		done <- outcome{res, err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			// Cancellation surfacing through the pipeline is an expiry,
			// not a solver failure.
			if errors.Is(out.err, context.DeadlineExceeded) || errors.Is(out.err, context.Canceled) {
				return expiredResult(runCtx, g, odd, started), nil
			}
			return nil, out.err
		}
		out.res.OddVertexCount = len(odd)
		out.res.VertexCount = g.VertexCount()
		out.res.EdgeCount = g.EdgeCount()
		out.res.Elapsed = time.Since(started)
		return out.res, nil

	case <-runCtx.Done():
		return expiredResult(runCtx, g, odd, started), nil
	}
}

// runPipeline executes the five exact steps with no knowledge of the
// governor beyond the cooperative ctx checks inside the oracle.
func runPipeline(ctx context.Context, g *core.Graph, start string, odd []string) (*Result, error) {
	// 1. Already Eulerian: walk the graph as-is.
	if len(odd) == 0 {
		tour, err := eulerianCircuit(g, start, nil)
		if err != nil {
			return nil, err
		}
		cost, err := verifyTourCost(tour, g)
		if err != nil {
			return nil, err
		}
		return &Result{Cost: round1e9(cost), Tour: tour, Optimal: true}, nil
	}

	// 2. Shortest paths among odd vertices.
	dists, err := computeOddDistances(ctx, g, odd)
	if err != nil {
		return nil, err
	}

	// 3. Minimum-weight perfect matching over the odd set.
	edges := make([]matching.WeightedEdge, 0, len(odd)*(len(odd)-1)/2)
	for i := 0; i < len(odd); i++ {
		for j := i + 1; j < len(odd); j++ {
			d, err := dists.distance(i, j)
			if err != nil {
				return nil, err
			}
			edges = append(edges, matching.WeightedEdge{U: i, V: j, W: d})
		}
	}
	pairs, err := matching.MinWeightPerfect(len(odd), edges)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncompleteMatching, err)
	}

	// 4. Duplicate the matched shortest paths.
	aug, dup, err := augmentGraph(g, dists, pairs)
	if err != nil {
		return nil, err
	}

	// 5. Extract and verify the circuit.
	tour, err := eulerianCircuit(aug, start, dup)
	if err != nil {
		return nil, err
	}
	cost, err := verifyTourCost(tour, aug)
	if err != nil {
		return nil, err
	}

	return &Result{Cost: round1e9(cost), Tour: tour, Optimal: true}, nil
}

// expiredResult builds the honest non-optimal Result for a governor
// expiry. The cost is NaN: no tour was produced, so no cost exists.
func expiredResult(ctx context.Context, g *core.Graph, odd []string, started time.Time) *Result {
	reason := ReasonTimeout
	if errors.Is(ctx.Err(), context.Canceled) {
		reason = ReasonCanceled
	}

	return &Result{
		Cost:           math.NaN(),
		Tour:           nil,
		Optimal:        false,
		FailureReason:  reason,
		OddVertexCount: len(odd),
		VertexCount:    g.VertexCount(),
		EdgeCount:      g.EdgeCount(),
		Elapsed:        time.Since(started),
	}
}

// round1e9 stabilizes accumulated floating-point cost to nanoscale.
func round1e9(x float64) float64 {
	return math.Round(x*1e9) / 1e9
}
