// This file implements the Eulerian circuit extraction (Hierholzer) over
// the augmented graph, plus the tour cost verification.

package cpp

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/PuffBear/extending-cpp-routing/core"
)

// incidentEdge is one traversal option out of a vertex.
type incidentEdge struct {
	edgeID string
	other  string
	weight float64
}

// eulerianCircuit extracts a closed Eulerian walk over aug starting at
// start, emitting one Step per traversed edge. Duplicated edges are tagged
// via the dup set. aug must already be even-degree and connected.
//
// The walk is deterministic: at every vertex unused edges are tried in
// (neighbor ID, edge ordinal) order, so identical inputs yield identical
// tours.
//
// Complexity: O(E log E) for the incident-list sort, O(E) for the walk.
func eulerianCircuit(aug *core.Graph, start string, dup map[string]bool) ([]Step, error) {
	// 1. Build sorted incident lists. Self-loops appear once per endpoint
	//    list and are consumed in a single traversal.
	incidents := make(map[string][]incidentEdge, aug.VertexCount())
	for _, e := range aug.Edges() {
		incidents[e.From] = append(incidents[e.From], incidentEdge{e.ID, e.To, e.Weight})
		if e.From != e.To {
			incidents[e.To] = append(incidents[e.To], incidentEdge{e.ID, e.From, e.Weight})
		}
	}
	for v := range incidents {
		list := incidents[v]
		sort.Slice(list, func(i, j int) bool {
			if list[i].other != list[j].other {
				return list[i].other < list[j].other
			}
			return edgeOrdinal(list[i].edgeID) < edgeOrdinal(list[j].edgeID)
		})
	}

	// 2. Iterative Hierholzer. Each stack frame records the vertex and the
	//    edge that led into it; frames drained with no unused edges left
	//    are appended to the circuit in reverse traversal order.
	type frame struct {
		vertex string
		edgeID string
	}

	used := make(map[string]bool, aug.EdgeCount())
	cursor := make(map[string]int, len(incidents))
	stack := []frame{{vertex: start}}
	circuit := make([]frame, 0, aug.EdgeCount()+1)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		v := top.vertex

		advanced := false
		for cursor[v] < len(incidents[v]) {
			inc := incidents[v][cursor[v]]
			if used[inc.edgeID] {
				cursor[v]++
				continue
			}
			used[inc.edgeID] = true
			stack = append(stack, frame{vertex: inc.other, edgeID: inc.edgeID})
			advanced = true
			break
		}
		if !advanced {
			circuit = append(circuit, *top)
			stack = stack[:len(stack)-1]
		}
	}

	if len(circuit) != aug.EdgeCount()+1 {
		return nil, fmt.Errorf("%w: circuit covers %d of %d edges",
			ErrNotEulerian, len(circuit)-1, aug.EdgeCount())
	}

	// 3. Reverse into traversal order and emit steps.
	tour := make([]Step, 0, aug.EdgeCount())
	prev := start
	for i := len(circuit) - 2; i >= 0; i-- {
		f := circuit[i]
		e, err := aug.GetEdge(f.edgeID)
		if err != nil {
			return nil, fmt.Errorf("cpp: circuit: %w", err)
		}
		tour = append(tour, Step{
			From:      prev,
			To:        f.vertex,
			EdgeID:    f.edgeID,
			Weight:    e.Weight,
			Duplicate: dup[f.edgeID],
		})
		prev = f.vertex
	}

	return tour, nil
}

// verifyTourCost sums the tour's step weights and checks them against the
// augmented graph's total weight within a fixed tolerance. A mismatch is
// an internal invariant breach, never a caller error.
func verifyTourCost(tour []Step, aug *core.Graph) (float64, error) {
	var cost float64
	for _, s := range tour {
		cost += s.Weight
	}

	if diff := math.Abs(cost - aug.TotalWeight()); diff > costTolerance {
		return 0, fmt.Errorf("%w: tour %.12f vs graph %.12f", ErrCostMismatch, cost, aug.TotalWeight())
	}

	return cost, nil
}

// edgeOrdinal extracts the numeric suffix of an edge ID for ordering.
// Malformed IDs sort last.
func edgeOrdinal(id string) uint64 {
	if len(id) < 2 {
		return math.MaxUint64
	}
	n, err := strconv.ParseUint(id[1:], 10, 64)
	if err != nil {
		return math.MaxUint64
	}
	return n
}
