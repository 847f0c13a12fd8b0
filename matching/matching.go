// This file implements MinWeightPerfect, the negation reduction from
// minimum-weight perfect matching to MaxWeight.

package matching

import "fmt"

// MinWeightPerfect computes a minimum-weight perfect matching over the
// vertices 0..n-1 using the given weighted edges.
//
// The reduction: negate every weight (floating-point negation, never a
// magnitude inversion) and ask MaxWeight for a maximum-cardinality,
// maximum-weight matching — among full-cardinality matchings, maximizing
// the negated total minimizes the original total.
//
// n must be even and non-negative (ErrBadVertexCount); endpoints must lie
// in [0, n) (ErrBadEndpoint). If the primitive leaves any vertex unmatched
// — impossible on a complete graph with finite weights — the result is
// rejected with ErrImperfect rather than returned partially.
//
// Pairs are reported with U < V and the original (positive) weight of the
// cheapest matching edge between them, sorted by U for stable output.
//
// Complexity: O(n³).
func MinWeightPerfect(n int, edges []WeightedEdge) ([]Pair, error) {
	if n < 0 || n%2 != 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadVertexCount, n)
	}
	if n == 0 {
		return nil, nil
	}

	negated := make([]WeightedEdge, 0, len(edges))
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("%w: (%d,%d) with n=%d", ErrBadEndpoint, e.U, e.V, n)
		}
		if e.U == e.V {
			continue
		}
		negated = append(negated, WeightedEdge{U: e.U, V: e.V, W: -e.W})
	}

	mate := MaxWeight(n, negated, true)

	for v, m := range mate {
		if m < 0 {
			return nil, fmt.Errorf("%w: vertex %d unmatched (n=%d, m=%d edges)", ErrImperfect, v, n, len(edges))
		}
	}

	// Recover the original weight of each matched pair: the minimum weight
	// among parallel input edges joining the pair.
	weightOf := make(map[[2]int]float64, len(edges))
	for _, e := range edges {
		if e.U == e.V {
			continue
		}
		key := pairKey(e.U, e.V)
		if w, ok := weightOf[key]; !ok || e.W < w {
			weightOf[key] = e.W
		}
	}

	pairs := make([]Pair, 0, n/2)
	for u := 0; u < n; u++ {
		v := mate[u]
		if u < v {
			pairs = append(pairs, Pair{U: u, V: v, W: weightOf[pairKey(u, v)]})
		}
	}

	return pairs, nil
}

// pairKey returns the canonical (min,max) map key for an unordered pair.
func pairKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}
