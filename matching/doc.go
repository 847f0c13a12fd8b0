// Package matching implements exact maximum-weight matching on general
// (non-bipartite) graphs, and the minimum-weight perfect matching built on
// top of it that the Chinese Postman pipeline needs.
//
// MaxWeight is a primal-dual “blossom” method (Galil's O(n³) formulation,
// following the well-known van Rantwijk implementation that NetworkX ships
// as max_weight_matching). It maintains dual variables for vertices and
// blossoms, grows alternating trees from free vertices, shrinks odd cycles
// into blossoms, and augments along alternating paths until no augmenting
// path with non-negative slack remains.
//
// MinWeightPerfect reduces minimum-weight perfect matching to MaxWeight by
// negating all weights (plain floating-point negation — a correctness
// preserving transform, not an approximation) and requesting
// maximum-cardinality mode. A result that leaves any vertex unmatched is an
// internal invariant violation and is reported as ErrImperfect, never
// silently accepted.
//
// Complexity:
//
//	– Time:  O(n³) for n vertices (n stages, O(n²) work per stage).
//	– Space: O(n + m) for m edges.
//
// Determinism: the algorithm scans vertices and edges in the order given;
// callers that present edges in a canonical order get canonical matchings.
package matching
