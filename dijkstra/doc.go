// Package dijkstra implements Dijkstra's shortest-path algorithm on the
// weighted multigraphs of package core.
//
// Run computes the minimum-cost path from a single source vertex to all
// other reachable vertices. It processes vertices in order of increasing
// distance using a min-heap priority queue with the “lazy decrease-key”
// strategy: improved distances push duplicate entries, stale entries are
// skipped when popped.
//
// Determinism is part of the contract, not an accident of iteration order:
//
//   - incident edges are relaxed in numeric edge-ID order;
//   - heap ties are broken by vertex ID;
//   - when two paths to a vertex have exactly equal cost, the one whose
//     predecessor vertex ID is lexicographically smaller wins.
//
// Two runs over the same graph therefore return identical trees, and the
// representative shortest paths they report are stable inputs for matching
// and augmentation.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	– Space: O(V + E)
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected (pre-scan).
//	– ErrUnreachable     from Tree.PathTo for an unreached target.
package dijkstra
