// Package cpp solves the Chinese Postman Problem exactly: given a
// connected, weighted, undirected multigraph it returns a minimum-cost
// closed walk that traverses every edge at least once.
//
// The pipeline is the classical T-join construction:
//
//  1. Extract the vertices of odd degree (handshake lemma: always evenly
//     many; none means the graph is already Eulerian).
//  2. Oracle: compute shortest distances and representative paths between
//     every pair of odd vertices (one Dijkstra per odd vertex, fanned out
//     across goroutines).
//  3. Matching: find a minimum-weight perfect matching of the odd vertices
//     by running the exact blossom maximum-weight matcher on negated
//     distances.
//  4. Augment a clone of the input by duplicating every edge along each
//     matched shortest path, making all degrees even.
//  5. Extract an Eulerian circuit (Hierholzer) with a deterministic
//     smallest-neighbor-first tie-break.
//
// Steps 2 and 3 dominate the cost (|odd| single-source runs plus an O(n³)
// matching) and run under the timeout governor: Solve races them against a
// wall-clock budget (default 10 minutes). On expiry the result is honestly
// labeled — Optimal=false, FailureReason="timeout", NaN cost, nil tour —
// and never replaced by a synthetic approximation. Consumers must branch on
// Optimal before using Cost in any comparison.
//
// Precondition violations (nil/empty/disconnected input) and internal
// invariant violations (imperfect matching, non-Eulerian augmentation,
// cost mismatch) surface as errors; they are bugs or caller errors, never
// silently degraded results.
//
// Scalability: the oracle is the ceiling. Instances with up to ~100 odd
// vertices solve comfortably; thousands of odd vertices will exhaust any
// realistic budget and come back flagged as timeouts.
package cpp
