// Package cpproute is a library for solving Chinese Postman Problems —
// minimum-cost closed walks that traverse every edge of a road-like network
// at least once.
//
// 🚀 What is extending-cpp-routing?
//
//	A thread-safe, nearly dependency-free toolkit that brings together:
//		• Core primitives: an undirected weighted multigraph with degree queries
//		• Shortest paths: deterministic Dijkstra with path reconstruction
//		• Matching: exact maximum-weight blossom matching on general graphs
//		• Exact CPP: T-join construction + Eulerian circuit, under a wall-clock budget
//		• CPP-LC: the load-dependent-cost variant via seeded greedy insertion
//
// ✨ Why choose it?
//
//   - Exactness taken seriously – the solver either proves optimality or
//     labels the result as non-optimal; it never substitutes an approximation
//   - Deterministic – identical inputs (and seeds) reproduce identical tours
//   - Rock-solid guarantees – R/W locks, strict sentinel errors, in-code docs
//   - Pure Go – no cgo; testify for tests, x/sync for the parallel oracle
//
// Everything is organized under five subpackages:
//
//	core/     — fundamental Graph and Edge types & thread-safe primitives
//	dijkstra/ — single-source shortest paths with deterministic tie-breaks
//	matching/ — maximum-weight matching (blossom) & min-weight perfect pairing
//	cpp/      — the exact Chinese Postman solver with its timeout governor
//	cpplc/    — the load-constrained (CPP-LC) greedy-insertion heuristic
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a square street grid: already Eulerian, so the optimal postman tour
//	simply walks the four edges once.
//
// Dive into the per-package docs for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/PuffBear/extending-cpp-routing
package cpproute
