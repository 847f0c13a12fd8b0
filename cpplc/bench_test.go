// Benchmarks for the load-constrained greedy construction.
package cpplc_test

import (
	"fmt"
	"testing"

	"github.com/PuffBear/extending-cpp-routing/core"
	"github.com/PuffBear/extending-cpp-routing/cpplc"
)

// loadedRing builds a cycle of n vertices with deterministic weights and
// demands sized to force several depot returns under capacity 10.
func loadedRing(n int) (*core.Graph, map[string]float64) {
	g := core.NewGraph()
	demands := make(map[string]float64, n)
	name := func(i int) string { return fmt.Sprintf("v%03d", i) }
	for i := 0; i < n; i++ {
		_ = g.AddVertex(name(i))
	}
	for i := 0; i < n; i++ {
		id, _ := g.AddEdge(name(i), name((i+1)%n), 1.0+float64(i%4))
		demands[id] = float64(1 + i%3)
	}
	return g, demands
}

func BenchmarkSolve_Ring64(b *testing.B) {
	g, demands := loadedRing(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cpplc.Solve(g, demands, 10); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_Ring64_Fuel(b *testing.B) {
	g, demands := loadedRing(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cpplc.Solve(g, demands, 10, cpplc.WithCostModel(cpplc.Fuel)); err != nil {
			b.Fatal(err)
		}
	}
}
