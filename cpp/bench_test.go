// Benchmarks for the exact solver pipeline.
//
// Policy:
//   - Deterministic instances built outside the timer.
//   - Sizes tuned to finish comfortably on CI while exercising all five
//     stages (oracle, matching, augmentation, circuit, verification).
package cpp_test

import (
	"fmt"
	"testing"

	"github.com/PuffBear/extending-cpp-routing/core"
	"github.com/PuffBear/extending-cpp-routing/cpp"
)

// ringWithChords builds a cycle of n vertices with every third vertex
// joined to its opposite, producing a spread of odd-degree vertices.
func ringWithChords(n int) *core.Graph {
	g := core.NewGraph()
	name := func(i int) string { return fmt.Sprintf("v%03d", i) }
	for i := 0; i < n; i++ {
		_ = g.AddVertex(name(i))
	}
	for i := 0; i < n; i++ {
		_, _ = g.AddEdge(name(i), name((i+1)%n), 1.0+float64(i%5))
	}
	for i := 0; i < n; i += 3 {
		_, _ = g.AddEdge(name(i), name((i+n/2)%n), 2.5)
	}
	return g
}

func BenchmarkSolve_Ring32(b *testing.B) {
	g := ringWithChords(32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cpp.Solve(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_Ring96(b *testing.B) {
	g := ringWithChords(96)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cpp.Solve(g); err != nil {
			b.Fatal(err)
		}
	}
}
