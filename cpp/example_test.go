package cpp_test

import (
	"fmt"

	"github.com/PuffBear/extending-cpp-routing/core"
	"github.com/PuffBear/extending-cpp-routing/cpp"
)

// ExampleSolve walks a postman over a small street network with two
// dead-end vertices. The dead-end path must be traversed twice.
func ExampleSolve() {
	g := core.NewGraph()
	for _, v := range []string{"depot", "north", "south"} {
		_ = g.AddVertex(v)
	}
	_, _ = g.AddEdge("depot", "north", 1)
	_, _ = g.AddEdge("north", "south", 1)

	res, err := cpp.Solve(g)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Printf("cost=%.0f optimal=%v steps=%d\n", res.Cost, res.Optimal, len(res.Tour))
	for _, s := range res.Tour {
		fmt.Printf("%s -> %s (dup=%v)\n", s.From, s.To, s.Duplicate)
	}

	// Output:
	// cost=4 optimal=true steps=4
	// depot -> north (dup=false)
	// north -> south (dup=false)
	// south -> north (dup=true)
	// north -> depot (dup=true)
}
