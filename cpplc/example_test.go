package cpplc_test

import (
	"fmt"

	"github.com/PuffBear/extending-cpp-routing/core"
	"github.com/PuffBear/extending-cpp-routing/cpplc"
)

// ExampleSolve services a three-street depot star with a one-unit truck:
// every street fills the truck, so each needs its own trip.
func ExampleSolve() {
	g := core.NewGraph()
	for _, v := range []string{"depot", "north", "east", "west"} {
		_ = g.AddVertex(v)
	}
	demands := make(map[string]float64)
	for _, street := range []string{"north", "east", "west"} {
		id, _ := g.AddEdge("depot", street, 1)
		demands[id] = 1
	}

	res, err := cpplc.Solve(g, demands, 1, cpplc.WithDepot("depot"))
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Printf("serviced=%d trips=%d feasible=%v\n", res.Serviced, res.DepotReturns, res.Feasible)

	// Output:
	// serviced=3 trips=3 feasible=true
}
