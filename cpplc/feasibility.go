package cpplc

import "sort"

// CheckCapacityFeasibility reports whether the given demands admit any
// trip packing under the capacity. It runs a first-fit-decreasing pass;
// since trips are unbounded in number, the instance is infeasible only
// when the capacity is non-positive or a single demand exceeds it.
// Advisory helper: Solve performs its own per-edge validation.
func CheckCapacityFeasibility(demands map[string]float64, capacity float64) bool {
	if capacity <= 0 {
		return false
	}

	sorted := make([]float64, 0, len(demands))
	for _, d := range demands {
		sorted = append(sorted, d)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	var trips []float64
	for _, d := range sorted {
		if d > capacity || d < 0 {
			return false
		}
		placed := false
		for i := range trips {
			if trips[i]+d <= capacity {
				trips[i] += d
				placed = true
				break
			}
		}
		if !placed {
			trips = append(trips, d)
		}
	}

	return true
}
